package main

import "github.com/theopenlane/mailmeter/cmd"

func main() {
	cmd.Execute()
}
