package slack

import (
	"context"
	"fmt"

	"github.com/theopenlane/mailmeter/internal/score"
)

// NotifySummary posts the segment counts for a completed audit batch. The
// sink is informational only; callers treat failures as non-fatal.
func (c *Client) NotifySummary(ctx context.Context, counts score.Counts) error {
	return c.Send(ctx, SummaryMessage(counts))
}

// SummaryMessage builds the Block Kit payload for a batch summary
func SummaryMessage(counts score.Counts) Message {
	return Message{
		Text: fmt.Sprintf("Email audit complete: %d audited, %d valid, %d risky, %d dead",
			counts.Total, counts.Valid, counts.Risky, counts.Dead),
		Blocks: []Block{
			{
				Type: "header",
				Text: &TextObject{
					Type: "plain_text",
					Text: "Email deliverability audit complete",
				},
			},
			{
				Type: "section",
				Fields: []TextObject{
					{Type: "mrkdwn", Text: fmt.Sprintf("*Audited:*\n%d", counts.Total)},
					{Type: "mrkdwn", Text: fmt.Sprintf("*Valid:*\n%d", counts.Valid)},
					{Type: "mrkdwn", Text: fmt.Sprintf("*Risky:*\n%d", counts.Risky)},
					{Type: "mrkdwn", Text: fmt.Sprintf("*Dead:*\n%d", counts.Dead)},
				},
			},
		},
	}
}
