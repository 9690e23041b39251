package slack

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/theopenlane/mailmeter/internal/score"
)

func TestSend_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}

		contentType := r.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "application/json") {
			t.Errorf("expected Content-Type to start with application/json, got %s", contentType)
		}

		var msg Message
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
			t.Fatalf("failed to decode message: %v", err)
		}

		if msg.Text != "test message" {
			t.Errorf("expected text 'test message', got %s", msg.Text)
		}

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := New(server.URL, WithHTTPClient(server.Client()))
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}

	err = client.Send(context.Background(), Message{Text: "test message"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNotifySummary(t *testing.T) {
	var received Message

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Fatalf("failed to decode message: %v", err)
		}

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := New(server.URL, WithHTTPClient(server.Client()))
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}

	counts := score.Counts{Total: 10, Valid: 4, Risky: 3, Dead: 3}

	if err := client.NotifySummary(context.Background(), counts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(received.Text, "10 audited") {
		t.Errorf("expected fallback text with totals, got %q", received.Text)
	}

	if len(received.Blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(received.Blocks))
	}

	if received.Blocks[0].Type != "header" {
		t.Errorf("expected first block type header, got %s", received.Blocks[0].Type)
	}

	if fields := received.Blocks[1].Fields; len(fields) != 4 {
		t.Errorf("expected 4 summary fields, got %d", len(fields))
	}
}

func TestSend_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := New(server.URL, WithHTTPClient(server.Client()))
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}

	err = client.Send(context.Background(), Message{Text: "test"})
	if err == nil {
		t.Fatal("expected error for server error response")
	}
}
