package audit

import (
	"path/filepath"
	"testing"
	"time"

	"portal/internal/models"
)

func newTestFilesystemClient(t *testing.T) *FilesystemClient {
	t.Helper()
	config := models.FilesystemAuditConfiguration{
		Directory: filepath.Join(t.TempDir(), "audit_index"),
	}
	client := NewFilesystemClient(config)
	t.Cleanup(func() { _ = client.Close() })
	return client.(*FilesystemClient)
}

func sendTestEntry(t *testing.T, client *FilesystemClient, action, username, outcome string, ts time.Time) {
	t.Helper()
	err := client.Send(Entry{
		Message:   "test entry",
		Action:    action,
		Username:  username,
		Phone:     "5551234567",
		Outcome:   outcome,
		Timestamp: ts,
	})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
}

func TestFilesystemSendAndSearch(t *testing.T) {
	client := newTestFilesystemClient(t)

	now := time.Now()
	sendTestEntry(t, client, ChallengeIssued, "jdoe", OutcomeSuccess, now)

	results, err := client.Search(map[string][]string{
		"action": {ChallengeIssued},
	})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0]["username"] != "jdoe" {
		t.Errorf("expected username jdoe, got %v", results[0]["username"])
	}
	if results[0]["outcome"] != OutcomeSuccess {
		t.Errorf("expected outcome %s, got %v", OutcomeSuccess, results[0]["outcome"])
	}
}

func TestFilesystemSearchFilters(t *testing.T) {
	client := newTestFilesystemClient(t)

	now := time.Now()
	sendTestEntry(t, client, ChallengeIssued, "jdoe", OutcomeSuccess, now)
	sendTestEntry(t, client, ChallengeVerified, "jdoe", OutcomeFailure, now)
	sendTestEntry(t, client, ChallengeIssued, "asmith", OutcomeSuccess, now)

	t.Run("filters on a single field", func(t *testing.T) {
		results, err := client.Search(map[string][]string{
			"username": {"jdoe"},
		})
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if len(results) != 2 {
			t.Fatalf("expected 2 results, got %d", len(results))
		}
	})

	t.Run("combines fields as a conjunction", func(t *testing.T) {
		results, err := client.Search(map[string][]string{
			"username": {"jdoe"},
			"action":   {ChallengeIssued},
		})
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if len(results) != 1 {
			t.Fatalf("expected 1 result, got %d", len(results))
		}
	})

	t.Run("multiple values for a field form a disjunction", func(t *testing.T) {
		results, err := client.Search(map[string][]string{
			"username": {"jdoe", "asmith"},
			"action":   {ChallengeIssued},
		})
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if len(results) != 2 {
			t.Fatalf("expected 2 results, got %d", len(results))
		}
	})

	t.Run("no criteria matches everything in range", func(t *testing.T) {
		results, err := client.Search(map[string][]string{})
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if len(results) != 3 {
			t.Fatalf("expected 3 results, got %d", len(results))
		}
	})

	t.Run("old entries fall outside the search window", func(t *testing.T) {
		sendTestEntry(t, client, ChallengeExpired, "old-user", OutcomeFailure, now.AddDate(0, 0, -45))

		results, err := client.Search(map[string][]string{
			"username": {"old-user"},
		})
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if len(results) != 0 {
			t.Fatalf("expected 0 results, got %d", len(results))
		}
	})
}
