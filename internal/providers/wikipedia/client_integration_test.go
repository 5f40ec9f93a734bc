//go:build integration

package wikipedia

import (
	"log/slog"
	"strings"
	"testing"
)

func TestClient_FetchSummary_Integration(t *testing.T) {
	client := NewClient(slog.Default())

	t.Logf("Making API call to the Wikipedia action API...")

	resp, err := client.FetchSummary("Paris", 5)
	if err != nil {
		t.Fatalf("Failed to fetch summary: %v", err)
	}

	if len(resp.Query.Pages) == 0 {
		t.Fatal("Response contains no pages")
	}

	for id, page := range resp.Query.Pages {
		t.Logf("Page %s: %s", id, page.Title)
		t.Logf("  URL: %s", page.FullURL)
		t.Logf("  Extract: %.120s...", page.Extract)

		if page.Missing != nil {
			t.Error("Paris page reported missing")
		}
		if page.Extract == "" {
			t.Error("Extract is empty")
		}
		if !strings.HasPrefix(page.FullURL, "https://en.wikipedia.org/wiki/") {
			t.Errorf("FullURL = %q, want a canonical en.wikipedia.org URL", page.FullURL)
		}
	}
}
