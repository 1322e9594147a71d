package models

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewComment(t *testing.T) {
	itemID := uuid.New()
	userID := uuid.New()

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		c, ok := NewComment(itemID, userID, "  nice!  ")
		if !ok {
			t.Fatal("expected comment to be created")
		}
		if c.Content != "nice!" {
			t.Fatalf("expected trimmed content %q, got %q", "nice!", c.Content)
		}
	})

	t.Run("rejects empty text", func(t *testing.T) {
		if _, ok := NewComment(itemID, userID, ""); ok {
			t.Fatal("expected rejection of empty text")
		}
	})

	t.Run("rejects whitespace-only text", func(t *testing.T) {
		if _, ok := NewComment(itemID, userID, "   \t\n "); ok {
			t.Fatal("expected rejection of whitespace-only text")
		}
	})

	t.Run("generates identity and timestamp", func(t *testing.T) {
		c, ok := NewComment(itemID, userID, "hello")
		if !ok {
			t.Fatal("expected comment to be created")
		}
		if c.ID == uuid.Nil {
			t.Fatal("expected non-nil ID")
		}
		if c.CreatedAt.IsZero() {
			t.Fatal("expected non-zero CreatedAt")
		}
	})
}

func TestNormalizeAuthor(t *testing.T) {
	avatar := "https://cdn.example.com/a.png"
	tests := []struct {
		name     string
		raw      string
		wantLen  int
		wantUser string
	}{
		{"bare object", `{"username":"a","avatar_url":null}`, 1, "a"},
		{"one-element array", `[{"username":"a","avatar_url":"` + avatar + `"}]`, 1, "a"},
		{"null", `null`, 0, ""},
		{"empty array", `[]`, 0, ""},
		{"empty input", ``, 0, ""},
		{"multi-element array keeps first", `[{"username":"a"},{"username":"b"}]`, 1, "a"},
		{"malformed json", `{"username":`, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var raw []byte
			if tt.raw != "" {
				raw = []byte(tt.raw)
			}
			authors := NormalizeAuthor(raw)
			if authors == nil {
				t.Fatal("expected non-nil slice")
			}
			if len(authors) != tt.wantLen {
				t.Fatalf("expected %d authors, got %d", tt.wantLen, len(authors))
			}
			if tt.wantLen > 0 && authors[0].Username != tt.wantUser {
				t.Fatalf("expected username %q, got %q", tt.wantUser, authors[0].Username)
			}
		})
	}
}

func TestComment_DisplayAuthor(t *testing.T) {
	t.Run("returns joined author when present", func(t *testing.T) {
		c := Comment{Authors: []Author{{Username: "a"}}}
		if got := c.DisplayAuthor().Username; got != "a" {
			t.Fatalf("expected %q, got %q", "a", got)
		}
	})

	t.Run("falls back to placeholder when profile absent", func(t *testing.T) {
		c := Comment{Authors: []Author{}}
		if got := c.DisplayAuthor().Username; got != PlaceholderUsername {
			t.Fatalf("expected placeholder %q, got %q", PlaceholderUsername, got)
		}
	})
}

func TestComposer(t *testing.T) {
	t.Run("submit clears the draft and returns trimmed text", func(t *testing.T) {
		var c Composer
		c.SetDraft("  nice!  ")
		text, ok := c.Submit()
		if !ok {
			t.Fatal("expected submittable draft")
		}
		if text != "nice!" {
			t.Fatalf("expected %q, got %q", "nice!", text)
		}
		if c.Draft() != "" {
			t.Fatalf("expected cleared draft, got %q", c.Draft())
		}
	})

	t.Run("empty draft is not submittable", func(t *testing.T) {
		var c Composer
		c.SetDraft("   ")
		if _, ok := c.Submit(); ok {
			t.Fatal("expected non-submittable draft")
		}
	})

	t.Run("restore puts failed text back", func(t *testing.T) {
		var c Composer
		c.SetDraft("draft text")
		text, _ := c.Submit()
		c.Restore(text)
		if c.Draft() != "draft text" {
			t.Fatalf("expected restored draft, got %q", c.Draft())
		}
	})
}
