package models

import (
	"strings"
	"testing"
)

func TestNewUsername(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "valid", input: "collector", want: "collector"},
		{name: "trims whitespace", input: "  collector  ", want: "collector"},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace only", input: "   ", wantErr: true},
		{name: "at max length", input: strings.Repeat("a", 50), want: strings.Repeat("a", 50)},
		{name: "over max length", input: strings.Repeat("a", 51), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewUsername(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got.String())
			}
		})
	}
}
