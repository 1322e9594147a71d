package models

import "testing"

func TestProjection_Toggle(t *testing.T) {
	t.Run("inactive becomes active with count incremented", func(t *testing.T) {
		p := Projection{Active: false, Count: 3}
		next := p.Toggle()
		if !next.Active {
			t.Fatal("expected active after toggle")
		}
		if next.Count != 4 {
			t.Fatalf("expected count 4, got %d", next.Count)
		}
	})

	t.Run("active becomes inactive with count decremented", func(t *testing.T) {
		p := Projection{Active: true, Count: 4}
		next := p.Toggle()
		if next.Active {
			t.Fatal("expected inactive after toggle")
		}
		if next.Count != 3 {
			t.Fatalf("expected count 3, got %d", next.Count)
		}
	})

	t.Run("does not mutate the receiver", func(t *testing.T) {
		p := Projection{Active: false, Count: 1}
		_ = p.Toggle()
		if p.Active || p.Count != 1 {
			t.Fatalf("receiver mutated: %+v", p)
		}
	})
}

// After N toggles the flag equals initial XOR (N odd), and the counter has
// moved by exactly one step per net flip — regardless of anything the
// network does, because Toggle never waits for it.
func TestProjection_ToggleSequenceLaws(t *testing.T) {
	tests := []struct {
		name    string
		initial Projection
		toggles int
	}{
		{"zero toggles", Projection{Active: false, Count: 5}, 0},
		{"single toggle from inactive", Projection{Active: false, Count: 3}, 1},
		{"single toggle from active", Projection{Active: true, Count: 10}, 1},
		{"double toggle returns to start", Projection{Active: false, Count: 7}, 2},
		{"odd run", Projection{Active: true, Count: 2}, 5},
		{"even run", Projection{Active: false, Count: 0}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.initial
			for i := 0; i < tt.toggles; i++ {
				p = p.Toggle()
			}

			wantActive := tt.initial.Active != (tt.toggles%2 == 1)
			if p.Active != wantActive {
				t.Fatalf("after %d toggles expected active=%v, got %v", tt.toggles, wantActive, p.Active)
			}

			wantCount := tt.initial.Count
			switch {
			case p.Active && !tt.initial.Active:
				wantCount++
			case !p.Active && tt.initial.Active:
				wantCount--
			}
			if p.Count != wantCount {
				t.Fatalf("after %d toggles expected count=%d, got %d", tt.toggles, wantCount, p.Count)
			}
		})
	}
}
