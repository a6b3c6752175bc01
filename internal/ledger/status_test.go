package ledger

import "testing"

func TestDetermineStatus(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		paid   string
		want   Status
	}{
		{"paid in full", "100", "100", StatusPaid},
		{"paid in full decimal", "99.90", "99.90", StatusPaid},
		{"trailing zeros still equal", "100", "100.00", StatusPaid},
		{"partial payment", "100", "50", StatusPending},
		{"overpayment", "100", "150", StatusPending},
		{"both blank", "", "", StatusPending},
		{"amount blank", "", "100", StatusPending},
		{"paid blank", "100", "", StatusPending},
		{"zero amount", "0", "0", StatusPending},
		{"negative amount", "-10", "-10", StatusPending},
		{"negative paid", "100", "-100", StatusPending},
		{"unparseable amount", "abc", "100", StatusPending},
		{"unparseable paid", "100", "abc", StatusPending},
		{"whitespace around values", " 100 ", " 100 ", StatusPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetermineStatus(tt.amount, tt.paid); got != tt.want {
				t.Errorf("DetermineStatus(%q, %q) = %s, want %s", tt.amount, tt.paid, got, tt.want)
			}
		})
	}
}
