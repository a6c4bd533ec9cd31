package leave

import (
	"testing"
	"time"
)

func d(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse %s: %v", s, err)
	}
	return v
}

func TestTotalDays(t *testing.T) {
	cases := []struct {
		name      string
		start     string
		end       string
		startHalf bool
		endHalf   bool
		want      float64
	}{
		{"full week", "2025-01-06", "2025-01-10", false, false, 5},
		{"start half day", "2025-01-06", "2025-01-10", true, false, 4.5},
		{"end half day", "2025-01-06", "2025-01-10", false, true, 4.5},
		{"both halves", "2025-01-06", "2025-01-10", true, true, 4},
		{"single day", "2025-01-06", "2025-01-06", false, false, 1},
		{"single half day", "2025-01-06", "2025-01-06", true, false, 0.5},
		{"single day both halves", "2025-01-06", "2025-01-06", true, true, 0},
		{"inverted range clamps", "2025-01-10", "2025-01-06", false, false, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := TotalDays(d(t, c.start), d(t, c.end), c.startHalf, c.endHalf)
			if got != c.want {
				t.Fatalf("TotalDays = %v, want %v", got, c.want)
			}
		})
	}
}

func TestChainThreeStages(t *testing.T) {
	c := NewChain(3)

	cases := []struct {
		stage Stage
		from  RequestStatus
		to    RequestStatus
	}{
		{StageN1, StatusPending, StatusApprovedN1},
		{StageN2, StatusApprovedN1, StatusApprovedN2},
		{StageHR, StatusApprovedN2, StatusApprovedHR},
	}
	for _, tc := range cases {
		from, err := c.Expected(tc.stage)
		if err != nil || from != tc.from {
			t.Fatalf("Expected(%s) = (%v, %v), want %v", tc.stage, from, err, tc.from)
		}
		to, err := c.After(tc.stage)
		if err != nil || to != tc.to {
			t.Fatalf("After(%s) = (%v, %v), want %v", tc.stage, to, err, tc.to)
		}
	}
}

func TestChainShortChains(t *testing.T) {
	two := NewChain(2)
	from, err := two.Expected(StageHR)
	if err != nil || from != StatusApprovedN1 {
		t.Fatalf("two-stage Expected(hr) = (%v, %v), want approved_n1", from, err)
	}
	to, err := two.After(StageHR)
	if err != nil || to != StatusApproved {
		t.Fatalf("two-stage After(hr) = (%v, %v), want approved", to, err)
	}
	if two.Contains(StageN2) {
		t.Fatal("two-stage chain should not contain n2")
	}

	one := NewChain(1)
	from, err = one.Expected(StageHR)
	if err != nil || from != StatusPending {
		t.Fatalf("one-stage Expected(hr) = (%v, %v), want pending", from, err)
	}
	to, err = one.After(StageHR)
	if err != nil || to != StatusApproved {
		t.Fatalf("one-stage After(hr) = (%v, %v), want approved", to, err)
	}

	if _, err := one.Expected(StageN1); err == nil {
		t.Fatal("one-stage chain accepted n1")
	}
}

func TestStatusTerminal(t *testing.T) {
	terminal := []RequestStatus{StatusApprovedHR, StatusApproved, StatusRejected}
	for _, s := range terminal {
		if !s.IsTerminal() {
			t.Fatalf("%s should be terminal", s)
		}
	}
	for _, s := range []RequestStatus{StatusPending, StatusApprovedN1, StatusApprovedN2} {
		if s.IsTerminal() {
			t.Fatalf("%s should not be terminal", s)
		}
	}
}
