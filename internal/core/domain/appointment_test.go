package domain

import "testing"

func TestCanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to AppointmentStatus
		want     bool
	}{
		{StatusScheduled, StatusCompleted, true},
		{StatusScheduled, StatusCancelled, true},
		{StatusCancelled, StatusScheduled, true}, // reschedule
		{StatusCompleted, StatusScheduled, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusCompleted, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s → %s: got %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	if !StatusCompleted.IsTerminal() {
		t.Error("completed must be terminal")
	}
	if StatusScheduled.IsTerminal() || StatusCancelled.IsTerminal() {
		t.Error("scheduled and cancelled must not be terminal")
	}
}

func TestValidDuration(t *testing.T) {
	for _, d := range Durations {
		if !ValidDuration(d) {
			t.Errorf("vocabulary entry %q rejected", d)
		}
	}
	if ValidDuration("90 min") || ValidDuration("") {
		t.Error("labels outside the vocabulary must be rejected")
	}
}
