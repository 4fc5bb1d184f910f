package booking

import (
	"testing"

	"booktrack/models"
)

func TestCanTransitionHappyPath(t *testing.T) {
	chain := []models.BookingStatus{
		models.StatusPending,
		models.StatusAccepted,
		models.StatusEnRoute,
		models.StatusStarted,
		models.StatusCompleted,
	}
	for i := 0; i < len(chain)-1; i++ {
		if !CanTransition(chain[i], chain[i+1]) {
			t.Errorf("expected %s -> %s to be allowed", chain[i], chain[i+1])
		}
	}
}

func TestCanTransitionRejectsSkips(t *testing.T) {
	cases := []struct {
		from, to models.BookingStatus
	}{
		{models.StatusPending, models.StatusStarted},
		{models.StatusPending, models.StatusCompleted},
		{models.StatusPending, models.StatusEnRoute},
		{models.StatusAccepted, models.StatusStarted},
		{models.StatusAccepted, models.StatusCompleted},
		{models.StatusEnRoute, models.StatusCompleted},
		{models.StatusStarted, models.StatusAccepted},
		{models.StatusAccepted, models.StatusPending}, // no going back
	}
	for _, tc := range cases {
		if CanTransition(tc.from, tc.to) {
			t.Errorf("expected %s -> %s to be rejected", tc.from, tc.to)
		}
	}
}

func TestCancellableFromEveryNonTerminalState(t *testing.T) {
	for _, from := range []models.BookingStatus{
		models.StatusPending,
		models.StatusAccepted,
		models.StatusEnRoute,
		models.StatusStarted,
	} {
		if !CanTransition(from, models.StatusCancelled) {
			t.Errorf("expected %s -> cancelled to be allowed", from)
		}
	}
}

func TestTerminalStatesHaveNoExits(t *testing.T) {
	for _, terminal := range []models.BookingStatus{
		models.StatusCompleted,
		models.StatusRejected,
		models.StatusCancelled,
	} {
		if !IsTerminal(terminal) {
			t.Errorf("expected %s to be terminal", terminal)
		}
		for _, to := range []models.BookingStatus{
			models.StatusPending,
			models.StatusAccepted,
			models.StatusEnRoute,
			models.StatusStarted,
			models.StatusCompleted,
			models.StatusCancelled,
		} {
			if CanTransition(terminal, to) {
				t.Errorf("expected no exit from %s, got %s", terminal, to)
			}
		}
	}
}

func TestIsValidStatus(t *testing.T) {
	if !IsValidStatus(models.StatusEnRoute) {
		t.Error("en-route should be a valid status")
	}
	if IsValidStatus("shipped") {
		t.Error("unknown status should be invalid")
	}
	if IsValidStatus("") {
		t.Error("empty status should be invalid")
	}
}
