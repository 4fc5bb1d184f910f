package booking

import "booktrack/models"

// nextStates is the adjacency table of the booking lifecycle. Cancellation is
// reachable from every non-terminal state; everything else follows the strict
// chain. completed, rejected and cancelled are terminal.
var nextStates = map[models.BookingStatus][]models.BookingStatus{
	models.StatusPending:   {models.StatusAccepted, models.StatusRejected, models.StatusCancelled},
	models.StatusAccepted:  {models.StatusEnRoute, models.StatusCancelled},
	models.StatusEnRoute:   {models.StatusStarted, models.StatusCancelled},
	models.StatusStarted:   {models.StatusCompleted, models.StatusCancelled},
	models.StatusCompleted: {},
	models.StatusRejected:  {},
	models.StatusCancelled: {},
}

// IsValidStatus reports whether s is a recognized booking status.
func IsValidStatus(s models.BookingStatus) bool {
	_, ok := nextStates[s]
	return ok
}

// CanTransition reports whether the state machine allows moving from one
// status to another. Anything off the table is rejected.
func CanTransition(from, to models.BookingStatus) bool {
	for _, next := range nextStates[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is possible from s.
func IsTerminal(s models.BookingStatus) bool {
	next, ok := nextStates[s]
	if !ok {
		return true
	}
	return len(next) == 0
}
