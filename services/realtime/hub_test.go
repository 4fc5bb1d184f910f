package realtime

import (
	"errors"
	"testing"
	"time"
)

type chanListener struct {
	ch chan Event
}

func newChanListener() *chanListener {
	return &chanListener{ch: make(chan Event, 16)}
}

func (l *chanListener) Send(ev Event) error {
	l.ch <- ev
	return nil
}

func (l *chanListener) recv(t *testing.T) Event {
	t.Helper()
	select {
	case ev := <-l.ch:
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func (l *chanListener) expectNone(t *testing.T) {
	t.Helper()
	select {
	case ev := <-l.ch:
		t.Fatalf("unexpected event: %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestPublishDeliversToJoinedListeners(t *testing.T) {
	hub := NewHub()
	a := newChanListener()
	b := newChanListener()

	leaveA := hub.Join(BookingChannel("b-1"), a)
	defer leaveA()
	leaveB := hub.Join(BookingChannel("b-1"), b)
	defer leaveB()

	hub.Publish(BookingChannel("b-1"), Event{BookingID: "b-1", Status: "accepted"})

	for _, l := range []*chanListener{a, b} {
		ev := l.recv(t)
		if ev.BookingID != "b-1" || ev.Status != "accepted" {
			t.Errorf("unexpected event: %+v", ev)
		}
	}
}

func TestPublishScopedToChannel(t *testing.T) {
	hub := NewHub()
	other := newChanListener()
	leave := hub.Join(BookingChannel("b-2"), other)
	defer leave()

	hub.Publish(BookingChannel("b-1"), Event{BookingID: "b-1", Status: "accepted"})

	other.expectNone(t)
}

func TestNoReplayForLateJoiners(t *testing.T) {
	hub := NewHub()

	hub.Publish(BookingChannel("b-1"), Event{BookingID: "b-1", Status: "accepted"})

	late := newChanListener()
	leave := hub.Join(BookingChannel("b-1"), late)
	defer leave()

	late.expectNone(t)
}

func TestLeaveStopsDelivery(t *testing.T) {
	hub := NewHub()
	l := newChanListener()

	leave := hub.Join(BookingChannel("b-1"), l)
	hub.Publish(BookingChannel("b-1"), Event{BookingID: "b-1", Status: "accepted"})
	l.recv(t)

	leave()
	leave() // leaving twice is harmless

	hub.Publish(BookingChannel("b-1"), Event{BookingID: "b-1", Status: "started"})
	l.expectNone(t)

	if n := hub.ListenerCount(BookingChannel("b-1")); n != 0 {
		t.Errorf("listener count = %d, want 0", n)
	}
}

func TestPublishWithNoListenersIsNoop(t *testing.T) {
	hub := NewHub()
	// Must not panic or block.
	hub.Publish(BookingChannel("b-1"), Event{BookingID: "b-1", Status: "accepted"})
}

type failingListener struct{}

func (failingListener) Send(Event) error { return errors.New("gone") }

func TestFailingListenerDoesNotBlockOthers(t *testing.T) {
	hub := NewHub()
	ok := newChanListener()

	leaveBad := hub.Join(BookingChannel("b-1"), failingListener{})
	defer leaveBad()
	leaveOK := hub.Join(BookingChannel("b-1"), ok)
	defer leaveOK()

	hub.Publish(BookingChannel("b-1"), Event{BookingID: "b-1", Status: "completed"})

	ev := ok.recv(t)
	if ev.Status != "completed" {
		t.Errorf("unexpected event: %+v", ev)
	}
}
