package booking

import (
	"context"
	"testing"

	"booktrack/models"
	"booktrack/utils"
)

func createBooking(t *testing.T, svc *DefaultBookingService, ident models.Identity, serviceID string) *models.Booking {
	t.Helper()
	b, err := svc.CreateBooking(context.Background(), ident, models.BookingCreate{
		ServiceID: serviceID,
		Date:      "2026-09-15",
		Time:      "10:00",
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	return b
}

func TestCreateBookingSnapshotsServiceFields(t *testing.T) {
	svc, _, catalog, _, _ := newTestService(t)
	seedService(t, catalog, "svc-1", "prov-1", 150)

	b := createBooking(t, svc, customer("user-1"), "svc-1")

	if b.Status != models.StatusPending {
		t.Errorf("new booking status = %s, want pending", b.Status)
	}
	if b.PaymentStatus != models.PaymentPending {
		t.Errorf("new booking payment_status = %s, want pending", b.PaymentStatus)
	}
	if b.Amount != 150 {
		t.Errorf("amount = %v, want snapshot of service price 150", b.Amount)
	}
	if b.ProviderID != "prov-1" || b.ServiceName != "Deep Clean" {
		t.Errorf("denormalized fields not snapshotted: %+v", b)
	}
}

func TestCreateBookingRejectsNonCustomers(t *testing.T) {
	svc, _, catalog, _, _ := newTestService(t)
	seedService(t, catalog, "svc-1", "prov-1", 150)

	_, err := svc.CreateBooking(context.Background(), provider("prov-1"), models.BookingCreate{
		ServiceID: "svc-1", Date: "2026-09-15", Time: "10:00",
	})
	wantCode(t, err, utils.CodeForbidden)
}

func TestCreateBookingUnknownService(t *testing.T) {
	svc, _, _, _, _ := newTestService(t)

	_, err := svc.CreateBooking(context.Background(), customer("user-1"), models.BookingCreate{
		ServiceID: "nope", Date: "2026-09-15", Time: "10:00",
	})
	wantCode(t, err, utils.CodeNotFound)
}

func TestGetBookingVisibility(t *testing.T) {
	svc, _, catalog, _, _ := newTestService(t)
	seedService(t, catalog, "svc-1", "prov-1", 100)
	b := createBooking(t, svc, customer("user-1"), "svc-1")

	ctx := context.Background()

	if _, err := svc.GetBooking(ctx, customer("user-1"), b.ID); err != nil {
		t.Errorf("owner should see the booking: %v", err)
	}
	if _, err := svc.GetBooking(ctx, provider("prov-1"), b.ID); err != nil {
		t.Errorf("booking's provider should see it: %v", err)
	}
	if _, err := svc.GetBooking(ctx, adminIdent(), b.ID); err != nil {
		t.Errorf("admin should see it: %v", err)
	}

	_, err := svc.GetBooking(ctx, customer("user-2"), b.ID)
	wantCode(t, err, utils.CodeForbidden)
	_, err = svc.GetBooking(ctx, provider("prov-2"), b.ID)
	wantCode(t, err, utils.CodeForbidden)
	_, err = svc.GetBooking(ctx, customer("user-1"), "missing")
	wantCode(t, err, utils.CodeNotFound)
}

func TestUpdateStatusProviderHappyPath(t *testing.T) {
	svc, _, catalog, _, pub := newTestService(t)
	seedService(t, catalog, "svc-1", "prov-1", 100)
	b := createBooking(t, svc, customer("user-1"), "svc-1")

	ctx := context.Background()
	prov := provider("prov-1")

	for _, next := range []models.BookingStatus{
		models.StatusAccepted,
		models.StatusEnRoute,
		models.StatusStarted,
		models.StatusCompleted,
	} {
		updated, err := svc.UpdateStatus(ctx, prov, b.ID, next)
		if err != nil {
			t.Fatalf("UpdateStatus to %s: %v", next, err)
		}
		if updated.Status != next {
			t.Fatalf("status = %s, want %s", updated.Status, next)
		}
	}

	events := pub.published()
	if len(events) != 4 {
		t.Fatalf("published %d events, want 4", len(events))
	}
	last := events[len(events)-1]
	if last.Channel != "booking_"+b.ID || last.Event.Status != string(models.StatusCompleted) {
		t.Errorf("unexpected final event: %+v", last)
	}
}

func TestUpdateStatusRejectsSkippedStates(t *testing.T) {
	svc, _, catalog, _, pub := newTestService(t)
	seedService(t, catalog, "svc-1", "prov-1", 100)
	b := createBooking(t, svc, customer("user-1"), "svc-1")

	_, err := svc.UpdateStatus(context.Background(), provider("prov-1"), b.ID, models.StatusStarted)
	wantCode(t, err, utils.CodeInvalidTransition)

	if len(pub.published()) != 0 {
		t.Error("no event should be published for a rejected transition")
	}
}

func TestUpdateStatusUnknownStatus(t *testing.T) {
	svc, _, catalog, _, _ := newTestService(t)
	seedService(t, catalog, "svc-1", "prov-1", 100)
	b := createBooking(t, svc, customer("user-1"), "svc-1")

	_, err := svc.UpdateStatus(context.Background(), provider("prov-1"), b.ID, "shipped")
	wantCode(t, err, utils.CodeInvalidInput)
}

func TestUpdateStatusCustomerMayOnlyCancel(t *testing.T) {
	svc, _, catalog, _, _ := newTestService(t)
	seedService(t, catalog, "svc-1", "prov-1", 100)
	b := createBooking(t, svc, customer("user-1"), "svc-1")

	ctx := context.Background()

	_, err := svc.UpdateStatus(ctx, customer("user-1"), b.ID, models.StatusAccepted)
	wantCode(t, err, utils.CodeForbidden)

	updated, err := svc.UpdateStatus(ctx, customer("user-1"), b.ID, models.StatusCancelled)
	if err != nil {
		t.Fatalf("customer cancelling own pending booking: %v", err)
	}
	if updated.Status != models.StatusCancelled {
		t.Errorf("status = %s, want cancelled", updated.Status)
	}
}

func TestUpdateStatusForeignActorsRejected(t *testing.T) {
	svc, _, catalog, _, _ := newTestService(t)
	seedService(t, catalog, "svc-1", "prov-1", 100)
	b := createBooking(t, svc, customer("user-1"), "svc-1")

	ctx := context.Background()

	_, err := svc.UpdateStatus(ctx, provider("prov-2"), b.ID, models.StatusAccepted)
	wantCode(t, err, utils.CodeForbidden)

	_, err = svc.UpdateStatus(ctx, customer("user-2"), b.ID, models.StatusCancelled)
	wantCode(t, err, utils.CodeForbidden)
}

func TestUpdateStatusAdminUnrestrictedByOwnership(t *testing.T) {
	svc, _, catalog, _, _ := newTestService(t)
	seedService(t, catalog, "svc-1", "prov-1", 100)
	b := createBooking(t, svc, customer("user-1"), "svc-1")

	updated, err := svc.UpdateStatus(context.Background(), adminIdent(), b.ID, models.StatusAccepted)
	if err != nil {
		t.Fatalf("admin transition: %v", err)
	}
	if updated.Status != models.StatusAccepted {
		t.Errorf("status = %s, want accepted", updated.Status)
	}

	// Still bound by the state machine.
	_, err = svc.UpdateStatus(context.Background(), adminIdent(), b.ID, models.StatusCompleted)
	wantCode(t, err, utils.CodeInvalidTransition)
}

func TestUpdateStatusLostRaceIsConflict(t *testing.T) {
	svc, repo, catalog, _, pub := newTestService(t)
	seedService(t, catalog, "svc-1", "prov-1", 100)
	b := createBooking(t, svc, customer("user-1"), "svc-1")

	// A concurrent writer moves the booking after our read would have seen
	// pending. The conditional update must then not match.
	realRepo := repo
	svc.Repo = &raceInjectingRepo{fakeBookingRepo: realRepo, id: b.ID, to: models.StatusCancelled}

	_, err := svc.UpdateStatus(context.Background(), provider("prov-1"), b.ID, models.StatusAccepted)
	wantCode(t, err, utils.CodeConflict)

	if len(pub.published()) != 0 {
		t.Error("no event should be published for a lost race")
	}
}

// raceInjectingRepo flips the stored status between GetByID and the
// conditional update, like a second writer winning the race.
type raceInjectingRepo struct {
	*fakeBookingRepo
	id string
	to models.BookingStatus

	injected bool
}

func (r *raceInjectingRepo) GetByID(id string) (*models.Booking, error) {
	b, err := r.fakeBookingRepo.GetByID(id)
	if err == nil && id == r.id && !r.injected {
		r.injected = true
		r.fakeBookingRepo.setStatus(r.id, r.to)
	}
	return b, err
}

func TestListForUserAndProvider(t *testing.T) {
	svc, _, catalog, _, _ := newTestService(t)
	seedService(t, catalog, "svc-1", "prov-1", 100)
	seedService(t, catalog, "svc-2", "prov-2", 200)

	createBooking(t, svc, customer("user-1"), "svc-1")
	createBooking(t, svc, customer("user-1"), "svc-2")
	createBooking(t, svc, customer("user-2"), "svc-1")

	ctx := context.Background()

	mine, err := svc.ListForUser(ctx, customer("user-1"))
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if len(mine) != 2 {
		t.Errorf("user-1 bookings = %d, want 2", len(mine))
	}

	requests, err := svc.ListForProvider(ctx, provider("prov-1"))
	if err != nil {
		t.Fatalf("ListForProvider: %v", err)
	}
	if len(requests) != 2 {
		t.Errorf("prov-1 requests = %d, want 2", len(requests))
	}

	if _, err := svc.ListForUser(ctx, provider("prov-1")); err == nil {
		t.Error("providers must not use the customer listing")
	}
	if _, err := svc.ListForProvider(ctx, customer("user-1")); err == nil {
		t.Error("customers must not use the provider listing")
	}
}
