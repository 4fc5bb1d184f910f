package booking

import (
	"sort"
	"sync"
	"testing"

	"booktrack/models"
	"booktrack/services/realtime"
	"booktrack/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// In-memory stand-ins for the Mongo repositories. They mirror the documented
// repository semantics, including conditional status updates and (nil, nil)
// for absent rows.

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *fakeBookingRepo) Create(b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, utils.NewNotFound("Booking not found")
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) ListByUser(userID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeBookingRepo) ListByProvider(providerID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ProviderID == providerID {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeBookingRepo) ListAll() ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (r *fakeBookingRepo) UpdateStatusFrom(id string, from, to models.BookingStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok || b.Status != from {
		return false, nil
	}
	b.Status = to
	return true, nil
}

func (r *fakeBookingRepo) MarkPaid(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return utils.NewNotFound("Booking not found")
	}
	b.PaymentStatus = models.PaymentPaid
	return nil
}

func (r *fakeBookingRepo) ConfirmPaid(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok || b.Status != models.StatusCompleted {
		return false, nil
	}
	b.PaymentStatus = models.PaymentPaid
	return true, nil
}

func (r *fakeBookingRepo) CountAll() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.bookings)), nil
}

func (r *fakeBookingRepo) TopBooked(limit int) ([]models.TopService, error) {
	return nil, nil
}

// setStatus mutates a stored booking directly, simulating a concurrent writer
// that got in between a reader's fetch and its conditional update.
func (r *fakeBookingRepo) setStatus(id string, s models.BookingStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings[id].Status = s
}

type fakeCatalogRepo struct {
	mu       sync.Mutex
	services map[string]*models.Service
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{services: make(map[string]*models.Service)}
}

func (r *fakeCatalogRepo) Create(svc *models.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *svc
	r.services[svc.ID] = &cp
	return nil
}

func (r *fakeCatalogRepo) GetByID(id string) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	svc, ok := r.services[id]
	if !ok {
		return nil, utils.NewNotFound("Service not found")
	}
	cp := *svc
	return &cp, nil
}

func (r *fakeCatalogRepo) List(filter models.ServiceFilter) ([]models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Service
	for _, svc := range r.services {
		out = append(out, *svc)
	}
	return out, nil
}

func (r *fakeCatalogRepo) ListByProvider(providerID string) ([]models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Service
	for _, svc := range r.services {
		if svc.ProviderID == providerID {
			out = append(out, *svc)
		}
	}
	return out, nil
}

func (r *fakeCatalogRepo) UpdateFields(id string, fields bson.M) error { return nil }

func (r *fakeCatalogRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.services, id)
	return nil
}

func (r *fakeCatalogRepo) Count() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.services)), nil
}

type fakePaymentRepo struct {
	mu   sync.Mutex
	txns []*models.PaymentTransaction
}

func (r *fakePaymentRepo) Create(txn *models.PaymentTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *txn
	r.txns = append(r.txns, &cp)
	return nil
}

func (r *fakePaymentRepo) MarkPaidBySession(sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, txn := range r.txns {
		if txn.SessionID == sessionID {
			txn.PaymentStatus = models.TransactionPaid
			return nil
		}
	}
	return utils.NewNotFound("Transaction not found")
}

func (r *fakePaymentRepo) LatestByBooking(bookingID string) (*models.PaymentTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.txns) - 1; i >= 0; i-- {
		if r.txns[i].BookingID == bookingID {
			cp := *r.txns[i]
			return &cp, nil
		}
	}
	return nil, nil
}

// recordingPublisher captures fan-out events synchronously.
type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

type publishedEvent struct {
	Channel string
	Event   realtime.Event
}

func (p *recordingPublisher) Publish(channel string, ev realtime.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{Channel: channel, Event: ev})
}

func (p *recordingPublisher) published() []publishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]publishedEvent, len(p.events))
	copy(out, p.events)
	return out
}

// Test fixture helpers.

func newTestService(t *testing.T) (*DefaultBookingService, *fakeBookingRepo, *fakeCatalogRepo, *fakePaymentRepo, *recordingPublisher) {
	t.Helper()
	bookings := newFakeBookingRepo()
	catalog := newFakeCatalogRepo()
	payments := &fakePaymentRepo{}
	pub := &recordingPublisher{}
	svc := &DefaultBookingService{
		Repo:     bookings,
		Catalog:  catalog,
		Payments: payments,
		Events:   pub,
	}
	return svc, bookings, catalog, payments, pub
}

func seedService(t *testing.T, catalog *fakeCatalogRepo, id, providerID string, price float64) {
	t.Helper()
	if err := catalog.Create(&models.Service{
		ID:           id,
		ProviderID:   providerID,
		ProviderName: "Pro " + providerID,
		Name:         "Deep Clean",
		Price:        price,
	}); err != nil {
		t.Fatalf("seed service: %v", err)
	}
}

func customer(id string) models.Identity {
	return models.Identity{ID: id, Role: models.RoleUser, Name: "Customer " + id}
}

func provider(id string) models.Identity {
	return models.Identity{ID: id, Role: models.RoleProvider, Name: "Provider " + id}
}

func adminIdent() models.Identity {
	return models.Identity{ID: "admin-1", Role: models.RoleAdmin, Name: "Admin"}
}

func wantCode(t *testing.T, err error, code utils.ErrorCode) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", code)
	}
	got, ok := utils.CodeOf(err)
	if !ok {
		t.Fatalf("expected %s error, got unclassified: %v", code, err)
	}
	if got != code {
		t.Fatalf("expected %s error, got %s: %v", code, got, err)
	}
}
