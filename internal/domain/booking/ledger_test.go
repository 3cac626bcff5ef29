package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staynest/service-stay/internal/domain/identity"
	"github.com/staynest/service-stay/internal/pkg/domain"
)

type fakeGateway struct {
	mu        sync.Mutex
	records   []Record
	fetchErr  error
	createErr error
	updateErr error
	created   []*Booking
	updates   []string
	userQuery string
}

func (g *fakeGateway) FetchAllBookings(context.Context) ([]Record, error) {
	return g.records, g.fetchErr
}

func (g *fakeGateway) FetchBookingsForUser(_ context.Context, userID string) ([]Record, error) {
	g.userQuery = userID
	return g.records, g.fetchErr
}

func (g *fakeGateway) CreateBooking(_ context.Context, b *Booking) (*Booking, error) {
	if g.createErr != nil {
		return nil, g.createErr
	}
	g.created = append(g.created, b)
	return ReconstructBooking(fmt.Sprintf("b-%d", len(g.created)), b.ListingID(), b.UserID(), b.Date(),
		b.Status(), b.SnapshotName(), b.SnapshotImage(), b.CreatedAt()), nil
}

func (g *fakeGateway) UpdateBookingStatus(_ context.Context, id string, expected, next BookingStatus) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.updateErr != nil {
		return g.updateErr
	}
	for i, rec := range g.records {
		if *rec.ID != id {
			continue
		}
		if *rec.Status != string(expected) {
			return domain.NewInvalidStateError(*rec.Status, string(next))
		}
		s := string(next)
		g.records[i].Status = &s
		g.updates = append(g.updates, id)
		return nil
	}
	return domain.NewNotFoundError("Booking", id)
}

func rec(id string, status BookingStatus) Record {
	now := time.Now().UTC()
	return RecordOf(ReconstructBooking(id, "beach", "user-1", now, status, "Beach House", "img", now))
}

var guest = identity.AuthContext{UserID: "user-1", Email: "guest@us.com"}

func TestLedger_LoadAll(t *testing.T) {
	gw := &fakeGateway{records: []Record{rec("a", StatusPending), {}, rec("b", StatusConfirmed)}}
	l := NewLedger(gw)

	require.NoError(t, l.LoadAll(context.Background()))
	require.Len(t, l.Bookings(), 2)
	assert.Equal(t, "a", l.Bookings()[0].ID())
	assert.Equal(t, "b", l.Bookings()[1].ID())
	assert.Equal(t, 1, l.Skipped())
}

func TestLedger_LoadForUserDelegatesFiltering(t *testing.T) {
	other := rec("x", StatusPending)
	someoneElse := "user-2"
	other.UserID = &someoneElse
	gw := &fakeGateway{records: []Record{rec("a", StatusPending), other}}
	l := NewLedger(gw)

	require.NoError(t, l.LoadForUser(context.Background(), "user-1"))
	assert.Equal(t, "user-1", gw.userQuery)
	assert.Len(t, l.Bookings(), 2, "gateway results are not re-filtered")
}

func TestLedger_LoadForUserRequiresUser(t *testing.T) {
	err := NewLedger(&fakeGateway{}).LoadForUser(context.Background(), "")
	assert.True(t, domain.IsAuthRequired(err))
}

func TestLedger_LoadFailureIsBackendError(t *testing.T) {
	l := NewLedger(&fakeGateway{fetchErr: errors.New("timeout")})
	assert.True(t, domain.IsBackend(l.LoadAll(context.Background())))
	assert.True(t, domain.IsBackend(l.LoadForUser(context.Background(), "u")))
}

func TestLedger_CreateBookingIsAlwaysPending(t *testing.T) {
	gw := &fakeGateway{}
	l := NewLedger(gw)

	bk, err := l.CreateBooking(context.Background(), guest, beachHouse(), time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, "b-1", bk.ID())
	assert.Equal(t, StatusPending, bk.Status())
	assert.Equal(t, "Beach House", bk.SnapshotName())
	assert.Empty(t, l.Bookings(), "ledger is not updated until reload")
}

func TestLedger_CreateBookingRequiresIdentity(t *testing.T) {
	gw := &fakeGateway{}
	_, err := NewLedger(gw).CreateBooking(context.Background(), identity.Anonymous(), beachHouse(), time.Now())

	assert.True(t, domain.IsAuthRequired(err))
	assert.Empty(t, gw.created)
}

func TestLedger_CreateBookingBackendFailure(t *testing.T) {
	_, err := NewLedger(&fakeGateway{createErr: errors.New("quota exceeded")}).
		CreateBooking(context.Background(), guest, beachHouse(), time.Now())

	assert.True(t, domain.IsBackend(err))
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestLedger_Confirm(t *testing.T) {
	gw := &fakeGateway{records: []Record{rec("a", StatusPending)}}
	l := NewLedger(gw)
	require.NoError(t, l.LoadAll(context.Background()))

	bk, err := l.Confirm(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, bk.Status())
	assert.Equal(t, StatusConfirmed, l.Bookings()[0].Status(), "in-memory copy updated in place")
	assert.Equal(t, []string{"a"}, gw.updates)
}

func TestLedger_ConfirmAlreadyConfirmed(t *testing.T) {
	gw := &fakeGateway{records: []Record{rec("a", StatusConfirmed)}}
	l := NewLedger(gw)
	require.NoError(t, l.LoadAll(context.Background()))

	_, err := l.Confirm(context.Background(), "a")
	assert.True(t, domain.IsInvalidState(err))
	assert.Equal(t, StatusConfirmed, l.Bookings()[0].Status())
	assert.Empty(t, gw.updates)
}

func TestLedger_ConfirmUnknown(t *testing.T) {
	gw := &fakeGateway{}
	_, err := NewLedger(gw).Confirm(context.Background(), "missing")
	assert.True(t, domain.IsInvalidState(err))
	assert.Empty(t, gw.updates)
}

func TestLedger_ConfirmBackendFailureLeavesStateUnchanged(t *testing.T) {
	gw := &fakeGateway{records: []Record{rec("a", StatusPending)}}
	l := NewLedger(gw)
	require.NoError(t, l.LoadAll(context.Background()))

	gw.updateErr = errors.New("network down")
	_, err := l.Confirm(context.Background(), "a")
	assert.True(t, domain.IsBackend(err))
	assert.Equal(t, StatusPending, l.Bookings()[0].Status())
}

func TestLedger_ConfirmUnknownAtBackendIsBackendError(t *testing.T) {
	gw := &fakeGateway{records: []Record{rec("a", StatusPending)}}
	l := NewLedger(gw)
	require.NoError(t, l.LoadAll(context.Background()))

	gw.records = nil
	_, err := l.Confirm(context.Background(), "a")
	assert.True(t, domain.IsBackend(err))
	assert.Equal(t, StatusPending, l.Bookings()[0].Status())
}

// Two admins holding stale views both try to confirm; the gateway's status
// check lets exactly one through.
func TestLedger_ConcurrentConfirmOneWins(t *testing.T) {
	gw := &fakeGateway{records: []Record{rec("a", StatusPending)}}
	first, second := NewLedger(gw), NewLedger(gw)
	require.NoError(t, first.LoadAll(context.Background()))
	require.NoError(t, second.LoadAll(context.Background()))

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, l := range []*Ledger{first, second} {
		wg.Add(1)
		go func(i int, l *Ledger) {
			defer wg.Done()
			_, errs[i] = l.Confirm(context.Background(), "a")
		}(i, l)
	}
	wg.Wait()

	failures := 0
	for _, err := range errs {
		if err != nil {
			assert.True(t, domain.IsInvalidState(err))
			failures++
		}
	}
	assert.Equal(t, 1, failures)
	assert.Len(t, gw.updates, 1)
}
