package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turfly/TurfBookingService/internal/domain"
	bookingRepo "github.com/turfly/TurfBookingService/internal/infra/storage/booking"
	slotRepo "github.com/turfly/TurfBookingService/internal/infra/storage/slot"
	"github.com/turfly/TurfBookingService/internal/service/bookings/models"
	"github.com/turfly/TurfBookingService/pkg/ptr"
	"github.com/turfly/TurfBookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking

	cancelled        []int64
	statusUpdates    map[int64]domain.BookingStatus
	paymentUpdates   map[int64]domain.PaymentStatus
	getByCustomerArg domain.CustomerBookingsFilter
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{
		bookings:       make(map[int64]*domain.Booking),
		statusUpdates:  make(map[int64]domain.BookingStatus),
		paymentUpdates: make(map[int64]domain.PaymentStatus),
	}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return repo
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) GetByCustomer(_ context.Context, filter domain.CustomerBookingsFilter) ([]*domain.Booking, error) {
	f.getByCustomerArg = filter
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.CustomerID == filter.CustomerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	if _, ok := f.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.statusUpdates[id] = status
	f.bookings[id].Status = status
	return nil
}

func (f *fakeBookingRepo) UpdatePaymentStatus(_ context.Context, id int64, status domain.PaymentStatus) error {
	if _, ok := f.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.paymentUpdates[id] = status
	f.bookings[id].PaymentStatus = status
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64) error {
	if _, ok := f.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.cancelled = append(f.cancelled, id)
	f.bookings[id].Status = domain.StatusCancelled
	return nil
}

type fakeSlotRepo struct {
	err      error
	released []bool
}

func (f *fakeSlotRepo) SetBooked(_ context.Context, _ int64, _ time.Time, _, _ types.TimeString, isBooked bool) error {
	if f.err != nil {
		return f.err
	}
	f.released = append(f.released, isBooked)
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:            101,
		CustomerID:    7,
		VenueID:       42,
		BookingDate:   time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime:     "10:00",
		EndTime:       "11:00",
		Sport:         domain.SportFootball,
		Status:        domain.StatusPending,
		PaymentStatus: domain.PaymentPending,
		Amount:        decimal.NewFromInt(1200),
	}
}

func TestGetByID_OwnerOnly(t *testing.T) {
	svc := NewService(newFakeBookingRepo(testBooking()), &fakeSlotRepo{}, fakeTxManager{}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 101, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(101), resp.ID)

	_, err = svc.GetByID(context.Background(), 101, 8)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(context.Background(), 999, 7)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel_ReleasesSlot(t *testing.T) {
	repo := newFakeBookingRepo(testBooking())
	slots := &fakeSlotRepo{}
	svc := NewService(repo, slots, fakeTxManager{}, nopLogger{})

	err := svc.Cancel(context.Background(), 101, &models.CancelBookingRequest{CustomerID: 7})

	require.NoError(t, err)
	assert.Equal(t, []int64{101}, repo.cancelled)
	// Слот освобождён (isBooked=false)
	require.Len(t, slots.released, 1)
	assert.False(t, slots.released[0])
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	booking := testBooking()
	booking.Status = domain.StatusCancelled
	svc := NewService(newFakeBookingRepo(booking), &fakeSlotRepo{}, fakeTxManager{}, nopLogger{})

	err := svc.Cancel(context.Background(), 101, &models.CancelBookingRequest{CustomerID: 7})

	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_OwnerOnly(t *testing.T) {
	svc := NewService(newFakeBookingRepo(testBooking()), &fakeSlotRepo{}, fakeTxManager{}, nopLogger{})

	err := svc.Cancel(context.Background(), 101, &models.CancelBookingRequest{CustomerID: 99})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel_MissingSlotRowTolerated(t *testing.T) {
	// Бронирование без сгенерированного слота отменяется без ошибки
	svc := NewService(
		newFakeBookingRepo(testBooking()),
		&fakeSlotRepo{err: slotRepo.ErrSlotNotFound},
		fakeTxManager{},
		nopLogger{},
	)

	err := svc.Cancel(context.Background(), 101, &models.CancelBookingRequest{CustomerID: 7})

	assert.NoError(t, err)
}

func TestUpdateStatus_PaymentCompletedConfirmsBooking(t *testing.T) {
	repo := newFakeBookingRepo(testBooking())
	svc := NewService(repo, &fakeSlotRepo{}, fakeTxManager{}, nopLogger{})

	resp, err := svc.UpdateStatus(context.Background(), 101, &models.UpdateStatusRequest{
		PaymentStatus: ptr.Ptr("completed"),
	})

	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "completed", resp.PaymentStatus)
	assert.Equal(t, domain.StatusConfirmed, repo.statusUpdates[101])
	assert.Equal(t, domain.PaymentCompleted, repo.paymentUpdates[101])
}

func TestUpdateStatus_PaymentFailedKeepsPending(t *testing.T) {
	repo := newFakeBookingRepo(testBooking())
	svc := NewService(repo, &fakeSlotRepo{}, fakeTxManager{}, nopLogger{})

	resp, err := svc.UpdateStatus(context.Background(), 101, &models.UpdateStatusRequest{
		PaymentStatus: ptr.Ptr("failed"),
	})

	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "failed", resp.PaymentStatus)
	_, statusTouched := repo.statusUpdates[101]
	assert.False(t, statusTouched)
}

func TestUpdateStatus_CancelViaStatusRejected(t *testing.T) {
	svc := NewService(newFakeBookingRepo(testBooking()), &fakeSlotRepo{}, fakeTxManager{}, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 101, &models.UpdateStatusRequest{
		Status: ptr.Ptr("cancelled"),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatus_TerminalStatusRejected(t *testing.T) {
	booking := testBooking()
	booking.Status = domain.StatusCancelled
	svc := NewService(newFakeBookingRepo(booking), &fakeSlotRepo{}, fakeTxManager{}, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 101, &models.UpdateStatusRequest{
		Status: ptr.Ptr("confirmed"),
	})

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateStatus_RequiresAtLeastOneField(t *testing.T) {
	svc := NewService(newFakeBookingRepo(testBooking()), &fakeSlotRepo{}, fakeTxManager{}, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 101, &models.UpdateStatusRequest{})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetCustomerBookings_DefaultExcludesCancelled(t *testing.T) {
	repo := newFakeBookingRepo(testBooking())
	svc := NewService(repo, &fakeSlotRepo{}, fakeTxManager{}, nopLogger{})

	_, err := svc.GetCustomerBookings(context.Background(), &models.GetCustomerBookingsRequest{CustomerID: 7})

	require.NoError(t, err)
	assert.False(t, repo.getByCustomerArg.IncludeInactive)
	assert.Nil(t, repo.getByCustomerArg.Status)
}

func TestGetCustomerBookings_InvalidStatusFilter(t *testing.T) {
	svc := NewService(newFakeBookingRepo(), &fakeSlotRepo{}, fakeTxManager{}, nopLogger{})

	_, err := svc.GetCustomerBookings(context.Background(), &models.GetCustomerBookingsRequest{
		CustomerID: 7,
		Status:     ptr.Ptr("done"),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetCustomerBookings_EmptyResult(t *testing.T) {
	svc := NewService(newFakeBookingRepo(), &fakeSlotRepo{}, fakeTxManager{}, nopLogger{})

	resp, err := svc.GetCustomerBookings(context.Background(), &models.GetCustomerBookingsRequest{CustomerID: 7})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Empty(t, resp.Bookings)
	assert.False(t, errors.Is(err, ErrBookingNotFound))
}
