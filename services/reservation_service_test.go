package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hotel-reservation/models"
)

func newTestReservationService(rooms *memFacade[models.Room], list *memFacade[models.Reservation]) *ReservationService {
	return NewReservationService(list, rooms, nil, zap.NewNop())
}

func TestSearch_Scenario(t *testing.T) {
	rooms := newRoomStore(models.Room{ID: 1})
	list := newReservationStore(models.Reservation{ID: 1, IDRoom: 1, CheckInDate: jan(10), CheckOutDate: jan(15)})
	svc := newTestReservationService(rooms, list)
	ctx := context.Background()

	got, err := svc.Search(ctx, "2024-01-05", "2024-01-10")
	require.NoError(t, err)
	assert.Equal(t, []uint{1}, roomIDs(got))

	got, err = svc.Search(ctx, "2024-01-12", "2024-01-20")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearch_InvalidInput(t *testing.T) {
	svc := newTestReservationService(newRoomStore(), newReservationStore())
	ctx := context.Background()

	tests := []struct {
		name, in, out, msg string
	}{
		{"bad check-in", "bad-date", "2024-01-10", msgDateFormat},
		{"bad check-in, missing check-out", "bad-date", "", msgDatesRequired},
		{"bad check-out", "2024-01-10", "2024/01/12", msgDateFormat},
		{"missing check-in", "", "2024-01-10", msgDatesRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Search(ctx, tt.in, tt.out)
			require.Error(t, err)
			assert.Equal(t, KindBadRequest, KindOf(err))

			var se *Error
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tt.msg, se.PublicMessage())
		})
	}
}

func TestSearch_InvertedRangeIsProcessed(t *testing.T) {
	rooms := newRoomStore(models.Room{ID: 1})
	list := newReservationStore(models.Reservation{IDRoom: 1, CheckInDate: jan(10), CheckOutDate: jan(15)})
	svc := newTestReservationService(rooms, list)

	got, err := svc.Search(context.Background(), "2024-01-20", "2024-01-12")
	require.NoError(t, err)
	assert.Equal(t, []uint{1}, roomIDs(got))
}

func TestSearch_StoreFailureIsInternal(t *testing.T) {
	rooms := newRoomStore()
	rooms.err = errors.New("connection refused")
	svc := newTestReservationService(rooms, newReservationStore())

	_, err := svc.Search(context.Background(), "2024-01-05", "2024-01-10")
	require.Error(t, err)
	assert.Equal(t, KindInternal, KindOf(err))
}

func TestReservation_UpdatePathIDWins(t *testing.T) {
	list := newReservationStore(models.Reservation{ID: 5, IDRoom: 1, FullName: "Old"})
	svc := newTestReservationService(newRoomStore(), list)
	ctx := context.Background()

	payload := &models.Reservation{ID: 99, IDRoom: 2, FullName: "New"}
	require.NoError(t, svc.Update(ctx, 5, payload))

	stored, err := svc.GetByID(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, uint(5), stored.ID)
	assert.Equal(t, "New", stored.FullName)

	_, err = svc.GetByID(ctx, 99)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestReservation_UpdateMissingIsBadRequest(t *testing.T) {
	svc := newTestReservationService(newRoomStore(), newReservationStore())

	err := svc.Update(context.Background(), 42, &models.Reservation{IDRoom: 1})
	require.Error(t, err)
	assert.Equal(t, KindBadRequest, KindOf(err))
}

func TestReservation_DeleteIsIdempotent(t *testing.T) {
	list := newReservationStore(models.Reservation{ID: 1, IDRoom: 1})
	svc := newTestReservationService(newRoomStore(), list)
	ctx := context.Background()

	assert.NoError(t, svc.Delete(ctx, 1))
	assert.NoError(t, svc.Delete(ctx, 1))
	assert.NoError(t, svc.Delete(ctx, 12345))

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestReservation_ListEmptyIsNotNil(t *testing.T) {
	svc := newTestReservationService(newRoomStore(), newReservationStore())

	all, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Len(t, all, 0)
}

func TestReservation_CreateIgnoresClientID(t *testing.T) {
	list := newReservationStore(models.Reservation{ID: 1, IDRoom: 1})
	svc := newTestReservationService(newRoomStore(), list)

	r := &models.Reservation{ID: 1, IDRoom: 7, CheckInDate: jan(1), CheckOutDate: jan(2)}
	require.NoError(t, svc.Create(context.Background(), r))
	assert.Equal(t, uint(2), r.ID)
}

func TestReservation_CreateFailureIsBadRequest(t *testing.T) {
	list := newReservationStore()
	list.err = errors.New("Error 1406: Data too long for column 'phone'")
	svc := newTestReservationService(newRoomStore(), list)

	err := svc.Create(context.Background(), &models.Reservation{IDRoom: 1})
	assert.Equal(t, KindBadRequest, KindOf(err))
}
