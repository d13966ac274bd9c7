package services

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"hotel-reservation/models"
)

const (
	msgDatesRequired = "Both checkIn and checkOut parameters are required"
	msgDateFormat    = "Invalid date format. Use yyyy-MM-dd"
)

// ReservationService owns reservation CRUD and the availability search,
// which joins reservations to rooms through Reservation.IDRoom.
type ReservationService struct {
	Reservations Facade[models.Reservation]
	Rooms        Facade[models.Room]
	Cache        AvailabilityCache
	Logger       *zap.Logger
}

func NewReservationService(
	reservations Facade[models.Reservation],
	rooms Facade[models.Room],
	cache AvailabilityCache,
	logger *zap.Logger,
) *ReservationService {
	if cache == nil {
		cache = NopAvailabilityCache{}
	}
	return &ReservationService{Reservations: reservations, Rooms: rooms, Cache: cache, Logger: logger}
}

func (s *ReservationService) GetAll(ctx context.Context) ([]models.Reservation, error) {
	list, err := s.Reservations.FindAll(ctx)
	if err != nil {
		return nil, internal("list reservations", err)
	}
	return list, nil
}

func (s *ReservationService) GetByID(ctx context.Context, id uint) (*models.Reservation, error) {
	r, err := s.Reservations.Find(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, notFound("get reservation", err)
		}
		return nil, internal("get reservation", err)
	}
	return r, nil
}

// Create does not check that IDRoom exists nor that the dates are ordered.
func (s *ReservationService) Create(ctx context.Context, r *models.Reservation) error {
	r.ID = 0
	if err := s.Reservations.Create(ctx, r); err != nil {
		return badRequest("create reservation", err)
	}
	s.Cache.Invalidate(context.WithoutCancel(ctx))
	return nil
}

func (s *ReservationService) Update(ctx context.Context, id uint, r *models.Reservation) error {
	r.ID = id
	if err := s.Reservations.Edit(ctx, r); err != nil {
		return badRequest("update reservation", err)
	}
	s.Cache.Invalidate(context.WithoutCancel(ctx))
	return nil
}

func (s *ReservationService) Delete(ctx context.Context, id uint) error {
	r, err := s.Reservations.Find(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return badRequest("delete reservation", err)
	}
	if err := s.Reservations.Remove(ctx, r); err != nil {
		return badRequest("delete reservation", err)
	}
	s.Cache.Invalidate(context.WithoutCancel(ctx))
	return nil
}

// Search returns the rooms free for the whole of [checkIn, checkOut).
// Both arguments must be yyyy-MM-dd. Inverted or empty ranges are not
// rejected.
func (s *ReservationService) Search(ctx context.Context, checkIn, checkOut string) ([]models.Room, error) {
	const op = "search availability"

	if strings.TrimSpace(checkIn) == "" || strings.TrimSpace(checkOut) == "" {
		return nil, &Error{Kind: KindBadRequest, Op: op, Message: msgDatesRequired}
	}
	in, err := models.ParseDate(checkIn)
	if err != nil {
		return nil, &Error{Kind: KindBadRequest, Op: op, Message: msgDateFormat, Err: err}
	}
	out, err := models.ParseDate(checkOut)
	if err != nil {
		return nil, &Error{Kind: KindBadRequest, Op: op, Message: msgDateFormat, Err: err}
	}
	if !in.Before(out) {
		s.Logger.Warn("availability search with empty or inverted range",
			zap.String("check_in", in.String()), zap.String("check_out", out.String()))
	}

	cached, gen, ok := s.Cache.Get(ctx, in, out)
	if ok {
		return cached, nil
	}

	rooms, err := s.Rooms.FindAll(ctx)
	if err != nil {
		return nil, internal(op, err)
	}
	reservations, err := s.Reservations.FindAll(ctx)
	if err != nil {
		return nil, internal(op, err)
	}

	available := AvailableRooms(rooms, reservations, in, out)
	s.Cache.Set(ctx, gen, in, out, available)
	return available, nil
}
