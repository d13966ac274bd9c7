package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"hotel-reservation/models"
)

type RoomService struct {
	Rooms  Facade[models.Room]
	Cache  AvailabilityCache
	Logger *zap.Logger
}

func NewRoomService(rooms Facade[models.Room], cache AvailabilityCache, logger *zap.Logger) *RoomService {
	if cache == nil {
		cache = NopAvailabilityCache{}
	}
	return &RoomService{Rooms: rooms, Cache: cache, Logger: logger}
}

func (s *RoomService) GetAll(ctx context.Context) ([]models.Room, error) {
	rooms, err := s.Rooms.FindAll(ctx)
	if err != nil {
		return nil, internal("list rooms", err)
	}
	return rooms, nil
}

func (s *RoomService) GetByID(ctx context.Context, id uint) (*models.Room, error) {
	room, err := s.Rooms.Find(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, notFound("get room", err)
		}
		return nil, internal("get room", err)
	}
	return room, nil
}

// Create ignores any client-supplied id; the store assigns one.
func (s *RoomService) Create(ctx context.Context, room *models.Room) error {
	room.ID = 0
	if err := s.Rooms.Create(ctx, room); err != nil {
		return badRequest("create room", err)
	}
	s.Cache.Invalidate(context.WithoutCancel(ctx))
	return nil
}

// Update stores room under id; the id argument wins over room.ID.
func (s *RoomService) Update(ctx context.Context, id uint, room *models.Room) error {
	room.ID = id
	if err := s.Rooms.Edit(ctx, room); err != nil {
		return badRequest("update room", err)
	}
	s.Cache.Invalidate(context.WithoutCancel(ctx))
	return nil
}

// Delete is idempotent: a missing room is not an error. Reservations that
// point at the room are left untouched.
func (s *RoomService) Delete(ctx context.Context, id uint) error {
	room, err := s.Rooms.Find(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return badRequest("delete room", err)
	}
	if err := s.Rooms.Remove(ctx, room); err != nil {
		return badRequest("delete room", err)
	}
	s.Cache.Invalidate(context.WithoutCancel(ctx))
	s.Logger.Info("room deleted", zap.Uint("room_id", id))
	return nil
}
