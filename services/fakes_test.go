package services

import (
	"context"
	"sync"

	"hotel-reservation/models"
)

// memFacade is an in-memory Facade for service tests.
type memFacade[T any] struct {
	mu       sync.Mutex
	items    []T
	nextID   uint
	idOf     func(*T) uint
	setID    func(*T, uint)
	err      error
	findAlls int
}

func newRoomStore(rooms ...models.Room) *memFacade[models.Room] {
	f := &memFacade[models.Room]{
		idOf:  func(r *models.Room) uint { return r.ID },
		setID: func(r *models.Room, id uint) { r.ID = id },
	}
	f.seed(rooms)
	return f
}

func newReservationStore(list ...models.Reservation) *memFacade[models.Reservation] {
	f := &memFacade[models.Reservation]{
		idOf:  func(r *models.Reservation) uint { return r.ID },
		setID: func(r *models.Reservation, id uint) { r.ID = id },
	}
	f.seed(list)
	return f
}

func (f *memFacade[T]) seed(items []T) {
	for i := range items {
		if id := f.idOf(&items[i]); id > f.nextID {
			f.nextID = id
		}
	}
	f.items = append(f.items, items...)
}

func (f *memFacade[T]) Find(_ context.Context, id uint) (*T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.items {
		if f.idOf(&f.items[i]) == id {
			item := f.items[i]
			return &item, nil
		}
	}
	return nil, ErrNotFound
}

func (f *memFacade[T]) FindAll(context.Context) ([]T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.findAlls++
	if f.err != nil {
		return nil, f.err
	}
	return append([]T{}, f.items...), nil
}

func (f *memFacade[T]) Create(_ context.Context, entity *T) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.nextID++
	f.setID(entity, f.nextID)
	f.items = append(f.items, *entity)
	return nil
}

func (f *memFacade[T]) Edit(_ context.Context, entity *T) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for i := range f.items {
		if f.idOf(&f.items[i]) == f.idOf(entity) {
			f.items[i] = *entity
			return nil
		}
	}
	return ErrNotFound
}

func (f *memFacade[T]) Remove(_ context.Context, entity *T) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for i := range f.items {
		if f.idOf(&f.items[i]) == f.idOf(entity) {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *memFacade[T]) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.findAlls
}
