package services

import (
	"context"
	"encoding/json"

	"pg-backend/internal/cache"
	"pg-backend/internal/models"
)

// RoomStore is the persistence surface RoomService needs.
type RoomStore interface {
	Get(ctx context.Context, id int) (*models.Room, error)
	List(ctx context.Context) ([]*models.Room, error)
	ListAvailableByFloor(ctx context.Context, floor int) ([]*models.Room, error)
	ListFloors(ctx context.Context) ([]int, error)
}

type RoomService struct {
	Repo RoomStore
}

func NewRoomService(repo RoomStore) *RoomService {
	return &RoomService{Repo: repo}
}

func (s *RoomService) GetRoom(ctx context.Context, id int) (*models.Room, error) {
	return s.Repo.Get(ctx, id)
}

func (s *RoomService) ListRooms(ctx context.Context) ([]*models.Room, error) {
	return s.Repo.List(ctx)
}

func (s *RoomService) ListFloors(ctx context.Context) ([]int, error) {
	return s.Repo.ListFloors(ctx)
}

// ListAvailableRooms returns rooms on the floor with a free spot. The
// result is cached briefly in Redis; onboarding invalidates the floor's
// entry, so the cache only masks reads between unrelated requests.
func (s *RoomService) ListAvailableRooms(ctx context.Context, floor int) ([]*models.Room, error) {
	if data, ok := cache.GetCachedAvailableRooms(ctx, floor); ok {
		var rooms []*models.Room
		if err := json.Unmarshal(data, &rooms); err == nil {
			return rooms, nil
		}
	}

	rooms, err := s.Repo.ListAvailableByFloor(ctx, floor)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(rooms); err == nil {
		cache.CacheAvailableRooms(ctx, floor, data)
	}
	return rooms, nil
}
