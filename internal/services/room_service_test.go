package services

import (
	"context"
	"testing"

	"pg-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAvailableRoomsFiltersFullOnes(t *testing.T) {
	rooms := newFakeRoomStore(
		&models.Room{ID: 1, RoomNo: "1S", Floor: 1, Capacity: 1, CurrentOccupancy: 1, RentPerPerson: 5000},
		&models.Room{ID: 2, RoomNo: "1D", Floor: 1, Capacity: 2, CurrentOccupancy: 1, RentPerPerson: 3000},
		&models.Room{ID: 3, RoomNo: "2F", Floor: 2, Capacity: 4, CurrentOccupancy: 0, RentPerPerson: 2000},
	)
	svc := NewRoomService(rooms)

	available, err := svc.ListAvailableRooms(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, "1D", available[0].RoomNo)

	available, err = svc.ListAvailableRooms(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, "2F", available[0].RoomNo)
}

func TestListFloors(t *testing.T) {
	rooms := newFakeRoomStore(
		&models.Room{ID: 1, RoomNo: "1S", Floor: 1},
		&models.Room{ID: 2, RoomNo: "1D", Floor: 1},
		&models.Room{ID: 3, RoomNo: "2F", Floor: 2},
	)
	svc := NewRoomService(rooms)

	floors, err := svc.ListFloors(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 2}, floors)
}
