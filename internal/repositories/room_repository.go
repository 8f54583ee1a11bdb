package repositories

import (
	"context"
	"errors"

	"pg-backend/internal/apperrors"
	"pg-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RoomRepository struct {
	DB *pgxpool.Pool
}

func NewRoomRepository(db *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{DB: db}
}

func (r *RoomRepository) Get(ctx context.Context, id int) (*models.Room, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT room_id, room_no, floor, sharing_type, capacity, current_occupancy, rent_per_person
		 FROM rooms WHERE room_id=$1`, id)

	var room models.Room
	err := row.Scan(&room.ID, &room.RoomNo, &room.Floor, &room.SharingType,
		&room.Capacity, &room.CurrentOccupancy, &room.RentPerPerson)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFound("room %d not found", id)
	}
	if err != nil {
		return nil, apperrors.Storage(err, "get room")
	}
	return &room, nil
}

func (r *RoomRepository) List(ctx context.Context) ([]*models.Room, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT room_id, room_no, floor, sharing_type, capacity, current_occupancy, rent_per_person
		 FROM rooms ORDER BY floor, room_no`)
	if err != nil {
		return nil, apperrors.Storage(err, "list rooms")
	}
	defer rows.Close()

	return scanRooms(rows)
}

// ListAvailableByFloor returns rooms on the floor that still have a free
// spot. Duplicate room numbers cannot occur: room_no is unique.
func (r *RoomRepository) ListAvailableByFloor(ctx context.Context, floor int) ([]*models.Room, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT room_id, room_no, floor, sharing_type, capacity, current_occupancy, rent_per_person
		 FROM rooms
		 WHERE floor=$1 AND current_occupancy < capacity
		 ORDER BY room_no`, floor)
	if err != nil {
		return nil, apperrors.Storage(err, "list available rooms")
	}
	defer rows.Close()

	return scanRooms(rows)
}

// ListFloors returns the distinct floors present in the inventory
func (r *RoomRepository) ListFloors(ctx context.Context) ([]int, error) {
	rows, err := r.DB.Query(ctx, `SELECT DISTINCT floor FROM rooms ORDER BY floor`)
	if err != nil {
		return nil, apperrors.Storage(err, "list floors")
	}
	defer rows.Close()

	var floors []int
	for rows.Next() {
		var f int
		if err := rows.Scan(&f); err != nil {
			return nil, apperrors.Storage(err, "scan floor")
		}
		floors = append(floors, f)
	}
	return floors, rows.Err()
}

func scanRooms(rows pgx.Rows) ([]*models.Room, error) {
	var rooms []*models.Room
	for rows.Next() {
		var room models.Room
		err := rows.Scan(&room.ID, &room.RoomNo, &room.Floor, &room.SharingType,
			&room.Capacity, &room.CurrentOccupancy, &room.RentPerPerson)
		if err != nil {
			return nil, apperrors.Storage(err, "scan room")
		}
		rooms = append(rooms, &room)
	}
	return rooms, rows.Err()
}
