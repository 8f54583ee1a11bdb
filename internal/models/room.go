package models

// Sharing types with their fixed capacities and per-person rents.
const (
	SharingSingle = "Single"
	SharingDouble = "Double"
	SharingFour   = "Four Sharing"
)

type Room struct {
	ID               int    `json:"id"`
	RoomNo           string `json:"room_no"`
	Floor            int    `json:"floor"`
	SharingType      string `json:"sharing_type"`
	Capacity         int    `json:"capacity"`
	CurrentOccupancy int    `json:"current_occupancy"`
	RentPerPerson    int    `json:"rent_per_person"`
}

// Available reports whether the room still has a free spot.
func (r *Room) Available() bool {
	return r.CurrentOccupancy < r.Capacity
}
