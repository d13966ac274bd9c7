package services

import (
	"hotel-reservation/models"
)

// Overlaps reports whether [in1, out1) and [in2, out2) share at least one
// night. Ranges that only touch (one ends the day the other starts) do not.
func Overlaps(in1, out1, in2, out2 models.Date) bool {
	return in1.Before(out2) && out1.After(in2)
}

// AvailableRooms returns the rooms with no reservation overlapping
// [checkIn, checkOut), keeping the order of rooms. Reservations for rooms
// that are not in the snapshot, or that lack either date, are ignored.
func AvailableRooms(rooms []models.Room, reservations []models.Reservation, checkIn, checkOut models.Date) []models.Room {
	booked := make(map[uint]struct{})
	for _, r := range reservations {
		if r.CheckInDate.IsZero() || r.CheckOutDate.IsZero() {
			continue
		}
		if Overlaps(checkIn, checkOut, r.CheckInDate, r.CheckOutDate) {
			booked[r.IDRoom] = struct{}{}
		}
	}

	available := make([]models.Room, 0, len(rooms))
	for _, room := range rooms {
		if _, taken := booked[room.ID]; taken {
			continue
		}
		available = append(available, room)
	}
	return available
}
