package models

import (
	"encoding/xml"
	"time"
)

// Reservation points at its room by id only (IDRoom). There is no gorm
// association: rooms do not own reservations and nothing cascades.
type Reservation struct {
	XMLName xml.Name `gorm:"-" json:"-" xml:"reservation"`

	ID             uint   `gorm:"primaryKey" json:"id" xml:"id"`
	IDRoom         uint   `gorm:"column:id_room;index" json:"idRoom" xml:"idRoom"`
	CheckInDate    Date   `gorm:"column:check_in_date" json:"checkInDate" xml:"checkInDate"`
	CheckOutDate   Date   `gorm:"column:check_out_date" json:"checkOutDate" xml:"checkOutDate"`
	FullName       string `gorm:"size:255" json:"fullName" xml:"fullName"`
	Email          string `gorm:"size:150" json:"email" xml:"email"`
	Phone          string `gorm:"size:50" json:"phone" xml:"phone"`
	SpecialRequest string `gorm:"type:text" json:"specialRequest,omitempty" xml:"specialRequest,omitempty"`

	CreatedAt time.Time `json:"-" xml:"-"`
	UpdatedAt time.Time `json:"-" xml:"-"`
}

type ReservationList struct {
	XMLName      xml.Name      `xml:"reservations"`
	Reservations []Reservation `xml:"reservation"`
}
