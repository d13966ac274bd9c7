package models

import (
	"encoding/xml"
	"time"
)

type Room struct {
	XMLName xml.Name `gorm:"-" json:"-" xml:"room"`

	ID                  uint    `gorm:"primaryKey" json:"id" xml:"id"`
	Description         string  `gorm:"type:text" json:"description" xml:"description"`
	NumberOfPerson      int     `gorm:"column:number_of_person" json:"numberOfPerson" xml:"numberOfPerson"`
	Price               float64 `json:"price" xml:"price"`
	HavePrivateBathroom bool    `gorm:"column:have_private_bathroom" json:"havePrivateBathroom" xml:"havePrivateBathroom"`

	CreatedAt time.Time `json:"-" xml:"-"`
	UpdatedAt time.Time `json:"-" xml:"-"`
}

// RoomList is the XML envelope for a sequence of rooms.
type RoomList struct {
	XMLName xml.Name `xml:"rooms"`
	Rooms   []Room   `xml:"room"`
}
