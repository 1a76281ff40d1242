package model

import "time"

type Reservation struct {
	DTO
	CustomerName string    `json:"customerName"`
	Phone        string    `gorm:"size:20;index" json:"phone"`
	Datetime     time.Time `gorm:"index" json:"datetime"`
	Guests       int       `gorm:"check:guests >= 1" json:"guests"`
	Note         string    `json:"note,omitempty"`
	Status       string    `gorm:"size:20;index" json:"status"` // NEW, CONFIRMED, COMPLETED, CANCELED
}
