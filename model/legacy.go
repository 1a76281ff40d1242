package model

import "time"

// Các model dưới đây ánh xạ schema của app legacy (MySQL, database riêng).
// Hệ thống canonical chỉ UPDATE các bản ghi khớp, không tạo/xoá
// ngoài các job migration tường minh.

// LegacyBooking — bảng `bookings` của app đặt bàn cũ.
// Không có khoá ngoại về reservation; ReservationID là cột nullable
// được hệ canonical ghi nhớ sau lần khớp natural-key đầu tiên.
type LegacyBooking struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	UserID        *uint      `json:"userId,omitempty"`
	FullName      string     `gorm:"size:150" json:"fullName"`
	Phone         string     `gorm:"size:20;index" json:"phone"`
	GuestCount    int        `json:"guestCount"`
	BookingDate   time.Time  `gorm:"index" json:"bookingDate"`
	ExpiryDate    *time.Time `json:"expiryDate,omitempty"`
	TableNumber   *int       `json:"tableNumber,omitempty"`
	Status        string     `gorm:"size:20" json:"status"` // PENDING, CONFIRMED, CANCELLED, COMPLETED, NEW
	ReservationID *uint      `gorm:"index" json:"reservationId,omitempty"`
}

func (LegacyBooking) TableName() string { return "bookings" }

// LegacyDriver — bảng `drivers` của app tài xế cũ (password plaintext).
type LegacyDriver struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Username        string    `gorm:"size:100" json:"username"`
	Password        string    `gorm:"size:100" json:"-"`
	Name            string    `gorm:"size:150" json:"name"`
	Phone           string    `gorm:"size:20" json:"phone"`
	Email           string    `gorm:"size:100;index" json:"email"`
	VehiclePlate    string    `gorm:"size:20" json:"vehiclePlate"`
	Area            string    `gorm:"size:100" json:"area"`
	Status          string    `gorm:"size:20" json:"status"` // AVAILABLE, BUSY, OFFLINE
	Rating          float64   `gorm:"default:5" json:"rating"`
	TotalEarnings   float64   `gorm:"default:0" json:"totalEarnings"`
	DailyEarnings   float64   `gorm:"default:0" json:"dailyEarnings"`
	CompletedOrders int       `gorm:"default:0" json:"completedOrders"`
	FailedOrders    int       `gorm:"default:0" json:"failedOrders"`
	Avatar          string    `json:"avatar,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (LegacyDriver) TableName() string { return "drivers" }

// LegacyProduct — bảng `products` của hệ cũ, category là chuỗi tự do.
type LegacyProduct struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Name         string  `gorm:"size:150" json:"name"`
	Price        float64 `json:"price"`
	Description  string  `json:"description"`
	Image        string  `json:"image"`
	Category     string  `gorm:"size:100" json:"category"`
	Discount     float64 `json:"discount"`
	IsBestSeller bool    `json:"isBestSeller"`
}

func (LegacyProduct) TableName() string { return "products" }
