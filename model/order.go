package model

type Order struct {
	DTO
	PublicCode string `gorm:"unique;size:20" json:"publicCode"` // Mã đơn công khai (ORD-XXXXXXXX)

	CustomerID   *uint  `json:"customerId,omitempty"` // null nếu khách vãng lai
	Customer     *User  `json:"customer,omitempty"`
	CustomerName string `json:"customerName"`
	Phone        string `gorm:"size:20" json:"phone"`
	Address      string `json:"address"`
	Note         string `json:"note,omitempty"`

	Total  float64 `json:"total"`
	Status string  `gorm:"size:20;index" json:"status"` // PENDING, CONFIRMED, PREPARING, READY, DELIVERING, COMPLETED, CANCELED

	AssignedDriverID *uint `json:"assignedDriverId,omitempty"`
	AssignedDriver   *User `json:"assignedDriver,omitempty"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"index" json:"orderId"`
	ProductID uint    `json:"productId"`
	Product   Product `json:"product"`
	Qty       int     `gorm:"check:qty >= 1" json:"qty"`
	Price     float64 `json:"price"` // đơn giá tại thời điểm đặt
}

type AssignDriverInput struct {
	DriverID uint `json:"driverId" validate:"required"`
}
