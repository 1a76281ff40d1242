package model

type User struct {
	DTO
	Name         string `json:"name"`
	Email        string `gorm:"unique;size:100" json:"email"`
	PasswordHash string `json:"-"`
	Role         string `gorm:"size:20;index" json:"role"` // ADMIN, DRIVER, USER
	IsActive     bool   `gorm:"default:true" json:"isActive"`
	Phone        string `gorm:"size:20" json:"phone"`
	Avatar       string `json:"avatar,omitempty"`

	// Trường riêng cho tài xế (role = DRIVER)
	VehiclePlate  string  `gorm:"size:20" json:"vehiclePlate,omitempty"`
	Area          string  `gorm:"size:100" json:"area,omitempty"`
	DriverStatus  string  `gorm:"size:20" json:"driverStatus,omitempty"` // AVAILABLE, BUSY, OFFLINE
	Rating        float64 `gorm:"default:5" json:"rating"`
	TotalOrders   int     `gorm:"default:0" json:"totalOrders"`
	TotalEarnings float64 `gorm:"default:0" json:"totalEarnings"`
}

type CreateUserInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone"`
	Role     string `json:"role" validate:"omitempty,oneof=ADMIN DRIVER USER"`
}

type UpdateUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=6"`
	Phone    string `json:"phone"`
}

type CreateDriverInput struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6"`
	Phone        string `json:"phone" validate:"required"`
	VehiclePlate string `json:"vehiclePlate"`
	Area         string `json:"area"`
}

type UpdateDriverInput struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	VehiclePlate string `json:"vehiclePlate"`
	Area         string `json:"area"`
}
