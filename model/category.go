package model

type Category struct {
	DTO
	Name     string `gorm:"size:100" json:"name"`
	IsActive bool   `gorm:"default:true" json:"isActive"`

	Products []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
}

type CategoryInput struct {
	Name string `json:"name" validate:"required"`
}
