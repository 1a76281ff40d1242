package model

type Product struct {
	DTO
	CategoryID  uint      `gorm:"index" json:"categoryId"`
	Category    *Category `json:"category,omitempty"`
	Name        string    `gorm:"size:150" json:"name"`
	Slug        string    `gorm:"unique;size:170" json:"slug"`
	Description string    `json:"description"`
	Price       float64   `gorm:"check:price >= 0" json:"price"`
	ImageUrl    string    `json:"imageUrl,omitempty"`
	IsActive    bool      `gorm:"default:true" json:"isActive"`
	IsFeatured  bool      `gorm:"default:false" json:"isFeatured"`
}

type CreateProductInput struct {
	CategoryID  uint    `json:"categoryId" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	ImageUrl    string  `json:"imageUrl"`
	IsFeatured  *bool   `json:"isFeatured"`
}

type UpdateProductInput struct {
	CategoryID  *uint    `json:"categoryId"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	ImageUrl    *string  `json:"imageUrl"`
	IsFeatured  *bool    `json:"isFeatured"`
}
