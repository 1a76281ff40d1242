package model

type HomeBanner struct {
	DTO
	Title    string `gorm:"size:150" json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	ImageUrl string `json:"imageUrl"`
	CtaText  string `json:"ctaText,omitempty"`
	CtaLink  string `json:"ctaLink,omitempty"`
	Order    int    `gorm:"column:sort_order;default:0" json:"order"`
	IsActive bool   `gorm:"default:true" json:"isActive"`
}

type BannerInput struct {
	Title    string `json:"title" validate:"required"`
	Subtitle string `json:"subtitle"`
	ImageUrl string `json:"imageUrl" validate:"required,url"`
	CtaText  string `json:"ctaText"`
	CtaLink  string `json:"ctaLink"`
	Order    int    `json:"order" validate:"gte=0"`
}

type ReorderBannerInput struct {
	ID    uint `json:"id" validate:"required"`
	Order int  `json:"order" validate:"gte=0"`
}
