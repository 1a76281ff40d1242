package database

import (
	"log"
	"restaurant_manager/constants"
	"restaurant_manager/model"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// NewOrderCode sinh mã đơn công khai dạng ORD-XXXXXXXX.
func NewOrderCode() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}

// newDemoOrder dựng đơn demo trỏ vào hai món seed đầu tiên.
// Món chưa có ID thật (chưa ghi xuống DB) thì không dựng — đơn với
// product_id = 0 sẽ vỡ khoá ngoại.
func newDemoOrder(products []model.Product) (model.Order, bool) {
	if len(products) < 2 || products[0].ID == 0 || products[1].ID == 0 {
		return model.Order{}, false
	}

	return model.Order{
		PublicCode:   NewOrderCode(),
		CustomerName: "Nguyễn Văn A",
		Phone:        "0900000001",
		Address:      "12 Lý Thường Kiệt, Q.10",
		Total:        products[0].Price + products[1].Price,
		Status:       constants.ORDER_PENDING,
		Items: []model.OrderItem{
			{ProductID: products[0].ID, Qty: 1, Price: products[0].Price},
			{ProductID: products[1].ID, Qty: 1, Price: products[1].Price},
		},
	}, true
}

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("admin123"), 10)
	hashPassword := string(bytes)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}

	admins := []model.User{
		{Name: "Administrator", Email: "admin@restaurant.local", PasswordHash: hashPassword, Role: constants.ROLE_ADMIN, IsActive: true},
	}
	for _, admin := range admins {
		if err := db.Where(model.User{Email: admin.Email}).FirstOrCreate(&admin).Error; err != nil {
			log.Println("failed to seed admin:", admin.Email, "error:", err)
		}
	}

	categories := []model.Category{
		{Name: "Appetizers", IsActive: true},
		{Name: "Main Dishes", IsActive: true},
		{Name: "Drinks", IsActive: true},
	}
	for i := range categories {
		if err := db.Where(model.Category{Name: categories[i].Name}).FirstOrCreate(&categories[i]).Error; err != nil {
			log.Println("failed to seed category:", categories[i].Name, "error:", err)
		}
	}

	products := []model.Product{
		{CategoryID: categories[0].ID, Name: "Bánh xèo", Description: "Crispy Vietnamese pancake", Price: 65000, IsActive: true, IsFeatured: true},
		{CategoryID: categories[1].ID, Name: "Bò kho", Description: "Beef stew with baguette", Price: 95000, IsActive: true},
		{CategoryID: categories[2].ID, Name: "Cà phê sữa đá", Description: "Iced milk coffee", Price: 30000, IsActive: true},
	}
	// duyệt theo index để ID sinh ra ghi ngược vào slice (đơn demo cần ID thật)
	for i := range products {
		products[i].Slug = slug.Make(products[i].Name)
		if err := db.Where(model.Product{Slug: products[i].Slug}).FirstOrCreate(&products[i]).Error; err != nil {
			log.Println("failed to seed product:", products[i].Name, "error:", err)
		}
	}

	// Vài bản ghi demo cho môi trường dev (đơn PENDING + đặt bàn NEW)
	var orderCount int64
	db.Model(&model.Order{}).Count(&orderCount)
	if orderCount == 0 {
		if order, ok := newDemoOrder(products); ok {
			if err := db.Create(&order).Error; err != nil {
				log.Println("failed to seed demo order:", err)
			}
		}
	}

	var reservationCount int64
	db.Model(&model.Reservation{}).Count(&reservationCount)
	if reservationCount == 0 {
		r := model.Reservation{
			CustomerName: "Trần Thị B",
			Phone:        "0900000000",
			Datetime:     time.Now().Add(24 * time.Hour),
			Guests:       4,
			Status:       constants.RESERVATION_NEW,
		}
		if err := db.Create(&r).Error; err != nil {
			log.Println("failed to seed demo reservation:", err)
		}
	}
}
