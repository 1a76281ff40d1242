package database

import (
	"fmt"
	"restaurant_manager/config"
	"restaurant_manager/logger"
	"restaurant_manager/model"
	"strconv"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB là store canonical (Postgres). LegacyDB là database của app cũ (MySQL),
// hai kết nối độc lập, không có transaction chung.
var DB *gorm.DB
var LegacyDB *gorm.DB

func ConnectDB() {
	var err error
	p := config.Config("DB_PORT")
	port, err := strconv.ParseUint(p, 10, 32)

	if err != nil {
		panic("failed to parse database port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable", config.MustConfig("DB_HOST"), port, config.MustConfig("DB_USER"), config.Config("DB_PASSWORD"), config.MustConfig("DB_NAME"))
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		panic("failed to connect database")
	}

	logger.Info("connected to canonical database")
	DB.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
		&model.Reservation{},
		&model.HomeBanner{},
	)

	// khởi tạo dữ liệu
	SeedData(DB)
}

// ConnectLegacyDB mở kết nối tới database của app legacy.
// Schema thuộc quyền app cũ nên không AutoMigrate; chỉ bổ sung cột
// reservation_id (nullable) để ghi nhớ liên kết sau lần khớp đầu tiên.
func ConnectLegacyDB() {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		config.MustConfig("LEGACY_DB_USER"),
		config.Config("LEGACY_DB_PASSWORD"),
		config.MustConfig("LEGACY_DB_HOST"),
		config.ConfigDefault("LEGACY_DB_PORT", "3306"),
		config.MustConfig("LEGACY_DB_NAME"),
	)

	var err error
	LegacyDB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect legacy database")
	}

	logger.Info("connected to legacy database")

	m := LegacyDB.Migrator()
	if m.HasTable(&model.LegacyBooking{}) && !m.HasColumn(&model.LegacyBooking{}, "ReservationID") {
		if err := m.AddColumn(&model.LegacyBooking{}, "ReservationID"); err != nil {
			logger.Warn("cannot add reservation_id column to bookings", "error", err)
		}
	}
}
