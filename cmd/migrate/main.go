package main

import (
	"flag"
	"fmt"

	"restaurant_manager/database"
	"restaurant_manager/logger"
	"restaurant_manager/migration"
)

// Binary migrate nhập dữ liệu từ các app legacy về hệ canonical.
// Mọi job đều idempotent, chạy lại thoải mái:
//
//	go run ./cmd/migrate -bookings
//	go run ./cmd/migrate -all
func main() {
	bookings := flag.Bool("bookings", false, "migrate legacy bookings into reservations")
	drivers := flag.Bool("drivers", false, "migrate legacy drivers into users")
	products := flag.Bool("products", false, "migrate legacy products and categories")
	orders := flag.Bool("orders", false, "normalize legacy-style order statuses")
	fixUsers := flag.Bool("fix-users", false, "patch users imported with missing fields")
	all := flag.Bool("all", false, "run every migration job")
	flag.Parse()

	if !*bookings && !*drivers && !*products && !*orders && !*fixUsers && !*all {
		flag.Usage()
		return
	}

	defer logger.Sync()

	database.ConnectDB()
	needLegacy := *all || *bookings || *drivers || *products
	if needLegacy {
		database.ConnectLegacyDB()
	}

	if *all || *bookings {
		r := migration.MigrateBookings(database.DB, database.LegacyDB)
		fmt.Printf("bookings: %+v\n", r)
	}
	if *all || *drivers {
		r := migration.MigrateDrivers(database.DB, database.LegacyDB)
		fmt.Printf("drivers: %+v\n", r)
	}
	if *all || *products {
		r := migration.MigrateProducts(database.DB, database.LegacyDB)
		fmt.Printf("products: %+v\n", r)
	}
	if *all || *orders {
		r := migration.FixOrderStatuses(database.DB)
		fmt.Printf("orders: %+v\n", r)
	}
	if *all || *fixUsers {
		r := migration.FixLegacyUsers(database.DB)
		fmt.Printf("users: %+v\n", r)
	}
}
