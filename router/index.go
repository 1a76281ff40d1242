package router

import (
	"restaurant_manager/handler"
	"restaurant_manager/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	order := v1.Group("/orders", logger.New())
	order.Get("/", handler.GetOrders)
	order.Get("/:orderId", validate.GetById("orderId"), handler.GetOrderById)
	order.Patch("/:orderId/confirm", validate.GetById("orderId"), handler.ConfirmOrder)
	order.Patch("/:orderId/preparing", validate.GetById("orderId"), handler.PreparingOrder)
	order.Patch("/:orderId/ready", validate.GetById("orderId"), handler.ReadyOrder)
	order.Patch("/:orderId/assign-driver", validate.GetById("orderId"), validate.AssignDriver(), handler.AssignDriver)
	order.Patch("/:orderId/complete", validate.GetById("orderId"), handler.CompleteOrder)
	order.Patch("/:orderId/cancel", validate.GetById("orderId"), handler.CancelOrder)

	reservation := v1.Group("/reservations", logger.New())
	reservation.Get("/", handler.GetReservations)
	reservation.Get("/:reservationId", validate.GetById("reservationId"), handler.GetReservationById)
	reservation.Get("/:reservationId/qr", validate.GetById("reservationId"), handler.GetReservationQR)
	reservation.Patch("/:reservationId/confirm", validate.GetById("reservationId"), handler.ConfirmReservation)
	reservation.Patch("/:reservationId/complete", validate.GetById("reservationId"), handler.CompleteReservation)
	reservation.Patch("/:reservationId/cancel", validate.GetById("reservationId"), handler.CancelReservation)

	driver := v1.Group("/drivers", logger.New())
	driver.Get("/", handler.GetDrivers)
	driver.Get("/stats", handler.GetDriverStats)
	driver.Get("/:driverId", validate.GetById("driverId"), handler.GetDriverById)
	driver.Post("/", validate.CreateDriver(), handler.CreateDriver)
	driver.Put("/:driverId", validate.GetById("driverId"), validate.UpdateDriver(), handler.UpdateDriver)
	driver.Patch("/:driverId/active", validate.GetById("driverId"), handler.ToggleDriverActive)
	driver.Delete("/:driverId", validate.GetById("driverId"), handler.DeleteDriver)

	user := v1.Group("/users", logger.New())
	user.Get("/", handler.GetUsers)
	user.Get("/:userId", validate.GetById("userId"), handler.GetUserById)
	user.Post("/", validate.CreateUser(), handler.CreateUser)
	user.Put("/:userId", validate.GetById("userId"), validate.UpdateUser(), handler.UpdateUser)
	user.Patch("/:userId/active", validate.GetById("userId"), handler.ToggleUserActive)
	user.Delete("/:userId", validate.GetById("userId"), handler.DeleteUser)

	category := v1.Group("/categories", logger.New())
	category.Get("/", handler.GetCategories)
	category.Post("/", validate.Category(), handler.CreateCategory)
	category.Put("/:categoryId", validate.GetById("categoryId"), validate.Category(), handler.UpdateCategory)
	category.Patch("/:categoryId/active", validate.GetById("categoryId"), handler.ToggleCategoryActive)

	product := v1.Group("/products", logger.New())
	product.Get("/", handler.GetProducts)
	product.Post("/", validate.CreateProduct(), handler.CreateProduct)
	product.Put("/:productId", validate.GetById("productId"), validate.UpdateProduct(), handler.UpdateProduct)
	product.Patch("/:productId/active", validate.GetById("productId"), handler.ToggleProductActive)
	product.Delete("/", validate.Delete(), handler.DeleteProducts)
	product.Delete("/:productId", validate.GetById("productId"), handler.DeleteProduct)

	banner := v1.Group("/banners", logger.New())
	banner.Get("/", handler.GetBanners)
	banner.Post("/", validate.Banner(), handler.CreateBanner)
	banner.Put("/reorder", handler.ReorderBanners)
	banner.Put("/:bannerId", validate.GetById("bannerId"), validate.Banner(), handler.UpdateBanner)
	banner.Delete("/:bannerId", validate.GetById("bannerId"), handler.DeleteBanner)

	statistic := v1.Group("/statistic", logger.New())
	statistic.Get("/", handler.GetDashboardStats)

	v1.Post("/cloudinary-signature", handler.GenerateSignature)
	v1.Post("/upload", handler.UploadImage)
	v1.Delete("/upload", handler.DeleteImage)

	// Public
	v1.Get("/menu", handler.GetMenu)

	v1.Get("/ws/orders", websocket.New(handler.OrderFeed))
}
