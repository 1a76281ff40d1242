package helper

import (
	"log"
	"time"

	"restaurant_manager/config"
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/logger"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
)

var reconcileScheduler *cron.Cron
var dailyScheduler gocron.Scheduler

// ResyncRecentReservations chạy lại reconcile cho các reservation vừa đổi
// trạng thái. Mirror write là best-effort nên drift chỉ được phát hiện và
// sửa qua vòng quét định kỳ này.
func ResyncRecentReservations() {
	lookback := time.Now().Add(-1 * time.Hour)

	var reservations []model.Reservation
	err := database.DB.
		Where("updated_at >= ? AND status <> ?", lookback, constants.RESERVATION_NEW).
		Find(&reservations).Error
	if err != nil {
		logger.Error("resync sweep failed: list reservations", "error", err)
		return
	}

	store := Bookings()
	for i := range reservations {
		SyncReservationToBooking(store, &reservations[i])
	}
	if len(reservations) > 0 {
		logger.Info("resync sweep finished", "reservations", len(reservations))
	}
}

func StartReconcileScheduler() {
	reconcileScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := reconcileScheduler.AddFunc("*/15 * * * *", ResyncRecentReservations)
	if err != nil {
		log.Printf("Lỗi khởi tạo reconcile scheduler: %v", err)
		return
	}

	reconcileScheduler.Start()
	log.Println("Reconcile scheduler started (every 15m)")
}

func StopReconcileScheduler() {
	if reconcileScheduler != nil {
		reconcileScheduler.Stop()
	}
}

// DailyCloseout reset daily_earnings bên bảng drivers legacy và gửi báo cáo
// vận hành cho admin.
func DailyCloseout() {
	log.Println("[CRON] DailyCloseout triggered")

	result := database.LegacyDB.Model(&model.LegacyDriver{}).
		Where("daily_earnings <> 0").
		Update("daily_earnings", 0)
	if result.Error != nil {
		logger.Error("daily closeout: reset daily_earnings failed", "error", result.Error)
	} else if result.RowsAffected > 0 {
		logger.Info("daily closeout: daily_earnings reset", "drivers", result.RowsAffected)
	}

	adminEmail := config.Config("ADMIN_EMAIL")
	if adminEmail == "" {
		return
	}

	now := time.Now().In(RestaurantTZ)
	from, to := DayWindow(now.Add(-24 * time.Hour))

	byStatus := map[string]int64{}
	type row struct {
		Status string
		N      int64
	}
	var rows []row
	database.DB.Model(&model.Order{}).
		Select("status, count(*) as n").
		Where("created_at >= ? AND created_at < ?", from, to).
		Group("status").
		Scan(&rows)
	var totalOrders int64
	for _, r := range rows {
		byStatus[r.Status] = r.N
		totalOrders += r.N
	}

	var revenue float64
	database.DB.Model(&model.Order{}).
		Where("status = ? AND created_at >= ? AND created_at < ?", constants.ORDER_COMPLETED, from, to).
		Select("COALESCE(SUM(total), 0)").
		Scan(&revenue)

	var reservationsToday int64
	database.DB.Model(&model.Reservation{}).
		Where("datetime >= ? AND datetime < ?", from, to).
		Count(&reservationsToday)

	var activeDrivers int64
	database.DB.Model(&model.User{}).
		Where("role = ? AND is_active = ?", constants.ROLE_DRIVER, true).
		Count(&activeDrivers)

	utils.SendDailyReportEmail(adminEmail, utils.DailyReportData{
		Date:              from.Format("02/01/2006"),
		OrdersByStatus:    byStatus,
		TotalOrders:       totalOrders,
		TotalRevenue:      revenue,
		ReservationsToday: reservationsToday,
		ActiveDrivers:     activeDrivers,
	})
}

func StartDailyScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(RestaurantTZ),
	)
	if err != nil {
		log.Fatal(err)
	}

	dailyScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(DailyCloseout),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Daily closeout scheduler started (00:05 ICT)")
}

func StopDailyScheduler() {
	if dailyScheduler != nil {
		_ = dailyScheduler.Shutdown()
	}
}
