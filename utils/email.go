package utils

import (
	"bytes"
	"html/template"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// DailyReportData dữ liệu cho template email báo cáo cuối ngày
type DailyReportData struct {
	Date              string
	OrdersByStatus    map[string]int64
	TotalOrders       int64
	TotalRevenue      float64
	ReservationsToday int64
	ActiveDrivers     int64
}

// SendDailyReportEmail gửi báo cáo vận hành hằng ngày cho admin (async)
func SendDailyReportEmail(to string, data DailyReportData) {
	go func() {
		tmplPath := "templates/daily_report.html"
		tmpl, err := template.ParseFiles(tmplPath)
		if err != nil {
			log.Printf("Lỗi load template email: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("Lỗi render template email: %v", err)
			return
		}

		host := os.Getenv("SMTP_HOST")
		portStr := os.Getenv("SMTP_PORT")
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")

		port, _ := strconv.Atoi(portStr)

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Báo cáo vận hành ngày "+data.Date)
		m.SetBody("text/html", body.String())

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("Lỗi gửi email: %v", err)
		}
	}()
}
