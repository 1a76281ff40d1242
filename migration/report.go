package migration

// Report tổng kết một lượt migrate. Lỗi từng bản ghi chỉ đếm và log,
// không dừng cả lượt — job chạy lại được nhiều lần.
type Report struct {
	Scanned int `json:"scanned"`
	Created int `json:"created"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
	Errors  int `json:"errors"`
}
