package entity

import "time"

// Admin harakatlari turlari
const (
	ActionBroadcast     = "broadcast"
	ActionExportOrders  = "export_orders"
	ActionUploadCatalog = "upload_catalog"
)

// AdminAction admin harakatlari
type AdminAction struct {
	ID        string
	UserID    int64
	Action    string // "broadcast", "export_orders", "upload_catalog"
	Details   string
	Timestamp time.Time
}

// BroadcastReport rassilka natijasi
type BroadcastReport struct {
	Total      int
	Successful int
	Failed     int
}
