package entity

import "time"

// Order rasmiylashtirilgan buyurtma. Yaratilgandan keyin o'zgarmaydi.
type Order struct {
	ID            int64
	UserID        int64
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	BikeModel     string
	FrameSize     string
	CreatedAt     time.Time
}
