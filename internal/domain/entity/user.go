package entity

import (
	"strings"
	"time"
)

// User bot foydalanuvchisi
type User struct {
	ID           int64
	Username     string
	FirstName    string
	LastName     string
	CreatedAt    time.Time
	LastActive   time.Time
	MessageCount int
}

// FullName ism va familiya
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// UserStats foydalanuvchilar statistikasi
type UserStats struct {
	Total       int
	ActiveToday int
	NewToday    int
}
