package entity

import "time"

// Bike katalogdagi velosiped modeli
type Bike struct {
	Code        string // "PRIMO", "TERZO", ...
	Description string
	Price       int // rubl
	Photos      []string
}

// BikeCatalog velosipedlar katalogi
type BikeCatalog struct {
	Bikes     []Bike
	UpdatedAt time.Time
	Source    string // "builtin" yoki Excel fayl nomi
}
