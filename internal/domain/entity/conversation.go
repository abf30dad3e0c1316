package entity

import (
	"time"

	"github.com/yourusername/txed-bike-bot/internal/domain/orderflow"
)

// Screen foydalanuvchi hozir turgan menyu
type Screen string

const (
	ScreenMain      Screen = "main"
	ScreenCatalog   Screen = "catalog"
	ScreenBike      Screen = "bike"
	ScreenAbout     Screen = "about"
	ScreenAdmin     Screen = "admin"
	ScreenBroadcast Screen = "broadcast"
	ScreenOrder     Screen = "order"
)

// Conversation bitta foydalanuvchi bilan suhbat holati.
// Har bir xabarda o'qiladi va qayta ishlangandan keyin saqlanadi.
type Conversation struct {
	UserID        int64             `json:"user_id"`
	Screen        Screen            `json:"screen"`
	SelectedModel string            `json:"selected_model,omitempty"`
	Flow          orderflow.Session `json:"flow"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// NewConversation bosh menyudagi yangi suhbat
func NewConversation(userID int64) *Conversation {
	return &Conversation{UserID: userID, Screen: ScreenMain}
}

// InFlow buyurtma oqimi davom etyaptimi
func (c *Conversation) InFlow() bool {
	return c.Flow.State.Active()
}
