package usecase

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAdmin admin huquqi yo'q
	ErrNotAdmin = errors.New("user is not admin")

	// ErrConsultantDisabled AI maslahatchi sozlanmagan
	ErrConsultantDisabled = errors.New("consultant is not configured")
)

// NotificationDeliveryError adminga xabar yetkazilmadi. Buyurtma baribir saqlangan.
type NotificationDeliveryError struct {
	OrderID int64
	Err     error
}

func (e *NotificationDeliveryError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("usecase: order %d saved but admin notification failed: %v", e.OrderID, e.Err)
}

func (e *NotificationDeliveryError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
