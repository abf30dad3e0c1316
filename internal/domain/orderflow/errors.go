package orderflow

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingSelection oqimga model tanlanmasdan kirilganda
	ErrMissingSelection = errors.New("orderflow: no bike model selected")

	// ErrNotInFlow suhbat buyurtma oqimida emas
	ErrNotInFlow = errors.New("orderflow: conversation is not in the order flow")
)

type Reason string

const (
	ReasonFrameSize     Reason = "frame_size"
	ReasonNameTooShort  Reason = "name_too_short"
	ReasonPhoneTooShort Reason = "phone_too_short"
	ReasonEmpty         Reason = "empty"
	ReasonCommand       Reason = "command"
)

// ValidationError kiritilgan qiymat joriy qadam qoidasiga mos kelmadi.
// Holat o'zgarmaydi, foydalanuvchidan qayta so'raladi.
type ValidationError struct {
	State  State
	Reason Reason
	Input  string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("orderflow: invalid input in %s (%s): %q", e.State, e.Reason, e.Input)
}

// IsValidation err ValidationError ekanligini tekshirish
func IsValidation(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
