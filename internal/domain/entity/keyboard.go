package entity

// Keyboard javob klaviaturasi. Remove true bo'lsa klaviatura yashiriladi.
type Keyboard struct {
	Rows   [][]string
	Remove bool
}

// NewKeyboard qatorlardan klaviatura yaratish
func NewKeyboard(rows ...[]string) *Keyboard {
	return &Keyboard{Rows: rows}
}

// RemoveKeyboard klaviaturani yashirish
func RemoveKeyboard() *Keyboard {
	return &Keyboard{Remove: true}
}
