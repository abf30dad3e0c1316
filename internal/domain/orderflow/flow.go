package orderflow

import (
	"strings"
	"unicode/utf8"
)

// State buyurtma oqimi holati
type State int

const (
	StateIdle State = iota
	StateAwaitingFrameSize
	StateAwaitingName
	StateAwaitingPhone
	StateAwaitingEmail
	StateComplete
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateAwaitingFrameSize:
		return "AWAITING_FRAME_SIZE"
	case StateAwaitingName:
		return "AWAITING_NAME"
	case StateAwaitingPhone:
		return "AWAITING_PHONE"
	case StateAwaitingEmail:
		return "AWAITING_EMAIL"
	case StateComplete:
		return "COMPLETE"
	case StateCancelled:
		return "CANCELLED"
	default:
		return "UNKNOWN"
	}
}

// Active oqim kiritish kutayotgan holatda ekanligi
func (s State) Active() bool {
	return s >= StateAwaitingFrameSize && s <= StateAwaitingEmail
}

const (
	MinNameLength  = 2
	MinPhoneLength = 5
)

// DefaultFrameSizes rama o'lchamlari
var DefaultFrameSizes = []string{`M (17")`, `L (19")`, `XL (21")`}

// DefaultCancelSignals oqimni bekor qiluvchi tugma va komandalar
var DefaultCancelSignals = []string{"Назад", "/cancel"}

// Draft rasmiylashtirilayotgan buyurtma ma'lumotlari
type Draft struct {
	SelectedModel string `json:"selected_model"`
	FrameSize     string `json:"frame_size,omitempty"`
	CustomerName  string `json:"customer_name,omitempty"`
	CustomerPhone string `json:"customer_phone,omitempty"`
	CustomerEmail string `json:"customer_email,omitempty"`
}

// Session bitta suhbatning oqim holati. Har bir o'tish yangi Session qaytaradi.
type Session struct {
	State State `json:"state"`
	Draft Draft `json:"draft"`
}

// Prompt foydalanuvchidan keyingi so'raladigan qiymat
type Prompt int

const (
	PromptNone Prompt = iota
	PromptFrameSize
	PromptName
	PromptPhone
	PromptEmail
)

// Step o'tish natijasi
type Step struct {
	Session     Session
	StillInFlow bool
	Prompt      Prompt
	Cancelled   bool
	Completed   *Draft
}

type Config struct {
	FrameSizes    []string
	CollectEmail  bool
	CancelSignals []string
}

// Machine buyurtma oqimi qoidalari. Holat saqlamaydi, shuning uchun
// bir nechta goroutine tomonidan ishlatilishi mumkin.
type Machine struct {
	frameSizes    []string
	collectEmail  bool
	cancelSignals []string
}

// NewMachine yangi Machine yaratish
func NewMachine(cfg Config) *Machine {
	sizes := cfg.FrameSizes
	if len(sizes) == 0 {
		sizes = DefaultFrameSizes
	}
	signals := cfg.CancelSignals
	if len(signals) == 0 {
		signals = DefaultCancelSignals
	}
	return &Machine{
		frameSizes:    append([]string(nil), sizes...),
		collectEmail:  cfg.CollectEmail,
		cancelSignals: append([]string(nil), signals...),
	}
}

// FrameSizes rama o'lchamlari ro'yxati
func (m *Machine) FrameSizes() []string {
	return append([]string(nil), m.frameSizes...)
}

// CollectsEmail email qadami yoqilganmi
func (m *Machine) CollectsEmail() bool {
	return m.collectEmail
}

// CommandKey "/cmd@bot args" ko'rinishidagi komandani "/cmd" ga keltirish.
// Komanda bo'lmagan matn faqat trim qilinadi.
func CommandKey(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return text
	}
	key := strings.Fields(text)[0]
	if i := strings.IndexByte(key, '@'); i >= 0 {
		key = key[:i]
	}
	return key
}

// IsCancel matn bekor qilish signali ekanligini tekshirish
func (m *Machine) IsCancel(text string) bool {
	text = CommandKey(text)
	for _, sig := range m.cancelSignals {
		if text == sig {
			return true
		}
	}
	return false
}

// Enter oqimni boshlash. Model tanlanmagan bo'lsa sessiya o'zgarmaydi.
func (m *Machine) Enter(s Session, selectedModel string) (Step, error) {
	if strings.TrimSpace(selectedModel) == "" {
		return Step{Session: s, StillInFlow: s.State.Active(), Prompt: s.State.Prompt()}, ErrMissingSelection
	}

	next := Session{
		State: StateAwaitingFrameSize,
		Draft: Draft{SelectedModel: selectedModel},
	}
	return Step{Session: next, StillInFlow: true, Prompt: PromptFrameSize}, nil
}

// Submit joriy qadam uchun kiritilgan matnni qayta ishlash
func (m *Machine) Submit(s Session, text string) (Step, error) {
	if !s.State.Active() {
		return Step{Session: s}, ErrNotInFlow
	}

	if m.IsCancel(text) {
		return Step{Session: m.Cancel(s), Cancelled: true}, nil
	}

	value := strings.TrimSpace(text)
	if strings.HasPrefix(value, "/") {
		return m.reject(s, ReasonCommand, text)
	}

	next := s
	switch s.State {
	case StateAwaitingFrameSize:
		// Aniq moslik: katta-kichik harf va bo'shliqlar ham hisobga olinadi
		if !m.isFrameSize(text) {
			return m.reject(s, ReasonFrameSize, text)
		}
		next.Draft.FrameSize = text
		next.State = StateAwaitingName

	case StateAwaitingName:
		if value == "" {
			return m.reject(s, ReasonEmpty, text)
		}
		if utf8.RuneCountInString(value) < MinNameLength {
			return m.reject(s, ReasonNameTooShort, text)
		}
		next.Draft.CustomerName = value
		next.State = StateAwaitingPhone

	case StateAwaitingPhone:
		if value == "" {
			return m.reject(s, ReasonEmpty, text)
		}
		if utf8.RuneCountInString(value) < MinPhoneLength {
			return m.reject(s, ReasonPhoneTooShort, text)
		}
		next.Draft.CustomerPhone = value
		if m.collectEmail {
			next.State = StateAwaitingEmail
		} else {
			return m.complete(next), nil
		}

	case StateAwaitingEmail:
		if value == "" {
			return m.reject(s, ReasonEmpty, text)
		}
		next.Draft.CustomerEmail = value
		return m.complete(next), nil
	}

	return Step{Session: next, StillInFlow: true, Prompt: next.State.Prompt()}, nil
}

// Cancel oqimni bekor qilish. Draft tozalanadi.
func (m *Machine) Cancel(s Session) Session {
	if !s.State.Active() {
		return s
	}
	return Session{State: StateCancelled}
}

func (m *Machine) complete(s Session) Step {
	draft := s.Draft
	return Step{
		Session:   Session{State: StateComplete},
		Completed: &draft,
	}
}

func (m *Machine) reject(s Session, reason Reason, input string) (Step, error) {
	step := Step{Session: s, StillInFlow: true, Prompt: s.State.Prompt()}
	return step, &ValidationError{State: s.State, Reason: reason, Input: input}
}

func (m *Machine) isFrameSize(text string) bool {
	for _, size := range m.frameSizes {
		if text == size {
			return true
		}
	}
	return false
}

// Prompt holatda kutilayotgan qiymat
func (s State) Prompt() Prompt {
	switch s {
	case StateAwaitingFrameSize:
		return PromptFrameSize
	case StateAwaitingName:
		return PromptName
	case StateAwaitingPhone:
		return PromptPhone
	case StateAwaitingEmail:
		return PromptEmail
	default:
		return PromptNone
	}
}
