package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/yourusername/txed-bike-bot/internal/domain/entity"
	"github.com/yourusername/txed-bike-bot/internal/domain/repository"
)

const (
	// UserListLimit ro'yxatda ko'rsatiladigan foydalanuvchilar soni
	UserListLimit = 50
	// AuditLogLimit jurnalda ko'rsatiladigan oxirgi harakatlar soni
	AuditLogLimit = 20
)

// AdminUseCase admin paneli uchun interface
type AdminUseCase interface {
	// IsAdmin foydalanuvchi admin ekanligini tekshirish
	IsAdmin(userID int64) bool

	// StatsText statistika matni
	StatsText(ctx context.Context) (string, error)

	// UserListText foydalanuvchilar ro'yxati matni
	UserListText(ctx context.Context) (string, error)

	// Broadcast barcha foydalanuvchilarga xabar yuborish
	Broadcast(ctx context.Context, adminID int64, text string) (entity.BroadcastReport, error)

	// ExportOrders buyurtmalarni xlsx ko'rinishida olish
	ExportOrders(ctx context.Context, adminID int64) ([]byte, int, error)

	// UploadCatalog Excel fayldan katalogni yangilash
	UploadCatalog(ctx context.Context, adminID int64, data []byte, filename string) (int, error)

	// AuditLogText oxirgi admin harakatlari
	AuditLogText(ctx context.Context) (string, error)
}

// AdminDeps admin paneli bog'liqliklari
type AdminDeps struct {
	AdminID     int64
	Users       UserUseCase
	OrderRepo   repository.OrderRepository
	AdminRepo   repository.AdminRepository
	CatalogRepo repository.CatalogRepository
	Parser      repository.CatalogParser
	Exporter    repository.OrderExporter
	Sender      repository.Sender
	// Limiter rassilka tezligi. nil bo'lsa cheklanmaydi.
	Limiter *rate.Limiter
	Logger  *zap.SugaredLogger
}

type adminUseCase struct {
	AdminDeps
	now func() time.Time
	log *zap.SugaredLogger
}

// NewAdminUseCase yangi AdminUseCase yaratish
func NewAdminUseCase(deps AdminDeps) AdminUseCase {
	if deps.Limiter == nil {
		deps.Limiter = rate.NewLimiter(rate.Inf, 1)
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &adminUseCase{AdminDeps: deps, now: time.Now, log: logger}
}

// IsAdmin admin tekshirish
func (a *adminUseCase) IsAdmin(userID int64) bool {
	return userID == a.AdminID
}

// StatsText statistika
func (a *adminUseCase) StatsText(ctx context.Context) (string, error) {
	stats, err := a.Users.Stats(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Статистика бота:\nВсего пользователей: %d\nАктивных сегодня: %d\nНовых сегодня: %d",
		stats.Total, stats.ActiveToday, stats.NewToday), nil
}

// UserListText foydalanuvchilar ro'yxati
func (a *adminUseCase) UserListText(ctx context.Context) (string, error) {
	users, err := a.Users.List(ctx)
	if err != nil {
		return "", err
	}
	if len(users) == 0 {
		return "Пользователей пока нет", nil
	}
	return FormatUserList(users, UserListLimit), nil
}

// FormatUserList birinchi limit ta foydalanuvchi, qolganlari soni bilan
func FormatUserList(users []entity.User, limit int) string {
	var sb strings.Builder
	sb.WriteString("Список пользователей:\n\n")

	shown := users
	if len(shown) > limit {
		shown = shown[:limit]
	}
	for i, u := range shown {
		name := u.FullName()
		if name == "" {
			name = "Не указано"
		}
		username := "Не указан"
		if u.Username != "" {
			username = "@" + u.Username
		}
		fmt.Fprintf(&sb, "%d. ID: %d\n Имя: %s\n Username: %s\n\n", i+1, u.ID, name, username)
	}

	if rest := len(users) - len(shown); rest > 0 {
		fmt.Fprintf(&sb, "... и ещё %d пользователей", rest)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// AuditLogText admin harakatlari jurnali (yangilari birinchi)
func (a *adminUseCase) AuditLogText(ctx context.Context) (string, error) {
	actions, err := a.AdminRepo.ListActions(ctx, AuditLogLimit)
	if err != nil {
		return "", fmt.Errorf("failed to list admin actions: %w", err)
	}
	if len(actions) == 0 {
		return "Журнал действий пуст", nil
	}
	return FormatAuditLog(actions, a.now().Location()), nil
}

// FormatAuditLog harakatlarni loc vaqt zonasida chiqarish
func FormatAuditLog(actions []entity.AdminAction, loc *time.Location) string {
	var sb strings.Builder
	sb.WriteString("Журнал действий:\n\n")
	for i, act := range actions {
		fmt.Fprintf(&sb, "%d. %s %s\n %s\n\n", i+1, act.Timestamp.In(loc).Format("02.01.2006 15:04"), act.Action, act.Details)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// Broadcast rassilka. Har bir yuborish mustaqil, qayta urinish yo'q.
func (a *adminUseCase) Broadcast(ctx context.Context, adminID int64, text string) (entity.BroadcastReport, error) {
	if !a.IsAdmin(adminID) {
		return entity.BroadcastReport{}, ErrNotAdmin
	}

	users, err := a.Users.List(ctx)
	if err != nil {
		return entity.BroadcastReport{}, err
	}

	report := entity.BroadcastReport{Total: len(users)}
	for _, u := range users {
		if err := a.Limiter.Wait(ctx); err != nil {
			// Kontekst tugadi: qolganlar yuborilmagan deb hisoblanadi
			report.Failed += report.Total - report.Successful - report.Failed
			break
		}
		if err := a.Sender.SendText(ctx, u.ID, text, nil); err != nil {
			report.Failed++
			a.log.Warnw("broadcast delivery failed", "user_id", u.ID, "err", err)
			continue
		}
		report.Successful++
	}

	a.logAction(ctx, adminID, entity.ActionBroadcast,
		fmt.Sprintf("total=%d ok=%d failed=%d text=%q", report.Total, report.Successful, report.Failed, text))
	return report, nil
}

// ExportOrders buyurtmalarni Excel ga chiqarish
func (a *adminUseCase) ExportOrders(ctx context.Context, adminID int64) ([]byte, int, error) {
	if !a.IsAdmin(adminID) {
		return nil, 0, ErrNotAdmin
	}

	orders, err := a.OrderRepo.ListOrders(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}

	data, err := a.Exporter.ExportOrders(ctx, orders)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to export orders: %w", err)
	}

	a.logAction(ctx, adminID, entity.ActionExportOrders, fmt.Sprintf("orders=%d", len(orders)))
	return data, len(orders), nil
}

// UploadCatalog katalogni Excel fayldan almashtirish
func (a *adminUseCase) UploadCatalog(ctx context.Context, adminID int64, data []byte, filename string) (int, error) {
	if !a.IsAdmin(adminID) {
		return 0, ErrNotAdmin
	}

	bikes, err := a.Parser.ParseCatalogFromBytes(ctx, data)
	if err != nil {
		return 0, fmt.Errorf("failed to parse catalog: %w", err)
	}

	err = a.CatalogRepo.ReplaceCatalog(ctx, entity.BikeCatalog{
		Bikes:     bikes,
		UpdatedAt: a.now(),
		Source:    filename,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to replace catalog: %w", err)
	}

	a.log.Infow("catalog replaced", "file", filename, "models", len(bikes))
	a.logAction(ctx, adminID, entity.ActionUploadCatalog, fmt.Sprintf("file=%s models=%d", filename, len(bikes)))
	return len(bikes), nil
}

// logAction audit yozuvi. Xato faqat loglanadi.
func (a *adminUseCase) logAction(ctx context.Context, adminID int64, action, details string) {
	err := a.AdminRepo.LogAction(ctx, entity.AdminAction{
		UserID:    adminID,
		Action:    action,
		Details:   details,
		Timestamp: a.now(),
	})
	if err != nil {
		a.log.Errorw("failed to log admin action", "action", action, "err", err)
	}
}
