package usecase

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/yourusername/txed-bike-bot/internal/domain/entity"
	"github.com/yourusername/txed-bike-bot/internal/domain/repository"
)

var errSend = errors.New("send failed")

type sentMessage struct {
	ChatID int64
	Text   string
	Kb     *entity.Keyboard
}

type fakeSender struct {
	mu     sync.Mutex
	texts  []sentMessage
	docs   []string
	failTo map[int64]bool
}

func (f *fakeSender) SendText(ctx context.Context, chatID int64, text string, kb *entity.Keyboard) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failTo[chatID] {
		return errSend
	}
	f.texts = append(f.texts, sentMessage{ChatID: chatID, Text: text, Kb: kb})
	return nil
}

func (f *fakeSender) SendPhoto(ctx context.Context, chatID int64, imageRef string, caption string) error {
	return nil
}

func (f *fakeSender) SendDocument(ctx context.Context, chatID int64, filename string, data []byte, caption string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.docs = append(f.docs, filename)
	return nil
}

type fakeOrderRepo struct {
	orders []entity.Order
	err    error
}

func (f *fakeOrderRepo) CreateOrder(ctx context.Context, order entity.Order) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	order.ID = int64(len(f.orders) + 1)
	f.orders = append(f.orders, order)
	return order.ID, nil
}

func (f *fakeOrderRepo) ListOrders(ctx context.Context) ([]entity.Order, error) {
	return append([]entity.Order(nil), f.orders...), f.err
}

type fakeUserRepo struct {
	users map[int64]entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]entity.User{}}
}

func (f *fakeUserRepo) UpsertUser(ctx context.Context, user entity.User) error {
	if old, ok := f.users[user.ID]; ok {
		user.CreatedAt = old.CreatedAt
		user.MessageCount = old.MessageCount
		if old.LastActive.After(user.LastActive) {
			user.LastActive = old.LastActive
		}
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) RecordActivity(ctx context.Context, userID int64, at time.Time) error {
	u, ok := f.users[userID]
	if !ok {
		return repository.ErrNotFound
	}
	if at.After(u.LastActive) {
		u.LastActive = at
	}
	u.MessageCount++
	f.users[userID] = u
	return nil
}

func (f *fakeUserRepo) ListUsers(ctx context.Context) ([]entity.User, error) {
	users := make([]entity.User, 0, len(f.users))
	for _, u := range f.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID > users[j].ID })
	return users, nil
}

func (f *fakeUserRepo) Stats(ctx context.Context, dayStart, dayEnd time.Time) (entity.UserStats, error) {
	var s entity.UserStats
	in := func(t time.Time) bool { return !t.Before(dayStart) && t.Before(dayEnd) }
	for _, u := range f.users {
		s.Total++
		if in(u.LastActive) {
			s.ActiveToday++
		}
		if in(u.CreatedAt) {
			s.NewToday++
		}
	}
	return s, nil
}

type fakeAdminRepo struct {
	actions []entity.AdminAction
}

func (f *fakeAdminRepo) LogAction(ctx context.Context, action entity.AdminAction) error {
	f.actions = append(f.actions, action)
	return nil
}

func (f *fakeAdminRepo) ListActions(ctx context.Context, limit int) ([]entity.AdminAction, error) {
	out := make([]entity.AdminAction, 0, len(f.actions))
	for i := len(f.actions) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, f.actions[i])
	}
	return out, nil
}

type fakeExporter struct {
	got []entity.Order
}

func (f *fakeExporter) ExportOrders(ctx context.Context, orders []entity.Order) ([]byte, error) {
	f.got = orders
	return []byte("xlsx"), nil
}

type fakeAI struct {
	question string
	context  string
	deadline bool
	answer   string
	err      error
}

func (f *fakeAI) GenerateAnswer(ctx context.Context, question string, catalogContext string) (string, error) {
	f.question = question
	f.context = catalogContext
	_, f.deadline = ctx.Deadline()
	return f.answer, f.err
}

type fakeCatalogRepo struct {
	bikes []entity.Bike
}

func (f *fakeCatalogRepo) GetByCode(ctx context.Context, code string) (*entity.Bike, error) {
	for _, b := range f.bikes {
		if b.Code == code {
			b := b
			return &b, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeCatalogRepo) GetAll(ctx context.Context) ([]entity.Bike, error) {
	return f.bikes, nil
}

func (f *fakeCatalogRepo) ReplaceCatalog(ctx context.Context, catalog entity.BikeCatalog) error {
	f.bikes = catalog.Bikes
	return nil
}

type fakeParser struct {
	bikes []entity.Bike
	err   error
}

func (f *fakeParser) ParseCatalog(ctx context.Context, filePath string) ([]entity.Bike, error) {
	return f.bikes, f.err
}

func (f *fakeParser) ParseCatalogFromBytes(ctx context.Context, data []byte) ([]entity.Bike, error) {
	return f.bikes, f.err
}
