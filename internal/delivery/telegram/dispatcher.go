package telegram

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const workerQueueSize = 64

// dispatcher xabarlarni foydalanuvchi ID bo'yicha workerlarga taqsimlaydi.
// Bitta foydalanuvchining xabarlari doim bitta workerga tushadi va ketma-ket
// qayta ishlanadi, turli foydalanuvchilar parallel ishlaydi.
type dispatcher struct {
	workers int
	handle  func(ctx context.Context, in Incoming)
	log     *zap.SugaredLogger
}

func newDispatcher(workers int, handle func(ctx context.Context, in Incoming), logger *zap.SugaredLogger) *dispatcher {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &dispatcher{workers: workers, handle: handle, log: logger}
}

func (d *dispatcher) shard(userID int64) int {
	return int(uint64(userID) % uint64(d.workers))
}

// Run source yopilguncha yoki ctx tugaguncha ishlaydi
func (d *dispatcher) Run(ctx context.Context, source <-chan Incoming) error {
	g, gctx := errgroup.WithContext(ctx)

	queues := make([]chan Incoming, d.workers)
	for i := range queues {
		queue := make(chan Incoming, workerQueueSize)
		queues[i] = queue
		g.Go(func() error {
			for in := range queue {
				d.safeHandle(gctx, in)
			}
			return nil
		})
	}

	g.Go(func() error {
		defer func() {
			for _, q := range queues {
				close(q)
			}
		}()
		for {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case in, ok := <-source:
				if !ok {
					return nil
				}
				select {
				case queues[d.shard(in.UserID)] <- in:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
		}
	})

	return g.Wait()
}

// safeHandle bitta xabardagi panic butun botni to'xtatmasligi kerak
func (d *dispatcher) safeHandle(ctx context.Context, in Incoming) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Errorw("handler panic", "user_id", in.UserID, "panic", fmt.Sprint(r))
		}
	}()
	d.handle(ctx, in)
}
