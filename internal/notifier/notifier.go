package notifier

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/erpfinance/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=notifier.go -destination=mock.go -package=notifier

type Mailer interface {
	Send(ctx context.Context, to, subject, template string, vars map[string]any) error
}

// Service delivers notifications in the background so the caller never waits for SMTP.
type Service struct {
	mailer     Mailer
	workerPool WorkerPoolI
}

func New(mailer Mailer, workers int) *Service {
	return &Service{
		mailer:     mailer,
		workerPool: NewWorkerPool(workers, workers*16),
	}
}

// Enqueue schedules delivery of n to every recipient. Delivery errors are logged by the pool.
func (s *Service) Enqueue(ctx context.Context, n domain.Notification) error {
	if len(n.Recipients) == 0 {
		return nil
	}
	// the request context ends with the request, delivery must outlive it
	taskCtx := context.WithoutCancel(ctx)

	return s.workerPool.AddTask(ctx, func() error {
		return s.deliver(taskCtx, n)
	})
}

func (s *Service) deliver(ctx context.Context, n domain.Notification) error {
	var g errgroup.Group
	for _, to := range n.Recipients {
		to := to
		g.Go(func() error {
			if err := s.mailer.Send(ctx, to, n.Subject, n.Template, n.Variables); err != nil {
				zap.L().Warn("notification not delivered", zap.String("to", to), zap.String("template", n.Template), zap.Error(err))
				return fmt.Errorf("%w: %s: %v", domain.ErrDelivery, n.Template, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func (s *Service) Close() {
	s.workerPool.Close()
}
