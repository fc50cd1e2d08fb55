package firestore

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"wedump/internal/domain/repository"
	"wedump/internal/errors"

	firestoreLib "cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// querySubscription drives one snapshot listener on its own goroutine.
type querySubscription struct {
	cancel context.CancelFunc
	closed atomic.Bool
	once   sync.Once
}

// Close stops delivery. The listener goroutine exits on its next wake-up.
func (s *querySubscription) Close() {
	s.once.Do(func() {
		s.closed.Store(true)
		s.cancel()
	})
}

// watchQuery listens to q and hands every snapshot to deliver, flagging the first one.
func watchQuery(ctx context.Context, logger *slog.Logger, name string, q firestoreLib.Query, deliver func(snap *firestoreLib.QuerySnapshot, initial bool)) repository.Subscription {
	watchCtx, cancel := context.WithCancel(ctx)
	sub := &querySubscription{cancel: cancel}
	it := q.Snapshots(watchCtx)

	go func() {
		defer it.Stop()

		initial := true
		for {
			snap, err := it.Next()
			if err != nil {
				if errors.Is(err, iterator.Done) || isCanceled(err) || watchCtx.Err() != nil {
					return
				}
				logger.Error("Live query stopped", slog.String("query", name), slog.Any("error", err))

				return
			}
			if sub.closed.Load() {
				return
			}

			deliver(snap, initial)
			initial = false
		}
	}()

	return sub
}
