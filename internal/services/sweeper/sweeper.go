package sweeper

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

//go:generate mockgen -source=sweeper.go -destination=../../mocks/mock_sweeper_storage.go -package=mocks
type ArchiveStorage interface {
	// ArchiveExpiredLinks атомарно переносит все просроченные живые ссылки
	// в архив и удаляет их из живой таблицы, возвращает число перенесенных
	ArchiveExpiredLinks(ctx context.Context, now time.Time) (int64, error)
}

// Sweeper - периодическая фоновая задача с явным жизненным циклом,
// живет дольше любого отдельного запроса и не зависит от трафика
type Sweeper struct {
	storage  ArchiveStorage
	log      zerolog.Logger
	interval time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
}

func NewSweeper(storage ArchiveStorage, log zerolog.Logger, interval time.Duration) *Sweeper {
	return &Sweeper{
		storage:  storage,
		log:      log,
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start запускает цикл свипа. Ошибка одного прогона логируется
// и не мешает следующему тику.
func (s *Sweeper) Start(ctx context.Context) {
	go func() {
		defer close(s.doneCh)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.log.Info().Dur("interval", s.interval).Msg("sweeper started")

		for {
			select {
			case <-ticker.C:
				if err := s.SweepOnce(ctx); err != nil {
					s.log.Error().Err(err).Msg("sweep failed")
				}
			case <-s.stopCh:
				s.log.Info().Msg("sweeper stopped")
				return
			case <-ctx.Done():
				s.log.Info().Msg("sweeper context canceled")
				return
			}
		}
	}()
}

// Stop останавливает цикл и дожидается завершения текущего прогона
func (s *Sweeper) Stop() {
	close(s.stopCh)
	<-s.doneCh
}

// SweepOnce - один прогон. Идемпотентен: без новых просроченных
// ссылок ничего не меняет.
func (s *Sweeper) SweepOnce(ctx context.Context) error {
	archived, err := s.storage.ArchiveExpiredLinks(ctx, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to archive expired links: %w", err)
	}

	if archived > 0 {
		s.log.Info().Int64("archived", archived).Msg("expired links archived")
	}
	return nil
}
