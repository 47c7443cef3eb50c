package overview

import (
	"context"
	"fmt"
	"time"

	"shortlink/internal/domain/models"
)

//go:generate mockgen -source=overview.go -destination=../../mocks/mock_overview_storage.go -package=mocks
type OverviewStorage interface {
	// LinkCountActiveByUser считает живые ссылки пользователя, у которых
	// expires_at NULL или в будущем (предикат проверяется по каждой строке)
	LinkCountActiveByUser(ctx context.Context, userID int64, now time.Time) (int64, error)
	ArchivedLinkCountByUser(ctx context.Context, userID int64) (int64, error)
}

type Authenticator interface {
	Authenticate(ctx context.Context, identity *models.Identity) (models.User, error)
}

// Aggregator считает сводку по ссылкам пользователя. Идентификатор
// берется только из аутентифицированной сессии - чужую сводку
// запросить нельзя.
type Aggregator struct {
	storage OverviewStorage
	guard   Authenticator
}

func NewAggregator(storage OverviewStorage, guard Authenticator) *Aggregator {
	return &Aggregator{storage: storage, guard: guard}
}

func (a *Aggregator) Overview(ctx context.Context, identity *models.Identity) (models.UserOverview, error) {
	user, err := a.guard.Authenticate(ctx, identity)
	if err != nil {
		return models.UserOverview{}, err
	}

	now := time.Now().UTC()

	active, err := a.storage.LinkCountActiveByUser(ctx, user.ID, now)
	if err != nil {
		return models.UserOverview{}, fmt.Errorf("failed to count active links: %w", err)
	}

	expired, err := a.storage.ArchivedLinkCountByUser(ctx, user.ID)
	if err != nil {
		return models.UserOverview{}, fmt.Errorf("failed to count archived links: %w", err)
	}

	return models.UserOverview{Active: active, Expired: expired}, nil
}
