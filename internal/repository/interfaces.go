package repository

import (
	"context"
	"time"

	"shortlink/internal/domain/models"
)

// Storage - полный контракт шлюза персистентности. Сервисы объявляют
// у себя узкие срезы этого интерфейса, обе реализации (postgres, inmemory)
// покрывают его целиком.
type (
	Storage interface {
		// Живые ссылки
		LinkCreate(ctx context.Context, link models.Link) (models.Link, error)
		LinkGetByShortCode(ctx context.Context, shortCode string) (models.Link, error)
		LinkGetByOriginalURL(ctx context.Context, originalURL string) (models.Link, error)
		LinkUpdateURL(ctx context.Context, shortCode, originalURL string) error
		LinkDelete(ctx context.Context, shortCode string) error

		// События переходов (append-only)
		AccessEventCreate(ctx context.Context, event models.AccessEvent) error
		AccessEventStats(ctx context.Context, shortCode string) (int64, *time.Time, error)

		// Пользователи (сидятся снаружи, только чтение)
		UserGetByIDAndToken(ctx context.Context, id int64, token string) (models.User, error)

		// Агрегаты для сводки
		LinkCountActiveByUser(ctx context.Context, userID int64, now time.Time) (int64, error)
		ArchivedLinkCountByUser(ctx context.Context, userID int64) (int64, error)

		// Архивирование просроченных ссылок, атомарно
		ArchiveExpiredLinks(ctx context.Context, now time.Time) (int64, error)

		// Управление соединением
		Ping(ctx context.Context) error
		Close() error
	}
)
