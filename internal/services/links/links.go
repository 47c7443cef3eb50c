package links

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shortlink/internal/domain/models"
)

//go:generate mockgen -source=links.go -destination=../../mocks/mock_link_storage.go -package=mocks
type LinkStorage interface {
	LinkCreate(ctx context.Context, link models.Link) (models.Link, error)
	LinkGetByShortCode(ctx context.Context, shortCode string) (models.Link, error)
	LinkGetByOriginalURL(ctx context.Context, originalURL string) (models.Link, error)
	LinkUpdateURL(ctx context.Context, shortCode, originalURL string) error
	LinkDelete(ctx context.Context, shortCode string) error
	AccessEventCreate(ctx context.Context, event models.AccessEvent) error
	AccessEventStats(ctx context.Context, shortCode string) (int64, *time.Time, error)
	Ping(ctx context.Context) error
}

type Allocator interface {
	Allocate(ctx context.Context) (string, error)
	AllocateCustom(ctx context.Context, customAlias string) (string, error)
}

type Guard interface {
	Authenticate(ctx context.Context, identity *models.Identity) (models.User, error)
	Authorize(ctx context.Context, user models.User, shortCode string) (bool, error)
}

// Вставка в хранилище сама ловит гонку выбора кода через уникальный
// индекс, поэтому на конфликте просто перегенерируем код
const createAttempts = 3

// Service реализует жизненный цикл коротких ссылок
type Service struct {
	storage   LinkStorage
	allocator Allocator
	guard     Guard
}

func NewService(storage LinkStorage, allocator Allocator, guard Guard) *Service {
	return &Service{
		storage:   storage,
		allocator: allocator,
		guard:     guard,
	}
}

// Create создает ссылку со случайным кодом. Анонимные вызовы разрешены:
// identity == nil дает ссылку без владельца.
func (s *Service) Create(ctx context.Context, originalURL string, identity *models.Identity, expiresAt *time.Time) (models.Link, error) {
	if originalURL == "" {
		return models.Link{}, models.ErrInvalidData
	}

	link, err := s.newLink(ctx, originalURL, identity, expiresAt)
	if err != nil {
		return models.Link{}, err
	}

	for i := 0; i < createAttempts; i++ {
		code, err := s.allocator.Allocate(ctx)
		if err != nil {
			return models.Link{}, fmt.Errorf("failed to allocate short code: %w", err)
		}

		link.ShortCode = code
		created, err := s.storage.LinkCreate(ctx, link)
		if errors.Is(err, models.ErrConflict) {
			// проиграли гонку за код, пробуем новый
			continue
		}
		if err != nil {
			return models.Link{}, fmt.Errorf("failed to create link: %w", err)
		}
		return created, nil
	}

	return models.Link{}, fmt.Errorf("%w: lost short code race %d times", models.ErrExhausted, createAttempts)
}

// CreateWithAlias создает ссылку с пользовательским алиасом,
// занятый алиас - ErrConflict
func (s *Service) CreateWithAlias(ctx context.Context, originalURL, customAlias string, identity *models.Identity, expiresAt *time.Time) (models.Link, error) {
	if originalURL == "" {
		return models.Link{}, models.ErrInvalidData
	}

	link, err := s.newLink(ctx, originalURL, identity, expiresAt)
	if err != nil {
		return models.Link{}, err
	}

	code, err := s.allocator.AllocateCustom(ctx, customAlias)
	if err != nil {
		return models.Link{}, err
	}

	link.ShortCode = code
	created, err := s.storage.LinkCreate(ctx, link)
	if err != nil {
		if errors.Is(err, models.ErrConflict) {
			// кто-то успел вставить тот же алиас между проверкой и вставкой
			return models.Link{}, fmt.Errorf("%w: alias %q", models.ErrConflict, customAlias)
		}
		return models.Link{}, fmt.Errorf("failed to create link: %w", err)
	}

	return created, nil
}

// Resolve возвращает оригинальный URL и фиксирует переход.
// Истечение срока здесь не проверяется: просроченные ссылки убирает
// свипер, до его прогона ссылка остается рабочей.
func (s *Service) Resolve(ctx context.Context, shortCode string) (string, error) {
	if shortCode == "" {
		return "", models.ErrInvalidData
	}

	link, err := s.storage.LinkGetByShortCode(ctx, shortCode)
	if err != nil {
		if errors.Is(err, models.ErrUnfound) {
			return "", fmt.Errorf("%w: short code not found", models.ErrUnfound)
		}
		return "", fmt.Errorf("failed to get link: %w", err)
	}

	event := models.AccessEvent{
		ShortCode:  link.ShortCode,
		AccessedAt: time.Now().UTC(),
	}
	if err := s.storage.AccessEventCreate(ctx, event); err != nil {
		return "", fmt.Errorf("failed to record access: %w", err)
	}

	return link.OriginalURL, nil
}

// Update меняет целевой URL на месте, код и дата создания не меняются.
// Только для владельца.
func (s *Service) Update(ctx context.Context, shortCode, newURL string, identity *models.Identity) error {
	if shortCode == "" || newURL == "" {
		return models.ErrInvalidData
	}

	if err := s.authorizeOwner(ctx, shortCode, identity); err != nil {
		return err
	}

	if err := s.storage.LinkUpdateURL(ctx, shortCode, newURL); err != nil {
		return fmt.Errorf("failed to update link: %w", err)
	}
	return nil
}

// Delete навсегда убирает ссылку, без архивирования - удаление
// владельцем и истечение срока это разные судьбы
func (s *Service) Delete(ctx context.Context, shortCode string, identity *models.Identity) error {
	if shortCode == "" {
		return models.ErrInvalidData
	}

	if err := s.authorizeOwner(ctx, shortCode, identity); err != nil {
		return err
	}

	if err := s.storage.LinkDelete(ctx, shortCode); err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}
	return nil
}

// Stats отдает владельцу счетчик переходов и время последнего перехода
func (s *Service) Stats(ctx context.Context, shortCode string, identity *models.Identity) (models.LinkStats, error) {
	if shortCode == "" {
		return models.LinkStats{}, models.ErrInvalidData
	}

	if err := s.authorizeOwner(ctx, shortCode, identity); err != nil {
		return models.LinkStats{}, err
	}

	link, err := s.storage.LinkGetByShortCode(ctx, shortCode)
	if err != nil {
		return models.LinkStats{}, fmt.Errorf("failed to get link: %w", err)
	}

	count, lastUse, err := s.storage.AccessEventStats(ctx, link.ShortCode)
	if err != nil {
		return models.LinkStats{}, fmt.Errorf("failed to aggregate access events: %w", err)
	}

	return models.LinkStats{
		ShortCode:   link.ShortCode,
		OriginalURL: link.OriginalURL,
		CreatedAt:   link.CreatedAt,
		Transitions: count,
		LastUse:     lastUse,
	}, nil
}

// Search ищет живую ссылку по оригинальному URL
func (s *Service) Search(ctx context.Context, originalURL string) (models.Link, error) {
	if originalURL == "" {
		return models.Link{}, models.ErrInvalidData
	}

	link, err := s.storage.LinkGetByOriginalURL(ctx, originalURL)
	if err != nil {
		if errors.Is(err, models.ErrUnfound) {
			return models.Link{}, fmt.Errorf("%w: original URL not found", models.ErrUnfound)
		}
		return models.Link{}, fmt.Errorf("failed to search link: %w", err)
	}
	return link, nil
}

// PingDataBase проверяет соединение с хранилищем
func (s *Service) PingDataBase(ctx context.Context) error {
	if err := s.storage.Ping(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

func (s *Service) newLink(ctx context.Context, originalURL string, identity *models.Identity, expiresAt *time.Time) (models.Link, error) {
	link := models.Link{
		OriginalURL: originalURL,
		CreatedAt:   time.Now().UTC(),
		ExpiresAt:   expiresAt,
	}

	if identity == nil {
		return link, nil
	}

	user, err := s.guard.Authenticate(ctx, identity)
	if err != nil {
		return models.Link{}, err
	}

	link.UserID = &user.ID
	link.IsAuthorized = true
	return link, nil
}

// authorizeOwner - fail fast: ни одна мутация не выполняется
// до успешной аутентификации и авторизации
func (s *Service) authorizeOwner(ctx context.Context, shortCode string, identity *models.Identity) error {
	user, err := s.guard.Authenticate(ctx, identity)
	if err != nil {
		return err
	}

	ok, err := s.guard.Authorize(ctx, user, shortCode)
	if err != nil {
		return err
	}
	if !ok {
		return models.ErrForbidden
	}
	return nil
}
