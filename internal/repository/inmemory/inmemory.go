package inmemory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"shortlink/internal/domain/models"
)

const initLastID = 0

// InmemoryStorage - потокобезопасное хранилище для разработки и тестов,
// реализует тот же контракт, что и postgres
type InmemoryStorage struct {
	mu       sync.RWMutex
	users    map[int64]models.User
	links    map[string]models.Link
	events   []models.AccessEvent
	archived []models.ArchivedLink
	lastID   int64
}

func NewStorage() *InmemoryStorage {
	return &InmemoryStorage{
		users:  make(map[int64]models.User),
		links:  make(map[string]models.Link),
		lastID: initLastID,
	}
}

// SeedUser добавляет пользователя; в боевом хранилище пользователи
// заводятся снаружи, ядро их не создает
func (m *InmemoryStorage) SeedUser(user models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = user
}

func (m *InmemoryStorage) LinkCreate(ctx context.Context, link models.Link) (models.Link, error) {
	if err := ctx.Err(); err != nil {
		return models.Link{}, fmt.Errorf("storage unavailable: %w", err)
	}
	if link.ShortCode == "" || link.OriginalURL == "" {
		return models.Link{}, models.ErrInvalidData
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.links[link.ShortCode]; exists {
		return models.Link{}, fmt.Errorf("%w: short code %q", models.ErrConflict, link.ShortCode)
	}

	m.lastID++
	link.ID = m.lastID
	m.links[link.ShortCode] = link
	return link, nil
}

func (m *InmemoryStorage) LinkGetByShortCode(ctx context.Context, shortCode string) (models.Link, error) {
	if err := ctx.Err(); err != nil {
		return models.Link{}, fmt.Errorf("storage unavailable: %w", err)
	}
	if shortCode == "" {
		return models.Link{}, models.ErrInvalidData
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	link, exists := m.links[shortCode]
	if !exists {
		return models.Link{}, models.ErrUnfound
	}
	return link, nil
}

func (m *InmemoryStorage) LinkGetByOriginalURL(ctx context.Context, originalURL string) (models.Link, error) {
	if err := ctx.Err(); err != nil {
		return models.Link{}, fmt.Errorf("storage unavailable: %w", err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	// при нескольких живых ссылках на один URL выигрывает самая свежая,
	// как ORDER BY created_at DESC LIMIT 1 в postgres
	var (
		found  bool
		newest models.Link
	)
	for _, link := range m.links {
		if link.OriginalURL != originalURL {
			continue
		}
		if !found || link.CreatedAt.After(newest.CreatedAt) ||
			(link.CreatedAt.Equal(newest.CreatedAt) && link.ID > newest.ID) {
			newest = link
			found = true
		}
	}
	if !found {
		return models.Link{}, models.ErrUnfound
	}
	return newest, nil
}

func (m *InmemoryStorage) LinkUpdateURL(ctx context.Context, shortCode, originalURL string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("storage unavailable: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	link, exists := m.links[shortCode]
	if !exists {
		return models.ErrUnfound
	}

	link.OriginalURL = originalURL
	m.links[shortCode] = link
	return nil
}

func (m *InmemoryStorage) LinkDelete(ctx context.Context, shortCode string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("storage unavailable: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.links[shortCode]; !exists {
		return models.ErrUnfound
	}

	delete(m.links, shortCode)
	return nil
}

func (m *InmemoryStorage) AccessEventCreate(ctx context.Context, event models.AccessEvent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("storage unavailable: %w", err)
	}
	if event.ShortCode == "" {
		return models.ErrInvalidData
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastID++
	event.ID = m.lastID
	m.events = append(m.events, event)
	return nil
}

func (m *InmemoryStorage) AccessEventStats(ctx context.Context, shortCode string) (int64, *time.Time, error) {
	if err := ctx.Err(); err != nil {
		return 0, nil, fmt.Errorf("storage unavailable: %w", err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var (
		count   int64
		lastUse *time.Time
	)
	for _, event := range m.events {
		if event.ShortCode != shortCode {
			continue
		}
		count++
		if lastUse == nil || event.AccessedAt.After(*lastUse) {
			t := event.AccessedAt
			lastUse = &t
		}
	}
	return count, lastUse, nil
}

func (m *InmemoryStorage) UserGetByIDAndToken(ctx context.Context, id int64, token string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, fmt.Errorf("storage unavailable: %w", err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	user, exists := m.users[id]
	if !exists || user.Token != token {
		return models.User{}, models.ErrUnfound
	}
	return user, nil
}

func (m *InmemoryStorage) LinkCountActiveByUser(ctx context.Context, userID int64, now time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("storage unavailable: %w", err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var count int64
	for _, link := range m.links {
		if link.UserID == nil || *link.UserID != userID {
			continue
		}
		if link.ExpiresAt == nil || link.ExpiresAt.After(now) {
			count++
		}
	}
	return count, nil
}

func (m *InmemoryStorage) ArchivedLinkCountByUser(ctx context.Context, userID int64) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("storage unavailable: %w", err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var count int64
	for _, archived := range m.archived {
		if archived.UserID != nil && *archived.UserID == userID {
			count++
		}
	}
	return count, nil
}

// ArchiveExpiredLinks - перенос и удаление под одним локом, аналог
// одной транзакции в postgres
func (m *InmemoryStorage) ArchiveExpiredLinks(ctx context.Context, now time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("storage unavailable: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var archived int64
	for code, link := range m.links {
		if link.ExpiresAt == nil || !link.ExpiresAt.Before(now) {
			continue
		}

		m.lastID++
		m.archived = append(m.archived, models.ArchivedLink{
			ID:           m.lastID,
			ShortCode:    link.ShortCode,
			OriginalURL:  link.OriginalURL,
			CreatedAt:    link.CreatedAt,
			ExpiresAt:    link.ExpiresAt,
			DeletedAt:    now,
			UserID:       link.UserID,
			IsAuthorized: link.IsAuthorized,
		})
		delete(m.links, code)
		archived++
	}
	return archived, nil
}

// ArchivedLinks отдает копию архива, нужно тестам
func (m *InmemoryStorage) ArchivedLinks() []models.ArchivedLink {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]models.ArchivedLink, len(m.archived))
	copy(result, m.archived)
	return result
}

func (m *InmemoryStorage) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("storage unavailable: %w", err)
	}
	return nil
}

func (m *InmemoryStorage) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.users = make(map[int64]models.User)
	m.links = make(map[string]models.Link)
	m.events = nil
	m.archived = nil
	m.lastID = initLastID
	return nil
}
