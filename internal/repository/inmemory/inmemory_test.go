package inmemory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"shortlink/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func newLink(code string, ownerID *int64, expiresAt *time.Time) models.Link {
	return models.Link{
		ShortCode:    code,
		OriginalURL:  "https://example.com/" + code,
		CreatedAt:    time.Now().UTC().Add(-time.Hour),
		ExpiresAt:    expiresAt,
		UserID:       ownerID,
		IsAuthorized: ownerID != nil,
	}
}

func TestInmemoryStorage_LinkCreate(t *testing.T) {
	ctx := context.Background()
	storage := NewStorage()

	created, err := storage.LinkCreate(ctx, newLink("aBcD12", nil, nil))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	// повторная вставка того же кода - конфликт, запись не перезаписывается
	_, err = storage.LinkCreate(ctx, models.Link{ShortCode: "aBcD12", OriginalURL: "https://other.example"})
	assert.ErrorIs(t, err, models.ErrConflict)

	got, err := storage.LinkGetByShortCode(ctx, "aBcD12")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/aBcD12", got.OriginalURL)

	_, err = storage.LinkGetByShortCode(ctx, "missing")
	assert.ErrorIs(t, err, models.ErrUnfound)
}

func TestInmemoryStorage_LinkUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	storage := NewStorage()

	_, err := storage.LinkCreate(ctx, newLink("promo1", int64Ptr(1), nil))
	require.NoError(t, err)

	require.NoError(t, storage.LinkUpdateURL(ctx, "promo1", "https://b.com"))

	got, err := storage.LinkGetByShortCode(ctx, "promo1")
	require.NoError(t, err)
	assert.Equal(t, "https://b.com", got.OriginalURL)

	require.NoError(t, storage.LinkDelete(ctx, "promo1"))
	assert.ErrorIs(t, storage.LinkDelete(ctx, "promo1"), models.ErrUnfound)

	// удаление владельцем не архивирует
	assert.Empty(t, storage.ArchivedLinks())
}

func TestInmemoryStorage_AccessEventStats(t *testing.T) {
	ctx := context.Background()
	storage := NewStorage()

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		err := storage.AccessEventCreate(ctx, models.AccessEvent{
			ShortCode:  "promo1",
			AccessedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}
	require.NoError(t, storage.AccessEventCreate(ctx, models.AccessEvent{
		ShortCode:  "other1",
		AccessedAt: base,
	}))

	count, lastUse, err := storage.AccessEventStats(ctx, "promo1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	require.NotNil(t, lastUse)
	assert.Equal(t, base.Add(2*time.Minute), *lastUse)

	count, lastUse, err = storage.AccessEventStats(ctx, "silent")
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Nil(t, lastUse)
}

func TestInmemoryStorage_UserGetByIDAndToken(t *testing.T) {
	ctx := context.Background()
	storage := NewStorage()
	storage.SeedUser(models.User{ID: 1, Token: "token1"})

	user, err := storage.UserGetByIDAndToken(ctx, 1, "token1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)

	// неверный токен и несуществующий id неразличимы
	_, err = storage.UserGetByIDAndToken(ctx, 1, "wrong")
	assert.ErrorIs(t, err, models.ErrUnfound)
	_, err = storage.UserGetByIDAndToken(ctx, 99, "token1")
	assert.ErrorIs(t, err, models.ErrUnfound)
}

func TestInmemoryStorage_ArchiveExpiredLinks(t *testing.T) {
	ctx := context.Background()
	storage := NewStorage()

	now := time.Now().UTC()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	_, err := storage.LinkCreate(ctx, newLink("oldie1", int64Ptr(1), &past))
	require.NoError(t, err)
	_, err = storage.LinkCreate(ctx, newLink("fresh1", int64Ptr(1), &future))
	require.NoError(t, err)
	_, err = storage.LinkCreate(ctx, newLink("keeper", int64Ptr(1), nil))
	require.NoError(t, err)

	archived, err := storage.ArchiveExpiredLinks(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), archived)

	// просроченная ссылка ушла из живых и появилась в архиве ровно один раз
	_, err = storage.LinkGetByShortCode(ctx, "oldie1")
	assert.ErrorIs(t, err, models.ErrUnfound)

	rows := storage.ArchivedLinks()
	require.Len(t, rows, 1)
	assert.Equal(t, "oldie1", rows[0].ShortCode)
	assert.True(t, !rows[0].DeletedAt.Before(*rows[0].ExpiresAt))

	// живые остались живыми
	_, err = storage.LinkGetByShortCode(ctx, "fresh1")
	require.NoError(t, err)
	_, err = storage.LinkGetByShortCode(ctx, "keeper")
	require.NoError(t, err)

	// повторный прогон без новых просроченных - no-op
	archived, err = storage.ArchiveExpiredLinks(ctx, now)
	require.NoError(t, err)
	assert.Zero(t, archived)
	assert.Len(t, storage.ArchivedLinks(), 1)
}

func TestInmemoryStorage_ArchivedCodeCanBeReused(t *testing.T) {
	ctx := context.Background()
	storage := NewStorage()

	now := time.Now().UTC()
	past := now.Add(-time.Minute)

	_, err := storage.LinkCreate(ctx, newLink("reuse1", nil, &past))
	require.NoError(t, err)

	_, err = storage.ArchiveExpiredLinks(ctx, now)
	require.NoError(t, err)

	// код заархивированной ссылки снова свободен
	_, err = storage.LinkCreate(ctx, newLink("reuse1", nil, nil))
	require.NoError(t, err)
}

func TestInmemoryStorage_OverviewCounts(t *testing.T) {
	ctx := context.Background()
	storage := NewStorage()

	now := time.Now().UTC()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	_, err := storage.LinkCreate(ctx, newLink("user1a", int64Ptr(1), nil))
	require.NoError(t, err)
	_, err = storage.LinkCreate(ctx, newLink("user1b", int64Ptr(1), &future))
	require.NoError(t, err)
	_, err = storage.LinkCreate(ctx, newLink("user1c", int64Ptr(1), &past))
	require.NoError(t, err)
	_, err = storage.LinkCreate(ctx, newLink("user2a", int64Ptr(2), nil))
	require.NoError(t, err)
	_, err = storage.LinkCreate(ctx, newLink("anonym", nil, nil))
	require.NoError(t, err)

	// просроченная, но не выметенная ссылка активной не считается
	active, err := storage.LinkCountActiveByUser(ctx, 1, now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), active)

	expired, err := storage.ArchivedLinkCountByUser(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, expired)

	_, err = storage.ArchiveExpiredLinks(ctx, now)
	require.NoError(t, err)

	expired, err = storage.ArchivedLinkCountByUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), expired)

	// анонимная ссылка не попадает ни в чью сводку
	activeOther, err := storage.LinkCountActiveByUser(ctx, 2, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), activeOther)
}

func TestInmemoryStorage_ArchiveConcurrentWithCreates(t *testing.T) {
	ctx := context.Background()
	storage := NewStorage()

	now := time.Now().UTC()
	past := now.Add(-time.Minute)

	const linkCount = 50

	// ссылки с уже истекшим сроком появляются прямо во время прогонов
	// свипера: ни одна не должна пропасть без архивной записи
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < linkCount; i++ {
			_, err := storage.LinkCreate(ctx, newLink(fmt.Sprintf("race%02d", i), nil, &past))
			assert.NoError(t, err)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < linkCount; i++ {
			_, err := storage.ArchiveExpiredLinks(ctx, time.Now().UTC())
			assert.NoError(t, err)
		}
	}()
	wg.Wait()

	_, err := storage.ArchiveExpiredLinks(ctx, time.Now().UTC())
	require.NoError(t, err)

	rows := storage.ArchivedLinks()
	require.Len(t, rows, linkCount)

	seen := make(map[string]int, linkCount)
	for _, row := range rows {
		seen[row.ShortCode]++
	}
	for i := 0; i < linkCount; i++ {
		code := fmt.Sprintf("race%02d", i)
		assert.Equal(t, 1, seen[code], code)
		_, err := storage.LinkGetByShortCode(ctx, code)
		assert.ErrorIs(t, err, models.ErrUnfound, code)
	}
}

func TestInmemoryStorage_SearchPrefersNewestLink(t *testing.T) {
	ctx := context.Background()
	storage := NewStorage()

	old := newLink("older1", nil, nil)
	old.OriginalURL = "https://dup.example"
	fresh := newLink("fresh2", nil, nil)
	fresh.OriginalURL = "https://dup.example"
	fresh.CreatedAt = old.CreatedAt.Add(time.Minute)

	_, err := storage.LinkCreate(ctx, fresh)
	require.NoError(t, err)
	_, err = storage.LinkCreate(ctx, old)
	require.NoError(t, err)

	// из нескольких ссылок на один URL возвращается самая свежая,
	// как в postgres с ORDER BY created_at DESC LIMIT 1
	got, err := storage.LinkGetByOriginalURL(ctx, "https://dup.example")
	require.NoError(t, err)
	assert.Equal(t, "fresh2", got.ShortCode)
}

func TestInmemoryStorage_CanceledContext(t *testing.T) {
	storage := NewStorage()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// отмененный контекст - инфраструктурный сбой, а не кривой ввод
	_, err := storage.LinkCreate(ctx, newLink("ctxful", nil, nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, models.ErrInvalidData)

	_, err = storage.LinkGetByShortCode(ctx, "ctxful")
	assert.ErrorIs(t, err, context.Canceled)

	_, err = storage.ArchiveExpiredLinks(ctx, time.Now().UTC())
	assert.ErrorIs(t, err, context.Canceled)
}
