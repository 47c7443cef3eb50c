package alias

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"

	"shortlink/internal/domain/models"
)

//go:generate mockgen -source=alias.go -destination=../../mocks/mock_alias_storage.go -package=mocks
type CodeStorage interface {
	LinkGetByShortCode(ctx context.Context, shortCode string) (models.Link, error)
}

const (
	maxAttempts = 50
	codeLength  = 6
	codeLetters = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	customAliasMinLength = 3
	customAliasMaxLength = 64
)

var customAliasRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Allocator выдает короткие коды: случайные либо пользовательские.
// Проверка занятости здесь - лишь быстрый путь, источником истины
// остается уникальный индекс хранилища на вставке.
type Allocator struct {
	storage CodeStorage
}

func NewAllocator(storage CodeStorage) *Allocator {
	return &Allocator{storage: storage}
}

// Allocate подбирает свободный случайный код, ограниченное число попыток
func (a *Allocator) Allocate(ctx context.Context) (string, error) {
	for i := 0; i < maxAttempts; i++ {
		code := generateRandomCode()

		_, err := a.storage.LinkGetByShortCode(ctx, code)
		if errors.Is(err, models.ErrUnfound) {
			return code, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to check short code: %w", err)
		}
		// код занят, пробуем следующий
	}

	return "", fmt.Errorf("%w: after %d attempts", models.ErrExhausted, maxAttempts)
}

// AllocateCustom валидирует пользовательский алиас и проверяет, что он
// не занят живой ссылкой. Сам алиас не модифицируется.
func (a *Allocator) AllocateCustom(ctx context.Context, customAlias string) (string, error) {
	if len(customAlias) < customAliasMinLength || len(customAlias) > customAliasMaxLength {
		return "", fmt.Errorf("%w: alias length must be %d..%d", models.ErrInvalidData, customAliasMinLength, customAliasMaxLength)
	}
	if !customAliasRe.MatchString(customAlias) {
		return "", fmt.Errorf("%w: alias must match %s", models.ErrInvalidData, customAliasRe.String())
	}

	_, err := a.storage.LinkGetByShortCode(ctx, customAlias)
	if err == nil {
		return "", fmt.Errorf("%w: alias %q", models.ErrConflict, customAlias)
	}
	if !errors.Is(err, models.ErrUnfound) {
		return "", fmt.Errorf("failed to check alias: %w", err)
	}

	return customAlias, nil
}

func generateRandomCode() string {
	b := make([]byte, codeLength)
	letterCount := big.NewInt(int64(len(codeLetters)))

	for i := range b {
		n, _ := rand.Int(rand.Reader, letterCount)
		b[i] = codeLetters[n.Int64()]
	}
	return string(b)
}
