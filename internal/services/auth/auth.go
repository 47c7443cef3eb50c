package auth

import (
	"context"
	"errors"
	"fmt"

	"shortlink/internal/domain/models"
)

//go:generate mockgen -source=auth.go -destination=../../mocks/mock_auth_storage.go -package=mocks
type UserStorage interface {
	UserGetByIDAndToken(ctx context.Context, id int64, token string) (models.User, error)
	LinkGetByShortCode(ctx context.Context, shortCode string) (models.Link, error)
}

// Guard сверяет идентификацию вызывающего и владение ссылками
type Guard struct {
	storage UserStorage
}

func NewGuard(storage UserStorage) *Guard {
	return &Guard{storage: storage}
}

// Authenticate ищет пользователя по паре id+token. Отсутствие пользователя
// и неверный токен неразличимы снаружи, чтобы не утекала информация
// о существовании аккаунта.
func (g *Guard) Authenticate(ctx context.Context, identity *models.Identity) (models.User, error) {
	if identity == nil || identity.UserID <= 0 || identity.Token == "" {
		return models.User{}, models.ErrUnauthorized
	}

	user, err := g.storage.UserGetByIDAndToken(ctx, identity.UserID, identity.Token)
	if err != nil {
		if errors.Is(err, models.ErrUnfound) {
			return models.User{}, models.ErrUnauthorized
		}
		return models.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// Authorize возвращает true только если ссылка была создана этим
// пользователем в авторизованном режиме. Ссылка без владельца
// не авторизует никого.
func (g *Guard) Authorize(ctx context.Context, user models.User, shortCode string) (bool, error) {
	link, err := g.storage.LinkGetByShortCode(ctx, shortCode)
	if err != nil {
		if errors.Is(err, models.ErrUnfound) {
			return false, fmt.Errorf("%w: link not found", models.ErrUnfound)
		}
		return false, fmt.Errorf("failed to get link: %w", err)
	}

	if link.UserID == nil || !link.IsAuthorized {
		return false, nil
	}

	return *link.UserID == user.ID, nil
}
