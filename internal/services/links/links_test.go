package links

import (
	"context"
	"testing"
	"time"

	"shortlink/internal/domain/models"
	"shortlink/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	storage   *mocks.MockLinkStorage
	allocator *mocks.MockAllocator
	guard     *mocks.MockGuard
}

func newServiceWithMocks(t *testing.T) (*Service, serviceMocks) {
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		storage:   mocks.NewMockLinkStorage(ctrl),
		allocator: mocks.NewMockAllocator(ctrl),
		guard:     mocks.NewMockGuard(ctrl),
	}
	return NewService(m.storage, m.allocator, m.guard), m
}

func TestService_Create(t *testing.T) {
	identity := &models.Identity{UserID: 1, Token: "token1"}

	tests := []struct {
		name        string
		originalURL string
		identity    *models.Identity
		mockSetup   func(m serviceMocks)
		check       func(t *testing.T, link models.Link)
		wantErr     bool
		expectedErr error
	}{
		{
			name:        "Анонимная ссылка без владельца",
			originalURL: "https://example.com",
			identity:    nil,
			mockSetup: func(m serviceMocks) {
				m.allocator.EXPECT().Allocate(gomock.Any()).Return("aBcD12", nil)
				m.storage.EXPECT().
					LinkCreate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, link models.Link) (models.Link, error) {
						return link, nil
					})
			},
			check: func(t *testing.T, link models.Link) {
				assert.Equal(t, "aBcD12", link.ShortCode)
				assert.Nil(t, link.UserID)
				assert.False(t, link.IsAuthorized)
				assert.False(t, link.CreatedAt.IsZero())
			},
		},
		{
			name:        "Авторизованная ссылка получает владельца",
			originalURL: "https://example.com",
			identity:    identity,
			mockSetup: func(m serviceMocks) {
				m.guard.EXPECT().
					Authenticate(gomock.Any(), identity).
					Return(models.User{ID: 1, Token: "token1"}, nil)
				m.allocator.EXPECT().Allocate(gomock.Any()).Return("aBcD12", nil)
				m.storage.EXPECT().
					LinkCreate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, link models.Link) (models.Link, error) {
						return link, nil
					})
			},
			check: func(t *testing.T, link models.Link) {
				require.NotNil(t, link.UserID)
				assert.Equal(t, int64(1), *link.UserID)
				assert.True(t, link.IsAuthorized)
			},
		},
		{
			name:        "Проигранная гонка за код - новый код и повторная вставка",
			originalURL: "https://example.com",
			identity:    nil,
			mockSetup: func(m serviceMocks) {
				gomock.InOrder(
					m.allocator.EXPECT().Allocate(gomock.Any()).Return("race01", nil),
					m.storage.EXPECT().
						LinkCreate(gomock.Any(), gomock.Any()).
						Return(models.Link{}, models.ErrConflict),
					m.allocator.EXPECT().Allocate(gomock.Any()).Return("free02", nil),
					m.storage.EXPECT().
						LinkCreate(gomock.Any(), gomock.Any()).
						DoAndReturn(func(ctx context.Context, link models.Link) (models.Link, error) {
							return link, nil
						}),
				)
			},
			check: func(t *testing.T, link models.Link) {
				assert.Equal(t, "free02", link.ShortCode)
			},
		},
		{
			name:        "Генерация исчерпана",
			originalURL: "https://example.com",
			identity:    nil,
			mockSetup: func(m serviceMocks) {
				m.allocator.EXPECT().
					Allocate(gomock.Any()).
					Return("", models.ErrExhausted)
			},
			wantErr:     true,
			expectedErr: models.ErrExhausted,
		},
		{
			name:        "Неудачная аутентификация без попытки записи",
			originalURL: "https://example.com",
			identity:    &models.Identity{UserID: 9, Token: "bad"},
			mockSetup: func(m serviceMocks) {
				m.guard.EXPECT().
					Authenticate(gomock.Any(), gomock.Any()).
					Return(models.User{}, models.ErrUnauthorized)
			},
			wantErr:     true,
			expectedErr: models.ErrUnauthorized,
		},
		{
			name:        "Пустой URL",
			originalURL: "",
			identity:    nil,
			mockSetup:   func(m serviceMocks) {},
			wantErr:     true,
			expectedErr: models.ErrInvalidData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newServiceWithMocks(t)
			tt.mockSetup(m)

			link, err := service.Create(context.Background(), tt.originalURL, tt.identity, nil)

			if tt.wantErr {
				require.Error(t, err)
				if tt.expectedErr != nil {
					assert.ErrorIs(t, err, tt.expectedErr)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.originalURL, link.OriginalURL)
			if tt.check != nil {
				tt.check(t, link)
			}
		})
	}
}

func TestService_CreateWithAlias(t *testing.T) {
	tests := []struct {
		name        string
		customAlias string
		mockSetup   func(m serviceMocks)
		wantErr     bool
		expectedErr error
	}{
		{
			name:        "Успешное создание с алиасом",
			customAlias: "promo",
			mockSetup: func(m serviceMocks) {
				m.allocator.EXPECT().
					AllocateCustom(gomock.Any(), "promo").
					Return("promo", nil)
				m.storage.EXPECT().
					LinkCreate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, link models.Link) (models.Link, error) {
						return link, nil
					})
			},
		},
		{
			name:        "Алиас занят",
			customAlias: "promo",
			mockSetup: func(m serviceMocks) {
				m.allocator.EXPECT().
					AllocateCustom(gomock.Any(), "promo").
					Return("", models.ErrConflict)
			},
			wantErr:     true,
			expectedErr: models.ErrConflict,
		},
		{
			// проверка прошла, но параллельная вставка успела раньше:
			// конфликт вставки и есть истина
			name:        "Гонка на вставке алиаса",
			customAlias: "promo",
			mockSetup: func(m serviceMocks) {
				m.allocator.EXPECT().
					AllocateCustom(gomock.Any(), "promo").
					Return("promo", nil)
				m.storage.EXPECT().
					LinkCreate(gomock.Any(), gomock.Any()).
					Return(models.Link{}, models.ErrConflict)
			},
			wantErr:     true,
			expectedErr: models.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newServiceWithMocks(t)
			tt.mockSetup(m)

			link, err := service.CreateWithAlias(context.Background(), "https://example.com", tt.customAlias, nil, nil)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.customAlias, link.ShortCode)
		})
	}
}

func TestService_Resolve(t *testing.T) {
	past := time.Now().UTC().Add(-time.Hour)

	tests := []struct {
		name        string
		shortCode   string
		mockSetup   func(m serviceMocks)
		wantURL     string
		wantErr     bool
		expectedErr error
	}{
		{
			name:      "Успешный переход пишет событие доступа",
			shortCode: "aBcD12",
			mockSetup: func(m serviceMocks) {
				m.storage.EXPECT().
					LinkGetByShortCode(gomock.Any(), "aBcD12").
					Return(models.Link{ShortCode: "aBcD12", OriginalURL: "https://example.com"}, nil)
				m.storage.EXPECT().
					AccessEventCreate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, event models.AccessEvent) error {
						assert.Equal(t, "aBcD12", event.ShortCode)
						assert.False(t, event.AccessedAt.IsZero())
						return nil
					})
			},
			wantURL: "https://example.com",
		},
		{
			// срок вышел, но свипер еще не прошел - ссылка живет
			name:      "Просроченная, но не выметенная ссылка еще работает",
			shortCode: "oldie1",
			mockSetup: func(m serviceMocks) {
				m.storage.EXPECT().
					LinkGetByShortCode(gomock.Any(), "oldie1").
					Return(models.Link{ShortCode: "oldie1", OriginalURL: "https://old.example.com", ExpiresAt: &past}, nil)
				m.storage.EXPECT().
					AccessEventCreate(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantURL: "https://old.example.com",
		},
		{
			name:      "Неизвестный код",
			shortCode: "missing",
			mockSetup: func(m serviceMocks) {
				m.storage.EXPECT().
					LinkGetByShortCode(gomock.Any(), "missing").
					Return(models.Link{}, models.ErrUnfound)
			},
			wantErr:     true,
			expectedErr: models.ErrUnfound,
		},
		{
			name:        "Пустой код",
			shortCode:   "",
			mockSetup:   func(m serviceMocks) {},
			wantErr:     true,
			expectedErr: models.ErrInvalidData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newServiceWithMocks(t)
			tt.mockSetup(m)

			got, err := service.Resolve(context.Background(), tt.shortCode)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, got)
		})
	}
}

func TestService_Update(t *testing.T) {
	owner := &models.Identity{UserID: 1, Token: "token1"}
	stranger := &models.Identity{UserID: 2, Token: "token2"}

	tests := []struct {
		name        string
		identity    *models.Identity
		mockSetup   func(m serviceMocks)
		wantErr     bool
		expectedErr error
	}{
		{
			name:     "Владелец меняет URL",
			identity: owner,
			mockSetup: func(m serviceMocks) {
				m.guard.EXPECT().
					Authenticate(gomock.Any(), owner).
					Return(models.User{ID: 1}, nil)
				m.guard.EXPECT().
					Authorize(gomock.Any(), models.User{ID: 1}, "promo").
					Return(true, nil)
				m.storage.EXPECT().
					LinkUpdateURL(gomock.Any(), "promo", "https://b.com").
					Return(nil)
			},
		},
		{
			name:     "Чужой аутентифицированный пользователь - Forbidden",
			identity: stranger,
			mockSetup: func(m serviceMocks) {
				m.guard.EXPECT().
					Authenticate(gomock.Any(), stranger).
					Return(models.User{ID: 2}, nil)
				m.guard.EXPECT().
					Authorize(gomock.Any(), models.User{ID: 2}, "promo").
					Return(false, nil)
			},
			wantErr:     true,
			expectedErr: models.ErrForbidden,
		},
		{
			name:     "Аноним - Unauthorized, мутация не выполняется",
			identity: nil,
			mockSetup: func(m serviceMocks) {
				m.guard.EXPECT().
					Authenticate(gomock.Any(), nil).
					Return(models.User{}, models.ErrUnauthorized)
			},
			wantErr:     true,
			expectedErr: models.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newServiceWithMocks(t)
			tt.mockSetup(m)

			err := service.Update(context.Background(), "promo", "https://b.com", tt.identity)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestService_Delete(t *testing.T) {
	owner := &models.Identity{UserID: 1, Token: "token1"}

	tests := []struct {
		name        string
		identity    *models.Identity
		mockSetup   func(m serviceMocks)
		wantErr     bool
		expectedErr error
	}{
		{
			name:     "Владелец удаляет ссылку",
			identity: owner,
			mockSetup: func(m serviceMocks) {
				m.guard.EXPECT().
					Authenticate(gomock.Any(), owner).
					Return(models.User{ID: 1}, nil)
				m.guard.EXPECT().
					Authorize(gomock.Any(), models.User{ID: 1}, "promo").
					Return(true, nil)
				m.storage.EXPECT().
					LinkDelete(gomock.Any(), "promo").
					Return(nil)
			},
		},
		{
			name:     "Не владелец - Forbidden",
			identity: owner,
			mockSetup: func(m serviceMocks) {
				m.guard.EXPECT().
					Authenticate(gomock.Any(), owner).
					Return(models.User{ID: 1}, nil)
				m.guard.EXPECT().
					Authorize(gomock.Any(), models.User{ID: 1}, "promo").
					Return(false, nil)
			},
			wantErr:     true,
			expectedErr: models.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newServiceWithMocks(t)
			tt.mockSetup(m)

			err := service.Delete(context.Background(), "promo", tt.identity)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestService_Stats(t *testing.T) {
	owner := &models.Identity{UserID: 1, Token: "token1"}
	created := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	lastUse := created.Add(48 * time.Hour)

	service, m := newServiceWithMocks(t)

	m.guard.EXPECT().
		Authenticate(gomock.Any(), owner).
		Return(models.User{ID: 1}, nil)
	m.guard.EXPECT().
		Authorize(gomock.Any(), models.User{ID: 1}, "promo").
		Return(true, nil)
	m.storage.EXPECT().
		LinkGetByShortCode(gomock.Any(), "promo").
		Return(models.Link{ShortCode: "promo", OriginalURL: "https://a.com", CreatedAt: created}, nil)
	m.storage.EXPECT().
		AccessEventStats(gomock.Any(), "promo").
		Return(int64(3), &lastUse, nil)

	stats, err := service.Stats(context.Background(), "promo", owner)
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.Transitions)
	require.NotNil(t, stats.LastUse)
	assert.Equal(t, lastUse, *stats.LastUse)
	assert.Equal(t, "https://a.com", stats.OriginalURL)
	assert.Equal(t, created, stats.CreatedAt)
}

func TestService_Search(t *testing.T) {
	tests := []struct {
		name        string
		originalURL string
		mockSetup   func(m serviceMocks)
		wantCode    string
		wantErr     bool
		expectedErr error
	}{
		{
			name:        "Ссылка найдена",
			originalURL: "https://example22.com",
			mockSetup: func(m serviceMocks) {
				m.storage.EXPECT().
					LinkGetByOriginalURL(gomock.Any(), "https://example22.com").
					Return(models.Link{ShortCode: "custom2", OriginalURL: "https://example22.com"}, nil)
			},
			wantCode: "custom2",
		},
		{
			name:        "URL не найден",
			originalURL: "https://nowhere.example",
			mockSetup: func(m serviceMocks) {
				m.storage.EXPECT().
					LinkGetByOriginalURL(gomock.Any(), "https://nowhere.example").
					Return(models.Link{}, models.ErrUnfound)
			},
			wantErr:     true,
			expectedErr: models.ErrUnfound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newServiceWithMocks(t)
			tt.mockSetup(m)

			link, err := service.Search(context.Background(), tt.originalURL)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, link.ShortCode)
		})
	}
}
