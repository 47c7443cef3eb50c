package models

import (
	"errors"
	"time"
)

type (
	// User заводится вне сервиса (сидинг), ядро их только читает
	User struct {
		ID    int64
		Token string
	}

	// Identity - явная пара идентификации вызывающего вместо
	// неявных значений из заголовков внутри ядра
	Identity struct {
		UserID int64
		Token  string
	}

	Link struct {
		ID           int64
		ShortCode    string // Короткий код (aBcD12), уникален среди живых ссылок
		OriginalURL  string
		CreatedAt    time.Time
		ExpiresAt    *time.Time // nil - бессрочная ссылка
		UserID       *int64     // nil - анонимная ссылка
		IsAuthorized bool
	}

	// AccessEvent - append-only, одна запись на успешный переход
	AccessEvent struct {
		ID         int64
		ShortCode  string
		AccessedAt time.Time
	}

	// ArchivedLink создается ровно один раз в момент выселения
	// ссылки свипером и больше не меняется
	ArchivedLink struct {
		ID           int64
		ShortCode    string
		OriginalURL  string
		CreatedAt    time.Time
		ExpiresAt    *time.Time
		DeletedAt    time.Time
		UserID       *int64
		IsAuthorized bool
	}

	LinkStats struct {
		ShortCode   string
		OriginalURL string
		CreatedAt   time.Time
		Transitions int64
		LastUse     *time.Time // nil - переходов еще не было
	}

	UserOverview struct {
		Active  int64
		Expired int64
	}
)

var (
	ErrInvalidData  = errors.New("invalid input data")
	ErrUnfound      = errors.New("unfound data")
	ErrConflict     = errors.New("short code already taken")
	ErrExhausted    = errors.New("short code generation exhausted")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)
