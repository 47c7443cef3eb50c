package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"shortlink/internal/domain/models"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	storageMaxOpenConnections     = 5
	storageMaxIdleConnections     = 2
	storageConnectionsMaxIdleTime = 2 * time.Minute
	storageConnectionsLifetime    = 30 * time.Minute
	storagePingTimeout            = 5 * time.Second
)

const (
	pgErrCodeUniqueViolation = "23505"
)

type PostgresStorage struct {
	db *sql.DB
}

func NewStorage(ctx context.Context, dsn string) (*PostgresStorage, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	initConnectionPools(db)

	ctxPing, cancel := context.WithTimeout(ctx, storagePingTimeout)
	defer cancel()

	if err := db.PingContext(ctxPing); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return &PostgresStorage{db: db}, nil
}

func initConnectionPools(db *sql.DB) {
	db.SetMaxOpenConns(storageMaxOpenConnections)
	db.SetMaxIdleConns(storageMaxIdleConnections)
	db.SetConnMaxIdleTime(storageConnectionsMaxIdleTime)
	db.SetConnMaxLifetime(storageConnectionsLifetime)
}

// archived_links нарочно без уникального индекса на short_code:
// код заархивированной ссылки может быть выдан заново
func createTables(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGINT PRIMARY KEY,
			token TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS links (
			id BIGSERIAL PRIMARY KEY,
			short_code VARCHAR(64) UNIQUE NOT NULL,
			original_url TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			expires_at TIMESTAMPTZ,
			user_id BIGINT,
			is_authorized BOOLEAN NOT NULL DEFAULT FALSE
		)`,
		`CREATE TABLE IF NOT EXISTS access_events (
			id BIGSERIAL PRIMARY KEY,
			short_code VARCHAR(64) NOT NULL,
			accessed_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_access_events_short_code ON access_events (short_code)`,
		`CREATE TABLE IF NOT EXISTS archived_links (
			id BIGSERIAL PRIMARY KEY,
			short_code VARCHAR(64) NOT NULL,
			original_url TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			expires_at TIMESTAMPTZ,
			deleted_at TIMESTAMPTZ NOT NULL,
			user_id BIGINT,
			is_authorized BOOLEAN NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_links_user_id ON links (user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_archived_links_user_id ON archived_links (user_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}

// LinkCreate вставляет новую живую ссылку. Нарушение уникального индекса
// short_code - единственный источник истины "код занят" (ErrConflict).
func (p *PostgresStorage) LinkCreate(ctx context.Context, link models.Link) (models.Link, error) {
	if link.ShortCode == "" || link.OriginalURL == "" {
		return models.Link{}, models.ErrInvalidData
	}

	err := p.db.QueryRowContext(ctx, `
		INSERT INTO links (short_code, original_url, created_at, expires_at, user_id, is_authorized)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		link.ShortCode, link.OriginalURL, link.CreatedAt,
		nullTime(link.ExpiresAt), nullInt64(link.UserID), link.IsAuthorized,
	).Scan(&link.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return models.Link{}, fmt.Errorf("%w: short code %q", models.ErrConflict, link.ShortCode)
		}
		return models.Link{}, fmt.Errorf("database error: %w", err)
	}

	return link, nil
}

func (p *PostgresStorage) LinkGetByShortCode(ctx context.Context, shortCode string) (models.Link, error) {
	if shortCode == "" {
		return models.Link{}, fmt.Errorf("%w: shortCode must not be empty", models.ErrInvalidData)
	}

	row := p.db.QueryRowContext(ctx, `
		SELECT id, short_code, original_url, created_at, expires_at, user_id, is_authorized
		FROM links WHERE short_code = $1`,
		shortCode,
	)
	return scanLink(row)
}

func (p *PostgresStorage) LinkGetByOriginalURL(ctx context.Context, originalURL string) (models.Link, error) {
	if originalURL == "" {
		return models.Link{}, fmt.Errorf("%w: originalURL must not be empty", models.ErrInvalidData)
	}

	row := p.db.QueryRowContext(ctx, `
		SELECT id, short_code, original_url, created_at, expires_at, user_id, is_authorized
		FROM links WHERE original_url = $1
		ORDER BY created_at DESC LIMIT 1`,
		originalURL,
	)
	return scanLink(row)
}

func (p *PostgresStorage) LinkUpdateURL(ctx context.Context, shortCode, originalURL string) error {
	if shortCode == "" || originalURL == "" {
		return models.ErrInvalidData
	}

	result, err := p.db.ExecContext(ctx,
		"UPDATE links SET original_url = $1 WHERE short_code = $2",
		originalURL, shortCode,
	)
	if err != nil {
		return fmt.Errorf("failed to update link: %w", err)
	}

	return requireRowsAffected(result)
}

func (p *PostgresStorage) LinkDelete(ctx context.Context, shortCode string) error {
	if shortCode == "" {
		return fmt.Errorf("%w: shortCode must not be empty", models.ErrInvalidData)
	}

	result, err := p.db.ExecContext(ctx,
		"DELETE FROM links WHERE short_code = $1",
		shortCode,
	)
	if err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}

	return requireRowsAffected(result)
}

func (p *PostgresStorage) AccessEventCreate(ctx context.Context, event models.AccessEvent) error {
	if event.ShortCode == "" {
		return models.ErrInvalidData
	}

	_, err := p.db.ExecContext(ctx,
		"INSERT INTO access_events (short_code, accessed_at) VALUES ($1, $2)",
		event.ShortCode, event.AccessedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert access event: %w", err)
	}
	return nil
}

func (p *PostgresStorage) AccessEventStats(ctx context.Context, shortCode string) (int64, *time.Time, error) {
	if shortCode == "" {
		return 0, nil, fmt.Errorf("%w: shortCode must not be empty", models.ErrInvalidData)
	}

	var (
		count   int64
		lastUse sql.NullTime
	)
	err := p.db.QueryRowContext(ctx,
		"SELECT COUNT(*), MAX(accessed_at) FROM access_events WHERE short_code = $1",
		shortCode,
	).Scan(&count, &lastUse)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to aggregate access events: %w", err)
	}

	if !lastUse.Valid {
		return count, nil, nil
	}
	last := lastUse.Time.UTC()
	return count, &last, nil
}

func (p *PostgresStorage) UserGetByIDAndToken(ctx context.Context, id int64, token string) (models.User, error) {
	var user models.User
	err := p.db.QueryRowContext(ctx,
		"SELECT id, token FROM users WHERE id = $1 AND token = $2",
		id, token,
	).Scan(&user.ID, &user.Token)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, fmt.Errorf("%w: user not found", models.ErrUnfound)
		}
		return models.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

func (p *PostgresStorage) LinkCountActiveByUser(ctx context.Context, userID int64, now time.Time) (int64, error) {
	var count int64
	err := p.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM links
		WHERE user_id = $1 AND (expires_at IS NULL OR expires_at > $2)`,
		userID, now,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active links: %w", err)
	}
	return count, nil
}

func (p *PostgresStorage) ArchivedLinkCountByUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := p.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM archived_links WHERE user_id = $1",
		userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count archived links: %w", err)
	}
	return count, nil
}

// ArchiveExpiredLinks переносит просроченные ссылки в архив и удаляет их
// из живой таблицы одним statement: удаленное и заархивированное множества
// совпадают по построению, ссылка, вставленная между снапшотами
// конкурентной транзакции, не может пропасть без архивной записи
func (p *PostgresStorage) ArchiveExpiredLinks(ctx context.Context, now time.Time) (int64, error) {
	result, err := p.db.ExecContext(ctx, `
		WITH moved AS (
			DELETE FROM links
			WHERE expires_at IS NOT NULL AND expires_at < $1
			RETURNING short_code, original_url, created_at, expires_at, user_id, is_authorized
		)
		INSERT INTO archived_links (short_code, original_url, created_at, expires_at, deleted_at, user_id, is_authorized)
		SELECT short_code, original_url, created_at, expires_at, $1, user_id, is_authorized
		FROM moved`,
		now,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to archive expired links: %w", err)
	}

	archived, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return archived, nil
}

func (p *PostgresStorage) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, storagePingTimeout)
	defer cancel()

	if err := p.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

func (p *PostgresStorage) Close() error {
	if err := p.db.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

func scanLink(row *sql.Row) (models.Link, error) {
	var (
		link      models.Link
		expiresAt sql.NullTime
		userID    sql.NullInt64
	)

	err := row.Scan(&link.ID, &link.ShortCode, &link.OriginalURL,
		&link.CreatedAt, &expiresAt, &userID, &link.IsAuthorized)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Link{}, fmt.Errorf("%w: link not found", models.ErrUnfound)
		}
		return models.Link{}, fmt.Errorf("failed to get link: %w", err)
	}

	if expiresAt.Valid {
		t := expiresAt.Time.UTC()
		link.ExpiresAt = &t
	}
	if userID.Valid {
		id := userID.Int64
		link.UserID = &id
	}
	return link, nil
}

func requireRowsAffected(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: link not found", models.ErrUnfound)
	}
	return nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}
