package repository

import (
	"context"
	"database/sql"
	"errors"

	"shoot-calendar-api/core/database"
	"shoot-calendar-api/core/logger"
	"shoot-calendar-api/modules/calendar/entity"
)

type CalendarRepository interface {
	// Feed reads run on a connection the caller borrowed from the pool.
	GetUserIDByToken(ctx context.Context, conn database.Conn, token string) (string, error)
	GetDocumentByUserID(ctx context.Context, conn database.Conn, userID string) (*entity.CalendarDocument, error)

	GetTokenByUserID(ctx context.Context, userID string) (*entity.CalendarToken, error)
	CreateToken(ctx context.Context, token *entity.CalendarToken) (*entity.CalendarToken, error)
	ReplaceToken(ctx context.Context, userID string, token string) (*entity.CalendarToken, error)
	ListTokenUserIDs(ctx context.Context) ([]string, error)
	UpsertDocument(ctx context.Context, doc *entity.CalendarDocument) error
}

type calendarRepository struct {
	db database.Database
}

func NewCalendarRepository(db database.Database) CalendarRepository {
	return &calendarRepository{db: db}
}

// GetUserIDByToken compares the token byte for byte; sql.ErrNoRows means
// the token is unknown.
func (r *calendarRepository) GetUserIDByToken(ctx context.Context, conn database.Conn, token string) (string, error) {
	query := `SELECT user_id FROM calendar_tokens WHERE token = $1`

	var userID string
	if err := conn.GetContext(ctx, &userID, query, token); err != nil {
		return "", err
	}
	return userID, nil
}

func (r *calendarRepository) GetDocumentByUserID(ctx context.Context, conn database.Conn, userID string) (*entity.CalendarDocument, error) {
	query := `SELECT user_id, document, updated_at FROM calendar_documents WHERE user_id = $1`

	var doc entity.CalendarDocument
	if err := conn.GetContext(ctx, &doc, query, userID); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *calendarRepository) GetTokenByUserID(ctx context.Context, userID string) (*entity.CalendarToken, error) {
	query := `SELECT token, user_id, created_at FROM calendar_tokens WHERE user_id = $1`

	var token entity.CalendarToken
	if err := r.db.GetContext(ctx, &token, query, userID); err != nil {
		return nil, err
	}
	return &token, nil
}

// CreateToken returns sql.ErrNoRows when the user already has a token.
func (r *calendarRepository) CreateToken(ctx context.Context, token *entity.CalendarToken) (*entity.CalendarToken, error) {
	query := `
		INSERT INTO calendar_tokens (token, user_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO NOTHING
		RETURNING created_at
	`
	if err := r.db.QueryRowContext(ctx, query, token.Token, token.UserID).Scan(&token.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		logger.Error("CalendarRepository:CreateToken:Error", "user_id", token.UserID, "error", err)
		return nil, err
	}
	return token, nil
}

func (r *calendarRepository) ReplaceToken(ctx context.Context, userID string, token string) (*entity.CalendarToken, error) {
	query := `
		UPDATE calendar_tokens
		SET token = $1, created_at = NOW()
		WHERE user_id = $2
		RETURNING token, user_id, created_at
	`
	var out entity.CalendarToken
	if err := r.db.GetContext(ctx, &out, query, token, userID); err != nil {
		logger.Error("CalendarRepository:ReplaceToken:Error", "user_id", userID, "error", err)
		return nil, err
	}
	return &out, nil
}

func (r *calendarRepository) ListTokenUserIDs(ctx context.Context) ([]string, error) {
	query := `SELECT user_id FROM calendar_tokens ORDER BY user_id`

	userIDs := []string{}
	if err := r.db.SelectContext(ctx, &userIDs, query); err != nil {
		logger.Error("CalendarRepository:ListTokenUserIDs:Error", "error", err)
		return nil, err
	}
	return userIDs, nil
}

func (r *calendarRepository) UpsertDocument(ctx context.Context, doc *entity.CalendarDocument) error {
	query := `
		INSERT INTO calendar_documents (user_id, document, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET document = EXCLUDED.document, updated_at = EXCLUDED.updated_at
	`
	if err := r.db.ExecContext(ctx, query, doc.UserID, doc.Document, doc.UpdatedAt); err != nil {
		logger.Error("CalendarRepository:UpsertDocument:Error", "user_id", doc.UserID, "error", err)
		return err
	}
	return nil
}
