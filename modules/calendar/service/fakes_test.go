package service

import (
	"context"
	"database/sql"
	"sync"

	"shoot-calendar-api/core/database"
	"shoot-calendar-api/modules/calendar/entity"
)

type fakeConn struct {
	mu     sync.Mutex
	closed int
}

func (c *fakeConn) GetContext(ctx context.Context, dest any, query string, args ...any) error {
	return nil
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed++
	return nil
}

func (c *fakeConn) closeCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

type fakePool struct {
	conn     *fakeConn
	err      error
	acquired int
}

func (p *fakePool) Acquire(ctx context.Context) (database.Conn, error) {
	p.acquired++
	if p.err != nil {
		return nil, p.err
	}
	return p.conn, nil
}

// fakeRepo is an in-memory CalendarRepository. Errors injected per method
// take precedence over stored rows.
type fakeRepo struct {
	mu         sync.Mutex
	tokens     map[string]string // token -> user id
	tokenTimes map[string]entity.CalendarToken
	documents  map[string]entity.CalendarDocument
	lookups    int

	tokenErr    error
	documentErr error
	panicOnDoc  bool
	createErr   error
	// concurrentToken is stored for the user just before CreateToken runs.
	concurrentToken string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		tokens:     map[string]string{},
		tokenTimes: map[string]entity.CalendarToken{},
		documents:  map[string]entity.CalendarDocument{},
	}
}

func (r *fakeRepo) addToken(token, userID string) {
	r.tokens[token] = userID
	r.tokenTimes[userID] = entity.CalendarToken{Token: token, UserID: userID}
}

func (r *fakeRepo) GetUserIDByToken(ctx context.Context, conn database.Conn, token string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lookups++
	if r.tokenErr != nil {
		return "", r.tokenErr
	}
	userID, ok := r.tokens[token]
	if !ok {
		return "", sql.ErrNoRows
	}
	return userID, nil
}

func (r *fakeRepo) GetDocumentByUserID(ctx context.Context, conn database.Conn, userID string) (*entity.CalendarDocument, error) {
	if r.panicOnDoc {
		panic("document store exploded")
	}
	if r.documentErr != nil {
		return nil, r.documentErr
	}
	doc, ok := r.documents[userID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &doc, nil
}

func (r *fakeRepo) GetTokenByUserID(ctx context.Context, userID string) (*entity.CalendarToken, error) {
	t, ok := r.tokenTimes[userID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &t, nil
}

func (r *fakeRepo) CreateToken(ctx context.Context, token *entity.CalendarToken) (*entity.CalendarToken, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	if r.concurrentToken != "" {
		r.addToken(r.concurrentToken, token.UserID)
	}
	if _, ok := r.tokenTimes[token.UserID]; ok {
		return nil, sql.ErrNoRows
	}
	r.addToken(token.Token, token.UserID)
	return token, nil
}

func (r *fakeRepo) ReplaceToken(ctx context.Context, userID string, token string) (*entity.CalendarToken, error) {
	old, ok := r.tokenTimes[userID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	delete(r.tokens, old.Token)
	r.addToken(token, userID)
	t := r.tokenTimes[userID]
	return &t, nil
}

func (r *fakeRepo) ListTokenUserIDs(ctx context.Context) ([]string, error) {
	ids := []string{}
	for userID := range r.tokenTimes {
		ids = append(ids, userID)
	}
	return ids, nil
}

func (r *fakeRepo) UpsertDocument(ctx context.Context, doc *entity.CalendarDocument) error {
	r.documents[doc.UserID] = *doc
	return nil
}

type fakeRefresher struct {
	userIDs []string
}

func (f *fakeRefresher) RequestRegenerate(ctx context.Context, userID string) error {
	f.userIDs = append(f.userIDs, userID)
	return nil
}
