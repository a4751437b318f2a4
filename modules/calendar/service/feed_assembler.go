package service

import (
	"context"
	"database/sql"
	"time"

	"shoot-calendar-api/core/constants"
	"shoot-calendar-api/core/database"
	"shoot-calendar-api/core/errors"
	"shoot-calendar-api/modules/calendar/dto"
	"shoot-calendar-api/modules/calendar/repository"

	"github.com/gosimple/slug"
)

// FeedAssembler loads a user's stored calendar document and attaches the
// transport metadata it is served with.
type FeedAssembler interface {
	Assemble(ctx context.Context, conn database.Conn, userID string) (*dto.CalendarFeed, *errors.AppError)
}

type feedAssembler struct {
	repo     repository.CalendarRepository
	ttl      time.Duration
	filename string
}

func NewFeedAssembler(repo repository.CalendarRepository, calendarName string, ttl time.Duration) FeedAssembler {
	if ttl <= 0 {
		ttl = constants.DefaultCalendarFeedTTL
	}
	return &feedAssembler{
		repo:     repo,
		ttl:      ttl,
		filename: FeedFilename(calendarName),
	}
}

// FeedFilename turns a calendar name into the attachment filename.
func FeedFilename(name string) string {
	s := slug.Make(name)
	if s == "" {
		return "calendar.ics"
	}
	return s + ".ics"
}

func (a *feedAssembler) Assemble(ctx context.Context, conn database.Conn, userID string) (*dto.CalendarFeed, *errors.AppError) {
	doc, err := a.repo.GetDocumentByUserID(ctx, conn, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.NewAppError(errors.ErrNoCalendarForUser, "no calendar for user", nil)
		}
		return nil, errors.NewAppError(errors.ErrUpstreamUnavailable, "calendar store unavailable", err)
	}

	return &dto.CalendarFeed{
		Document:    doc.Document,
		ContentType: constants.CalendarContentType,
		Filename:    a.filename,
		TTL:         a.ttl,
		UpdatedAt:   doc.UpdatedAt,
	}, nil
}
