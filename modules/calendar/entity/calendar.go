package entity

import "time"

// CalendarToken maps an opaque feed token to the user it belongs to.
type CalendarToken struct {
	Token     string    `db:"token" json:"-"`
	UserID    string    `db:"user_id" json:"user_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

func (CalendarToken) TableName() string {
	return "calendar_tokens"
}

// CalendarDocument is the precomputed iCalendar body for one user.
type CalendarDocument struct {
	UserID    string    `db:"user_id" json:"user_id"`
	Document  []byte    `db:"document" json:"-"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

func (CalendarDocument) TableName() string {
	return "calendar_documents"
}
