package repository

import (
	"context"

	"shoot-calendar-api/core/database"
	"shoot-calendar-api/core/logger"
	"shoot-calendar-api/modules/shoot/entity"

	"github.com/jmoiron/sqlx"
)

const shootColumns = `
	id, name, category, start_date, end_date, club_name, address1, address2,
	city, state, postal_code, country, zone, phone, email, website, contact,
	club_id, event_type, region, full_address, latitude, longitude`

type ShootRepository interface {
	ListAll(ctx context.Context) ([]entity.Shoot, error)
	GetByID(ctx context.Context, id int64) (*entity.Shoot, error)
	ListByIDs(ctx context.Context, ids []int64) ([]entity.Shoot, error)
}

type shootRepository struct {
	db database.Database
}

func NewShootRepository(db database.Database) ShootRepository {
	return &shootRepository{db: db}
}

// ListAll returns every shoot ordered by start date, then id.
func (r *shootRepository) ListAll(ctx context.Context) ([]entity.Shoot, error) {
	query := `SELECT ` + shootColumns + ` FROM shoots ORDER BY start_date, id`

	var shoots []entity.Shoot
	if err := r.db.SelectContext(ctx, &shoots, query); err != nil {
		logger.Error("ShootRepository:ListAll:Error", "error", err)
		return nil, err
	}
	return normalize(shoots), nil
}

func (r *shootRepository) GetByID(ctx context.Context, id int64) (*entity.Shoot, error) {
	query := `SELECT ` + shootColumns + ` FROM shoots WHERE id = $1`

	var shoot entity.Shoot
	if err := r.db.GetContext(ctx, &shoot, query, id); err != nil {
		return nil, err
	}
	if shoot.NormalizeCoordinates() {
		logger.Warn("ShootRepository:GetByID:HalfCoordinatePair", "shoot_id", shoot.ID)
	}
	return &shoot, nil
}

func (r *shootRepository) ListByIDs(ctx context.Context, ids []int64) ([]entity.Shoot, error) {
	if len(ids) == 0 {
		return []entity.Shoot{}, nil
	}

	query, args, err := sqlx.In(`SELECT `+shootColumns+` FROM shoots WHERE id IN (?) ORDER BY start_date, id`, ids)
	if err != nil {
		return nil, err
	}
	query = r.db.SQLx().Rebind(query)

	var shoots []entity.Shoot
	if err := r.db.SelectContext(ctx, &shoots, query, args...); err != nil {
		logger.Error("ShootRepository:ListByIDs:Error", "error", err)
		return nil, err
	}
	return normalize(shoots), nil
}

// normalize coerces half coordinate pairs to none so a missing value is
// never read as zero.
func normalize(shoots []entity.Shoot) []entity.Shoot {
	for i := range shoots {
		if shoots[i].NormalizeCoordinates() {
			logger.Warn("ShootRepository:HalfCoordinatePair", "shoot_id", shoots[i].ID)
		}
	}
	return shoots
}
