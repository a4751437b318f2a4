package service

import (
	"context"
	"database/sql"
	"sort"
	"time"

	coreEntity "shoot-calendar-api/core/entity"
	"shoot-calendar-api/core/errors"
	"shoot-calendar-api/core/logger"
	"shoot-calendar-api/core/params"
	markRepository "shoot-calendar-api/modules/mark/repository"
	"shoot-calendar-api/modules/shoot/dto"
	"shoot-calendar-api/modules/shoot/entity"
	"shoot-calendar-api/modules/shoot/filter"
	"shoot-calendar-api/modules/shoot/mapper"
	"shoot-calendar-api/modules/shoot/repository"
	"shoot-calendar-api/modules/shoot/validator"
)

type ShootService interface {
	ListShoots(ctx context.Context, userID string, spec filter.Spec, queryParams params.QueryParams) (*dto.ShootListResponse, *errors.AppError)
	GetShoot(ctx context.Context, userID string, id int64) (*dto.ShootResponse, *errors.AppError)
	GetFacets(ctx context.Context) (*dto.FacetsResponse, *errors.AppError)
}

type shootService struct {
	repo     repository.ShootRepository
	markRepo markRepository.MarkRepository
	now      func() time.Time
}

func NewShootService(repo repository.ShootRepository, markRepo markRepository.MarkRepository) ShootService {
	return &shootService{
		repo:     repo,
		markRepo: markRepo,
		now:      time.Now,
	}
}

// ListShoots narrows the whole collection with spec and returns one page.
// userID may be empty for anonymous callers, who cannot use MarkedOnly.
func (s *shootService) ListShoots(ctx context.Context, userID string, spec filter.Spec, queryParams params.QueryParams) (*dto.ShootListResponse, *errors.AppError) {
	if spec.MarkedOnly && userID == "" {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "sign in to filter by marked shoots", nil)
	}

	shoots, appErr := s.loadShoots(ctx)
	if appErr != nil {
		return nil, appErr
	}

	marked, appErr := s.markedSet(ctx, userID)
	if appErr != nil {
		return nil, appErr
	}

	now := s.now()
	filtered := filter.Apply(shoots, spec, marked, now)
	page := coreEntity.Paginate(filtered, queryParams.PageNumber, queryParams.PageSize)

	return &dto.ShootListResponse{
		Items:      mapper.ToShootResponses(page.Items, marked, now),
		TotalItems: page.TotalItems,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}, nil
}

func (s *shootService) GetShoot(ctx context.Context, userID string, id int64) (*dto.ShootResponse, *errors.AppError) {
	shoot, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.NewAppError(errors.ErrNotFound, "shoot not found", nil)
		}
		logger.Error("ShootService:GetShoot:Error", "shoot_id", id, "error", err)
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to get shoot", err)
	}

	marked, appErr := s.markedSet(ctx, userID)
	if appErr != nil {
		return nil, appErr
	}

	res := mapper.ToShootResponse(shoot, marked, s.now())
	return &res, nil
}

func (s *shootService) GetFacets(ctx context.Context) (*dto.FacetsResponse, *errors.AppError) {
	shoots, appErr := s.loadShoots(ctx)
	if appErr != nil {
		return nil, appErr
	}

	seen := make(map[string]struct{})
	states := []string{}
	for i := range shoots {
		st := shoots[i].State
		if st == "" {
			continue
		}
		if _, ok := seen[st]; !ok {
			seen[st] = struct{}{}
			states = append(states, st)
		}
	}
	sort.Strings(states)

	affiliations := make([]string, 0, len(filter.Affiliations))
	for _, a := range filter.Affiliations {
		affiliations = append(affiliations, string(a))
	}

	months := make([]int, 0, 12)
	for m := 1; m <= 12; m++ {
		months = append(months, m)
	}

	return &dto.FacetsResponse{
		Affiliations: affiliations,
		States:       states,
		Months:       months,
	}, nil
}

func (s *shootService) loadShoots(ctx context.Context) ([]entity.Shoot, *errors.AppError) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to load shoots", err)
	}

	valid, rejected := validator.ValidateCollection(all)
	for _, r := range rejected {
		logger.Warn("ShootService:loadShoots:Rejected", "shoot_id", r.ID, "reason", r.Reason)
	}
	return valid, nil
}

func (s *shootService) markedSet(ctx context.Context, userID string) (filter.MarkedSet, *errors.AppError) {
	if userID == "" {
		return nil, nil
	}
	ids, err := s.markRepo.ListShootIDs(ctx, userID)
	if err != nil {
		logger.Error("ShootService:markedSet:Error", "user_id", userID, "error", err)
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to load marked shoots", err)
	}
	return filter.NewMarkedSet(ids...), nil
}
