package mapper

import (
	"time"

	"shoot-calendar-api/modules/shoot/dto"
	"shoot-calendar-api/modules/shoot/entity"
	"shoot-calendar-api/modules/shoot/filter"
)

func ToShootResponse(s *entity.Shoot, marked filter.MarkedSet, now time.Time) dto.ShootResponse {
	return dto.ShootResponse{
		ID:            s.ID,
		Name:          s.Name,
		Category:      s.Category,
		StartDate:     s.StartDate,
		EndDate:       s.EndDate,
		ClubName:      s.ClubName,
		ClubID:        s.ClubID,
		EventType:     s.EventType,
		Address1:      s.Address1,
		Address2:      s.Address2,
		City:          s.City,
		State:         s.State,
		PostalCode:    s.PostalCode,
		Country:       s.Country,
		Zone:          s.Zone,
		Region:        s.Region,
		FullAddress:   s.FullAddress,
		Phone:         s.Phone,
		Email:         s.Email,
		Website:       s.Website,
		Contact:       s.Contact,
		Latitude:      s.Latitude,
		Longitude:     s.Longitude,
		DateLabel:     s.DateLabel(),
		LocationLabel: s.LocationLabel(),
		IsFuture:      s.IsFuture(now),
		IsNotable:     s.IsNotable(),
		IsMarked:      marked.Has(s.ID),
	}
}

func ToShootResponses(shoots []entity.Shoot, marked filter.MarkedSet, now time.Time) []dto.ShootResponse {
	out := make([]dto.ShootResponse, 0, len(shoots))
	for i := range shoots {
		out = append(out, ToShootResponse(&shoots[i], marked, now))
	}
	return out
}
