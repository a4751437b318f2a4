package dto

import "time"

// ShootResponse is a shoot with the labels the client renders.
type ShootResponse struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Category      *string    `json:"category,omitempty"`
	StartDate     time.Time  `json:"start_date"`
	EndDate       *time.Time `json:"end_date,omitempty"`
	ClubName      string     `json:"club_name"`
	ClubID        *int64     `json:"club_id,omitempty"`
	EventType     string     `json:"event_type"`
	Address1      *string    `json:"address1,omitempty"`
	Address2      *string    `json:"address2,omitempty"`
	City          string     `json:"city"`
	State         string     `json:"state"`
	PostalCode    *string    `json:"postal_code,omitempty"`
	Country       *string    `json:"country,omitempty"`
	Zone          *string    `json:"zone,omitempty"`
	Region        *string    `json:"region,omitempty"`
	FullAddress   *string    `json:"full_address,omitempty"`
	Phone         *string    `json:"phone,omitempty"`
	Email         *string    `json:"email,omitempty"`
	Website       *string    `json:"website,omitempty"`
	Contact       *string    `json:"contact,omitempty"`
	Latitude      *float64   `json:"latitude,omitempty"`
	Longitude     *float64   `json:"longitude,omitempty"`
	DateLabel     string     `json:"date_label"`
	LocationLabel string     `json:"location_label"`
	IsFuture      bool       `json:"is_future"`
	IsNotable     bool       `json:"is_notable"`
	IsMarked      bool       `json:"is_marked"`
}

type ShootListResponse struct {
	Items      []ShootResponse `json:"items"`
	TotalItems int             `json:"total_items"`
	PageNumber int             `json:"page_number"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
}

// FacetsResponse lists the values the filter UI can offer.
type FacetsResponse struct {
	Affiliations []string `json:"affiliations"`
	States       []string `json:"states"`
	Months       []int    `json:"months"`
}
