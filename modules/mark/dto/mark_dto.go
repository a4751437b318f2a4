package dto

type MarkedShootsResponse struct {
	ShootIDs []int64 `json:"shoot_ids"`
}

type MarkResponse struct {
	ShootID int64 `json:"shoot_id"`
	Marked  bool  `json:"marked"`
}
