package dto

type PointsResponseDTO struct {
	UserID int `json:"user_id" example:"1"`
	Points int `json:"points" example:"65"`
}

type LeaderboardEntryDTO struct {
	UserID int `json:"user_id" example:"1"`
	Points int `json:"points" example:"500"`
}
