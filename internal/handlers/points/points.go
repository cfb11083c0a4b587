package points

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dmarkov/coindrop/internal/domain"
	"github.com/dmarkov/coindrop/internal/dto"
	"github.com/dmarkov/coindrop/pkg/auth"
	"github.com/dmarkov/coindrop/pkg/utils"
)

type Service interface {
	GetPoints(ctx context.Context, userID int) (*domain.SocialImpactPoint, error)
	Leaderboard(ctx context.Context, limit int) ([]domain.SocialImpactPoint, error)
}

type PointsHandler struct {
	pointsService Service
}

func New(pointsService Service) *PointsHandler {
	return &PointsHandler{
		pointsService: pointsService,
	}
}

// GetPoints godoc
//
//	@Summary		Get own impact points
//	@Description	Retrieve the authenticated user's social impact point total
//	@Tags			Points
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.PointsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/points [get]
func (h *PointsHandler) GetPoints(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	sip, err := h.pointsService.GetPoints(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PointsResponseDTO{
		UserID: sip.UserID,
		Points: sip.Points,
	})
}

// Leaderboard godoc
//
//	@Summary		Get the points leaderboard
//	@Description	Top users by social impact points
//	@Tags			Points
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Number of entries, default 10"
//	@Success		200		{array}		dto.LeaderboardEntryDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/leaderboard [get]
func (h *PointsHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	totals, err := h.pointsService.Leaderboard(r.Context(), limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.LeaderboardEntryDTO, len(totals))
	for i, sip := range totals {
		response[i] = dto.LeaderboardEntryDTO{
			UserID: sip.UserID,
			Points: sip.Points,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
