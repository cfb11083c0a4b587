package donations

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmarkov/coindrop/internal/domain"
	"github.com/dmarkov/coindrop/internal/dto"
	"github.com/dmarkov/coindrop/internal/service/donationservice"
	"github.com/dmarkov/coindrop/pkg/auth"
	"github.com/dmarkov/coindrop/pkg/utils"
	"github.com/dmarkov/coindrop/pkg/validate"
)

type Service interface {
	GetDonations(ctx context.Context, userID int, role string) ([]domain.Donation, error)
}

type DonationHandler struct {
	donationService Service
}

func New(donationService Service) *DonationHandler {
	return &DonationHandler{
		donationService: donationService,
	}
}

// GetDonations godoc
//
//	@Summary		List received donations
//	@Description	Get the authenticated donee's received donations, newest first
//	@Tags			Donations
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.DonationResponseDTO
//	@Success		204	{object}	utils.Response	"No donations found"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Only donees receive donations"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/donations [get]
func (h *DonationHandler) GetDonations(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	role := r.Context().Value(auth.RoleKey).(string)

	donations, err := h.donationService.GetDonations(r.Context(), userID, role)
	if err != nil {
		if errors.Is(err, donationservice.ErrForbidden) {
			utils.RespondWithError(w, http.StatusForbidden, "Only donees receive donations")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch donations")
		return
	}
	if len(donations) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Donations not found")
		return
	}

	response := make([]dto.DonationResponseDTO, len(donations))
	for i, d := range donations {
		response[i] = dto.DonationResponseDTO{
			ID:        d.ID.String(),
			PledgeID:  d.PledgeID.String(),
			Amount:    validate.CentsToDecimal(d.AmountCents),
			CreatedAt: d.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
