package pledges

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dmarkov/coindrop/internal/domain"
	"github.com/dmarkov/coindrop/internal/dto"
	"github.com/dmarkov/coindrop/internal/lifecycle"
	"github.com/dmarkov/coindrop/internal/matching"
	pledgerepo "github.com/dmarkov/coindrop/internal/repo/pledge-repo"
	pledgeservice "github.com/dmarkov/coindrop/internal/service/pledgeservice"
	"github.com/dmarkov/coindrop/pkg/auth"
	"github.com/dmarkov/coindrop/pkg/utils"
	"github.com/dmarkov/coindrop/pkg/validate"
)

type Service interface {
	CreatePledge(ctx context.Context, userID int, role string, amount decimal.Decimal) (*domain.Pledge, error)
	UpdateStatus(ctx context.Context, userID int, pledgeID uuid.UUID, newStatus, evidence string) (*domain.Pledge, error)
	ReportAmountSent(ctx context.Context, userID int, pledgeID uuid.UUID, amount decimal.Decimal) (*pledgeservice.AmountSentResult, error)
	GetPledges(ctx context.Context, userID int) ([]domain.Pledge, error)
	GetTasks(ctx context.Context, userID int, pledgeID uuid.UUID) ([]domain.PledgeTask, error)
}

type PledgeHandler struct {
	pledgeService Service
}

func New(pledgeService Service) *PledgeHandler {
	return &PledgeHandler{
		pledgeService: pledgeService,
	}
}

func toPledgeDTO(pledge *domain.Pledge) dto.PledgeResponseDTO {
	return dto.PledgeResponseDTO{
		ID:                   pledge.ID.String(),
		Amount:               validate.CentsToDecimal(pledge.AmountCents),
		AmountSent:           validate.CentsToDecimal(pledge.AmountSentCents),
		CompletionPercentage: pledge.CompletionPercentage,
		Status:               pledge.Status,
		CreatedAt:            pledge.CreatedAt,
		UpdatedAt:            pledge.UpdatedAt,
	}
}

// CreatePledge godoc
//
//	@Summary		Create a new pledge
//	@Description	Commit a loose-change amount between 0.50 and 1000.00. Task 1 is completed by the act of pledging.
//	@Tags			Pledges
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreatePledgeRequestDTO	true	"Pledge amount"
//	@Success		201		{object}	dto.PledgeResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Only donors can pledge"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/pledges [post]
func (h *PledgeHandler) CreatePledge(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	role := r.Context().Value(auth.RoleKey).(string)

	var req dto.CreatePledgeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pledge, err := h.pledgeService.CreatePledge(r.Context(), userID, role, req.Amount)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toPledgeDTO(pledge))
}

// GetPledges godoc
//
//	@Summary		List own pledges
//	@Description	Get the authenticated donor's pledges, newest first
//	@Tags			Pledges
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PledgeResponseDTO
//	@Success		204	{object}	utils.Response	"No pledges found"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/pledges [get]
func (h *PledgeHandler) GetPledges(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	pledges, err := h.pledgeService.GetPledges(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch pledges")
		return
	}
	if len(pledges) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Pledges not found")
		return
	}

	response := make([]dto.PledgeResponseDTO, len(pledges))
	for i := range pledges {
		response[i] = toPledgeDTO(&pledges[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetTasks godoc
//
//	@Summary		Get pledge tasks
//	@Description	Derive the three fixed task states from the pledge status
//	@Tags			Pledges
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Pledge ID"
//	@Success		200	{array}		dto.PledgeTaskResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not the pledge owner"
//	@Failure		404	{object}	utils.Response	"Pledge not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/pledges/{id}/tasks [get]
func (h *PledgeHandler) GetTasks(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	pledgeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid pledge id")
		return
	}

	tasks, err := h.pledgeService.GetTasks(r.Context(), userID, pledgeID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	response := make([]dto.PledgeTaskResponseDTO, len(tasks))
	for i, task := range tasks {
		response[i] = dto.PledgeTaskResponseDTO{
			ID:     task.ID,
			Name:   task.Name,
			Status: task.Status,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// UpdateStatus godoc
//
//	@Summary		Advance pledge status
//	@Description	Move the pledge one step through the task workflow. Transitions into TASK2_COMPLETE and COMPLETED require an evidence description.
//	@Tags			Pledges
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Pledge ID"
//	@Param			request	body		dto.UpdateStatusRequestDTO	true	"Target status and evidence"
//	@Success		200		{object}	dto.PledgeResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not the pledge owner"
//	@Failure		404		{object}	utils.Response	"Pledge not found"
//	@Failure		409		{object}	utils.Response	"Invalid status transition"
//	@Failure		422		{object}	utils.Response	"Evidence required"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/pledges/{id}/status [patch]
func (h *PledgeHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	pledgeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid pledge id")
		return
	}

	var req dto.UpdateStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pledge, err := h.pledgeService.UpdateStatus(r.Context(), userID, pledgeID, req.Status, req.Evidence)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPledgeDTO(pledge))
}

// ReportAmountSent godoc
//
//	@Summary		Report a partial fund transfer
//	@Description	Accumulate a sent amount against the pledged total. Reaching 100% completes the pledge and awards the completion reward.
//	@Tags			Pledges
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Pledge ID"
//	@Param			request	body		dto.ReportAmountSentRequestDTO	true	"Amount sent"
//	@Success		200		{object}	dto.ReportAmountSentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not the pledge owner"
//	@Failure		404		{object}	utils.Response	"Pledge not found"
//	@Failure		409		{object}	utils.Response	"Pledge already completed"
//	@Failure		422		{object}	utils.Response	"Amount exceeds pledged total"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/pledges/{id}/amount-sent [post]
func (h *PledgeHandler) ReportAmountSent(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	pledgeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid pledge id")
		return
	}

	var req dto.ReportAmountSentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.pledgeService.ReportAmountSent(r.Context(), userID, pledgeID, req.AmountSent)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ReportAmountSentResponseDTO{
		Pledge:               toPledgeDTO(result.Pledge),
		AmountAdded:          validate.CentsToDecimal(result.AmountAddedCents),
		NewTotalAmountSent:   validate.CentsToDecimal(result.NewTotalSentCents),
		CompletionPercentage: result.CompletionPercentage,
		StatusChanged:        result.StatusChanged,
		NewStatus:            result.NewStatus,
	})
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	var transitionErr *lifecycle.InvalidTransitionError
	switch {
	case errors.Is(err, pledgeservice.ErrPledgeNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, pledgeservice.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case validate.IsAmountError(err), errors.Is(err, lifecycle.ErrInvalidAmount):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, lifecycle.ErrEvidenceRequired):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, lifecycle.ErrExceedsPledgeAmount):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &transitionErr),
		errors.Is(err, lifecycle.ErrUnknownStatus),
		errors.Is(err, lifecycle.ErrAlreadyCompleted),
		errors.Is(err, pledgerepo.ErrVersionConflict):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, matching.ErrNoBeneficiary):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
