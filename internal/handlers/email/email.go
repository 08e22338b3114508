package email

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/erpfinance/internal/dto"
	"github.com/GlebRadaev/erpfinance/pkg/utils"
	"github.com/GlebRadaev/erpfinance/pkg/validate"
	"go.uber.org/zap"
)

//go:generate mockgen -source=email.go -destination=mock.go -package=email

type Service interface {
	SendWelcome(ctx context.Context, to, username, role string) error
	SendDisabled(ctx context.Context, to, username, role string) error
}

type EmailHandler struct {
	mailer Service
}

func New(mailer Service) *EmailHandler {
	return &EmailHandler{
		mailer: mailer,
	}
}

// SendWelcome godoc
//
//	@Summary	Send welcome email
//	@Tags		Email
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dto.EmailRequestDTO	true	"Recipient"
//	@Success	200		{object}	dto.MessageResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid request body"
//	@Failure	500		{object}	utils.Response	"Failed to send email"
//	@Router		/api/email/send-welcome [post]
func (h *EmailHandler) SendWelcome(w http.ResponseWriter, r *http.Request) {
	h.send(w, r, h.mailer.SendWelcome)
}

// SendDisabled godoc
//
//	@Summary	Send account disabled email
//	@Tags		Email
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dto.EmailRequestDTO	true	"Recipient"
//	@Success	200		{object}	dto.MessageResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid request body"
//	@Failure	500		{object}	utils.Response	"Failed to send email"
//	@Router		/api/email/disabled [post]
func (h *EmailHandler) SendDisabled(w http.ResponseWriter, r *http.Request) {
	h.send(w, r, h.mailer.SendDisabled)
}

func (h *EmailHandler) send(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, to, username, role string) error) {
	var req dto.EmailRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := fn(r.Context(), req.To, req.Username, req.Role); err != nil {
		zap.L().Error("can't send email", zap.String("to", req.To), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to send email")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "Email sent"})
}
