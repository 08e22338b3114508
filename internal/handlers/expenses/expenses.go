package expenses

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/GlebRadaev/erpfinance/internal/domain"
	"github.com/GlebRadaev/erpfinance/internal/dto"
	"github.com/GlebRadaev/erpfinance/internal/handlers/httperr"
	"github.com/GlebRadaev/erpfinance/internal/service/expenseservice"
	"github.com/GlebRadaev/erpfinance/pkg/auth"
	"github.com/GlebRadaev/erpfinance/pkg/utils"
	"github.com/GlebRadaev/erpfinance/pkg/validate"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=expenses.go -destination=mock.go -package=expenses

type Service interface {
	Submit(ctx context.Context, in expenseservice.SubmitInput) (*domain.Expense, error)
	ListPending(ctx context.Context) ([]domain.Expense, error)
	Get(ctx context.Context, id int) (*domain.Expense, error)
	Approve(ctx context.Context, expenseID, reviewerID int) (*domain.Expense, error)
	Deny(ctx context.Context, expenseID, reviewerID int, reason string) (*domain.Expense, error)
	AddComment(ctx context.Context, expenseID, authorID int, text string) (*domain.ExpenseComment, error)
	ListComments(ctx context.Context, expenseID int) ([]domain.ExpenseComment, error)
	Delete(ctx context.Context, id int) error
}

type ExpenseHandler struct {
	expenseService Service
	maxUploadSize  int64
}

func New(expenseService Service, maxUploadSize int64) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
		maxUploadSize:  maxUploadSize,
	}
}

// Submit godoc
//
//	@Summary		Submit an expense
//	@Description	Create a PENDING expense for the caller with an optional receipt file.
//	@Tags			Expenses
//	@Accept			multipart/form-data
//	@Produce		json
//	@Security		BearerAuth
//	@Param			title		formData	string	true	"Title"
//	@Param			description	formData	string	false	"Description"
//	@Param			amount		formData	string	true	"Amount, at most two decimals"
//	@Param			expenseDate	formData	string	true	"Date of the expense, YYYY-MM-DD"
//	@Param			categoryId	formData	int		true	"Category ID"
//	@Param			receipt		formData	file	false	"Receipt file"
//	@Success		201			{object}	dto.ExpenseResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid form"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"Category or user not found"
//	@Failure		413			{object}	utils.Response	"Request is too large"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/expenses/submit [post]
func (h *ExpenseHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			utils.RespondWithError(w, http.StatusRequestEntityTooLarge, "Request is too large")
			return
		}
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll()

	amount, err := decimal.NewFromString(strings.TrimSpace(r.FormValue("amount")))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid amount")
		return
	}
	expenseDate, err := time.Parse(dto.DateLayout, r.FormValue("expenseDate"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid expense date, expected YYYY-MM-DD")
		return
	}
	categoryID, err := strconv.Atoi(r.FormValue("categoryId"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid category id")
		return
	}

	in := expenseservice.SubmitInput{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Amount:      amount,
		ExpenseDate: expenseDate,
		CategoryID:  categoryID,
		SubmitterID: userID,
	}

	file, header, err := r.FormFile("receipt")
	switch {
	case err == nil:
		defer file.Close()
		in.Receipt = &expenseservice.ReceiptUpload{
			FileName:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Content:     file,
		}
	case errors.Is(err, http.ErrMissingFile):
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid receipt file")
		return
	}

	expense, err := h.expenseService.Submit(r.Context(), in)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewExpenseResponse(expense))
}

// ListPending godoc
//
//	@Summary		List pending expenses
//	@Description	Expenses waiting for review, oldest first. Reviewer roles only.
//	@Tags			Expenses
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.ExpenseResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Reviewer role required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/expenses/pending [get]
func (h *ExpenseHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.expenseService.ListPending(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewExpenseResponses(expenses))
}

// Get godoc
//
//	@Summary	Get expense
//	@Tags		Expenses
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"Expense ID"
//	@Success	200	{object}	dto.ExpenseDetailsResponseDTO
//	@Failure	404	{object}	utils.Response	"Expense not found"
//	@Router		/api/expenses/{id} [get]
func (h *ExpenseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := utils.URLParamInt(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	expense, err := h.expenseService.Get(r.Context(), id)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewExpenseDetailsResponse(expense))
}

// Approve godoc
//
//	@Summary		Approve expense
//	@Description	The caller becomes the approver.
//	@Tags			Expenses
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Expense ID"
//	@Success		200	{object}	dto.ExpenseDetailsResponseDTO
//	@Failure		403	{object}	utils.Response	"Caller can't review expenses"
//	@Failure		404	{object}	utils.Response	"Expense not found"
//	@Failure		409	{object}	utils.Response	"Expense was already reviewed"
//	@Router			/api/expenses/approve/{id} [put]
func (h *ExpenseHandler) Approve(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())
	id, err := utils.URLParamInt(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	expense, err := h.expenseService.Approve(r.Context(), id, userID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewExpenseDetailsResponse(expense))
}

// Deny godoc
//
//	@Summary		Deny expense
//	@Description	The caller becomes the approver. A non-blank reason is required.
//	@Tags			Expenses
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int					true	"Expense ID"
//	@Param			request	body		dto.DenyRequestDTO	true	"Denial reason"
//	@Success		200		{object}	dto.ExpenseDetailsResponseDTO
//	@Failure		400		{object}	utils.Response	"Denial reason is required"
//	@Failure		403		{object}	utils.Response	"Caller can't review expenses"
//	@Failure		404		{object}	utils.Response	"Expense not found"
//	@Failure		409		{object}	utils.Response	"Expense was already reviewed"
//	@Router			/api/expenses/deny/{id} [put]
func (h *ExpenseHandler) Deny(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())
	id, err := utils.URLParamInt(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req dto.DenyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	expense, err := h.expenseService.Deny(r.Context(), id, userID, req.DenialReason)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewExpenseDetailsResponse(expense))
}

// AddComment godoc
//
//	@Summary	Comment on expense
//	@Tags		Expenses
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		int						true	"Expense ID"
//	@Param		request	body		dto.CommentRequestDTO	true	"Comment"
//	@Success	201		{object}	dto.CommentResponseDTO
//	@Failure	400		{object}	utils.Response	"Comment text is required"
//	@Failure	404		{object}	utils.Response	"Expense not found"
//	@Router		/api/expenses/{id}/comments [post]
func (h *ExpenseHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())
	id, err := utils.URLParamInt(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req dto.CommentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	comment, err := h.expenseService.AddComment(r.Context(), id, userID, req.CommentText)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewCommentResponse(comment))
}

// ListComments godoc
//
//	@Summary	List expense comments
//	@Tags		Expenses
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"Expense ID"
//	@Success	200	{array}		dto.CommentResponseDTO
//	@Failure	404	{object}	utils.Response	"Expense not found"
//	@Router		/api/expenses/{id}/comments [get]
func (h *ExpenseHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	id, err := utils.URLParamInt(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	comments, err := h.expenseService.ListComments(r.Context(), id)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCommentResponses(comments))
}

// Delete godoc
//
//	@Summary	Delete expense
//	@Tags		Expenses
//	@Security	BearerAuth
//	@Param		id	path	int	true	"Expense ID"
//	@Success	204
//	@Failure	404	{object}	utils.Response	"Expense not found"
//	@Router		/api/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := utils.URLParamInt(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.expenseService.Delete(r.Context(), id); err != nil {
		httperr.Respond(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
