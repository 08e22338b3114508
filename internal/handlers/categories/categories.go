package categories

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/erpfinance/internal/domain"
	"github.com/GlebRadaev/erpfinance/internal/dto"
	"github.com/GlebRadaev/erpfinance/internal/handlers/httperr"
	"github.com/GlebRadaev/erpfinance/pkg/utils"
	"github.com/GlebRadaev/erpfinance/pkg/validate"
)

//go:generate mockgen -source=categories.go -destination=mock.go -package=categories

type Service interface {
	ListCategories(ctx context.Context) ([]domain.ExpenseCategory, error)
	CreateCategory(ctx context.Context, name string) (*domain.ExpenseCategory, error)
}

type CategoryHandler struct {
	categoryService Service
}

func New(categoryService Service) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// List godoc
//
//	@Summary	List expense categories
//	@Tags		Categories
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		dto.CategoryDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/expense-categories [get]
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.ListCategories(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	response := make([]dto.CategoryDTO, 0, len(categories))
	for i := range categories {
		response = append(response, *dto.NewCategory(&categories[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Create godoc
//
//	@Summary	Create expense category
//	@Tags		Categories
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dto.CategoryRequestDTO	true	"Category"
//	@Success	201		{object}	dto.CategoryDTO
//	@Failure	400		{object}	utils.Response	"Invalid request body"
//	@Failure	409		{object}	utils.Response	"Category already exists"
//	@Router		/api/expense-categories [post]
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CategoryRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	category, err := h.categoryService.CreateCategory(r.Context(), req.Name)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewCategory(category))
}
