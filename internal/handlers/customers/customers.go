package customers

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

//go:generate mockgen -source=customers.go -destination=mock.go -package=customers

type Service interface {
	List(ctx context.Context) ([]domain.Customer, error)
	Get(ctx context.Context, id int) (*domain.Customer, error)
	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	Update(ctx context.Context, id int, c *domain.Customer) (*domain.Customer, error)
	Delete(ctx context.Context, id int) error
}

type CustomerHandler struct {
	customerService Service
}

func New(customerService Service) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
	}
}

// List godoc
//
//	@Summary	List customers
//	@Tags		Customers
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		dto.CustomerResponseDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/customers [get]
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customerService.List(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	response := make([]dto.CustomerResponseDTO, 0, len(customers))
	for i := range customers {
		response = append(response, dto.NewCustomerResponse(&customers[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Get godoc
//
//	@Summary	Get customer
//	@Tags		Customers
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"Customer ID"
//	@Success	200	{object}	dto.CustomerResponseDTO
//	@Failure	404	{object}	utils.Response	"Customer not found"
//	@Router		/api/customers/{id} [get]
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := utils.URLParamInt(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	customer, err := h.customerService.Get(r.Context(), id)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCustomerResponse(customer))
}

// Create godoc
//
//	@Summary	Create customer
//	@Tags		Customers
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dto.CustomerRequestDTO	true	"Customer"
//	@Success	201		{object}	dto.CustomerResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid request body"
//	@Router		/api/customers [post]
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := decode(w, r)
	if !ok {
		return
	}
	customer, err := h.customerService.Create(r.Context(), req.ToDomain())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewCustomerResponse(customer))
}

// Update godoc
//
//	@Summary		Update customer
//	@Description	Replaces every field of the customer.
//	@Tags			Customers
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int						true	"Customer ID"
//	@Param			request	body		dto.CustomerRequestDTO	true	"Customer"
//	@Success		200		{object}	dto.CustomerResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Customer not found"
//	@Router			/api/customers/{id} [put]
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := utils.URLParamInt(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	req, ok := decode(w, r)
	if !ok {
		return
	}
	customer, err := h.customerService.Update(r.Context(), id, req.ToDomain())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCustomerResponse(customer))
}

// Delete godoc
//
//	@Summary	Delete customer
//	@Tags		Customers
//	@Security	BearerAuth
//	@Param		id	path	int	true	"Customer ID"
//	@Success	204
//	@Failure	404	{object}	utils.Response	"Customer not found"
//	@Router		/api/customers/{id} [delete]
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := utils.URLParamInt(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.customerService.Delete(r.Context(), id); err != nil {
		httperr.Respond(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decode(w http.ResponseWriter, r *http.Request) (dto.CustomerRequestDTO, bool) {
	var req dto.CustomerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return req, false
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return req, false
	}
	return req, true
}
