package inventories

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

//go:generate mockgen -source=inventories.go -destination=mock.go -package=inventories

type Service interface {
	List(ctx context.Context) ([]domain.Inventory, error)
	Get(ctx context.Context, id int) (*domain.Inventory, error)
	Create(ctx context.Context, item *domain.Inventory) (*domain.Inventory, error)
	Update(ctx context.Context, id int, item *domain.Inventory) (*domain.Inventory, error)
	Delete(ctx context.Context, id int) error
}

type InventoryHandler struct {
	inventoryService Service
}

func New(inventoryService Service) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
	}
}

// List godoc
//
//	@Summary	List inventory items
//	@Tags		Inventory
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		dto.InventoryResponseDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/inventories [get]
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.inventoryService.List(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	response := make([]dto.InventoryResponseDTO, 0, len(items))
	for i := range items {
		response = append(response, dto.NewInventoryResponse(&items[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Get godoc
//
//	@Summary	Get inventory item
//	@Tags		Inventory
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"Inventory item ID"
//	@Success	200	{object}	dto.InventoryResponseDTO
//	@Failure	404	{object}	utils.Response	"Inventory item not found"
//	@Router		/api/inventories/{id} [get]
func (h *InventoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := utils.URLParamInt(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	item, err := h.inventoryService.Get(r.Context(), id)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewInventoryResponse(item))
}

// Create godoc
//
//	@Summary	Create inventory item
//	@Tags		Inventory
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dto.InventoryRequestDTO	true	"Inventory item"
//	@Success	201		{object}	dto.InventoryResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid request body"
//	@Router		/api/inventories [post]
func (h *InventoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := decode(w, r)
	if !ok {
		return
	}
	item, err := h.inventoryService.Create(r.Context(), req.ToDomain())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewInventoryResponse(item))
}

// Update godoc
//
//	@Summary		Update inventory item
//	@Description	Replaces every field of the item.
//	@Tags			Inventory
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int						true	"Inventory item ID"
//	@Param			request	body		dto.InventoryRequestDTO	true	"Inventory item"
//	@Success		200		{object}	dto.InventoryResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Inventory item not found"
//	@Router			/api/inventories/{id} [put]
func (h *InventoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := utils.URLParamInt(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	req, ok := decode(w, r)
	if !ok {
		return
	}
	item, err := h.inventoryService.Update(r.Context(), id, req.ToDomain())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewInventoryResponse(item))
}

// Delete godoc
//
//	@Summary	Delete inventory item
//	@Tags		Inventory
//	@Security	BearerAuth
//	@Param		id	path	int	true	"Inventory item ID"
//	@Success	204
//	@Failure	404	{object}	utils.Response	"Inventory item not found"
//	@Router		/api/inventories/{id} [delete]
func (h *InventoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := utils.URLParamInt(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.inventoryService.Delete(r.Context(), id); err != nil {
		httperr.Respond(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decode(w http.ResponseWriter, r *http.Request) (dto.InventoryRequestDTO, bool) {
	var req dto.InventoryRequestDTO
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
