package transport

import (
	"encoding/json"
	"net/http"

	"github.com/GustavoWillian7/ecommerce-engine/constant"
	"github.com/GustavoWillian7/ecommerce-engine/model"
	"github.com/GustavoWillian7/ecommerce-engine/utils/errors"
	validatorx "github.com/GustavoWillian7/ecommerce-engine/utils/validator"
)

// AddProduct handler
// @Summary Add product
// @Description Register a catalog product with a strictly positive base value
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body model.AddProductRequest true "Add Product Request"
// @Success 200 {object} model.AddProductResponse
// @Failure 400 {object} errors.CustomError
// @Router /v1/products [post]
func (s *RestHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.AddProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CatalogApp.AddProduct(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetProduct handler
// @Summary Get product
// @Tags Catalog
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} model.ProductEntity
// @Failure 404 {object} errors.CustomError
// @Router /v1/products/{id} [get]
func (s *RestHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CatalogApp.GetProduct(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// AdjustStock handler
// @Summary Adjust warehouse stock
// @Description Apply a signed delta to one (product, warehouse) stock entry
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body model.AdjustStockRequest true "Adjust Stock Request"
// @Success 200 {object} baseResponse
// @Failure 409 {object} errors.CustomError
// @Router /v1/stock/adjust [post]
func (s *RestHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.AdjustStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.CatalogApp.AdjustStock(ctx, &req); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// TotalStock handler
// @Summary Total on-hand stock of a product across warehouses
// @Tags Catalog
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} model.TotalStockResponse
// @Failure 404 {object} errors.CustomError
// @Router /v1/products/{id}/stock [get]
func (s *RestHandler) TotalStock(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CatalogApp.TotalStock(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListWarehouses handler
// @Summary List warehouses
// @Tags Catalog
// @Produce json
// @Success 200 {array} model.WarehouseEntity
// @Router /v1/warehouses [get]
func (s *RestHandler) ListWarehouses(w http.ResponseWriter, r *http.Request) {
	res, err := s.CatalogApp.ListWarehouses(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
