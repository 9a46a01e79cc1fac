package transport

import (
	"encoding/json"
	"net/http"

	"github.com/GustavoWillian7/ecommerce-engine/constant"
	"github.com/GustavoWillian7/ecommerce-engine/model"
	"github.com/GustavoWillian7/ecommerce-engine/utils/errors"
	validatorx "github.com/GustavoWillian7/ecommerce-engine/utils/validator"
)

// CreateOrder handler
// @Summary Create order
// @Description Draft an order from offer lines; decrements offer quantity and warehouse stock atomically
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body model.CreateOrderRequest true "Create Order Request"
// @Success 200 {object} model.CreateOrderResponse
// @Failure 409 {object} errors.CustomError
// @Router /v1/orders [post]
func (s *RestHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.OrderApp.CreateOrder(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetOrder handler
// @Summary Get order with lines and total
// @Tags Orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} model.OrderDetail
// @Failure 404 {object} errors.CustomError
// @Router /v1/orders/{id} [get]
func (s *RestHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.OrderApp.GetOrder(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ApproveOrder handler
// @Summary Approve order
// @Description Approve once payment allocations equal the order total; creates the delivery record
// @Tags Orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} baseResponse
// @Failure 422 {object} errors.CustomError
// @Router /v1/orders/{id}/approve [post]
func (s *RestHandler) ApproveOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.OrderApp.ApproveOrder(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// CancelOrder handler
// @Summary Cancel order
// @Description Cancel a Processing or Approved order, restoring offer and stock quantities
// @Tags Orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} baseResponse
// @Failure 409 {object} errors.CustomError
// @Router /v1/orders/{id}/cancel [post]
func (s *RestHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.OrderApp.CancelOrder(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// MarkShipped handler
// @Summary Mark order shipped (internal)
// @Description Move the order to Shipped and its delivery to InTransit, assigning the tracking code
// @Tags Orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} baseResponse
// @Failure 409 {object} errors.CustomError
// @Router /internal/v1/orders/{id}/ship [post]
func (s *RestHandler) MarkShipped(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	trackingCode, err := s.OrderApp.MarkShipped(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, struct {
		TrackingCode string `json:"tracking_code"`
	}{TrackingCode: trackingCode})
}

// MarkDelivered handler
// @Summary Mark order delivered (internal)
// @Tags Orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} baseResponse
// @Failure 409 {object} errors.CustomError
// @Router /internal/v1/orders/{id}/deliver [post]
func (s *RestHandler) MarkDelivered(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.OrderApp.MarkDelivered(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}
