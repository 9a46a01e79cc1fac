package transport

import (
	"encoding/json"
	"net/http"

	"github.com/GustavoWillian7/ecommerce-engine/constant"
	"github.com/GustavoWillian7/ecommerce-engine/model"
	"github.com/GustavoWillian7/ecommerce-engine/utils/errors"
	validatorx "github.com/GustavoWillian7/ecommerce-engine/utils/validator"
)

// AllocatePayment handler
// @Summary Allocate payment
// @Description Record one payment method's contribution to an order; re-allocation replaces the prior amount
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body model.AllocatePaymentRequest true "Allocate Payment Request"
// @Success 200 {object} baseResponse
// @Failure 400 {object} errors.CustomError
// @Router /v1/payments [post]
func (s *RestHandler) AllocatePayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.AllocatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.PaymentApp.AllocatePayment(ctx, &req); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// TotalAllocated handler
// @Summary Total allocated to an order across payment methods
// @Tags Payments
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} model.TotalAllocatedResponse
// @Router /v1/orders/{id}/payments [get]
func (s *RestHandler) TotalAllocated(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.PaymentApp.TotalAllocated(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListPaymentMethods handler
// @Summary List the fixed payment method catalog
// @Tags Payments
// @Produce json
// @Success 200 {array} model.PaymentMethodEntity
// @Router /v1/payment-methods [get]
func (s *RestHandler) ListPaymentMethods(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, s.PaymentApp.ListMethods())
}
