package transport

import (
	"net/http"
)

// GetDelivery handler
// @Summary Get the delivery tracking an order
// @Tags Deliveries
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} model.DeliveryEntity
// @Failure 404 {object} errors.CustomError
// @Router /v1/orders/{id}/delivery [get]
func (s *RestHandler) GetDelivery(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.DeliveryApp.GetDelivery(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// FailDelivery handler
// @Summary Fail a delivery (internal)
// @Description Mark a Preparing or InTransit delivery as failed
// @Tags Deliveries
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} baseResponse
// @Failure 409 {object} errors.CustomError
// @Router /internal/v1/orders/{id}/delivery/fail [post]
func (s *RestHandler) FailDelivery(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.DeliveryApp.FailDelivery(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}
