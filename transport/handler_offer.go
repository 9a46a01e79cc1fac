package transport

import (
	"encoding/json"
	"net/http"

	"github.com/GustavoWillian7/ecommerce-engine/constant"
	"github.com/GustavoWillian7/ecommerce-engine/model"
	"github.com/GustavoWillian7/ecommerce-engine/utils/errors"
	validatorx "github.com/GustavoWillian7/ecommerce-engine/utils/validator"
)

// RegisterVendor handler
// @Summary Register vendor
// @Tags Offers
// @Accept json
// @Produce json
// @Param request body model.RegisterVendorRequest true "Register Vendor Request"
// @Success 200 {object} model.RegisterVendorResponse
// @Failure 409 {object} errors.CustomError
// @Router /v1/vendors [post]
func (s *RestHandler) RegisterVendor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterVendorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.OfferApp.RegisterVendor(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CreateOffer handler
// @Summary Create offer
// @Description List a product for a vendor with price and available quantity
// @Tags Offers
// @Accept json
// @Produce json
// @Param request body model.CreateOfferRequest true "Create Offer Request"
// @Success 200 {object} model.CreateOfferResponse
// @Failure 409 {object} errors.CustomError
// @Router /v1/offers [post]
func (s *RestHandler) CreateOffer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateOfferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.OfferApp.CreateOffer(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetOffer handler
// @Summary Get offer
// @Tags Offers
// @Produce json
// @Param id path int true "Offer ID"
// @Success 200 {object} model.OfferEntity
// @Failure 404 {object} errors.CustomError
// @Router /v1/offers/{id} [get]
func (s *RestHandler) GetOffer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.OfferApp.GetOffer(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// AdjustOfferQuantity handler
// @Summary Adjust offer quantity
// @Description Apply a signed delta to the vendor's self-reported availability
// @Tags Offers
// @Accept json
// @Produce json
// @Param id path int true "Offer ID"
// @Param request body model.AdjustOfferQuantityRequest true "Adjust Offer Quantity Request"
// @Success 200 {object} baseResponse
// @Failure 409 {object} errors.CustomError
// @Router /v1/offers/{id}/quantity [post]
func (s *RestHandler) AdjustOfferQuantity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.AdjustOfferQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.OfferApp.AdjustOfferQuantity(r.Context(), id, req.Delta); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}
