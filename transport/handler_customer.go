package transport

import (
	"encoding/json"
	"net/http"

	"github.com/GustavoWillian7/ecommerce-engine/constant"
	"github.com/GustavoWillian7/ecommerce-engine/model"
	"github.com/GustavoWillian7/ecommerce-engine/utils/errors"
	validatorx "github.com/GustavoWillian7/ecommerce-engine/utils/validator"
)

// RegisterIndividual handler
// @Summary Register individual customer
// @Description Register a customer with the individual specialization
// @Tags Customers
// @Accept json
// @Produce json
// @Param request body model.RegisterIndividualRequest true "Register Individual Request"
// @Success 200 {object} model.RegisterCustomerResponse
// @Failure 400 {object} errors.CustomError
// @Router /v1/customers/individual [post]
func (s *RestHandler) RegisterIndividual(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterIndividualRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CustomerApp.RegisterIndividual(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// RegisterOrganization handler
// @Summary Register organizational customer
// @Description Register a customer with the organization specialization
// @Tags Customers
// @Accept json
// @Produce json
// @Param request body model.RegisterOrganizationRequest true "Register Organization Request"
// @Success 200 {object} model.RegisterCustomerResponse
// @Failure 400 {object} errors.CustomError
// @Router /v1/customers/organization [post]
func (s *RestHandler) RegisterOrganization(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterOrganizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CustomerApp.RegisterOrganization(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetCustomer handler
// @Summary Get customer
// @Tags Customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} model.Customer
// @Failure 404 {object} errors.CustomError
// @Router /v1/customers/{id} [get]
func (s *RestHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CustomerApp.GetCustomer(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
