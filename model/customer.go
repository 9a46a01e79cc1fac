package model

import (
	"time"

	"github.com/GustavoWillian7/ecommerce-engine/constant"
)

// CustomerEntity represents the customer table entity
type CustomerEntity struct {
	ID        uint64                `db:"id" json:"id"`
	Name      string                `db:"name" json:"name"`
	Email     string                `db:"email" json:"email"`
	Address   string                `db:"address" json:"address"`
	Kind      constant.CustomerKind `db:"kind" json:"kind"`
	CreatedAt time.Time             `db:"created_at" json:"created_at"`
}

// IndividualDetail is the individual specialization of a customer.
type IndividualDetail struct {
	CustomerID uint64 `db:"customer_id" json:"customer_id"`
	TaxID      string `db:"tax_id" json:"tax_id"`
}

// OrganizationDetail is the organizational specialization of a customer.
type OrganizationDetail struct {
	CustomerID uint64 `db:"customer_id" json:"customer_id"`
	TaxID      string `db:"tax_id" json:"tax_id"`
	LegalName  string `db:"legal_name" json:"legal_name"`
}

// Customer is the read model: the base record plus exactly one specialization.
type Customer struct {
	CustomerEntity
	Individual   *IndividualDetail   `json:"individual,omitempty"`
	Organization *OrganizationDetail `json:"organization,omitempty"`
}

type RegisterIndividualRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address" validate:"required"`
	TaxID   string `json:"tax_id" validate:"required"`
}

type RegisterOrganizationRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Address   string `json:"address" validate:"required"`
	TaxID     string `json:"tax_id" validate:"required"`
	LegalName string `json:"legal_name" validate:"required"`
}

type RegisterCustomerResponse struct {
	CustomerID uint64                `json:"customer_id"`
	Kind       constant.CustomerKind `json:"kind"`
}
