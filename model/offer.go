package model

import "github.com/shopspring/decimal"

type VendorEntity struct {
	ID        uint64 `db:"id" json:"id"`
	LegalName string `db:"legal_name" json:"legal_name"`
	TaxID     string `db:"tax_id" json:"tax_id"`
}

// OfferEntity is a vendor listing of a product. Quantity is the vendor's
// self-reported availability, an independent counter from warehouse stock.
type OfferEntity struct {
	ID        uint64          `db:"id" json:"id"`
	ProductID uint64          `db:"product_id" json:"product_id"`
	VendorID  uint64          `db:"vendor_id" json:"vendor_id"`
	Price     decimal.Decimal `db:"price" json:"price"`
	Quantity  int64           `db:"quantity" json:"quantity"`
}

type RegisterVendorRequest struct {
	LegalName string `json:"legal_name" validate:"required"`
	TaxID     string `json:"tax_id" validate:"required"`
}

type RegisterVendorResponse struct {
	VendorID uint64 `json:"vendor_id"`
}

type CreateOfferRequest struct {
	ProductID uint64          `json:"product_id" validate:"required"`
	VendorID  uint64          `json:"vendor_id" validate:"required"`
	Price     decimal.Decimal `json:"price" validate:"required"`
	Quantity  int64           `json:"quantity" validate:"gte=0"`
}

type CreateOfferResponse struct {
	OfferID uint64 `json:"offer_id"`
}

type AdjustOfferQuantityRequest struct {
	Delta int64 `json:"delta" validate:"required"`
}
