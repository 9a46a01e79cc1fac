package offer

import (
	"context"

	"github.com/GustavoWillian7/ecommerce-engine/constant"
	"github.com/GustavoWillian7/ecommerce-engine/model"
	offerrepo "github.com/GustavoWillian7/ecommerce-engine/repository/offer"
	productrepo "github.com/GustavoWillian7/ecommerce-engine/repository/product"
	"github.com/GustavoWillian7/ecommerce-engine/utils/errors"
	"github.com/GustavoWillian7/ecommerce-engine/utils/logger"
	"go.uber.org/zap"
)

type OfferApp interface {
	RegisterVendor(ctx context.Context, req *model.RegisterVendorRequest) (*model.RegisterVendorResponse, error)
	CreateOffer(ctx context.Context, req *model.CreateOfferRequest) (*model.CreateOfferResponse, error)
	AdjustOfferQuantity(ctx context.Context, offerID uint64, delta int64) error
	GetOffer(ctx context.Context, offerID uint64) (*model.OfferEntity, error)
}

type offerAppImpl struct {
	offerRepo   offerrepo.OfferRepository
	productRepo productrepo.ProductRepository
}

func NewOfferApp(offerRepo offerrepo.OfferRepository, productRepo productrepo.ProductRepository) OfferApp {
	return &offerAppImpl{offerRepo: offerRepo, productRepo: productRepo}
}

func (s *offerAppImpl) RegisterVendor(ctx context.Context, req *model.RegisterVendorRequest) (*model.RegisterVendorResponse, error) {
	id, err := s.offerRepo.CreateVendor(ctx, &model.VendorEntity{LegalName: req.LegalName, TaxID: req.TaxID})
	if err != nil {
		if errors.Is(err, constant.ErrDuplicateIdentifier) {
			return nil, errors.SetCustomError(constant.ErrDuplicateIdentifier)
		}
		logger.Error("[RegisterVendor] create vendor", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.RegisterVendorResponse{VendorID: id}, nil
}

func (s *offerAppImpl) CreateOffer(ctx context.Context, req *model.CreateOfferRequest) (*model.CreateOfferResponse, error) {
	if !req.Price.IsPositive() {
		return nil, errors.SetCustomError(constant.ErrInvalidValue)
	}
	if req.Quantity < 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidValue)
	}

	product, err := s.productRepo.GetProductByID(ctx, req.ProductID)
	if err != nil {
		logger.Error("[CreateOffer] get product", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if product == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	vendor, err := s.offerRepo.GetVendorByID(ctx, req.VendorID)
	if err != nil {
		logger.Error("[CreateOffer] get vendor", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if vendor == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	entity := &model.OfferEntity{
		ProductID: req.ProductID,
		VendorID:  req.VendorID,
		Price:     req.Price,
		Quantity:  req.Quantity,
	}
	id, err := s.offerRepo.CreateOffer(ctx, entity)
	if err != nil {
		if errors.Is(err, constant.ErrDuplicateOffer) {
			return nil, errors.SetCustomError(constant.ErrDuplicateOffer)
		}
		logger.Error("[CreateOffer] create offer", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.CreateOfferResponse{OfferID: id}, nil
}

func (s *offerAppImpl) AdjustOfferQuantity(ctx context.Context, offerID uint64, delta int64) error {
	if delta == 0 {
		return nil
	}
	if err := s.offerRepo.AdjustQuantity(ctx, offerID, delta); err != nil {
		if errors.Is(err, constant.ErrInsufficientOfferStock) {
			return errors.SetCustomError(constant.ErrInsufficientOfferStock)
		}
		if errors.Is(err, constant.ErrNotFound) {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[AdjustOfferQuantity] adjust quantity", zap.Uint64("offer_id", offerID), zap.Int64("delta", delta), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *offerAppImpl) GetOffer(ctx context.Context, offerID uint64) (*model.OfferEntity, error) {
	entity, err := s.offerRepo.GetOfferByID(ctx, offerID)
	if err != nil {
		logger.Error("[GetOffer] get offer", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return entity, nil
}
