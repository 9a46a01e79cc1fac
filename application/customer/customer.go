package customer

import (
	"context"

	"github.com/GustavoWillian7/ecommerce-engine/constant"
	"github.com/GustavoWillian7/ecommerce-engine/model"
	customerrepo "github.com/GustavoWillian7/ecommerce-engine/repository/customer"
	"github.com/GustavoWillian7/ecommerce-engine/utils/errors"
	"github.com/GustavoWillian7/ecommerce-engine/utils/logger"
	"go.uber.org/zap"
)

type CustomerApp interface {
	RegisterIndividual(ctx context.Context, req *model.RegisterIndividualRequest) (*model.RegisterCustomerResponse, error)
	RegisterOrganization(ctx context.Context, req *model.RegisterOrganizationRequest) (*model.RegisterCustomerResponse, error)
	GetCustomer(ctx context.Context, id uint64) (*model.Customer, error)
}

type customerAppImpl struct {
	customerRepo customerrepo.CustomerRepository
}

func NewCustomerApp(customerRepo customerrepo.CustomerRepository) CustomerApp {
	return &customerAppImpl{customerRepo: customerRepo}
}

func (s *customerAppImpl) RegisterIndividual(ctx context.Context, req *model.RegisterIndividualRequest) (*model.RegisterCustomerResponse, error) {
	if err := s.checkUniqueness(ctx, req.Email, constant.CustomerKindIndividual, req.TaxID); err != nil {
		return nil, err
	}

	entity := &model.CustomerEntity{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
	}
	detail := &model.IndividualDetail{TaxID: req.TaxID}

	id, err := s.customerRepo.CreateIndividual(ctx, entity, detail)
	if err != nil {
		// race on the unique keys: another registration won between check and insert
		if errors.IsDuplicateEntry(err) {
			return nil, errors.SetCustomError(constant.ErrDuplicateIdentifier)
		}
		logger.Error("[RegisterIndividual] create customer", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.RegisterCustomerResponse{CustomerID: id, Kind: constant.CustomerKindIndividual}, nil
}

func (s *customerAppImpl) RegisterOrganization(ctx context.Context, req *model.RegisterOrganizationRequest) (*model.RegisterCustomerResponse, error) {
	if err := s.checkUniqueness(ctx, req.Email, constant.CustomerKindOrganization, req.TaxID); err != nil {
		return nil, err
	}

	entity := &model.CustomerEntity{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
	}
	detail := &model.OrganizationDetail{TaxID: req.TaxID, LegalName: req.LegalName}

	id, err := s.customerRepo.CreateOrganization(ctx, entity, detail)
	if err != nil {
		if errors.IsDuplicateEntry(err) {
			return nil, errors.SetCustomError(constant.ErrDuplicateIdentifier)
		}
		logger.Error("[RegisterOrganization] create customer", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.RegisterCustomerResponse{CustomerID: id, Kind: constant.CustomerKindOrganization}, nil
}

// checkUniqueness enforces the single-specialization invariant: an email can
// hold at most one customer, and it can never switch kinds. Registering the
// same email under the other kind is a specialization change, not a duplicate.
func (s *customerAppImpl) checkUniqueness(ctx context.Context, email string, kind constant.CustomerKind, taxID string) error {
	existing, err := s.customerRepo.GetByEmail(ctx, email)
	if err != nil {
		logger.Error("[RegisterCustomer] get by email", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		if existing.Kind != kind {
			return errors.SetCustomError(constant.ErrInvalidSpecializationChange)
		}
		return errors.SetCustomError(constant.ErrDuplicateIdentifier)
	}

	taken, err := s.customerRepo.TaxIDExists(ctx, kind, taxID)
	if err != nil {
		logger.Error("[RegisterCustomer] check tax id", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if taken {
		return errors.SetCustomError(constant.ErrDuplicateIdentifier)
	}
	return nil
}

func (s *customerAppImpl) GetCustomer(ctx context.Context, id uint64) (*model.Customer, error) {
	result, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetCustomer] get by id", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if result == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return result, nil
}
