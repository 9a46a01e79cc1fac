package payment

import (
	"context"

	"github.com/GustavoWillian7/ecommerce-engine/constant"
	"github.com/GustavoWillian7/ecommerce-engine/model"
	orderrepo "github.com/GustavoWillian7/ecommerce-engine/repository/order"
	paymentrepo "github.com/GustavoWillian7/ecommerce-engine/repository/payment"
	txrepo "github.com/GustavoWillian7/ecommerce-engine/repository/tx"
	"github.com/GustavoWillian7/ecommerce-engine/utils/errors"
	"github.com/GustavoWillian7/ecommerce-engine/utils/logger"
	"go.uber.org/zap"
)

type PaymentApp interface {
	// LoadMethods reads the fixed payment-method catalog. Call once at
	// startup; the catalog is read-only afterwards.
	LoadMethods(ctx context.Context) error
	AllocatePayment(ctx context.Context, req *model.AllocatePaymentRequest) error
	TotalAllocated(ctx context.Context, orderID uint64) (*model.TotalAllocatedResponse, error)
	ListMethods() []model.PaymentMethodEntity
}

type paymentAppImpl struct {
	txRepo      txrepo.TxRepository
	paymentRepo paymentrepo.PaymentRepository
	orderRepo   orderrepo.OrderRepository
	methods     map[uint64]model.PaymentMethodEntity
}

func NewPaymentApp(txRepo txrepo.TxRepository, paymentRepo paymentrepo.PaymentRepository, orderRepo orderrepo.OrderRepository) PaymentApp {
	return &paymentAppImpl{
		txRepo:      txRepo,
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
		methods:     make(map[uint64]model.PaymentMethodEntity),
	}
}

func (s *paymentAppImpl) LoadMethods(ctx context.Context) error {
	methods, err := s.paymentRepo.ListPaymentMethods(ctx)
	if err != nil {
		logger.Error("[LoadMethods] list payment methods", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	loaded := make(map[uint64]model.PaymentMethodEntity, len(methods))
	for _, m := range methods {
		if !m.Type.Known() {
			logger.Warn("[LoadMethods] skipping unknown payment method type",
				zap.Uint64("id", m.ID), zap.String("type", string(m.Type)))
			continue
		}
		loaded[m.ID] = m
	}
	s.methods = loaded

	logger.Info("[LoadMethods] payment method catalog loaded", zap.Int("count", len(loaded)))
	return nil
}

// AllocatePayment records one method's contribution to an order. Re-allocating
// the same (order, method) pair replaces the previous amount. Allocations are
// only accepted while the order is still in Processing.
func (s *paymentAppImpl) AllocatePayment(ctx context.Context, req *model.AllocatePaymentRequest) error {
	if !req.Amount.IsPositive() {
		return errors.SetCustomError(constant.ErrInvalidValue)
	}
	if _, ok := s.methods[req.PaymentMethodID]; !ok {
		return errors.SetCustomError(constant.ErrUnknownPaymentMethod)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[AllocatePayment] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	entity, err := s.orderRepo.GetOrderForUpdateTx(ctx, tx, req.OrderID)
	if err != nil {
		logger.Error("[AllocatePayment] get order", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if entity.Status != constant.OrderStatusProcessing {
		return errors.SetCustomError(constant.ErrInvalidTransition)
	}

	allocation := &model.PaymentAllocation{
		OrderID:         req.OrderID,
		PaymentMethodID: req.PaymentMethodID,
		Amount:          req.Amount,
	}
	if err := s.paymentRepo.UpsertAllocationTx(ctx, tx, allocation); err != nil {
		logger.Error("[AllocatePayment] upsert allocation", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[AllocatePayment] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}

func (s *paymentAppImpl) TotalAllocated(ctx context.Context, orderID uint64) (*model.TotalAllocatedResponse, error) {
	total, err := s.paymentRepo.TotalAllocated(ctx, orderID)
	if err != nil {
		logger.Error("[TotalAllocated] sum allocations", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.TotalAllocatedResponse{OrderID: orderID, Total: total}, nil
}

func (s *paymentAppImpl) ListMethods() []model.PaymentMethodEntity {
	methods := make([]model.PaymentMethodEntity, 0, len(s.methods))
	for _, m := range s.methods {
		methods = append(methods, m)
	}
	return methods
}
