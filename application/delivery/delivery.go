package delivery

import (
	"context"

	"github.com/GustavoWillian7/ecommerce-engine/constant"
	"github.com/GustavoWillian7/ecommerce-engine/model"
	deliveryrepo "github.com/GustavoWillian7/ecommerce-engine/repository/delivery"
	txrepo "github.com/GustavoWillian7/ecommerce-engine/repository/tx"
	"github.com/GustavoWillian7/ecommerce-engine/utils/errors"
	"github.com/GustavoWillian7/ecommerce-engine/utils/logger"
	"go.uber.org/zap"
)

type DeliveryApp interface {
	GetDelivery(ctx context.Context, orderID uint64) (*model.DeliveryEntity, error)
	// FailDelivery marks a delivery as failed from Preparing or InTransit.
	// The order itself keeps its status; a failed delivery is a delivery
	// domain fact, not an order cancellation.
	FailDelivery(ctx context.Context, orderID uint64) error
}

type deliveryAppImpl struct {
	txRepo       txrepo.TxRepository
	deliveryRepo deliveryrepo.DeliveryRepository
}

func NewDeliveryApp(txRepo txrepo.TxRepository, deliveryRepo deliveryrepo.DeliveryRepository) DeliveryApp {
	return &deliveryAppImpl{txRepo: txRepo, deliveryRepo: deliveryRepo}
}

func (s *deliveryAppImpl) GetDelivery(ctx context.Context, orderID uint64) (*model.DeliveryEntity, error) {
	entity, err := s.deliveryRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		logger.Error("[GetDelivery] get delivery", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return entity, nil
}

func (s *deliveryAppImpl) FailDelivery(ctx context.Context, orderID uint64) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[FailDelivery] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	entity, err := s.deliveryRepo.GetByOrderIDForUpdateTx(ctx, tx, orderID)
	if err != nil {
		logger.Error("[FailDelivery] get delivery", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if !entity.Status.CanTransitionTo(constant.DeliveryStatusFailed) {
		return errors.SetCustomError(constant.ErrInvalidTransition)
	}

	if err := s.deliveryRepo.UpdateStatusTx(ctx, tx, entity.ID, constant.DeliveryStatusFailed, nil); err != nil {
		logger.Error("[FailDelivery] update status", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[FailDelivery] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}
