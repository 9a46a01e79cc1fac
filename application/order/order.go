package order

import (
	"context"
	"sort"

	"github.com/GustavoWillian7/ecommerce-engine/constant"
	"github.com/GustavoWillian7/ecommerce-engine/model"
	customerrepo "github.com/GustavoWillian7/ecommerce-engine/repository/customer"
	deliveryrepo "github.com/GustavoWillian7/ecommerce-engine/repository/delivery"
	offerrepo "github.com/GustavoWillian7/ecommerce-engine/repository/offer"
	orderrepo "github.com/GustavoWillian7/ecommerce-engine/repository/order"
	productrepo "github.com/GustavoWillian7/ecommerce-engine/repository/product"
	paymentrepo "github.com/GustavoWillian7/ecommerce-engine/repository/payment"
	txrepo "github.com/GustavoWillian7/ecommerce-engine/repository/tx"
	"github.com/GustavoWillian7/ecommerce-engine/thirdparty/rabbitmq"
	"github.com/GustavoWillian7/ecommerce-engine/utils/errors"
	"github.com/GustavoWillian7/ecommerce-engine/utils/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type OrderApp interface {
	CreateOrder(ctx context.Context, req *model.CreateOrderRequest) (*model.CreateOrderResponse, error)
	ApproveOrder(ctx context.Context, orderID uint64) error
	CancelOrder(ctx context.Context, orderID uint64) error
	MarkShipped(ctx context.Context, orderID uint64) (string, error)
	MarkDelivered(ctx context.Context, orderID uint64) error
	GetOrder(ctx context.Context, orderID uint64) (*model.OrderDetail, error)
}

type orderAppImpl struct {
	txRepo       txrepo.TxRepository
	orderRepo    orderrepo.OrderRepository
	offerRepo    offerrepo.OfferRepository
	productRepo  productrepo.ProductRepository
	customerRepo customerrepo.CustomerRepository
	paymentRepo  paymentrepo.PaymentRepository
	deliveryRepo deliveryrepo.DeliveryRepository
	publisher    *rabbitmq.Publisher
}

func NewOrderApp(
	txRepo txrepo.TxRepository,
	orderRepo orderrepo.OrderRepository,
	offerRepo offerrepo.OfferRepository,
	productRepo productrepo.ProductRepository,
	customerRepo customerrepo.CustomerRepository,
	paymentRepo paymentrepo.PaymentRepository,
	deliveryRepo deliveryrepo.DeliveryRepository,
	publisher *rabbitmq.Publisher,
) OrderApp {
	return &orderAppImpl{
		txRepo:       txRepo,
		orderRepo:    orderRepo,
		offerRepo:    offerRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		paymentRepo:  paymentRepo,
		deliveryRepo: deliveryRepo,
		publisher:    publisher,
	}
}

// CreateOrder drafts an order in Processing. Offer quantity and warehouse
// stock are decremented inside one transaction with the offer and stock rows
// locked, so two concurrent orders over the same offer serialize and the
// loser fails instead of overselling. Any line failure rolls back everything.
func (s *orderAppImpl) CreateOrder(ctx context.Context, req *model.CreateOrderRequest) (*model.CreateOrderResponse, error) {
	if len(req.Lines) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	offerIDs := make([]uint64, 0, len(req.Lines))
	seen := make(map[uint64]struct{}, len(req.Lines))
	for _, line := range req.Lines {
		if line.Quantity < 1 {
			return nil, errors.SetCustomError(constant.ErrInvalidValue)
		}
		// one line per offer: (order, offer) is the line's identity
		if _, dup := seen[line.OfferID]; dup {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		seen[line.OfferID] = struct{}{}
		offerIDs = append(offerIDs, line.OfferID)
	}

	cust, err := s.customerRepo.GetByID(ctx, req.CustomerID)
	if err != nil {
		logger.Error("[CreateOrder] get customer", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if cust == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateOrder] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	offers, err := s.offerRepo.GetOffersForUpdateTx(ctx, tx, offerIDs)
	if err != nil {
		if errors.IsLockConflict(err) {
			return nil, errors.SetCustomError(constant.ErrConflict)
		}
		logger.Error("[CreateOrder] lock offers", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// validate every line against the locked offers before mutating anything
	for _, line := range req.Lines {
		offer, ok := offers[line.OfferID]
		if !ok {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		if offer.Quantity < line.Quantity {
			logger.Info("[CreateOrder] insufficient offer quantity",
				zap.Uint64("offer_id", line.OfferID), zap.Int64("need", line.Quantity), zap.Int64("available", offer.Quantity))
			return nil, errors.SetCustomError(constant.ErrInsufficientOfferStock)
		}
	}

	orderID, err := s.orderRepo.InsertOrderTx(ctx, tx, req.CustomerID)
	if err != nil {
		logger.Error("[CreateOrder] insert order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	total := decimal.Zero
	lines := make([]model.OrderLine, 0, len(req.Lines))
	for _, line := range req.Lines {
		offer := offers[line.OfferID]
		// price snapshot: later offer price changes never touch this order
		lines = append(lines, model.OrderLine{
			OrderID:   orderID,
			OfferID:   line.OfferID,
			Quantity:  line.Quantity,
			UnitPrice: offer.Price,
		})
		total = total.Add(offer.Price.Mul(decimal.NewFromInt(line.Quantity)))
	}
	if err := s.orderRepo.InsertOrderLinesTx(ctx, tx, orderID, lines); err != nil {
		logger.Error("[CreateOrder] insert lines", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// Deduct in ascending product id order. Stock rows then get locked in
	// the same global order by every transaction, so two concurrent orders
	// over overlapping products cannot deadlock on each other's stock rows.
	deductOrder := make([]model.OrderLineRequest, len(req.Lines))
	copy(deductOrder, req.Lines)
	sort.Slice(deductOrder, func(i, j int) bool {
		pi := offers[deductOrder[i].OfferID].ProductID
		pj := offers[deductOrder[j].OfferID].ProductID
		if pi != pj {
			return pi < pj
		}
		return deductOrder[i].OfferID < deductOrder[j].OfferID
	})

	for _, line := range deductOrder {
		offer := offers[line.OfferID]

		if err := s.offerRepo.DeductQuantityTx(ctx, tx, line.OfferID, line.Quantity); err != nil {
			if errors.Is(err, constant.ErrInsufficientOfferStock) {
				return nil, errors.SetCustomError(constant.ErrInsufficientOfferStock)
			}
			if errors.IsLockConflict(err) {
				return nil, errors.SetCustomError(constant.ErrConflict)
			}
			logger.Error("[CreateOrder] deduct offer", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}

		entries, err := s.productRepo.GetStockForUpdateTx(ctx, tx, offer.ProductID)
		if err != nil {
			if errors.IsLockConflict(err) {
				return nil, errors.SetCustomError(constant.ErrConflict)
			}
			logger.Error("[CreateOrder] lock stock", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		deductions, err := planStockDeduction(entries, orderID, offer.ProductID, line.Quantity)
		if err != nil {
			logger.Info("[CreateOrder] insufficient warehouse stock",
				zap.Uint64("product_id", offer.ProductID), zap.Int64("need", line.Quantity))
			return nil, errors.SetCustomError(constant.ErrInsufficientStock)
		}
		for _, d := range deductions {
			if err := s.productRepo.DeductStockTx(ctx, tx, d.ProductID, d.WarehouseID, d.Quantity); err != nil {
				if errors.Is(err, constant.ErrInsufficientStock) {
					return nil, errors.SetCustomError(constant.ErrInsufficientStock)
				}
				if errors.IsLockConflict(err) {
					return nil, errors.SetCustomError(constant.ErrConflict)
				}
				logger.Error("[CreateOrder] deduct stock", zap.String("error", err.Error()))
				return nil, errors.SetCustomError(constant.ErrInternal)
			}
		}
		if err := s.productRepo.RecordDeductionsTx(ctx, tx, deductions); err != nil {
			logger.Error("[CreateOrder] record deductions", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateOrder] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.publishEvent(orderID, req.CustomerID, constant.OrderStatusProcessing)

	return &model.CreateOrderResponse{
		OrderID: orderID,
		Status:  constant.OrderStatusProcessing.String(),
		Total:   total,
	}, nil
}

// ApproveOrder confirms the order once payment allocations cover its total
// exactly. The total and the allocation sum are read inside the same
// transaction that flips the status, so approval never sees a half-applied
// concurrent allocation. The delivery record is created here, exactly once.
func (s *orderAppImpl) ApproveOrder(ctx context.Context, orderID uint64) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ApproveOrder] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	entity, err := s.orderRepo.GetOrderForUpdateTx(ctx, tx, orderID)
	if err != nil {
		logger.Error("[ApproveOrder] get order", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if !entity.Status.CanTransitionTo(constant.OrderStatusApproved) {
		return errors.SetCustomError(constant.ErrInvalidTransition)
	}

	total, err := s.orderRepo.GetOrderTotalTx(ctx, tx, orderID)
	if err != nil {
		logger.Error("[ApproveOrder] order total", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	allocated, err := s.paymentRepo.TotalAllocatedTx(ctx, tx, orderID)
	if err != nil {
		logger.Error("[ApproveOrder] allocated total", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !allocated.Equal(total) {
		logger.Info("[ApproveOrder] payment incomplete",
			zap.Uint64("order_id", orderID), zap.String("total", total.String()), zap.String("allocated", allocated.String()))
		return errors.SetCustomError(constant.ErrPaymentIncomplete)
	}

	if err := s.orderRepo.UpdateOrderStatusTx(ctx, tx, orderID, constant.OrderStatusApproved); err != nil {
		logger.Error("[ApproveOrder] update status", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if _, err := s.deliveryRepo.InsertDeliveryTx(ctx, tx, orderID); err != nil {
		if errors.Is(err, constant.ErrInvalidTransition) {
			return errors.SetCustomError(constant.ErrInvalidTransition)
		}
		logger.Error("[ApproveOrder] create delivery", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ApproveOrder] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.publishEvent(orderID, entity.CustomerID, constant.OrderStatusApproved)
	return nil
}

// CancelOrder undoes the order's decrements exactly: every offer quantity and
// every per-warehouse stock deduction is restored. Only Processing and
// Approved orders can be cancelled. A delivery still in Preparing is failed.
func (s *orderAppImpl) CancelOrder(ctx context.Context, orderID uint64) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CancelOrder] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	entity, err := s.orderRepo.GetOrderForUpdateTx(ctx, tx, orderID)
	if err != nil {
		logger.Error("[CancelOrder] get order", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if !entity.Status.CanTransitionTo(constant.OrderStatusCancelled) {
		return errors.SetCustomError(constant.ErrInvalidTransition)
	}

	lines, err := s.orderRepo.GetOrderLinesTx(ctx, tx, orderID)
	if err != nil {
		logger.Error("[CancelOrder] get lines", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	for _, line := range lines {
		if err := s.offerRepo.RestoreQuantityTx(ctx, tx, line.OfferID, line.Quantity); err != nil {
			logger.Error("[CancelOrder] restore offer", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
	}
	if err := s.productRepo.RestoreDeductionsTx(ctx, tx, orderID); err != nil {
		logger.Error("[CancelOrder] restore stock", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if entity.Status == constant.OrderStatusApproved {
		delivery, err := s.deliveryRepo.GetByOrderIDForUpdateTx(ctx, tx, orderID)
		if err != nil {
			logger.Error("[CancelOrder] get delivery", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if delivery != nil && delivery.Status.CanTransitionTo(constant.DeliveryStatusFailed) {
			if err := s.deliveryRepo.UpdateStatusTx(ctx, tx, delivery.ID, constant.DeliveryStatusFailed, nil); err != nil {
				logger.Error("[CancelOrder] fail delivery", zap.String("error", err.Error()))
				return errors.SetCustomError(constant.ErrInternal)
			}
		}
	}

	if err := s.orderRepo.UpdateOrderStatusTx(ctx, tx, orderID, constant.OrderStatusCancelled); err != nil {
		logger.Error("[CancelOrder] update status", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CancelOrder] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.publishEvent(orderID, entity.CustomerID, constant.OrderStatusCancelled)
	return nil
}

// MarkShipped moves the order to Shipped and its delivery to InTransit,
// assigning the tracking code. The code is generated exactly once: a delivery
// that already left Preparing or already carries a code is rejected.
func (s *orderAppImpl) MarkShipped(ctx context.Context, orderID uint64) (string, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[MarkShipped] begin tx", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	entity, err := s.orderRepo.GetOrderForUpdateTx(ctx, tx, orderID)
	if err != nil {
		logger.Error("[MarkShipped] get order", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return "", errors.SetCustomError(constant.ErrNotFound)
	}
	if !entity.Status.CanTransitionTo(constant.OrderStatusShipped) {
		return "", errors.SetCustomError(constant.ErrInvalidTransition)
	}

	delivery, err := s.deliveryRepo.GetByOrderIDForUpdateTx(ctx, tx, orderID)
	if err != nil {
		logger.Error("[MarkShipped] get delivery", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	if delivery == nil {
		logger.Error("[MarkShipped] missing delivery record", zap.Uint64("order_id", orderID))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	if !delivery.Status.CanTransitionTo(constant.DeliveryStatusInTransit) || delivery.TrackingCode != nil {
		return "", errors.SetCustomError(constant.ErrInvalidTransition)
	}

	trackingCode := uuid.NewString()
	if err := s.deliveryRepo.UpdateStatusTx(ctx, tx, delivery.ID, constant.DeliveryStatusInTransit, &trackingCode); err != nil {
		logger.Error("[MarkShipped] update delivery", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.orderRepo.UpdateOrderStatusTx(ctx, tx, orderID, constant.OrderStatusShipped); err != nil {
		logger.Error("[MarkShipped] update status", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[MarkShipped] commit tx", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.publishEvent(orderID, entity.CustomerID, constant.OrderStatusShipped)
	return trackingCode, nil
}

func (s *orderAppImpl) MarkDelivered(ctx context.Context, orderID uint64) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[MarkDelivered] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	entity, err := s.orderRepo.GetOrderForUpdateTx(ctx, tx, orderID)
	if err != nil {
		logger.Error("[MarkDelivered] get order", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if !entity.Status.CanTransitionTo(constant.OrderStatusDelivered) {
		return errors.SetCustomError(constant.ErrInvalidTransition)
	}

	delivery, err := s.deliveryRepo.GetByOrderIDForUpdateTx(ctx, tx, orderID)
	if err != nil {
		logger.Error("[MarkDelivered] get delivery", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if delivery == nil {
		logger.Error("[MarkDelivered] missing delivery record", zap.Uint64("order_id", orderID))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !delivery.Status.CanTransitionTo(constant.DeliveryStatusDelivered) {
		return errors.SetCustomError(constant.ErrInvalidTransition)
	}

	if err := s.deliveryRepo.UpdateStatusTx(ctx, tx, delivery.ID, constant.DeliveryStatusDelivered, nil); err != nil {
		logger.Error("[MarkDelivered] update delivery", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.orderRepo.UpdateOrderStatusTx(ctx, tx, orderID, constant.OrderStatusDelivered); err != nil {
		logger.Error("[MarkDelivered] update status", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[MarkDelivered] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.publishEvent(orderID, entity.CustomerID, constant.OrderStatusDelivered)
	return nil
}

func (s *orderAppImpl) GetOrder(ctx context.Context, orderID uint64) (*model.OrderDetail, error) {
	detail, err := s.orderRepo.GetOrderDetail(ctx, orderID)
	if err != nil {
		logger.Error("[GetOrder] get detail", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if detail == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return detail, nil
}

func (s *orderAppImpl) publishEvent(orderID, customerID uint64, status constant.OrderStatus) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishOrderEvent(orderID, customerID, status); err != nil {
		logger.Error("[publishEvent] publish order event",
			zap.Uint64("order_id", orderID), zap.String("status", status.String()), zap.String("error", err.Error()))
	}
}
