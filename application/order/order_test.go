package order_test

import (
	"context"
	"errors"
	"testing"

	apporder "github.com/GustavoWillian7/ecommerce-engine/application/order"
	"github.com/GustavoWillian7/ecommerce-engine/constant"
	customermocks "github.com/GustavoWillian7/ecommerce-engine/mocks/repository/customer"
	deliverymocks "github.com/GustavoWillian7/ecommerce-engine/mocks/repository/delivery"
	offermocks "github.com/GustavoWillian7/ecommerce-engine/mocks/repository/offer"
	ordermocks "github.com/GustavoWillian7/ecommerce-engine/mocks/repository/order"
	paymentmocks "github.com/GustavoWillian7/ecommerce-engine/mocks/repository/payment"
	productmocks "github.com/GustavoWillian7/ecommerce-engine/mocks/repository/product"
	txmocks "github.com/GustavoWillian7/ecommerce-engine/mocks/repository/tx"
	"github.com/GustavoWillian7/ecommerce-engine/model"
	cerr "github.com/GustavoWillian7/ecommerce-engine/utils/errors"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// Note: order.go checks if publisher is nil before publishing, so tests pass nil.

type orderAppFields struct {
	txRepo       *txmocks.TxRepository
	orderRepo    *ordermocks.OrderRepository
	offerRepo    *offermocks.OfferRepository
	productRepo  *productmocks.ProductRepository
	customerRepo *customermocks.CustomerRepository
	paymentRepo  *paymentmocks.PaymentRepository
	deliveryRepo *deliverymocks.DeliveryRepository
}

func newOrderAppFields(t *testing.T) orderAppFields {
	return orderAppFields{
		txRepo:       txmocks.NewTxRepository(t),
		orderRepo:    ordermocks.NewOrderRepository(t),
		offerRepo:    offermocks.NewOfferRepository(t),
		productRepo:  productmocks.NewProductRepository(t),
		customerRepo: customermocks.NewCustomerRepository(t),
		paymentRepo:  paymentmocks.NewPaymentRepository(t),
		deliveryRepo: deliverymocks.NewDeliveryRepository(t),
	}
}

func newOrderApp(f orderAppFields) apporder.OrderApp {
	return apporder.NewOrderApp(f.txRepo, f.orderRepo, f.offerRepo, f.productRepo, f.customerRepo, f.paymentRepo, f.deliveryRepo, nil)
}

func assertErrCode(t *testing.T, err error, errCode constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[errCode] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[errCode])
	}
}

func TestOrderApp_CreateOrder(t *testing.T) {
	type args struct {
		ctx context.Context
		req *model.CreateOrderRequest
	}
	tests := []struct {
		name      string
		args      args
		mockCall  func(f orderAppFields)
		wantID    uint64
		wantTotal decimal.Decimal
		wantErr   bool
		errCode   constant.ErrorType
	}{
		{
			name: "success: two lines, prices snapshotted and stock drained",
			args: args{
				ctx: context.Background(),
				req: &model.CreateOrderRequest{
					CustomerID: 7,
					Lines: []model.OrderLineRequest{
						{OfferID: 10, Quantity: 3},
						{OfferID: 11, Quantity: 1},
					},
				},
			},
			mockCall: func(f orderAppFields) {
				tx := &sqlx.Tx{}
				f.customerRepo.On("GetByID", mock.Anything, uint64(7)).Return(&model.Customer{
					CustomerEntity: model.CustomerEntity{ID: 7, Kind: constant.CustomerKindIndividual},
				}, nil).Once()

				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.offerRepo.On("GetOffersForUpdateTx", mock.Anything, tx, []uint64{10, 11}).Return(map[uint64]model.OfferEntity{
					10: {ID: 10, ProductID: 5, VendorID: 2, Price: decimal.NewFromInt(20), Quantity: 50},
					11: {ID: 11, ProductID: 6, VendorID: 2, Price: decimal.RequireFromString("9.90"), Quantity: 1},
				}, nil).Once()

				f.orderRepo.On("InsertOrderTx", mock.Anything, tx, uint64(7)).Return(uint64(1), nil).Once()
				f.orderRepo.On("InsertOrderLinesTx", mock.Anything, tx, uint64(1), mock.MatchedBy(func(lines []model.OrderLine) bool {
					return len(lines) == 2 &&
						lines[0].OfferID == 10 && lines[0].UnitPrice.Equal(decimal.NewFromInt(20)) &&
						lines[1].OfferID == 11 && lines[1].UnitPrice.Equal(decimal.RequireFromString("9.90"))
				})).Return(nil).Once()

				f.offerRepo.On("DeductQuantityTx", mock.Anything, tx, uint64(10), int64(3)).Return(nil).Once()
				f.productRepo.On("GetStockForUpdateTx", mock.Anything, tx, uint64(5)).Return([]model.StockEntry{
					{ProductID: 5, WarehouseID: 1, Quantity: 2},
					{ProductID: 5, WarehouseID: 2, Quantity: 8},
				}, nil).Once()
				f.productRepo.On("DeductStockTx", mock.Anything, tx, uint64(5), uint64(2), int64(3)).Return(nil).Once()
				f.productRepo.On("RecordDeductionsTx", mock.Anything, tx, []model.StockDeduction{
					{OrderID: 1, ProductID: 5, WarehouseID: 2, Quantity: 3},
				}).Return(nil).Once()

				f.offerRepo.On("DeductQuantityTx", mock.Anything, tx, uint64(11), int64(1)).Return(nil).Once()
				f.productRepo.On("GetStockForUpdateTx", mock.Anything, tx, uint64(6)).Return([]model.StockEntry{
					{ProductID: 6, WarehouseID: 1, Quantity: 4},
				}, nil).Once()
				f.productRepo.On("DeductStockTx", mock.Anything, tx, uint64(6), uint64(1), int64(1)).Return(nil).Once()
				f.productRepo.On("RecordDeductionsTx", mock.Anything, tx, []model.StockDeduction{
					{OrderID: 1, ProductID: 6, WarehouseID: 1, Quantity: 1},
				}).Return(nil).Once()
			},
			wantID:    1,
			wantTotal: decimal.RequireFromString("69.90"),
			wantErr:   false,
		},
		{
			name: "error: empty lines",
			args: args{
				ctx: context.Background(),
				req: &model.CreateOrderRequest{CustomerID: 7, Lines: []model.OrderLineRequest{}},
			},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name: "error: non-positive quantity",
			args: args{
				ctx: context.Background(),
				req: &model.CreateOrderRequest{
					CustomerID: 7,
					Lines:      []model.OrderLineRequest{{OfferID: 10, Quantity: 0}},
				},
			},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrInvalidValue,
		},
		{
			name: "error: duplicate offer in one request",
			args: args{
				ctx: context.Background(),
				req: &model.CreateOrderRequest{
					CustomerID: 7,
					Lines: []model.OrderLineRequest{
						{OfferID: 10, Quantity: 1},
						{OfferID: 10, Quantity: 2},
					},
				},
			},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name: "error: customer not found",
			args: args{
				ctx: context.Background(),
				req: &model.CreateOrderRequest{
					CustomerID: 99,
					Lines:      []model.OrderLineRequest{{OfferID: 10, Quantity: 1}},
				},
			},
			mockCall: func(f orderAppFields) {
				f.customerRepo.On("GetByID", mock.Anything, uint64(99)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: offer not found",
			args: args{
				ctx: context.Background(),
				req: &model.CreateOrderRequest{
					CustomerID: 7,
					Lines:      []model.OrderLineRequest{{OfferID: 42, Quantity: 1}},
				},
			},
			mockCall: func(f orderAppFields) {
				tx := &sqlx.Tx{}
				f.customerRepo.On("GetByID", mock.Anything, uint64(7)).Return(&model.Customer{
					CustomerEntity: model.CustomerEntity{ID: 7},
				}, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.offerRepo.On("GetOffersForUpdateTx", mock.Anything, tx, []uint64{42}).Return(map[uint64]model.OfferEntity{}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: insufficient offer quantity before any write",
			args: args{
				ctx: context.Background(),
				req: &model.CreateOrderRequest{
					CustomerID: 7,
					Lines:      []model.OrderLineRequest{{OfferID: 10, Quantity: 6}},
				},
			},
			mockCall: func(f orderAppFields) {
				tx := &sqlx.Tx{}
				f.customerRepo.On("GetByID", mock.Anything, uint64(7)).Return(&model.Customer{
					CustomerEntity: model.CustomerEntity{ID: 7},
				}, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.offerRepo.On("GetOffersForUpdateTx", mock.Anything, tx, []uint64{10}).Return(map[uint64]model.OfferEntity{
					10: {ID: 10, ProductID: 5, Price: decimal.NewFromInt(20), Quantity: 5},
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInsufficientOfferStock,
		},
		{
			name: "error: warehouses cannot cover the line",
			args: args{
				ctx: context.Background(),
				req: &model.CreateOrderRequest{
					CustomerID: 7,
					Lines:      []model.OrderLineRequest{{OfferID: 10, Quantity: 4}},
				},
			},
			mockCall: func(f orderAppFields) {
				tx := &sqlx.Tx{}
				f.customerRepo.On("GetByID", mock.Anything, uint64(7)).Return(&model.Customer{
					CustomerEntity: model.CustomerEntity{ID: 7},
				}, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.offerRepo.On("GetOffersForUpdateTx", mock.Anything, tx, []uint64{10}).Return(map[uint64]model.OfferEntity{
					10: {ID: 10, ProductID: 5, Price: decimal.NewFromInt(20), Quantity: 50},
				}, nil).Once()
				f.orderRepo.On("InsertOrderTx", mock.Anything, tx, uint64(7)).Return(uint64(1), nil).Once()
				f.orderRepo.On("InsertOrderLinesTx", mock.Anything, tx, uint64(1), mock.Anything).Return(nil).Once()
				f.offerRepo.On("DeductQuantityTx", mock.Anything, tx, uint64(10), int64(4)).Return(nil).Once()
				f.productRepo.On("GetStockForUpdateTx", mock.Anything, tx, uint64(5)).Return([]model.StockEntry{
					{ProductID: 5, WarehouseID: 1, Quantity: 2},
					{ProductID: 5, WarehouseID: 2, Quantity: 1},
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInsufficientStock,
		},
		{
			name: "error: concurrent deduction loses the race",
			args: args{
				ctx: context.Background(),
				req: &model.CreateOrderRequest{
					CustomerID: 7,
					Lines:      []model.OrderLineRequest{{OfferID: 10, Quantity: 2}},
				},
			},
			mockCall: func(f orderAppFields) {
				tx := &sqlx.Tx{}
				f.customerRepo.On("GetByID", mock.Anything, uint64(7)).Return(&model.Customer{
					CustomerEntity: model.CustomerEntity{ID: 7},
				}, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.offerRepo.On("GetOffersForUpdateTx", mock.Anything, tx, []uint64{10}).Return(map[uint64]model.OfferEntity{
					10: {ID: 10, ProductID: 5, Price: decimal.NewFromInt(20), Quantity: 50},
				}, nil).Once()
				f.orderRepo.On("InsertOrderTx", mock.Anything, tx, uint64(7)).Return(uint64(1), nil).Once()
				f.orderRepo.On("InsertOrderLinesTx", mock.Anything, tx, uint64(1), mock.Anything).Return(nil).Once()
				f.offerRepo.On("DeductQuantityTx", mock.Anything, tx, uint64(10), int64(2)).
					Return(cerr.SetCustomError(constant.ErrInsufficientOfferStock)).Once()
			},
			wantErr: true,
			errCode: constant.ErrInsufficientOfferStock,
		},
		{
			name: "error: deadlock loser surfaces as retryable conflict",
			args: args{
				ctx: context.Background(),
				req: &model.CreateOrderRequest{
					CustomerID: 7,
					Lines:      []model.OrderLineRequest{{OfferID: 10, Quantity: 2}},
				},
			},
			mockCall: func(f orderAppFields) {
				tx := &sqlx.Tx{}
				f.customerRepo.On("GetByID", mock.Anything, uint64(7)).Return(&model.Customer{
					CustomerEntity: model.CustomerEntity{ID: 7},
				}, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.offerRepo.On("GetOffersForUpdateTx", mock.Anything, tx, []uint64{10}).Return(map[uint64]model.OfferEntity{
					10: {ID: 10, ProductID: 5, Price: decimal.NewFromInt(20), Quantity: 50},
				}, nil).Once()
				f.orderRepo.On("InsertOrderTx", mock.Anything, tx, uint64(7)).Return(uint64(1), nil).Once()
				f.orderRepo.On("InsertOrderLinesTx", mock.Anything, tx, uint64(1), mock.Anything).Return(nil).Once()
				f.offerRepo.On("DeductQuantityTx", mock.Anything, tx, uint64(10), int64(2)).Return(nil).Once()
				f.productRepo.On("GetStockForUpdateTx", mock.Anything, tx, uint64(5)).
					Return(nil, &mysql.MySQLError{Number: 1213, Message: "Deadlock found when trying to get lock"}).Once()
			},
			wantErr: true,
			errCode: constant.ErrConflict,
		},
		{
			name: "error: BeginTx returns error",
			args: args{
				ctx: context.Background(),
				req: &model.CreateOrderRequest{
					CustomerID: 7,
					Lines:      []model.OrderLineRequest{{OfferID: 10, Quantity: 1}},
				},
			},
			mockCall: func(f orderAppFields) {
				f.customerRepo.On("GetByID", mock.Anything, uint64(7)).Return(&model.Customer{
					CustomerEntity: model.CustomerEntity{ID: 7},
				}, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, errors.New("tx error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newOrderAppFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := newOrderApp(f)

			got, err := app.CreateOrder(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateOrder() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}

			if got.OrderID != tt.wantID {
				t.Fatalf("CreateOrder() OrderID = %v, want %v", got.OrderID, tt.wantID)
			}
			if got.Status != constant.OrderStatusProcessing.String() {
				t.Fatalf("CreateOrder() Status = %v, want %v", got.Status, constant.OrderStatusProcessing.String())
			}
			if !got.Total.Equal(tt.wantTotal) {
				t.Fatalf("CreateOrder() Total = %v, want %v", got.Total, tt.wantTotal)
			}
		})
	}
}

// Stock rows must be locked in ascending product id order regardless of how
// the request orders its lines, so concurrent orders over overlapping
// products acquire locks in one global order and cannot deadlock.
func TestOrderApp_CreateOrder_LocksStockInProductOrder(t *testing.T) {
	f := newOrderAppFields(t)
	tx := &sqlx.Tx{}

	f.customerRepo.On("GetByID", mock.Anything, uint64(7)).Return(&model.Customer{
		CustomerEntity: model.CustomerEntity{ID: 7},
	}, nil).Once()
	f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
	f.txRepo.On("CommitTx", tx).Return(nil).Once()

	// request lines reference product 9 before product 3
	f.offerRepo.On("GetOffersForUpdateTx", mock.Anything, tx, []uint64{21, 20}).Return(map[uint64]model.OfferEntity{
		20: {ID: 20, ProductID: 3, Price: decimal.NewFromInt(5), Quantity: 10},
		21: {ID: 21, ProductID: 9, Price: decimal.NewFromInt(7), Quantity: 10},
	}, nil).Once()
	f.orderRepo.On("InsertOrderTx", mock.Anything, tx, uint64(7)).Return(uint64(1), nil).Once()
	f.orderRepo.On("InsertOrderLinesTx", mock.Anything, tx, uint64(1), mock.Anything).Return(nil).Once()

	f.offerRepo.On("DeductQuantityTx", mock.Anything, tx, uint64(20), int64(1)).Return(nil).Once()
	f.offerRepo.On("DeductQuantityTx", mock.Anything, tx, uint64(21), int64(1)).Return(nil).Once()

	locked := make([]uint64, 0, 2)
	f.productRepo.On("GetStockForUpdateTx", mock.Anything, tx, uint64(3)).
		Run(func(args mock.Arguments) { locked = append(locked, 3) }).
		Return([]model.StockEntry{{ProductID: 3, WarehouseID: 1, Quantity: 10}}, nil).Once()
	f.productRepo.On("GetStockForUpdateTx", mock.Anything, tx, uint64(9)).
		Run(func(args mock.Arguments) { locked = append(locked, 9) }).
		Return([]model.StockEntry{{ProductID: 9, WarehouseID: 1, Quantity: 10}}, nil).Once()
	f.productRepo.On("DeductStockTx", mock.Anything, tx, uint64(3), uint64(1), int64(1)).Return(nil).Once()
	f.productRepo.On("DeductStockTx", mock.Anything, tx, uint64(9), uint64(1), int64(1)).Return(nil).Once()
	f.productRepo.On("RecordDeductionsTx", mock.Anything, tx, mock.Anything).Return(nil).Twice()

	app := newOrderApp(f)
	got, err := app.CreateOrder(context.Background(), &model.CreateOrderRequest{
		CustomerID: 7,
		Lines: []model.OrderLineRequest{
			{OfferID: 21, Quantity: 1},
			{OfferID: 20, Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("CreateOrder() error = %v", err)
	}
	if got.OrderID != 1 {
		t.Fatalf("CreateOrder() OrderID = %v, want 1", got.OrderID)
	}

	if len(locked) != 2 || locked[0] != 3 || locked[1] != 9 {
		t.Fatalf("stock lock order = %v, want [3 9]", locked)
	}
}

func TestOrderApp_ApproveOrder(t *testing.T) {
	tests := []struct {
		name     string
		orderID  uint64
		mockCall func(f orderAppFields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:    "success: allocations equal the total",
			orderID: 1,
			mockCall: func(f orderAppFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.OrderEntity{
					ID: 1, CustomerID: 7, Status: constant.OrderStatusProcessing,
				}, nil).Once()
				f.orderRepo.On("GetOrderTotalTx", mock.Anything, tx, uint64(1)).Return(decimal.RequireFromString("69.90"), nil).Once()
				f.paymentRepo.On("TotalAllocatedTx", mock.Anything, tx, uint64(1)).Return(decimal.RequireFromString("69.90"), nil).Once()
				f.orderRepo.On("UpdateOrderStatusTx", mock.Anything, tx, uint64(1), constant.OrderStatusApproved).Return(nil).Once()
				f.deliveryRepo.On("InsertDeliveryTx", mock.Anything, tx, uint64(1)).Return(uint64(3), nil).Once()
			},
			wantErr: false,
		},
		{
			name:    "error: order not found",
			orderID: 999,
			mockCall: func(f orderAppFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(999)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:    "error: order already shipped",
			orderID: 1,
			mockCall: func(f orderAppFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.OrderEntity{
					ID: 1, CustomerID: 7, Status: constant.OrderStatusShipped,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidTransition,
		},
		{
			name:    "error: partial allocation",
			orderID: 1,
			mockCall: func(f orderAppFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.OrderEntity{
					ID: 1, CustomerID: 7, Status: constant.OrderStatusProcessing,
				}, nil).Once()
				f.orderRepo.On("GetOrderTotalTx", mock.Anything, tx, uint64(1)).Return(decimal.RequireFromString("69.90"), nil).Once()
				f.paymentRepo.On("TotalAllocatedTx", mock.Anything, tx, uint64(1)).Return(decimal.RequireFromString("60.00"), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrPaymentIncomplete,
		},
		{
			name:    "error: over-allocation is also rejected",
			orderID: 1,
			mockCall: func(f orderAppFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.OrderEntity{
					ID: 1, CustomerID: 7, Status: constant.OrderStatusProcessing,
				}, nil).Once()
				f.orderRepo.On("GetOrderTotalTx", mock.Anything, tx, uint64(1)).Return(decimal.RequireFromString("69.90"), nil).Once()
				f.paymentRepo.On("TotalAllocatedTx", mock.Anything, tx, uint64(1)).Return(decimal.RequireFromString("70.00"), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrPaymentIncomplete,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newOrderAppFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := newOrderApp(f)

			err := app.ApproveOrder(context.Background(), tt.orderID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ApproveOrder() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
		})
	}
}

func TestOrderApp_CancelOrder(t *testing.T) {
	tests := []struct {
		name     string
		orderID  uint64
		mockCall func(f orderAppFields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:    "success: cancel processing order restores offers and stock",
			orderID: 1,
			mockCall: func(f orderAppFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.OrderEntity{
					ID: 1, CustomerID: 7, Status: constant.OrderStatusProcessing,
				}, nil).Once()
				f.orderRepo.On("GetOrderLinesTx", mock.Anything, tx, uint64(1)).Return([]model.OrderLine{
					{OrderID: 1, OfferID: 10, Quantity: 3, UnitPrice: decimal.NewFromInt(20)},
					{OrderID: 1, OfferID: 11, Quantity: 1, UnitPrice: decimal.RequireFromString("9.90")},
				}, nil).Once()
				f.offerRepo.On("RestoreQuantityTx", mock.Anything, tx, uint64(10), int64(3)).Return(nil).Once()
				f.offerRepo.On("RestoreQuantityTx", mock.Anything, tx, uint64(11), int64(1)).Return(nil).Once()
				f.productRepo.On("RestoreDeductionsTx", mock.Anything, tx, uint64(1)).Return(nil).Once()
				f.orderRepo.On("UpdateOrderStatusTx", mock.Anything, tx, uint64(1), constant.OrderStatusCancelled).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name:    "success: cancel approved order fails its preparing delivery",
			orderID: 2,
			mockCall: func(f orderAppFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(2)).Return(&model.OrderEntity{
					ID: 2, CustomerID: 7, Status: constant.OrderStatusApproved,
				}, nil).Once()
				f.orderRepo.On("GetOrderLinesTx", mock.Anything, tx, uint64(2)).Return([]model.OrderLine{
					{OrderID: 2, OfferID: 10, Quantity: 2, UnitPrice: decimal.NewFromInt(20)},
				}, nil).Once()
				f.offerRepo.On("RestoreQuantityTx", mock.Anything, tx, uint64(10), int64(2)).Return(nil).Once()
				f.productRepo.On("RestoreDeductionsTx", mock.Anything, tx, uint64(2)).Return(nil).Once()
				f.deliveryRepo.On("GetByOrderIDForUpdateTx", mock.Anything, tx, uint64(2)).Return(&model.DeliveryEntity{
					ID: 3, OrderID: 2, Status: constant.DeliveryStatusPreparing,
				}, nil).Once()
				f.deliveryRepo.On("UpdateStatusTx", mock.Anything, tx, uint64(3), constant.DeliveryStatusFailed, (*string)(nil)).Return(nil).Once()
				f.orderRepo.On("UpdateOrderStatusTx", mock.Anything, tx, uint64(2), constant.OrderStatusCancelled).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name:    "error: shipped order cannot be cancelled",
			orderID: 1,
			mockCall: func(f orderAppFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.OrderEntity{
					ID: 1, CustomerID: 7, Status: constant.OrderStatusShipped,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidTransition,
		},
		{
			name:    "error: cancelled order cannot be cancelled again",
			orderID: 1,
			mockCall: func(f orderAppFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.OrderEntity{
					ID: 1, CustomerID: 7, Status: constant.OrderStatusCancelled,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidTransition,
		},
		{
			name:    "error: RestoreDeductionsTx returns error",
			orderID: 1,
			mockCall: func(f orderAppFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.OrderEntity{
					ID: 1, CustomerID: 7, Status: constant.OrderStatusProcessing,
				}, nil).Once()
				f.orderRepo.On("GetOrderLinesTx", mock.Anything, tx, uint64(1)).Return([]model.OrderLine{
					{OrderID: 1, OfferID: 10, Quantity: 3, UnitPrice: decimal.NewFromInt(20)},
				}, nil).Once()
				f.offerRepo.On("RestoreQuantityTx", mock.Anything, tx, uint64(10), int64(3)).Return(nil).Once()
				f.productRepo.On("RestoreDeductionsTx", mock.Anything, tx, uint64(1)).Return(errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newOrderAppFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := newOrderApp(f)

			err := app.CancelOrder(context.Background(), tt.orderID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CancelOrder() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
		})
	}
}

func TestOrderApp_MarkShipped(t *testing.T) {
	tests := []struct {
		name     string
		orderID  uint64
		mockCall func(f orderAppFields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:    "success: tracking code assigned once",
			orderID: 1,
			mockCall: func(f orderAppFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.OrderEntity{
					ID: 1, CustomerID: 7, Status: constant.OrderStatusApproved,
				}, nil).Once()
				f.deliveryRepo.On("GetByOrderIDForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.DeliveryEntity{
					ID: 3, OrderID: 1, Status: constant.DeliveryStatusPreparing,
				}, nil).Once()
				f.deliveryRepo.On("UpdateStatusTx", mock.Anything, tx, uint64(3), constant.DeliveryStatusInTransit, mock.MatchedBy(func(code *string) bool {
					return code != nil && *code != ""
				})).Return(nil).Once()
				f.orderRepo.On("UpdateOrderStatusTx", mock.Anything, tx, uint64(1), constant.OrderStatusShipped).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name:    "error: processing order cannot ship",
			orderID: 1,
			mockCall: func(f orderAppFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.OrderEntity{
					ID: 1, CustomerID: 7, Status: constant.OrderStatusProcessing,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidTransition,
		},
		{
			name:    "error: delivery already carries a tracking code",
			orderID: 1,
			mockCall: func(f orderAppFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				code := "existing-code"
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.OrderEntity{
					ID: 1, CustomerID: 7, Status: constant.OrderStatusApproved,
				}, nil).Once()
				f.deliveryRepo.On("GetByOrderIDForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.DeliveryEntity{
					ID: 3, OrderID: 1, Status: constant.DeliveryStatusPreparing, TrackingCode: &code,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidTransition,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newOrderAppFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := newOrderApp(f)

			code, err := app.MarkShipped(context.Background(), tt.orderID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("MarkShipped() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if code == "" {
				t.Fatal("MarkShipped() tracking code should not be empty")
			}
		})
	}
}

func TestOrderApp_MarkDelivered(t *testing.T) {
	tests := []struct {
		name     string
		orderID  uint64
		mockCall func(f orderAppFields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:    "success: shipped order delivered",
			orderID: 1,
			mockCall: func(f orderAppFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				code := "code-1"
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.OrderEntity{
					ID: 1, CustomerID: 7, Status: constant.OrderStatusShipped,
				}, nil).Once()
				f.deliveryRepo.On("GetByOrderIDForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.DeliveryEntity{
					ID: 3, OrderID: 1, Status: constant.DeliveryStatusInTransit, TrackingCode: &code,
				}, nil).Once()
				f.deliveryRepo.On("UpdateStatusTx", mock.Anything, tx, uint64(3), constant.DeliveryStatusDelivered, (*string)(nil)).Return(nil).Once()
				f.orderRepo.On("UpdateOrderStatusTx", mock.Anything, tx, uint64(1), constant.OrderStatusDelivered).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name:    "error: approved order cannot be delivered",
			orderID: 1,
			mockCall: func(f orderAppFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.OrderEntity{
					ID: 1, CustomerID: 7, Status: constant.OrderStatusApproved,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidTransition,
		},
		{
			name:    "error: delivery still preparing",
			orderID: 1,
			mockCall: func(f orderAppFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.OrderEntity{
					ID: 1, CustomerID: 7, Status: constant.OrderStatusShipped,
				}, nil).Once()
				f.deliveryRepo.On("GetByOrderIDForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.DeliveryEntity{
					ID: 3, OrderID: 1, Status: constant.DeliveryStatusPreparing,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidTransition,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newOrderAppFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := newOrderApp(f)

			err := app.MarkDelivered(context.Background(), tt.orderID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("MarkDelivered() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
		})
	}
}
