package main

import (
	"context"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	catalogapp "github.com/GustavoWillian7/ecommerce-engine/application/catalog"
	customerapp "github.com/GustavoWillian7/ecommerce-engine/application/customer"
	deliveryapp "github.com/GustavoWillian7/ecommerce-engine/application/delivery"
	offerapp "github.com/GustavoWillian7/ecommerce-engine/application/offer"
	orderapp "github.com/GustavoWillian7/ecommerce-engine/application/order"
	paymentapp "github.com/GustavoWillian7/ecommerce-engine/application/payment"
	"github.com/GustavoWillian7/ecommerce-engine/cmd/config"
	redisclient "github.com/GustavoWillian7/ecommerce-engine/cmd/redis"
	_ "github.com/GustavoWillian7/ecommerce-engine/docs"
	customerrepo "github.com/GustavoWillian7/ecommerce-engine/repository/customer"
	deliveryrepo "github.com/GustavoWillian7/ecommerce-engine/repository/delivery"
	offerrepo "github.com/GustavoWillian7/ecommerce-engine/repository/offer"
	orderrepo "github.com/GustavoWillian7/ecommerce-engine/repository/order"
	paymentrepo "github.com/GustavoWillian7/ecommerce-engine/repository/payment"
	productrepo "github.com/GustavoWillian7/ecommerce-engine/repository/product"
	redisrepo "github.com/GustavoWillian7/ecommerce-engine/repository/redis"
	txrepo "github.com/GustavoWillian7/ecommerce-engine/repository/tx"
	"github.com/GustavoWillian7/ecommerce-engine/thirdparty/rabbitmq"
	"github.com/GustavoWillian7/ecommerce-engine/transport"
	"github.com/GustavoWillian7/ecommerce-engine/utils/logger"
)

// @title E-COMMERCE ORDER ENGINE API
// @version 1.0
// @description Order, inventory, offer, payment and delivery integrity core
// @host localhost:8080
// @BasePath /
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if cfg.Redis.Enabled {
		if err := redisclient.New(cfg); err != nil {
			logger.Fatal("err connect redis", zap.Error(err))
		}
		defer func() {
			_ = redisclient.Close()
		}()
	}

	// RabbitMQ is optional: order events are best-effort notifications
	var publisher *rabbitmq.Publisher
	if cfg.RabbitMQ.Enabled {
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Error("err connect rabbitmq, events disabled", zap.Error(err))
			publisher = nil
		} else {
			defer func() {
				_ = publisher.Close()
			}()
		}
	}

	// Initialize repositories
	TxRepo := txrepo.NewTxRepository(db)
	CustomerRepo := customerrepo.NewCustomerRepository(db)
	ProductRepo := productrepo.NewProductRepository(db)
	OfferRepo := offerrepo.NewOfferRepository(db)
	OrderRepo := orderrepo.NewOrderRepository(db)
	PaymentRepo := paymentrepo.NewPaymentRepository(db)
	DeliveryRepo := deliveryrepo.NewDeliveryRepository(db)
	RedisRepo := redisrepo.NewRepository()

	// Initialize application layers
	CustomerApp := customerapp.NewCustomerApp(CustomerRepo)
	CatalogApp := catalogapp.NewCatalogApp(ProductRepo, RedisRepo)
	OfferApp := offerapp.NewOfferApp(OfferRepo, ProductRepo)
	OrderApp := orderapp.NewOrderApp(TxRepo, OrderRepo, OfferRepo, ProductRepo, CustomerRepo, PaymentRepo, DeliveryRepo, publisher)
	PaymentApp := paymentapp.NewPaymentApp(TxRepo, PaymentRepo, OrderRepo)
	DeliveryApp := deliveryapp.NewDeliveryApp(TxRepo, DeliveryRepo)

	// The payment method catalog is fixed for the life of the process
	if err := PaymentApp.LoadMethods(context.Background()); err != nil {
		logger.Fatal("err load payment methods", zap.Error(err))
	}

	httpTransport := transport.NewTransport(&transport.RestHandler{
		CustomerApp: CustomerApp,
		CatalogApp:  CatalogApp,
		OfferApp:    OfferApp,
		OrderApp:    OrderApp,
		PaymentApp:  PaymentApp,
		DeliveryApp: DeliveryApp,
	}, cfg.Server.InternalAPIKey)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
