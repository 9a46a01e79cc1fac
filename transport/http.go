package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	catalogapp "github.com/GustavoWillian7/ecommerce-engine/application/catalog"
	customerapp "github.com/GustavoWillian7/ecommerce-engine/application/customer"
	deliveryapp "github.com/GustavoWillian7/ecommerce-engine/application/delivery"
	offerapp "github.com/GustavoWillian7/ecommerce-engine/application/offer"
	orderapp "github.com/GustavoWillian7/ecommerce-engine/application/order"
	paymentapp "github.com/GustavoWillian7/ecommerce-engine/application/payment"
	"github.com/GustavoWillian7/ecommerce-engine/constant"
	"github.com/GustavoWillian7/ecommerce-engine/utils/errors"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	CustomerApp customerapp.CustomerApp
	CatalogApp  catalogapp.CatalogApp
	OfferApp    offerapp.OfferApp
	OrderApp    orderapp.OrderApp
	PaymentApp  paymentapp.PaymentApp
	DeliveryApp deliveryapp.DeliveryApp
}

func NewTransport(rh *RestHandler, internalAPIKey string) http.Handler {
	router := mux.NewRouter()

	// Swagger UI and metrics
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	v1 := router.PathPrefix("/v1").Subrouter()

	// Customer Registry
	v1.HandleFunc("/customers/individual", rh.RegisterIndividual).Methods(http.MethodPost)
	v1.HandleFunc("/customers/organization", rh.RegisterOrganization).Methods(http.MethodPost)
	v1.HandleFunc("/customers/{id}", rh.GetCustomer).Methods(http.MethodGet)

	// Catalog & Inventory
	v1.HandleFunc("/products", rh.AddProduct).Methods(http.MethodPost)
	v1.HandleFunc("/products/{id}", rh.GetProduct).Methods(http.MethodGet)
	v1.HandleFunc("/products/{id}/stock", rh.TotalStock).Methods(http.MethodGet)
	v1.HandleFunc("/stock/adjust", rh.AdjustStock).Methods(http.MethodPost)
	v1.HandleFunc("/warehouses", rh.ListWarehouses).Methods(http.MethodGet)

	// Offer Ledger
	v1.HandleFunc("/vendors", rh.RegisterVendor).Methods(http.MethodPost)
	v1.HandleFunc("/offers", rh.CreateOffer).Methods(http.MethodPost)
	v1.HandleFunc("/offers/{id}", rh.GetOffer).Methods(http.MethodGet)
	v1.HandleFunc("/offers/{id}/quantity", rh.AdjustOfferQuantity).Methods(http.MethodPost)

	// Order Engine & Payment Reconciler
	v1.HandleFunc("/orders", rh.CreateOrder).Methods(http.MethodPost)
	v1.HandleFunc("/orders/{id}", rh.GetOrder).Methods(http.MethodGet)
	v1.HandleFunc("/orders/{id}/approve", rh.ApproveOrder).Methods(http.MethodPost)
	v1.HandleFunc("/orders/{id}/cancel", rh.CancelOrder).Methods(http.MethodPost)
	v1.HandleFunc("/orders/{id}/payments", rh.TotalAllocated).Methods(http.MethodGet)
	v1.HandleFunc("/orders/{id}/delivery", rh.GetDelivery).Methods(http.MethodGet)
	v1.HandleFunc("/payments", rh.AllocatePayment).Methods(http.MethodPost)
	v1.HandleFunc("/payment-methods", rh.ListPaymentMethods).Methods(http.MethodGet)

	// Internal lifecycle endpoints, called by warehouse/carrier integrations
	internal := router.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/orders/{id}/ship", rh.MarkShipped).Methods(http.MethodPost)
	internal.HandleFunc("/orders/{id}/deliver", rh.MarkDelivered).Methods(http.MethodPost)
	internal.HandleFunc("/orders/{id}/delivery/fail", rh.FailDelivery).Methods(http.MethodPost)

	// middleware
	router.Use(LoggingMiddleware())
	router.Use(MetricsMiddleware())

	return router
}

type baseResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(baseResponse{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

func writeError(w http.ResponseWriter, err error) {
	custom, ok := err.(errors.CustomError)
	if !ok {
		custom = errors.SetCustomError(constant.ErrInternal)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(custom.ErrorHTTPCode())
	_ = json.NewEncoder(w).Encode(baseResponse{
		Code:    custom.ErrorCode(),
		Message: custom.Error(),
	})
}

func pathID(r *http.Request) (uint64, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return id, nil
}
