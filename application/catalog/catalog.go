package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/GustavoWillian7/ecommerce-engine/constant"
	"github.com/GustavoWillian7/ecommerce-engine/model"
	productrepo "github.com/GustavoWillian7/ecommerce-engine/repository/product"
	redisrepo "github.com/GustavoWillian7/ecommerce-engine/repository/redis"
	"github.com/GustavoWillian7/ecommerce-engine/utils/errors"
	"github.com/GustavoWillian7/ecommerce-engine/utils/logger"
	"go.uber.org/zap"
)

const productCacheTTL = 10 * time.Minute

type CatalogApp interface {
	AddProduct(ctx context.Context, req *model.AddProductRequest) (*model.AddProductResponse, error)
	GetProduct(ctx context.Context, id uint64) (*model.ProductEntity, error)
	AdjustStock(ctx context.Context, req *model.AdjustStockRequest) error
	TotalStock(ctx context.Context, productID uint64) (*model.TotalStockResponse, error)
	ListWarehouses(ctx context.Context) ([]model.WarehouseEntity, error)
}

type catalogAppImpl struct {
	productRepo productrepo.ProductRepository
	redisRepo   redisrepo.Repository
}

func NewCatalogApp(productRepo productrepo.ProductRepository, redisRepo redisrepo.Repository) CatalogApp {
	return &catalogAppImpl{productRepo: productRepo, redisRepo: redisRepo}
}

func (s *catalogAppImpl) AddProduct(ctx context.Context, req *model.AddProductRequest) (*model.AddProductResponse, error) {
	if !req.BaseValue.IsPositive() {
		return nil, errors.SetCustomError(constant.ErrInvalidValue)
	}

	entity := &model.ProductEntity{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		BaseValue:   req.BaseValue,
	}

	id, err := s.productRepo.CreateProduct(ctx, entity)
	if err != nil {
		logger.Error("[AddProduct] create product", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.AddProductResponse{ProductID: id}, nil
}

// GetProduct serves from the Redis cache when possible. Product attributes
// are immutable after creation, so cached entries can never be stale.
func (s *catalogAppImpl) GetProduct(ctx context.Context, id uint64) (*model.ProductEntity, error) {
	key := productCacheKey(id)
	if cached, err := s.redisRepo.Get(ctx, key); err == nil && cached != "" {
		var entity model.ProductEntity
		if err := json.Unmarshal([]byte(cached), &entity); err == nil {
			return &entity, nil
		}
	}

	entity, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		logger.Error("[GetProduct] get product", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if encoded, err := json.Marshal(entity); err == nil {
		if err := s.redisRepo.SetWithTTL(ctx, key, string(encoded), productCacheTTL); err != nil {
			logger.Warn("[GetProduct] cache product", zap.String("error", err.Error()))
		}
	}

	return entity, nil
}

func (s *catalogAppImpl) AdjustStock(ctx context.Context, req *model.AdjustStockRequest) error {
	product, err := s.productRepo.GetProductByID(ctx, req.ProductID)
	if err != nil {
		logger.Error("[AdjustStock] get product", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if product == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	warehouse, err := s.productRepo.GetWarehouseByID(ctx, req.WarehouseID)
	if err != nil {
		logger.Error("[AdjustStock] get warehouse", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if warehouse == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.productRepo.AdjustStock(ctx, req.ProductID, req.WarehouseID, req.Delta); err != nil {
		if errors.Is(err, constant.ErrInsufficientStock) {
			return errors.SetCustomError(constant.ErrInsufficientStock)
		}
		logger.Error("[AdjustStock] adjust stock", zap.Uint64("product_id", req.ProductID), zap.Int64("delta", req.Delta), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *catalogAppImpl) TotalStock(ctx context.Context, productID uint64) (*model.TotalStockResponse, error) {
	product, err := s.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		logger.Error("[TotalStock] get product", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if product == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	total, err := s.productRepo.TotalStock(ctx, productID)
	if err != nil {
		logger.Error("[TotalStock] sum stock", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.TotalStockResponse{ProductID: productID, Total: total}, nil
}

func (s *catalogAppImpl) ListWarehouses(ctx context.Context) ([]model.WarehouseEntity, error) {
	warehouses, err := s.productRepo.ListWarehouses(ctx)
	if err != nil {
		logger.Error("[ListWarehouses] list warehouses", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return warehouses, nil
}

func productCacheKey(id uint64) string {
	return fmt.Sprintf("product:%d", id)
}
