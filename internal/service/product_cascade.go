package service

import (
	"context"

	"github.com/cart-it/internal/cache"
	"github.com/cart-it/internal/logger"
	"github.com/cart-it/internal/repository"

	"gorm.io/gorm"
)

// productCascade 删除商品及其全部依赖数据（购物车、库存、评价、订单、支付）
type productCascade struct {
	productRepo   repository.ProductRepository
	orderRepo     repository.OrderRepository
	paymentRepo   repository.PaymentRepository
	cartRepo      repository.CartRepository
	inventoryRepo repository.InventoryRepository
	reviewRepo    repository.ReviewRepository
}

func (c productCascade) purge(tx *gorm.DB, productIDs []uint) error {
	if len(productIDs) == 0 {
		return nil
	}
	orderIDs, err := c.orderRepo.WithTx(tx).ListIDsByProducts(productIDs)
	if err != nil {
		return err
	}
	if err := c.paymentRepo.WithTx(tx).DeleteByOrders(orderIDs); err != nil {
		return err
	}
	if err := c.orderRepo.WithTx(tx).DeleteByIDs(orderIDs); err != nil {
		return err
	}
	if err := c.cartRepo.WithTx(tx).DeleteByProducts(productIDs); err != nil {
		return err
	}
	if err := c.inventoryRepo.WithTx(tx).DeleteByProducts(productIDs); err != nil {
		return err
	}
	if err := c.reviewRepo.WithTx(tx).DeleteByProducts(productIDs); err != nil {
		return err
	}
	productRepo := c.productRepo.WithTx(tx)
	for _, id := range productIDs {
		if err := productRepo.Delete(id); err != nil {
			return err
		}
	}
	return nil
}

// evict 事务提交后清理商品缓存
func (c productCascade) evict(productIDs []uint) {
	for _, id := range productIDs {
		if err := cache.DelProduct(context.Background(), id); err != nil {
			logger.Warnw("product_cache_evict_failed", "product_id", id, "error", err)
		}
	}
}
