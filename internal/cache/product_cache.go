package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/cart-it/internal/models"
)

func productKey(id uint) string {
	return fmt.Sprintf("catalog:product:%d", id)
}

// GetProduct 读取商品详情缓存
func GetProduct(ctx context.Context, id uint) (*models.Product, bool, error) {
	if id == 0 {
		return nil, false, nil
	}
	var product models.Product
	hit, err := GetJSON(ctx, productKey(id), &product)
	if err != nil || !hit {
		return nil, hit, err
	}
	return &product, true, nil
}

// SetProduct 写入商品详情缓存
func SetProduct(ctx context.Context, product *models.Product, ttl time.Duration) error {
	if product == nil || product.ID == 0 || ttl <= 0 {
		return nil
	}
	return SetJSON(ctx, productKey(product.ID), product, ttl)
}

// DelProduct 删除商品详情缓存
func DelProduct(ctx context.Context, id uint) error {
	if id == 0 {
		return nil
	}
	return Del(ctx, productKey(id))
}
