package service

import (
	"fmt"

	"github.com/cart-it/internal/constants"
	"github.com/cart-it/internal/models"
)

// OrderTotalMismatchError 客户端总额与单价 × 数量不一致
type OrderTotalMismatchError struct {
	Expected models.Money
	Given    models.Money
}

func (e *OrderTotalMismatchError) Error() string {
	return fmt.Sprintf("order total %s does not match price times quantity %s", e.Given, e.Expected)
}

// Is 使 errors.Is(err, ErrOrderTotalMismatch) 成立
func (e *OrderTotalMismatchError) Is(target error) bool {
	return target == ErrOrderTotalMismatch
}

func normalizeOrderStatus(raw string) (string, error) {
	if raw == "" {
		return "", nil
	}
	if !constants.Contains(constants.OrderStatuses, raw) {
		return "", ErrOrderStatusInvalid
	}
	return raw, nil
}

// priceOrder 以商品当前单价为准计算总额，客户端给出的非零总额必须一致
func priceOrder(unitPrice models.Money, quantity int, givenTotal models.Money) (models.Money, error) {
	expected := unitPrice.MulInt(quantity)
	if !givenTotal.IsZero() && !givenTotal.Equal(expected) {
		return models.Money{}, &OrderTotalMismatchError{Expected: expected, Given: givenTotal}
	}
	return expected, nil
}
