package services

import (
	"testing"

	"foodhub/entity"
	"foodhub/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *fixture) seedCoupon(t *testing.T, code string, discount float64, active bool) *entity.Coupon {
	t.Helper()
	c := &entity.Coupon{Code: code, Discount: discount, Active: active}
	require.NoError(t, f.db.Create(c).Error)
	return c
}

func TestApplyCouponDiscountsTotal(t *testing.T) {
	f := newFixture(t)
	_, order := f.placeStandardOrder(t) // total 250
	f.seedCoupon(t, "SAVE10", 10, true)

	updated, err := f.coupons.Apply(order.ID, "SAVE10")
	require.NoError(t, err)
	assert.InDelta(t, 225.0, updated.TotalAmount, 1e-9)
	require.NotNil(t, updated.CouponCode)
	assert.Equal(t, "SAVE10", *updated.CouponCode)

	// The discounted total is persisted.
	stored, err := f.orders.Get(order.ID)
	require.NoError(t, err)
	assert.InDelta(t, 225.0, stored.TotalAmount, 1e-9)
}

func TestApplyCouponOnlyOnce(t *testing.T) {
	f := newFixture(t)
	_, order := f.placeStandardOrder(t)
	f.seedCoupon(t, "SAVE10", 10, true)
	f.seedCoupon(t, "SAVE20", 20, true)

	_, err := f.coupons.Apply(order.ID, "SAVE10")
	require.NoError(t, err)

	_, err = f.coupons.Apply(order.ID, "SAVE20")
	assert.True(t, apperr.IsInvalidState(err))

	stored, err := f.orders.Get(order.ID)
	require.NoError(t, err)
	assert.InDelta(t, 225.0, stored.TotalAmount, 1e-9)
}

func TestApplyCouponInactive(t *testing.T) {
	f := newFixture(t)
	_, order := f.placeStandardOrder(t)
	f.seedCoupon(t, "EXPIRED", 10, false)

	_, err := f.coupons.Apply(order.ID, "EXPIRED")
	assert.True(t, apperr.IsInvalidArgument(err))
}

func TestApplyCouponUnknownCode(t *testing.T) {
	f := newFixture(t)
	_, order := f.placeStandardOrder(t)

	_, err := f.coupons.Apply(order.ID, "NOPE")
	assert.True(t, apperr.IsNotFound(err))
}

func TestApplyCouponAfterPlacedRejected(t *testing.T) {
	f := newFixture(t)
	_, order := f.placeStandardOrder(t)
	f.seedCoupon(t, "SAVE10", 10, true)

	_, err := f.orders.UpdateStatus(order.ID, entity.StatusPreparing)
	require.NoError(t, err)

	_, err = f.coupons.Apply(order.ID, "SAVE10")
	assert.True(t, apperr.IsInvalidState(err))
}

func TestApplyCouponNeverGoesNegative(t *testing.T) {
	f := newFixture(t)
	_, order := f.placeStandardOrder(t)
	f.seedCoupon(t, "EVERYTHING", 150, true)

	updated, err := f.coupons.Apply(order.ID, "EVERYTHING")
	require.NoError(t, err)
	assert.InDelta(t, 0.0, updated.TotalAmount, 1e-9)
}

func TestCreateCouponRejectsDuplicateCode(t *testing.T) {
	f := newFixture(t)
	f.seedCoupon(t, "SAVE10", 10, true)

	_, err := f.coupons.Create(&CreateCouponIn{Code: "SAVE10", Discount: 15})
	assert.True(t, apperr.IsInvalidArgument(err))
}

func TestUpdateCoupon(t *testing.T) {
	f := newFixture(t)
	c := f.seedCoupon(t, "SAVE10", 10, true)

	discount := 25.0
	inactive := false
	updated, err := f.coupons.Update(c.ID, &UpdateCouponIn{Discount: &discount, Active: &inactive})
	require.NoError(t, err)
	assert.InDelta(t, 25.0, updated.Discount, 1e-9)
	assert.False(t, updated.Active)

	bad := -5.0
	_, err = f.coupons.Update(c.ID, &UpdateCouponIn{Discount: &bad})
	assert.True(t, apperr.IsInvalidArgument(err))
}
