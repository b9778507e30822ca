package services

import (
	"testing"

	"foodhub/entity"
	"foodhub/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Full checkout walkthrough: a 250 order with a 10% coupon bills at 236.25
// (225 + 5% GST) and only that amount is accepted as payment.
func TestBillAndPaymentFlow(t *testing.T) {
	f := newFixture(t)
	_, order := f.placeStandardOrder(t)
	f.seedCoupon(t, "SAVE10", 10, true)

	_, err := f.coupons.Apply(order.ID, "SAVE10")
	require.NoError(t, err)

	bill, err := f.orders.GetBill(order.ID)
	require.NoError(t, err)
	assert.InDelta(t, 250.0, bill.Subtotal, 1e-9)
	assert.InDelta(t, 25.0, bill.Discount, 1e-9)
	assert.InDelta(t, 5.625, bill.CGST, 1e-9)
	assert.InDelta(t, 5.625, bill.SGST, 1e-9)
	assert.InDelta(t, 11.25, bill.Tax, 1e-9)
	assert.InDelta(t, 236.25, bill.Total, 1e-9)

	payment, err := f.payments.Record(order.ID, 236.25, "card")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentSuccess, payment.Status)
	assert.NotEmpty(t, payment.Reference)

	ok, err := f.payments.Validate(order.ID, 236.25)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.payments.Validate(order.ID, 200)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRecordPaymentWrongAmountLeavesNoRecord(t *testing.T) {
	f := newFixture(t)
	_, order := f.placeStandardOrder(t)
	f.seedCoupon(t, "SAVE10", 10, true)

	_, err := f.coupons.Apply(order.ID, "SAVE10")
	require.NoError(t, err)

	_, err = f.payments.Record(order.ID, 230, "card")
	assert.True(t, apperr.IsInvalidArgument(err))

	exists, err := f.paymentRepo.ExistsForOrder(order.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRecordPaymentWithinTolerance(t *testing.T) {
	f := newFixture(t)
	_, order := f.placeStandardOrder(t) // bill total 262.50 without coupon

	payment, err := f.payments.Record(order.ID, 262.505, "upi")
	require.NoError(t, err)
	assert.InDelta(t, 262.505, payment.Amount, 1e-9)
}

func TestRecordPaymentOnlyOnce(t *testing.T) {
	f := newFixture(t)
	_, order := f.placeStandardOrder(t)

	_, err := f.payments.Record(order.ID, 262.50, "card")
	require.NoError(t, err)

	_, err = f.payments.Record(order.ID, 262.50, "card")
	assert.True(t, apperr.IsInvalidState(err))
}

func TestRecordPaymentUnknownOrder(t *testing.T) {
	f := newFixture(t)

	_, err := f.payments.Record(999, 100, "card")
	assert.True(t, apperr.IsNotFound(err))
}

func TestRecordPaymentRejectsNonPositiveAmount(t *testing.T) {
	f := newFixture(t)
	_, order := f.placeStandardOrder(t)

	_, err := f.payments.Record(order.ID, 0, "card")
	assert.True(t, apperr.IsInvalidArgument(err))
}

func TestBillWithoutCoupon(t *testing.T) {
	f := newFixture(t)
	_, order := f.placeStandardOrder(t)

	bill, err := f.orders.GetBill(order.ID)
	require.NoError(t, err)
	assert.InDelta(t, 250.0, bill.Subtotal, 1e-9)
	assert.InDelta(t, 0.0, bill.Discount, 1e-9)
	assert.InDelta(t, 262.50, bill.Total, 1e-9)
}
