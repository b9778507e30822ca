package services

import (
	"testing"

	"foodhub/entity"
	"foodhub/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *fixture) assignedDelivery(t *testing.T) (*entity.User, *entity.Delivery) {
	t.Helper()
	_, order := f.placeStandardOrder(t)
	rider := f.seedUser(t, entity.RoleRider)

	_, err := f.orders.AssignDelivery(order.ID, rider.ID)
	require.NoError(t, err)

	delivery, err := f.deliveries.GetByOrder(order.ID)
	require.NoError(t, err)
	return rider, delivery
}

func TestCompleteDelivery(t *testing.T) {
	f := newFixture(t)
	_, delivery := f.assignedDelivery(t)

	rating := 4.5
	done, err := f.deliveries.Complete(delivery.ID, &CompleteDeliveryIn{
		Feedback: "on time",
		Rating:   &rating,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DeliveryCompleted, done.Status)
	require.NotNil(t, done.DeliveryTime)
	assert.Equal(t, "on time", done.Feedback)
	require.NotNil(t, done.Rating)
	assert.InDelta(t, 4.5, *done.Rating, 1e-9)
}

func TestCompleteDeliveryOnlyOnce(t *testing.T) {
	f := newFixture(t)
	_, delivery := f.assignedDelivery(t)

	_, err := f.deliveries.Complete(delivery.ID, &CompleteDeliveryIn{})
	require.NoError(t, err)

	_, err = f.deliveries.Complete(delivery.ID, &CompleteDeliveryIn{})
	assert.True(t, apperr.IsInvalidState(err))
}

func TestCompleteDeliveryRatingBounds(t *testing.T) {
	f := newFixture(t)
	_, delivery := f.assignedDelivery(t)

	bad := 7.0
	_, err := f.deliveries.Complete(delivery.ID, &CompleteDeliveryIn{Rating: &bad})
	assert.True(t, apperr.IsInvalidArgument(err))
}

func TestListByRider(t *testing.T) {
	f := newFixture(t)
	rider, _ := f.assignedDelivery(t)

	out, err := f.deliveries.ListByRider(rider.ID)
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestListByRiderRejectsOtherRoles(t *testing.T) {
	f := newFixture(t)
	customer := f.seedUser(t, entity.RoleCustomer)

	_, err := f.deliveries.ListByRider(customer.ID)
	assert.True(t, apperr.IsInvalidArgument(err))
}
