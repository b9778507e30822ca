package services

import (
	"testing"

	"foodhub/entity"
	"foodhub/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateCartMergesLines(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, entity.RoleCustomer)
	rest := f.seedRestaurant(t)
	menu := f.seedMenu(t, rest.ID)
	item := f.seedItem(t, menu.ID, "Dosa", 80, entity.Veg)

	_, err := f.carts.UpdateCart(user.ID, item.ID, 2)
	require.NoError(t, err)
	cart, err := f.carts.UpdateCart(user.ID, item.ID, 3)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.InDelta(t, 80.0, cart.Items[0].Price, 1e-9)
}

func TestUpdateCartSnapshotsPrice(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, entity.RoleCustomer)
	rest := f.seedRestaurant(t)
	menu := f.seedMenu(t, rest.ID)
	item := f.seedItem(t, menu.ID, "Dosa", 80, entity.Veg)

	_, err := f.carts.UpdateCart(user.ID, item.ID, 1)
	require.NoError(t, err)

	// A later menu price change does not rewrite the existing line.
	require.NoError(t, f.db.Model(&entity.MenuItem{}).
		Where("id = ?", item.ID).Update("price", 120).Error)

	cart, err := f.carts.Get(user.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.InDelta(t, 80.0, cart.Items[0].Price, 1e-9)
}

func TestUpdateCartRejectsBadQuantity(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, entity.RoleCustomer)

	_, err := f.carts.UpdateCart(user.ID, 1, 0)
	assert.True(t, apperr.IsInvalidArgument(err))

	_, err = f.carts.UpdateCart(user.ID, 1, -2)
	assert.True(t, apperr.IsInvalidArgument(err))
}

func TestUpdateCartUnknownItem(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, entity.RoleCustomer)

	_, err := f.carts.UpdateCart(user.ID, 999, 1)
	assert.True(t, apperr.IsNotFound(err))
}

func TestGetCartForFreshUserIsEmpty(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, entity.RoleCustomer)

	cart, err := f.carts.Get(user.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestClearCart(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, entity.RoleCustomer)
	rest := f.seedRestaurant(t)
	menu := f.seedMenu(t, rest.ID)
	item := f.seedItem(t, menu.ID, "Dosa", 80, entity.Veg)

	_, err := f.carts.UpdateCart(user.ID, item.ID, 2)
	require.NoError(t, err)

	require.NoError(t, f.carts.Clear(user.ID))

	cart, err := f.carts.Get(user.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}
