package services

import (
	"testing"

	"foodhub/entity"
	"foodhub/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *fixture) seedLocatedUser(t *testing.T, lat, lon float64) *entity.User {
	t.Helper()
	u := f.seedUser(t, entity.RoleCustomer)
	u.Latitude = &lat
	u.Longitude = &lon
	require.NoError(t, f.db.Save(u).Error)
	return u
}

func (f *fixture) seedLocatedRestaurant(t *testing.T, name string, rating, lat, lon float64) *entity.Restaurant {
	t.Helper()
	owner := f.seedUser(t, entity.RoleOwner)
	r := &entity.Restaurant{
		Name: name, Address: "somewhere", Rating: rating,
		Latitude: lat, Longitude: lon, OwnerID: owner.ID,
	}
	require.NoError(t, f.db.Create(r).Error)
	return r
}

func TestNearbyFiltersByDistanceAndRating(t *testing.T) {
	f := newFixture(t)
	user := f.seedLocatedUser(t, 12.9700, 77.5900)

	f.seedLocatedRestaurant(t, "Close & Good", 4.5, 12.9710, 77.5910)
	f.seedLocatedRestaurant(t, "Close & Bad", 3.0, 12.9705, 77.5905)
	// Roughly 111 km north.
	f.seedLocatedRestaurant(t, "Far & Good", 4.8, 13.9700, 77.5900)

	out, err := f.rests.Nearby(user.ID, 4.0, 5)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Close & Good", out[0].Name)
}

func TestNearbyWithoutUserLocation(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, entity.RoleCustomer)

	_, err := f.rests.Nearby(user.ID, 4.0, 5)
	assert.True(t, apperr.IsInvalidArgument(err))
}

func TestNearbyValidatesInputs(t *testing.T) {
	f := newFixture(t)
	user := f.seedLocatedUser(t, 12.97, 77.59)

	_, err := f.rests.Nearby(user.ID, 6.0, 5)
	assert.True(t, apperr.IsInvalidArgument(err))

	_, err = f.rests.Nearby(user.ID, 4.0, 0)
	assert.True(t, apperr.IsInvalidArgument(err))
}

func TestCreateRestaurantRequiresOwnerRole(t *testing.T) {
	f := newFixture(t)
	customer := f.seedUser(t, entity.RoleCustomer)

	_, err := f.rests.Create(&CreateRestaurantIn{
		Name: "Nope", Address: "x", OwnerID: customer.ID,
	})
	assert.True(t, apperr.IsInvalidArgument(err))
}

func TestCreateRestaurant(t *testing.T) {
	f := newFixture(t)
	owner := f.seedUser(t, entity.RoleOwner)

	rest, err := f.rests.Create(&CreateRestaurantIn{
		Name: "Udupi Palace", Address: "MG Road", Rating: 4.1, OwnerID: owner.ID,
	})
	require.NoError(t, err)
	assert.NotZero(t, rest.ID)

	got, err := f.rests.Get(rest.ID)
	require.NoError(t, err)
	assert.Equal(t, "Udupi Palace", got.Name)
}
