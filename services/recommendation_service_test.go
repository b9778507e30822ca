package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"foodhub/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCache struct {
	store   map[string][]uint
	deleted []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: map[string][]uint{}}
}

func (c *fakeCache) Get(_ context.Context, key string) ([]uint, error) {
	return c.store[key], nil
}

func (c *fakeCache) Set(_ context.Context, key string, ids []uint, _ time.Duration) error {
	c.store[key] = ids
	return nil
}

func (c *fakeCache) Delete(_ context.Context, key string) error {
	c.deleted = append(c.deleted, key)
	delete(c.store, key)
	return nil
}

type fakeRanker struct {
	ids []uint
	err error
}

func (r *fakeRanker) Rank(_ context.Context, _ []string, _ []uint) ([]uint, error) {
	return r.ids, r.err
}

func (f *fixture) recommender(cache RecommendationCache, ranker Ranker) *RecommendationService {
	return NewRecommendationService(f.userRepo, f.menuRepo, f.orderRepo, cache, ranker)
}

func TestRecommendationsCacheHit(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, entity.RoleCustomer)
	rest := f.seedRestaurant(t)
	menu := f.seedMenu(t, rest.ID)
	dosa := f.seedItem(t, menu.ID, "Dosa", 80, entity.Veg)

	cache := newFakeCache()
	cache.store[cacheKey(user.ID, nil)] = []uint{dosa.ID}
	// A ranker that would fail proves the cached path short-circuits.
	svc := f.recommender(cache, &fakeRanker{err: errors.New("down")})

	items, err := svc.GetRecommendations(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Dosa", items[0].Name)
}

func TestRecommendationsPreserveRankerOrder(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, entity.RoleCustomer)
	rest := f.seedRestaurant(t)
	menu := f.seedMenu(t, rest.ID)
	dosa := f.seedItem(t, menu.ID, "Dosa", 80, entity.Veg)
	biryani := f.seedItem(t, menu.ID, "Biryani", 120, entity.NonVeg)

	cache := newFakeCache()
	svc := f.recommender(cache, &fakeRanker{ids: []uint{biryani.ID, dosa.ID}})

	items, err := svc.GetRecommendations(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Biryani", items[0].Name)
	assert.Equal(t, "Dosa", items[1].Name)

	// The ranked list lands in the cache.
	assert.Equal(t, []uint{biryani.ID, dosa.ID}, cache.store[cacheKey(user.ID, nil)])
}

func TestRecommendationsFallBackWhenRankerFails(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, entity.RoleCustomer)
	rest := f.seedRestaurant(t)
	menu := f.seedMenu(t, rest.ID)
	for _, name := range []string{"Dosa", "Idli", "Vada", "Upma", "Poha"} {
		f.seedItem(t, menu.ID, name, 50, entity.Veg)
	}

	svc := f.recommender(nil, &fakeRanker{err: errors.New("down")})

	items, err := svc.GetRecommendations(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Len(t, items, 5) // popularity fill
}

func TestRecommendationsRespectVegPreference(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, entity.RoleCustomer)
	rest := f.seedRestaurant(t)
	menu := f.seedMenu(t, rest.ID)
	dosa := f.seedItem(t, menu.ID, "Dosa", 80, entity.Veg)
	idli := f.seedItem(t, menu.ID, "Idli", 60, entity.Veg)
	biryani := f.seedItem(t, menu.ID, "Biryani", 120, entity.NonVeg)

	require.NoError(t, f.users.LikeMenuItem(user.ID, dosa.ID))
	require.NoError(t, f.users.LikeMenuItem(user.ID, idli.ID))

	svc := f.recommender(nil, &fakeRanker{ids: []uint{biryani.ID, dosa.ID, idli.ID}})

	items, err := svc.GetRecommendations(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, item := range items {
		assert.Equal(t, entity.Veg, item.VegOrNonVeg)
	}
}

func TestUpdatePreferencesInvalidatesCache(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, entity.RoleCustomer)

	cache := newFakeCache()
	oldKey := cacheKey(user.ID, nil)
	cache.store[oldKey] = []uint{1, 2, 3}
	svc := f.recommender(cache, nil)

	err := svc.UpdatePreferences(context.Background(), user.ID, []string{"indian", "thai"})
	require.NoError(t, err)

	assert.Contains(t, cache.deleted, oldKey)

	cuisines, err := f.userRepo.FavoriteCuisines(user.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"indian", "thai"}, cuisines)
}

func TestCacheKeyChangesWithPreferences(t *testing.T) {
	a := cacheKey(7, []string{"indian"})
	b := cacheKey(7, []string{"thai"})
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, cacheKey(7, []string{"indian"}))
}
