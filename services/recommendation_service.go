package services

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"foodhub/entity"
	"foodhub/pkg/logger"
	"foodhub/repository"
)

const (
	recommendationTTL  = time.Hour
	minRecommendations = 5
	vegPreferenceShare = 0.7
)

// RecommendationCache is a best-effort key/value store for ranked menu-item
// id lists. Failures are logged, never surfaced to the caller.
type RecommendationCache interface {
	Get(ctx context.Context, key string) ([]uint, error)
	Set(ctx context.Context, key string, ids []uint, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Ranker is the external ranking service. Any error triggers the local
// fallback.
type Ranker interface {
	Rank(ctx context.Context, cuisines []string, orderHistory []uint) ([]uint, error)
}

type RecommendationService struct {
	UserRepo  *repository.UserRepository
	MenuRepo  *repository.MenuRepository
	OrderRepo *repository.OrderRepository

	Cache  RecommendationCache // optional
	Ranker Ranker              // optional
}

func NewRecommendationService(
	ur *repository.UserRepository,
	mr *repository.MenuRepository,
	or *repository.OrderRepository,
	cache RecommendationCache,
	ranker Ranker,
) *RecommendationService {
	return &RecommendationService{
		UserRepo:  ur,
		MenuRepo:  mr,
		OrderRepo: or,
		Cache:     cache,
		Ranker:    ranker,
	}
}

// GetRecommendations returns a ranked list of menu items for the user:
// cached result if present, otherwise external ranking with a local
// fallback (liked items, favorite cuisines, popular items).
func (s *RecommendationService) GetRecommendations(ctx context.Context, userID uint) ([]entity.MenuItem, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	cuisines, err := s.UserRepo.FavoriteCuisines(userID)
	if err != nil {
		return nil, err
	}

	key := cacheKey(userID, cuisines)
	if s.Cache != nil {
		ids, err := s.Cache.Get(ctx, key)
		if err != nil {
			logger.S().Warnw("recommendation cache read failed", "userId", userID, "err", err)
		} else if len(ids) > 0 {
			return s.fetchItems(ids), nil
		}
	}

	ids, err := s.recommendedIDs(ctx, user, cuisines)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil && len(ids) > 0 {
		if err := s.Cache.Set(ctx, key, ids, recommendationTTL); err != nil {
			logger.S().Warnw("recommendation cache write failed", "userId", userID, "err", err)
		}
	}

	return s.fetchItems(ids), nil
}

func (s *RecommendationService) recommendedIDs(ctx context.Context, user *entity.User, cuisines []string) ([]uint, error) {
	if s.Ranker != nil {
		history, err := s.orderHistory(user.ID)
		if err != nil {
			return nil, err
		}
		ids, err := s.Ranker.Rank(ctx, cuisines, history)
		if err != nil {
			logger.S().Warnw("ranking service unavailable, falling back",
				"userId", user.ID, "err", err)
		} else if len(ids) > 0 {
			return s.filterByPreference(user.ID, ids)
		}
	}
	return s.localRecommendations(user.ID, cuisines)
}

// localRecommendations builds a candidate list from liked items, favorite
// cuisines, and finally the most popular items when the list is short.
func (s *RecommendationService) localRecommendations(userID uint, cuisines []string) ([]uint, error) {
	var ids []uint
	seen := make(map[uint]bool)
	add := func(id uint) {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	liked, err := s.UserRepo.LikedMenuItems(userID)
	if err != nil {
		return nil, err
	}
	for _, item := range liked {
		add(item.ID)
	}

	if len(cuisines) > 0 {
		items, err := s.MenuRepo.ItemsByCuisines(cuisines)
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			add(item.ID)
		}
	}

	if len(ids) < minRecommendations {
		popular, err := s.MenuRepo.TopPopular(minRecommendations)
		if err != nil {
			return nil, err
		}
		for _, item := range popular {
			add(item.ID)
		}
	}

	return s.filterByPreference(userID, ids)
}

// filterByPreference drops items that contradict the user's inferred
// dietary preference. Without a clear preference the list passes through.
func (s *RecommendationService) filterByPreference(userID uint, ids []uint) ([]uint, error) {
	if len(ids) == 0 {
		return ids, nil
	}
	pref, err := s.inferDietaryPreference(userID)
	if err != nil {
		return nil, err
	}
	if pref == "" {
		return ids, nil
	}

	var out []uint
	for _, item := range s.fetchItems(ids) {
		if item.VegOrNonVeg == pref {
			out = append(out, item.ID)
		}
	}
	return out, nil
}

// inferDietaryPreference looks at the user's liked items: a strong veg
// majority means VEG, otherwise NON_VEG; no likes means no preference.
func (s *RecommendationService) inferDietaryPreference(userID uint) (string, error) {
	liked, err := s.UserRepo.LikedMenuItems(userID)
	if err != nil {
		return "", err
	}
	if len(liked) == 0 {
		return "", nil
	}

	var vegCount int
	for _, item := range liked {
		if item.VegOrNonVeg == entity.Veg {
			vegCount++
		}
	}
	if float64(vegCount)/float64(len(liked)) > vegPreferenceShare {
		return entity.Veg, nil
	}
	return entity.NonVeg, nil
}

// fetchItems resolves ids to menu items preserving rank order; unknown ids
// are skipped with a warning.
func (s *RecommendationService) fetchItems(ids []uint) []entity.MenuItem {
	if len(ids) == 0 {
		return nil
	}
	items, err := s.MenuRepo.ItemsByIDs(ids)
	if err != nil {
		logger.S().Warnw("menu item lookup failed", "err", err)
		return nil
	}
	byID := make(map[uint]entity.MenuItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	out := make([]entity.MenuItem, 0, len(ids))
	for _, id := range ids {
		if item, ok := byID[id]; ok {
			out = append(out, item)
		} else {
			logger.S().Warnw("recommended menu item missing", "menuItemId", id)
		}
	}
	return out
}

func (s *RecommendationService) orderHistory(userID uint) ([]uint, error) {
	orders, err := s.OrderRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	return ids, nil
}

// UpdatePreferences replaces the user's favorite cuisines and invalidates
// the stale cache entry; cache failures are logged and swallowed.
func (s *RecommendationService) UpdatePreferences(ctx context.Context, userID uint, cuisines []string) error {
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		return err
	}

	oldCuisines, err := s.UserRepo.FavoriteCuisines(userID)
	if err != nil {
		return err
	}

	if err := s.UserRepo.ReplaceFavoriteCuisines(userID, cuisines); err != nil {
		return err
	}

	if s.Cache != nil {
		if err := s.Cache.Delete(ctx, cacheKey(userID, oldCuisines)); err != nil {
			logger.S().Warnw("recommendation cache invalidation failed",
				"userId", userID, "err", err)
		}
	}
	return nil
}

// cacheKey embeds a hash of the preferences so a preference change misses
// the stale entry.
func cacheKey(userID uint, cuisines []string) string {
	h := fnv.New32a()
	h.Write([]byte(strings.Join(cuisines, ",")))
	return fmt.Sprintf("recommendations:%d:%d", userID, h.Sum32())
}
