package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/suar-net/food-relay/internal/model"
)

// CatalogService answers lookups against the mock food table. The table is
// built once and never written, so no locking is needed.
type CatalogService struct {
	foods []model.Food
	byID  map[string]model.Food
}

func NewCatalogService(foods []model.Food) *CatalogService {
	byID := make(map[string]model.Food, len(foods))
	for _, f := range foods {
		byID[f.FoodID] = f
	}
	return &CatalogService{
		foods: foods,
		byID:  byID,
	}
}

// Search returns every food whose description contains query, ignoring case,
// in table order.
func (s *CatalogService) Search(ctx context.Context, query string) ([]model.Food, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: query cannot be empty", ErrInvalidInput)
	}

	needle := strings.ToLower(query)
	var results []model.Food
	for _, f := range s.foods {
		if strings.Contains(strings.ToLower(f.GlutenFree.Description), needle) {
			results = append(results, f)
		}
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("%w: no food matches %q", ErrNotFound, query)
	}
	return results, nil
}

func (s *CatalogService) GetByID(ctx context.Context, id string) (*model.Food, error) {
	food, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: food %q", ErrNotFound, id)
	}
	return &food, nil
}
