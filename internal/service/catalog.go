package service

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/mdshopp/storefront/internal/models"
	"github.com/mdshopp/storefront/internal/repo"
	"github.com/mdshopp/storefront/internal/search"
	"github.com/mdshopp/storefront/internal/transport"
	"github.com/mdshopp/storefront/pkg/events"
	"github.com/mdshopp/storefront/pkg/logging"
)

const (
	defaultRating  = 4.5
	defaultReviews = 0
)

type CatalogService struct {
	Repo   *repo.CatalogRepo
	Search search.Index
	Events events.Publisher
}

func (s *CatalogService) Categories() []string {
	return slices.Clone(repo.Categories)
}

func (s *CatalogService) GetProduct(ctx context.Context, id int) (models.Product, error) {
	p, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		return models.Product{}, notFound(err, "product "+strconv.Itoa(id))
	}
	return p, nil
}

func (s *CatalogService) GetProducts(ctx context.Context, category string, offset, limit int) (int64, []models.Product) {
	return s.Repo.GetProducts(ctx, category, offset, limit)
}

func (s *CatalogService) SearchProducts(ctx context.Context, q string, offset, limit int) (int64, []models.Product, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return 0, nil, fmt.Errorf("%w: query is empty", ErrValidation)
	}
	return s.Search.Search(ctx, q, offset, limit)
}

func validateForm(req transport.ProductForm) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if req.Price < 0 {
		return fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}
	if req.OriginalPrice != nil && *req.OriginalPrice < 0 {
		return fmt.Errorf("%w: original price cannot be negative", ErrValidation)
	}
	return nil
}

// an original price of 0 means the product is not discounted
func originalPrice(v *int64) *int64 {
	if v == nil || *v == 0 {
		return nil
	}
	cp := *v
	return &cp
}

// CreateProduct adds a product with fresh rating, no reviews and in stock.
func (s *CatalogService) CreateProduct(ctx context.Context, req transport.ProductForm) (models.Product, error) {
	if err := validateForm(req); err != nil {
		return models.Product{}, err
	}

	p := s.Repo.CreateProduct(ctx, models.Product{
		Name:          strings.TrimSpace(req.Name),
		Price:         req.Price,
		OriginalPrice: originalPrice(req.OriginalPrice),
		Image:         req.Image,
		Category:      req.Category,
		Rating:        defaultRating,
		Reviews:       defaultReviews,
		Description:   req.Description,
		InStock:       true,
	})

	s.index(ctx, p)
	publish(ctx, s.Events, events.TopicProducts, strconv.Itoa(p.ID), map[string]any{
		"type":      "product_created",
		"productID": p.ID,
		"name":      p.Name,
		"price":     p.Price,
	})
	return p, nil
}

// UpdateProduct replaces the editable fields. Rating, reviews and stock
// status are kept.
func (s *CatalogService) UpdateProduct(ctx context.Context, id int, req transport.ProductForm) (models.Product, error) {
	if err := validateForm(req); err != nil {
		return models.Product{}, err
	}

	p, err := s.Repo.PatchProduct(ctx, id, func(p *models.Product) {
		p.Name = strings.TrimSpace(req.Name)
		p.Price = req.Price
		p.OriginalPrice = originalPrice(req.OriginalPrice)
		p.Category = req.Category
		p.Description = req.Description
		p.Image = req.Image
	})
	if err != nil {
		return models.Product{}, notFound(err, "product "+strconv.Itoa(id))
	}

	s.index(ctx, p)
	publish(ctx, s.Events, events.TopicProducts, strconv.Itoa(p.ID), map[string]any{
		"type":      "product_updated",
		"productID": p.ID,
		"name":      p.Name,
		"price":     p.Price,
	})
	return p, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id int) error {
	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		return notFound(err, "product "+strconv.Itoa(id))
	}

	if s.Search != nil {
		if err := s.Search.DeleteProduct(ctx, id); err != nil {
			logging.FromContext(ctx).Warn("search_unindex_failed", "product_id", id, "error", err)
		}
	}
	publish(ctx, s.Events, events.TopicProducts, strconv.Itoa(id), map[string]any{
		"type":      "product_deleted",
		"productID": id,
	})
	return nil
}

// Reindex pushes the whole catalog into the search index.
func (s *CatalogService) Reindex(ctx context.Context) error {
	for _, p := range s.Repo.All(ctx) {
		if err := s.Search.IndexProduct(ctx, p); err != nil {
			return fmt.Errorf("index product %d: %w", p.ID, err)
		}
	}
	return nil
}

func (s *CatalogService) index(ctx context.Context, p models.Product) {
	if s.Search == nil {
		return
	}
	if err := s.Search.IndexProduct(ctx, p); err != nil {
		logging.FromContext(ctx).Warn("search_index_failed", "product_id", p.ID, "error", err)
	}
}
