// Package search indexes catalog products and answers free-text queries.
package search

import (
	"context"

	"github.com/mdshopp/storefront/internal/models"
)

type Index interface {
	IndexProduct(ctx context.Context, p models.Product) error
	DeleteProduct(ctx context.Context, id int) error
	Search(ctx context.Context, query string, from, size int) (int64, []models.Product, error)
}
