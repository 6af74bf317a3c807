package search

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/mdshopp/storefront/internal/models"
)

// Memory matches every query term as a case-insensitive substring of the
// name or description. Name hits rank above description-only hits.
type Memory struct {
	mu       sync.RWMutex
	products map[int]models.Product
}

func NewMemory() *Memory {
	return &Memory{products: make(map[int]models.Product)}
}

func (m *Memory) IndexProduct(_ context.Context, p models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products[p.ID] = p
	return nil
}

func (m *Memory) DeleteProduct(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.products, id)
	return nil
}

func (m *Memory) Search(_ context.Context, query string, from, size int) (int64, []models.Product, error) {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return 0, []models.Product{}, nil
	}

	type hit struct {
		p     models.Product
		score int
	}

	m.mu.RLock()
	hits := make([]hit, 0)
	for _, p := range m.products {
		name := strings.ToLower(p.Name)
		desc := strings.ToLower(p.Description)
		score := 0
		for _, t := range terms {
			switch {
			case strings.Contains(name, t):
				score += 2
			case strings.Contains(desc, t):
				score++
			default:
				score = -1
			}
			if score < 0 {
				break
			}
		}
		if score > 0 {
			hits = append(hits, hit{p: p, score: score})
		}
	}
	m.mu.RUnlock()

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].p.ID < hits[j].p.ID
	})

	total := int64(len(hits))
	if from < 0 {
		from = 0
	}
	if from >= len(hits) {
		return total, []models.Product{}, nil
	}
	end := len(hits)
	if size > 0 && size < end-from {
		end = from + size
	}

	out := make([]models.Product, 0, end-from)
	for _, h := range hits[from:end] {
		out = append(out, h.p)
	}
	return total, out, nil
}
