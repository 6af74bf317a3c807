package models

import "math"

// CategoryAll is the filter sentinel that matches every product.
const CategoryAll = "all"

type Product struct {
	ID            int     `json:"id"            yaml:"id"`
	Name          string  `json:"name"          yaml:"name"`
	Price         int64   `json:"price"         yaml:"price"`
	OriginalPrice *int64  `json:"originalPrice,omitempty" yaml:"originalPrice,omitempty"`
	Image         string  `json:"image"         yaml:"image"`
	Category      string  `json:"category"      yaml:"category"`
	Rating        float64 `json:"rating"        yaml:"rating"`
	Reviews       int     `json:"reviews"       yaml:"reviews"`
	Description   string  `json:"description"   yaml:"description"`
	InStock       bool    `json:"inStock"       yaml:"inStock"`
}

// DiscountPercent is round((original - price) / original * 100), or 0 when
// there is no original price.
func (p Product) DiscountPercent() int {
	if p.OriginalPrice == nil || *p.OriginalPrice <= 0 {
		return 0
	}
	orig := float64(*p.OriginalPrice)
	return int(math.Round((orig - float64(p.Price)) / orig * 100))
}

// ProductView is what the storefront renders: the product plus its derived discount.
type ProductView struct {
	Product
	Discount int `json:"discount"`
}

func (p Product) View() ProductView {
	return ProductView{Product: p, Discount: p.DiscountPercent()}
}

func Views(ps []Product) []ProductView {
	out := make([]ProductView, len(ps))
	for i, p := range ps {
		out[i] = p.View()
	}
	return out
}
