package repo

import "github.com/mdshopp/storefront/internal/models"

// Categories is the product category list offered by the catalog filter.
var Categories = []string{
	"Électronique",
	"Mode",
	"Maison",
	"Sport",
	"Beauté",
	"Livres",
	"Jouets",
}

func price(v int64) *int64 { return &v }

// SeedProducts returns a fresh copy of the sample catalog.
func SeedProducts() []models.Product {
	return []models.Product{
		{
			ID:            1,
			Name:          "Smartphone Samsung Galaxy A54",
			Price:         285000,
			OriginalPrice: price(320000),
			Image:         "https://images.unsplash.com/photo-1721322800607-8c38375eef04?w=300&h=300&fit=crop",
			Category:      "Électronique",
			Rating:        4.5,
			Reviews:       128,
			Description:   "Smartphone avec écran AMOLED 6.4\", appareil photo 50MP et batterie longue durée.",
			InStock:       true,
		},
		{
			ID:            2,
			Name:          "Robe Élégante Africaine",
			Price:         45000,
			OriginalPrice: price(65000),
			Image:         "https://images.unsplash.com/photo-1582562124811-c09040d0a901?w=300&h=300&fit=crop",
			Category:      "Mode",
			Rating:        4.8,
			Reviews:       89,
			Description:   "Robe traditionnelle africaine en tissu wax de haute qualité, parfaite pour les occasions spéciales.",
			InStock:       true,
		},
		{
			ID:            3,
			Name:          "Casque Audio Bluetooth Premium",
			Price:         125000,
			OriginalPrice: price(150000),
			Image:         "https://images.unsplash.com/photo-1535268647677-300dbf3d78d1?w=300&h=300&fit=crop",
			Category:      "Électronique",
			Rating:        4.6,
			Reviews:       245,
			Description:   "Casque sans fil avec réduction de bruit active et autonomie de 30 heures.",
			InStock:       true,
		},
		{
			ID:          4,
			Name:        "Ensemble de Cuisine en Inox",
			Price:       85000,
			Image:       "https://images.unsplash.com/photo-1618160702438-9b02ab6515c9?w=300&h=300&fit=crop",
			Category:    "Maison",
			Rating:      4.3,
			Reviews:     67,
			Description: "Set complet de casseroles et poêles en acier inoxydable de qualité professionnelle.",
			InStock:     true,
		},
		{
			ID:            5,
			Name:          "Montre Connectée Sport",
			Price:         95000,
			OriginalPrice: price(120000),
			Image:         "https://images.unsplash.com/photo-1721322800607-8c38375eef04?w=300&h=300&fit=crop",
			Category:      "Électronique",
			Rating:        4.4,
			Reviews:       156,
			Description:   "Montre intelligente avec suivi de santé, GPS et résistance à l'eau.",
			InStock:       true,
		},
		{
			ID:          6,
			Name:        "Sac à Main Cuir Véritable",
			Price:       75000,
			Image:       "https://images.unsplash.com/photo-1582562124811-c09040d0a901?w=300&h=300&fit=crop",
			Category:    "Mode",
			Rating:      4.7,
			Reviews:     94,
			Description: "Sac à main élégant en cuir véritable, idéal pour le travail et les sorties.",
			InStock:     true,
		},
		{
			ID:            7,
			Name:          "Aspirateur Robot Intelligent",
			Price:         185000,
			OriginalPrice: price(225000),
			Image:         "https://images.unsplash.com/photo-1535268647677-300dbf3d78d1?w=300&h=300&fit=crop",
			Category:      "Maison",
			Rating:        4.5,
			Reviews:       78,
			Description:   "Aspirateur robot avec navigation intelligente et contrôle via application mobile.",
			InStock:       true,
		},
		{
			ID:          8,
			Name:        "Chaussures de Sport Nike",
			Price:       65000,
			Image:       "https://images.unsplash.com/photo-1618160702438-9b02ab6515c9?w=300&h=300&fit=crop",
			Category:    "Mode",
			Rating:      4.6,
			Reviews:     203,
			Description: "Baskets de running avec technologie Air Max pour un confort optimal.",
			InStock:     false,
		},
	}
}
