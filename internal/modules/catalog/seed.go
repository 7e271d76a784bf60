package catalog

import (
	"context"
	"time"
)

type SeedResult struct {
	Seeded     bool
	Categories int
	Products   int
}

// Seed loads the demo catalog once; a second call is a no-op.
func (s *Service) Seed(ctx context.Context) (SeedResult, error) {
	n, err := s.repo.CountCategories(ctx)
	if err != nil {
		return SeedResult{}, err
	}
	if n > 0 {
		return SeedResult{Seeded: false}, nil
	}

	now := time.Now().UTC()

	categories := []Category{
		{
			ID:       "cat-furniture",
			NameFR:   "Mobilier",
			NameTR:   "Mobilya",
			NameEN:   "Furniture",
			Slug:     "furniture",
			ImageURL: "https://images.unsplash.com/photo-1555041469-a586c61ea9bc?w=800",
		},
		{
			ID:       "cat-bedroom",
			NameFR:   "Chambre à coucher",
			NameTR:   "Yatak Odası",
			NameEN:   "Bedroom",
			Slug:     "bedroom",
			ImageURL: "https://images.pexels.com/photos/6903157/pexels-photo-6903157.jpeg?w=800",
		},
		{
			ID:       "cat-appliances",
			NameFR:   "Électroménager",
			NameTR:   "Ev Aletleri",
			NameEN:   "Home Appliances",
			Slug:     "appliances",
			ImageURL: "https://images.unsplash.com/photo-1769326541255-c6612ab334a0?w=800",
		},
	}
	for i := range categories {
		categories[i].CreatedAt = now
		if err := s.repo.InsertCategory(ctx, categories[i]); err != nil {
			return SeedResult{}, err
		}
	}

	products := []Product{
		{
			ID:            "prod-sofa-grey",
			NameFR:        "Canapé Moderne Gris",
			NameTR:        "Modern Gri Koltuk",
			NameEN:        "Modern Grey Sofa",
			DescriptionFR: "Canapé élégant et confortable en tissu gris de haute qualité. Parfait pour votre salon moderne.",
			DescriptionTR: "Yüksek kaliteli gri kumaştan yapılmış zarif ve konforlu koltuk. Modern oturma odanız için mükemmel.",
			DescriptionEN: "Elegant and comfortable sofa in high-quality grey fabric. Perfect for your modern living room.",
			Price:         1299.00,
			CategoryID:    "cat-furniture",
			Images:        []string{"https://images.unsplash.com/photo-1555041469-a586c61ea9bc?w=800"},
			Stock:         10,
			Featured:      true,
		},
		{
			ID:            "prod-dining-table",
			NameFR:        "Table à Manger Design",
			NameTR:        "Tasarım Yemek Masası",
			NameEN:        "Design Dining Table",
			DescriptionFR: "Table à manger moderne en bois massif avec pieds en métal noir.",
			DescriptionTR: "Siyah metal ayaklı masif ahşap modern yemek masası.",
			DescriptionEN: "Modern solid wood dining table with black metal legs.",
			Price:         899.00,
			CategoryID:    "cat-furniture",
			Images:        []string{"https://images.pexels.com/photos/2995012/pexels-photo-2995012.jpeg?w=800"},
			Stock:         8,
			Featured:      true,
		},
		{
			ID:            "prod-chair-set",
			NameFR:        "Lot de 4 Chaises",
			NameTR:        "4'lü Sandalye Seti",
			NameEN:        "Set of 4 Chairs",
			DescriptionFR: "Ensemble de 4 chaises modernes avec assise rembourrée et structure en métal.",
			DescriptionTR: "Dolgulu oturma yeri ve metal yapıya sahip 4 modern sandalye seti.",
			DescriptionEN: "Set of 4 modern chairs with padded seat and metal frame.",
			Price:         499.00,
			CategoryID:    "cat-furniture",
			Images:        []string{"https://images.pexels.com/photos/1350789/pexels-photo-1350789.jpeg?w=800"},
			Stock:         15,
		},
		{
			ID:            "prod-bed-queen",
			NameFR:        "Lit Queen Size avec Tête de Lit",
			NameTR:        "Başlıklı Çift Kişilik Yatak",
			NameEN:        "Queen Size Bed with Headboard",
			DescriptionFR: "Lit queen size avec tête de lit capitonnée en tissu gris. Sommier inclus.",
			DescriptionTR: "Gri kumaş kapitone başlıklı çift kişilik yatak. Baza dahil.",
			DescriptionEN: "Queen size bed with tufted grey fabric headboard. Base included.",
			Price:         1499.00,
			CategoryID:    "cat-bedroom",
			Images:        []string{"https://images.pexels.com/photos/6903157/pexels-photo-6903157.jpeg?w=800"},
			Stock:         5,
			Featured:      true,
		},
		{
			ID:            "prod-nightstand",
			NameFR:        "Table de Chevet Moderne",
			NameTR:        "Modern Komodin",
			NameEN:        "Modern Nightstand",
			DescriptionFR: "Table de chevet avec tiroir et étagère ouverte. Finition bois naturel.",
			DescriptionTR: "Çekmeceli ve açık raflı komodin. Doğal ahşap finisaj.",
			DescriptionEN: "Nightstand with drawer and open shelf. Natural wood finish.",
			Price:         199.00,
			CategoryID:    "cat-bedroom",
			Images:        []string{"https://images.pexels.com/photos/6585764/pexels-photo-6585764.jpeg?w=800"},
			Stock:         20,
		},
		{
			ID:            "prod-coffee-machine",
			NameFR:        "Machine à Café Expresso",
			NameTR:        "Espresso Kahve Makinesi",
			NameEN:        "Espresso Coffee Machine",
			DescriptionFR: "Machine à café automatique avec broyeur intégré et mousseur à lait.",
			DescriptionTR: "Entegre öğütücü ve süt köpürtücülü otomatik kahve makinesi.",
			DescriptionEN: "Automatic coffee machine with integrated grinder and milk frother.",
			Price:         599.00,
			CategoryID:    "cat-appliances",
			Images:        []string{"https://images.unsplash.com/photo-1517668808822-9ebb02f2a0e6?w=800"},
			Stock:         12,
			Featured:      true,
		},
		{
			ID:            "prod-tea-set",
			NameFR:        "Service à Thé Turc Traditionnel",
			NameTR:        "Geleneksel Türk Çay Seti",
			NameEN:        "Traditional Turkish Tea Set",
			DescriptionFR: "Service à thé turc complet avec théière double et 6 verres traditionnels.",
			DescriptionTR: "Çift demlikli ve 6 geleneksel bardaklı komple Türk çay seti.",
			DescriptionEN: "Complete Turkish tea set with double teapot and 6 traditional glasses.",
			Price:         89.00,
			CategoryID:    "cat-appliances",
			Images:        []string{"https://images.pexels.com/photos/35386136/pexels-photo-35386136.jpeg?w=800"},
			Stock:         25,
		},
		{
			ID:            "prod-armchair",
			NameFR:        "Fauteuil Confort Premium",
			NameTR:        "Premium Konfor Koltuk",
			NameEN:        "Premium Comfort Armchair",
			DescriptionFR: "Fauteuil de relaxation avec accoudoirs larges et coussin moelleux.",
			DescriptionTR: "Geniş kolçaklı ve yumuşak minderli dinlenme koltuğu.",
			DescriptionEN: "Relaxation armchair with wide armrests and soft cushion.",
			Price:         699.00,
			CategoryID:    "cat-furniture",
			Images:        []string{"https://images.pexels.com/photos/1866149/pexels-photo-1866149.jpeg?w=800"},
			Stock:         7,
		},
	}
	for i := range products {
		products[i].CreatedAt = now
		if err := s.repo.InsertProduct(ctx, products[i]); err != nil {
			return SeedResult{}, err
		}
	}

	return SeedResult{Seeded: true, Categories: len(categories), Products: len(products)}, nil
}
