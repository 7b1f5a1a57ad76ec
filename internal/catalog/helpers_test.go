package catalog

// productOption 테스트용 상품 빌더 옵션입니다.
type productOption func(*Product)

func newProduct(id string, opts ...productOption) Product {
	p := Product{
		ID:             id,
		Title:          "Product " + id,
		Price:          10,
		ProductType:    ProductTypeBook,
		FormatTags:     []FormatTag{},
		PopularityTags: []PopularityTag{},
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

func withType(t ProductType) productOption { return func(p *Product) { p.ProductType = t } }
func withTitle(s string) productOption     { return func(p *Product) { p.Title = s } }
func withDescription(s string) productOption {
	return func(p *Product) { p.Description = s }
}
func withPrice(v float64) productOption  { return func(p *Product) { p.Price = v } }
func withLevel(l Level) productOption     { return func(p *Product) { p.Level = l } }
func withFeatured() productOption         { return func(p *Product) { p.Featured = true } }
func withEditorial(id string) productOption { return func(p *Product) { p.EditorialID = id } }
func withBookCount(n int) productOption   { return func(p *Product) { p.BookCount = n } }
func withFormats(tags ...FormatTag) productOption {
	return func(p *Product) { p.FormatTags = tags }
}
func withPopularity(tags ...PopularityTag) productOption {
	return func(p *Product) { p.PopularityTags = tags }
}
func withRating(score float64) productOption {
	return func(p *Product) { p.Rating = &Rating{Score: score, ReviewCount: 1} }
}

func ids(products []Product) []string {
	result := make([]string, 0, len(products))
	for _, p := range products {
		result = append(result, p.ID)
	}
	return result
}

func prices(products []Product) []float64 {
	result := make([]float64, 0, len(products))
	for _, p := range products {
		result = append(result, p.Price)
	}
	return result
}
