package domain

// Product is a catalog record. Catalog rows are immutable after seeding;
// Color and Size are empty when the product has no such attribute.
type Product struct {
	ID       int
	Name     string
	Price    float64
	Category string
	Color    string
	Size     string
}

// HasSize reports whether the product carries sizing information.
func (p *Product) HasSize() bool {
	return p.Size != ""
}
