package domain

// Product is a catalog entry. ID is assigned by the store on insert and never
// changes afterwards.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       float64
}

// ProductFields carries the editable attributes of a Product, separate from its
// identity. Create and edit both operate on this shape.
type ProductFields struct {
	Name        string
	Description string
	Price       float64
}
