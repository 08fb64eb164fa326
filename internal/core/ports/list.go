package ports

// Sort describes the ordering applied by a repository query. Field is one of the
// repository's sortable keys ("id", "name", ...); an empty Field means "id".
type Sort struct {
	Field string
	Desc  bool
}

// ProductFilter carries the optional product search criteria. Empty strings and a
// nil Price are absent and do not restrict the result.
type ProductFilter struct {
	Name        string   // substring of the product name
	Description string   // substring of the product description
	Price       *float64 // exact price
	Category    string   // substring of the owning category's name
}

// IsEmpty reports whether no criterion is present.
func (f ProductFilter) IsEmpty() bool {
	return f.Name == "" && f.Description == "" && f.Price == nil && f.Category == ""
}
