package dto

type ProductRequest struct {
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Price          float64           `json:"price"`
	OriginalPrice  float64           `json:"original_price"`
	Images         []string          `json:"images"`
	Videos         []string          `json:"videos"`
	Category       string            `json:"category"`
	Tags           []string          `json:"tags"`
	InStock        *bool             `json:"in_stock"`
	Colors         []string          `json:"colors"`
	Sizes          []string          `json:"sizes"`
	Specifications map[string]string `json:"specifications"`
}

// ProductUpdateRequest carries only the fields present in the payload;
// nil means the field is left untouched.
type ProductUpdateRequest struct {
	ID             string             `json:"-"`
	Name           *string            `json:"name"`
	Description    *string            `json:"description"`
	Price          *float64           `json:"price"`
	OriginalPrice  *float64           `json:"original_price"`
	Images         *[]string          `json:"images"`
	Videos         *[]string          `json:"videos"`
	Category       *string            `json:"category"`
	Tags           *[]string          `json:"tags"`
	InStock        *bool              `json:"in_stock"`
	Colors         *[]string          `json:"colors"`
	Sizes          *[]string          `json:"sizes"`
	Specifications *map[string]string `json:"specifications"`
	Rating         *float64           `json:"rating"`
	ReviewCount    *int64             `json:"review_count"`
}
