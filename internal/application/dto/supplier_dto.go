package dto

// CreateSupplierRequest input for adding a supplier. Name and contact are
// required; Products holds supplied category names.
type CreateSupplierRequest struct {
	Name     string   `json:"name" validate:"required"`
	Contact  string   `json:"contact" validate:"required"`
	Email    string   `json:"email"`
	Address  string   `json:"address"`
	Products []string `json:"products"`
	Rating   float64  `json:"rating" validate:"min=0,max=5"`
}

// SupplierResponse output for a supplier.
type SupplierResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Contact  string   `json:"contact"`
	Email    string   `json:"email,omitempty"`
	Address  string   `json:"address"`
	Products []string `json:"products"`
	Rating   float64  `json:"rating"`
}

// SupplierListResponse supplier listing.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Total int                `json:"total"`
}

// SupplierMetricsResponse aggregate supplier figures.
type SupplierMetricsResponse struct {
	Count         int     `json:"count"`
	AverageRating float64 `json:"average_rating"`
	Categories    int     `json:"categories"`
	HasData       bool    `json:"has_data"`
}
