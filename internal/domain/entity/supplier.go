package entity

// Supplier provides furniture or wood stock. Products holds the category
// names supplied ("beds", "timber", ...); Rating is on a 0-5 scale.
type Supplier struct {
	ID       string
	Name     string
	Contact  string
	Email    string // optional
	Address  string
	Products []string
	Rating   float64
}
