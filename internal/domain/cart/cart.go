// Package cart implements the sale-in-progress cart: lines keyed by product
// id, quantity merging, and the subtotal/surcharge/total arithmetic.
package cart

import "github.com/shopspring/decimal"

// Line is one cart entry. A line with quantity 0 is never retained.
type Line struct {
	ProductID string
	Quantity  int
}

// Totals is the computed money breakdown for a cart.
type Totals struct {
	Subtotal  decimal.Decimal
	Surcharge decimal.Decimal
	Total     decimal.Decimal
}

// Cart holds the lines of a sale being built, in insertion order.
// The zero value is an empty cart ready for use.
type Cart struct {
	lines []Line
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add merges quantity into the line for productID, creating the line if it
// does not exist. Quantities <= 0 are ignored.
func (c *Cart) Add(productID string, quantity int) {
	if quantity <= 0 {
		return
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity += quantity
			return
		}
	}
	c.lines = append(c.lines, Line{ProductID: productID, Quantity: quantity})
}

// SetQuantity replaces the quantity for productID. Setting 0 (or less)
// removes the line entirely.
func (c *Cart) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity = quantity
			return
		}
	}
	c.lines = append(c.lines, Line{ProductID: productID, Quantity: quantity})
}

// Remove deletes the line for productID if present.
func (c *Cart) Remove(productID string) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool { return len(c.lines) == 0 }

// Len returns the number of lines.
func (c *Cart) Len() int { return len(c.lines) }

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Clear empties the cart (sale submitted, or abandoned).
func (c *Cart) Clear() { c.lines = nil }

// Totals prices the cart against catalog (product id -> unit price) and
// applies the percentage transport surcharge when delivery is requested.
// A product id missing from the catalog prices at zero, matching the source
// system's tolerance for orphaned references.
func (c *Cart) Totals(catalog map[string]decimal.Decimal, delivery bool, surchargePct decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, line := range c.lines {
		price, ok := catalog[line.ProductID]
		if !ok {
			continue
		}
		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	surcharge := decimal.Zero
	if delivery {
		surcharge = subtotal.Mul(surchargePct).Div(decimal.NewFromInt(100))
	}
	return Totals{Subtotal: subtotal, Surcharge: surcharge, Total: subtotal.Add(surcharge)}
}
