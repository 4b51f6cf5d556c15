package entity

import (
	"github.com/shopspring/decimal"
)

// Furniture types sold in the showroom.
const (
	ProductTypeBed      = "bed"
	ProductTypeSofa     = "sofa"
	ProductTypeTable    = "table"
	ProductTypeCupboard = "cupboard"
	ProductTypeChair    = "chair"
	ProductTypeWardrobe = "wardrobe"
)

// Quality grades for showroom furniture.
const (
	QualityPremium  = "premium"
	QualityStandard = "standard"
	QualityEconomy  = "economy"
)

// ValidProductType reports whether t is one of the furniture type constants.
func ValidProductType(t string) bool {
	switch t {
	case ProductTypeBed, ProductTypeSofa, ProductTypeTable, ProductTypeCupboard, ProductTypeChair, ProductTypeWardrobe:
		return true
	}
	return false
}

// ValidQuality reports whether q is one of the quality grade constants.
func ValidQuality(q string) bool {
	switch q {
	case QualityPremium, QualityStandard, QualityEconomy:
		return true
	}
	return false
}

// Measurements are display strings as printed on the showroom tag ("180cm" etc.).
type Measurements struct {
	Width  string
	Height string
	Depth  string
}

// Product is a finished furniture piece on the showroom floor.
// StockQuantity is always >= 0; Supplier is a denormalized name, not an id.
type Product struct {
	ID            string
	Name          string
	Type          string // bed, sofa, table, cupboard, chair, wardrobe
	Price         decimal.Decimal // selling price, UGX
	CostPrice     decimal.Decimal
	Measurements  Measurements
	Color         string
	Quality       string // premium, standard, economy
	StockQuantity int
	Supplier      string
	Description   string
	Featured      bool
}
