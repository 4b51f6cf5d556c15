package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/woodcraft-ug/woodcraft-api/internal/domain/entity"
)

// Demo fixtures for the single-tenant shop. Prices are UGX. Sale dates are
// relative to the process start so the dashboard's "today" view has data.

func ugx(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func daysAgo(n int) time.Time {
	return time.Now().AddDate(0, 0, -n)
}

func seedProducts() []*entity.Product {
	return []*entity.Product{
		{
			ID: "prod-001", Name: "Mahogany Double Bed", Type: entity.ProductTypeBed,
			Price: ugx(850000), CostPrice: ugx(520000),
			Measurements: entity.Measurements{Width: "150cm", Height: "120cm", Depth: "200cm"},
			Color:        "dark brown", Quality: entity.QualityPremium,
			StockQuantity: 4, Supplier: "Jinja Furniture Crafts",
			Description: "Solid mahogany frame with carved headboard", Featured: true,
		},
		{
			ID: "prod-002", Name: "Leather 3-Seater Sofa", Type: entity.ProductTypeSofa,
			Price: ugx(1200000), CostPrice: ugx(780000),
			Measurements: entity.Measurements{Width: "210cm", Height: "85cm", Depth: "95cm"},
			Color:        "black", Quality: entity.QualityPremium,
			StockQuantity: 7, Supplier: "Jinja Furniture Crafts", Featured: true,
		},
		{
			ID: "prod-003", Name: "6-Seater Dining Table", Type: entity.ProductTypeTable,
			Price: ugx(950000), CostPrice: ugx(600000),
			Measurements: entity.Measurements{Width: "180cm", Height: "76cm", Depth: "90cm"},
			Color:        "natural", Quality: entity.QualityStandard,
			StockQuantity: 2, Supplier: "Kampala Timber Works",
		},
		{
			ID: "prod-004", Name: "Pine Cupboard", Type: entity.ProductTypeCupboard,
			Price: ugx(450000), CostPrice: ugx(270000),
			Measurements: entity.Measurements{Width: "90cm", Height: "180cm", Depth: "45cm"},
			Color:        "light brown", Quality: entity.QualityEconomy,
			StockQuantity: 12, Supplier: "Masaka Wood Suppliers",
		},
		{
			ID: "prod-005", Name: "Dining Chair", Type: entity.ProductTypeChair,
			Price: ugx(85000), CostPrice: ugx(48000),
			Measurements: entity.Measurements{Width: "45cm", Height: "95cm", Depth: "50cm"},
			Color:        "natural", Quality: entity.QualityStandard,
			StockQuantity: 24, Supplier: "Kampala Timber Works",
		},
		{
			ID: "prod-006", Name: "3-Door Wardrobe", Type: entity.ProductTypeWardrobe,
			Price: ugx(780000), CostPrice: ugx(495000),
			Measurements: entity.Measurements{Width: "150cm", Height: "200cm", Depth: "58cm"},
			Color:        "mahogany", Quality: entity.QualityStandard,
			StockQuantity: 0, Supplier: "Jinja Furniture Crafts",
		},
	}
}

func seedWoodProducts() []*entity.WoodProduct {
	return []*entity.WoodProduct{
		{
			ID: "wood-001", Name: "Rough Mahogany Timber", Type: entity.WoodTypeTimber,
			Supplier: "Kampala Timber Works", CostPrice: ugx(28000), SellingPrice: ugx(35000),
			StockQuantity: 120, Unit: "ft", DateReceived: daysAgo(14),
		},
		{
			ID: "wood-002", Name: "Eucalyptus Poles", Type: entity.WoodTypePoles,
			Supplier: "Masaka Wood Suppliers", CostPrice: ugx(12000), SellingPrice: ugx(15000),
			StockQuantity: 300, Unit: "pieces", DateReceived: daysAgo(7),
		},
		{
			ID: "wood-003", Name: "Mvule Hardwood Planks", Type: entity.WoodTypeHardwood,
			Supplier: "Kampala Timber Works", CostPrice: ugx(45000), SellingPrice: ugx(60000),
			StockQuantity: 8, Unit: "pieces", DateReceived: daysAgo(30),
			Description: "Seasoned mvule, 2x12",
		},
		{
			ID: "wood-004", Name: "Pine Softwood Boards", Type: entity.WoodTypeSoftwood,
			Supplier: "Masaka Wood Suppliers", CostPrice: ugx(18000), SellingPrice: ugx(25000),
			StockQuantity: 0, Unit: "pieces", DateReceived: daysAgo(45),
		},
		{
			ID: "wood-005", Name: "Musizi Timber", Type: entity.WoodTypeTimber,
			Supplier: "Kampala Timber Works", CostPrice: ugx(20000), SellingPrice: ugx(26000),
			StockQuantity: 45, Unit: "ft", DateReceived: daysAgo(3),
		},
	}
}

func seedCustomers() []*entity.Customer {
	last1 := daysAgo(1)
	last2 := daysAgo(6)
	last3 := daysAgo(20)
	return []*entity.Customer{
		{
			ID: "cust-001", Name: "Sarah Namuli", Phone: "+256 772 445 120",
			Email: "sarah.namuli@gmail.com", Address: "Ntinda, Kampala",
			TotalPurchases: ugx(2135000), LastPurchase: &last1,
		},
		{
			ID: "cust-002", Name: "James Mugisha", Phone: "+256 701 882 340",
			Address:        "Bugolobi, Kampala",
			TotalPurchases: ugx(950000), LastPurchase: &last2,
		},
		{
			ID: "cust-003", Name: "Agnes Atim", Phone: "+256 756 210 908",
			Email: "agnes.atim@yahoo.com", Address: "Gulu Town",
			TotalPurchases: ugx(425000), LastPurchase: &last3,
		},
		{
			ID: "cust-004", Name: "Robert Ssempala", Phone: "+256 782 664 771",
			Address:        "Entebbe Road, Kampala",
			TotalPurchases: ugx(0),
		},
	}
}

func seedSuppliers() []*entity.Supplier {
	return []*entity.Supplier{
		{
			ID: "supp-001", Name: "Kampala Timber Works", Contact: "+256 414 220 118",
			Email: "sales@kampalatimber.co.ug", Address: "Industrial Area, Kampala",
			Products: []string{"timber", "hardwood", "tables", "chairs"}, Rating: 4.5,
		},
		{
			ID: "supp-002", Name: "Masaka Wood Suppliers", Contact: "+256 752 990 431",
			Address:  "Masaka-Mbarara Road",
			Products: []string{"poles", "softwood", "cupboards"}, Rating: 3.8,
		},
		{
			ID: "supp-003", Name: "Jinja Furniture Crafts", Contact: "+256 703 115 672",
			Email: "info@jinjacrafts.ug", Address: "Main Street, Jinja",
			Products: []string{"beds", "sofas", "wardrobes"}, Rating: 4.2,
		},
	}
}

func seedSales() []*entity.Sale {
	return []*entity.Sale{
		{
			ID: "sale-001", CustomerID: "cust-001", CustomerName: "Sarah Namuli",
			Lines: []entity.SaleLine{
				{ProductID: "prod-001", ProductName: "Mahogany Double Bed", Quantity: 1, UnitPrice: ugx(850000), Total: ugx(850000)},
				{ProductID: "prod-005", ProductName: "Dining Chair", Quantity: 4, UnitPrice: ugx(85000), Total: ugx(340000)},
			},
			Subtotal: ugx(1190000), TransportSurcharge: ugx(59500), Total: ugx(1249500),
			PaymentType: entity.PaymentCash, Date: daysAgo(0),
			AttendantID: "user-attendant", AttendantName: "Peter Okello",
			Status: entity.SaleStatusCompleted,
		},
		{
			ID: "sale-002", CustomerID: "cust-002", CustomerName: "James Mugisha",
			Lines: []entity.SaleLine{
				{ProductID: "prod-003", ProductName: "6-Seater Dining Table", Quantity: 1, UnitPrice: ugx(950000), Total: ugx(950000)},
			},
			Subtotal: ugx(950000), TransportSurcharge: ugx(0), Total: ugx(950000),
			PaymentType: entity.PaymentCheque, Date: daysAgo(1),
			AttendantID: "user-attendant", AttendantName: "Peter Okello",
			Status: entity.SaleStatusCompleted,
		},
		{
			ID: "sale-003", CustomerID: "cust-001", CustomerName: "Sarah Namuli",
			Lines: []entity.SaleLine{
				{ProductID: "prod-004", ProductName: "Pine Cupboard", Quantity: 1, UnitPrice: ugx(450000), Total: ugx(450000)},
				{ProductID: "wood-002", ProductName: "Eucalyptus Poles", Quantity: 29, UnitPrice: ugx(15000), Total: ugx(435000)},
			},
			Subtotal: ugx(885000), TransportSurcharge: ugx(0), Total: ugx(885000),
			PaymentType: entity.PaymentCash, Date: daysAgo(3),
			AttendantID: "user-manager", AttendantName: "Grace Nakato",
			Status: entity.SaleStatusCompleted,
		},
		{
			ID: "sale-004", CustomerID: "cust-003", CustomerName: "Agnes Atim",
			Lines: []entity.SaleLine{
				{ProductID: "prod-005", ProductName: "Dining Chair", Quantity: 5, UnitPrice: ugx(85000), Total: ugx(425000)},
			},
			Subtotal: ugx(425000), TransportSurcharge: ugx(21250), Total: ugx(446250),
			PaymentType: entity.PaymentOverdraft, Date: daysAgo(5),
			AttendantID: "user-attendant", AttendantName: "Peter Okello",
			Status: entity.SaleStatusPending,
		},
		{
			ID: "sale-005", CustomerID: "cust-walkin-01", CustomerName: "Walk-in Customer",
			// customer id does not resolve anywhere; denormalized refs are tolerated
			Lines: []entity.SaleLine{
				{ProductID: "wood-001", ProductName: "Rough Mahogany Timber", Quantity: 20, UnitPrice: ugx(35000), Total: ugx(700000)},
			},
			Subtotal: ugx(700000), TransportSurcharge: ugx(0), Total: ugx(700000),
			PaymentType: entity.PaymentCash, Date: daysAgo(5),
			AttendantID: "user-manager", AttendantName: "Grace Nakato",
			Status: entity.SaleStatusCompleted,
		},
	}
}
