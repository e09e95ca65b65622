package memory

import (
	"github.com/bukupintar/bukupintar_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Fixed sample data the store is seeded with at process start. Amounts
// are whole rupiah.

func seedProducts() []domain.Product {
	return []domain.Product{
		{
			ProductID: "1",
			Name:      "Kopi Arabika 250g",
			SKU:       "K-ARB-250",
			Category:  "Kopi",
			Stocks:    map[string]int64{"Gudang Utama": 150, "Toko": 45},
			Unit:      "Pcs",
			Price:     decimal.NewFromInt(85000),
			Cost:      decimal.NewFromInt(45000),
			MinStock:  50,
		},
		{
			ProductID: "2",
			Name:      "Gula Aren Cair 1L",
			SKU:       "G-ARN-1L",
			Category:  "Bahan Baku",
			Stocks:    map[string]int64{"Gudang Utama": 80, "Gudang Cabang": 20},
			Unit:      "Botol",
			Price:     decimal.NewFromInt(65000),
			Cost:      decimal.NewFromInt(35000),
			MinStock:  30,
		},
		{
			ProductID: "3",
			Name:      "Cangkir Keramik Putih",
			SKU:       "P-CGK-W",
			Category:  "Peralatan",
			Stocks:    map[string]int64{"Toko": 120},
			Unit:      "Set",
			Price:     decimal.NewFromInt(125000),
			Cost:      decimal.NewFromInt(60000),
			MinStock:  20,
		},
	}
}

func seedTransactions() []domain.Transaction {
	return []domain.Transaction{
		{
			TransactionID:  "INV-2023-001",
			Date:           "2023-11-01",
			Type:           domain.Sale,
			CustomerVendor: "Budi Santoso",
			CustomerEmail:  "budi.s@example.com",
			Total:          decimal.NewFromInt(450000),
			Status:         domain.StatusPaid,
			PaymentGateway: domain.Midtrans,
			Items: []domain.TransactionItem{
				{ProductID: "1", Name: "Kopi Arabika 250g", Qty: 5, Price: decimal.NewFromInt(90000)},
			},
		},
		{
			TransactionID:  "INV-2023-002",
			Date:           "2023-11-10",
			Type:           domain.Sale,
			CustomerVendor: "Rina Wijaya",
			CustomerEmail:  "rina.w@example.com",
			Total:          decimal.NewFromInt(1250000),
			Status:         domain.StatusUnpaid,
			Items: []domain.TransactionItem{
				{ProductID: "3", Name: "Cangkir Keramik Putih", Qty: 10, Price: decimal.NewFromInt(125000)},
			},
		},
		{
			TransactionID:  "PO-001",
			Date:           "2023-11-05",
			Type:           domain.Purchase,
			CustomerVendor: "Supplier Kopi Jabar",
			Total:          decimal.NewFromInt(5000000),
			Status:         domain.StatusPartial,
			Items:          []domain.TransactionItem{},
		},
	}
}

func seedEmployees() []domain.Employee {
	return []domain.Employee{
		{
			EmployeeID:     "E001",
			Name:           "Andi Pratama",
			Role:           "Barista",
			BaseSalary:     decimal.NewFromInt(3500000),
			BoronganRate:   decimal.Zero,
			CompletedTasks: 0,
			Loans:          decimal.NewFromInt(500000),
		},
		{
			EmployeeID:     "E002",
			Name:           "Siti Aminah",
			Role:           "Produksi",
			BaseSalary:     decimal.NewFromInt(2000000),
			BoronganRate:   decimal.NewFromInt(5000),
			CompletedTasks: 450,
			Loans:          decimal.Zero,
		},
	}
}

func seedAssets() []domain.FixedAsset {
	return []domain.FixedAsset{
		{
			AssetID:                 "A001",
			Name:                    "Mesin Espresso Simonelli",
			AcquisitionDate:         "2023-01-15",
			Cost:                    decimal.NewFromInt(45000000),
			UsefulLifeYears:         5,
			SalvageValue:            decimal.NewFromInt(5000000),
			AccumulatedDepreciation: decimal.NewFromInt(7500000),
		},
		{
			AssetID:                 "A002",
			Name:                    "Mobil Delivery Grand Max",
			AcquisitionDate:         "2023-03-20",
			Cost:                    decimal.NewFromInt(160000000),
			UsefulLifeYears:         8,
			SalvageValue:            decimal.NewFromInt(20000000),
			AccumulatedDepreciation: decimal.NewFromInt(15000000),
		},
	}
}

func seedAccounts() []domain.Account {
	return []domain.Account{
		{Code: "1101", Name: "Kas Kecil", Type: domain.Asset, Balance: decimal.NewFromInt(5000000)},
		{Code: "1102", Name: "Bank BCA", Type: domain.Asset, Balance: decimal.NewFromInt(125000000)},
		{Code: "1201", Name: "Piutang Usaha", Type: domain.Asset, Balance: decimal.NewFromInt(15000000)},
		{Code: "2101", Name: "Hutang Dagang", Type: domain.Liability, Balance: decimal.NewFromInt(8000000)},
		{Code: "3101", Name: "Modal Pemilik", Type: domain.Equity, Balance: decimal.NewFromInt(100000000)},
	}
}

func seedPaymentConfig() domain.PaymentConfig {
	return domain.PaymentConfig{
		ActiveGateway:  domain.Midtrans,
		MidtransAPIKey: "SB-Mid-client-xxxxxxxx",
		XenditAPIKey:   "xnd_development_xxxxxxxx",
		IsSandbox:      true,
	}
}
