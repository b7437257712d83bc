package repo

import "github.com/camila-fonseca/aroma-atelier/internal/stock"

type InMemorySummaryRepository struct {
	saleRepo      SaleRepository
	productRepo   ProductRepository
	inventoryRepo InventoryRepository
}

func NewInMemorySummaryRepository() *InMemorySummaryRepository {
	return &InMemorySummaryRepository{}
}

func (r *InMemorySummaryRepository) SetRepositories(
	saleRepo SaleRepository,
	productRepo ProductRepository,
	inventoryRepo InventoryRepository,
) {
	r.saleRepo = saleRepo
	r.productRepo = productRepo
	r.inventoryRepo = inventoryRepo
}

// GetDashboardSummary implements SummaryRepository.
func (r *InMemorySummaryRepository) GetDashboardSummary() (Summary, error) {
	s := Summary{}

	sales, err := r.saleRepo.GetAll()
	if err != nil {
		return s, err
	}
	s.SalesCount = len(sales)
	for _, sale := range sales {
		s.TotalRevenue += sale.TotalValue
		if sale.Date > s.LastSaleDate {
			s.LastSaleDate = sale.Date
		}
	}

	products, err := r.productRepo.GetAll()
	if err != nil {
		return s, err
	}
	s.TotalProducts = len(products)

	items, err := r.inventoryRepo.GetAll()
	if err != nil {
		return s, err
	}
	for _, item := range items {
		if stock.IsLowStock(item) {
			s.LowStockCount++
		}
	}

	return s, nil
}
