package handlers

import (
	"github.com/camila-fonseca/aroma-atelier/internal/ai"
	"github.com/camila-fonseca/aroma-atelier/internal/repo"
)

var (
	inventoryRepo repo.InventoryRepository
	productRepo   repo.ProductRepository
	saleRepo      repo.SaleRepository
	orderRepo     repo.OrderRepository
	userRepo      repo.UserRepository
	summaryRepo   repo.SummaryRepository

	assistant ai.Client
)

func SetInventoryRepo(r repo.InventoryRepository) {
	inventoryRepo = r
}

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetSaleRepo(r repo.SaleRepository) {
	saleRepo = r
}

func SetOrderRepo(r repo.OrderRepository) {
	orderRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetSummaryRepo(r repo.SummaryRepository) {
	summaryRepo = r
}

func SetAssistant(c ai.Client) {
	assistant = c
}
