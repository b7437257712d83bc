package handlers

import "github.com/camila-fonseca/aroma-atelier/internal/models"

type InventoryItemRequest struct {
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	MinThreshold float64 `json:"min_threshold"`
}

type InventoryItemResponse struct {
	models.InventoryItem
	LowStock bool `json:"low_stock"`
}

type ProductRequest struct {
	Name   string              `json:"name"`
	Price  float64             `json:"price"`
	Recipe []models.RecipeItem `json:"recipe"`
}

type RecipeItemRequest struct {
	InventoryItemID string  `json:"inventory_item_id"`
	Quantity        float64 `json:"quantity"`
}

type SaleRequest struct {
	Date         string  `json:"date"`
	CustomerName string  `json:"customer_name"`
	Products     string  `json:"products"`
	TotalValue   float64 `json:"total_value"`
}

type CartEntryRequest struct {
	Kind            string  `json:"kind"`
	ProductID       string  `json:"product_id,omitempty"`
	InventoryItemID string  `json:"inventory_item_id,omitempty"`
	Quantity        float64 `json:"quantity"`
	UnitPrice       float64 `json:"unit_price"`
}

type CheckoutRequest struct {
	Date         string             `json:"date"`
	CustomerName string             `json:"customer_name"`
	Notes        string             `json:"notes,omitempty"`
	Cart         []CartEntryRequest `json:"cart"`
}

type CheckoutResponse struct {
	Sale        models.Sale       `json:"sale"`
	StockClamps []StockClampEvent `json:"stock_clamps,omitempty"`
}

type StockClampEvent struct {
	InventoryItemID string  `json:"inventory_item_id"`
	ItemName        string  `json:"item_name"`
	Requested       float64 `json:"requested"`
	Available       float64 `json:"available"`
}

type DailyRevenuePoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

type OrderRequest struct {
	CustomerName   string  `json:"customer_name"`
	Description    string  `json:"description"`
	EstimatedValue float64 `json:"estimated_value"`
	Deadline       string  `json:"deadline"`
	Status         string  `json:"status"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type AssistantRequest struct {
	Message string `json:"message"`
}

type AssistantResponse struct {
	Reply string `json:"reply"`
}

type UsageCostRequest struct {
	PurchasePrice float64 `json:"purchase_price"`
	PurchaseQty   float64 `json:"purchase_qty"`
	PurchaseUnit  string  `json:"purchase_unit"`
	UsageQty      float64 `json:"usage_qty"`
	UsageUnit     string  `json:"usage_unit"`
}

type UsageCostResponse struct {
	Cost         float64 `json:"cost"`
	UnitMismatch bool    `json:"unit_mismatch"`
}

type PricingRequest struct {
	Costs         []float64 `json:"costs"`
	MarginPercent float64   `json:"margin_percent"`
}

type PricingResponse struct {
	TotalCost    float64 `json:"total_cost"`
	SellingPrice float64 `json:"selling_price"`
	Profit       float64 `json:"profit"`
}

type BatchMixRequest struct {
	ContainerSize    float64 `json:"container_size"`
	FragrancePercent float64 `json:"fragrance_percent"`
	Quantity         float64 `json:"quantity"`
}

type BatchMixResponse struct {
	TotalMix  float64 `json:"total_mix"`
	Wax       float64 `json:"wax"`
	Fragrance float64 `json:"fragrance"`
}
