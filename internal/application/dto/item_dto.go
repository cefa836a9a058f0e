package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/lacteos-pro/internal/application/forms"
)

// CreateItemRequest entrada cruda del formulario de alta de ítems. Los campos
// numéricos viajan como string tal como los captura la UI; string vacío
// significa "no informado".
type CreateItemRequest struct {
	Name              string `json:"name"`
	Unit              string `json:"unit"`
	Description       string `json:"description"`
	ProductType       string `json:"product_type"`
	MinStockLevel     string `json:"min_stock_level"`
	MaxStockLevel     string `json:"max_stock_level"`
	WholesalePrice    string `json:"wholesale_price"`
	RetailPrice       string `json:"retail_price"`
	TaxRate           string `json:"tax_rate"`
	HTPrice           string `json:"ht_price"`
	CostPrice         string `json:"cost_price"`
	PurchasePrice     string `json:"purchase_price"`
	SupplierPrice     string `json:"supplier_price"`
	Barcode           string `json:"barcode"`
	ShelfLifeDays     string `json:"shelf_life_days"`
	StorageConditions string `json:"storage_conditions"`
}

// Draft convierte el request al borrador de formulario para el tipo de ítem dado.
func (r CreateItemRequest) Draft(itemKind string) forms.ItemDraft {
	return forms.ItemDraft{
		Name:              r.Name,
		Unit:              r.Unit,
		ItemKind:          itemKind,
		Description:       r.Description,
		ProductType:       r.ProductType,
		MinStockLevel:     r.MinStockLevel,
		MaxStockLevel:     r.MaxStockLevel,
		WholesalePrice:    r.WholesalePrice,
		RetailPrice:       r.RetailPrice,
		TaxRate:           r.TaxRate,
		HTPrice:           r.HTPrice,
		CostPrice:         r.CostPrice,
		PurchasePrice:     r.PurchasePrice,
		SupplierPrice:     r.SupplierPrice,
		Barcode:           r.Barcode,
		ShelfLifeDays:     r.ShelfLifeDays,
		StorageConditions: r.StorageConditions,
	}
}

// UpdateLevelsRequest entrada para actualizar niveles mínimo/máximo de stock.
type UpdateLevelsRequest struct {
	MinStockLevel string `json:"min_stock_level"`
	MaxStockLevel string `json:"max_stock_level"`
}

// RawMaterialResponse salida de una materia prima.
type RawMaterialResponse struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Description       string           `json:"description,omitempty"`
	Unit              string           `json:"unit"`
	MinStockLevel     *decimal.Decimal `json:"min_stock_level,omitempty"`
	MaxStockLevel     *decimal.Decimal `json:"max_stock_level,omitempty"`
	PurchasePrice     decimal.Decimal  `json:"purchase_price"`
	SupplierPrice     *decimal.Decimal `json:"supplier_price,omitempty"`
	TaxRate           *decimal.Decimal `json:"tax_rate,omitempty"`
	HTPrice           *decimal.Decimal `json:"ht_price,omitempty"`
	TTCPrice          *decimal.Decimal `json:"ttc_price,omitempty"`
	Barcode           string           `json:"barcode,omitempty"`
	ShelfLifeDays     *int             `json:"shelf_life_days,omitempty"`
	StorageConditions string           `json:"storage_conditions,omitempty"`
	Stock             decimal.Decimal  `json:"stock"`
	BelowMinimum      bool             `json:"below_minimum"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// ProductResponse salida de un producto terminado.
type ProductResponse struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Description       string           `json:"description,omitempty"`
	Unit              string           `json:"unit"`
	ProductType       string           `json:"product_type,omitempty"`
	MinStockLevel     *decimal.Decimal `json:"min_stock_level,omitempty"`
	MaxStockLevel     *decimal.Decimal `json:"max_stock_level,omitempty"`
	WholesalePrice    *decimal.Decimal `json:"wholesale_price,omitempty"`
	RetailPrice       decimal.Decimal  `json:"retail_price"`
	TaxRate           *decimal.Decimal `json:"tax_rate,omitempty"`
	HTPrice           *decimal.Decimal `json:"ht_price,omitempty"`
	TTCPrice          *decimal.Decimal `json:"ttc_price,omitempty"`
	CostPrice         *decimal.Decimal `json:"cost_price,omitempty"`
	ProfitMargin      *decimal.Decimal `json:"profit_margin,omitempty"`
	Barcode           string           `json:"barcode,omitempty"`
	ShelfLifeDays     *int             `json:"shelf_life_days,omitempty"`
	StorageConditions string           `json:"storage_conditions,omitempty"`
	Stock             decimal.Decimal  `json:"stock"`
	BelowMinimum      bool             `json:"below_minimum"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// RawMaterialListResponse lista paginada de materias primas.
type RawMaterialListResponse struct {
	Items []RawMaterialResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
