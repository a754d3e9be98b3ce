// Package stats maps raw revenue-aggregation rows into typed statistic records.
package stats

// Dimension identifies which grouped-revenue report a row or record belongs to.
type Dimension string

const (
	DimensionMonth    Dimension = "month"
	DimensionProduct  Dimension = "product"
	DimensionCategory Dimension = "category"
)

// Row is one output record of a grouped query: an ordered sequence of
// loosely-typed scalars, exactly as the store returns them.
type Row []any

// Revenue is the payload shared by every statistic record. NumberOfProducts is
// nil when the report did not compute a count; that is distinct from zero.
type Revenue struct {
	TotalMoney       float64 `json:"totalMoney"`
	NumberOfProducts *int    `json:"numberOfProducts"`
}

// MonthRecord is revenue grouped by calendar (month, year).
type MonthRecord struct {
	Revenue
	Month string `json:"month"`
	Year  int    `json:"year"`
}

// ProductRecord is revenue grouped by product name.
type ProductRecord struct {
	Revenue
	ProductName string `json:"productName"`
}

// CategoryRecord is revenue grouped by product category.
type CategoryRecord struct {
	Revenue
	CategoryName string `json:"categoryName"`
}
