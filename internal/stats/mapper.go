package stats

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrMalformedRow means a row did not match the shape the report's query is
// supposed to produce: a schema/query mismatch, not a user error.
var ErrMalformedRow = errors.New("malformed aggregation row")

// MapMonth converts a month-report row: [month, year, totalMoney, count?].
// The first three positions are required to exist; each of them tolerates a
// NULL value with a documented default (month "N/A", year 0, money 0.0). The
// trailing count column is only present when the query was scoped to a single
// month and maps to nil when absent.
func MapMonth(r Row) (MonthRecord, error) {
	if len(r) < 3 {
		return MonthRecord{}, fmt.Errorf("%w: month row has %d columns, want at least 3", ErrMalformedRow, len(r))
	}
	var rec MonthRecord
	rec.Month = "N/A"
	if r[0] != nil {
		m, err := toInt(r[0])
		if err != nil {
			return MonthRecord{}, fmt.Errorf("%w: month column: %v", ErrMalformedRow, err)
		}
		rec.Month = strconv.Itoa(m)
	}
	if r[1] != nil {
		y, err := toInt(r[1])
		if err != nil {
			return MonthRecord{}, fmt.Errorf("%w: year column: %v", ErrMalformedRow, err)
		}
		rec.Year = y
	}
	if r[2] != nil {
		money, err := toFloat(r[2])
		if err != nil {
			return MonthRecord{}, fmt.Errorf("%w: totalMoney column: %v", ErrMalformedRow, err)
		}
		rec.TotalMoney = money
	}
	if len(r) > 3 && r[3] != nil {
		n, err := toInt(r[3])
		if err != nil {
			return MonthRecord{}, fmt.Errorf("%w: numberOfProducts column: %v", ErrMalformedRow, err)
		}
		rec.NumberOfProducts = &n
	}
	return rec, nil
}

// MapProduct converts a product-report row: [productName, totalMoney, count].
// All three positions are required and non-null.
func MapProduct(r Row) (ProductRecord, error) {
	name, rev, err := mapNamed(r, DimensionProduct)
	if err != nil {
		return ProductRecord{}, err
	}
	return ProductRecord{Revenue: rev, ProductName: name}, nil
}

// MapCategory converts a category-report row: [categoryName, totalMoney, count].
func MapCategory(r Row) (CategoryRecord, error) {
	name, rev, err := mapNamed(r, DimensionCategory)
	if err != nil {
		return CategoryRecord{}, err
	}
	return CategoryRecord{Revenue: rev, CategoryName: name}, nil
}

func mapNamed(r Row, dim Dimension) (string, Revenue, error) {
	if len(r) < 3 {
		return "", Revenue{}, fmt.Errorf("%w: %s row has %d columns, want 3", ErrMalformedRow, dim, len(r))
	}
	name, ok := r[0].(string)
	if !ok {
		return "", Revenue{}, fmt.Errorf("%w: %s row: name column is %T, want string", ErrMalformedRow, dim, r[0])
	}
	if r[1] == nil {
		return "", Revenue{}, fmt.Errorf("%w: %s row: totalMoney column is null", ErrMalformedRow, dim)
	}
	money, err := toFloat(r[1])
	if err != nil {
		return "", Revenue{}, fmt.Errorf("%w: %s row: totalMoney column: %v", ErrMalformedRow, dim, err)
	}
	if r[2] == nil {
		return "", Revenue{}, fmt.Errorf("%w: %s row: numberOfProducts column is null", ErrMalformedRow, dim)
	}
	n, err := toInt(r[2])
	if err != nil {
		return "", Revenue{}, fmt.Errorf("%w: %s row: numberOfProducts column: %v", ErrMalformedRow, dim, err)
	}
	return name, Revenue{TotalMoney: money, NumberOfProducts: &n}, nil
}

// The store returns numerics in whatever width the cast produced (EXTRACT ::int
// comes back as int32, SUM ::float8 as float64), so both coercions accept every
// integer and float width.

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("value %v (%T) is not numeric", v, v)
	}
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int8:
		return int(n), nil
	case int16:
		return int(n), nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case uint:
		return int(n), nil
	case uint8:
		return int(n), nil
	case uint16:
		return int(n), nil
	case uint32:
		return int(n), nil
	case uint64:
		return int(n), nil
	case float64:
		return int(n), nil
	case float32:
		return int(n), nil
	default:
		return 0, fmt.Errorf("value %v (%T) is not numeric", v, v)
	}
}
