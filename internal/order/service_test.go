package order

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hpham16/server-shopapp/internal/pagination"
	"github.com/hpham16/server-shopapp/internal/stats"
)

//
// ===== in-memory stub implementing Repository =====
//

type memRepo struct {
	orders       map[int64]*Order
	nextID       int64
	monthRows    []stats.Row
	productRows  []stats.Row
	categoryRows []stats.Row
	queryErr     error
	lastSort     pagination.Sort
}

func newMemRepo() *memRepo {
	return &memRepo{orders: make(map[int64]*Order)}
}

func (m *memRepo) Create(ctx context.Context, o *Order, items []CartItem) error {
	m.nextID++
	o.ID = m.nextID
	o.CreatedAt = time.Now()
	o.UpdatedAt = o.CreatedAt
	for _, it := range items {
		o.Items = append(o.Items, Item{
			ID:               int64(len(o.Items) + 1),
			OrderID:          o.ID,
			ProductID:        it.ProductID,
			Price:            decimal.NewFromInt(10),
			NumberOfProducts: it.Quantity,
		})
	}
	cp := *o
	m.orders[o.ID] = &cp
	return nil
}

func (m *memRepo) GetByID(ctx context.Context, id int64) (*Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (m *memRepo) ListByUser(ctx context.Context, userID int64) ([]Order, error) {
	out := []Order{}
	for _, o := range m.sorted() {
		if o.UserID == userID && o.Active {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (m *memRepo) Update(ctx context.Context, o *Order) error {
	existing, ok := m.orders[o.ID]
	if !ok {
		return ErrNotFound
	}
	cp := *o
	cp.Active = existing.Active
	cp.UpdatedAt = time.Now()
	m.orders[o.ID] = &cp
	return nil
}

func (m *memRepo) SoftDelete(ctx context.Context, id int64) error {
	o, ok := m.orders[id]
	if !ok {
		return ErrNotFound
	}
	o.Active = false
	return nil
}

func (m *memRepo) CountByKeyword(ctx context.Context, keyword string) (int, error) {
	return len(m.matching(keyword)), nil
}

func (m *memRepo) SearchByKeyword(ctx context.Context, keyword string, w pagination.Window, s pagination.Sort) ([]Order, error) {
	m.lastSort = s
	return pagination.Slice(m.matching(keyword), w), nil
}

func (m *memRepo) RevenueByMonth(ctx context.Context, month *int) ([]stats.Row, error) {
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	return m.monthRows, nil
}

func (m *memRepo) RevenueByProduct(ctx context.Context, nameFilter string) ([]stats.Row, error) {
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	return m.productRows, nil
}

func (m *memRepo) RevenueByCategory(ctx context.Context, nameFilter string) ([]stats.Row, error) {
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	return m.categoryRows, nil
}

func (m *memRepo) sorted() []*Order {
	out := make([]*Order, 0, len(m.orders))
	for _, o := range m.orders {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *memRepo) matching(keyword string) []Order {
	kw := strings.ToLower(keyword)
	out := []Order{}
	for _, o := range m.sorted() {
		if !o.Active {
			continue
		}
		haystack := strings.ToLower(o.FullName + " " + o.Address + " " + o.Note + " " + o.PhoneNumber)
		if kw == "" || strings.Contains(haystack, kw) {
			out = append(out, *o)
		}
	}
	return out
}

type memPublisher struct {
	events []string
}

func (p *memPublisher) OrderEvent(ctx context.Context, event string, orderID, userID int64) error {
	p.events = append(p.events, fmt.Sprintf("%s:%d", event, orderID))
	return nil
}

func sampleRequest(userID int64, name string) CreateOrderRequest {
	return CreateOrderRequest{
		UserID:         userID,
		FullName:       name,
		Email:          "a@example.com",
		PhoneNumber:    "0901234567",
		Address:        "12 Ly Thuong Kiet",
		Note:           "leave at the door",
		TotalMoney:     1500.5,
		ShippingMethod: "express",
		PaymentMethod:  "cod",
		CartItems:      []CartItem{{ProductID: 1, Quantity: 2}},
	}
}

//
// ===== tests =====
//

func TestCreateGetRoundTrip(t *testing.T) {
	repo := newMemRepo()
	pub := &memPublisher{}
	svc := NewService(repo, pub, pagination.DefaultSort())

	req := sampleRequest(4, "Nguyen Van A")
	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, req.UserID, got.UserID)
	assert.Equal(t, req.FullName, got.FullName)
	assert.Equal(t, req.Email, got.Email)
	assert.Equal(t, req.PhoneNumber, got.PhoneNumber)
	assert.Equal(t, req.Address, got.Address)
	assert.Equal(t, req.Note, got.Note)
	assert.True(t, got.TotalMoney.Equal(decimal.NewFromFloat(req.TotalMoney)))
	assert.Equal(t, StatusPending, got.Status)
	assert.True(t, got.Active)
	assert.Equal(t, []string{fmt.Sprintf("created:%d", created.ID)}, pub.events)
}

func TestSearchByKeyword_Pagination(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, nil, pagination.DefaultSort())

	for i := 0; i < 25; i++ {
		_, err := svc.Create(context.Background(), sampleRequest(1, fmt.Sprintf("Customer %02d", i)))
		require.NoError(t, err)
	}

	orders, totalPages, err := svc.SearchByKeyword(context.Background(), "", 0, 10)
	require.NoError(t, err)
	assert.Len(t, orders, 10)
	assert.Equal(t, 3, totalPages)
	assert.Equal(t, pagination.DefaultSort(), repo.lastSort)

	orders, totalPages, err = svc.SearchByKeyword(context.Background(), "", 2, 10)
	require.NoError(t, err)
	assert.Len(t, orders, 5)
	assert.Equal(t, 3, totalPages)

	// A window past the end is an empty page, not an error.
	orders, totalPages, err = svc.SearchByKeyword(context.Background(), "", 3, 10)
	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.Equal(t, 3, totalPages)
}

func TestSearchByKeyword_CaseInsensitiveSubstring(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, nil, pagination.DefaultSort())

	_, err := svc.Create(context.Background(), sampleRequest(1, "Tran Thi B"))
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), sampleRequest(1, "Nguyen Van A"))
	require.NoError(t, err)

	orders, totalPages, err := svc.SearchByKeyword(context.Background(), "NGUYEN", 0, 10)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "Nguyen Van A", orders[0].FullName)
	assert.Equal(t, 1, totalPages)
}

func TestSearchByKeyword_InvalidParams(t *testing.T) {
	svc := NewService(newMemRepo(), nil, pagination.DefaultSort())

	_, _, err := svc.SearchByKeyword(context.Background(), "", 0, 0)
	assert.ErrorIs(t, err, pagination.ErrInvalidPageSize)

	_, _, err = svc.SearchByKeyword(context.Background(), "", -1, 10)
	assert.ErrorIs(t, err, pagination.ErrInvalidPageIndex)
}

func TestSoftDelete_Idempotent(t *testing.T) {
	repo := newMemRepo()
	pub := &memPublisher{}
	svc := NewService(repo, pub, pagination.DefaultSort())

	created, err := svc.Create(context.Background(), sampleRequest(1, "Nguyen Van A"))
	require.NoError(t, err)

	require.NoError(t, svc.SoftDelete(context.Background(), created.ID))
	// Deleting again succeeds: the flag is simply already false.
	require.NoError(t, svc.SoftDelete(context.Background(), created.ID))

	// The record stays queryable by id.
	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)

	// Unknown ids still report not found.
	assert.ErrorIs(t, svc.SoftDelete(context.Background(), 9999), ErrNotFound)
}

func TestSoftDeleted_ExcludedFromListingsAndSearch(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, nil, pagination.DefaultSort())

	a, err := svc.Create(context.Background(), sampleRequest(7, "Nguyen Van A"))
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), sampleRequest(7, "Tran Thi B"))
	require.NoError(t, err)

	require.NoError(t, svc.SoftDelete(context.Background(), a.ID))

	byUser, err := svc.ListByUser(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	assert.Equal(t, "Tran Thi B", byUser[0].FullName)

	orders, _, err := svc.SearchByKeyword(context.Background(), "", 0, 10)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestUpdate_RefetchesAndPublishes(t *testing.T) {
	repo := newMemRepo()
	pub := &memPublisher{}
	svc := NewService(repo, pub, pagination.DefaultSort())

	created, err := svc.Create(context.Background(), sampleRequest(4, "Nguyen Van A"))
	require.NoError(t, err)

	req := sampleRequest(4, "Nguyen Van A")
	req.Address = "99 Hang Bac"
	updated, err := svc.Update(context.Background(), created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "99 Hang Bac", updated.Address)
	assert.Contains(t, pub.events, fmt.Sprintf("updated:%d", created.ID))

	_, err = svc.Update(context.Background(), 9999, req)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRevenueByMonth_MapsRows(t *testing.T) {
	repo := newMemRepo()
	repo.monthRows = []stats.Row{{int32(3), int32(2024), 1500.0, int64(5)}}
	svc := NewService(repo, nil, pagination.DefaultSort())

	month := 3
	records, err := svc.RevenueByMonth(context.Background(), &month)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "3", records[0].Month)
	assert.Equal(t, 2024, records[0].Year)
	assert.Equal(t, 1500.0, records[0].TotalMoney)
	require.NotNil(t, records[0].NumberOfProducts)
	assert.Equal(t, 5, *records[0].NumberOfProducts)
}

func TestRevenueByMonth_QueryFailureNamesDimension(t *testing.T) {
	repo := newMemRepo()
	repo.queryErr = fmt.Errorf("connection reset")
	svc := NewService(repo, nil, pagination.DefaultSort())

	_, err := svc.RevenueByMonth(context.Background(), nil)
	var aggErr *AggregationError
	require.ErrorAs(t, err, &aggErr)
	assert.Equal(t, stats.DimensionMonth, aggErr.Dimension)

	_, err = svc.RevenueByProduct(context.Background(), "")
	require.ErrorAs(t, err, &aggErr)
	assert.Equal(t, stats.DimensionProduct, aggErr.Dimension)

	_, err = svc.RevenueByCategory(context.Background(), "")
	require.ErrorAs(t, err, &aggErr)
	assert.Equal(t, stats.DimensionCategory, aggErr.Dimension)
}

func TestRevenueByProduct_MalformedRow(t *testing.T) {
	repo := newMemRepo()
	repo.productRows = []stats.Row{{"Shampoo", nil, int64(4)}}
	svc := NewService(repo, nil, pagination.DefaultSort())

	_, err := svc.RevenueByProduct(context.Background(), "")
	assert.ErrorIs(t, err, stats.ErrMalformedRow)
}

func TestRevenueByCategory_MapsRows(t *testing.T) {
	repo := newMemRepo()
	repo.categoryRows = []stats.Row{
		{"Cosmetics", 250.0, int64(14)},
		{"Food", 120.0, int64(30)},
	}
	svc := NewService(repo, nil, pagination.DefaultSort())

	records, err := svc.RevenueByCategory(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Cosmetics", records[0].CategoryName)
	assert.Equal(t, "Food", records[1].CategoryName)
}
