package order

import (
	"context"
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"github.com/hpham16/server-shopapp/internal/pagination"
	"github.com/hpham16/server-shopapp/internal/stats"
)

// EventPublisher pushes order lifecycle events to the warehouse pipeline.
type EventPublisher interface {
	OrderEvent(ctx context.Context, event string, orderID, userID int64) error
}

// AggregationError reports a store failure during a grouped-revenue query,
// naming the failing dimension. It is caller-visible and never retried.
type AggregationError struct {
	Dimension stats.Dimension
	Err       error
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("%s revenue query failed: %v", e.Dimension, e.Err)
}

func (e *AggregationError) Unwrap() error { return e.Err }

// Service is the order façade: CRUD with soft delete, keyword search with
// pagination, and the three grouped-revenue reports.
type Service struct {
	repo Repository
	pub  EventPublisher
	sort pagination.Sort
}

// NewService wires the façade. pub may be nil when no broker is configured;
// sort picks the listing order for keyword search.
func NewService(repo Repository, pub EventPublisher, sort pagination.Sort) *Service {
	if sort == (pagination.Sort{}) {
		sort = pagination.DefaultSort()
	}
	return &Service{repo: repo, pub: pub, sort: sort}
}

func (s *Service) Create(ctx context.Context, req CreateOrderRequest) (*Order, error) {
	o := &Order{
		UserID:         req.UserID,
		FullName:       req.FullName,
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		Address:        req.Address,
		Note:           req.Note,
		Status:         StatusPending,
		TotalMoney:     decimal.NewFromFloat(req.TotalMoney),
		ShippingMethod: req.ShippingMethod,
		PaymentMethod:  req.PaymentMethod,
		Active:         true,
	}
	if err := s.repo.Create(ctx, o, req.CartItems); err != nil {
		return nil, err
	}
	s.publish(ctx, "created", o.ID, o.UserID)
	return o, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) Update(ctx context.Context, id int64, req CreateOrderRequest) (*Order, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.FullName = req.FullName
	existing.Email = req.Email
	existing.PhoneNumber = req.PhoneNumber
	existing.Address = req.Address
	existing.Note = req.Note
	existing.TotalMoney = decimal.NewFromFloat(req.TotalMoney)
	existing.ShippingMethod = req.ShippingMethod
	existing.PaymentMethod = req.PaymentMethod
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, "updated", updated.ID, updated.UserID)
	return updated, nil
}

// SoftDelete marks the order inactive. Deleting an already-inactive order
// succeeds again; only an unknown id reports ErrNotFound.
func (s *Service) SoftDelete(ctx context.Context, id int64) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, "deleted", id, 0)
	return nil
}

// SearchByKeyword returns one page of active orders matching the keyword plus
// the total page count. An empty keyword matches everything.
func (s *Service) SearchByKeyword(ctx context.Context, keyword string, page, pageSize int) ([]Order, int, error) {
	w, err := pagination.NewWindow(page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.CountByKeyword(ctx, keyword)
	if err != nil {
		return nil, 0, err
	}
	totalPages := pagination.TotalPages(total, pageSize)
	if w.Offset >= total {
		return []Order{}, totalPages, nil
	}
	orders, err := s.repo.SearchByKeyword(ctx, keyword, w, s.sort)
	if err != nil {
		return nil, 0, err
	}
	return orders, totalPages, nil
}

func (s *Service) RevenueByMonth(ctx context.Context, month *int) ([]stats.MonthRecord, error) {
	rows, err := s.repo.RevenueByMonth(ctx, month)
	if err != nil {
		return nil, &AggregationError{Dimension: stats.DimensionMonth, Err: err}
	}
	out := make([]stats.MonthRecord, 0, len(rows))
	for _, r := range rows {
		rec, err := stats.MapMonth(r)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func (s *Service) RevenueByProduct(ctx context.Context, nameFilter string) ([]stats.ProductRecord, error) {
	rows, err := s.repo.RevenueByProduct(ctx, nameFilter)
	if err != nil {
		return nil, &AggregationError{Dimension: stats.DimensionProduct, Err: err}
	}
	out := make([]stats.ProductRecord, 0, len(rows))
	for _, r := range rows {
		rec, err := stats.MapProduct(r)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func (s *Service) RevenueByCategory(ctx context.Context, nameFilter string) ([]stats.CategoryRecord, error) {
	rows, err := s.repo.RevenueByCategory(ctx, nameFilter)
	if err != nil {
		return nil, &AggregationError{Dimension: stats.DimensionCategory, Err: err}
	}
	out := make([]stats.CategoryRecord, 0, len(rows))
	for _, r := range rows {
		rec, err := stats.MapCategory(r)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// publish is best effort: the warehouse pipeline is asynchronous and a broker
// outage must not fail the request.
func (s *Service) publish(ctx context.Context, event string, orderID, userID int64) {
	if s.pub == nil {
		return
	}
	if err := s.pub.OrderEvent(ctx, event, orderID, userID); err != nil {
		log.Printf("[dwh] publish %s order=%d failed: %v", event, orderID, err)
	}
}
