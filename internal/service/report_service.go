package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"aura/internal/domain"
	"aura/internal/repository"
)

const (
	// RevenueMonths trailing window of the revenue chart, current month included
	RevenueMonths = 6
	// UncategorizedName labels products whose category is unknown
	UncategorizedName = "Sin categoría"
)

// SellerStats dashboard counters of one seller
type SellerStats struct {
	ProductCount  int64 `json:"productCount"`
	OrderCount    int64 `json:"orderCount"`
	TotalProducts int64 `json:"totalProducts"`
	TotalOrders   int64 `json:"totalOrders"`
	TotalRevenue  int64 `json:"totalRevenue"`
	PendingOrders int64 `json:"pendingOrders"`
}

// AdminStats platform-wide counters
type AdminStats struct {
	TotalUsers    int64 `json:"totalUsers"`
	TotalOrders   int64 `json:"totalOrders"`
	TotalRevenue  int64 `json:"totalRevenue"`
	TotalProducts int64 `json:"totalProducts"`
}

// RevenuePoint completed revenue of one calendar month
type RevenuePoint struct {
	Month      string `json:"month"`
	Year       int    `json:"year"`
	MonthIndex int    `json:"monthIndex"`
	TotalCents int64  `json:"total"`
}

// CategorySlice product count of one category
type CategorySlice struct {
	CategoryID string `json:"categoryId,omitempty"`
	Name       string `json:"name"`
	Count      int64  `json:"value"`
}

type ReportService struct {
	users      repository.UserRepository
	products   repository.ProductRepository
	categories repository.CategoryRepository
	sellers    repository.SellerRepository
	orders     repository.OrderRepository
	now        func() time.Time
}

func NewReportService(st repository.Stores) *ReportService {
	return &ReportService{
		users:      st.Users,
		products:   st.Products,
		categories: st.Categories,
		sellers:    st.Sellers,
		orders:     st.Orders,
		now:        time.Now,
	}
}

// SellerStats revenue counts only the seller's own lines of completed orders
func (s *ReportService) SellerStats(ctx context.Context, actor *domain.User) (*SellerStats, error) {
	p, err := ownProfile(ctx, s.sellers, actor)
	if err != nil {
		return nil, err
	}
	products, err := s.products.Count(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}
	orders, err := s.orders.List(ctx, repository.OrderFilter{SellerID: p.ID})
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	st := &SellerStats{ProductCount: products, TotalProducts: products, OrderCount: int64(len(orders))}
	st.TotalOrders = st.OrderCount
	for _, o := range orders {
		switch {
		case o.Status == domain.OrderPending:
			st.PendingOrders++
		case o.Status.Completed():
			for _, it := range o.Items {
				if it.SellerID == p.ID {
					st.TotalRevenue += it.UnitPriceCents * int64(it.Quantity)
				}
			}
		}
	}
	return st, nil
}

func (s *ReportService) AdminStats(ctx context.Context, actor *domain.User) (*AdminStats, error) {
	if err := requireRole(actor, domain.RoleAdmin); err != nil {
		return nil, err
	}
	var st AdminStats
	var err error
	if st.TotalUsers, err = s.users.Count(ctx); err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	if st.TotalOrders, err = s.orders.Count(ctx, repository.OrderFilter{}); err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}
	if st.TotalProducts, err = s.products.Count(ctx, ""); err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}
	completed, err := s.orders.List(ctx, repository.OrderFilter{Statuses: domain.CompletedOrderStatuses})
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	for _, o := range completed {
		st.TotalRevenue += o.TotalCents
	}
	return &st, nil
}

// RevenueChart returns RevenueMonths buckets, oldest first, months without
// completed orders reported as zero. Buckets are UTC calendar months.
func (s *ReportService) RevenueChart(ctx context.Context, actor *domain.User) ([]RevenuePoint, error) {
	if err := requireRole(actor, domain.RoleAdmin); err != nil {
		return nil, err
	}
	now := s.now().UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(RevenueMonths - 1), 0)

	points := make([]RevenuePoint, RevenueMonths)
	index := make(map[string]int, RevenueMonths)
	for i := range points {
		m := start.AddDate(0, i, 0)
		key := m.Format("2006-01")
		points[i] = RevenuePoint{Month: key, Year: m.Year(), MonthIndex: int(m.Month())}
		index[key] = i
	}

	orders, err := s.orders.List(ctx, repository.OrderFilter{Statuses: domain.CompletedOrderStatuses, Since: start})
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	for _, o := range orders {
		if i, ok := index[o.CreatedAt.UTC().Format("2006-01")]; ok {
			points[i].TotalCents += o.TotalCents
		}
	}
	return points, nil
}

// CategoryChart every category with its product count, largest first. Products
// pointing at an unknown category are grouped under UncategorizedName.
func (s *ReportService) CategoryChart(ctx context.Context, actor *domain.User) ([]CategorySlice, error) {
	if err := requireRole(actor, domain.RoleAdmin); err != nil {
		return nil, err
	}
	cats, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	counts, err := s.products.CountByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("count by category: %w", err)
	}

	out := make([]CategorySlice, 0, len(cats)+1)
	for _, c := range cats {
		out = append(out, CategorySlice{CategoryID: c.ID, Name: c.Name, Count: counts[c.ID]})
		delete(counts, c.ID)
	}
	var orphans int64
	for _, n := range counts {
		orphans += n
	}
	if orphans > 0 {
		out = append(out, CategorySlice{Name: UncategorizedName, Count: orphans})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out, nil
}
