package service

import (
	"context"
	"time"

	"github.com/spec-kit/admin-dashboard/internal/domain"
	"github.com/spec-kit/admin-dashboard/internal/observability"
	"github.com/spec-kit/admin-dashboard/internal/store"
)

// StatsService derives summary numbers from the current store contents.
// Pure reads: every call re-scans, nothing is cached or mutated.
type StatsService struct {
	users   *store.Collection[domain.User]
	tickets *store.Collection[domain.SupportTicket]
	orders  *store.Collection[domain.Order]

	now func() time.Time
}

// NewStatsService builds the service.
func NewStatsService(users *store.Collection[domain.User], tickets *store.Collection[domain.SupportTicket], orders *store.Collection[domain.Order]) *StatsService {
	return &StatsService{users: users, tickets: tickets, orders: orders, now: time.Now}
}

// DashboardStats is the summary snapshot shown on the landing screen.
type DashboardStats struct {
	TotalUsers   int     `json:"totalUsers"`
	ActiveUsers  int     `json:"activeUsers"`
	OpenTickets  int     `json:"openTickets"`
	TodayOrders  int     `json:"todayOrders"`
	TodayRevenue float64 `json:"todayRevenue"`
}

// DailyOrderStats is one point of the trailing revenue series.
type DailyOrderStats struct {
	Date    string  `json:"date"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// AnalyticsReport aggregates the breakdowns behind the analytics screen.
type AnalyticsReport struct {
	TicketsByStatus   map[string]int    `json:"ticketsByStatus"`
	UsersByRole       map[string]int    `json:"usersByRole"`
	OrdersByStatus    map[string]int    `json:"ordersByStatus"`
	Last7Days         []DailyOrderStats `json:"last7Days"`
	TotalRevenue      float64           `json:"totalRevenue"`
	AverageOrderValue float64           `json:"averageOrderValue"`
}

// localDay formats a timestamp as its local calendar day. "Today" means
// same calendar day, not a rolling 24h window, so boundary behavior at
// midnight matches the dashboard's expectations.
func localDay(t time.Time) string {
	return t.Local().Format("2006-01-02")
}

// Dashboard computes the landing-screen snapshot from the live collections.
func (s *StatsService) Dashboard(ctx context.Context) (DashboardStats, error) {
	ctx, span := observability.StartSpan(ctx, "stats.dashboard")
	defer span.End()

	var stats DashboardStats

	users, err := s.users.List(ctx)
	if err != nil {
		return stats, err
	}
	tickets, err := s.tickets.List(ctx)
	if err != nil {
		return stats, err
	}
	orders, err := s.orders.List(ctx)
	if err != nil {
		return stats, err
	}

	stats.TotalUsers = len(users)
	for _, u := range users {
		if u.Status == domain.UserStatusActive {
			stats.ActiveUsers++
		}
	}
	for _, t := range tickets {
		if t.Status == domain.TicketStatusOpen {
			stats.OpenTickets++
		}
	}

	today := localDay(s.now())
	for _, o := range orders {
		if localDay(o.OrderDate) == today {
			stats.TodayOrders++
			stats.TodayRevenue += o.TotalAmount
		}
	}
	return stats, nil
}

// Analytics computes the breakdowns for the analytics screen.
func (s *StatsService) Analytics(ctx context.Context) (AnalyticsReport, error) {
	ctx, span := observability.StartSpan(ctx, "stats.analytics")
	defer span.End()

	report := AnalyticsReport{
		TicketsByStatus: map[string]int{},
		UsersByRole:     map[string]int{},
		OrdersByStatus:  map[string]int{},
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return report, err
	}
	tickets, err := s.tickets.List(ctx)
	if err != nil {
		return report, err
	}
	orders, err := s.orders.List(ctx)
	if err != nil {
		return report, err
	}

	for _, u := range users {
		report.UsersByRole[string(u.Role)]++
	}
	for _, t := range tickets {
		report.TicketsByStatus[string(t.Status)]++
	}

	byDay := map[string]*DailyOrderStats{}
	now := s.now()
	for i := 6; i >= 0; i-- {
		day := localDay(now.AddDate(0, 0, -i))
		daily := &DailyOrderStats{Date: day}
		byDay[day] = daily
		report.Last7Days = append(report.Last7Days, DailyOrderStats{Date: day})
	}

	for _, o := range orders {
		report.OrdersByStatus[string(o.Status)]++
		report.TotalRevenue += o.TotalAmount
		if daily, ok := byDay[localDay(o.OrderDate)]; ok {
			daily.Orders++
			daily.Revenue += o.TotalAmount
		}
	}
	for i := range report.Last7Days {
		daily := byDay[report.Last7Days[i].Date]
		report.Last7Days[i].Orders = daily.Orders
		report.Last7Days[i].Revenue = daily.Revenue
	}
	if len(orders) > 0 {
		report.AverageOrderValue = report.TotalRevenue / float64(len(orders))
	}
	return report, nil
}
