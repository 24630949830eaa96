package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/admin-dashboard/internal/blobstore"
	"github.com/spec-kit/admin-dashboard/internal/config"
	"github.com/spec-kit/admin-dashboard/internal/domain"
	"github.com/spec-kit/admin-dashboard/internal/store"
)

func newStatsFixture(t *testing.T) (*StatsService, *store.Collections) {
	t.Helper()
	blobs := blobstore.NewMemoryStore()
	cfg := config.StoreConfig{KeyPrefix: "test_"}
	collections := store.NewCollections(cfg, blobs, zap.NewNop())
	svc := NewStatsService(collections.Users, collections.Tickets, collections.Orders)
	return svc, collections
}

func TestDashboardActiveUsersScenario(t *testing.T) {
	svc, collections := newStatsFixture(t)
	ctx := context.Background()

	require.NoError(t, collections.Users.Seed(ctx, []domain.User{
		{ID: "u1", Name: "A", Email: "a@example.com", Status: domain.UserStatusActive},
		{ID: "u2", Name: "B", Email: "b@example.com", Status: domain.UserStatusInactive},
	}))

	stats, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalUsers)
	assert.Equal(t, 1, stats.ActiveUsers)
}

func TestDashboardCountsAndRevenue(t *testing.T) {
	svc, collections := newStatsFixture(t)
	ctx := context.Background()
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.Local)
	svc.now = func() time.Time { return now }

	_, err := collections.Tickets.Create(ctx, domain.SupportTicket{
		ID: "T1", Subject: "s", Status: domain.TicketStatusOpen, CustomerID: "1",
	})
	require.NoError(t, err)
	_, err = collections.Tickets.Create(ctx, domain.SupportTicket{
		ID: "T2", Subject: "s", Status: domain.TicketStatusClosed, CustomerID: "1",
	})
	require.NoError(t, err)

	// Two orders today, one from yesterday.
	for _, o := range []domain.Order{
		{ID: "O1", OrderDate: now, TotalAmount: 10.50},
		{ID: "O2", OrderDate: now.Add(-time.Minute), TotalAmount: 4.50},
		{ID: "O3", OrderDate: now.AddDate(0, 0, -1), TotalAmount: 99},
	} {
		_, err = collections.Orders.Create(ctx, o)
		require.NoError(t, err)
	}

	stats, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.OpenTickets)
	assert.Equal(t, 2, stats.TodayOrders)
	assert.InDelta(t, 15.0, stats.TodayRevenue, 1e-9)
}

func TestDashboardIsIdempotent(t *testing.T) {
	svc, collections := newStatsFixture(t)
	ctx := context.Background()

	require.NoError(t, collections.Users.Seed(ctx, store.SeedUsers()))
	require.NoError(t, collections.Tickets.Seed(ctx, store.SeedTickets()))
	require.NoError(t, collections.Orders.Seed(ctx, store.SeedOrders()))

	first, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	second, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAnalyticsBreakdowns(t *testing.T) {
	svc, collections := newStatsFixture(t)
	ctx := context.Background()
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.Local)
	svc.now = func() time.Time { return now }

	require.NoError(t, collections.Users.Seed(ctx, []domain.User{
		{ID: "u1", Role: domain.RoleAdmin},
		{ID: "u2", Role: domain.RoleManager},
		{ID: "u3", Role: domain.RoleUser},
		{ID: "u4", Role: domain.RoleUser},
	}))
	require.NoError(t, collections.Tickets.Seed(ctx, []domain.SupportTicket{
		{ID: "t1", Status: domain.TicketStatusOpen},
		{ID: "t2", Status: domain.TicketStatusOpen},
		{ID: "t3", Status: domain.TicketStatusClosed},
	}))
	require.NoError(t, collections.Orders.Seed(ctx, []domain.Order{
		{ID: "o1", Status: domain.OrderStatusPending, OrderDate: now, TotalAmount: 10},
		{ID: "o2", Status: domain.OrderStatusShipped, OrderDate: now.AddDate(0, 0, -3), TotalAmount: 30},
		{ID: "o3", Status: domain.OrderStatusDelivered, OrderDate: now.AddDate(0, 0, -30), TotalAmount: 20},
	}))

	report, err := svc.Analytics(ctx)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"Admin": 1, "Manager": 1, "User": 2}, report.UsersByRole)
	assert.Equal(t, map[string]int{"Open": 2, "Closed": 1}, report.TicketsByStatus)
	assert.Equal(t, map[string]int{"Pending": 1, "Shipped": 1, "Delivered": 1}, report.OrdersByStatus)
	assert.InDelta(t, 60.0, report.TotalRevenue, 1e-9)
	assert.InDelta(t, 20.0, report.AverageOrderValue, 1e-9)

	require.Len(t, report.Last7Days, 7)
	var counted int
	var revenue float64
	for _, day := range report.Last7Days {
		counted += day.Orders
		revenue += day.Revenue
	}
	// o3 is outside the trailing window.
	assert.Equal(t, 2, counted)
	assert.InDelta(t, 40.0, revenue, 1e-9)
	assert.Equal(t, now.Local().Format("2006-01-02"), report.Last7Days[6].Date)
}

func TestAnalyticsEmptyStore(t *testing.T) {
	svc, _ := newStatsFixture(t)

	report, err := svc.Analytics(context.Background())
	require.NoError(t, err)
	assert.Zero(t, report.TotalRevenue)
	assert.Zero(t, report.AverageOrderValue)
	assert.Empty(t, report.OrdersByStatus)
	require.Len(t, report.Last7Days, 7)
}
