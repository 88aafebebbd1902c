package queries_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"

	"github.com/stretchr/testify/require"
)

type fakeOrderReader struct {
	orders []*order.Order
	err    error
}

func (f fakeOrderReader) GetAll(_ context.Context) ([]*order.Order, error) {
	return f.orders, f.err
}

type fakeMenuCache struct {
	payload []byte
	hits    int
	sets    int
}

func (c *fakeMenuCache) Get(_ context.Context) ([]byte, bool, error) {
	c.hits++
	return c.payload, c.payload != nil, nil
}

func (c *fakeMenuCache) Set(_ context.Context, payload []byte) error {
	c.sets++
	c.payload = payload
	return nil
}

func (c *fakeMenuCache) Invalidate(_ context.Context) error {
	c.payload = nil
	return nil
}

func mustActor(t *testing.T, role account.Role) account.Actor {
	t.Helper()
	actor, err := account.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return actor
}

func deliveredOrder(t *testing.T, cents int64) *order.Order {
	t.Helper()

	guest, err := order.NewGuestContact("Dana", "+15550100", "")
	require.NoError(t, err)
	price, err := kernel.NewMoneyFromCents(cents)
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), "Margherita", price, 1)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), guest, "12 Oak Ave", "", []order.Item{item})
	require.NoError(t, err)

	require.NoError(t, o.ChangeStatus(order.Cooking))
	require.NoError(t, o.ChangeStatus(order.Ready))
	require.NoError(t, o.AssignDriver(kernel.NewUUID()))
	require.NoError(t, o.ChangeStatus(order.PickedUp))
	require.NoError(t, o.ChangeStatus(order.Delivered))
	return o
}

func TestGetSalesReportQueryHandler(t *testing.T) {
	t.Run("admin gets delivered revenue", func(t *testing.T) {
		reader := fakeOrderReader{orders: []*order.Order{
			deliveredOrder(t, 1000),
			deliveredOrder(t, 2350),
		}}

		query, err := queries.NewGetSalesReportQuery(time.UTC, mustActor(t, account.Admin))
		require.NoError(t, err)

		handler := queries.NewGetSalesReportQueryHandler(reader)
		report, err := handler.Handle(context.Background(), query)
		require.NoError(t, err)

		require.Equal(t, 2, report.TotalCount)
		require.Equal(t, 2, report.CompletedCount)
		require.Equal(t, "33.50", report.TotalRevenue.String())
		require.Len(t, report.DailyRevenue, 1)
	})

	t.Run("staff may not read reports", func(t *testing.T) {
		query, err := queries.NewGetSalesReportQuery(nil, mustActor(t, account.KitchenStaff))
		require.NoError(t, err)

		handler := queries.NewGetSalesReportQueryHandler(fakeOrderReader{})
		_, err = handler.Handle(context.Background(), query)
		require.ErrorIs(t, err, services.ErrForbidden)
	})
}

func TestGetMenuQueryHandler_CacheHit(t *testing.T) {
	cached := []queries.MenuItemResponse{
		{ID: kernel.NewUUID().String(), Name: "Margherita", Price: "10.00", Category: "Main", Available: true},
	}
	payload, err := json.Marshal(cached)
	require.NoError(t, err)

	cache := &fakeMenuCache{payload: payload}
	handler := queries.NewGetMenuQueryHandler(nil, cache)

	query, err := queries.NewGetMenuQuery(false, account.NewGuestActor())
	require.NoError(t, err)

	items, err := handler.Handle(context.Background(), query)
	require.NoError(t, err)
	require.Equal(t, cached, items)
	require.Equal(t, 1, cache.hits)
	require.Equal(t, 0, cache.sets)
}

func TestGetMenuQueryHandler_StaffViewRequiresPermission(t *testing.T) {
	handler := queries.NewGetMenuQueryHandler(nil, &fakeMenuCache{})

	query, err := queries.NewGetMenuQuery(true, mustActor(t, account.Customer))
	require.NoError(t, err)

	_, err = handler.Handle(context.Background(), query)
	require.ErrorIs(t, err, services.ErrForbidden)
}

func TestQueryConstructorGuards(t *testing.T) {
	var listOrders queries.GetOrdersQuery
	require.ErrorIs(t, listOrders.Validate(), queries.ErrGetOrdersQueryIsNotConstructed)

	var track queries.TrackOrderQuery
	require.ErrorIs(t, track.Validate(), queries.ErrTrackOrderQueryIsNotConstructed)

	var report queries.GetSalesReportQuery
	require.ErrorIs(t, report.Validate(), queries.ErrGetSalesReportQueryIsNotConstructed)
}
