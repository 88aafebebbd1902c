package services

import (
	"sort"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// SalesReport summarizes a set of orders for the admin dashboard.
// Revenue counts delivered orders only; everything short of delivered is
// "pending" work in flight.
type SalesReport struct {
	TotalCount     int
	CompletedCount int
	PendingCount   int
	TotalRevenue   kernel.Money
	DailyRevenue   []DailyRevenue
}

// DailyRevenue is one bucket of the per-day revenue series. Date is the
// calendar date ("2006-01-02") of the orders' creation time in the viewer's
// time zone.
type DailyRevenue struct {
	Date    string
	Orders  int
	Revenue kernel.Money
}

// BuildSalesReport aggregates orders into a SalesReport. It is a pure
// function over the snapshot it is given: the same orders always produce the
// same report, and each order always lands in the same daily bucket because
// created_at is immutable and the bucket key is derived from it alone.
//
// loc chooses the viewer's time zone for calendar bucketing; nil means the
// process-local zone. The daily series covers delivered orders only, sorted
// by date ascending.
func BuildSalesReport(orders []*order.Order, loc *time.Location) SalesReport {
	if loc == nil {
		loc = time.Local
	}

	report := SalesReport{}
	buckets := make(map[string]*DailyRevenue)

	for _, o := range orders {
		report.TotalCount++

		if !o.IsDelivered() {
			report.PendingCount++
			continue
		}

		report.CompletedCount++
		report.TotalRevenue = report.TotalRevenue.Add(o.Total())

		date := o.CreatedAt().In(loc).Format("2006-01-02")
		bucket, ok := buckets[date]
		if !ok {
			bucket = &DailyRevenue{Date: date}
			buckets[date] = bucket
		}
		bucket.Orders++
		bucket.Revenue = bucket.Revenue.Add(o.Total())
	}

	report.DailyRevenue = make([]DailyRevenue, 0, len(buckets))
	for _, bucket := range buckets {
		report.DailyRevenue = append(report.DailyRevenue, *bucket)
	}
	sort.Slice(report.DailyRevenue, func(i, j int) bool {
		return report.DailyRevenue[i].Date < report.DailyRevenue[j].Date
	})

	return report
}
