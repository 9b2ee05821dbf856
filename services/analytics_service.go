// services/analytics_service.go
package services

import (
	"context"
	"math"
	"time"

	"github.com/Ashish12122003/Menumate-backend/entity"
	"github.com/Ashish12122003/Menumate-backend/repository"

	"golang.org/x/sync/errgroup"
)

type AnalyticsService struct {
	Repo  *repository.AnalyticsRepository
	Shops *ShopService
}

func NewAnalyticsService(repo *repository.AnalyticsRepository, shops *ShopService) *AnalyticsService {
	return &AnalyticsService{Repo: repo, Shops: shops}
}

// DateRange maps a duration keyword to [start, now]. "day" snaps to local
// midnight; week/month windows are calendar subtraction from now; anything
// unrecognized means all-time.
func DateRange(duration string, now time.Time) (time.Time, time.Time) {
	var start time.Time
	switch duration {
	case "day":
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case "week":
		start = now.AddDate(0, 0, -7)
	case "month":
		start = now.AddDate(0, -1, 0)
	case "3month":
		start = now.AddDate(0, -3, 0)
	case "6month":
		start = now.AddDate(0, -6, 0)
	default:
		start = time.Unix(0, 0)
	}
	return start, now
}

type Dashboard struct {
	TotalRevenue         int64                        `json:"totalRevenue"`
	TotalOrders          int64                        `json:"totalOrders"`
	AverageRating        float64                      `json:"averageRating"`
	MostFavItem          *repository.ItemStat         `json:"mostFavItem"`
	LeastFavItem         *repository.ItemStat         `json:"leastFavItem"`
	TopTables            []repository.TableStat       `json:"topTables"`
	TotalCustomers       int                          `json:"totalCustomers"`
	RepeatCustomersCount int                          `json:"repeatCustomersCount"`
	RepeatCustomers      []repository.CustomerStat    `json:"repeatCustomers"`
	AllCustomers         []repository.CustomerProfile `json:"allCustomers"`
}

// ShopDashboard assembles the vendor dashboard snapshot. The sub-queries
// are independent and run concurrently; if any one fails the whole report
// fails — no partial results.
func (s *AnalyticsService) ShopDashboard(ctx context.Context, vendor *entity.Vendor, shopID uint, duration string) (*Dashboard, error) {
	if _, err := s.Shops.AuthorizeShop(shopID, vendor); err != nil {
		return nil, err
	}

	start, end := DateRange(duration, time.Now())

	var (
		revenue, orders int64
		topItems        []repository.ItemStat
		topTables       []repository.TableStat
		repeats         []repository.CustomerStat
		avgRating       float64
		customers       []repository.CustomerProfile
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		revenue, orders, err = s.Repo.OrderTotals(gctx, shopID, start, end)
		return err
	})
	g.Go(func() (err error) {
		topItems, err = s.Repo.TopItems(gctx, shopID, start, end)
		return err
	})
	g.Go(func() (err error) {
		topTables, err = s.Repo.TopTables(gctx, shopID, start, end)
		return err
	})
	g.Go(func() (err error) {
		repeats, err = s.Repo.RepeatCustomers(gctx, shopID, start, end)
		return err
	})
	g.Go(func() (err error) {
		avgRating, err = s.Repo.AverageRating(gctx, shopID)
		return err
	})
	g.Go(func() (err error) {
		customers, err = s.Repo.DistinctCustomers(gctx, shopID, start, end)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	dash := &Dashboard{
		TotalRevenue:         revenue,
		TotalOrders:          orders,
		AverageRating:        math.Round(avgRating*10) / 10,
		TopTables:            topTables,
		TotalCustomers:       len(customers),
		RepeatCustomersCount: len(repeats),
		RepeatCustomers:      repeats,
		AllCustomers:         customers,
	}
	if len(topItems) > 0 {
		// with a single distinct item both point to it
		dash.MostFavItem = &topItems[0]
		dash.LeastFavItem = &topItems[len(topItems)-1]
	}
	return dash, nil
}
