package service

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/qanyare/restaurant-service/internal/models"
	"github.com/qanyare/restaurant-service/internal/storage"
)

// AnalyticsService computes dashboard figures from the live collections
type AnalyticsService struct {
	repos *storage.Repositories
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(repos *storage.Repositories) *AnalyticsService {
	return &AnalyticsService{repos: repos}
}

// Stats reads orders, reservations, approved reviews and active staff concurrently
// and aggregates them
func (s *AnalyticsService) Stats(ctx context.Context) (*models.Stats, error) {
	var (
		orders       []models.Order
		reservations []models.Reservation
		reviews      []models.Review
		staff        []models.Staff
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		orders, err = s.repos.Order.List(gctx, models.OrderFilter{})
		return err
	})
	g.Go(func() (err error) {
		reservations, err = s.repos.Reservation.List(gctx, models.ReservationFilter{})
		return err
	})
	g.Go(func() (err error) {
		reviews, err = s.repos.Review.List(gctx, models.ReviewFilter{ApprovedOnly: true})
		return err
	})
	g.Go(func() (err error) {
		staff, err = s.repos.Staff.List(gctx, models.StaffFilter{})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load analytics data: %w", err)
	}

	return computeStats(orders, reservations, reviews, staff), nil
}

func computeStats(orders []models.Order, reservations []models.Reservation, reviews []models.Review, staff []models.Staff) *models.Stats {
	stats := &models.Stats{
		TotalOrders:       len(orders),
		TotalReservations: len(reservations),
		TotalReviews:      len(reviews),
		TotalStaff:        len(staff),
	}

	customers := make(map[string]struct{}, len(orders)+len(reservations))
	for _, o := range orders {
		stats.TotalRevenue += o.Total
		customers[o.CustomerName] = struct{}{}
	}
	for _, r := range reservations {
		customers[r.CustomerName] = struct{}{}
	}
	stats.TotalCustomers = len(customers)

	if len(reviews) > 0 {
		sum := 0
		for _, r := range reviews {
			sum += r.Rating
		}
		avg := float64(sum) / float64(len(reviews))
		stats.AvgRating = math.Round(avg*10) / 10
	}

	return stats
}
