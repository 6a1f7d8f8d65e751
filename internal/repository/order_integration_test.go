//go:build integration

package repository_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"service-food-delivery/internal/domain"
	"service-food-delivery/internal/ports/ordertx"
	"service-food-delivery/internal/repository"
)

type OrderRepositorySuite struct {
	suite.Suite
	pool   *pgxpool.Pool
	repo   *repository.OrderRepo
	promos *repository.PromotionRepo

	customer   *domain.Customer
	restaurant *domain.Restaurant
	item       *domain.Item
}

func (s *OrderRepositorySuite) SetupSuite() {
	s.Require().NotNil(tcPool, "tcPool must be initialized in TestMain")

	s.pool = tcPool
	s.repo = repository.NewOrderRepo(tcPool)
	s.promos = repository.NewPromotionRepo(tcPool)
}

func (s *OrderRepositorySuite) SetupTest() {
	ctx := context.Background()
	s.Require().NoError(truncateAll(ctx, s.pool))

	s.customer = &domain.Customer{
		Name: "Ann", Email: "ann@example.com", PasswordHash: "h",
		Zone: domain.ZoneUrban, IsFirstOrder: true, IsActive: true,
	}
	s.Require().NoError(repository.NewCustomerRepo(s.pool).Create(ctx, s.customer))

	s.restaurant = &domain.Restaurant{Name: "Grill", Zone: domain.ZoneUrban, IsActive: true}
	s.Require().NoError(repository.NewRestaurantRepo(s.pool).Create(ctx, s.restaurant))

	s.item = &domain.Item{RestaurantID: s.restaurant.ID, Name: "Burger", Price: 20, IsAvailable: true}
	s.Require().NoError(repository.NewItemRepo(s.pool).Create(ctx, s.item))
}

func (s *OrderRepositorySuite) newOrder(number string) *domain.Order {
	code := "SAVE10"
	return &domain.Order{
		OrderNumber:    number,
		CustomerID:     s.customer.ID,
		RestaurantID:   s.restaurant.ID,
		Items:          []domain.OrderLineItem{{ItemID: s.item.ID, Quantity: 2, UnitPrice: 20}},
		DeliveryZone:   domain.ZoneUrban,
		DistanceKm:     4,
		BasePrice:      40,
		DeliveryFee:    11,
		ZoneBaseFee:    5,
		DistanceCost:   6,
		PeakMultiplier: 1,
		PromoDiscount:  10,
		PromoCode:      &code,
		TotalAmount:    41,
		Status:         domain.OrderPending,
	}
}

func (s *OrderRepositorySuite) createPromo(code string, limit *int) {
	now := time.Now()
	s.Require().NoError(s.promos.Create(context.Background(), &domain.Promotion{
		Code: code, Name: code, Type: domain.PromoFixedAmount, DiscountType: domain.DiscountFixed,
		DiscountValue: 10, StartDate: now.Add(-time.Hour), EndDate: now.Add(time.Hour),
		UsageLimit: limit, IsActive: true,
	}))
}

func (s *OrderRepositorySuite) TestInsertOrder_RoundTrip() {
	ctx := context.Background()
	o := s.newOrder("ORD-20240613-00001")

	err := s.repo.WithTx(ctx, func(tx ordertx.Repository) error {
		if err := tx.InsertOrder(ctx, o); err != nil {
			return err
		}
		return tx.ClearFirstOrder(ctx, s.customer.ID)
	})
	s.Require().NoError(err)
	s.NotZero(o.ID)

	got, err := s.repo.GetByNumber(ctx, "ORD-20240613-00001")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(o.ID, got.ID)
	s.Equal(41.0, got.TotalAmount)
	s.Equal(1.0, got.PeakMultiplier)
	s.Require().NotNil(got.PromoCode)
	s.Equal("SAVE10", *got.PromoCode)
	s.Equal(o.Items, got.Items)

	c, err := repository.NewCustomerRepo(s.pool).Get(ctx, s.customer.ID)
	s.Require().NoError(err)
	s.False(c.IsFirstOrder)
}

func (s *OrderRepositorySuite) TestInsertOrder_DuplicateNumberKeepsTxUsable() {
	ctx := context.Background()
	s.Require().NoError(s.repo.WithTx(ctx, func(tx ordertx.Repository) error {
		return tx.InsertOrder(ctx, s.newOrder("ORD-20240613-00002"))
	}))

	err := s.repo.WithTx(ctx, func(tx ordertx.Repository) error {
		err := tx.InsertOrder(ctx, s.newOrder("ORD-20240613-00002"))
		s.Require().ErrorIs(err, ordertx.ErrOrderNumberTaken)
		return tx.InsertOrder(ctx, s.newOrder("ORD-20240613-00003"))
	})
	s.Require().NoError(err)

	list, err := s.repo.ListByCustomer(ctx, s.customer.ID, 10, 0)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Len(list[0].Items, 1)
}

func (s *OrderRepositorySuite) TestRollbackLeavesNothing() {
	ctx := context.Background()
	s.createPromo("SAVE10", nil)

	boom := errors.New("boom")
	err := s.repo.WithTx(ctx, func(tx ordertx.Repository) error {
		ok, err := tx.IncrementPromotionUsage(ctx, "SAVE10")
		s.Require().NoError(err)
		s.Require().True(ok)
		if err := tx.InsertOrder(ctx, s.newOrder("ORD-20240613-00004")); err != nil {
			return err
		}
		return boom
	})
	s.ErrorIs(err, boom)

	p, err := s.promos.GetByCode(ctx, "SAVE10")
	s.Require().NoError(err)
	s.Zero(p.UsedCount)

	o, err := s.repo.GetByNumber(ctx, "ORD-20240613-00004")
	s.Require().NoError(err)
	s.Nil(o)
}

func (s *OrderRepositorySuite) TestIncrementPromotionUsage_ConcurrentRespectsLimit() {
	ctx := context.Background()
	limit := 3
	s.createPromo("LIMIT3", &limit)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		applied int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.repo.WithTx(ctx, func(tx ordertx.Repository) error {
				ok, err := tx.IncrementPromotionUsage(ctx, "LIMIT3")
				if err != nil || !ok {
					return err
				}
				mu.Lock()
				applied++
				mu.Unlock()
				return nil
			})
		}()
	}
	wg.Wait()

	s.Equal(3, applied)
	p, err := s.promos.GetByCode(ctx, "LIMIT3")
	s.Require().NoError(err)
	s.Equal(3, p.UsedCount)
}

func (s *OrderRepositorySuite) TestUpdateOrderStatus() {
	ctx := context.Background()
	o := s.newOrder("ORD-20240613-00005")
	s.Require().NoError(s.repo.WithTx(ctx, func(tx ordertx.Repository) error { return tx.InsertOrder(ctx, o) }))

	err := s.repo.WithTx(ctx, func(tx ordertx.Repository) error {
		locked, err := tx.GetOrderForUpdate(ctx, o.ID)
		s.Require().NoError(err)
		s.Require().NotNil(locked)
		s.Equal(domain.OrderPending, locked.Status)
		return tx.UpdateOrderStatus(ctx, o.ID, domain.OrderConfirmed)
	})
	s.Require().NoError(err)

	got, err := s.repo.Get(ctx, o.ID)
	s.Require().NoError(err)
	s.Equal(domain.OrderConfirmed, got.Status)

	s.Error(s.repo.WithTx(ctx, func(tx ordertx.Repository) error {
		return tx.UpdateOrderStatus(ctx, 999, domain.OrderConfirmed)
	}))
}

func TestOrderRepositorySuite(t *testing.T) {
	suite.Run(t, new(OrderRepositorySuite))
}
