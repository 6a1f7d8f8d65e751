package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"service-food-delivery/internal/apperr"
	"service-food-delivery/internal/domain"
)

func newCtrl(t *testing.T) *gomock.Controller {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return ctrl
}

func ptr[T any](v T) *T { return &v }

func newTestService(t *testing.T) (*Service, *MockrestaurantRepository, *MockitemRepository) {
	t.Helper()
	ctrl := newCtrl(t)
	restaurants := NewMockrestaurantRepository(ctrl)
	items := NewMockitemRepository(ctrl)
	return NewService(restaurants, items, time.Second, nil), restaurants, items
}

func TestNewService_DefaultTimeout(t *testing.T) {
	t.Parallel()

	s := NewService(nil, nil, -time.Second, nil)
	require.Equal(t, 3*time.Second, s.operationTimeout)
}

func TestService_CreateRestaurant(t *testing.T) {
	t.Parallel()

	s, restaurants, _ := newTestService(t)
	restaurants.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *domain.Restaurant) error {
			require.Equal(t, "Pizza Place", r.Name)
			require.True(t, r.IsActive)
			r.RestaurantID = "REST-001"
			return nil
		})

	r := &domain.Restaurant{
		Name:     "  Pizza Place ",
		Location: domain.Coordinate{Lat: 40.7, Lng: -74},
		Zone:     domain.ZoneUrban,
	}
	require.NoError(t, s.CreateRestaurant(context.Background(), r))
	require.Equal(t, "REST-001", r.RestaurantID)
}

func TestService_CreateRestaurant_Validation(t *testing.T) {
	t.Parallel()

	s, _, _ := newTestService(t)
	cases := []*domain.Restaurant{
		nil,
		{Name: " ", Zone: domain.ZoneUrban},
		{Name: "A", Zone: "Center"},
		{Name: "A", Zone: domain.ZoneUrban, Location: domain.Coordinate{Lat: 91}},
		{Name: "A", Zone: domain.ZoneUrban, Location: domain.Coordinate{Lng: -181}},
	}
	for _, r := range cases {
		require.ErrorIs(t, s.CreateRestaurant(context.Background(), r), apperr.ErrInvalid)
	}
}

func TestService_GetRestaurant_ByIDOrPublicID(t *testing.T) {
	t.Parallel()

	s, restaurants, _ := newTestService(t)
	want := &domain.Restaurant{ID: 4, RestaurantID: "REST-004"}
	restaurants.EXPECT().Get(gomock.Any(), int64(4)).Return(want, nil)
	restaurants.EXPECT().GetByPublicID(gomock.Any(), "REST-004").Return(want, nil)
	restaurants.EXPECT().GetByPublicID(gomock.Any(), "REST-999").Return(nil, nil)

	got, err := s.GetRestaurant(context.Background(), "4")
	require.NoError(t, err)
	require.Equal(t, want, got)

	got, err = s.GetRestaurant(context.Background(), "rest-004")
	require.NoError(t, err)
	require.Equal(t, want, got)

	_, err = s.GetRestaurant(context.Background(), "REST-999")
	require.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = s.GetRestaurant(context.Background(), "")
	require.ErrorIs(t, err, apperr.ErrInvalid)
}

func TestService_CreateItem(t *testing.T) {
	t.Parallel()

	s, restaurants, items := newTestService(t)
	restaurants.EXPECT().GetByPublicID(gomock.Any(), "REST-001").Return(&domain.Restaurant{ID: 1}, nil)
	items.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, it *domain.Item) error {
			it.ID = 10
			return nil
		})

	it, err := s.CreateItem(context.Background(), ItemInput{RestaurantRef: "REST-001", Name: "Margherita", Price: 12.5})
	require.NoError(t, err)
	require.Equal(t, int64(10), it.ID)
	require.Equal(t, int64(1), it.RestaurantID)
	require.True(t, it.IsAvailable)
}

func TestService_CreateItem_ExplicitlyUnavailable(t *testing.T) {
	t.Parallel()

	s, restaurants, items := newTestService(t)
	restaurants.EXPECT().Get(gomock.Any(), int64(1)).Return(&domain.Restaurant{ID: 1}, nil)
	items.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	it, err := s.CreateItem(context.Background(), ItemInput{RestaurantRef: "1", Name: "Soup", IsAvailable: ptr(false)})
	require.NoError(t, err)
	require.False(t, it.IsAvailable)
}

func TestService_CreateItem_Errors(t *testing.T) {
	t.Parallel()

	s, restaurants, _ := newTestService(t)
	restaurants.EXPECT().Get(gomock.Any(), int64(2)).Return(nil, nil)

	_, err := s.CreateItem(context.Background(), ItemInput{RestaurantRef: "1", Name: "", Price: 1})
	require.ErrorIs(t, err, apperr.ErrInvalid)

	_, err = s.CreateItem(context.Background(), ItemInput{RestaurantRef: "1", Name: "X", Price: -1})
	require.ErrorIs(t, err, apperr.ErrInvalid)

	_, err = s.CreateItem(context.Background(), ItemInput{RestaurantRef: "2", Name: "X", Price: 1})
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestService_ListItems(t *testing.T) {
	t.Parallel()

	s, restaurants, items := newTestService(t)
	restaurants.EXPECT().GetByPublicID(gomock.Any(), "REST-002").Return(&domain.Restaurant{ID: 2}, nil)
	items.EXPECT().List(gomock.Any(), domain.ItemFilter{RestaurantID: 2}).Return([]domain.Item{{ID: 1}}, nil)
	items.EXPECT().List(gomock.Any(), domain.ItemFilter{}).Return([]domain.Item{{ID: 1}, {ID: 2}}, nil)

	got, err := s.ListItems(context.Background(), "REST-002")
	require.NoError(t, err)
	require.Len(t, got, 1)

	got, err = s.ListItems(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestService_GetItem(t *testing.T) {
	t.Parallel()

	s, _, items := newTestService(t)
	items.EXPECT().Get(gomock.Any(), int64(1)).Return(&domain.Item{ID: 1}, nil)
	items.EXPECT().Get(gomock.Any(), int64(2)).Return(nil, nil)

	it, err := s.GetItem(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, int64(1), it.ID)

	_, err = s.GetItem(context.Background(), 2)
	require.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = s.GetItem(context.Background(), 0)
	require.ErrorIs(t, err, apperr.ErrInvalid)
}

func TestService_UpdateItem(t *testing.T) {
	t.Parallel()

	s, _, items := newTestService(t)
	items.EXPECT().UpdatePartial(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u domain.PartialItemUpdate) (*domain.Item, error) {
			require.Equal(t, "Pepperoni", *u.Name)
			return &domain.Item{ID: u.ID, Name: *u.Name}, nil
		})

	it, err := s.UpdateItem(context.Background(), domain.PartialItemUpdate{ID: 3, Name: ptr(" Pepperoni ")})
	require.NoError(t, err)
	require.Equal(t, "Pepperoni", it.Name)
}

func TestService_UpdateItem_Validation(t *testing.T) {
	t.Parallel()

	s, _, items := newTestService(t)
	items.EXPECT().UpdatePartial(gomock.Any(), gomock.Any()).Return(nil, nil)

	cases := []domain.PartialItemUpdate{
		{ID: 0, Price: ptr(1.0)},
		{ID: 1},
		{ID: 1, Name: ptr("  ")},
		{ID: 1, Price: ptr(-0.01)},
	}
	for _, u := range cases {
		_, err := s.UpdateItem(context.Background(), u)
		require.ErrorIs(t, err, apperr.ErrInvalid)
	}

	_, err := s.UpdateItem(context.Background(), domain.PartialItemUpdate{ID: 99, IsAvailable: ptr(false)})
	require.ErrorIs(t, err, apperr.ErrNotFound)
}
