package handlers

import (
	"strings"

	"service-food-delivery/internal/domain"
	"service-food-delivery/internal/service/auth"
	"service-food-delivery/internal/service/catalog"
)

func (l *locationDTO) toModel() domain.Coordinate {
	return domain.Coordinate{Lat: *l.Lat, Lng: *l.Lng}
}

func locationToResponse(c domain.Coordinate) locationResponse {
	return locationResponse{Lat: c.Lat, Lng: c.Lng}
}

func (r signupRequest) toInput() auth.SignupInput {
	return auth.SignupInput{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Location: r.Location.toModel(),
		Zone:     domain.ZoneType(r.Zone),
	}
}

func customerToResponse(c *domain.Customer) customerDTO {
	return customerDTO{
		ID:           c.ID,
		CustomerID:   c.CustomerID,
		Name:         c.Name,
		Email:        c.Email,
		Location:     locationToResponse(c.Location),
		Zone:         string(c.Zone),
		IsFirstOrder: c.IsFirstOrder,
		IsActive:     c.IsActive,
		CreatedAt:    c.CreatedAt,
	}
}

func sessionToResponse(s *auth.Session) sessionDTO {
	return sessionDTO{Customer: customerToResponse(s.Customer), Token: s.Token}
}

func (r createRestaurantRequest) toModel() *domain.Restaurant {
	return &domain.Restaurant{
		Name:     r.Name,
		Location: r.Location.toModel(),
		Zone:     domain.ZoneType(r.Zone),
	}
}

func restaurantToResponse(r domain.Restaurant) restaurantDTO {
	return restaurantDTO{
		ID:           r.ID,
		RestaurantID: r.RestaurantID,
		Name:         r.Name,
		Location:     locationToResponse(r.Location),
		Zone:         string(r.Zone),
		IsActive:     r.IsActive,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func restaurantsToResponse(list []domain.Restaurant) []restaurantDTO {
	out := make([]restaurantDTO, 0, len(list))
	for _, r := range list {
		out = append(out, restaurantToResponse(r))
	}
	return out
}

func (r createItemRequest) toInput() catalog.ItemInput {
	return catalog.ItemInput{
		RestaurantRef: string(r.RestaurantID),
		Name:          r.Name,
		Price:         *r.Price,
		IsAvailable:   r.IsAvailable,
	}
}

func (r updateItemRequest) toModel(id int64) domain.PartialItemUpdate {
	return domain.PartialItemUpdate{
		ID:          id,
		Name:        r.Name,
		Price:       r.Price,
		IsAvailable: r.IsAvailable,
	}
}

func itemToResponse(i domain.Item) itemDTO {
	return itemDTO{
		ID:           i.ID,
		RestaurantID: i.RestaurantID,
		Name:         i.Name,
		Price:        i.Price,
		IsAvailable:  i.IsAvailable,
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}

func itemsToResponse(list []domain.Item) []itemDTO {
	out := make([]itemDTO, 0, len(list))
	for _, i := range list {
		out = append(out, itemToResponse(i))
	}
	return out
}

func (r createZoneRequest) toModel() *domain.DeliveryZone {
	return &domain.DeliveryZone{
		ZoneType:  domain.ZoneType(r.ZoneType),
		BaseFee:   *r.BaseFee,
		PerKmRate: *r.PerKmRate,
	}
}

func (r updateZoneRequest) toModel(zt domain.ZoneType) domain.PartialZoneUpdate {
	return domain.PartialZoneUpdate{
		ZoneType:  zt,
		BaseFee:   r.BaseFee,
		PerKmRate: r.PerKmRate,
		IsActive:  r.IsActive,
	}
}

func zoneToResponse(z domain.DeliveryZone) zoneDTO {
	return zoneDTO{
		ID:        z.ID,
		ZoneType:  string(z.ZoneType),
		BaseFee:   z.BaseFee,
		PerKmRate: z.PerKmRate,
		IsActive:  z.IsActive,
		CreatedAt: z.CreatedAt,
		UpdatedAt: z.UpdatedAt,
	}
}

func zonesToResponse(list []domain.DeliveryZone) []zoneDTO {
	out := make([]zoneDTO, 0, len(list))
	for _, z := range list {
		out = append(out, zoneToResponse(z))
	}
	return out
}

func (r createPromotionRequest) toModel() *domain.Promotion {
	p := &domain.Promotion{
		Code:              r.PromoCode,
		Name:              r.Name,
		Description:       r.Description,
		Type:              domain.PromotionType(r.Type),
		DiscountType:      domain.DiscountType(r.DiscountType),
		DiscountValue:     *r.DiscountValue,
		MinOrderAmount:    r.MinOrderAmount,
		MaxDiscountAmount: r.MaxDiscountAmount,
		StartDate:         *r.StartDate,
		EndDate:           *r.EndDate,
		UsageLimit:        r.UsageLimit,
	}
	if r.RestaurantID != nil && strings.TrimSpace(*r.RestaurantID) != "" {
		id := strings.TrimSpace(*r.RestaurantID)
		p.RestaurantID = &id
	}
	if r.ZoneType != nil && *r.ZoneType != "" {
		zt := domain.ZoneType(*r.ZoneType)
		p.ZoneType = &zt
	}
	return p
}

func promotionToResponse(p domain.Promotion) promotionDTO {
	out := promotionDTO{
		PromoCode:         p.Code,
		Name:              p.Name,
		Description:       p.Description,
		Type:              string(p.Type),
		DiscountType:      string(p.DiscountType),
		DiscountValue:     p.DiscountValue,
		RestaurantID:      p.RestaurantID,
		MinOrderAmount:    p.MinOrderAmount,
		MaxDiscountAmount: p.MaxDiscountAmount,
		StartDate:         p.StartDate,
		EndDate:           p.EndDate,
		UsageLimit:        p.UsageLimit,
		UsedCount:         p.UsedCount,
		IsActive:          p.IsActive,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
	if p.ZoneType != nil {
		zt := string(*p.ZoneType)
		out.ZoneType = &zt
	}
	return out
}

func promotionsToResponse(list []domain.Promotion) []promotionDTO {
	out := make([]promotionDTO, 0, len(list))
	for _, p := range list {
		out = append(out, promotionToResponse(p))
	}
	return out
}

func (r createOrderRequest) toInput(customerID int64) domain.CreateOrderInput {
	lines := make([]domain.OrderLineRequest, 0, len(r.Items))
	for _, it := range r.Items {
		lines = append(lines, domain.OrderLineRequest{ItemID: it.ItemID, Quantity: it.Qty})
	}
	return domain.CreateOrderInput{
		CustomerID:    customerID,
		RestaurantRef: string(r.Restaurant),
		Items:         lines,
		PromoCode:     r.PromoCode,
	}
}

func orderToResponse(o *domain.Order) orderDTO {
	items := make([]orderLineDTO, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderLineDTO{ItemID: it.ItemID, Quantity: it.Quantity, UnitPrice: it.UnitPrice})
	}
	return orderDTO{
		ID:             o.ID,
		OrderNumber:    o.OrderNumber,
		CustomerID:     o.CustomerID,
		RestaurantID:   o.RestaurantID,
		Items:          items,
		DeliveryZone:   string(o.DeliveryZone),
		DistanceKm:     o.DistanceKm,
		BasePrice:      o.BasePrice,
		DeliveryFee:    o.DeliveryFee,
		ZoneBaseFee:    o.ZoneBaseFee,
		DistanceCost:   o.DistanceCost,
		PeakMultiplier: o.PeakMultiplier,
		PeakSurcharge:  o.PeakSurcharge,
		PromoDiscount:  o.PromoDiscount,
		PromoCode:      o.PromoCode,
		TotalAmount:    o.TotalAmount,
		Status:         string(o.Status),
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

func ordersToResponse(list []domain.Order) []orderDTO {
	out := make([]orderDTO, 0, len(list))
	for i := range list {
		out = append(out, orderToResponse(&list[i]))
	}
	return out
}
