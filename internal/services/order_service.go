package services

import (
	"fmt"
	"strings"
	"time"

	"cartrans-backend/internal/domain"
	"cartrans-backend/internal/domain/models"
	"cartrans-backend/internal/repositories"
	"cartrans-backend/internal/utils"
)

// OrderService orchestrates the calculator and persistence for the order
// registry. Quotes are always recomputed server-side; client-supplied prices
// are never trusted.
type OrderService struct {
	OrderRepo repositories.OrderRepository
	CityRepo  repositories.CityRepository
	UserRepo  repositories.UserRepository
	Calc      PriceCalculator
	RequestID string
}

// CalculateQuote validates both cities and returns the price breakdown
// without persisting anything.
func (s OrderService) CalculateQuote(cityFromID, cityToID int64, startDate string) (Quote, error) {
	cityFrom, cityTo, start, err := s.resolveRoute(cityFromID, cityToID, startDate)
	if err != nil {
		return Quote{}, err
	}
	return s.Calc.Calculate(cityFrom.Name, cityTo.Name, start)
}

// CreateOrder recomputes the quote and persists it as an unpaid order.
func (s OrderService) CreateOrder(userID int64, carBrand string, cityFromID, cityToID int64, startDate string) (models.Order, error) {
	if strings.TrimSpace(carBrand) == "" {
		return models.Order{}, domain.ValidationError{Field: "carBrand", Msg: "must not be empty"}
	}

	user, err := s.UserRepo.GetByID(userID)
	if err != nil {
		return models.Order{}, err
	}

	cityFrom, cityTo, start, err := s.resolveRoute(cityFromID, cityToID, startDate)
	if err != nil {
		return models.Order{}, err
	}

	quote, err := s.Calc.Calculate(cityFrom.Name, cityTo.Name, start)
	if err != nil {
		return models.Order{}, err
	}

	order, err := s.OrderRepo.Create(models.Order{
		UserID:               user.ID,
		CarBrand:             strings.TrimSpace(carBrand),
		CityFromID:           cityFrom.ID,
		CityToID:             cityTo.ID,
		StartDate:            utils.FormatDate(start),
		DistanceKm:           quote.DistanceKm,
		AppliedTariff:        quote.AppliedTariff,
		IsFixedRoute:         quote.IsFixedRoute,
		TransportPrice:       quote.TransportPrice,
		InsurancePrice:       quote.InsurancePrice,
		TotalPrice:           quote.TotalPrice,
		DurationHours:        quote.DurationHours,
		DurationDays:         quote.DurationDays,
		EstimatedArrivalDate: quote.EstimatedArrivalDate,
		PaymentStatus:        models.PaymentUnpaid,
	})
	if err != nil {
		return models.Order{}, err
	}

	utils.LogEvent(s.RequestID, "order", "create",
		fmt.Sprintf("order_id=%d user_id=%d route=%s-%s total=%s",
			order.ID, user.ID, cityFrom.Name, cityTo.Name, utils.FormatMoney(order.TotalPrice)))

	return order, nil
}

func (s OrderService) GetOrder(id int64) (models.Order, error) {
	if id <= 0 {
		return models.Order{}, domain.ValidationError{Field: "id", Msg: "must be positive"}
	}
	return s.OrderRepo.GetByID(id)
}

// ListOrders returns a filtered page of the registry plus the total count.
func (s OrderService) ListOrders(opts repositories.ListOptions) ([]models.Order, int, error) {
	return s.OrderRepo.List(opts)
}

// UpdatePaymentStatus overwrites the payment status unconditionally. This is
// an administrative override, not a guarded state machine: any transition
// between known statuses is allowed.
func (s OrderService) UpdatePaymentStatus(id int64, status models.PaymentStatus) (models.Order, error) {
	if _, err := s.OrderRepo.GetByID(id); err != nil {
		return models.Order{}, err
	}
	if err := s.OrderRepo.UpdatePaymentStatus(id, status); err != nil {
		return models.Order{}, err
	}

	utils.LogEvent(s.RequestID, "order", "payment_status",
		fmt.Sprintf("order_id=%d status=%s", id, status))

	return s.OrderRepo.GetByID(id)
}

func (s OrderService) resolveRoute(cityFromID, cityToID int64, startDate string) (models.City, models.City, time.Time, error) {
	var zero time.Time

	if cityFromID <= 0 || cityToID <= 0 {
		return models.City{}, models.City{}, zero, domain.ValidationError{Field: "city", Msg: "city ids must be positive"}
	}

	start, err := utils.ParseDate(startDate)
	if err != nil {
		return models.City{}, models.City{}, zero, domain.ValidationError{Field: "startDate", Msg: "expected YYYY-MM-DD", Err: err}
	}

	cityFrom, err := s.CityRepo.GetByID(cityFromID)
	if err != nil {
		return models.City{}, models.City{}, zero, err
	}
	cityTo, err := s.CityRepo.GetByID(cityToID)
	if err != nil {
		return models.City{}, models.City{}, zero, err
	}

	return cityFrom, cityTo, start, nil
}
