package services

import (
	"fmt"

	"cartrans-backend/internal/domain"
	"cartrans-backend/internal/domain/models"
	"cartrans-backend/internal/repositories"
	"cartrans-backend/internal/utils"
)

// TariffService manages the month-indexed rate table. Changing a tariff
// affects future quotes only; persisted orders keep their snapshot.
type TariffService struct {
	TariffRepo repositories.TariffRepository
	RequestID  string
}

func (s TariffService) List() ([]models.Tariff, error) {
	return s.TariffRepo.List()
}

func (s TariffService) Get(id int64) (models.Tariff, error) {
	if id <= 0 {
		return models.Tariff{}, domain.ValidationError{Field: "id", Msg: "must be positive"}
	}
	return s.TariffRepo.GetByID(id)
}

func (s TariffService) Create(month int, under, over float64) (models.Tariff, error) {
	if err := validateTariff(month, under, over); err != nil {
		return models.Tariff{}, err
	}
	tariff, err := s.TariffRepo.Create(month, under, over)
	if err != nil {
		return models.Tariff{}, err
	}
	utils.LogEvent(s.RequestID, "tariff", "create", fmt.Sprintf("month=%d", month))
	return tariff, nil
}

func (s TariffService) Update(id int64, under, over float64) (models.Tariff, error) {
	existing, err := s.Get(id)
	if err != nil {
		return models.Tariff{}, err
	}
	if err := validateTariff(existing.Month, under, over); err != nil {
		return models.Tariff{}, err
	}
	utils.LogEvent(s.RequestID, "tariff", "update", fmt.Sprintf("tariff_id=%d month=%d", id, existing.Month))
	return s.TariffRepo.Update(id, under, over)
}

func validateTariff(month int, under, over float64) error {
	if month < 1 || month > 12 {
		return domain.ValidationError{Field: "month", Msg: "must be between 1 and 12"}
	}
	if under <= 0 || over <= 0 {
		return domain.ValidationError{Field: "pricePerKm", Msg: "rates must be positive"}
	}
	return nil
}
