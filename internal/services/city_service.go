package services

import (
	"fmt"
	"strings"

	"cartrans-backend/internal/domain"
	"cartrans-backend/internal/domain/models"
	"cartrans-backend/internal/repositories"
	"cartrans-backend/internal/utils"
)

// CityService manages the city registry. Deletion is refused while any
// order references the city, so historical orders stay resolvable.
type CityService struct {
	CityRepo  repositories.CityRepository
	OrderRepo repositories.OrderRepository
	RequestID string
}

func (s CityService) List() ([]models.City, error) {
	return s.CityRepo.List()
}

func (s CityService) Get(id int64) (models.City, error) {
	if id <= 0 {
		return models.City{}, domain.ValidationError{Field: "id", Msg: "must be positive"}
	}
	return s.CityRepo.GetByID(id)
}

func (s CityService) Create(name string) (models.City, error) {
	if strings.TrimSpace(name) == "" {
		return models.City{}, domain.ValidationError{Field: "name", Msg: "must not be empty"}
	}
	city, err := s.CityRepo.Create(name)
	if err != nil {
		return models.City{}, err
	}
	utils.LogEvent(s.RequestID, "city", "create", fmt.Sprintf("city_id=%d name=%s", city.ID, city.Name))
	return city, nil
}

func (s CityService) Update(id int64, name string) (models.City, error) {
	if strings.TrimSpace(name) == "" {
		return models.City{}, domain.ValidationError{Field: "name", Msg: "must not be empty"}
	}
	if _, err := s.CityRepo.GetByID(id); err != nil {
		return models.City{}, err
	}
	return s.CityRepo.Update(id, name)
}

func (s CityService) Delete(id int64) error {
	if _, err := s.CityRepo.GetByID(id); err != nil {
		return err
	}

	referencing, err := s.OrderRepo.CountByCity(id)
	if err != nil {
		return err
	}
	if referencing > 0 {
		return domain.ConflictError{
			Resource: "city",
			Msg:      fmt.Sprintf("%d order(s) reference this city", referencing),
		}
	}

	if err := s.CityRepo.Delete(id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "city", "delete", fmt.Sprintf("city_id=%d", id))
	return nil
}
