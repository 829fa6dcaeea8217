package services

import (
	"fmt"
	"strings"

	"cartrans-backend/internal/domain"
	"cartrans-backend/internal/domain/models"
	"cartrans-backend/internal/repositories"
	"cartrans-backend/internal/utils"
)

// UserService creates and looks up customers.
type UserService struct {
	UserRepo  repositories.UserRepository
	OrderRepo repositories.OrderRepository
	RequestID string
}

func (s UserService) Create(fullName, phone string) (models.User, error) {
	if strings.TrimSpace(fullName) == "" {
		return models.User{}, domain.ValidationError{Field: "fullName", Msg: "must not be empty"}
	}
	if strings.TrimSpace(phone) == "" {
		return models.User{}, domain.ValidationError{Field: "phone", Msg: "must not be empty"}
	}

	user, err := s.UserRepo.Create(fullName, phone)
	if err != nil {
		return models.User{}, err
	}
	utils.LogEvent(s.RequestID, "user", "create", fmt.Sprintf("user_id=%d", user.ID))
	return user, nil
}

// GetProfile returns a user together with their order history, newest first.
func (s UserService) GetProfile(id int64) (models.User, error) {
	if id <= 0 {
		return models.User{}, domain.ValidationError{Field: "id", Msg: "must be positive"}
	}

	user, err := s.UserRepo.GetByID(id)
	if err != nil {
		return models.User{}, err
	}

	orders, err := s.OrderRepo.ListByUser(id)
	if err != nil {
		return models.User{}, err
	}
	user.Orders = orders
	return user, nil
}

func (s UserService) GetByPhone(phone string) (models.User, error) {
	if strings.TrimSpace(phone) == "" {
		return models.User{}, domain.ValidationError{Field: "phone", Msg: "must not be empty"}
	}
	return s.UserRepo.GetByPhone(phone)
}
