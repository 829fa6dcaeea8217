package services

import (
	"testing"
	"time"

	"cartrans-backend/internal/config"
	"cartrans-backend/internal/domain"
	"cartrans-backend/internal/domain/models"
	"cartrans-backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func stubCalculator(distance int) PriceCalculator {
	return PriceCalculator{
		Cfg:      config.DefaultPricing(),
		Distance: func(from, to string) int { return distance },
		TariffByMonth: func(month int) (models.Tariff, bool, error) {
			return models.Tariff{}, false, nil
		},
	}
}

func orderServiceWithDB(t *testing.T) (OrderService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := OrderService{
		OrderRepo: repositories.OrderRepository{DB: db},
		CityRepo:  repositories.CityRepository{DB: db},
		UserRepo:  repositories.UserRepository{DB: db},
		Calc:      stubCalculator(1000),
	}
	return svc, mock, func() { db.Close() }
}

func userRows(id int64, name, phone string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "full_name", "phone", "created_at", "updated_at"}).
		AddRow(id, name, phone, now, now)
}

func cityRows(id int64, name string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "name", "created_at", "updated_at"}).
		AddRow(id, name, now, now)
}

func orderJoinRows(id int64, status string) *sqlmock.Rows {
	now := time.Now()
	start := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.Local)
	return sqlmock.NewRows([]string{
		"id", "user_id", "car_brand", "city_from_id", "city_to_id",
		"start_date", "distance_km", "applied_tariff", "is_fixed_route",
		"transport_price", "insurance_price", "total_price",
		"duration_hours", "duration_days", "estimated_arrival_date",
		"payment_status", "created_at", "updated_at",
		"full_name", "phone", "cf_name", "ct_name",
	}).AddRow(
		id, 5, "BMW X5", 1, 2,
		start, 1000, 150.0, false,
		150000.0, 15000.0, 165000.0,
		24, 1, start.AddDate(0, 0, 1),
		status, now, now,
		"Иван Петров", "+79990001122", "Новосибирск", "Казань",
	)
}

func TestCreateOrderPersistsRecomputedQuote(t *testing.T) {
	svc, mock, closeDB := orderServiceWithDB(t)
	defer closeDB()

	mock.ExpectQuery("FROM users").WithArgs(int64(5)).
		WillReturnRows(userRows(5, "Иван Петров", "+79990001122"))
	mock.ExpectQuery("FROM cities").WithArgs(int64(1)).
		WillReturnRows(cityRows(1, "Новосибирск"))
	mock.ExpectQuery("FROM cities").WithArgs(int64(2)).
		WillReturnRows(cityRows(2, "Казань"))

	// Fallback distance 1000 km at default 150/km: transport 150000,
	// insurance 15000, total 165000, 24h / 1 day.
	mock.ExpectExec("INSERT INTO orders").WithArgs(
		int64(5), "BMW X5", int64(1), int64(2), "2026-09-01",
		1000, 150.0, false,
		150000.0, 15000.0, 165000.0,
		24, 1, "2026-09-02",
		"unpaid",
	).WillReturnResult(sqlmock.NewResult(7, 1))

	mock.ExpectQuery("FROM orders o").WithArgs(int64(7)).
		WillReturnRows(orderJoinRows(7, "unpaid"))

	order, err := svc.CreateOrder(5, "BMW X5", 1, 2, "2026-09-01")
	if err != nil {
		t.Fatalf("CreateOrder error: %v", err)
	}
	if order.ID != 7 {
		t.Fatalf("expected order id 7, got %d", order.ID)
	}
	if order.PaymentStatus != models.PaymentUnpaid {
		t.Fatalf("new orders must start unpaid, got %s", order.PaymentStatus)
	}
	if order.CityFromName != "Новосибирск" || order.CityToName != "Казань" {
		t.Fatalf("city names not resolved: %q -> %q", order.CityFromName, order.CityToName)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateOrderUnknownCity(t *testing.T) {
	svc, mock, closeDB := orderServiceWithDB(t)
	defer closeDB()

	mock.ExpectQuery("FROM users").WithArgs(int64(5)).
		WillReturnRows(userRows(5, "Иван Петров", "+79990001122"))
	mock.ExpectQuery("FROM cities").WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at", "updated_at"}))

	_, err := svc.CreateOrder(5, "BMW X5", 99, 2, "2026-09-01")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCreateOrderRejectsBadDate(t *testing.T) {
	svc, mock, closeDB := orderServiceWithDB(t)
	defer closeDB()

	mock.ExpectQuery("FROM users").WithArgs(int64(5)).
		WillReturnRows(userRows(5, "Иван Петров", "+79990001122"))

	_, err := svc.CreateOrder(5, "BMW X5", 1, 2, "01.09.2026")
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCalculateQuoteDoesNotPersist(t *testing.T) {
	svc, mock, closeDB := orderServiceWithDB(t)
	defer closeDB()

	mock.ExpectQuery("FROM cities").WithArgs(int64(1)).
		WillReturnRows(cityRows(1, "Новосибирск"))
	mock.ExpectQuery("FROM cities").WithArgs(int64(2)).
		WillReturnRows(cityRows(2, "Казань"))

	quote, err := svc.CalculateQuote(1, 2, "2026-09-01")
	if err != nil {
		t.Fatalf("CalculateQuote error: %v", err)
	}
	if quote.TotalPrice != 165000 {
		t.Fatalf("expected total 165000, got %v", quote.TotalPrice)
	}

	// No INSERT was expected; any write would fail the expectations check.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdatePaymentStatusOverwrites(t *testing.T) {
	svc, mock, closeDB := orderServiceWithDB(t)
	defer closeDB()

	mock.ExpectQuery("FROM orders o").WithArgs(int64(7)).
		WillReturnRows(orderJoinRows(7, "unpaid"))
	mock.ExpectExec("UPDATE orders SET payment_status").WithArgs("manual", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM orders o").WithArgs(int64(7)).
		WillReturnRows(orderJoinRows(7, "manual"))

	order, err := svc.UpdatePaymentStatus(7, models.PaymentManual)
	if err != nil {
		t.Fatalf("UpdatePaymentStatus error: %v", err)
	}
	if order.PaymentStatus != models.PaymentManual {
		t.Fatalf("expected manual, got %s", order.PaymentStatus)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestProcessPaymentMarksOrderPaid(t *testing.T) {
	svc, mock, closeDB := orderServiceWithDB(t)
	defer closeDB()

	mock.ExpectQuery("FROM orders o").WithArgs(int64(7)).
		WillReturnRows(orderJoinRows(7, "unpaid"))
	mock.ExpectExec("UPDATE orders SET payment_status").WithArgs("paid", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM orders o").WithArgs(int64(7)).
		WillReturnRows(orderJoinRows(7, "paid"))

	result, err := PaymentService{Orders: svc}.ProcessPayment(7)
	if err != nil {
		t.Fatalf("ProcessPayment error: %v", err)
	}
	if !result.Success || result.Order.PaymentStatus != models.PaymentPaid {
		t.Fatalf("expected successful payment, got %+v", result)
	}
}

func TestProcessPaymentUnknownOrder(t *testing.T) {
	svc, mock, closeDB := orderServiceWithDB(t)
	defer closeDB()

	mock.ExpectQuery("FROM orders o").WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := PaymentService{Orders: svc}.ProcessPayment(404)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
