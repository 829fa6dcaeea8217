package repositories

import (
	"testing"
	"time"

	"cartrans-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

func TestGetByMonthMissingRowIsNotAnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM tariffs").WithArgs(4).
		WillReturnRows(sqlmock.NewRows([]string{"id", "month", "price_per_km_under_1000", "price_per_km_over_1000", "created_at", "updated_at"}))

	repo := TariffRepository{DB: db}
	_, ok, err := repo.GetByMonth(4)
	if err != nil {
		t.Fatalf("GetByMonth error: %v", err)
	}
	if ok {
		t.Fatal("expected ok=false for missing month")
	}
}

func TestGetByMonthHit(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("FROM tariffs").WithArgs(4).
		WillReturnRows(sqlmock.NewRows([]string{"id", "month", "price_per_km_under_1000", "price_per_km_over_1000", "created_at", "updated_at"}).
			AddRow(4, 4, 160.0, 110.0, now, now))

	repo := TariffRepository{DB: db}
	tariff, ok, err := repo.GetByMonth(4)
	if err != nil {
		t.Fatalf("GetByMonth error: %v", err)
	}
	if !ok {
		t.Fatal("expected ok=true")
	}
	if tariff.PricePerKmUnder1000 != 160 || tariff.PricePerKmOver1000 != 110 {
		t.Errorf("unexpected rates: %+v", tariff)
	}
}

func TestCreateTariffDuplicateMonth(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO tariffs").WithArgs(7, 160.0, 110.0).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	repo := TariffRepository{DB: db}
	_, err = repo.Create(7, 160, 110)
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
}
