package repositories

import (
	"database/sql"
	"errors"

	"cartrans-backend/internal/domain"
	"cartrans-backend/internal/domain/models"
)

// TariffRepository wraps DB access for month-indexed per-km tariffs.
type TariffRepository struct {
	DB *sql.DB
}

func (r TariffRepository) List() ([]models.Tariff, error) {
	rows, err := r.DB.Query(`
		SELECT id, month, price_per_km_under_1000, price_per_km_over_1000, created_at, updated_at
		FROM tariffs
		ORDER BY month ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tariffs := []models.Tariff{}
	for rows.Next() {
		var t models.Tariff
		if err := rows.Scan(&t.ID, &t.Month, &t.PricePerKmUnder1000, &t.PricePerKmOver1000, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		tariffs = append(tariffs, t)
	}
	return tariffs, rows.Err()
}

func (r TariffRepository) GetByID(id int64) (models.Tariff, error) {
	var t models.Tariff
	err := r.DB.QueryRow(`
		SELECT id, month, price_per_km_under_1000, price_per_km_over_1000, created_at, updated_at
		FROM tariffs
		WHERE id = ?
	`, id).Scan(&t.ID, &t.Month, &t.PricePerKmUnder1000, &t.PricePerKmOver1000, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return t, domain.NotFoundError{Resource: "tariff"}
	}
	return t, err
}

// GetByMonth returns the tariff row for a month. A missing row is not an
// error: the calculator falls back to default rates.
func (r TariffRepository) GetByMonth(month int) (models.Tariff, bool, error) {
	var t models.Tariff
	err := r.DB.QueryRow(`
		SELECT id, month, price_per_km_under_1000, price_per_km_over_1000, created_at, updated_at
		FROM tariffs
		WHERE month = ?
	`, month).Scan(&t.ID, &t.Month, &t.PricePerKmUnder1000, &t.PricePerKmOver1000, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Tariff{}, false, nil
	}
	if err != nil {
		return models.Tariff{}, false, err
	}
	return t, true, nil
}

func (r TariffRepository) Create(month int, under, over float64) (models.Tariff, error) {
	res, err := r.DB.Exec(`
		INSERT INTO tariffs (month, price_per_km_under_1000, price_per_km_over_1000, created_at, updated_at)
		VALUES (?, ?, ?, NOW(), NOW())
	`, month, under, over)
	if err != nil {
		if isDuplicateEntry(err) {
			return models.Tariff{}, domain.ConflictError{Resource: "tariff", Msg: "month already has a tariff", Err: err}
		}
		return models.Tariff{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Tariff{}, err
	}
	return r.GetByID(id)
}

func (r TariffRepository) Update(id int64, under, over float64) (models.Tariff, error) {
	_, err := r.DB.Exec(`
		UPDATE tariffs
		SET price_per_km_under_1000 = ?, price_per_km_over_1000 = ?, updated_at = NOW()
		WHERE id = ?
	`, under, over, id)
	if err != nil {
		return models.Tariff{}, err
	}
	return r.GetByID(id)
}
