package repositories

import (
	"database/sql"
	"errors"
	"strings"

	"cartrans-backend/internal/domain"
	"cartrans-backend/internal/domain/models"
)

// CityRepository wraps DB access for the cities table.
type CityRepository struct {
	DB *sql.DB
}

func (r CityRepository) List() ([]models.City, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, created_at, updated_at
		FROM cities
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cities := []models.City{}
	for rows.Next() {
		var c models.City
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		cities = append(cities, c)
	}
	return cities, rows.Err()
}

func (r CityRepository) GetByID(id int64) (models.City, error) {
	var c models.City
	err := r.DB.QueryRow(`
		SELECT id, name, created_at, updated_at
		FROM cities
		WHERE id = ?
	`, id).Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return c, domain.NotFoundError{Resource: "city"}
	}
	return c, err
}

func (r CityRepository) Create(name string) (models.City, error) {
	name = strings.TrimSpace(name)
	res, err := r.DB.Exec(`
		INSERT INTO cities (name, created_at, updated_at)
		VALUES (?, NOW(), NOW())
	`, name)
	if err != nil {
		if isDuplicateEntry(err) {
			return models.City{}, domain.ConflictError{Resource: "city", Msg: "name already exists", Err: err}
		}
		return models.City{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.City{}, err
	}
	return r.GetByID(id)
}

func (r CityRepository) Update(id int64, name string) (models.City, error) {
	name = strings.TrimSpace(name)
	_, err := r.DB.Exec(`
		UPDATE cities SET name = ?, updated_at = NOW()
		WHERE id = ?
	`, name, id)
	if err != nil {
		if isDuplicateEntry(err) {
			return models.City{}, domain.ConflictError{Resource: "city", Msg: "name already exists", Err: err}
		}
		return models.City{}, err
	}
	return r.GetByID(id)
}

func (r CityRepository) Delete(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM cities WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NotFoundError{Resource: "city"}
	}
	return nil
}
