package repositories

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"cartrans-backend/internal/domain"
	"cartrans-backend/internal/domain/models"
	"cartrans-backend/internal/utils"
)

// OrderRepository wraps DB access for the order registry.
type OrderRepository struct {
	DB *sql.DB
}

// ListOptions is the structured filter/sort/pagination input for List.
// Zero values mean "no filter". SortBy accepts "date" or "price"; the
// default ordering is newest-created-first.
type ListOptions struct {
	Date          string
	StartDate     string
	EndDate       string
	CityFromID    int64
	CityToID      int64
	PaymentStatus models.PaymentStatus
	SortBy        string
	SortOrder     string
	Page          int
	Limit         int
}

const orderColumns = `
	o.id, o.user_id, o.car_brand, o.city_from_id, o.city_to_id,
	o.start_date, o.distance_km, o.applied_tariff, o.is_fixed_route,
	o.transport_price, o.insurance_price, o.total_price,
	o.duration_hours, o.duration_days, o.estimated_arrival_date,
	o.payment_status, o.created_at, o.updated_at,
	u.full_name, u.phone, cf.name, ct.name`

const orderJoins = `
	FROM orders o
	JOIN users u ON u.id = o.user_id
	JOIN cities cf ON cf.id = o.city_from_id
	JOIN cities ct ON ct.id = o.city_to_id`

func (r OrderRepository) Create(o models.Order) (models.Order, error) {
	res, err := r.DB.Exec(`
		INSERT INTO orders (
			user_id, car_brand, city_from_id, city_to_id, start_date,
			distance_km, applied_tariff, is_fixed_route,
			transport_price, insurance_price, total_price,
			duration_hours, duration_days, estimated_arrival_date,
			payment_status, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
	`,
		o.UserID, o.CarBrand, o.CityFromID, o.CityToID, o.StartDate,
		o.DistanceKm, o.AppliedTariff, o.IsFixedRoute,
		o.TransportPrice, o.InsurancePrice, o.TotalPrice,
		o.DurationHours, o.DurationDays, o.EstimatedArrivalDate,
		string(o.PaymentStatus),
	)
	if err != nil {
		return models.Order{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Order{}, err
	}
	return r.GetByID(id)
}

func (r OrderRepository) GetByID(id int64) (models.Order, error) {
	row := r.DB.QueryRow(`SELECT`+orderColumns+orderJoins+` WHERE o.id = ?`, id)
	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Order{}, domain.NotFoundError{Resource: "order"}
	}
	return o, err
}

// List returns a filtered page of orders plus the total row count matching
// the filter (before pagination).
func (r OrderRepository) List(opts ListOptions) ([]models.Order, int, error) {
	where, args := buildListFilter(opts)

	var total int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM orders o`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT` + orderColumns + orderJoins + where + listOrderClause(opts)

	if opts.Page > 0 && opts.Limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, opts.Limit, (opts.Page-1)*opts.Limit)
	}

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}
	return orders, total, rows.Err()
}

// ListByUser returns all orders of one user, newest first.
func (r OrderRepository) ListByUser(userID int64) ([]models.Order, error) {
	rows, err := r.DB.Query(`SELECT`+orderColumns+orderJoins+` WHERE o.user_id = ? ORDER BY o.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r OrderRepository) UpdatePaymentStatus(id int64, status models.PaymentStatus) error {
	_, err := r.DB.Exec(`
		UPDATE orders SET payment_status = ?, updated_at = NOW()
		WHERE id = ?
	`, string(status), id)
	return err
}

// CountByCity counts orders referencing a city as origin or destination.
// Used to refuse deleting cities that appear in the registry.
func (r OrderRepository) CountByCity(cityID int64) (int, error) {
	var n int
	err := r.DB.QueryRow(`
		SELECT COUNT(*) FROM orders
		WHERE city_from_id = ? OR city_to_id = ?
	`, cityID, cityID).Scan(&n)
	return n, err
}

func buildListFilter(opts ListOptions) (string, []any) {
	conds := []string{}
	args := []any{}

	if opts.CityFromID > 0 {
		conds = append(conds, "o.city_from_id = ?")
		args = append(args, opts.CityFromID)
	}
	if opts.CityToID > 0 {
		conds = append(conds, "o.city_to_id = ?")
		args = append(args, opts.CityToID)
	}
	if opts.PaymentStatus != "" {
		conds = append(conds, "o.payment_status = ?")
		args = append(args, string(opts.PaymentStatus))
	}

	// Exact date wins over a range; both filter on the transport start date.
	if opts.Date != "" {
		conds = append(conds, "o.start_date = ?")
		args = append(args, opts.Date)
	} else if opts.StartDate != "" && opts.EndDate != "" {
		conds = append(conds, "o.start_date BETWEEN ? AND ?")
		args = append(args, opts.StartDate, opts.EndDate)
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func listOrderClause(opts ListOptions) string {
	dir := "ASC"
	if strings.EqualFold(opts.SortOrder, "DESC") {
		dir = "DESC"
	}
	switch opts.SortBy {
	case "date":
		return " ORDER BY o.start_date " + dir
	case "price":
		return " ORDER BY o.total_price " + dir
	default:
		return " ORDER BY o.created_at DESC"
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (models.Order, error) {
	var (
		o         models.Order
		status    string
		startDate time.Time
		arrival   time.Time
	)
	err := row.Scan(
		&o.ID, &o.UserID, &o.CarBrand, &o.CityFromID, &o.CityToID,
		&startDate, &o.DistanceKm, &o.AppliedTariff, &o.IsFixedRoute,
		&o.TransportPrice, &o.InsurancePrice, &o.TotalPrice,
		&o.DurationHours, &o.DurationDays, &arrival,
		&status, &o.CreatedAt, &o.UpdatedAt,
		&o.UserFullName, &o.UserPhone, &o.CityFromName, &o.CityToName,
	)
	if err != nil {
		return o, err
	}
	o.StartDate = utils.FormatDate(startDate)
	o.EstimatedArrivalDate = utils.FormatDate(arrival)
	o.PaymentStatus = models.PaymentStatus(status)
	return o, nil
}
