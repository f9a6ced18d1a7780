package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"mesa-booking/internal/domain"
	"mesa-booking/internal/timeslot"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

const reservationColumns = `id, customer_id, table_id, reservation_date, reservation_time,
		duration_minutes, guests, status, COALESCE(special_requests, ''),
		COALESCE(assigned_staff_id, 0), COALESCE(order_id, 0), created_at`

func scanReservation(row *sql.Row) (*domain.Reservation, error) {
	var r domain.Reservation
	var status string
	err := row.Scan(&r.ID, &r.CustomerID, &r.TableID, &r.ReservationDate, &r.ReservationTime,
		&r.Duration, &r.Guests, &status, &r.SpecialRequests,
		&r.AssignedStaffID, &r.OrderID, &r.CreatedAt)
	if err != nil {
		return nil, err
	}
	r.Status = domain.NormalizeBookingStatus(status)
	return &r, nil
}

func (r *PostgresRepository) GetTable(ctx context.Context, id int) (*domain.Table, error) {
	var table domain.Table
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, capacity, COALESCE(location, ''), COALESCE(status, ''), created_at
		FROM tables
		WHERE id = $1`, id).
		Scan(&table.ID, &table.Capacity, &table.Location, &table.Status, &table.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *PostgresRepository) ListTables(ctx context.Context) ([]domain.Table, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, capacity, COALESCE(location, ''), COALESCE(status, ''), created_at
		FROM tables
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []domain.Table
	for rows.Next() {
		var table domain.Table
		if err := rows.Scan(&table.ID, &table.Capacity, &table.Location, &table.Status, &table.CreatedAt); err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}
	return tables, rows.Err()
}

func (r *PostgresRepository) GetMenuItem(ctx context.Context, id int) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, price, available, created_at
		FROM menu_items
		WHERE id = $1`, id).
		Scan(&item.ID, &item.Name, &item.Price, &item.Available, &item.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) GetReservation(ctx context.Context, id int) (*domain.Reservation, error) {
	return scanReservation(r.DB.QueryRowContext(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE id = $1`, id))
}

func (r *PostgresRepository) GetCustomerReservation(ctx context.Context, id, customerID int) (*domain.Reservation, error) {
	return scanReservation(r.DB.QueryRowContext(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE id = $1 AND customer_id = $2`,
		id, customerID))
}

func (r *PostgresRepository) listReservations(ctx context.Context, query string, args ...any) ([]domain.Reservation, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		var res domain.Reservation
		var status string
		if err := rows.Scan(&res.ID, &res.CustomerID, &res.TableID, &res.ReservationDate,
			&res.ReservationTime, &res.Duration, &res.Guests, &status, &res.SpecialRequests,
			&res.AssignedStaffID, &res.OrderID, &res.CreatedAt); err != nil {
			return nil, err
		}
		res.Status = domain.NormalizeBookingStatus(status)
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}

func (r *PostgresRepository) ListActiveForTableOnDate(ctx context.Context, tableID int, dayStart, dayEnd time.Time) ([]domain.Reservation, error) {
	return r.listReservations(ctx, `
		SELECT `+reservationColumns+`
		FROM reservations
		WHERE table_id = $1
		  AND reservation_date BETWEEN $2 AND $3
		  AND status IN ('pending', 'confirmed')
		ORDER BY reservation_time ASC`, tableID, dayStart, dayEnd)
}

func (r *PostgresRepository) ListActiveOnDate(ctx context.Context, dayStart, dayEnd time.Time) ([]domain.Reservation, error) {
	return r.listReservations(ctx, `
		SELECT `+reservationColumns+`
		FROM reservations
		WHERE reservation_date BETWEEN $1 AND $2
		  AND status IN ('pending', 'confirmed')
		ORDER BY reservation_time ASC`, dayStart, dayEnd)
}

// lockSlot serializes reservation writes for one table and day so the
// overlap guard and the write cannot interleave between transactions.
func lockSlot(ctx context.Context, tx *sql.Tx, tableID int, date time.Time) error {
	key := fmt.Sprintf("reservation:%d:%s", tableID, date.Format("2006-01-02"))
	_, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", key)
	return err
}

// CreateReservation inserts the reservation only when no active reservation
// for the same table and day overlaps the requested slot. The guard uses
// the same half-open interval predicate as timeslot.Overlaps, expressed in
// minutes since midnight. sql.ErrNoRows means the guard blocked the write.
func (r *PostgresRepository) CreateReservation(ctx context.Context, res *domain.Reservation) error {
	startMinutes, err := timeslot.MinutesOfDay(res.ReservationTime)
	if err != nil {
		return err
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := lockSlot(ctx, tx, res.TableID, res.ReservationDate); err != nil {
		return err
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO reservations
			(customer_id, table_id, reservation_date, reservation_time, duration_minutes, guests, status, special_requests)
		SELECT $1, $2, $3, $4, $5, $6, $7, $8
		WHERE NOT EXISTS (
			SELECT 1 FROM reservations existing
			WHERE existing.table_id = $2
			  AND existing.reservation_date = $3
			  AND existing.status IN ('pending', 'confirmed')
			  AND $9 < (split_part(existing.reservation_time, ':', 1)::int * 60 + split_part(existing.reservation_time, ':', 2)::int) + existing.duration_minutes
			  AND $9 + $5 > (split_part(existing.reservation_time, ':', 1)::int * 60 + split_part(existing.reservation_time, ':', 2)::int)
		)
		RETURNING id, created_at`,
		res.CustomerID, res.TableID, res.ReservationDate, res.ReservationTime,
		res.Duration, res.Guests, string(res.Status), res.SpecialRequests,
		startMinutes).
		Scan(&res.ID, &res.CreatedAt)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// UpdateReservation rewrites the slot fields under the same overlap guard
// as CreateReservation, excluding the reservation itself from the conflict
// set. sql.ErrNoRows means the new slot is taken.
func (r *PostgresRepository) UpdateReservation(ctx context.Context, res *domain.Reservation) error {
	startMinutes, err := timeslot.MinutesOfDay(res.ReservationTime)
	if err != nil {
		return err
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := lockSlot(ctx, tx, res.TableID, res.ReservationDate); err != nil {
		return err
	}

	err = tx.QueryRowContext(ctx, `
		UPDATE reservations
		SET table_id = $2, reservation_date = $3, reservation_time = $4,
		    duration_minutes = $5, guests = $6, special_requests = $7
		WHERE id = $1
		  AND NOT EXISTS (
			SELECT 1 FROM reservations existing
			WHERE existing.table_id = $2
			  AND existing.reservation_date = $3
			  AND existing.status IN ('pending', 'confirmed')
			  AND existing.id <> $1
			  AND $8 < (split_part(existing.reservation_time, ':', 1)::int * 60 + split_part(existing.reservation_time, ':', 2)::int) + existing.duration_minutes
			  AND $8 + $5 > (split_part(existing.reservation_time, ':', 1)::int * 60 + split_part(existing.reservation_time, ':', 2)::int)
		  )
		RETURNING id`,
		res.ID, res.TableID, res.ReservationDate, res.ReservationTime,
		res.Duration, res.Guests, res.SpecialRequests, startMinutes).
		Scan(&res.ID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id int, status domain.BookingStatus) (*domain.Reservation, error) {
	return scanReservation(r.DB.QueryRowContext(ctx, `
		UPDATE reservations
		SET status = $2
		WHERE id = $1
		RETURNING `+reservationColumns, id, string(status)))
}

func (r *PostgresRepository) SetOrderID(ctx context.Context, reservationID, orderID int) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE reservations SET order_id = $2 WHERE id = $1", reservationID, orderID)
	return err
}

func (r *PostgresRepository) DeleteReservation(ctx context.Context, id int) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM reservations WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders
			(customer_id, staff_id, order_type, reservation_id, table_id, total_amount,
			 payment_type, delivery_address, status, qr_code)
		VALUES ($1, NULLIF($2, 0), $3, NULLIF($4, 0), NULLIF($5, 0), $6, NULLIF($7, ''), NULLIF($8, ''), $9, NULL)
		RETURNING id, created_at`,
		order.CustomerID, order.StaffID, string(order.OrderType), order.ReservationID,
		order.TableID, order.TotalAmount, order.PaymentType, order.DeliveryAddress,
		string(order.Status)).
		Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return err
	}

	for _, item := range order.Items {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_items
				(order_id, menu_item_id, name, quantity, price, sub_total, special_instructions)
			VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''))`,
			order.ID, item.MenuItemID, item.Name, item.Quantity, item.Price,
			item.SubTotal, item.SpecialInstructions); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) GetOrder(ctx context.Context, id int) (*domain.Order, error) {
	var order domain.Order
	var orderType, status string
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, customer_id, COALESCE(staff_id, 0), order_type, COALESCE(reservation_id, 0),
		       COALESCE(table_id, 0), total_amount, COALESCE(payment_type, ''),
		       COALESCE(delivery_address, ''), status, created_at
		FROM orders
		WHERE id = $1`, id).
		Scan(&order.ID, &order.CustomerID, &order.StaffID, &orderType, &order.ReservationID,
			&order.TableID, &order.TotalAmount, &order.PaymentType,
			&order.DeliveryAddress, &status, &order.CreatedAt)
	if err != nil {
		return nil, err
	}
	order.OrderType = domain.OrderType(orderType)
	order.Status = domain.OrderStatus(status)

	rows, err := r.DB.QueryContext(ctx, `
		SELECT menu_item_id, name, quantity, price, sub_total, COALESCE(special_instructions, '')
		FROM order_items
		WHERE order_id = $1`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	order.Items = []domain.OrderItem{}
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.MenuItemID, &item.Name, &item.Quantity, &item.Price,
			&item.SubTotal, &item.SpecialInstructions); err != nil {
			return nil, err
		}
		order.Items = append(order.Items, item)
	}
	return &order, rows.Err()
}

func (r *PostgresRepository) SaveQRCode(ctx context.Context, orderID int, qr []byte) error {
	_, err := r.DB.ExecContext(ctx, "UPDATE orders SET qr_code = $1 WHERE id = $2", qr, orderID)
	return err
}

func (r *PostgresRepository) GetQRCode(ctx context.Context, orderID int) ([]byte, error) {
	var qr []byte
	if err := r.DB.QueryRowContext(ctx, "SELECT qr_code FROM orders WHERE id = $1", orderID).Scan(&qr); err != nil {
		return nil, err
	}
	return qr, nil
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS tables (
			id SERIAL PRIMARY KEY,
			capacity INT NOT NULL,
			location TEXT,
			status TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			price NUMERIC(10,2) NOT NULL,
			available BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS reservations (
			id SERIAL PRIMARY KEY,
			customer_id INT NOT NULL,
			table_id INT NOT NULL REFERENCES tables(id),
			reservation_date DATE NOT NULL,
			reservation_time TEXT NOT NULL,
			duration_minutes INT NOT NULL DEFAULT 60,
			guests INT NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			special_requests TEXT,
			assigned_staff_id INT,
			order_id INT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_reservations_table_date
			ON reservations (table_id, reservation_date)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			customer_id INT NOT NULL,
			staff_id INT,
			order_type TEXT NOT NULL,
			reservation_id INT REFERENCES reservations(id),
			table_id INT REFERENCES tables(id),
			total_amount NUMERIC(10,2) NOT NULL,
			payment_type TEXT,
			payment_id INT,
			delivery_address TEXT,
			status TEXT NOT NULL DEFAULT 'pending',
			qr_code BYTEA,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			order_id INT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			menu_item_id INT NOT NULL,
			name TEXT NOT NULL,
			quantity INT NOT NULL,
			price NUMERIC(10,2) NOT NULL,
			sub_total NUMERIC(10,2) NOT NULL,
			special_instructions TEXT
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
