package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"sales/src/sales/domain/entity"
	"sales/src/sales/domain/port"
)

// SalePostgresRepository implementa SaleRepository usando PostgreSQL
// El aggregate se persiste en dos tablas: sales y sale_items
type SalePostgresRepository struct {
	db *sql.DB
}

// NewSalePostgresRepository crea una nueva instancia del repositorio
func NewSalePostgresRepository(db *sql.DB) port.SaleRepository {
	return &SalePostgresRepository{
		db: db,
	}
}

// Create persiste una nueva venta con sus items (atómico)
func (r *SalePostgresRepository) Create(ctx context.Context, sale *entity.Sale) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	querySale := `
		INSERT INTO sales (
			id, date, customer_id, branch_id, total_amount, is_cancelled
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)
	`

	_, err = tx.ExecContext(ctx, querySale,
		sale.ID,
		sale.Date,
		sale.CustomerID,
		sale.BranchID,
		sale.TotalAmount,
		sale.IsCancelled,
	)
	if err != nil {
		return fmt.Errorf("error creating sale: %w", err)
	}

	if err := insertItems(ctx, tx, sale); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// FindByID retorna la venta con sus items, o entity.ErrSaleNotFound
func (r *SalePostgresRepository) FindByID(ctx context.Context, saleID uuid.UUID) (*entity.Sale, error) {
	query := `
		SELECT id, date, customer_id, branch_id, total_amount, is_cancelled
		FROM sales
		WHERE id = $1
	`

	sale := &entity.Sale{}
	err := r.db.QueryRowContext(ctx, query, saleID).Scan(
		&sale.ID,
		&sale.Date,
		&sale.CustomerID,
		&sale.BranchID,
		&sale.TotalAmount,
		&sale.IsCancelled,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrSaleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error querying sale: %w", err)
	}

	items, err := r.loadItems(ctx, sale.ID)
	if err != nil {
		return nil, err
	}
	sale.Items = items

	return sale, nil
}

// Update reemplaza la venta y su colección completa de items (atómico)
func (r *SalePostgresRepository) Update(ctx context.Context, sale *entity.Sale) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE sales
		SET date = $2, customer_id = $3, branch_id = $4, total_amount = $5, is_cancelled = $6
		WHERE id = $1
	`

	result, err := tx.ExecContext(ctx, query,
		sale.ID,
		sale.Date,
		sale.CustomerID,
		sale.BranchID,
		sale.TotalAmount,
		sale.IsCancelled,
	)
	if err != nil {
		return fmt.Errorf("error updating sale: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking updated rows: %w", err)
	}
	if affected == 0 {
		return entity.ErrSaleNotFound
	}

	// Reemplazo completo de la colección de items
	if _, err := tx.ExecContext(ctx, `DELETE FROM sale_items WHERE sale_id = $1`, sale.ID); err != nil {
		return fmt.Errorf("error clearing sale_items: %w", err)
	}

	if err := insertItems(ctx, tx, sale); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// List retorna una página de ventas ordenadas por fecha descendente y el total
func (r *SalePostgresRepository) List(ctx context.Context, skip, take int) ([]*entity.Sale, int, error) {
	var totalCount int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sales`).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("error counting sales: %w", err)
	}

	query := `
		SELECT id, date, customer_id, branch_id, total_amount, is_cancelled
		FROM sales
		ORDER BY date DESC
		OFFSET $1 LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, skip, take)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying sales: %w", err)
	}
	defer rows.Close()

	var sales []*entity.Sale
	for rows.Next() {
		sale := &entity.Sale{}
		err := rows.Scan(
			&sale.ID,
			&sale.Date,
			&sale.CustomerID,
			&sale.BranchID,
			&sale.TotalAmount,
			&sale.IsCancelled,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning sale: %w", err)
		}
		sales = append(sales, sale)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating sales: %w", err)
	}

	// Cargar items por venta (N+1, suficiente para páginas chicas)
	for _, sale := range sales {
		items, err := r.loadItems(ctx, sale.ID)
		if err != nil {
			return nil, 0, err
		}
		sale.Items = items
	}

	return sales, totalCount, nil
}

// Cancel marca la venta y sus items como cancelados
// Retorna false si la venta no existe o ya estaba cancelada, sin error
func (r *SalePostgresRepository) Cancel(ctx context.Context, saleID uuid.UUID) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE sales SET is_cancelled = TRUE WHERE id = $1 AND is_cancelled = FALSE`, saleID)
	if err != nil {
		return false, fmt.Errorf("error cancelling sale: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("error checking cancelled rows: %w", err)
	}
	if affected == 0 {
		return false, nil
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE sale_items SET is_cancelled = TRUE WHERE sale_id = $1`, saleID); err != nil {
		return false, fmt.Errorf("error cancelling sale_items: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("error committing transaction: %w", err)
	}

	return true, nil
}

// Delete elimina la venta y sus items en cascada
// Retorna false si la venta no existe, sin error
func (r *SalePostgresRepository) Delete(ctx context.Context, saleID uuid.UUID) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM sale_items WHERE sale_id = $1`, saleID); err != nil {
		return false, fmt.Errorf("error deleting sale_items: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM sales WHERE id = $1`, saleID)
	if err != nil {
		return false, fmt.Errorf("error deleting sale: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("error checking deleted rows: %w", err)
	}
	if affected == 0 {
		return false, nil
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("error committing transaction: %w", err)
	}

	return true, nil
}

// loadItems carga los items de una venta
func (r *SalePostgresRepository) loadItems(ctx context.Context, saleID uuid.UUID) ([]entity.SaleItem, error) {
	query := `
		SELECT id, sale_id, product, quantity, unit_price, discount, is_cancelled
		FROM sale_items
		WHERE sale_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, saleID)
	if err != nil {
		return nil, fmt.Errorf("error querying sale_items: %w", err)
	}
	defer rows.Close()

	var items []entity.SaleItem
	for rows.Next() {
		item := entity.SaleItem{}
		err := rows.Scan(
			&item.ID,
			&item.SaleID,
			&item.Product,
			&item.Quantity,
			&item.UnitPrice,
			&item.Discount,
			&item.IsCancelled,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning sale_item: %w", err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sale_items: %w", err)
	}

	return items, nil
}

// insertItems inserta los items de la venta dentro de la transacción
func insertItems(ctx context.Context, tx *sql.Tx, sale *entity.Sale) error {
	query := `
		INSERT INTO sale_items (
			id, sale_id, product, quantity, unit_price, discount, is_cancelled
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
	`

	for _, item := range sale.Items {
		_, err := tx.ExecContext(ctx, query,
			item.ID,
			item.SaleID,
			item.Product,
			item.Quantity,
			item.UnitPrice,
			item.Discount,
			item.IsCancelled,
		)
		if err != nil {
			return fmt.Errorf("error creating sale_item for product %s: %w", item.Product, err)
		}
	}

	return nil
}
