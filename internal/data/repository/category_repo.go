package repository

import (
	"context"
	"fmt"

	"experience-booking/internal/data/entity"
	"experience-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	FindAll(ctx context.Context) ([]*entity.Category, error)
	FindByID(ctx context.Context, id int64) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id int64) error
}

type categoryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCategoryRepository(db database.PgxIface, log *zap.Logger) CategoryRepository {
	return &categoryRepository{
		db:  db,
		log: log.With(zap.String("repository", "category")),
	}
}

// Create inserts a category with a unique name. The existence check and
// the insert share one transaction; the UNIQUE constraint catches the
// writer that loses a race past the check.
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	return database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		var existingID int64
		err := tx.QueryRow(ctx,
			`SELECT id FROM categories WHERE name = $1`,
			category.Name,
		).Scan(&existingID)

		if err == nil {
			return fmt.Errorf("category %q already exists", category.Name)
		}
		if err != pgx.ErrNoRows {
			r.log.Error("Failed to check category name",
				zap.Error(err),
				zap.String("name", category.Name),
			)
			return fmt.Errorf("check category name %q: %w", category.Name, err)
		}

		err = tx.QueryRow(ctx,
			`INSERT INTO categories (name) VALUES ($1) RETURNING id, created_at`,
			category.Name,
		).Scan(&category.ID, &category.CreatedAt)

		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("category %q already exists", category.Name)
			}
			r.log.Error("Failed to create category",
				zap.Error(err),
				zap.String("name", category.Name),
			)
			return fmt.Errorf("create category %q: %w", category.Name, err)
		}

		return nil
	})
}

func (r *categoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	query := `SELECT id, name, created_at FROM categories`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find categories", zap.Error(err))
		return nil, fmt.Errorf("find categories: %w", err)
	}
	defer rows.Close()

	var categories []*entity.Category
	for rows.Next() {
		var category entity.Category
		err := rows.Scan(
			&category.ID,
			&category.Name,
			&category.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan category row", zap.Error(err))
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		categories = append(categories, &category)
	}

	return categories, nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id int64) (*entity.Category, error) {
	query := `SELECT id, name, created_at FROM categories WHERE id = $1`

	var category entity.Category
	err := r.db.QueryRow(ctx, query, id).Scan(
		&category.ID,
		&category.Name,
		&category.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find category by ID",
			zap.Error(err),
			zap.Int64("category_id", id),
		)
		return nil, fmt.Errorf("find category by id %d: %w", id, err)
	}

	return &category, nil
}

func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	query := `UPDATE categories SET name = $2 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, category.ID, category.Name)
	if err != nil {
		r.log.Error("Failed to update category",
			zap.Error(err),
			zap.Int64("category_id", category.ID),
		)
		return fmt.Errorf("update category %d: %w", category.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("category %d not found", category.ID)
	}

	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM categories WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete category",
			zap.Error(err),
			zap.Int64("category_id", id),
		)
		return fmt.Errorf("delete category %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("category %d not found", id)
	}

	r.log.Info("Category deleted", zap.Int64("category_id", id))
	return nil
}
