package repository

import (
	"context"
	"fmt"

	"experience-booking/internal/data/entity"
	"experience-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ExperienceRepository interface {
	Create(ctx context.Context, experience *entity.Experience) error
	FindAll(ctx context.Context) ([]*entity.Experience, error)
	FindByID(ctx context.Context, id int64) (*entity.Experience, error)
	Update(ctx context.Context, experience *entity.Experience) error
	Delete(ctx context.Context, id int64) error
}

type experienceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewExperienceRepository(db database.PgxIface, log *zap.Logger) ExperienceRepository {
	return &experienceRepository{
		db:  db,
		log: log.With(zap.String("repository", "experience")),
	}
}

func (r *experienceRepository) Create(ctx context.Context, experience *entity.Experience) error {
	query := `
		INSERT INTO experiences (title, description, price, location, image_url, category_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		experience.Title,
		experience.Description,
		experience.Price,
		experience.Location,
		experience.ImageURL,
		experience.CategoryID,
	).Scan(&experience.ID, &experience.CreatedAt)

	if err != nil {
		r.log.Error("Failed to create experience",
			zap.Error(err),
			zap.String("title", experience.Title),
		)
		return fmt.Errorf("create experience %q: %w", experience.Title, err)
	}

	return nil
}

func (r *experienceRepository) FindAll(ctx context.Context) ([]*entity.Experience, error) {
	query := `
		SELECT id, title, description, price, location, image_url, category_id, created_at
		FROM experiences
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find experiences", zap.Error(err))
		return nil, fmt.Errorf("find experiences: %w", err)
	}
	defer rows.Close()

	var experiences []*entity.Experience
	for rows.Next() {
		var experience entity.Experience
		err := rows.Scan(
			&experience.ID,
			&experience.Title,
			&experience.Description,
			&experience.Price,
			&experience.Location,
			&experience.ImageURL,
			&experience.CategoryID,
			&experience.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan experience row", zap.Error(err))
			return nil, fmt.Errorf("scan experience row: %w", err)
		}
		experiences = append(experiences, &experience)
	}

	return experiences, nil
}

func (r *experienceRepository) FindByID(ctx context.Context, id int64) (*entity.Experience, error) {
	query := `
		SELECT id, title, description, price, location, image_url, category_id, created_at
		FROM experiences
		WHERE id = $1
	`

	var experience entity.Experience
	err := r.db.QueryRow(ctx, query, id).Scan(
		&experience.ID,
		&experience.Title,
		&experience.Description,
		&experience.Price,
		&experience.Location,
		&experience.ImageURL,
		&experience.CategoryID,
		&experience.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find experience by ID",
			zap.Error(err),
			zap.Int64("experience_id", id),
		)
		return nil, fmt.Errorf("find experience by id %d: %w", id, err)
	}

	return &experience, nil
}

// Update replaces every mutable column. Callers must supply the full
// field set; there is no partial-update path.
func (r *experienceRepository) Update(ctx context.Context, experience *entity.Experience) error {
	query := `
		UPDATE experiences
		SET title = $2, description = $3, price = $4, location = $5, image_url = $6, category_id = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		experience.ID,
		experience.Title,
		experience.Description,
		experience.Price,
		experience.Location,
		experience.ImageURL,
		experience.CategoryID,
	)

	if err != nil {
		r.log.Error("Failed to update experience",
			zap.Error(err),
			zap.Int64("experience_id", experience.ID),
		)
		return fmt.Errorf("update experience %d: %w", experience.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("experience %d not found", experience.ID)
	}

	return nil
}

func (r *experienceRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM experiences WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete experience",
			zap.Error(err),
			zap.Int64("experience_id", id),
		)
		return fmt.Errorf("delete experience %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("experience %d not found", id)
	}

	r.log.Info("Experience deleted", zap.Int64("experience_id", id))
	return nil
}
