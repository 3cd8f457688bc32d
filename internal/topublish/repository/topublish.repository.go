package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/a48zhang/AIditor/internal/topublish/model"
	"github.com/a48zhang/AIditor/pkg/logger"
	"github.com/a48zhang/AIditor/pkg/querybuilder"
)

const table = "to_publish"

var columns = []string{"id", "final_title", "final_body", "platform", "review_status", "material_id", "created_at", "updated_at"}

type ToPublishRepository struct {
	DB      *sql.DB
	Builder querybuilder.Builder
}

func NewToPublishRepository(db *sql.DB, builder querybuilder.Builder) *ToPublishRepository {
	return &ToPublishRepository{DB: db, Builder: builder}
}

func (r *ToPublishRepository) Create(ctx context.Context, p *model.ToPublish) error {
	query, args, err := r.Builder.Insert(table, columns,
		p.ID, p.FinalTitle, p.FinalBody, p.Platform, p.ReviewStatus, p.MaterialID, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}
	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		logger.Sugar.Errorf("Failed to create to-publish record %s: %v", p.ID, err)
		return fmt.Errorf("insert to-publish: %w", err)
	}
	return nil
}

func (r *ToPublishRepository) Get(ctx context.Context, id string) (*model.ToPublish, error) {
	query, args, err := r.Builder.GetByID(table, columns, id)
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var p model.ToPublish
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(scanTargets(&p)...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Sugar.Errorf("Failed to get to-publish record %s: %v", id, err)
		return nil, fmt.Errorf("select to-publish: %w", err)
	}
	return &p, nil
}

func (r *ToPublishRepository) List(ctx context.Context, f model.Filter) ([]model.ToPublish, error) {
	query, args, err := r.Builder.List(querybuilder.ListQuery{
		Table:   table,
		Columns: columns,
		Where:   f.Predicates(),
		OrderBy: "created_at DESC",
		Page:    f.Page,
	})
	if err != nil {
		return nil, fmt.Errorf("build list: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Sugar.Errorf("Failed to list to-publish records: %v", err)
		return nil, fmt.Errorf("list to-publish: %w", err)
	}
	defer rows.Close()

	records := []model.ToPublish{}
	for rows.Next() {
		var p model.ToPublish
		if err := rows.Scan(scanTargets(&p)...); err != nil {
			return nil, fmt.Errorf("scan to-publish: %w", err)
		}
		records = append(records, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return records, nil
}

// Update mirrors MaterialRepository.Update: nil, nil for a missing id and no write for an empty patch.
func (r *ToPublishRepository) Update(ctx context.Context, id string, patch model.UpdateToPublishRequest, updatedAt int64) (*model.ToPublish, error) {
	existing, err := r.Get(ctx, id)
	if err != nil || existing == nil {
		return existing, err
	}

	set := patch.Assignments()
	if len(set) == 0 {
		return existing, nil
	}
	set = append(set, querybuilder.Assignment{Column: "updated_at", Value: updatedAt})

	query, args, err := r.Builder.UpdateByID(table, set, id)
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}
	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		logger.Sugar.Errorf("Failed to update to-publish record %s: %v", id, err)
		return nil, fmt.Errorf("update to-publish: %w", err)
	}
	return r.Get(ctx, id)
}

func scanTargets(p *model.ToPublish) []any {
	return []any{&p.ID, &p.FinalTitle, &p.FinalBody, &p.Platform, &p.ReviewStatus, &p.MaterialID, &p.CreatedAt, &p.UpdatedAt}
}
