package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/a48zhang/AIditor/internal/material/model"
	"github.com/a48zhang/AIditor/pkg/logger"
	"github.com/a48zhang/AIditor/pkg/querybuilder"
)

const table = "materials"

var columns = []string{"id", "title", "body", "source", "tags", "collection_time", "status", "created_at", "updated_at"}

type MaterialRepository struct {
	DB      *sql.DB
	Builder querybuilder.Builder
}

func NewMaterialRepository(db *sql.DB, builder querybuilder.Builder) *MaterialRepository {
	return &MaterialRepository{DB: db, Builder: builder}
}

func (r *MaterialRepository) Create(ctx context.Context, m *model.Material) error {
	query, args, err := r.Builder.Insert(table, columns,
		m.ID, m.Title, m.Body, m.Source, m.Tags, m.CollectionTime, m.Status, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}
	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		logger.Sugar.Errorf("Failed to create material %s: %v", m.ID, err)
		return fmt.Errorf("insert material: %w", err)
	}
	return nil
}

// Get returns nil, nil when no material has the given id.
func (r *MaterialRepository) Get(ctx context.Context, id string) (*model.Material, error) {
	query, args, err := r.Builder.GetByID(table, columns, id)
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var m model.Material
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(scanTargets(&m)...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Sugar.Errorf("Failed to get material %s: %v", id, err)
		return nil, fmt.Errorf("select material: %w", err)
	}
	return &m, nil
}

// List returns matching materials, newest collection_time first. The result is never nil.
func (r *MaterialRepository) List(ctx context.Context, f model.Filter) ([]model.Material, error) {
	query, args, err := r.Builder.List(querybuilder.ListQuery{
		Table:   table,
		Columns: columns,
		Where:   f.Predicates(),
		OrderBy: "collection_time DESC",
		Page:    f.Page,
	})
	if err != nil {
		return nil, fmt.Errorf("build list: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Sugar.Errorf("Failed to list materials: %v", err)
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()

	materials := []model.Material{}
	for rows.Next() {
		var m model.Material
		if err := rows.Scan(scanTargets(&m)...); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		materials = append(materials, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return materials, nil
}

// Update applies the fields present in patch and stamps updated_at. It returns
// nil, nil when the material does not exist, and the stored record untouched
// when the patch is empty. The read and the write are separate statements, so
// concurrent patches to one record resolve as last-write-wins.
func (r *MaterialRepository) Update(ctx context.Context, id string, patch model.UpdateMaterialRequest, updatedAt int64) (*model.Material, error) {
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
		logger.Sugar.Errorf("Failed to update material %s: %v", id, err)
		return nil, fmt.Errorf("update material: %w", err)
	}
	return r.Get(ctx, id)
}

func scanTargets(m *model.Material) []any {
	return []any{&m.ID, &m.Title, &m.Body, &m.Source, &m.Tags, &m.CollectionTime, &m.Status, &m.CreatedAt, &m.UpdatedAt}
}
