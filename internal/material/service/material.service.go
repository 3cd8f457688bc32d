package service

import (
	"context"

	"github.com/a48zhang/AIditor/internal/material/model"
	"github.com/a48zhang/AIditor/pkg/apperror"
	"github.com/a48zhang/AIditor/pkg/idgen"
	"github.com/a48zhang/AIditor/socket"
)

type Repository interface {
	Create(ctx context.Context, m *model.Material) error
	Get(ctx context.Context, id string) (*model.Material, error)
	List(ctx context.Context, f model.Filter) ([]model.Material, error)
	Update(ctx context.Context, id string, patch model.UpdateMaterialRequest, updatedAt int64) (*model.Material, error)
}

// Publisher receives a change event after every successful write.
type Publisher interface {
	Publish(collection, eventType, id string, record any)
}

type MaterialService struct {
	Repo   Repository
	Events Publisher

	now   func() int64
	newID func() string
}

func NewMaterialService(repo Repository, events Publisher) *MaterialService {
	return &MaterialService{
		Repo:   repo,
		Events: events,
		now:    idgen.NowMillis,
		newID:  idgen.NewID,
	}
}

func (s *MaterialService) CreateMaterial(ctx context.Context, req model.CreateMaterialRequest) (*model.Material, error) {
	if req.Title == "" || req.Body == "" {
		return nil, apperror.Validation("Title and body are required")
	}

	now := s.now()
	m := &model.Material{
		ID:             s.newID(),
		Title:          req.Title,
		Body:           req.Body,
		Source:         req.Source,
		Tags:           req.Tags,
		CollectionTime: req.CollectionTime,
		Status:         req.Status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if m.CollectionTime == 0 {
		m.CollectionTime = now
	}
	if m.Status == "" {
		m.Status = model.StatusPending
	}

	if err := s.Repo.Create(ctx, m); err != nil {
		return nil, apperror.Internal(err)
	}
	s.publish(socket.CreatedType, m)
	return m, nil
}

func (s *MaterialService) GetMaterial(ctx context.Context, id string) (*model.Material, error) {
	m, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if m == nil {
		return nil, apperror.NotFound("Material not found")
	}
	return m, nil
}

func (s *MaterialService) ListMaterials(ctx context.Context, f model.Filter) ([]model.Material, error) {
	materials, err := s.Repo.List(ctx, f)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return materials, nil
}

func (s *MaterialService) UpdateMaterial(ctx context.Context, id string, req model.UpdateMaterialRequest) (*model.Material, error) {
	m, err := s.Repo.Update(ctx, id, req, s.now())
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if m == nil {
		return nil, apperror.NotFound("Material not found")
	}
	if len(req.Assignments()) > 0 {
		s.publish(socket.UpdatedType, m)
	}
	return m, nil
}

func (s *MaterialService) publish(eventType string, m *model.Material) {
	if s.Events == nil {
		return
	}
	s.Events.Publish(socket.MaterialsCollection, eventType, m.ID, m)
}
