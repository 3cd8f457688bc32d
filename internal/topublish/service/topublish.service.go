package service

import (
	"context"

	"github.com/a48zhang/AIditor/internal/topublish/model"
	"github.com/a48zhang/AIditor/pkg/apperror"
	"github.com/a48zhang/AIditor/pkg/idgen"
	"github.com/a48zhang/AIditor/socket"
)

type Repository interface {
	Create(ctx context.Context, p *model.ToPublish) error
	Get(ctx context.Context, id string) (*model.ToPublish, error)
	List(ctx context.Context, f model.Filter) ([]model.ToPublish, error)
	Update(ctx context.Context, id string, patch model.UpdateToPublishRequest, updatedAt int64) (*model.ToPublish, error)
}

type Publisher interface {
	Publish(collection, eventType, id string, record any)
}

type ToPublishService struct {
	Repo   Repository
	Events Publisher

	now   func() int64
	newID func() string
}

func NewToPublishService(repo Repository, events Publisher) *ToPublishService {
	return &ToPublishService{Repo: repo, Events: events, now: idgen.NowMillis, newID: idgen.NewID}
}

func (s *ToPublishService) CreateToPublish(ctx context.Context, req model.CreateToPublishRequest) (*model.ToPublish, error) {
	if req.FinalTitle == "" || req.FinalBody == "" || req.Platform == "" {
		return nil, apperror.Validation("Final title, final body, and platform are required")
	}

	now := s.now()
	p := &model.ToPublish{
		ID:           s.newID(),
		FinalTitle:   req.FinalTitle,
		FinalBody:    req.FinalBody,
		Platform:     req.Platform,
		ReviewStatus: req.ReviewStatus,
		MaterialID:   req.MaterialID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if p.ReviewStatus == "" {
		p.ReviewStatus = model.ReviewPending
	}

	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, apperror.Internal(err)
	}
	s.publish(socket.CreatedType, p)
	return p, nil
}

func (s *ToPublishService) GetToPublish(ctx context.Context, id string) (*model.ToPublish, error) {
	p, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if p == nil {
		return nil, apperror.NotFound("To-publish record not found")
	}
	return p, nil
}

func (s *ToPublishService) ListToPublish(ctx context.Context, f model.Filter) ([]model.ToPublish, error) {
	records, err := s.Repo.List(ctx, f)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return records, nil
}

func (s *ToPublishService) UpdateToPublish(ctx context.Context, id string, req model.UpdateToPublishRequest) (*model.ToPublish, error) {
	p, err := s.Repo.Update(ctx, id, req, s.now())
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if p == nil {
		return nil, apperror.NotFound("To-publish record not found")
	}
	if len(req.Assignments()) > 0 {
		s.publish(socket.UpdatedType, p)
	}
	return p, nil
}

func (s *ToPublishService) publish(eventType string, p *model.ToPublish) {
	if s.Events != nil {
		s.Events.Publish(socket.ToPublishCollection, eventType, p.ID, p)
	}
}
