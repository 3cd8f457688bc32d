package handler

import (
	"context"
	"net/http"

	"github.com/a48zhang/AIditor/internal/topublish/model"
	"github.com/a48zhang/AIditor/pkg/request"
	"github.com/a48zhang/AIditor/pkg/response"
)

type Service interface {
	CreateToPublish(ctx context.Context, req model.CreateToPublishRequest) (*model.ToPublish, error)
	GetToPublish(ctx context.Context, id string) (*model.ToPublish, error)
	ListToPublish(ctx context.Context, f model.Filter) ([]model.ToPublish, error)
	UpdateToPublish(ctx context.Context, id string, req model.UpdateToPublishRequest) (*model.ToPublish, error)
}

type ToPublishHandler struct {
	Service Service
}

func NewToPublishHandler(service Service) *ToPublishHandler {
	return &ToPublishHandler{Service: service}
}

func (h *ToPublishHandler) CreateToPublish(w http.ResponseWriter, r *http.Request) {
	var req model.CreateToPublishRequest
	if err := request.DecodeJSON(w, r, &req); err != nil {
		response.Error(w, err)
		return
	}

	p, err := h.Service.CreateToPublish(r.Context(), req)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, p, "To-publish record created successfully")
}

func (h *ToPublishHandler) ListToPublish(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := model.Filter{
		ReviewStatus: request.String(q, "review_status"),
		Platform:     request.String(q, "platform"),
	}
	f.Page.Limit = request.Uint64(q, "limit")
	f.Page.Offset = request.Uint64(q, "offset")

	records, err := h.Service.ListToPublish(r.Context(), f)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, records, "")
}

func (h *ToPublishHandler) GetToPublish(w http.ResponseWriter, r *http.Request) {
	p, err := h.Service.GetToPublish(r.Context(), r.PathValue("id"))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, p, "")
}

func (h *ToPublishHandler) UpdateToPublish(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateToPublishRequest
	if err := request.DecodeJSON(w, r, &req); err != nil {
		response.Error(w, err)
		return
	}

	p, err := h.Service.UpdateToPublish(r.Context(), r.PathValue("id"), req)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, p, "To-publish record updated successfully")
}
