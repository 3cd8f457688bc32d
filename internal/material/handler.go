package handler

import (
	"context"
	"net/http"

	"github.com/a48zhang/AIditor/internal/material/model"
	"github.com/a48zhang/AIditor/pkg/request"
	"github.com/a48zhang/AIditor/pkg/response"
)

type Service interface {
	CreateMaterial(ctx context.Context, req model.CreateMaterialRequest) (*model.Material, error)
	GetMaterial(ctx context.Context, id string) (*model.Material, error)
	ListMaterials(ctx context.Context, f model.Filter) ([]model.Material, error)
	UpdateMaterial(ctx context.Context, id string, req model.UpdateMaterialRequest) (*model.Material, error)
}

type MaterialHandler struct {
	Service Service
}

func NewMaterialHandler(service Service) *MaterialHandler {
	return &MaterialHandler{Service: service}
}

// CreateMaterial handles POST /api/materials.
func (h *MaterialHandler) CreateMaterial(w http.ResponseWriter, r *http.Request) {
	var req model.CreateMaterialRequest
	if err := request.DecodeJSON(w, r, &req); err != nil {
		response.Error(w, err)
		return
	}

	m, err := h.Service.CreateMaterial(r.Context(), req)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, m, "Material created successfully")
}

// ListMaterials handles GET /api/materials.
func (h *MaterialHandler) ListMaterials(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := model.Filter{
		Status:    request.String(q, "status"),
		StartTime: request.Int64(q, "start_time"),
		EndTime:   request.Int64(q, "end_time"),
	}
	f.Page.Limit = request.Uint64(q, "limit")
	f.Page.Offset = request.Uint64(q, "offset")

	materials, err := h.Service.ListMaterials(r.Context(), f)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, materials, "")
}

// GetMaterial handles GET /api/materials/{id}.
func (h *MaterialHandler) GetMaterial(w http.ResponseWriter, r *http.Request) {
	m, err := h.Service.GetMaterial(r.Context(), r.PathValue("id"))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, m, "")
}

// UpdateMaterial handles PUT /api/materials/{id}.
func (h *MaterialHandler) UpdateMaterial(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateMaterialRequest
	if err := request.DecodeJSON(w, r, &req); err != nil {
		response.Error(w, err)
		return
	}

	m, err := h.Service.UpdateMaterial(r.Context(), r.PathValue("id"), req)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, m, "Material updated successfully")
}
