package router

import (
	"database/sql"
	"net/http"

	"github.com/a48zhang/AIditor/config"
	"github.com/a48zhang/AIditor/config/database"
	materialHandler "github.com/a48zhang/AIditor/internal/material"
	materialRepo "github.com/a48zhang/AIditor/internal/material/repository"
	materialService "github.com/a48zhang/AIditor/internal/material/service"
	toPublishHandler "github.com/a48zhang/AIditor/internal/topublish"
	toPublishRepo "github.com/a48zhang/AIditor/internal/topublish/repository"
	toPublishService "github.com/a48zhang/AIditor/internal/topublish/service"
	"github.com/a48zhang/AIditor/middleware"
	"github.com/a48zhang/AIditor/pkg/response"
	"github.com/a48zhang/AIditor/socket"
)

const (
	Version = "1.0.0"
	wsPath  = "/ws"
)

type banner struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

func Setup(cfg config.Config, db *sql.DB, dialect database.Dialect, hub *socket.Hub) http.Handler {
	mux := http.NewServeMux()
	builder := dialect.Builder()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, http.StatusOK, banner{
			Success: true,
			Message: "AIditor API - AI-based news editor backend",
			Version: Version,
			Endpoints: map[string]string{
				"materials": "/api/materials",
				"toPublish": "/api/to-publish",
				"events":    wsPath,
			},
		})
	})

	// Material pool
	mRepo := materialRepo.NewMaterialRepository(db, builder)
	mService := materialService.NewMaterialService(mRepo, hub)
	mHandler := materialHandler.NewMaterialHandler(mService)

	mux.HandleFunc("POST /api/materials", mHandler.CreateMaterial)
	mux.HandleFunc("GET /api/materials", mHandler.ListMaterials)
	mux.HandleFunc("GET /api/materials/{id}", mHandler.GetMaterial)
	mux.HandleFunc("PUT /api/materials/{id}", mHandler.UpdateMaterial)

	// To-publish pool
	pRepo := toPublishRepo.NewToPublishRepository(db, builder)
	pService := toPublishService.NewToPublishService(pRepo, hub)
	pHandler := toPublishHandler.NewToPublishHandler(pService)

	mux.HandleFunc("POST /api/to-publish", pHandler.CreateToPublish)
	mux.HandleFunc("GET /api/to-publish", pHandler.ListToPublish)
	mux.HandleFunc("GET /api/to-publish/{id}", pHandler.GetToPublish)
	mux.HandleFunc("PUT /api/to-publish/{id}", pHandler.UpdateToPublish)

	// Change feed
	mux.HandleFunc("GET "+wsPath, func(w http.ResponseWriter, r *http.Request) {
		socket.ServeWs(hub, w, r)
	})

	// Everything else, including wrong methods on known paths.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		response.Fail(w, http.StatusNotFound, "Endpoint not found")
	})

	var handler http.Handler = mux
	handler = middleware.AuthMiddleware(cfg.Auth.APIKey, wsPath)(handler)
	handler = middleware.CORSMiddleware(cfg.Server.AllowedOrigins)(handler)
	handler = middleware.RequestLogger(handler)
	handler = middleware.Recoverer(handler)
	return handler
}
