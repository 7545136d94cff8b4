package api

import (
	"net/http"

	"github.com/clarity-counsel/counsel/internal/pipeline"
	"github.com/clarity-counsel/counsel/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	runtime *Runtime,
) {
	handler := pipeline.NewHandler(
		domain.Pipeline,
		runtime.Logger,
		runtime.API.MaxUploadSizeBytes(),
	)

	routes.Register(mux, handler.Routes())
}
