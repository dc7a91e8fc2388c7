package handler

import (
	"github.com/deppfellow/estate-api/internal/server"
	"github.com/deppfellow/estate-api/internal/service"
)

type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Rules   *RulesHandler
	Intake  *IntakeHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
		Rules:   NewRulesHandler(s),
		Intake:  NewIntakeHandler(s, services.Submissions),
	}
}
