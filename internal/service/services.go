package service

import (
	"github.com/deppfellow/estate-api/internal/server"
)

type Services struct {
	Auth        *AuthService
	Submissions *SubmissionService
}

func NewServices(s *server.Server) *Services {
	return &Services{
		Auth:        NewAuthService(s),
		Submissions: NewSubmissionService(s.Job),
	}
}
