package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type HealthHandler interface {
	Healthz(w http.ResponseWriter, r *http.Request)
	Readyz(w http.ResponseWriter, r *http.Request)
}

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
	CompleteProfile(w http.ResponseWriter, r *http.Request)
}

type JobsHandler interface {
	Feed(w http.ResponseWriter, r *http.Request)
	Post(w http.ResponseWriter, r *http.Request)
}

type Deps struct {
	Health HealthHandler
	Auth   AuthHandler
	Jobs   JobsHandler

	// AuthMW authenticates the bearer token; RecruiterMW additionally
	// requires the recruiter role and must run after AuthMW.
	AuthMW      func(http.Handler) http.Handler
	RecruiterMW func(http.Handler) http.Handler
	RequestID   func(http.Handler) http.Handler
}

func New(deps Deps) (http.Handler, error) {
	if deps.Health == nil {
		return nil, fmt.Errorf("nil Health handler")
	}
	if deps.Auth == nil {
		return nil, fmt.Errorf("nil Auth handler")
	}
	if deps.Jobs == nil {
		return nil, fmt.Errorf("nil Jobs handler")
	}
	if deps.AuthMW == nil {
		return nil, fmt.Errorf("nil Auth middleware")
	}
	if deps.RecruiterMW == nil {
		return nil, fmt.Errorf("nil Recruiter middleware")
	}

	r := chi.NewRouter()
	if deps.RequestID != nil {
		r.Use(deps.RequestID)
	}

	r.Get("/healthz", deps.Health.Healthz)
	r.Get("/readyz", deps.Health.Readyz)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", deps.Auth.Register)
			r.Post("/login", deps.Auth.Login)
			r.With(deps.AuthMW).Get("/me", deps.Auth.Me)
			r.With(deps.AuthMW).Post("/profile/complete", deps.Auth.CompleteProfile)
		})

		r.Route("/jobs", func(r chi.Router) {
			r.Get("/feed", deps.Jobs.Feed)
			r.With(deps.AuthMW, deps.RecruiterMW).Post("/post", deps.Jobs.Post)
		})
	})

	return r, nil
}
