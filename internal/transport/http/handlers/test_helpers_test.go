package http_handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/pawararyan169/job-portal/internal/application/auth"
	"github.com/pawararyan169/job-portal/internal/application/jobs"
	"github.com/pawararyan169/job-portal/internal/domain"
	"github.com/pawararyan169/job-portal/internal/infrastructure/memory"
	"github.com/pawararyan169/job-portal/internal/infrastructure/security"
	"github.com/pawararyan169/job-portal/internal/logger"
	"github.com/pawararyan169/job-portal/internal/transport/http/middleware"
	"github.com/pawararyan169/job-portal/internal/transport/http/response"
	"github.com/pawararyan169/job-portal/internal/transport/http/router"
)

func init() {
	logger.InitWithWriter(io.Discard)
}

// testEnv wires the full stack over in-memory infrastructure, the same
// shape the bootstrap assembles in production.
type testEnv struct {
	handler http.Handler
	users   *memory.UserRepo
	jobRepo *memory.JobRepo
	authSvc *auth.Service
	signer  *security.JWTSigner
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	users := memory.NewUserRepo()
	jobRepo := memory.NewJobRepo()
	hasher := security.NewBcryptHasher(4) // low cost keeps tests fast
	signer := security.NewJWTSigner("test-secret", "job-portal-test")
	pub := memory.NewNoopPublisher()

	authSvc := auth.NewService(users, hasher, signer, pub, auth.Config{})
	jobsSvc := jobs.NewService(jobRepo, pub)

	h, err := router.New(router.Deps{
		Health:      NewHealthHandler(nil),
		Auth:        NewAuthHandler(authSvc),
		Jobs:        NewJobsHandler(jobsSvc),
		AuthMW:      middleware.Auth(signer, response.WriteError),
		RecruiterMW: middleware.RequireRole(string(domain.RoleRecruiter), response.WriteError),
		RequestID:   middleware.RequestID,
	})
	if err != nil {
		t.Fatalf("router: %v", err)
	}

	return &testEnv{
		handler: h,
		users:   users,
		jobRepo: jobRepo,
		authSvc: authSvc,
		signer:  signer,
	}
}

// mustJSONBody marshals v to JSON and returns an io.Reader for request body.
func mustJSONBody(t *testing.T, v any) io.Reader {
	t.Helper()

	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("json marshal: %v", err)
	}
	return bytes.NewReader(b)
}

// mustReadJSON decodes the response body into out.
func mustReadJSON(t *testing.T, r io.Reader, out any) {
	t.Helper()

	raw, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		t.Fatalf("unmarshal %q: %v", raw, err)
	}
}
