package http_handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawararyan169/job-portal/internal/transport/http/dto"
)

func doRegister(t *testing.T, env *testEnv, body any) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", mustJSONBody(t, body))
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)
	return rec
}

func doLogin(t *testing.T, env *testEnv, email, password string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", mustJSONBody(t, map[string]any{
		"email":    email,
		"password": password,
	}))
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)
	return rec
}

func registerSeeker(t *testing.T, env *testEnv, email, password string) dto.RegisterResponse {
	t.Helper()
	rec := doRegister(t, env, map[string]any{
		"email":           email,
		"name":            "Test User",
		"password":        password,
		"confirmPassword": password,
		"isRecruiter":     false,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var out dto.RegisterResponse
	mustReadJSON(t, rec.Body, &out)
	return out
}

func TestRegister_Success(t *testing.T) {
	env := newTestEnv(t)

	rec := doRegister(t, env, map[string]any{
		"email":           "Ana@Example.com",
		"name":            "Ana",
		"password":        "Password123",
		"confirmPassword": "Password123",
		"isRecruiter":     false,
	})

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var out dto.RegisterResponse
	mustReadJSON(t, rec.Body, &out)

	assert.True(t, out.Success)
	assert.Equal(t, "Registration successful", out.Message)
	assert.NotEmpty(t, out.UserID)
	// Emails are stored and echoed in canonical lowercase form.
	assert.Equal(t, "ana@example.com", out.UserEmail)
}

func TestRegister_PasswordMismatch(t *testing.T) {
	env := newTestEnv(t)

	rec := doRegister(t, env, map[string]any{
		"email":           "ana@example.com",
		"name":            "Ana",
		"password":        "Password123",
		"confirmPassword": "Password124",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var out map[string]any
	mustReadJSON(t, rec.Body, &out)
	assert.Equal(t, false, out["success"])
	assert.Equal(t, "Passwords do not match.", out["message"])
}

func TestRegister_MissingFields(t *testing.T) {
	env := newTestEnv(t)

	rec := doRegister(t, env, map[string]any{
		"email":    "ana@example.com",
		"password": "Password123",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var out map[string]any
	mustReadJSON(t, rec.Body, &out)
	assert.Equal(t, "All fields are required.", out["message"])
}

func TestRegister_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	registerSeeker(t, env, "dup@example.com", "Password123")

	// Same address with different casing must still conflict.
	rec := doRegister(t, env, map[string]any{
		"email":           "DUP@example.com",
		"name":            "Other",
		"password":        "Password123",
		"confirmPassword": "Password123",
	})

	require.Equal(t, http.StatusConflict, rec.Code)

	var out map[string]any
	mustReadJSON(t, rec.Body, &out)
	assert.Equal(t, "Registration failed: This email address is already in use.", out["message"])
}

func TestRegister_InvalidJSON(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", nil)
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_Success(t *testing.T) {
	env := newTestEnv(t)
	reg := registerSeeker(t, env, "ana@example.com", "Password123")

	rec := doLogin(t, env, "ana@example.com", "Password123")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out dto.LoginResponse
	mustReadJSON(t, rec.Body, &out)

	assert.True(t, out.Success)
	assert.Equal(t, "Login successful", out.Message)
	assert.Equal(t, reg.UserID, out.UserID)
	assert.Equal(t, "job_seeker", out.UserType)
	assert.False(t, out.IsProfileComplete)
	assert.NotEmpty(t, out.Token)
	assert.NotEqual(t, "EXAMPLE_JWT_TOKEN", out.Token)

	// The token must verify against the same signer the server uses.
	claims, err := env.signer.VerifyAccessToken(out.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.UserID, claims.UserID)
	assert.Equal(t, "job_seeker", claims.Role)
}

func TestLogin_CaseInsensitiveEmail(t *testing.T) {
	env := newTestEnv(t)
	registerSeeker(t, env, "ana@example.com", "Password123")

	rec := doLogin(t, env, "  ANA@EXAMPLE.COM ", "Password123")
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestLogin_FailureShapeIsUniform(t *testing.T) {
	env := newTestEnv(t)
	registerSeeker(t, env, "ana@example.com", "Password123")

	unknown := doLogin(t, env, "ghost@example.com", "Password123")
	wrongPw := doLogin(t, env, "ana@example.com", "WrongPassword1")

	// Unknown account and wrong password must be indistinguishable.
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPw.Code)
	assert.JSONEq(t, unknown.Body.String(), wrongPw.Body.String())

	var out map[string]any
	mustReadJSON(t, unknown.Body, &out)
	assert.Equal(t, "Invalid credentials.", out["message"])
}

func TestLogin_MissingPassword(t *testing.T) {
	env := newTestEnv(t)

	rec := doLogin(t, env, "ana@example.com", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMe_RequiresToken(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMe_ReturnsIdentity(t *testing.T) {
	env := newTestEnv(t)
	registerSeeker(t, env, "ana@example.com", "Password123")

	login := doLogin(t, env, "ana@example.com", "Password123")
	var lr dto.LoginResponse
	mustReadJSON(t, login.Body, &lr)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+lr.Token)
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var me dto.MeResponse
	mustReadJSON(t, rec.Body, &me)
	assert.Equal(t, lr.UserID, me.UserID)
	assert.Equal(t, "ana@example.com", me.Email)
	assert.Equal(t, "job_seeker", me.UserType)
}

func TestCompleteProfile_FlipsFlag(t *testing.T) {
	env := newTestEnv(t)
	registerSeeker(t, env, "ana@example.com", "Password123")

	login := doLogin(t, env, "ana@example.com", "Password123")
	var lr dto.LoginResponse
	mustReadJSON(t, login.Body, &lr)
	require.False(t, lr.IsProfileComplete)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/profile/complete", nil)
	req.Header.Set("Authorization", "Bearer "+lr.Token)
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// A fresh login reflects the flag; role is untouched.
	again := doLogin(t, env, "ana@example.com", "Password123")
	var lr2 dto.LoginResponse
	mustReadJSON(t, again.Body, &lr2)
	assert.True(t, lr2.IsProfileComplete)
	assert.Equal(t, "job_seeker", lr2.UserType)
}

func TestRequestID_EchoedOnResponses(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-Id", "req-123")
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Header().Get("X-Request-Id"))
}
