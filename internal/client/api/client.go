// Package api is the HTTP client the mobile shell and CLI use to talk
// to the job-portal backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/pawararyan169/job-portal/internal/domain"
	"github.com/pawararyan169/job-portal/internal/transport/http/dto"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	baseURL string
	http    *http.Client
}

type Option func(*Client)

// WithHTTPClient overrides the underlying http.Client (tests, proxies).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Register creates an account and returns the server's acknowledgement.
func (c *Client) Register(ctx context.Context, in dto.RegisterRequest) (dto.RegisterResponse, error) {
	var out dto.RegisterResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/register", "", in, &out)
	return out, err
}

// Login authenticates and returns the session payload the caller should
// persist (token + routing fields).
func (c *Client) Login(ctx context.Context, email, password string) (dto.LoginResponse, error) {
	var out dto.LoginResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email:    email,
		Password: password,
	}, &out)
	return out, err
}

// Me fetches the identity behind a token. Used to revalidate a cached
// session at startup.
func (c *Client) Me(ctx context.Context, token string) (dto.MeResponse, error) {
	var out dto.MeResponse
	err := c.do(ctx, http.MethodGet, "/api/auth/me", token, nil, &out)
	return out, err
}

// CompleteProfile marks the authenticated user's profile as complete.
func (c *Client) CompleteProfile(ctx context.Context, token string) (dto.CompleteProfileResponse, error) {
	var out dto.CompleteProfileResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/profile/complete", token, nil, &out)
	return out, err
}

// Feed fetches the public job feed.
func (c *Client) Feed(ctx context.Context) (dto.JobFeedResponse, error) {
	var out dto.JobFeedResponse
	err := c.do(ctx, http.MethodGet, "/api/jobs/feed", "", nil, &out)
	return out, err
}

// PostJob publishes a listing; the token must belong to a recruiter.
func (c *Client) PostJob(ctx context.Context, token string, in dto.PostJobRequest) (dto.PostJobResponse, error) {
	var out dto.PostJobResponse
	err := c.do(ctx, http.MethodPost, "/api/jobs/post", token, in, &out)
	return out, err
}

// do performs one request. Failure bodies ({success:false,message}) are
// translated back into domain errors keyed on the HTTP status, so callers
// branch on error codes the same way server-side code does.
func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return domain.ErrInternal(err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return domain.ErrInternal(err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	res, err := c.http.Do(req)
	if err != nil {
		return domain.Wrap(domain.KindInfrastructure, "server_unreachable", "Could not reach the server.", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return domain.Wrap(domain.KindInfrastructure, "server_unreachable", "Could not reach the server.", err)
	}

	if res.StatusCode >= 400 {
		return failureToError(res.StatusCode, raw)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return domain.Wrap(domain.KindInternal, "bad_response", "Unexpected server response.", err)
		}
	}
	return nil
}

func failureToError(status int, raw []byte) error {
	var fb struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(raw, &fb)
	if fb.Message == "" {
		fb.Message = fmt.Sprintf("Request failed (%d).", status)
	}

	switch status {
	case http.StatusBadRequest:
		return domain.New(domain.KindValidation, "request_rejected", fb.Message)
	case http.StatusUnauthorized:
		return domain.New(domain.KindAuth, "unauthorized", fb.Message)
	case http.StatusForbidden:
		return domain.New(domain.KindForbidden, "forbidden", fb.Message)
	case http.StatusNotFound:
		return domain.New(domain.KindNotFound, "not_found", fb.Message)
	case http.StatusConflict:
		return domain.New(domain.KindConflict, "conflict", fb.Message)
	default:
		return domain.New(domain.KindInfrastructure, "server_error", fb.Message)
	}
}
