package http_handlers

import (
	"net/http"

	"github.com/pawararyan169/job-portal/internal/application/auth"
	"github.com/pawararyan169/job-portal/internal/domain"
	"github.com/pawararyan169/job-portal/internal/logger"
	"github.com/pawararyan169/job-portal/internal/transport/http/dto"
	"github.com/pawararyan169/job-portal/internal/transport/http/middleware"
	"github.com/pawararyan169/job-portal/internal/transport/http/response"
)

type AuthHandler struct {
	svc *auth.Service
}

func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.Register(r.Context(), auth.RegisterInput{
		Email:           req.Email,
		Name:            req.Name,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		IsRecruiter:     req.IsRecruiter,
	})
	if err != nil {
		logger.WithCtx(r.Context()).Warn().Err(err).Msg("register_failed")
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("user_id", res.User.ID).
		Str("role", res.User.Role).
		Msg("user_registered")

	response.Created(w, dto.RegisterResponse{
		Success:   true,
		Message:   "Registration successful",
		UserID:    res.User.ID,
		UserEmail: res.User.Email,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		// Failed logins never say which part was wrong.
		logger.WithCtx(r.Context()).Warn().Err(err).Msg("login_failed")
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("user_id", res.User.ID).
		Str("role", res.User.Role).
		Msg("user_logged_in")

	response.OK(w, dto.LoginResponse{
		Success:           true,
		Token:             res.Token,
		UserID:            res.User.ID,
		UserType:          res.User.Role,
		IsProfileComplete: res.User.ProfileComplete,
		Message:           "Login successful",
	})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenMissing())
		return
	}

	u, err := h.svc.GetUserByID(r.Context(), userID)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.OK(w, dto.MeResponse{
		Success:           true,
		UserID:            u.ID,
		Email:             u.Email,
		Name:              u.Name,
		UserType:          u.Role,
		IsProfileComplete: u.ProfileComplete,
	})
}

func (h *AuthHandler) CompleteProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenMissing())
		return
	}

	if err := h.svc.CompleteProfile(r.Context(), userID); err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("user_id", userID).
		Msg("profile_completed")

	response.OK(w, dto.CompleteProfileResponse{
		Success:           true,
		Message:           "Profile completed",
		IsProfileComplete: true,
	})
}
