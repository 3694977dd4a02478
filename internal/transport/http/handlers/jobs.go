package http_handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/pawararyan169/job-portal/internal/application/jobs"
	"github.com/pawararyan169/job-portal/internal/domain"
	"github.com/pawararyan169/job-portal/internal/logger"
	"github.com/pawararyan169/job-portal/internal/transport/http/dto"
	"github.com/pawararyan169/job-portal/internal/transport/http/middleware"
	"github.com/pawararyan169/job-portal/internal/transport/http/response"
)

type JobsHandler struct {
	svc *jobs.Service
}

func NewJobsHandler(svc *jobs.Service) *JobsHandler {
	return &JobsHandler{svc: svc}
}

// Feed serves the public job feed the mobile home screen renders.
func (h *JobsHandler) Feed(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}

	list, err := h.svc.Feed(r.Context(), limit)
	if err != nil {
		logger.WithCtx(r.Context()).Error().Err(err).Msg("job_feed_failed")
		response.WriteJSON(w, http.StatusInternalServerError, dto.JobFeedResponse{
			Success: false,
			Jobs:    []dto.JobView{},
			Message: "Server error while fetching job data.",
		})
		return
	}

	response.OK(w, dto.JobFeedResponse{
		Success: true,
		Jobs:    dto.NewJobViews(list, time.Now().UTC()),
		Message: "Job feed loaded successfully.",
	})
}

func (h *JobsHandler) Post(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenMissing())
		return
	}
	role, _ := middleware.RoleFromContext(r.Context())

	var req dto.PostJobRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	j, err := h.svc.Post(r.Context(), jobs.PostInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		SalaryRange: req.SalaryRange,
		Description: req.Description,
		JobType:     req.JobType,
		PostedBy:    userID,
		PosterRole:  role,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("job_id", j.ID).
		Str("posted_by", userID).
		Msg("job_posted")

	response.Created(w, dto.PostJobResponse{
		Success: true,
		Message: "Job posted successfully.",
		JobID:   j.ID,
	})
}
