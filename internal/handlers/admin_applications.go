// Admin review panel: list with filters, detail, status transition, stats.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/transrodar/backend/internal/applications"
	"github.com/transrodar/backend/internal/domain"
	"github.com/transrodar/backend/internal/middleware"
	"github.com/transrodar/backend/internal/response"
	"github.com/transrodar/backend/internal/util"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// ApplicationView is an Application with CPF and phone rendered masked.
type ApplicationView struct {
	applications.Application
	CPF   string `json:"cpf"`
	Phone string `json:"phone"`
}

func toView(a *applications.Application) ApplicationView {
	return ApplicationView{
		Application: *a,
		CPF:         util.MaskCPF(a.CPF),
		Phone:       util.MaskBRPhone(a.Phone),
	}
}

// parseListFilter reads the query string into a ListFilter. Bare dates on
// `to` are widened to the end of that day so the range stays inclusive.
func parseListFilter(q url.Values) (applications.ListFilter, error) {
	f := applications.ListFilter{Limit: defaultListLimit}

	if v := q.Get("from"); v != "" {
		t, err := parseTimeParam(v, false)
		if err != nil {
			return f, fmt.Errorf("invalid from: %s", v)
		}
		f.From = &t
	}
	if v := q.Get("to"); v != "" {
		t, err := parseTimeParam(v, true)
		if err != nil {
			return f, fmt.Errorf("invalid to: %s", v)
		}
		f.To = &t
	}
	if v := q.Get("status"); v != "" {
		if !domain.Status(v).Valid() {
			return f, fmt.Errorf("invalid status: %s", v)
		}
		f.Status = v
	}
	if v := q.Get("availability"); v != "" {
		if !domain.Availability(v).Valid() {
			return f, fmt.Errorf("invalid availability: %s", v)
		}
		f.Availability = v
	}
	if v := q.Get("vehicle_type"); v != "" {
		if !domain.VehicleType(v).Valid() {
			return f, fmt.Errorf("invalid vehicle_type: %s", v)
		}
		f.VehicleType = v
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return f, fmt.Errorf("invalid limit: %s", v)
		}
		if n > maxListLimit {
			n = maxListLimit
		}
		f.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return f, fmt.Errorf("invalid offset: %s", v)
		}
		f.Offset = n
	}
	return f, nil
}

func parseTimeParam(v string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}

// ListApplications handles GET /admin/applications.
func ListApplications(repo *applications.Repo) gin.HandlerFunc {
	return func(c *gin.Context) {
		f, err := parseListFilter(c.Request.URL.Query())
		if err != nil {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
		defer cancel()

		list, err := repo.List(ctx, f)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "internal error")
			return
		}
		views := make([]ApplicationView, 0, len(list))
		for _, a := range list {
			views = append(views, toView(a))
		}
		response.Success(c, http.StatusOK, response.MsgSuccess, views)
	}
}

// GetApplication handles GET /admin/applications/:id.
func GetApplication(repo *applications.Repo) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			response.Error(c, http.StatusBadRequest, "invalid application id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		a, err := repo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, applications.ErrNotFound) {
				response.Error(c, http.StatusNotFound, "application not found")
				return
			}
			response.Error(c, http.StatusInternalServerError, "internal error")
			return
		}
		response.Success(c, http.StatusOK, response.MsgSuccess, toView(a))
	}
}

// UpdateStatusRequest carries the review decision.
type UpdateStatusRequest struct {
	Status string  `json:"status"`
	Note   *string `json:"note"`
}

// UpdateApplicationStatus handles PATCH /admin/applications/:id/status.
// The workflow enforces no transition matrix: any of the four states is
// reachable from any other.
func UpdateApplicationStatus(repo *applications.Repo) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			response.Error(c, http.StatusBadRequest, "invalid application id")
			return
		}
		var req UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, "invalid request body")
			return
		}
		if !domain.Status(req.Status).Valid() {
			response.Error(c, http.StatusBadRequest, "invalid status: "+req.Status)
			return
		}
		if req.Note != nil {
			note := strings.TrimSpace(*req.Note)
			if note == "" {
				req.Note = nil
			} else {
				req.Note = &note
			}
		}

		reviewer, err := uuid.Parse(middleware.UserIDFrom(c.Request.Context()))
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "unauthorized")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		err = repo.UpdateStatus(ctx, id, applications.StatusUpdate{
			Status:     req.Status,
			StatusNote: req.Note,
			ReviewedBy: reviewer,
		})
		if err != nil {
			if errors.Is(err, applications.ErrNotFound) {
				response.Error(c, http.StatusNotFound, "application not found")
				return
			}
			response.Error(c, http.StatusInternalServerError, "internal error")
			return
		}
		response.Success(c, http.StatusOK, response.MsgSuccess, nil)
	}
}

// ApplicationStats handles GET /admin/stats.
func ApplicationStats(repo *applications.Repo) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		stats, err := repo.CountByStatus(ctx)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "internal error")
			return
		}
		response.Success(c, http.StatusOK, response.MsgSuccess, stats)
	}
}
