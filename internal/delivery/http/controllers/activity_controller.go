package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"activityboard/internal/delivery/http/helpers"
	"activityboard/internal/domain"
)

type ActivityController struct {
	Logger  *slog.Logger
	Service domain.ActivityService
}

func NewActivityController(logger *slog.Logger, svc domain.ActivityService) *ActivityController {
	return &ActivityController{
		Logger:  logger,
		Service: svc,
	}
}

// ListActivities godoc
// @Summary List all activities
// @Description Returns all activities as an object mapping activity name to its details (description, schedule, max_participants, participants).
// @Tags activities
// @Produce json
// @Success 200 {object} map[string]domain.Activity
// @Failure 500 {object} helpers.DetailResponse
// @Router /activities [get]
func (c *ActivityController) ListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	byName := make(map[string]*domain.Activity, len(activities))
	for _, a := range activities {
		byName[a.Name] = a
	}
	helpers.WriteJSON(w, http.StatusOK, byName)
}

// Signup godoc
// @Summary Sign up for an activity
// @Description Registers the email for the named activity. The activity name is a path segment; spaces must be percent-encoded.
// @Tags activities
// @Produce json
// @Param name path string true "Activity name"
// @Param email query string true "Participant email"
// @Success 200 {object} helpers.MessageResponse
// @Failure 400 {object} helpers.DetailResponse "Missing email, already signed up, or activity full"
// @Failure 404 {object} helpers.DetailResponse "Activity not found"
// @Failure 500 {object} helpers.DetailResponse
// @Router /activities/{name}/signup [post]
func (c *ActivityController) Signup(w http.ResponseWriter, r *http.Request) {
	name, email, ok := c.activityAndEmail(w, r)
	if !ok {
		return
	}

	msg, err := c.Service.Signup(r.Context(), name, email)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteMessage(w, http.StatusOK, msg)
}

// Unregister godoc
// @Summary Unregister from an activity
// @Description Removes the email from the named activity's roster.
// @Tags activities
// @Produce json
// @Param name path string true "Activity name"
// @Param email query string true "Participant email"
// @Success 200 {object} helpers.MessageResponse
// @Failure 400 {object} helpers.DetailResponse "Missing email or not registered"
// @Failure 404 {object} helpers.DetailResponse "Activity not found"
// @Failure 500 {object} helpers.DetailResponse
// @Router /activities/{name}/unregister [delete]
func (c *ActivityController) Unregister(w http.ResponseWriter, r *http.Request) {
	name, email, ok := c.activityAndEmail(w, r)
	if !ok {
		return
	}

	msg, err := c.Service.Unregister(r.Context(), name, email)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteMessage(w, http.StatusOK, msg)
}

// activityAndEmail extracts the activity name path value and the email query
// parameter. On a missing value it writes a 400 and returns ok=false.
func (c *ActivityController) activityAndEmail(w http.ResponseWriter, r *http.Request) (name, email string, ok bool) {
	name = r.PathValue("name")
	if name == "" {
		helpers.WriteDetail(w, http.StatusBadRequest, "Activity name is required")
		return "", "", false
	}
	email = strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		helpers.WriteDetail(w, http.StatusBadRequest, "Email is required")
		return "", "", false
	}
	return name, email, true
}

func (c *ActivityController) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteDetail(w, http.StatusNotFound, "Activity not found")
	case errors.Is(err, domain.ErrAlreadyRegistered):
		helpers.WriteDetail(w, http.StatusBadRequest, "Student is already signed up")
	case errors.Is(err, domain.ErrNotRegistered):
		helpers.WriteDetail(w, http.StatusBadRequest, "Student is not registered for this activity")
	case errors.Is(err, domain.ErrActivityFull):
		helpers.WriteDetail(w, http.StatusBadRequest, "Activity is full")
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteDetail(w, http.StatusInternalServerError, "Internal server error")
	}
}
