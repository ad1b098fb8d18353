package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/model"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/types"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/usecase"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/utils/errutil"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/utils/safe"
)

var errInvalidRequest = errors.New("invalid request")

// referenceTime returns the instant of one scoring pass: the "now" query
// parameter (RFC 3339) when given, otherwise a single clock read. Only read
// views take it; writes are always stamped with the clock.
func (s *Server) referenceTime(r *http.Request) (time.Time, error) {
	v := r.URL.Query().Get("now")
	if v == "" {
		return s.uc.Now(), nil
	}

	now, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, goerr.Wrap(errInvalidRequest, "now must be RFC 3339", goerr.V("now", v))
	}
	return now, nil
}

// statusOf maps use case errors to HTTP status codes
func statusOf(err error) int {
	switch {
	case errors.Is(err, errInvalidRequest),
		errors.Is(err, usecase.ErrInvalidStatus):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrDeadlineNotFound),
		errors.Is(err, usecase.ErrNotificationNotFound),
		errors.Is(err, usecase.ErrIncidentNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrDeadlineAlreadyCompleted),
		errors.Is(err, usecase.ErrInvalidTransition):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	safe.Write(r.Context(), w, data)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	errutil.HandleHTTP(r.Context(), w, err, statusOf(err))
}

func (s *Server) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	now, err := s.referenceTime(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	dashboard, err := s.uc.Dashboard.Dashboard(r.Context(), now)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, dashboard)
}

type riskResponse struct {
	*model.RiskSnapshot
	Grid [][]model.HeatMapCell `json:"grid"`
}

func (s *Server) riskHandler(w http.ResponseWriter, r *http.Request) {
	snapshot, err := s.uc.Dashboard.Risk(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, riskResponse{
		RiskSnapshot: snapshot,
		Grid:         snapshot.Grid(s.uc.Engine().ClassifyHeatMap),
	})
}

func (s *Server) incidentsHandler(w http.ResponseWriter, r *http.Request) {
	now, err := s.referenceTime(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	summary, err := s.uc.Dashboard.Incidents(r.Context(), now)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, summary)
}

type incidentStatusRequest struct {
	Status string `json:"status"`
}

func (s *Server) incidentStatusHandler(w http.ResponseWriter, r *http.Request) {
	var req incidentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, goerr.Wrap(errInvalidRequest, "failed to decode request body", goerr.V("error", err.Error())))
		return
	}

	incident, err := s.uc.Record.UpdateIncidentStatus(r.Context(), chi.URLParam(r, "id"), req.Status, s.uc.Now())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, incident)
}

func (s *Server) complianceHandler(w http.ResponseWriter, r *http.Request) {
	overview, err := s.uc.Dashboard.Compliance(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, overview)
}

func (s *Server) lifecycleHandler(w http.ResponseWriter, r *http.Request) {
	kind, err := types.ParseLifecycleKind(chi.URLParam(r, "kind"))
	if err != nil {
		writeError(w, r, goerr.Wrap(errInvalidRequest, "unknown lifecycle kind", goerr.V("kind", chi.URLParam(r, "kind"))))
		return
	}

	now, err := s.referenceTime(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	summary, err := s.uc.Dashboard.Lifecycle(r.Context(), kind, now)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, summary)
}

func (s *Server) deadlinesHandler(w http.ResponseWriter, r *http.Request) {
	now, err := s.referenceTime(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	view, err := s.uc.Dashboard.Deadlines(r.Context(), now)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, view)
}

func (s *Server) completeDeadlineHandler(w http.ResponseWriter, r *http.Request) {
	deadline, err := s.uc.Record.CompleteDeadline(r.Context(), chi.URLParam(r, "id"), s.uc.Now())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, deadline)
}

func (s *Server) notificationsHandler(w http.ResponseWriter, r *http.Request) {
	notifications, err := s.uc.Dashboard.Notifications(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, notifications)
}

func (s *Server) readNotificationHandler(w http.ResponseWriter, r *http.Request) {
	notification, err := s.uc.Record.MarkNotificationRead(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, notification)
}
