package presence

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/fitlinea/fitlinea/internal/telemetry/tracing"
	"github.com/fitlinea/fitlinea/pkg"
)

type AlertsResponse struct {
	Alerts []Alert `json:"alerts"`
}

// Handler exposes the presence poller of the calling trainer session.
// The session token doubles as the poller key, so alerts and viewing
// state are scoped to one login.
type Handler struct {
	manager *Manager
}

func NewHandler(manager *Manager) *Handler {
	return &Handler{
		manager: manager,
	}
}

func (h *Handler) HandleGetAlerts(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.presence.alerts")
	defer span.End()

	poller, ok := h.sessionPoller(w, r)
	if !ok {
		return
	}

	alertsJson, err := json.Marshal(AlertsResponse{
		Alerts: poller.Alerts(),
	})
	if err != nil {
		log.Errorf("failed to marshal presence alerts: %s", err)
		http.Error(w, "failed to marshal presence alerts", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, alertsJson, http.StatusOK)
}

func (h *Handler) HandleSetViewing(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.presence.setviewing")
	defer span.End()

	conversationID := mux.Vars(r)["conversationId"]
	if conversationID == "" {
		http.Error(w, "error, conversation id empty", http.StatusBadRequest)
		return
	}

	poller, ok := h.sessionPoller(w, r)
	if !ok {
		return
	}

	poller.SetViewing(conversationID)
	pkg.WriteTextResponseOK(w, "ok")
}

func (h *Handler) HandleClearViewing(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.presence.clearviewing")
	defer span.End()

	poller, ok := h.sessionPoller(w, r)
	if !ok {
		return
	}

	poller.ClearViewing()
	pkg.WriteTextResponseOK(w, "ok")
}

func (h *Handler) HandleDismissAlert(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.presence.dismissalert")
	defer span.End()

	conversationID := mux.Vars(r)["conversationId"]
	if conversationID == "" {
		http.Error(w, "error, conversation id empty", http.StatusBadRequest)
		return
	}

	poller, ok := h.sessionPoller(w, r)
	if !ok {
		return
	}

	if !poller.DismissAlert(conversationID) {
		http.Error(w, "alert not found", http.StatusNotFound)
		return
	}
	pkg.WriteTextResponseOK(w, "dismissed")
}

func (h *Handler) sessionPoller(w http.ResponseWriter, r *http.Request) (*Poller, bool) {
	// auth middleware already validated the token
	sessionToken := r.Header.Get("X-FIT-TOKEN")
	if sessionToken == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return nil, false
	}
	return h.manager.PollerForSession(sessionToken), true
}
