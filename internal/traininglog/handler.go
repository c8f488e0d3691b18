package traininglog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/fitlinea/fitlinea/internal/telemetry/tracing"
	"github.com/fitlinea/fitlinea/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=traininglog_test

type logService interface {
	Add(ctx context.Context, entry LogEntry) (*LogEntry, error)
	Get(ctx context.Context, id int) (*LogEntry, error)
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, params ListParams) (_ []LogEntry, total int, err error)
	UpdateSetValue(ctx context.Context, params UpdateSetParams) (*SetUpdateResult, error)
}

type DeleteLogResponse struct {
	DeletedID int `json:"deletedId"`
}

type ListResponse struct {
	Entries []LogEntry `json:"entries"`
	Total   int        `json:"total"`
}

type Handler struct {
	service logService
}

func NewHandler(service logService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.traininglog.add")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var entry LogEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Tracef("new log entry, unmarshal json params: %s", err)
		http.Error(w, "add log entry failed", http.StatusBadRequest)
		return
	}

	if entry.Exercise == "" || entry.AthleteID <= 0 {
		http.Error(w, "error, exercise or athlete id empty", http.StatusBadRequest)
		return
	}

	added, err := h.service.Add(ctx, entry)
	if err != nil {
		log.Errorf("failed to add log entry [athlete %d] [%s]: %s", entry.AthleteID, entry.Exercise, err)
		http.Error(w, "error, failed to add log entry", http.StatusInternalServerError)
		return
	}

	addedJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("failed to marshal new log entry: %s", err)
		http.Error(w, "error, failed to add log entry", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.traininglog.get")
	defer span.End()

	id, ok := idFromRequest(w, r)
	if !ok {
		return
	}

	entry, err := h.service.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrLogNotFound) {
			http.Error(w, "log entry not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get log entry %d: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	entryJson, err := json.Marshal(entry)
	if err != nil {
		log.Errorf("failed to marshal log entry: %s", err)
		http.Error(w, "failed to marshal log entry", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, entryJson, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.traininglog.delete")
	defer span.End()

	id, ok := idFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrLogNotFound) {
			http.Error(w, "log entry not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete log entry %d: %s", id, err)
		http.Error(w, "log entry not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeleteLogResponse{
		DeletedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.traininglog.list")
	defer span.End()

	vars := mux.Vars(r)
	page, err := strconv.Atoi(vars["page"])
	if err != nil {
		log.Tracef("handle list log entries, from <page> param: %s", err)
		http.Error(w, "parse form error, parameter <page>", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil {
		log.Tracef("handle list log entries, from <size> param: %s", err)
		http.Error(w, "parse form error, parameter <size>", http.StatusBadRequest)
		return
	}

	if page < 1 {
		http.Error(w, "invalid page (has to be non-zero value)", http.StatusBadRequest)
		return
	}
	if size < 1 {
		http.Error(w, "invalid size (has to be non-zero value)", http.StatusBadRequest)
		return
	}

	athleteID, err := strconv.Atoi(r.URL.Query().Get("athlete_id"))
	if err != nil {
		http.Error(w, "failed to parse athlete_id param", http.StatusBadRequest)
		return
	}

	entries, total, err := h.service.List(ctx, ListParams{
		AthleteID: athleteID,
		Exercise:  r.URL.Query().Get("exercise"),
		Page:      page,
		Size:      size,
	})
	if err != nil {
		log.Errorf("list log entries error: %s", err)
		http.Error(w, "failed to get log entries", http.StatusInternalServerError)
		return
	}

	listRespJson, err := json.Marshal(ListResponse{
		Entries: entries,
		Total:   total,
	})
	if err != nil {
		log.Errorf("marshal log entries error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listRespJson, http.StatusOK)
}

func (h *Handler) HandleUpdateSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.traininglog.updateset")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var params UpdateSetParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Tracef("update set, unmarshal json params: %s", err)
		http.Error(w, "update set failed", http.StatusBadRequest)
		return
	}

	result, err := h.service.UpdateSetValue(ctx, params)
	if err != nil {
		switch {
		case errors.Is(err, ErrLogNotFound):
			http.Error(w, "log entry not found", http.StatusNotFound)
		case errors.Is(err, ErrInvalidField):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.Errorf("failed to update set [log %d, set %d]: %s", params.LogID, params.SetIndex, err)
			http.Error(w, "error, failed to update set", http.StatusInternalServerError)
		}
		return
	}

	resultJson, err := json.Marshal(result)
	if err != nil {
		log.Errorf("failed to marshal set update result: %s", err)
		http.Error(w, "failed to marshal set update result", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resultJson, http.StatusOK)
}

func idFromRequest(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := mux.Vars(r)["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return 0, false
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
