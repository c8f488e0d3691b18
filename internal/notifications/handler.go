package notifications

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=notifications_test

type notificationsRepo interface {
	List(ctx context.Context, params ListParams) (_ []Notification, total int, err error)
	CountUnread(ctx context.Context) (int, error)
	MarkRead(ctx context.Context, id int) error
	MarkAllRead(ctx context.Context) error
	Delete(ctx context.Context, id int) error
}

type ListResponse struct {
	Notifications []Notification `json:"notifications"`
	Total         int            `json:"total"`
}

type UnreadCountResponse struct {
	Count int `json:"count"`
}

type MarkReadResponse struct {
	MarkedID int `json:"markedId"`
}

type DeleteResponse struct {
	DeletedID int `json:"deletedId"`
}

type Handler struct {
	repo notificationsRepo
}

func NewHandler(repo notificationsRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.notifications.list")
	defer span.End()

	vars := mux.Vars(r)
	page, err := strconv.Atoi(vars["page"])
	if err != nil {
		http.Error(w, "parse form error, parameter <page>", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil {
		http.Error(w, "parse form error, parameter <size>", http.StatusBadRequest)
		return
	}
	if page < 1 || size < 1 {
		http.Error(w, "invalid page or size (has to be non-zero value)", http.StatusBadRequest)
		return
	}

	params := ListParams{
		UnreadOnly: r.URL.Query().Get("unread_only") == "true",
		Page:       page,
		Size:       size,
	}
	if athleteIDStr := r.URL.Query().Get("athlete_id"); athleteIDStr != "" {
		athleteID, err := strconv.Atoi(athleteIDStr)
		if err != nil {
			http.Error(w, "failed to parse athlete_id param", http.StatusBadRequest)
			return
		}
		params.AthleteID = &athleteID
	}

	list, total, err := h.repo.List(ctx, params)
	if err != nil {
		log.Errorf("list notifications error: %s", err)
		http.Error(w, "failed to get notifications", http.StatusInternalServerError)
		return
	}

	listRespJson, err := json.Marshal(ListResponse{
		Notifications: list,
		Total:         total,
	})
	if err != nil {
		log.Errorf("marshal notifications error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listRespJson, http.StatusOK)
}

func (h *Handler) HandleUnreadCount(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.notifications.unreadcount")
	defer span.End()

	count, err := h.repo.CountUnread(ctx)
	if err != nil {
		log.Errorf("count unread notifications error: %s", err)
		http.Error(w, "failed to count unread notifications", http.StatusInternalServerError)
		return
	}

	countRespJson, err := json.Marshal(UnreadCountResponse{Count: count})
	if err != nil {
		log.Errorf("marshal unread count error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, countRespJson, http.StatusOK)
}

func (h *Handler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.notifications.markread")
	defer span.End()

	id, ok := idFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.repo.MarkRead(ctx, id); err != nil {
		if errors.Is(err, ErrNotificationNotFound) {
			http.Error(w, "notification not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to mark notification %d as read: %s", id, err)
		http.Error(w, "notification not updated", http.StatusInternalServerError)
		return
	}

	markReadRespJson, err := json.Marshal(MarkReadResponse{MarkedID: id})
	if err != nil {
		log.Errorf("failed to marshal mark read response: %s", err)
		http.Error(w, "failed to marshal mark read response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(markReadRespJson))
}

func (h *Handler) HandleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.notifications.markallread")
	defer span.End()

	if err := h.repo.MarkAllRead(ctx); err != nil {
		log.Errorf("failed to mark all notifications as read: %s", err)
		http.Error(w, "notifications not updated", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "ok")
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.notifications.delete")
	defer span.End()

	id, ok := idFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotificationNotFound) {
			http.Error(w, "notification not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete notification %d: %s", id, err)
		http.Error(w, "notification not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeleteResponse{DeletedID: id})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
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
