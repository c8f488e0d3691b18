package plans

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=plans_test

type plansStore interface {
	Add(ctx context.Context, plan Plan) (*Plan, error)
	Get(ctx context.Context, id int) (*Plan, error)
	GetActive(ctx context.Context, athleteID int) (*Plan, error)
	List(ctx context.Context, athleteID int) ([]Plan, error)
	Delete(ctx context.Context, id int) error
}

type weekRoller interface {
	Rollover(ctx context.Context, planID int) (*RolloverResult, error)
}

// GenerateParams describes a progression program request.
type GenerateParams struct {
	AthleteID   int    `json:"athleteId"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	DaysPerWeek int    `json:"daysPerWeek"`
	Intensity   int    `json:"intensity"`
}

// GeneratedPayload is what a generated plan stores as its payload.
type GeneratedPayload struct {
	DaysPerWeek int        `json:"daysPerWeek"`
	Intensity   int        `json:"intensity"`
	Weeks       []WeekPlan `json:"weeks"`
}

type ListResponse struct {
	Plans []Plan `json:"plans"`
}

type DeletePlanResponse struct {
	DeletedID int `json:"deletedId"`
}

type Handler struct {
	store  plansStore
	roller weekRoller
}

func NewHandler(store plansStore, roller weekRoller) *Handler {
	return &Handler{
		store:  store,
		roller: roller,
	}
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.add")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var plan Plan
	if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
		log.Tracef("new plan, unmarshal json params: %s", err)
		http.Error(w, "add plan failed", http.StatusBadRequest)
		return
	}

	if plan.Title == "" || plan.AthleteID <= 0 {
		http.Error(w, "error, plan title or athlete id empty", http.StatusBadRequest)
		return
	}

	added, err := h.store.Add(ctx, plan)
	if err != nil {
		log.Errorf("failed to add plan [athlete %d] [%s]: %s", plan.AthleteID, plan.Title, err)
		http.Error(w, "error, failed to add plan", http.StatusInternalServerError)
		return
	}

	addedJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("failed to marshal new plan: %s", err)
		http.Error(w, "error, failed to add plan", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

// HandleGenerate builds a 9-week progression program and stores it as
// the athlete's new active plan.
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.generate")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var params GenerateParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Tracef("generate plan, unmarshal json params: %s", err)
		http.Error(w, "generate plan failed", http.StatusBadRequest)
		return
	}

	if params.Title == "" || params.AthleteID <= 0 {
		http.Error(w, "error, plan title or athlete id empty", http.StatusBadRequest)
		return
	}
	if params.Intensity < 1 || params.Intensity > 10 {
		http.Error(w, "error, intensity has to be between 1 and 10", http.StatusBadRequest)
		return
	}

	payload, err := json.Marshal(GeneratedPayload{
		DaysPerWeek: params.DaysPerWeek,
		Intensity:   params.Intensity,
		Weeks:       BuildWeekPlans(params.DaysPerWeek, params.Intensity),
	})
	if err != nil {
		log.Errorf("failed to marshal generated payload: %s", err)
		http.Error(w, "error, failed to generate plan", http.StatusInternalServerError)
		return
	}

	added, err := h.store.Add(ctx, Plan{
		AthleteID:   params.AthleteID,
		Title:       params.Title,
		Description: params.Description,
		Active:      true,
		Payload:     payload,
	})
	if err != nil {
		log.Errorf("failed to add generated plan [athlete %d] [%s]: %s", params.AthleteID, params.Title, err)
		http.Error(w, "error, failed to generate plan", http.StatusInternalServerError)
		return
	}

	addedJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("failed to marshal generated plan: %s", err)
		http.Error(w, "error, failed to generate plan", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.get")
	defer span.End()

	id, ok := idFromRequest(w, r)
	if !ok {
		return
	}

	plan, err := h.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			http.Error(w, "plan not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get plan %d: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	planJson, err := json.Marshal(plan)
	if err != nil {
		log.Errorf("failed to marshal plan: %s", err)
		http.Error(w, "failed to marshal plan", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, planJson, http.StatusOK)
}

func (h *Handler) HandleGetActive(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.getactive")
	defer span.End()

	athleteID, ok := athleteIDFromRequest(w, r)
	if !ok {
		return
	}

	plan, err := h.store.GetActive(ctx, athleteID)
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			http.Error(w, "no active plan", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get active plan for athlete %d: %s", athleteID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	planJson, err := json.Marshal(plan)
	if err != nil {
		log.Errorf("failed to marshal active plan: %s", err)
		http.Error(w, "failed to marshal active plan", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, planJson, http.StatusOK)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.list")
	defer span.End()

	athleteID, ok := athleteIDFromRequest(w, r)
	if !ok {
		return
	}

	list, err := h.store.List(ctx, athleteID)
	if err != nil {
		log.Errorf("list plans for athlete %d: %s", athleteID, err)
		http.Error(w, "failed to get plans", http.StatusInternalServerError)
		return
	}

	listJson, err := json.Marshal(ListResponse{Plans: list})
	if err != nil {
		log.Errorf("marshal plans error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listJson, http.StatusOK)
}

func (h *Handler) HandleTemplates(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.templates")
	defer span.End()

	templatesJson, err := json.Marshal(Templates())
	if err != nil {
		log.Errorf("failed to marshal workout templates: %s", err)
		http.Error(w, "failed to marshal workout templates", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, templatesJson, http.StatusOK)
}

func (h *Handler) HandleRollover(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.rollover")
	defer span.End()

	id, ok := idFromRequest(w, r)
	if !ok {
		return
	}

	result, err := h.roller.Rollover(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, ErrPlanNotFound):
			http.Error(w, "plan not found", http.StatusNotFound)
		case errors.Is(err, ErrPlanNotActive):
			http.Error(w, "plan is not active", http.StatusConflict)
		default:
			log.Errorf("failed to roll plan %d over: %s", id, err)
			http.Error(w, "error, failed to move to next week", http.StatusInternalServerError)
		}
		return
	}

	resultJson, err := json.Marshal(result)
	if err != nil {
		log.Errorf("failed to marshal rollover result: %s", err)
		http.Error(w, "failed to marshal rollover result", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resultJson, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.delete")
	defer span.End()

	id, ok := idFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.store.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			http.Error(w, "plan not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete plan %d: %s", id, err)
		http.Error(w, "plan not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeletePlanResponse{DeletedID: id})
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

func athleteIDFromRequest(w http.ResponseWriter, r *http.Request) (int, bool) {
	athleteIDStr := mux.Vars(r)["athleteId"]
	if athleteIDStr == "" {
		http.Error(w, "error, athlete id empty", http.StatusBadRequest)
		return 0, false
	}
	athleteID, err := strconv.Atoi(athleteIDStr)
	if err != nil {
		http.Error(w, "error, athlete id NaN", http.StatusBadRequest)
		return 0, false
	}
	return athleteID, true
}
