package plans

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/overloadref/overloadref/internal/telemetry/tracing"
	"github.com/overloadref/overloadref/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=plans_mocks_test.go -package=plans_test

type planGetter interface {
	GetTodayPlan(ctx context.Context, userID, date string) (*DailyPlan, error)
}

type Handler struct {
	api planGetter
	now func() time.Time
}

func NewHandler(api planGetter) *Handler {
	return &Handler{
		api: api,
		now: time.Now,
	}
}

func (handler *Handler) HandleGetTodayPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.today")
	defer span.End()

	vars := mux.Vars(r)
	userID := vars["user"]
	if userID == "" {
		http.Error(w, "error, user empty", http.StatusBadRequest)
		return
	}

	today := handler.now().UTC().Format("2006-01-02")
	plan, err := handler.api.GetTodayPlan(ctx, userID, today)
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			http.Error(w, "no plan for today", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get today plan [%s]: %s", userID, err)
		http.Error(w, "failed to get today plan", http.StatusInternalServerError)
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
