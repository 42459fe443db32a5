package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/overloadref/overloadref/internal/telemetry/metrics"
	"github.com/overloadref/overloadref/internal/telemetry/tracing"
	"github.com/overloadref/overloadref/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=ledger_mocks_test.go -package=ledger_test

type referenceService interface {
	LogSet(ctx context.Context, entry LogEntry) (*LogEntry, error)
	LatestSessionReference(ctx context.Context, userID, exerciseName string, threshold time.Duration) (*SessionReference, error)
	Progression(ctx context.Context, userID, exerciseName string, threshold time.Duration, beatCheck *BeatCheck) (*Progression, error)
	History(ctx context.Context, params HistoryParams) ([]LogEntry, error)
}

const (
	maxThresholdHours   = 24
	defaultHistoryLimit = 100
	maxHistoryLimit     = 1000
)

type HistoryResponse struct {
	UserID       string     `json:"userId"`
	ExerciseName string     `json:"exerciseName"`
	TotalEntries int        `json:"totalEntries"`
	Entries      []LogEntry `json:"entries"`
}

type Handler struct {
	service referenceService
	metrics *metrics.Manager
}

func NewHandler(service referenceService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service: service,
		metrics: metricsManager,
	}
}

func (handler *Handler) HandleLogSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.ledger.logset")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var entry LogEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Tracef("log set, unmarshal json params: %s", err)
		http.Error(w, "log set failed", http.StatusBadRequest)
		return
	}

	loggedSet, err := handler.service.LogSet(ctx, entry)
	if err != nil {
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			http.Error(w, validationErr.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("failed to log set [%s], [%s]: %s", entry.UserID, entry.ExerciseName, err)
		http.Error(w, "error, failed to log set", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterSetsLogged.Inc()

	loggedSetJson, err := json.Marshal(loggedSet)
	if err != nil {
		log.Errorf("failed to marshal logged set: %s", err)
		http.Error(w, "error, failed to log set", http.StatusInternalServerError)
		return
	}

	log.Debugf("new set logged: [%s] [%s]: %s", loggedSet.UserID, loggedSet.ExerciseName, loggedSet.ID)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, loggedSetJson, http.StatusCreated)
}

func (handler *Handler) HandleLatestSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.ledger.latestsession")
	defer span.End()

	vars := mux.Vars(r)
	userID := vars["user"]
	exerciseName := vars["exercise"]
	if userID == "" || exerciseName == "" {
		http.Error(w, "error, user or exercise empty", http.StatusBadRequest)
		return
	}

	threshold, err := thresholdFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	handler.metrics.CounterReferenceQueries.Inc()

	reference, err := handler.service.LatestSessionReference(ctx, userID, exerciseName, threshold)
	if err != nil {
		if errors.Is(err, ErrNoSession) {
			// expected outcome for a never-logged exercise
			handler.metrics.CounterReferenceNotFound.Inc()
			http.Error(w, fmt.Sprintf("no previous session found for %s", exerciseName), http.StatusNotFound)
			return
		}
		log.Errorf("failed to get latest session [%s] [%s]: %s", userID, exerciseName, err)
		http.Error(w, "failed to get latest session", http.StatusInternalServerError)
		return
	}

	referenceJson, err := json.Marshal(reference)
	if err != nil {
		log.Errorf("failed to marshal session reference: %s", err)
		http.Error(w, "failed to marshal session reference", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, referenceJson, http.StatusOK)
}

func (handler *Handler) HandleProgression(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.ledger.progression")
	defer span.End()

	vars := mux.Vars(r)
	userID := vars["user"]
	exerciseName := vars["exercise"]
	if userID == "" || exerciseName == "" {
		http.Error(w, "error, user or exercise empty", http.StatusBadRequest)
		return
	}

	threshold, err := thresholdFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	beatCheck, err := beatCheckFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	progression, err := handler.service.Progression(ctx, userID, exerciseName, threshold, beatCheck)
	if err != nil {
		if errors.Is(err, ErrNoSession) {
			http.Error(w, fmt.Sprintf("no previous session found for %s", exerciseName), http.StatusNotFound)
			return
		}
		log.Errorf("failed to get progression [%s] [%s]: %s", userID, exerciseName, err)
		http.Error(w, "failed to get progression", http.StatusInternalServerError)
		return
	}

	progressionJson, err := json.Marshal(progression)
	if err != nil {
		log.Errorf("failed to marshal progression: %s", err)
		http.Error(w, "failed to marshal progression", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, progressionJson, http.StatusOK)
}

func (handler *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.ledger.history")
	defer span.End()

	vars := mux.Vars(r)
	userID := vars["user"]
	if userID == "" {
		http.Error(w, "error, user empty", http.StatusBadRequest)
		return
	}

	limit := defaultHistoryLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > maxHistoryLimit {
			http.Error(w, "invalid limit (1 to 1000)", http.StatusBadRequest)
			return
		}
	}

	exerciseName := r.URL.Query().Get("exercise")

	entries, err := handler.service.History(ctx, HistoryParams{
		UserID:       userID,
		ExerciseName: exerciseName,
		Limit:        limit,
	})
	if err != nil {
		log.Errorf("failed to get history [%s]: %s", userID, err)
		http.Error(w, "failed to get history", http.StatusInternalServerError)
		return
	}

	if exerciseName == "" {
		exerciseName = "All Exercises"
	}
	historyResponse := HistoryResponse{
		UserID:       userID,
		ExerciseName: exerciseName,
		TotalEntries: len(entries),
		Entries:      entries,
	}

	historyJson, err := json.Marshal(historyResponse)
	if err != nil {
		log.Errorf("failed to marshal history: %s", err)
		http.Error(w, "failed to marshal history", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, historyJson, http.StatusOK)
}

// thresholdFromQuery parses the optional threshold_hours query parameter.
// Missing value falls back to the default; zero, negative and huge values
// are rejected rather than silently clamped.
func thresholdFromQuery(r *http.Request) (time.Duration, error) {
	thresholdStr := r.URL.Query().Get("threshold_hours")
	if thresholdStr == "" {
		return DefaultSessionThreshold, nil
	}

	hours, err := strconv.ParseFloat(thresholdStr, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid threshold_hours: %s", thresholdStr)
	}
	if hours <= 0 || hours > maxThresholdHours {
		return 0, fmt.Errorf("threshold_hours must be in (0, %d]", maxThresholdHours)
	}

	return time.Duration(hours * float64(time.Hour)), nil
}

func beatCheckFromQuery(r *http.Request) (*BeatCheck, error) {
	weightStr := r.URL.Query().Get("weight")
	repsStr := r.URL.Query().Get("reps")
	if weightStr == "" && repsStr == "" {
		return nil, nil
	}
	if weightStr == "" || repsStr == "" {
		return nil, errors.New("weight and reps must be given together")
	}

	weight, err := strconv.ParseFloat(weightStr, 64)
	if err != nil || weight < 0 {
		return nil, fmt.Errorf("invalid weight: %s", weightStr)
	}
	reps, err := strconv.Atoi(repsStr)
	if err != nil || reps <= 0 {
		return nil, fmt.Errorf("invalid reps: %s", repsStr)
	}

	return &BeatCheck{Weight: weight, Reps: reps}, nil
}
