package plans_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/overloadref/overloadref/internal/plans"
)

var testPlan = plans.DailyPlan{
	UserID: "u1",
	Date:   "2025-03-10",
	Name:   "push day",
	Exercises: []plans.PlannedExercise{
		{ExerciseName: "bench press", TargetSets: 3, TargetReps: 10, TargetWeight: 100},
		{ExerciseName: "overhead press", TargetSets: 3, TargetReps: 8, TargetWeight: 50},
	},
}

func TestApi_GetTodayPlan_CacheMiss(t *testing.T) {
	testPlanJson, err := json.Marshal(testPlan)
	require.NoError(t, err)

	var planServiceCalls int
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		planServiceCalls++
		assert.Equal(t, "/plans/u1/daily/2025-03-10", r.URL.Path)
		_, err := w.Write(testPlanJson)
		require.NoError(t, err)
	}))
	defer testServer.Close()

	db, mock := redismock.NewClientMock()
	planKey := "daily-plan::u1::2025-03-10"
	mock.ExpectGet(planKey).SetErr(redis.Nil)
	mock.ExpectSet(planKey, testPlanJson, time.Hour).SetVal("OK")

	api := plans.NewApi(testServer.URL, time.Hour, testServer.Client(), db)
	require.NotNil(t, api)

	plan, err := api.GetTodayPlan(context.Background(), "u1", "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, "push day", plan.Name)
	require.Len(t, plan.Exercises, 2)
	assert.Equal(t, 1, planServiceCalls)
}

func TestApi_GetTodayPlan_CacheHit(t *testing.T) {
	testPlanJson, err := json.Marshal(testPlan)
	require.NoError(t, err)

	db, mock := redismock.NewClientMock()
	mock.ExpectGet("daily-plan::u1::2025-03-10").SetVal(string(testPlanJson))

	// nil http client: a cache hit must never reach the plan service
	api := plans.NewApi("not-needed", time.Hour, nil, db)
	require.NotNil(t, api)

	plan, err := api.GetTodayPlan(context.Background(), "u1", "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, "push day", plan.Name)
}

func TestApi_GetTodayPlan_NotFound(t *testing.T) {
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no plan", http.StatusNotFound)
	}))
	defer testServer.Close()

	db, mock := redismock.NewClientMock()
	mock.ExpectGet("daily-plan::u1::2025-03-10").SetErr(redis.Nil)

	api := plans.NewApi(testServer.URL, time.Hour, testServer.Client(), db)

	plan, err := api.GetTodayPlan(context.Background(), "u1", "2025-03-10")
	assert.Nil(t, plan)
	require.ErrorIs(t, err, plans.ErrPlanNotFound)
}

func TestApi_GetTodayPlan_ServiceError(t *testing.T) {
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer testServer.Close()

	db, mock := redismock.NewClientMock()
	mock.ExpectGet("daily-plan::u1::2025-03-10").SetErr(redis.Nil)

	api := plans.NewApi(testServer.URL, time.Hour, testServer.Client(), db)

	plan, err := api.GetTodayPlan(context.Background(), "u1", "2025-03-10")
	assert.Nil(t, plan)
	require.Error(t, err)
	assert.Contains(t, err.Error(), fmt.Sprintf("%d", http.StatusInternalServerError))
}
