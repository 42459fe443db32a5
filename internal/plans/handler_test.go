package plans_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/overloadref/overloadref/internal/plans"
)

func TestHandler_HandleGetTodayPlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	apiMock := NewMockplanGetter(ctrl)
	h := plans.NewHandler(apiMock)

	today := time.Now().UTC().Format("2006-01-02")
	apiMock.EXPECT().
		GetTodayPlan(gomock.Any(), "u1", today).
		Return(&testPlan, nil).
		Times(1)

	req, err := http.NewRequest("GET", "/plans/u1/today", nil)
	require.NoError(t, err)
	req = mux.SetURLVars(req, map[string]string{"user": "u1"})
	rec := httptest.NewRecorder()

	h.HandleGetTodayPlan(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var gotten plans.DailyPlan
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &gotten))
	assert.Equal(t, "push day", gotten.Name)
	assert.Len(t, gotten.Exercises, 2)
}

func TestHandler_HandleGetTodayPlan_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	apiMock := NewMockplanGetter(ctrl)
	h := plans.NewHandler(apiMock)

	today := time.Now().UTC().Format("2006-01-02")
	apiMock.EXPECT().
		GetTodayPlan(gomock.Any(), "u1", today).
		Return(nil, plans.ErrPlanNotFound).
		Times(1)

	req, err := http.NewRequest("GET", "/plans/u1/today", nil)
	require.NoError(t, err)
	req = mux.SetURLVars(req, map[string]string{"user": "u1"})
	rec := httptest.NewRecorder()

	h.HandleGetTodayPlan(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
