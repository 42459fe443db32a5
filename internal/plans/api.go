package plans

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/overloadref/overloadref/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Api is a read-only client for the workout plan service. Plans change
// rarely during a day, so responses get cached in redis for a while to
// spare the plan service.
type Api struct {
	planServiceBaseURL string
	cacheTTL           time.Duration
	httpClient         *http.Client
	redisClient        *redis.Client
}

func NewApi(
	planServiceBaseURL string,
	cacheTTL time.Duration,
	httpClient *http.Client,
	redisClient *redis.Client,
) *Api {
	return &Api{
		planServiceBaseURL: planServiceBaseURL,
		cacheTTL:           cacheTTL,
		httpClient:         httpClient,
		redisClient:        redisClient,
	}
}

// GetTodayPlan returns the user's plan for the given date (YYYY-MM-DD).
func (api *Api) GetTodayPlan(ctx context.Context, userID, date string) (*DailyPlan, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "plans.getTodayPlan")
	defer span.End()
	span.SetAttributes(attribute.String("user.id", userID))

	planKey := fmt.Sprintf("daily-plan::%s::%s", userID, date)
	cmd := api.redisClient.Get(ctx, planKey)
	if err := cmd.Err(); err != nil && err != redis.Nil {
		log.Errorf("failed to get plan from redis for [%s]: %s", planKey, err)
	}

	plan := &DailyPlan{}
	if planBytes := cmd.Val(); planBytes != "" {
		span.SetAttributes(attribute.Bool("plan.from-cache", true))
		log.Tracef("found plan for [%s] in redis cache", planKey)
		if err := json.Unmarshal([]byte(planBytes), plan); err == nil {
			return plan, nil
		} else {
			log.Errorf("failed to unmarshal cached plan for %s: %s", planKey, err)
			// fall through to the plan service
		}
	} else {
		span.SetAttributes(attribute.Bool("plan.from-cache", false))
	}

	planUrl := fmt.Sprintf("%s/plans/%s/daily/%s", api.planServiceBaseURL, userID, date)
	log.Debugf("getting plan from plan service: %s", planUrl)

	req, err := http.NewRequestWithContext(ctx, "GET", planUrl, nil)
	if err != nil {
		return nil, err
	}

	resp, err := api.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get plan: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrPlanNotFound
	}
	if resp.StatusCode != http.StatusOK {
		span.SetStatus(codes.Error, fmt.Sprintf("plan service status: %d", resp.StatusCode))
		return nil, fmt.Errorf("plan service responded with %d", resp.StatusCode)
	}

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read plan response: %w", err)
	}

	if err := json.Unmarshal(respBytes, plan); err != nil {
		span.SetStatus(codes.Error, fmt.Sprintf("unmarshal plan resp: %s", err))
		return nil, fmt.Errorf("unmarshal plan response: %w", err)
	}

	cmdSet := api.redisClient.Set(ctx, planKey, respBytes, api.cacheTTL)
	if err := cmdSet.Err(); err != nil {
		log.Errorf("failed to cache plan in redis for %s: %s", planKey, err)
	} else {
		log.Tracef("plan for %s cached in redis", planKey)
	}

	return plan, nil
}
