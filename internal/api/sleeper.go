package api

import (
	"context"
	"encoding/json"
	"fmt"
	"kicker-tracker/internal/config"
	"kicker-tracker/internal/constants"
	"kicker-tracker/internal/metrics"
	"net/url"
	"time"

	"github.com/valyala/fasthttp"
)

const (
	EndpointDraftPicks = "draft_picks"
	EndpointUser       = "user"
)

// StatusError is returned when Sleeper answers with a non-200 status.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API error: %d (%s)", e.StatusCode, e.URL)
}

type SleeperClient struct {
	baseURL string
	client  *fasthttp.Client
	metrics *metrics.Metrics
}

func NewSleeperClient(cfg *config.Config, m *metrics.Metrics) *SleeperClient {
	return &SleeperClient{
		baseURL: cfg.SleeperBaseURL,
		client: &fasthttp.Client{
			Name:                   "kicker-tracker",
			MaxConnsPerHost:        constants.UpstreamMaxConnsPerHost,
			ReadTimeout:            constants.ExternalAPITimeout,
			WriteTimeout:           constants.ExternalAPITimeout,
			MaxIdleConnDuration:    constants.UpstreamIdleConnTimeout,
			DisablePathNormalizing: true,
		},
		metrics: m,
	}
}

// GetDraftPicks fetches every pick of a draft. A JSON null body yields an
// empty slice.
func (c *SleeperClient) GetDraftPicks(ctx context.Context, draftID string) ([]DraftPick, error) {
	target := fmt.Sprintf("%s/draft/%s/picks", c.baseURL, url.PathEscape(draftID))
	picks, err := doRequest[[]DraftPick](ctx, c, EndpointDraftPicks, target)
	if err != nil {
		return nil, err
	}
	return *picks, nil
}

func (c *SleeperClient) GetUser(ctx context.Context, userID string) (*User, error) {
	target := fmt.Sprintf("%s/user/%s", c.baseURL, url.PathEscape(userID))
	return doRequest[User](ctx, c, EndpointUser, target)
}

func doRequest[T any](ctx context.Context, client *SleeperClient, endpoint, target string) (result *T, err error) {
	if client.metrics != nil {
		defer func(started time.Time) {
			client.metrics.ObserveUpstream(endpoint, started, err)
		}(time.Now())
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(target)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, err
		}
	} else {
		if err := client.client.Do(req, resp); err != nil {
			return nil, err
		}
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode(), URL: target}
	}

	var out T
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return &out, nil
}

type DraftPick struct {
	PickNo    int               `json:"pick_no"`
	Round     int               `json:"round"`
	DraftSlot int               `json:"draft_slot"`
	PickedBy  string            `json:"picked_by"`
	PlayerID  string            `json:"player_id"`
	DraftID   string            `json:"draft_id"`
	IsKeeper  *bool             `json:"is_keeper"`
	Metadata  DraftPickMetadata `json:"metadata"`
}

type DraftPickMetadata struct {
	Position  string `json:"position"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Team      string `json:"team"`
}

// User is the subset of a Sleeper user we read. Username is nil when the
// field is missing from the payload.
type User struct {
	UserID      string  `json:"user_id"`
	Username    *string `json:"username"`
	DisplayName string  `json:"display_name"`
	Avatar      string  `json:"avatar"`
}
