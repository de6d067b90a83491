package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"table-booking/internal/pkg/config"
	"table-booking/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
)

const (
	maxOracleRetries = 2
	maxErrorBody     = 512
)

type availabilityResponse struct {
	Slots []string `json:"slots"`
}

// SlotClient asks the availability service which times are still open.
type SlotClient struct {
	baseURL    string
	httpClient *http.Client
	retries    uint64
}

func NewSlotClient(cfg config.SlotOracleConfig) *SlotClient {
	return &SlotClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		retries:    maxOracleRetries,
	}
}

// AvailableTimes retries transport errors and 5xx responses; 4xx responses fail at once.
func (c *SlotClient) AvailableTimes(ctx context.Context, locationID uuid.UUID, date string, partySize int) ([]string, error) {
	endpoint := c.availabilityURL(locationID, date, partySize)

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 50 * time.Millisecond
	policy.MaxInterval = 500 * time.Millisecond

	return backoff.RetryWithData(func() ([]string, error) {
		return c.fetch(ctx, endpoint)
	}, backoff.WithContext(backoff.WithMaxRetries(policy, c.retries), ctx))
}

func (c *SlotClient) availabilityURL(locationID uuid.UUID, date string, partySize int) string {
	query := url.Values{}
	query.Set("date", date)
	query.Set("partySize", strconv.Itoa(partySize))
	return fmt.Sprintf("%s/locations/%s/availability?%s", c.baseURL, url.PathEscape(locationID.String()), query.Encode())
}

func (c *SlotClient) fetch(ctx context.Context, endpoint string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, backoff.Permanent(errs.Wrap(err, "failed to build availability request"))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "availability request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		err := errs.Newf("availability service returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
		if resp.StatusCode < http.StatusInternalServerError {
			return nil, backoff.Permanent(err)
		}
		return nil, err
	}

	var payload availabilityResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, backoff.Permanent(errs.Wrap(err, "failed to decode availability response"))
	}
	return payload.Slots, nil
}
