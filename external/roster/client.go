package roster

import (
	"context"
	"io"
	"net/http"
	"os"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/crickstack/auction-room/internal/domain/auction"
	"github.com/crickstack/auction-room/internal/platform/logging"
)

// entry is the wire shape of one roster descriptor, matching the
// players.json layout the auction UI ships with.
type entry struct {
	Name      string `json:"name"`
	Role      string `json:"role"`
	BasePrice int    `json:"basePrice"`
	ImageURL  string `json:"imageUrl"`
}

type ClientConfig struct {
	HTTPClient *http.Client
	URL        string
	Timeout    time.Duration
	MaxRetries int
	Logger     *logging.Logger
}

// Client loads the auction roster from an HTTP source. The load happens
// once, before the session opens; transient upstream failures are retried
// a bounded number of times.
type Client struct {
	httpClient *http.Client
	url        string
	maxRetries int
	logger     *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 10 * time.Second
	}

	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &Client{
		httpClient: httpClient,
		url:        cfg.URL,
		maxRetries: maxRetries,
		logger:     logger,
	}
}

// Fetch downloads and decodes the roster. Retries cover transport errors
// and 5xx responses; 4xx responses fail immediately.
func (c *Client) Fetch(ctx context.Context) ([]auction.PlayerDescriptor, error) {
	if c.url == "" {
		return nil, crerr.New("roster url is not configured")
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			c.logger.WarnContext(ctx, "retrying roster fetch", "attempt", attempt, "error", lastErr)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * 500 * time.Millisecond):
			}
		}

		descriptors, retryable, err := c.fetchOnce(ctx)
		if err == nil {
			return descriptors, nil
		}
		if !retryable {
			return nil, err
		}
		lastErr = err
	}

	return nil, crerr.Wrapf(lastErr, "roster fetch failed after %d attempts", c.maxRetries+1)
}

func (c *Client) fetchOnce(ctx context.Context) ([]auction.PlayerDescriptor, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, false, crerr.Wrap(err, "build roster request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, crerr.Wrap(err, "roster request")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, true, crerr.Newf("roster source returned status %d", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, false, crerr.Newf("roster source returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, crerr.Wrap(err, "read roster body")
	}

	descriptors, err := decode(body)
	if err != nil {
		return nil, false, err
	}

	c.logger.InfoContext(ctx, "roster fetched", "url", c.url, "players", len(descriptors))

	return descriptors, false, nil
}

// LoadFile reads the roster from a local JSON file.
func LoadFile(path string) ([]auction.PlayerDescriptor, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, crerr.Wrapf(err, "read roster file %s", path)
	}

	return decode(body)
}

func decode(body []byte) ([]auction.PlayerDescriptor, error) {
	var entries []entry
	if err := sonic.Unmarshal(body, &entries); err != nil {
		return nil, crerr.Wrap(err, "decode roster json")
	}
	if len(entries) == 0 {
		return nil, crerr.New("roster is empty")
	}

	out := make([]auction.PlayerDescriptor, 0, len(entries))
	for idx, e := range entries {
		role := auction.Role(e.Role)
		if _, ok := auction.AllRoles[role]; !ok {
			return nil, crerr.Newf("roster entry %d: unknown role %q", idx+1, e.Role)
		}
		if e.BasePrice <= 0 {
			return nil, crerr.Newf("roster entry %d: base price must be positive", idx+1)
		}
		out = append(out, auction.PlayerDescriptor{
			Name:      e.Name,
			Role:      role,
			BasePrice: e.BasePrice,
			ImageURL:  e.ImageURL,
		})
	}

	return out, nil
}
