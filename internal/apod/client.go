package apod

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/astroshell/cosmonaut/internal/fetch"
)

// ErrInvalidURL reports a malformed endpoint at client construction time.
var ErrInvalidURL = errors.New("invalid endpoint URL")

const (
	// DefaultEndpoint is NASA's APOD API base URL.
	DefaultEndpoint = "https://api.nasa.gov/planetary/apod"

	// DefaultAPIKey is NASA's shared demo key. It works without signup
	// but carries a very small hourly quota.
	DefaultAPIKey = "DEMO_KEY"
)

// DEMO_KEY allows 30 requests per hour; registered keys far more. One
// request every two seconds with a small burst stays comfortably under
// the registered-key quota while keeping scrolling responsive.
const (
	apiInterval = 2 * time.Second
	apiBurst    = 3
)

// Client queries the APOD API for single dates and date ranges.
type Client struct {
	endpoint *url.URL
	apiKey   string
	fetcher  *fetch.Fetcher
	limiter  *rate.Limiter
}

// NewClient builds a Client against the given endpoint. Empty endpoint
// and apiKey fall back to DefaultEndpoint and DefaultAPIKey.
func NewClient(endpoint, apiKey string, fetcher *fetch.Fetcher) (*Client, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		trimmed = DefaultEndpoint
	}
	base, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidURL, endpoint, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, endpoint)
	}
	if strings.TrimSpace(apiKey) == "" {
		apiKey = DefaultAPIKey
	}
	return &Client{
		endpoint: base,
		apiKey:   apiKey,
		fetcher:  fetcher,
		limiter:  rate.NewLimiter(rate.Every(apiInterval), apiBurst),
	}, nil
}

// FetchRange retrieves all items between start and end inclusive. The API
// returns the range ascending by date; the result here is reversed to
// newest-first, with non-image entries (videos) filtered out.
func (c *Client) FetchRange(ctx context.Context, start, end time.Time) ([]Item, error) {
	values := url.Values{}
	values.Set("start_date", FormatDate(start))
	values.Set("end_date", FormatDate(end))
	values.Set("api_key", c.apiKey)

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var decoded []Item
	if err := c.fetcher.GetJSON(ctx, c.requestURL(values), &decoded); err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(decoded))
	for _, it := range decoded {
		if it.IsImage() {
			items = append(items, it)
		}
	}
	slices.Reverse(items)
	return items, nil
}

// FetchSingle retrieves the item for one date. Unlike FetchRange it does
// not filter by media type: a video entry is passed through as-is, and
// callers that only render images must check IsImage themselves.
func (c *Client) FetchSingle(ctx context.Context, date time.Time) (Item, error) {
	values := url.Values{}
	values.Set("date", FormatDate(date))
	values.Set("api_key", c.apiKey)

	if err := c.limiter.Wait(ctx); err != nil {
		return Item{}, err
	}

	var item Item
	if err := c.fetcher.GetJSON(ctx, c.requestURL(values), &item); err != nil {
		return Item{}, err
	}
	return item, nil
}

func (c *Client) requestURL(values url.Values) string {
	u := *c.endpoint
	u.RawQuery = values.Encode()
	return u.String()
}
