package treasury

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/sirupsen/logrus"

	"github.com/gradgoals/gradgoals/internal/config"
	"github.com/gradgoals/gradgoals/internal/models"
	"github.com/gradgoals/gradgoals/internal/money"
)

const (
	tenYearTag = "BC_10YEAR"
	dateTag    = "NEW_DATE"
	maxBody    = 4 << 20
)

// ErrNoData is returned when the feed holds no 10-year yield.
var ErrNoData = errors.New("no 10-year yield found in treasury feed")

// Client fetches the daily par yield curve published by the U.S. Treasury
type Client struct {
	url    string
	addOn  float64
	cap    float64
	client *http.Client
	log    *logrus.Logger
	now    func() time.Time
}

// NewClient initializes a new Treasury client
func NewClient(cfg *config.Config, log *logrus.Logger) *Client {
	return &Client{
		url:   cfg.TreasuryURL,
		addOn: cfg.LoanAddOn,
		cap:   cfg.LoanRateCap,
		client: &http.Client{
			Timeout: cfg.TreasuryTimeout,
		},
		log: log,
		now: time.Now,
	}
}

// requestURL selects one month of the daily yield curve dataset
func (c *Client) requestURL(month time.Time) (string, error) {
	u, err := url.Parse(c.url)
	if err != nil {
		return "", fmt.Errorf("invalid treasury url: %w", err)
	}
	q := u.Query()
	q.Set("data", "daily_treasury_yield_curve")
	q.Set("field_tdr_date_value_month", month.Format("200601"))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// fetch downloads the XML feed for a month
func (c *Client) fetch(ctx context.Context, month time.Time) ([]byte, error) {
	reqURL, err := c.requestURL(month)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/xml")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	c.log.Debugf("Treasury XML response: %d bytes", len(body))
	return body, nil
}

// parseTenYear extracts the most recent 10-year yield and its date
func parseTenYear(rawBody []byte) (float64, string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(rawBody); err != nil {
		return 0, "", fmt.Errorf("failed to parse XML: %w", err)
	}

	var (
		rate  float64
		asOf  string
		found bool
	)
	for _, props := range doc.FindElements("//*") {
		if props.Tag != "properties" {
			continue
		}
		var yield, date string
		for _, child := range props.ChildElements() {
			switch child.Tag {
			case tenYearTag:
				yield = strings.TrimSpace(child.Text())
			case dateTag:
				date = strings.TrimSpace(child.Text())
			}
		}
		if yield == "" {
			continue
		}
		v, err := strconv.ParseFloat(yield, 64)
		if err != nil {
			continue
		}
		if !found || date >= asOf {
			rate, asOf, found = v, date, true
		}
	}
	if !found {
		return 0, "", ErrNoData
	}
	if i := strings.IndexByte(asOf, 'T'); i > 0 {
		asOf = asOf[:i]
	}
	return rate, asOf, nil
}

// Suggest turns a benchmark yield into a suggested student-loan APR: the benchmark plus the
// configured add-on, never above the cap.
func (c *Client) Suggest(benchmark float64) float64 {
	return money.RoundCents(math.Min(benchmark+c.addOn, c.cap))
}

// latestYield reads the current month's feed, falling back to the previous month when no
// trading day of the current month has been published yet
func (c *Client) latestYield(ctx context.Context) (float64, string, error) {
	now := c.now()
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for _, month := range []time.Time{current, current.AddDate(0, -1, 0)} {
		body, err := c.fetch(ctx, month)
		if err != nil {
			return 0, "", err
		}
		benchmark, asOf, err := parseTenYear(body)
		if errors.Is(err, ErrNoData) && month.Equal(current) {
			c.log.Debugf("No 10-year yield for %s yet, trying previous month", month.Format("2006-01"))
			continue
		}
		return benchmark, asOf, err
	}
	return 0, "", ErrNoData
}

// ReferenceRate retrieves the latest 10-year yield and derives a suggested loan APR
func (c *Client) ReferenceRate(ctx context.Context) (models.ReferenceRate, error) {
	benchmark, asOf, err := c.latestYield(ctx)
	if err != nil {
		return models.ReferenceRate{}, err
	}

	rate := models.ReferenceRate{
		Benchmark:    benchmark,
		AddOn:        c.addOn,
		SuggestedAPR: c.Suggest(benchmark),
		AsOf:         asOf,
	}
	c.log.Infof("Retrieved 10-year yield: %.2f%% as of %s (suggested APR %.2f%%)", benchmark, asOf, rate.SuggestedAPR)
	return rate, nil
}
