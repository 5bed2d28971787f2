package razorpay

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"

	"paylink_sync/internal/models"
	"paylink_sync/internal/ports"
)

const (
	defaultBaseURL = "https://api.razorpay.com/v1/payment_links"
	pageSize       = 100
	maxRetries     = 3
	initialDelay   = 1 * time.Second
	pageDelay      = 500 * time.Millisecond
)

// APIError is a non-2xx response from the payments API. The body is
// kept verbatim so auth and validation failures stay diagnosable.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api request failed with status %d: %s", e.Status, e.Body)
}

// Client pages through the payment_links collection with basic auth.
type Client struct {
	keyID     string
	keySecret string
	baseURL   string
	client    *http.Client

	// Debug dumps raw pages to JSON files for post-mortem inspection.
	Debug bool
	runID string
}

func NewClient(keyID, keySecret string) *Client {
	return &Client{
		keyID:     keyID,
		keySecret: keySecret,
		baseURL:   defaultBaseURL,
		client:    &http.Client{},
		runID:     uuid.NewString(),
	}
}

type listResponse struct {
	Items []models.PaymentLink `json:"items"`
}

// ValidateCredentials probes the API with a minimal request (count=1)
// so a bad key fails before the full fetch starts.
func (c *Client) ValidateCredentials(ctx context.Context) error {
	if c.keyID == "" || c.keySecret == "" {
		return fmt.Errorf("razorpay api keys not set (RAZORPAY_KEY_ID / RAZORPAY_KEY_SECRET)")
	}
	log.Printf("[FETCH] validating credentials key_id=%s", maskKey(c.keyID))

	q := url.Values{}
	q.Set("count", "1")
	if _, err := c.getPage(ctx, q, 0); err != nil {
		return fmt.Errorf("credential check: %w", err)
	}
	log.Printf("[FETCH] credentials ok")
	return nil
}

// FetchAll retrieves every payment link in the optional created_at
// window. Pagination runs count=100 pages with a running skip offset
// and stops at the first short page; any transport or non-2xx error
// aborts the whole fetch.
func (c *Client) FetchAll(ctx context.Context, r ports.FetchRange) ([]models.PaymentLink, error) {
	if err := c.ValidateCredentials(ctx); err != nil {
		return nil, err
	}

	var all []models.PaymentLink
	skip := 0
	request := 0
	t0 := time.Now()

	log.Printf("[FETCH][START] run_id=%s from=%d to=%d", c.runID, r.From, r.To)

	for {
		request++
		q := url.Values{}
		q.Set("count", strconv.Itoa(pageSize))
		q.Set("skip", strconv.Itoa(skip))
		if r.From > 0 {
			q.Set("from", strconv.FormatInt(r.From, 10))
		}
		if r.To > 0 {
			q.Set("to", strconv.FormatInt(r.To, 10))
		}

		log.Printf("[FETCH] request #%d skip=%d count=%d", request, skip, pageSize)

		page, err := c.getPage(ctx, q, request)
		if err != nil {
			log.Printf("[FETCH][ERR] request #%d: %v", request, err)
			return nil, err
		}

		got := len(page.Items)
		all = append(all, page.Items...)
		log.Printf("[FETCH] request #%d returned %d items (total=%d)", request, got, len(all))

		if got < pageSize {
			break
		}
		skip += pageSize

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(pageDelay):
		}
	}

	log.Printf("[FETCH][DONE] requests=%d links=%d duration=%s", request, len(all), time.Since(t0))
	return all, nil
}

func (c *Client) getPage(ctx context.Context, q url.Values, request int) (*listResponse, error) {
	var lastErr error
	delay := initialDelay

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if attempt > 1 {
			log.Printf("[FETCH] retry %d/%d after %s: %v", attempt, maxRetries, delay, lastErr)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
		}

		body, status, err := c.doGet(ctx, q)
		if err != nil {
			lastErr = err
			continue
		}

		if status == http.StatusTooManyRequests || status >= 500 {
			lastErr = &APIError{Status: status, Body: string(body)}
			continue
		}
		if status != http.StatusOK {
			return nil, &APIError{Status: status, Body: string(body)}
		}

		var page listResponse
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, fmt.Errorf("decode page: %w", err)
		}

		// First and final pages are the interesting ones post-mortem.
		if c.Debug && (request <= 1 || len(page.Items) < pageSize) {
			c.dump(body, request)
		}
		return &page, nil
	}

	return nil, fmt.Errorf("giving up after %d attempts: %w", maxRetries, lastErr)
}

func (c *Client) doGet(ctx context.Context, q url.Values) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, 0, err
	}
	req.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}
	return body, resp.StatusCode, nil
}

func (c *Client) dump(body []byte, request int) {
	name := fmt.Sprintf("razorpay_response_%d_%s.json", request, c.runID)
	if err := os.WriteFile(name, body, 0o644); err != nil {
		log.Printf("[FETCH][WARN] debug dump %s: %v", name, err)
		return
	}
	log.Printf("[FETCH] raw page dumped to %s", name)
}

func maskKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
