package resdiary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"tablebooker/pkg/log"
)

const (
	// DefaultTimeout bounds a single reservation API call.
	DefaultTimeout = 10 * time.Second

	// channelCode identifies this service to the reservation API.
	channelCode = "ONLINE"

	readRetryDelay = 300 * time.Millisecond
)

var (
	// ErrNotFound means the booking reference or restaurant does not exist.
	ErrNotFound = errors.New("resdiary: not found")
	// ErrUnavailable means the reservation API returned a server error.
	ErrUnavailable = errors.New("resdiary: upstream unavailable")
)

// Client is the HTTP wrapper for the ResDiary-style reservation API.
type Client struct {
	l              log.Logger
	baseURL        string
	httpClient     *http.Client
	maxReadRetries int
}

// New creates a reservation API client. The bearer token is attached to
// every request through an oauth2 static token transport.
func New(l log.Logger, cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.APIToken})
	httpClient := oauth2.NewClient(context.Background(), src)
	httpClient.Timeout = timeout

	return &Client{
		l:              l,
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:     httpClient,
		maxReadRetries: cfg.MaxReadRetries,
	}
}

// ListRestaurants lists the venues known to the reservation API.
func (c *Client) ListRestaurants(ctx context.Context) ([]RestaurantInfo, error) {
	endpoint := fmt.Sprintf("%s/api/ConsumerApi/v1/Restaurants", c.baseURL)

	var out restaurantList
	if err := c.doRead(ctx, http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}
	return out.Restaurants, nil
}

// SearchAvailability lists slots for a date and party size.
func (c *Client) SearchAvailability(ctx context.Context, restaurant string, req AvailabilityRequest) (*AvailabilityResult, error) {
	form := url.Values{}
	form.Set("VisitDate", req.VisitDate)
	form.Set("PartySize", strconv.Itoa(req.PartySize))
	form.Set("ChannelCode", channelCode)

	endpoint := fmt.Sprintf("%s/api/ConsumerApi/v1/Restaurant/%s/AvailabilitySearch", c.baseURL, url.PathEscape(restaurant))

	var out AvailabilityResult
	if err := c.doRead(ctx, http.MethodPost, endpoint, form, &out); err != nil {
		return nil, fmt.Errorf("failed to search availability: %w", err)
	}
	return &out, nil
}

// CreateBooking creates a new booking. Not retried: a timed-out create
// may still have landed upstream.
func (c *Client) CreateBooking(ctx context.Context, restaurant string, req CreateBookingRequest) (*Booking, error) {
	form := url.Values{}
	form.Set("VisitDate", req.VisitDate)
	form.Set("VisitTime", req.VisitTime)
	form.Set("PartySize", strconv.Itoa(req.PartySize))
	form.Set("ChannelCode", channelCode)
	if req.SpecialRequests != "" {
		form.Set("SpecialRequests", req.SpecialRequests)
	}
	if req.Customer.FirstName != "" {
		form.Set("Customer[FirstName]", req.Customer.FirstName)
		form.Set("Customer[Surname]", req.Customer.Surname)
	}
	if req.Customer.Email != "" {
		form.Set("Customer[Email]", req.Customer.Email)
	}
	if req.Customer.Mobile != "" {
		form.Set("Customer[Mobile]", req.Customer.Mobile)
	}

	endpoint := fmt.Sprintf("%s/api/ConsumerApi/v1/Restaurant/%s/BookingWithStripeToken", c.baseURL, url.PathEscape(restaurant))

	var out Booking
	if err := c.doOnce(ctx, http.MethodPost, endpoint, form, &out); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return &out, nil
}

// GetBooking fetches booking details by reference.
func (c *Client) GetBooking(ctx context.Context, restaurant, reference string) (*Booking, error) {
	endpoint := fmt.Sprintf("%s/api/ConsumerApi/v1/Restaurant/%s/Booking/%s", c.baseURL, url.PathEscape(restaurant), url.PathEscape(reference))

	var out Booking
	if err := c.doRead(ctx, http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to get booking %s: %w", reference, err)
	}
	return &out, nil
}

// UpdateBooking patches an existing booking. Not retried.
func (c *Client) UpdateBooking(ctx context.Context, restaurant, reference string, req UpdateBookingRequest) (*Booking, error) {
	form := url.Values{}
	if req.VisitDate != nil {
		form.Set("VisitDate", *req.VisitDate)
	}
	if req.VisitTime != nil {
		form.Set("VisitTime", *req.VisitTime)
	}
	if req.PartySize != nil {
		form.Set("PartySize", strconv.Itoa(*req.PartySize))
	}
	if req.SpecialRequests != nil {
		form.Set("SpecialRequests", *req.SpecialRequests)
	}
	if len(form) == 0 {
		return nil, fmt.Errorf("no fields to update for booking %s", reference)
	}

	endpoint := fmt.Sprintf("%s/api/ConsumerApi/v1/Restaurant/%s/Booking/%s", c.baseURL, url.PathEscape(restaurant), url.PathEscape(reference))

	var out Booking
	if err := c.doOnce(ctx, http.MethodPatch, endpoint, form, &out); err != nil {
		return nil, fmt.Errorf("failed to update booking %s: %w", reference, err)
	}
	return &out, nil
}

// CancelBooking cancels an existing booking. Not retried.
func (c *Client) CancelBooking(ctx context.Context, restaurant, reference string, reasonID int) (*CancelResult, error) {
	form := url.Values{}
	form.Set("micrositeName", restaurant)
	form.Set("bookingReference", reference)
	form.Set("cancellationReasonId", strconv.Itoa(reasonID))

	endpoint := fmt.Sprintf("%s/api/ConsumerApi/v1/Restaurant/%s/Booking/%s/Cancel", c.baseURL, url.PathEscape(restaurant), url.PathEscape(reference))

	var out CancelResult
	if err := c.doOnce(ctx, http.MethodPost, endpoint, form, &out); err != nil {
		return nil, fmt.Errorf("failed to cancel booking %s: %w", reference, err)
	}
	return &out, nil
}

// doRead performs an idempotent request, retrying transport failures and
// server errors up to maxReadRetries extra attempts.
func (c *Client) doRead(ctx context.Context, method, endpoint string, form url.Values, out any) error {
	var lastErr error
	for attempt := 0; attempt <= c.maxReadRetries; attempt++ {
		if attempt > 0 {
			c.l.Warnf(ctx, "retrying reservation API read (attempt %d/%d): %v", attempt+1, c.maxReadRetries+1, lastErr)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(readRetryDelay):
			}
		}

		lastErr = c.doOnce(ctx, method, endpoint, form, out)
		if lastErr == nil {
			return nil
		}
		if !errors.Is(lastErr, ErrUnavailable) && !isTransportError(lastErr) {
			return lastErr
		}
	}
	return lastErr
}

func (c *Client) doOnce(ctx context.Context, method, endpoint string, form url.Values, out any) error {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &transportError{err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode >= http.StatusInternalServerError:
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, string(raw))
	default:
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("reservation API error %d: %s", resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

type transportError struct {
	err error
}

func (e *transportError) Error() string { return e.err.Error() }
func (e *transportError) Unwrap() error { return e.err }

func isTransportError(err error) bool {
	var te *transportError
	return errors.As(err, &te)
}
