// Package client is the consumer-side API client for the workout planner.
// It caches the "all days" collection and individual days under separate
// keys, invalidating the affected keys after each mutation so list and
// detail views stay consistent without manual refetch wiring. Concurrent
// reads of the same key are collapsed into a single request.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"golang.org/x/sync/singleflight"

	"ironplan/workout-planner/internal/domain"
)

const listKey = "days"

func dayKey(id string) string { return "day/" + id }

// APIError is a non-2xx response decoded from the server's message body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// NotFound reports whether the server answered 404.
func (e *APIError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// WorkoutDayUpsert carries the fields of a create or full-replace request.
// The exercises slice order is the workout order.
type WorkoutDayUpsert struct {
	Name      string               `json:"name"`
	DayOfWeek string               `json:"dayOfWeek,omitempty"`
	Exercises []domain.DayExercise `json:"exercises"`
}

// Client is safe for concurrent use.
type Client struct {
	baseURL string
	httpc   *http.Client
	token   string
	group   singleflight.Group

	mu        sync.Mutex
	list      []domain.WorkoutDay
	listValid bool
	days      map[string]*domain.WorkoutDay
	// gen tracks a generation per cache key: invalidation bumps it, and a
	// fetch only fills the cache if no invalidation happened since it
	// started. Last write for a key wins; superseded responses are dropped.
	gen map[string]uint64
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) { c.httpc = httpc }
}

// WithToken sends the given bearer token with every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// New creates a Client for the API at baseURL (e.g. "http://localhost:8080").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpc:   http.DefaultClient,
		days:    map[string]*domain.WorkoutDay{},
		gen:     map[string]uint64{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListDays returns all workout days, served from cache when it is fresh.
func (c *Client) ListDays(ctx context.Context) ([]domain.WorkoutDay, error) {
	c.mu.Lock()
	if c.listValid {
		defer c.mu.Unlock()
		return copyDays(c.list), nil
	}
	startGen := c.gen[listKey]
	c.mu.Unlock()

	v, err, _ := c.group.Do(listKey, func() (any, error) {
		var days []domain.WorkoutDay
		if err := c.doRequest(ctx, http.MethodGet, "/api/v1/workout-days", nil, &days); err != nil {
			return nil, err
		}
		c.mu.Lock()
		if c.gen[listKey] == startGen {
			c.list = days
			c.listValid = true
		}
		c.mu.Unlock()
		return days, nil
	})
	if err != nil {
		return nil, err
	}
	return copyDays(v.([]domain.WorkoutDay)), nil
}

// GetDay returns one workout day, served from cache when it is fresh.
func (c *Client) GetDay(ctx context.Context, id string) (*domain.WorkoutDay, error) {
	key := dayKey(id)

	c.mu.Lock()
	if day, ok := c.days[id]; ok {
		defer c.mu.Unlock()
		return copyDay(day), nil
	}
	startGen := c.gen[key]
	c.mu.Unlock()

	v, err, _ := c.group.Do(key, func() (any, error) {
		var day domain.WorkoutDay
		if err := c.doRequest(ctx, http.MethodGet, "/api/v1/workout-days/"+id, nil, &day); err != nil {
			return nil, err
		}
		c.mu.Lock()
		if c.gen[key] == startGen {
			c.days[id] = &day
		}
		c.mu.Unlock()
		return &day, nil
	})
	if err != nil {
		return nil, err
	}
	return copyDay(v.(*domain.WorkoutDay)), nil
}

// CreateDay creates a workout day and invalidates the collection so the next
// List re-fetches it including the new entry.
func (c *Client) CreateDay(ctx context.Context, upsert WorkoutDayUpsert) (*domain.WorkoutDay, error) {
	var created domain.WorkoutDay
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/workout-days", upsert, &created); err != nil {
		return nil, err
	}
	c.invalidate(listKey)
	return &created, nil
}

// UpdateDay fully replaces a workout day and invalidates both the collection
// and that day's entry, so list and detail views both reflect the write.
func (c *Client) UpdateDay(ctx context.Context, id string, upsert WorkoutDayUpsert) (*domain.WorkoutDay, error) {
	var updated domain.WorkoutDay
	if err := c.doRequest(ctx, http.MethodPut, "/api/v1/workout-days/"+id, upsert, &updated); err != nil {
		return nil, err
	}
	c.invalidate(listKey)
	c.invalidate(dayKey(id))
	return &updated, nil
}

// DeleteDay deletes a workout day, invalidates the collection and evicts the
// day's cache entry so even a racing stale response cannot resurrect it.
func (c *Client) DeleteDay(ctx context.Context, id string) error {
	if err := c.doRequest(ctx, http.MethodDelete, "/api/v1/workout-days/"+id, nil, nil); err != nil {
		return err
	}
	c.invalidate(listKey)
	c.invalidate(dayKey(id))
	return nil
}

// invalidate drops the cached value for key and bumps its generation so any
// in-flight fetch started before the invalidation cannot fill the cache.
func (c *Client) invalidate(key string) {
	c.mu.Lock()
	c.gen[key]++
	if key == listKey {
		c.list = nil
		c.listValid = false
	} else {
		delete(c.days, key[len("day/"):])
	}
	c.mu.Unlock()
	c.group.Forget(key)
}

func (c *Client) doRequest(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var msg struct {
			Message string `json:"message"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&msg); decodeErr == nil {
			apiErr.Message = msg.Message
		}
		return apiErr
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func copyDay(day *domain.WorkoutDay) *domain.WorkoutDay {
	cp := *day
	cp.Exercises = make([]domain.DayExercise, len(day.Exercises))
	copy(cp.Exercises, day.Exercises)
	return &cp
}

func copyDays(days []domain.WorkoutDay) []domain.WorkoutDay {
	out := make([]domain.WorkoutDay, len(days))
	for i := range days {
		out[i] = *copyDay(&days[i])
	}
	return out
}
