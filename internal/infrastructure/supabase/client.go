package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/horus-listing/internal/config"
	"go.uber.org/zap"
)

// Client - клиент REST шлюза (PostgREST) управляемой БД
type Client struct {
	httpClient *http.Client
	baseURL    string
	serviceKey string
	logger     *zap.Logger
}

// APIError - тело ошибки PostgREST
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	Details    string `json:"details"`
	Hint       string `json:"hint"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("supabase API error: status %d, code %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("supabase API error: status %d: %s", e.StatusCode, e.Message)
}

// NewClient создает клиент; URL без завершающего слэша
func NewClient(cfg *config.SupabaseConfig, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		serviceKey: cfg.ServiceKey,
		logger:     logger,
	}
}

// Eq - фильтр равенства PostgREST
func Eq(value string) string {
	return "eq." + value
}

// Select выполняет GET /rest/v1/<table> и декодирует массив строк в out
func (c *Client) Select(ctx context.Context, table string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, c.tableURL(table, query), nil, false, out)
}

// Insert вставляет строку и возвращает созданные записи
func (c *Client) Insert(ctx context.Context, table string, row interface{}, out interface{}) error {
	return c.do(ctx, http.MethodPost, c.tableURL(table, nil), row, true, out)
}

// Update обновляет строки, подходящие под query, и возвращает их
func (c *Client) Update(ctx context.Context, table string, query url.Values, patch interface{}, out interface{}) error {
	return c.do(ctx, http.MethodPatch, c.tableURL(table, query), patch, true, out)
}

// Delete удаляет строки, подходящие под query, и возвращает удалённые
func (c *Client) Delete(ctx context.Context, table string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodDelete, c.tableURL(table, query), nil, true, out)
}

// RPC вызывает хранимую функцию через /rest/v1/rpc/<fn>
func (c *Client) RPC(ctx context.Context, fn string, args interface{}, out interface{}) error {
	if args == nil {
		args = struct{}{}
	}
	return c.do(ctx, http.MethodPost, c.baseURL+"/rest/v1/rpc/"+fn, args, false, out)
}

// Health проверяет доступность шлюза
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, c.baseURL+"/rest/v1/", nil, false, nil)
}

func (c *Client) tableURL(table string, query url.Values) string {
	u := c.baseURL + "/rest/v1/" + table
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *Client) do(
	ctx context.Context,
	method, rawURL string,
	body interface{},
	returnRepresentation bool,
	out interface{},
) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if returnRepresentation {
		req.Header.Set("Prefer", "return=representation")
	}

	c.logger.Debug("Calling Supabase REST API",
		zap.String("method", method),
		zap.String("url", rawURL))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.String("method", method), zap.Error(err))
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		raw, _ := io.ReadAll(resp.Body)
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if jsonErr := json.Unmarshal(raw, apiErr); jsonErr != nil || apiErr.Message == "" {
			apiErr.Message = string(raw)
		}
		c.logger.Error("Supabase API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("code", apiErr.Code),
			zap.String("message", apiErr.Message))
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
