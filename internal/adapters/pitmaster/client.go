package pitmaster

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/renato0307/pitmaster/internal/domain"
	"github.com/renato0307/pitmaster/internal/logging"
)

const apiPrefix = "/api/v1"

// Client talks to the cook prediction service over HTTP+JSON.
// It performs no retries and imposes no timeout of its own; callers bound
// requests through the context or the supplied http.Client.
type Client struct {
	baseURL string
	client  *http.Client
}

// RequestError is returned for any non-2xx response
type RequestError struct {
	Body       string
	StatusCode int
}

func (e *RequestError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Body)
}

// New creates a client for the service rooted at baseURL
func New(baseURL string) *Client {
	return NewWithClient(baseURL, nil)
}

// NewWithClient creates a client that sends requests through client
func NewWithClient(baseURL string, client *http.Client) *Client {
	if client == nil {
		client = &http.Client{}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// StartSession creates a cook session
func (c *Client) StartSession(ctx context.Context, req domain.SetupRequest) (domain.SetupResult, error) {
	var resp setupResponse
	if err := c.do(ctx, http.MethodPost, "/cook/setup", toSetupRequestDTO(req), &resp); err != nil {
		return domain.SetupResult{}, err
	}
	return resp.toDomain(), nil
}

// LogReading records a probe reading for the session
func (c *Client) LogReading(ctx context.Context, sessionID string, req domain.ReadingRequest) (domain.ReadingResult, error) {
	var resp readingResponse
	body := readingRequestDTO{TempF: req.TempF, SmokerTempF: req.SmokerTempF}
	if err := c.do(ctx, http.MethodPost, cookPath(sessionID, "reading"), body, &resp); err != nil {
		return domain.ReadingResult{}, err
	}
	return resp.toDomain(), nil
}

// LidOpened reports that the smoker lid was opened for durationSeconds
func (c *Client) LidOpened(ctx context.Context, sessionID string, durationSeconds float64) error {
	body := lidOpenRequestDTO{DurationSeconds: durationSeconds}
	return c.do(ctx, http.MethodPost, cookPath(sessionID, "lid-open"), body, nil)
}

// ApplyWrap records a wrap intervention
func (c *Client) ApplyWrap(ctx context.Context, sessionID string, wrapType domain.WrapType) (domain.WrapResult, error) {
	var resp wrapResponse
	body := wrapRequestDTO{WrapType: string(wrapType)}
	if err := c.do(ctx, http.MethodPost, cookPath(sessionID, "wrap"), body, &resp); err != nil {
		return domain.WrapResult{}, err
	}
	return resp.toDomain(), nil
}

// GetPrediction fetches the current prediction
func (c *Client) GetPrediction(ctx context.Context, sessionID string) (domain.Prediction, error) {
	var resp predictionResponse
	if err := c.do(ctx, http.MethodGet, cookPath(sessionID, "prediction"), nil, &resp); err != nil {
		return domain.Prediction{}, err
	}
	return resp.toDomain(), nil
}

// GetState fetches the current session status
func (c *Client) GetState(ctx context.Context, sessionID string) (domain.CookStatus, error) {
	var resp stateResponse
	if err := c.do(ctx, http.MethodGet, cookPath(sessionID, "state"), nil, &resp); err != nil {
		return domain.CookStatus{}, err
	}
	return resp.toDomain(), nil
}

// FinishSession finishes the cook and returns its report
func (c *Client) FinishSession(ctx context.Context, sessionID string, req domain.FinishRequest) (domain.Report, error) {
	var resp reportResponse
	if err := c.do(ctx, http.MethodPost, cookPath(sessionID, "finish"), toFinishRequestDTO(req), &resp); err != nil {
		return domain.Report{}, err
	}
	return resp.toDomain(), nil
}

// GetReport fetches the report of a finished cook
func (c *Client) GetReport(ctx context.Context, sessionID string) (domain.Report, error) {
	var resp reportResponse
	if err := c.do(ctx, http.MethodGet, cookPath(sessionID, "report"), nil, &resp); err != nil {
		return domain.Report{}, err
	}
	return resp.toDomain(), nil
}

// ListEquipmentPresets lists the smoker presets known to the service
func (c *Client) ListEquipmentPresets(ctx context.Context) ([]domain.EquipmentPreset, error) {
	var resp []equipmentPresetResponse
	if err := c.do(ctx, http.MethodGet, "/equipment/presets", nil, &resp); err != nil {
		return nil, err
	}
	presets := make([]domain.EquipmentPreset, 0, len(resp))
	for _, p := range resp {
		presets = append(presets, p.toDomain())
	}
	return presets, nil
}

func cookPath(sessionID, action string) string {
	return "/cook/" + url.PathEscape(sessionID) + "/" + action
}

// do sends the request and decodes a JSON response into out when out is non-nil
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	payload, err := c.request(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *Client) request(ctx context.Context, method, path string, body any) ([]byte, error) {
	u := c.baseURL + apiPrefix + path

	var reqBody io.Reader
	if body != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reqBody = buf
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	logging.Logger.Debug("API request", "method", method, "path", path)
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() //nolint:errcheck

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logging.Logger.Debug("API request failed", "method", method, "path", path, "status", resp.StatusCode)
		return nil, &RequestError{
			StatusCode: resp.StatusCode,
			Body:       string(payload),
		}
	}
	return payload, nil
}
