package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"ridebook/config"
	"ridebook/gateway"
	"ridebook/pkg/logger"
)

// Client talks JSON to the booking REST API. The response body is decoded
// tolerantly: the upstream occasionally answers with plain text, which is
// wrapped as {"text": ...} instead of being dropped.
type Client struct {
	baseURL string
	http    *http.Client
	log     logger.ILogger
}

func New(cfg config.Config, log logger.ILogger) gateway.IGateway {
	return &Client{
		baseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		http:    &http.Client{Timeout: cfg.RequestTimeout},
		log:     log,
	}
}

func (c *Client) Vehicle() gateway.IVehicleAPI { return &vehicleAPI{c} }
func (c *Client) Booking() gateway.IBookingAPI { return &bookingAPI{c} }

func (c *Client) request(ctx context.Context, method, path string, body any) (map[string]any, int, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, 0, err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.log.Info("api request", logger.String("method", method), logger.String("path", path))

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("api request failed", logger.String("path", path), logger.Error(err))
		return nil, 0, fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response %s: %w", path, err)
	}

	data := decodeBody(raw)
	c.log.Info("api response", logger.String("path", path), logger.Int("status", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, resp.StatusCode, fmt.Errorf("%s", errorMessage(data, resp.StatusCode))
	}
	return data, resp.StatusCode, nil
}

// decodeBody parses the body as a JSON object when it is one; JSON scalars
// and non-JSON text are kept under a "text" key.
func decodeBody(raw []byte) map[string]any {
	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}
	}
	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj
	}
	var arr []any
	if err := json.Unmarshal(raw, &arr); err == nil {
		return map[string]any{"result": arr}
	}
	return map[string]any{"text": string(raw)}
}

func errorMessage(data map[string]any, status int) string {
	if msg, ok := data["message"].(string); ok && msg != "" {
		return msg
	}
	return fmt.Sprintf("Error: %d", status)
}
