package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Request is the text-to-image payload accepted by the inference API.
type Request struct {
	Inputs  string  `json:"inputs"`
	Options Options `json:"options"`
}

type Options struct {
	WaitForModel bool `json:"wait_for_model"`
}

// UpstreamError is returned when the inference API answers with a non-2xx
// status. Body holds the raw response text.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("inference api returned status %d: %s", e.StatusCode, e.Body)
}

type Client struct {
	apiKey     string
	httpClient *http.Client
}

func NewClient(apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// Generate posts inputs to endpoint and returns the raw image bytes.
func (c *Client) Generate(ctx context.Context, endpoint, inputs string) ([]byte, error) {
	jsonBody, err := json.Marshal(Request{
		Inputs:  inputs,
		Options: Options{WaitForModel: true},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode inference request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create inference request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call inference api: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read inference response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	log.Debug().Str("endpoint", endpoint).Int("bytes", len(body)).Msg("Received image from inference api")

	return body, nil
}
