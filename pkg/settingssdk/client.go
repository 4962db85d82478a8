package settingssdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// SDKClient is a typed client for the settings API. Every call goes through
// the Gateway.
type SDKClient struct {
	BaseURL string
	Gateway *Gateway
}

// NewSDKClient returns a client for the API at baseURL.
func NewSDKClient(baseURL string, gateway *Gateway) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		Gateway: gateway,
	}
}

// SignIn stores the credentials returned by a login flow.
func (c *SDKClient) SignIn(creds Credentials) error {
	return c.Gateway.Tokens.Set(creds)
}

// SignOut clears the stored credentials.
func (c *SDKClient) SignOut() error {
	return c.Gateway.Tokens.Clear()
}

// GetSettings returns the caller's settings, creating defaults on first access.
func (c *SDKClient) GetSettings(ctx context.Context) (*SettingsDocument, error) {
	var doc SettingsDocument
	if err := c.do(ctx, http.MethodGet, "/v1/settings", nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// UpdateSettings replaces every section present in update.
func (c *SDKClient) UpdateSettings(ctx context.Context, update SettingsUpdate) (*SettingsDocument, error) {
	var doc SettingsDocument
	if err := c.do(ctx, http.MethodPut, "/v1/settings", update, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ResetSettings restores the default settings.
func (c *SDKClient) ResetSettings(ctx context.Context) (*SettingsDocument, error) {
	var doc SettingsDocument
	if err := c.do(ctx, http.MethodPost, "/v1/settings/reset", nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// GetLiveness checks that the service is running.
func (c *SDKClient) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/livez", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.Gateway.Send(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, parseErrorResponse(resp.StatusCode, body)
	}

	var health HealthResponse
	if err := json.Unmarshal(body, &health); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &health, nil
}

// do sends an enveloped request and decodes the envelope's data into target.
func (c *SDKClient) do(ctx context.Context, method, path string, in, target any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.Gateway.Send(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseErrorResponse(resp.StatusCode, raw)
	}

	var env rawEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if !env.Success {
		return &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}
	if err := json.Unmarshal(env.Data, target); err != nil {
		return fmt.Errorf("failed to decode settings: %w", err)
	}
	return nil
}
