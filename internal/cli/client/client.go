package client

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/network/standard"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/nogueira-gui/conecta-apiserver/internal/cli/types"
)

// APIClient wraps Hertz Client for HTTP communication with the API server
type APIClient struct {
	client *client.Client
	server string
	token  string
}

// NewAPIClient creates a new API client
func NewAPIClient(server, token string) (*APIClient, error) {
	// Normalize server URL
	normalizedServer, err := normalizeServerURL(server)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL: %w", err)
	}

	// Use standard library dialer for streaming support
	// netpoll doesn't support streaming well, causing panics
	c, err := client.NewClient(
		client.WithDialTimeout(10*time.Second),
		client.WithMaxIdleConnDuration(60*time.Second),
		client.WithResponseBodyStream(true),     // Enable streaming response support
		client.WithDialer(standard.NewDialer()), // Use standard library for streaming
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	return &APIClient{
		client: c,
		server: normalizedServer,
		token:  token,
	}, nil
}

// normalizeServerURL normalizes server URL to ensure it has a scheme and no trailing slash
func normalizeServerURL(server string) (string, error) {
	// Add scheme if missing
	if !strings.Contains(server, "://") {
		server = "http://" + server
	}

	// Parse and validate
	u, err := url.Parse(server)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("invalid server URL")
	}

	// Return scheme://host (no path, no trailing slash)
	return fmt.Sprintf("%s://%s", u.Scheme, u.Host), nil
}

// Login performs user login
func (c *APIClient) Login(ctx context.Context, username, password string) (*types.APIResponse[types.LoginData], error) {
	reqBody := types.LoginRequest{
		Username: username,
		Password: password,
	}
	bodyBytes, err := sonic.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(consts.MethodPost)
	req.SetRequestURI(c.server + endpointLogin)
	req.Header.SetContentTypeBytes([]byte("application/json"))
	req.SetBody(bodyBytes)

	if err := c.client.Do(ctx, req, resp); err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("login failed with HTTP status: %d", resp.StatusCode())
	}

	var loginResp types.APIResponse[types.LoginData]
	if err := sonic.Unmarshal(resp.Body(), &loginResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &loginResp, nil
}

// ListReminders lists the caller's health reminders
func (c *APIClient) ListReminders(ctx context.Context) ([]types.Reminder, error) {
	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(consts.MethodGet)
	req.SetRequestURI(c.server + endpointReminders)
	req.Header.Set("Authorization", "Bearer "+c.token)

	if err := c.client.Do(ctx, req, resp); err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("failed to list reminders (HTTP %d)", resp.StatusCode())
	}

	var listResp types.APIResponse[types.ReminderList]
	if err := sonic.Unmarshal(resp.Body(), &listResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return listResp.Data.Reminders, nil
}

// CreateReminder creates a health reminder
func (c *APIClient) CreateReminder(ctx context.Context, reminder *types.CreateReminderRequest) error {
	bodyBytes, err := sonic.Marshal(reminder)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq := &protocol.Request{}
	httpReq.SetMethod("POST")
	httpReq.SetRequestURI(c.server + endpointReminders)
	httpReq.Header.Set("Authorization", "Bearer "+c.token)
	httpReq.Header.SetContentTypeBytes([]byte("application/json"))
	httpReq.SetBody(bodyBytes)

	resp := &protocol.Response{}
	if err := c.client.Do(ctx, httpReq, resp); err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	statusCode := resp.StatusCode()
	if statusCode < 200 || statusCode >= 300 {
		body := resp.Body()
		return fmt.Errorf("create failed with HTTP status: %d, body: %s", statusCode, string(body))
	}

	return nil
}

// DeleteReminder deletes a health reminder
func (c *APIClient) DeleteReminder(ctx context.Context, reminderID string) error {
	url := fmt.Sprintf("%s"+endpointReminderByID, c.server, reminderID)

	req := &protocol.Request{}
	req.SetMethod("DELETE")
	req.SetRequestURI(url)
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp := &protocol.Response{}
	if err := c.client.Do(ctx, req, resp); err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	statusCode := resp.StatusCode()
	if statusCode < 200 || statusCode >= 300 {
		body := resp.Body()
		return fmt.Errorf("delete failed with HTTP status: %d, body: %s", statusCode, string(body))
	}

	return nil
}

// ListContacts lists the caller's contact directory
// If emergencyOnly is true, lists only emergency contacts
func (c *APIClient) ListContacts(ctx context.Context, emergencyOnly bool) ([]types.Contact, error) {
	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	endpoint := endpointContacts
	if emergencyOnly {
		endpoint = endpointContactsEmerg
	}

	req.SetMethod(consts.MethodGet)
	req.SetRequestURI(c.server + endpoint)
	req.Header.Set("Authorization", "Bearer "+c.token)

	if err := c.client.Do(ctx, req, resp); err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("failed to list contacts (HTTP %d)", resp.StatusCode())
	}

	var listResp types.APIResponse[types.ContactList]
	if err := sonic.Unmarshal(resp.Body(), &listResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return listResp.Data.Contacts, nil
}

// ChatStreaming sends chat messages and returns streaming response using Hertz's Stream API
func (c *APIClient) ChatStreaming(ctx context.Context, messages []types.ChatMessage, sessionID string) (<-chan types.ChatStreamChunk, <-chan error, error) {
	if len(messages) == 0 {
		return nil, nil, fmt.Errorf("chat request requires at least one message")
	}

	// Copy messages to avoid data races when caller mutates the slice while streaming
	safeMessages := make([]types.ChatMessage, len(messages))
	copy(safeMessages, messages)

	reqBody := types.ChatRequest{
		Messages: safeMessages,
		Stream:   true,
		// The user is identified by the JWT token, only the session travels here
		SessionID: sessionID,
	}

	bodyBytes, err := sonic.Marshal(reqBody)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()

	req.SetMethod(consts.MethodPost)
	req.SetRequestURI(c.server + endpointChatCompletions)
	req.Header.SetContentTypeBytes([]byte("application/json"))
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "text/event-stream")
	req.SetBody(bodyBytes)

	// Use Do() - Hertz will handle streaming response through BodyStream()
	if err := c.client.Do(ctx, req, resp); err != nil {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
		return nil, nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode() != 200 {
		statusCode := resp.StatusCode()
		body := resp.Body()
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
		return nil, nil, fmt.Errorf("chat failed with HTTP status: %d, body: %s", statusCode, string(body))
	}

	// Create channels for streaming
	chunkCh := make(chan types.ChatStreamChunk, 10)
	errCh := make(chan error, 1)

	// Start goroutine to read SSE stream in real-time
	go func() {
		defer func() {
			close(chunkCh)
			close(errCh)
			protocol.ReleaseRequest(req)
			protocol.ReleaseResponse(resp)
		}()

		bodyStream := resp.BodyStream()
		if bodyStream == nil {
			errCh <- fmt.Errorf("body stream is nil")
			return
		}

		c.parseSSEStreamRealtime(bodyStream, chunkCh, errCh)
	}()

	return chunkCh, errCh, nil
}

// parseSSEStreamRealtime reads SSE stream line by line in real-time using Hertz's BodyStream()
func (c *APIClient) parseSSEStreamRealtime(reader io.Reader, chunkCh chan<- types.ChatStreamChunk, errCh chan<- error) {
	scanner := bufio.NewScanner(reader)

	// Increase buffer size for large SSE messages
	const maxScanTokenSize = 1024 * 1024 // 1MB
	buf := make([]byte, maxScanTokenSize)
	scanner.Buffer(buf, maxScanTokenSize)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines or comments
		if line == "" || strings.HasPrefix(line, ":") {
			continue
		}

		// Parse SSE data line
		if strings.HasPrefix(line, "data: ") {
			dataStr := strings.TrimPrefix(line, "data: ")

			// Check for [DONE] marker
			if dataStr == "[DONE]" {
				return
			}

			var chunk types.ChatStreamChunk
			if err := sonic.Unmarshal([]byte(dataStr), &chunk); err != nil {
				errCh <- fmt.Errorf("failed to parse chunk: %w", err)
				return
			}

			select {
			case chunkCh <- chunk:
				// Successfully sent, continue reading next line
			case <-time.After(5 * time.Second):
				errCh <- fmt.Errorf("timeout sending chunk to channel")
				return
			}
		}
	}

	if err := scanner.Err(); err != nil {
		// Don't report EOF as error
		if err != io.EOF {
			errCh <- fmt.Errorf("scanner error: %w", err)
		}
	}
}
