//go:build integration
// +build integration

package integration

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/network/netpoll"
	"github.com/google/uuid"

	"github.com/nogueira-gui/conecta-apiserver/internal/config"
	"github.com/nogueira-gui/conecta-apiserver/internal/handler"
	"github.com/nogueira-gui/conecta-apiserver/internal/handler/dto"
	infradb "github.com/nogueira-gui/conecta-apiserver/internal/infrastructure/database"
	"github.com/nogueira-gui/conecta-apiserver/internal/infrastructure/llm"
	"github.com/nogueira-gui/conecta-apiserver/internal/infrastructure/memory"
	"github.com/nogueira-gui/conecta-apiserver/internal/intent"
	"github.com/nogueira-gui/conecta-apiserver/internal/usecase"
	dbpkg "github.com/nogueira-gui/conecta-apiserver/pkg/database"
)

// TestChatHTTP_SSE is the full HTTP integration test for the chat endpoint.
// Run with: make test-integration
// Needs: MySQL (localhost:3306) + ASSISTANT_API_KEY for the hosted model
func TestChatHTTP_SSE(t *testing.T) {
	apiKey := os.Getenv("ASSISTANT_API_KEY")
	if apiKey == "" {
		t.Skip("ASSISTANT_API_KEY not set")
	}

	cfg := &config.Config{
		Server: config.ServerConfig{
			Host:               "127.0.0.1",
			Port:               18080, // test port
			Mode:               "test",
			ReadTimeout:        30,
			WriteTimeout:       30,
			MaxRequestBodySize: 4,
		},
		JWT: config.JWTConfig{
			Secret: "integration-test-secret-0123456789abcdef",
		},
		Assistant: config.AssistantConfig{
			APIKey:  apiKey,
			Timeout: 60 * time.Second,
		},
		Database: config.DatabaseConfig{
			Driver:          "mysql",
			Host:            getEnvOrDefault("DB_HOST", "127.0.0.1"),
			Port:            3306,
			User:            getEnvOrDefault("DB_USER", "conecta_user"),
			Password:        getEnvOrDefault("DB_PASSWORD", "conecta_pass"),
			Database:        getEnvOrDefault("DB_NAME", "conecta_db"),
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 5 * time.Minute,
		},
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	// Database
	dbClient, _, err := dbpkg.NewClient(cfg.Database, logger)
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}
	defer dbClient.Close()

	// Components
	userRepo := infradb.NewUserRepository(dbClient)
	userUC := usecase.NewUserUsecase(userRepo, logger)
	userHandler := handler.NewUserHandler(userUC, cfg.JWT.Secret, logger)

	contactRepo := infradb.NewContactRepository(dbClient)
	contactUC := usecase.NewContactUsecase(contactRepo, logger)

	assistant, err := llm.NewClient(llm.Config{
		APIKey:  cfg.Assistant.APIKey,
		Timeout: cfg.Assistant.Timeout,
	}, logger)
	if err != nil {
		t.Fatalf("failed to create assistant client: %v", err)
	}

	chatUC := usecase.NewChatUsecase(assistant, memory.NewSessionStore(), intent.NewClassifier(), nil, logger)
	chatHandler := handler.NewChatHandler(chatUC, contactUC, logger)

	// Hertz server
	h := server.New(
		server.WithHostPorts(fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)),
		server.WithTransport(netpoll.NewTransporter),
		server.WithH2C(true),
	)

	// Routes (only auth + chat needed here)
	auth := h.Group("/api/v1/auth")
	auth.POST("/register", userHandler.Register)
	auth.POST("/login", userHandler.Login)

	v1 := h.Group("/v1", userHandler.AuthMiddleware())
	v1.POST("/chat/completions", chatHandler.CreateChatCompletion)

	go func() {
		if err := h.Run(); err != nil {
			logger.Error("server failed", "error", err)
		}
	}()

	// Wait for the server to come up
	time.Sleep(2 * time.Second)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		h.Shutdown(ctx)
	}()

	baseURL := fmt.Sprintf("http://%s:%d", cfg.Server.Host, cfg.Server.Port)
	client := &http.Client{Timeout: 60 * time.Second}

	token := registerAndLogin(t, client, baseURL)

	t.Run("SSE streaming chat", func(t *testing.T) {
		reqBody := dto.ChatCompletionRequest{
			Messages: []dto.ChatCompletionMessage{
				{Role: "user", Content: "Bom dia, tudo bem?"},
			},
			Stream: true,
		}

		bodyBytes, _ := json.Marshal(reqBody)
		req, err := http.NewRequest("POST", baseURL+"/v1/chat/completions", bytes.NewReader(bodyBytes))
		if err != nil {
			t.Fatalf("failed to create request: %v", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			t.Fatalf("expected status 200, got %d, body: %s", resp.StatusCode, string(body))
		}

		contentType := resp.Header.Get("Content-Type")
		if !strings.Contains(contentType, "text/event-stream") {
			t.Errorf("expected Content-Type to contain 'text/event-stream', got '%s'", contentType)
		}

		// Read the SSE stream
		reader := bufio.NewReader(resp.Body)
		chunkCount := 0
		receivedDone := false
		var firstChunk dto.ChatCompletionChunk

		for {
			line, err := reader.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					break
				}
				t.Fatalf("failed to read stream: %v", err)
			}

			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}

			if strings.HasPrefix(line, "data: ") {
				data := strings.TrimPrefix(line, "data: ")

				if data == "[DONE]" {
					receivedDone = true
					break
				}

				var chunk dto.ChatCompletionChunk
				if err := json.Unmarshal([]byte(data), &chunk); err != nil {
					t.Errorf("failed to unmarshal chunk: %v, data: %s", err, data)
					continue
				}

				chunkCount++

				if chunkCount == 1 {
					firstChunk = chunk
					if chunk.Object != "chat.completion.chunk" {
						t.Errorf("expected object 'chat.completion.chunk', got '%s'", chunk.Object)
					}
					if chunk.ID == "" {
						t.Error("chunk ID should not be empty")
					}
					if chunk.SessionID == "" {
						t.Error("first chunk should carry the session ID")
					}
					if len(chunk.Choices) == 0 {
						t.Error("choices should not be empty")
					}
					if chunk.Choices[0].Delta.Role != "assistant" {
						t.Errorf("expected role 'assistant', got '%s'", chunk.Choices[0].Delta.Role)
					}
				}

				// All chunks of a reply share one completion ID
				if chunkCount > 1 && chunk.ID != firstChunk.ID {
					t.Errorf("chunk ID should be consistent, expected '%s', got '%s'", firstChunk.ID, chunk.ID)
				}
			}
		}

		if chunkCount == 0 {
			t.Error("expected to receive at least one chunk")
		}
		if !receivedDone {
			t.Error("expected to receive [DONE] marker")
		}

		t.Logf("SSE streaming test completed: received %d chunks", chunkCount)
	})

	t.Run("non-streaming chat", func(t *testing.T) {
		reqBody := dto.ChatCompletionRequest{
			Messages: []dto.ChatCompletionMessage{
				{Role: "user", Content: "Bom dia, tudo bem?"},
			},
			Stream: false,
		}

		chatResp := sendChatRequest(t, client, baseURL, token, reqBody)

		if chatResp.Object != "chat.completion" {
			t.Errorf("expected object 'chat.completion', got '%s'", chatResp.Object)
		}
		if chatResp.Choices[0].Message.Role != "assistant" {
			t.Errorf("expected role 'assistant', got '%s'", chatResp.Choices[0].Message.Role)
		}
		if chatResp.Choices[0].Message.Content == "" {
			t.Error("expected non-empty content")
		}
		if chatResp.SessionID == "" {
			t.Error("expected a session ID in the response")
		}

		t.Logf("Non-streaming response: %q", chatResp.Choices[0].Message.Content)
	})

	t.Run("multi-turn conversation", func(t *testing.T) {
		// First message without a session, the server opens one
		reqBody1 := dto.ChatCompletionRequest{
			Messages: []dto.ChatCompletionMessage{
				{Role: "user", Content: "Oi, meu nome é Maria"},
			},
			Stream: false,
		}
		resp1 := sendChatRequest(t, client, baseURL, token, reqBody1)
		if resp1.SessionID == "" {
			t.Fatal("expected a session ID in first response")
		}

		// Second message continues the same session
		time.Sleep(time.Second)
		reqBody2 := dto.ChatCompletionRequest{
			Messages: []dto.ChatCompletionMessage{
				{Role: "user", Content: "Qual é o meu nome?"},
			},
			Stream:    false,
			SessionID: resp1.SessionID,
		}
		resp2 := sendChatRequest(t, client, baseURL, token, reqBody2)
		if resp2.SessionID != resp1.SessionID {
			t.Errorf("SessionID should be consistent, expected %s, got %s", resp1.SessionID, resp2.SessionID)
		}
	})

	t.Run("reminder intent carries a draft", func(t *testing.T) {
		reqBody := dto.ChatCompletionRequest{
			Messages: []dto.ChatCompletionMessage{
				{Role: "user", Content: "Me lembra de tomar o remédio da pressão amanhã às 8 horas"},
			},
			Stream: false,
		}
		resp := sendChatRequest(t, client, baseURL, token, reqBody)

		if resp.Intent == nil {
			t.Fatal("expected an intent on a reminder message")
		}
		if resp.Intent.Intent != "create_reminder" {
			t.Errorf("expected intent 'create_reminder', got '%s'", resp.Intent.Intent)
		}
		if resp.ReminderDraft == nil {
			t.Error("expected a reminder draft on a complete reminder request")
		}
	})
}

// registerAndLogin creates a throwaway account and returns its JWT token
func registerAndLogin(t *testing.T, client *http.Client, baseURL string) string {
	t.Helper()

	username := "it-" + uuid.New().String()[:8]
	password := "integration-pass-123"

	regBody, _ := json.Marshal(map[string]string{
		"username":  username,
		"password":  password,
		"full_name": "Integration Tester",
	})
	resp, err := client.Post(baseURL+"/api/v1/auth/register", "application/json", bytes.NewReader(regBody))
	if err != nil {
		t.Fatalf("register request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("register failed with status %d, body: %s", resp.StatusCode, string(body))
	}

	loginBody, _ := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	loginResp, err := client.Post(baseURL+"/api/v1/auth/login", "application/json", bytes.NewReader(loginBody))
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	defer loginResp.Body.Close()
	if loginResp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(loginResp.Body)
		t.Fatalf("login failed with status %d, body: %s", loginResp.StatusCode, string(body))
	}

	var envelope struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.NewDecoder(loginResp.Body).Decode(&envelope); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}
	if envelope.Data.Token == "" {
		t.Fatal("expected a token in the login response")
	}

	return envelope.Data.Token
}

// sendChatRequest posts a chat request and returns the decoded response
func sendChatRequest(t *testing.T, client *http.Client, baseURL, token string, reqBody dto.ChatCompletionRequest) *dto.ChatCompletionResponse {
	t.Helper()

	bodyBytes, _ := json.Marshal(reqBody)
	req, err := http.NewRequest("POST", baseURL+"/v1/chat/completions", bytes.NewReader(bodyBytes))
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("expected status 200, got %d, body: %s", resp.StatusCode, string(body))
	}

	var chatResp dto.ChatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(chatResp.Choices) == 0 {
		t.Fatal("expected at least one choice")
	}

	return &chatResp
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
