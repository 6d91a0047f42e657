// Package llm adapts an OpenAI-compatible chat-completion API (Groq in
// production) to the domain.AssistantClient interface.
package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/nogueira-gui/conecta-apiserver/internal/domain"
	"github.com/nogueira-gui/conecta-apiserver/internal/domain/entity"
)

// Default request parameters, matching what Groq recommends for the hosted
// open-weight models.
const (
	defaultBaseURL     = "https://api.groq.com/openai/v1"
	defaultModel       = "openai/gpt-oss-20b"
	defaultTemperature = 1.0
	defaultMaxTokens   = 8192
	defaultTimeout     = 60 * time.Second
)

// systemPrompt is the caregiver persona every regular turn is answered in.
const systemPrompt = `Você é um assistente virtual especializado em cuidados com idosos para a plataforma Conecta60+.

Suas características:
- Linguagem simples, carinhosa e respeitosa
- Foco na saúde e bem-estar de pessoas idosas
- Ajuda com lembretes médicos, medicamentos e consultas
- Oferece companhia e conversa amigável
- Orienta sobre cuidados básicos de saúde
- Incentiva atividades físicas e mentais apropriadas

IMPORTANTE:
- NUNCA substitua conselhos médicos profissionais
- Sempre sugira consultar médicos para questões de saúde
- Seja paciente e repita informações quando necessário
- Use linguagem acessível para idosos
- Mantenha um tom positivo e encorajador`

// familyPromptFormat is the roleplay persona used by family simulation.
// Arguments: member name, relationship, member name, counterpart.
const familyPromptFormat = `Você está simulando uma conversa como %s, %s do usuário.

Características da conversa:
- Tom carinhoso e preocupado
- Pergunta sobre saúde e bem-estar
- Oferece ajuda e apoio
- Lembra de consultas e medicamentos
- Conversa sobre família e memórias
- Usa linguagem familiar e acolhedora

Responda como %s falaria com seu %s.`

// Config holds the connection settings of the assistant API.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// Client is the domain.AssistantClient implementation backed by go-openai.
type Client struct {
	api    *openai.Client
	config Config
	logger *slog.Logger
}

// NewClient creates an assistant client.
//
// Parameters:
//   - config: API key, endpoint and request parameters; zero values fall
//     back to the Groq defaults
//   - logger: structured logger
//
// Returns:
//   - *Client implementing domain.AssistantClient
//   - error when no API key is configured
func NewClient(config Config, logger *slog.Logger) (*Client, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("assistant API key is required")
	}
	if config.BaseURL == "" {
		config.BaseURL = defaultBaseURL
	}
	if config.Model == "" {
		config.Model = defaultModel
	}
	if config.Temperature == 0 {
		config.Temperature = defaultTemperature
	}
	if config.MaxTokens == 0 {
		config.MaxTokens = defaultMaxTokens
	}
	if config.Timeout == 0 {
		config.Timeout = defaultTimeout
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	clientConfig.BaseURL = config.BaseURL

	return &Client{
		api:    openai.NewClientWithConfig(clientConfig),
		config: config,
		logger: logger,
	}, nil
}

var _ domain.AssistantClient = (*Client)(nil)

// Generate returns one complete reply in the caregiver persona.
func (c *Client) Generate(ctx context.Context, userMessage string, patient *entity.PatientContext) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(ctx, c.request(contextualPrompt(patient), userMessage, false))
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// GenerateStream streams the reply through onChunk and returns the complete
// text assembled from the deltas.
func (c *Client) GenerateStream(ctx context.Context, userMessage string, patient *entity.PatientContext, onChunk func(string)) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	stream, err := c.api.CreateChatCompletionStream(ctx, c.request(contextualPrompt(patient), userMessage, true))
	if err != nil {
		return "", fmt.Errorf("failed to open chat stream: %w", err)
	}
	defer stream.Close()

	var full strings.Builder
	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return full.String(), nil
		}
		if err != nil {
			return "", fmt.Errorf("chat stream error: %w", err)
		}

		if len(resp.Choices) == 0 {
			continue
		}
		content := resp.Choices[0].Delta.Content
		if content == "" {
			continue
		}
		full.WriteString(content)
		if onChunk != nil {
			onChunk(content)
		}
	}
}

// SimulateFamily answers one turn roleplaying the named family member.
func (c *Client) SimulateFamily(ctx context.Context, memberName, relationship, userMessage string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	counterpart := relationship
	if relationship == "filho" {
		counterpart = "pai/mãe"
	}
	prompt := fmt.Sprintf(familyPromptFormat, memberName, relationship, memberName, counterpart)

	resp, err := c.api.CreateChatCompletion(ctx, c.request(prompt, userMessage, false))
	if err != nil {
		return "", fmt.Errorf("family simulation failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("family simulation returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *Client) request(system, user string, stream bool) openai.ChatCompletionRequest {
	return openai.ChatCompletionRequest{
		Model:       c.config.Model,
		Temperature: float32(c.config.Temperature),
		MaxTokens:   c.config.MaxTokens,
		Stream:      stream,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	}
}

// contextualPrompt appends the optional patient context to the caregiver
// persona so replies can reference the patient's situation.
func contextualPrompt(patient *entity.PatientContext) string {
	if patient == nil {
		return systemPrompt
	}

	var b strings.Builder
	b.WriteString(systemPrompt)
	b.WriteString("\n\nContexto do paciente:\n")
	if patient.Name != "" {
		fmt.Fprintf(&b, "Nome: %s\n", patient.Name)
	}
	if patient.Age > 0 {
		fmt.Fprintf(&b, "Idade: %d anos\n", patient.Age)
	}
	if len(patient.HealthConditions) > 0 {
		fmt.Fprintf(&b, "Condições de saúde: %s\n", strings.Join(patient.HealthConditions, ", "))
	}
	if len(patient.Medications) > 0 {
		fmt.Fprintf(&b, "Medicamentos: %s\n", strings.Join(patient.Medications, ", "))
	}
	if patient.FamilyContext != "" {
		fmt.Fprintf(&b, "Contexto familiar: %s\n", patient.FamilyContext)
	}
	return b.String()
}
