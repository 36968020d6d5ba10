package enrich

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	defaultLLMBaseURL = "https://api.openai.com/v1"
	defaultLLMModel   = "gpt-4o-mini"
)

const promptTemplate = `You are a transit data expert for Tanzania. Find and provide realistic bus and train schedule information for travel from %s to %s in Tanzania.

Based on known Tanzanian transport operators and typical schedules, provide:
1. Bus operators that serve this route (e.g., Kilimanjaro Express, Dar Express, Tahmeed Coach, Sumry Bus)
2. Train operators if applicable (TAZARA, TRC, SGR)
3. Typical departure times
4. Approximate prices in Tanzanian Shillings
5. Service frequency

Format your response as a JSON array of routes with this structure:
[
  {
    "operator": "Operator Name",
    "departure": "HH:MM",
    "price": "TZS XXXXX",
    "frequency": "Daily service"
  }
]

Only include operators and routes that actually exist or are likely to exist for this route. If no direct service exists, return an empty array.`

// LLMSource consulta una API compatible con chat completions
type LLMSource struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewLLMSource crea el cliente usando ENRICH_API_URL, ENRICH_API_KEY y ENRICH_MODEL
func NewLLMSource() *LLMSource {
	return NewLLMSourceWith(os.Getenv("ENRICH_API_URL"), os.Getenv("ENRICH_API_KEY"), os.Getenv("ENRICH_MODEL"))
}

// NewLLMSourceWith crea el cliente con parámetros explícitos (vacíos = defaults)
func NewLLMSourceWith(baseURL, apiKey, model string) *LLMSource {
	if baseURL == "" {
		baseURL = defaultLLMBaseURL
	}
	if model == "" {
		model = defaultLLMModel
	}

	return &LLMSource{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		// El límite real lo pone el contexto del Enricher
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (s *LLMSource) Name() string { return "llm" }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Prompt retorna el texto enviado al modelo para un par origen-destino
func Prompt(origin, destination string) string {
	return fmt.Sprintf(promptTemplate, origin, destination)
}

// Generate envía el prompt y retorna el contenido de la primera respuesta
func (s *LLMSource) Generate(ctx context.Context, origin, destination string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model:       s.model,
		Messages:    []chatMessage{{Role: "user", Content: Prompt(origin, destination)}},
		Temperature: 0.2,
	})
	if err != nil {
		return "", fmt.Errorf("error encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error calling LLM: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		snippet := string(body)
		if len(snippet) > 200 {
			snippet = snippet[:200]
		}
		return "", fmt.Errorf("LLM returned status %d: %s", resp.StatusCode, snippet)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("error decoding response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("LLM response without choices")
	}

	return parsed.Choices[0].Message.Content, nil
}
