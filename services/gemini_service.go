package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/aishwaryacr5/Taste-perception/models"
)

const geminiURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash:generateContent"

// GeminiService generates free-text responses: meal suggestions for an
// analyzed food, or a direct answer when the user only typed a prompt.
// Pure pass-through; nothing downstream depends on the shape of the text.
type GeminiService struct {
	apiKey string
	url    string
	client *http.Client
}

func NewGeminiService() *GeminiService {
	return &GeminiService{
		apiKey: os.Getenv("GOOGLE_API_KEY"),
		url:    geminiURL,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Generate sends one prompt and returns the first candidate's text.
func (g *GeminiService) Generate(prompt string) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("GOOGLE_API_KEY not set")
	}

	reqBody := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	}
	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal gemini payload: %w", err)
	}

	req, err := http.NewRequest("POST", fmt.Sprintf("%s?key=%s", g.url, g.apiKey), bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request error: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read gemini response error: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini api error (%d): %s", resp.StatusCode, string(body))
	}

	var out geminiResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("decode gemini response error: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from gemini")
	}
	return strings.TrimSpace(out.Candidates[0].Content.Parts[0].Text), nil
}

// MealSuggestions asks for alternatives that fit the user's dietary context.
func (g *GeminiService) MealSuggestions(n *models.NutritionRecord, userPrompt string) (string, error) {
	summary, err := json.Marshal(n)
	if err != nil {
		return "", fmt.Errorf("failed to marshal nutrition summary: %w", err)
	}

	var sb bytes.Buffer
	sb.WriteString("The user has uploaded a food item with the following nutrition:\n\n")
	sb.Write(summary)
	sb.WriteString(fmt.Sprintf("\n\nUser's message: %q\n\n", userPrompt))
	sb.WriteString("Please provide meal suggestions or healthy alternatives based on the user's dietary needs or preferences.")

	return g.Generate(sb.String())
}
