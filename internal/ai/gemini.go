// Package ai generates itineraries directly with Gemini when the gateway is
// configured to bypass the backend's AI endpoint.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"tripwise/internal/apiclient"
	"tripwise/internal/domain/models"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultModel = "gemini-1.5-flash"

// GeminiGenerator asks Gemini for a JSON itinerary.
type GeminiGenerator struct {
	Client    *genai.Client
	ModelName string
}

// NewGeminiGenerator initializes the Gemini client.
func NewGeminiGenerator(ctx context.Context, apiKey, modelName string) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	if modelName == "" {
		modelName = defaultModel
	}
	return &GeminiGenerator{Client: client, ModelName: modelName}, nil
}

func (g *GeminiGenerator) Close() error {
	if g.Client == nil {
		return nil
	}
	return g.Client.Close()
}

// Generate ignores the caller's backend auth; quotas do not apply on this path.
func (g *GeminiGenerator) Generate(ctx context.Context, _ apiclient.Auth, req models.ItineraryRequest) (models.GeneratedItinerary, error) {
	model := g.Client.GenerativeModel(g.ModelName)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = itinerarySchema
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}

	res, err := model.GenerateContent(ctx, genai.Text(Prompt(req)))
	if err != nil {
		return models.GeneratedItinerary{}, fmt.Errorf("gemini generate: %w", err)
	}
	if len(res.Candidates) == 0 || res.Candidates[0].Content == nil {
		return models.GeneratedItinerary{}, fmt.Errorf("gemini returned no candidates")
	}

	var raw strings.Builder
	for _, part := range res.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			raw.WriteString(string(text))
		}
	}
	return Decode(req, raw.String())
}

const systemPrompt = `You are a Vietnamese travel planner. Answer with JSON only.
Every activity cost is in VND and a multiple of 1000. Keep the total cost near the budget.`

// Prompt renders the user prompt for a request.
func Prompt(req models.ItineraryRequest) string {
	return fmt.Sprintf(
		"Plan a %d-day trip to %s departing from %s on %s for %d people. Preferences: %s. Budget per person from %d VND.",
		req.Days, req.Destination, req.Departure, req.TravelDate, req.People,
		strings.Join(req.Preferences, ", "), req.Budget,
	)
}

type generatedDay struct {
	Day        int    `json:"day"`
	Title      string `json:"title"`
	Activities []struct {
		Time        string `json:"time"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Cost        int64  `json:"cost"`
	} `json:"activities"`
}

// Decode parses Gemini's JSON answer and numbers days and activities in order.
func Decode(req models.ItineraryRequest, raw string) (models.GeneratedItinerary, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimSuffix(strings.TrimPrefix(raw, "```"), "```")

	var payload struct {
		Plan []generatedDay `json:"plan"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &payload); err != nil {
		return models.GeneratedItinerary{}, fmt.Errorf("decode gemini itinerary: %w", err)
	}
	if len(payload.Plan) == 0 {
		return models.GeneratedItinerary{}, fmt.Errorf("gemini itinerary has no days")
	}

	out := models.GeneratedItinerary{
		Destination: req.Destination,
		TravelDate:  req.TravelDate,
		Days:        req.Days,
		Preferences: req.Preferences,
		Budget:      req.Budget,
		Plan:        make([]models.Day, 0, len(payload.Plan)),
	}
	for i, d := range payload.Plan {
		day := models.Day{DayNumber: i + 1, Title: d.Title}
		for j, a := range d.Activities {
			day.Activities = append(day.Activities, models.Activity{
				Order:       j + 1,
				Time:        a.Time,
				Title:       a.Title,
				Description: a.Description,
				Cost:        a.Cost,
			})
		}
		out.Plan = append(out.Plan, day)
	}
	return out, nil
}

var itinerarySchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"plan": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"day":   {Type: genai.TypeInteger},
					"title": {Type: genai.TypeString},
					"activities": {
						Type: genai.TypeArray,
						Items: &genai.Schema{
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"time":        {Type: genai.TypeString},
								"title":       {Type: genai.TypeString},
								"description": {Type: genai.TypeString},
								"cost":        {Type: genai.TypeInteger},
							},
							Required: []string{"title", "cost"},
						},
					},
				},
				Required: []string{"day", "activities"},
			},
		},
	},
	Required: []string{"plan"},
}
