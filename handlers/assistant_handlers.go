package handlers

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"app/analytics"

	"github.com/gofiber/fiber/v2"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// HandleAssistantAsk answers a free-form question about the store data
// using the Gemini API, grounding the prompt in the current analytics.
// POST /api/assistant/ask
func HandleAssistantAsk(c *fiber.Ctx) error {
	var body struct {
		Question string `json:"question"`
	}
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Cannot parse JSON")
	}
	if strings.TrimSpace(body.Question) == "" {
		return badRequest(c, "question is required")
	}

	ctx := context.Background()

	dataContext, err := buildAssistantContext(ctx)
	if err != nil {
		log.Printf("Error building assistant context: %v", err)
		return serverError(c, "Failed to load store data")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(os.Getenv("GEMINI_API_KEY")))
	if err != nil {
		log.Printf("Error creating Gemini client: %v", err)
		return serverError(c, "Failed to initialize assistant")
	}
	defer client.Close()

	prompt := fmt.Sprintf(`As an assistant for a convenience store analytics dashboard, answer the following question:

%s

Here is the current state of the stores:
%s

Reply in a helpful, concise manner focusing on insights rather than raw numbers.`, body.Question, dataContext)

	model := client.GenerativeModel("gemini-1.5-pro-latest")
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Printf("Error generating assistant response: %v", err)
		return serverError(c, "Failed to generate answer")
	}

	var answer strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				answer.WriteString(string(text))
			}
		}
	}

	return c.JSON(fiber.Map{"status": "success", "data": fiber.Map{"answer": answer.String()}})
}

// buildAssistantContext summarizes the latest health scores and alerts into
// prompt text.
func buildAssistantContext(ctx context.Context) (string, error) {
	health, err := fetchHealth(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	latest := analytics.LatestHealthByStore(health)
	if len(latest) == 0 {
		b.WriteString("No health data has been recorded yet.")
		return b.String(), nil
	}

	b.WriteString("Latest per-store health scores (0-100):\n")
	for _, r := range latest {
		fmt.Fprintf(&b, "- %s: overall %.1f (theft %.1f, rewards %.1f, traffic %.1f, employee %.1f)",
			r.StoreName, r.OverallHealth, r.TheftScore, r.RewardsScore, r.TrafficScore, r.EmployeeScore)
		if len(r.Alerts) > 0 {
			fmt.Fprintf(&b, "; alerts: %s", strings.Join(r.Alerts, ", "))
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}
