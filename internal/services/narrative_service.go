package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"lankatrip/internal/models/response_models"
)

// NarrativeServiceInterface produces a short free-text summary of an
// assembled plan. Implementations fail soft: any provider problem yields an
// empty narrative, never an error surfaced to the planner.
type NarrativeServiceInterface interface {
	SummarizePlan(ctx context.Context, plan *response_models.PlanResponse) string
}

type OpenAINarrativeService struct {
	client *openai.Client
}

func NewOpenAINarrativeService(apiKey string) NarrativeServiceInterface {
	if apiKey == "" {
		return &OpenAINarrativeService{}
	}
	return &OpenAINarrativeService{client: openai.NewClient(apiKey)}
}

func (s *OpenAINarrativeService) SummarizePlan(ctx context.Context, plan *response_models.PlanResponse) string {
	if s.client == nil || plan == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Write a short, friendly two-sentence summary of this %d-day Sri Lanka itinerary starting from %s.\n", plan.TotalDays, plan.StartFrom)
	for _, day := range plan.Plan {
		if len(day.Places) == 0 {
			continue
		}
		names := make([]string, 0, len(day.Places))
		for _, place := range day.Places {
			names = append(names, place.Name)
		}
		fmt.Fprintf(&b, "Day %d: %s\n", day.Day, strings.Join(names, ", "))
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4oMini,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: b.String()},
		},
		MaxTokens: 200,
	})
	if err != nil || len(resp.Choices) == 0 {
		log.Printf("narrative: summary generation failed: %v", err)
		return ""
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content)
}
