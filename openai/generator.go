// Package openai implements summary generation over an OpenAI-compatible
// chat-completion service.
package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pjbackcoding/profilepulse"
	openai "github.com/sashabaranov/go-openai"
)

// DefaultModel is the completion model used when none is configured.
const DefaultModel = "gpt-4o-mini"

// Fixed request parameters. The summary is short by design, so a tight
// output budget keeps the round trip cheap.
const (
	maxTokens   = 220
	temperature = 0.7
)

// ChatClient is the minimal chat-completion surface this package needs.
// It mirrors the CreateChatCompletion method of *openai.Client so tests
// can stub the backend and any OpenAI-compatible service can be plugged in.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// NewClient builds the real API client from a static credential. A
// non-empty baseURL overrides the service endpoint, which is how local
// OpenAI-compatible backends are reached.
func NewClient(apiKey, baseURL string) *openai.Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(cfg)
}

// Ensure Generator implements profilepulse.Generator at compile time.
var _ profilepulse.Generator = (*Generator)(nil)

// Generator produces profile summaries through a chat-completion service.
// It issues exactly one request per profile; retrying is the caller's
// decision, not this package's.
type Generator struct {
	client ChatClient
	model  string
}

// NewGenerator creates a new Generator. An empty model selects
// DefaultModel.
func NewGenerator(client ChatClient, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: client, model: model}
}

// Generate formats the profile into a single prompt, issues one completion
// request, and returns the trimmed first choice. Service failures surface
// as EUNAVAILABLE carrying the service's own message; a response with no
// choices is EINTERNAL.
func (g *Generator) Generate(ctx context.Context, profile *profilepulse.Profile) (string, error) {
	if profile == nil {
		return "", profilepulse.Errorf(profilepulse.EINVALID, "profile required")
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: BuildPrompt(profile)},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", profilepulse.Errorf(profilepulse.EUNAVAILABLE, "completion request failed: %s", apiErr.Message)
		}
		return "", profilepulse.Errorf(profilepulse.EUNAVAILABLE, "completion request failed: %v", err)
	}
	if len(resp.Choices) == 0 {
		return "", profilepulse.Errorf(profilepulse.EINTERNAL, "completion returned no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// BuildPrompt embeds the extracted fragments verbatim under fixed labels
// and asks for a short French summary.
func BuildPrompt(profile *profilepulse.Profile) string {
	var sb strings.Builder
	sb.WriteString("Voici les informations extraites d'un profil professionnel.\n\n")
	fmt.Fprintf(&sb, "Nom : %s\n", profile.Name)
	fmt.Fprintf(&sb, "Titre : %s\n\n", profile.TitleLine)
	fmt.Fprintf(&sb, "Formation :\n%s\n\n", profile.Education)
	fmt.Fprintf(&sb, "Expérience :\n%s\n\n", profile.Experience)
	sb.WriteString("Rédige en français un résumé de 3 à 4 phrases de ce profil : ")
	sb.WriteString("poste actuel, ancienneté dans ce poste, et une interprétation du parcours de formation.")
	return sb.String()
}
