package openai

import (
	"context"
	"fmt"
	"net/http"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"
	"github.com/openai/openai-go/v3/shared"

	"duediligence_backend/internal/feature/duediligence/domain/entity"
	"duediligence_backend/internal/feature/duediligence/usecase"
)

// OpenAISearcher runs queries through the Responses API with web search enabled.
type OpenAISearcher struct {
	client openai.Client
	model  string
}

// OpenAISearcherがWebSearcherを実装していることをコンパイル時に検証します。
var _ usecase.WebSearcher = (*OpenAISearcher)(nil)

// NewOpenAISearcher creates an OpenAISearcher. SDK retries are disabled so every
// query is sent exactly once.
func NewOpenAISearcher(cfg Config, httpClient *http.Client) *OpenAISearcher {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	return &OpenAISearcher{client: openai.NewClient(opts...), model: model}
}

// Search sends one query and extracts the content of the assistant message.
func (s *OpenAISearcher) Search(ctx context.Context, query string) ([]entity.ContentPart, error) {
	params := responses.ResponseNewParams{
		Model: shared.ResponsesModel(s.model),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: openai.String(query),
		},
		Tools: []responses.ToolUnionParam{
			responses.ToolParamOfWebSearchPreview(responses.WebSearchPreviewToolTypeWebSearchPreview),
		},
	}

	resp, err := s.client.Responses.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai responses request failed: %w", err)
	}
	return ExtractContent(resp)
}

// ExtractContent returns the content parts of the first assistant message in
// the response output. The web search call item usually precedes the message,
// but its position is not relied on. Returns usecase.ErrNoContent when no
// message with content exists.
func ExtractContent(resp *responses.Response) ([]entity.ContentPart, error) {
	if resp == nil {
		return nil, usecase.ErrNoContent
	}
	for _, item := range resp.Output {
		if item.Type != "message" || len(item.Content) == 0 {
			continue
		}
		parts := make([]entity.ContentPart, 0, len(item.Content))
		for _, c := range item.Content {
			text := c.Text
			if c.Type == "refusal" {
				text = c.Refusal
			}
			parts = append(parts, entity.ContentPart{
				Type:        c.Type,
				Text:        text,
				Annotations: toAnnotations(c.Annotations),
			})
		}
		return parts, nil
	}
	return nil, usecase.ErrNoContent
}

func toAnnotations(in []responses.ResponseOutputTextAnnotationUnion) []entity.Annotation {
	out := make([]entity.Annotation, 0, len(in))
	for _, a := range in {
		out = append(out, entity.Annotation{
			Type:       a.Type,
			Title:      a.Title,
			URL:        a.URL,
			StartIndex: a.StartIndex,
			EndIndex:   a.EndIndex,
		})
	}
	return out
}
