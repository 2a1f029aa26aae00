package gemini

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"google.golang.org/genai"

	"duediligence_backend/internal/feature/duediligence/domain/entity"
	"duediligence_backend/internal/feature/duediligence/usecase"
)

// GeminiSearcher はGoogle Search grounding付きでGeminiにクエリを送信します。
// genaiクライアントは最初のSearch呼び出し時に生成します。
type GeminiSearcher struct {
	cfg        Config
	httpClient *http.Client

	once    sync.Once
	client  *genai.Client
	initErr error
}

// GeminiSearcherがWebSearcherを実装していることをコンパイル時に検証します。
var _ usecase.WebSearcher = (*GeminiSearcher)(nil)

// NewGeminiSearcher はGeminiSearcherの新しいインスタンスを生成します。
// APIキーは検証せず、未設定の場合は呼び出し時のエラーになります。
func NewGeminiSearcher(cfg Config, httpClient *http.Client) *GeminiSearcher {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	return &GeminiSearcher{cfg: cfg, httpClient: httpClient}
}

func (g *GeminiSearcher) getClient(ctx context.Context) (*genai.Client, error) {
	g.once.Do(func() {
		cc := &genai.ClientConfig{
			APIKey:     g.cfg.APIKey,
			Backend:    genai.BackendGeminiAPI,
			HTTPClient: g.httpClient,
		}
		if g.cfg.BaseURL != "" {
			cc.HTTPOptions.BaseURL = g.cfg.BaseURL
		}
		// クライアントは全リクエストで共有する
		client, err := genai.NewClient(context.WithoutCancel(ctx), cc)
		if err != nil {
			g.initErr = fmt.Errorf("failed to create gemini client: %w", err)
			return
		}
		g.client = client
	})
	return g.client, g.initErr
}

// Search はクエリを実行し、回答テキストと引用元をContentPartとして返します。
func (g *GeminiSearcher) Search(ctx context.Context, query string) ([]entity.ContentPart, error) {
	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	}
	client, err := g.getClient(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := client.Models.GenerateContent(ctx, g.cfg.Model, genai.Text(query), config)
	if err != nil {
		return nil, fmt.Errorf("gemini API request failed: %w", err)
	}
	return ExtractContent(resp)
}

// ExtractContent は回答テキストを1つのoutput_textにまとめ、
// groundingの参照元をurl_citationとして付与します。
// テキストが空の場合はusecase.ErrNoContentを返します。
func ExtractContent(resp *genai.GenerateContentResponse) ([]entity.ContentPart, error) {
	if resp == nil {
		return nil, usecase.ErrNoContent
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return nil, usecase.ErrNoContent
	}

	annotations := []entity.Annotation{}
	if c := resp.Candidates[0]; c.GroundingMetadata != nil {
		for _, chunk := range c.GroundingMetadata.GroundingChunks {
			if chunk == nil || chunk.Web == nil {
				continue
			}
			annotations = append(annotations, entity.Annotation{
				Type:  entity.AnnotationTypeURLCitation,
				Title: chunk.Web.Title,
				URL:   chunk.Web.URI,
			})
		}
	}

	return []entity.ContentPart{{
		Type:        entity.ContentTypeOutputText,
		Text:        text,
		Annotations: annotations,
	}}, nil
}
