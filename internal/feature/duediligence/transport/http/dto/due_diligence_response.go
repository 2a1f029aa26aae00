package dto

import (
	"encoding/json"

	"duediligence_backend/internal/feature/duediligence/domain/entity"
)

// ErrorResponse はエラー時のレスポンスボディです。
type ErrorResponse struct {
	Error string `json:"error"`
}

// DueDiligenceResponse は成功時のレスポンスボディです。
type DueDiligenceResponse struct {
	Analysis AnalysisResponse `json:"analysis"`
}

// AnalysisResponse は3件のクエリ結果を位置順に保持します。
type AnalysisResponse struct {
	Query1 QueryResultResponse `json:"query1"`
	Query2 QueryResultResponse `json:"query2"`
	Query3 QueryResultResponse `json:"query3"`
}

// QueryResultResponse は抽出したコンテンツ配列、またはプレースホルダー{"error": ...}としてシリアライズされます。
type QueryResultResponse struct {
	Content []entity.ContentPart
	Error   string
}

// MarshalJSON はスロットの状態に応じてJSONの形を切り替えます。
func (r QueryResultResponse) MarshalJSON() ([]byte, error) {
	if r.Error != "" {
		return json.Marshal(ErrorResponse{Error: r.Error})
	}
	// nilスライスをnullではなく[]として出力する
	content := make([]entity.ContentPart, 0, len(r.Content))
	for _, p := range r.Content {
		if p.Annotations == nil {
			p.Annotations = []entity.Annotation{}
		}
		content = append(content, p)
	}
	return json.Marshal(content)
}

// NewDueDiligenceResponse はドメインのReportをレスポンスDTOに変換します。
func NewDueDiligenceResponse(r *entity.Report) DueDiligenceResponse {
	conv := func(qr entity.QueryResult) QueryResultResponse {
		return QueryResultResponse{Content: qr.Content, Error: qr.Error}
	}
	return DueDiligenceResponse{
		Analysis: AnalysisResponse{
			Query1: conv(r.Results[0]),
			Query2: conv(r.Results[1]),
			Query3: conv(r.Results[2]),
		},
	}
}
