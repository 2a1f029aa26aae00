// Package dto はduediligenceフィーチャーのHTTPリクエスト/レスポンス型を定義します。
package dto

// DueDiligenceRequest はPOST /due-diligenceのリクエストボディです。
// JSONとURLエンコードされたフォームの両方を受け付けます。
type DueDiligenceRequest struct {
	CompanyName string `json:"companyName" form:"companyName" binding:"required"`
}
