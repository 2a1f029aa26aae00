// Package gemini はGoogle Search groundingを有効にしたGemini APIのWebSearcherを提供します。
package gemini

import "os"

// DefaultModel はGemini APIのデフォルトモデルです。
const DefaultModel = "gemini-2.5-flash"

// Config はGeminiクライアントの設定を保持します。
type Config struct {
	APIKey  string // Gemini APIキー
	BaseURL string // エンドポイントの上書き（任意）
	Model   string // モデル名
}

// LoadConfig は環境変数からGeminiの設定を読み込みます。
func LoadConfig() Config {
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = DefaultModel
	}
	return Config{
		APIKey:  os.Getenv("GEMINI_API_KEY"),
		BaseURL: os.Getenv("GEMINI_BASE_URL"),
		Model:   model,
	}
}
