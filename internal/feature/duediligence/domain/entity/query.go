// Package entity はduediligenceフィーチャーのドメインモデルを定義します。
package entity

// Query は外部検索APIに送信する1件の調査クエリを表します。
type Query struct {
	Slot int    // 結果の位置（1始まり、query1〜query3に対応）
	Text string // 企業名を埋め込んだ自然言語のクエリ
}
