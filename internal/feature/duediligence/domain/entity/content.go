package entity

// ContentPart は外部APIの回答から抽出したコンテンツの1要素です。
type ContentPart struct {
	Type        string       `json:"type"`
	Text        string       `json:"text"`
	Annotations []Annotation `json:"annotations"`
}

// Annotation は回答テキストに付与された引用情報です。
type Annotation struct {
	Type       string `json:"type"`
	Title      string `json:"title,omitempty"`
	URL        string `json:"url,omitempty"`
	StartIndex int64  `json:"start_index"`
	EndIndex   int64  `json:"end_index"`
}

const (
	// ContentTypeOutputText はテキスト回答を表すContentPart.Typeです。
	ContentTypeOutputText = "output_text"
	// AnnotationTypeURLCitation はWeb検索結果への引用を表すAnnotation.Typeです。
	AnnotationTypeURLCitation = "url_citation"
)
