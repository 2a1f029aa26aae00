package entity

// QueryResult は1スロット分の調査結果です。
// 抽出に成功した場合はContent、失敗した場合はErrorが設定されます。
type QueryResult struct {
	Query   Query
	Content []ContentPart
	Error   string
}

// Failed はこのスロットがプレースホルダーかどうかを返します。
func (r QueryResult) Failed() bool {
	return r.Error != ""
}

// Report は3件のクエリ結果を位置順にまとめたものです。
type Report struct {
	CompanyName string
	Results     [3]QueryResult
}
