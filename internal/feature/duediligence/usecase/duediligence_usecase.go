// Package usecase はduediligenceフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"duediligence_backend/internal/feature/duediligence/domain/entity"
)

// queryTemplates は調査クエリのテンプレートです。順序がquery1〜query3に対応します。
var queryTemplates = [3]string{
	"Is %s a legitimate company",
	"Reviews of %s",
	"Legal issues related to %s",
}

// PlaceholderErrorFormat は抽出に失敗したスロットに返すメッセージです。
const PlaceholderErrorFormat = "No se pudo completar la consulta: %s"

// WebSearcher は検索拡張型のテキスト生成APIを抽象化するインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type WebSearcher interface {
	// Search はクエリをWeb検索付きで実行し、回答のコンテンツを返します。
	// 回答から内容を取り出せない場合はErrNoContentを返します。
	Search(ctx context.Context, query string) ([]entity.ContentPart, error)
}

// dueDiligenceUsecase は企業のデューデリジェンス調査を実行します。
type dueDiligenceUsecase struct {
	searcher WebSearcher
}

// NewDueDiligenceUsecase はdueDiligenceUsecaseの新しいインスタンスを生成します。
func NewDueDiligenceUsecase(s WebSearcher) *dueDiligenceUsecase {
	return &dueDiligenceUsecase{searcher: s}
}

// BuildQueries は企業名を埋め込んだ3件のクエリを固定順で生成します。
func BuildQueries(companyName string) [3]entity.Query {
	var qs [3]entity.Query
	for i, tmpl := range queryTemplates {
		qs[i] = entity.Query{Slot: i + 1, Text: fmt.Sprintf(tmpl, companyName)}
	}
	return qs
}

// Run は3件のクエリを並行に実行し、位置順にまとめた結果を返します。
//
// 1件の抽出失敗はそのスロットだけをプレースホルダーにします。
// それ以外のエラーは残りの呼び出しをキャンセルし、ErrDueDiligenceFailedとして返します。
func (u *dueDiligenceUsecase) Run(ctx context.Context, companyName string) (*entity.Report, error) {
	if companyName == "" {
		return nil, ErrCompanyNameRequired
	}

	report := &entity.Report{CompanyName: companyName}
	g, gctx := errgroup.WithContext(ctx)

	for i, q := range BuildQueries(companyName) {
		// 各goroutineは自分のスロットだけに書き込む
		g.Go(func() error {
			content, err := u.searcher.Search(gctx, q.Text)
			switch {
			case err == nil && len(content) > 0:
				report.Results[i] = entity.QueryResult{Query: q, Content: content}
			case err == nil, errors.Is(err, ErrNoContent):
				slog.Warn("query returned no content", "slot", q.Slot, "query", q.Text)
				report.Results[i] = entity.QueryResult{
					Query: q,
					Error: fmt.Sprintf(PlaceholderErrorFormat, q.Text),
				}
			default:
				return fmt.Errorf("query%d %q: %w", q.Slot, q.Text, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		slog.Error("Error al realizar due diligence", "company", companyName, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrDueDiligenceFailed, err)
	}
	return report, nil
}
