package usecase

import "errors"

var (
	// ErrCompanyNameRequired は企業名が空の場合に返されます。
	ErrCompanyNameRequired = errors.New("company name is required")
	// ErrNoContent はWebSearcherが回答からコンテンツを抽出できなかった場合に返します。
	// このエラーは該当スロットのみをプレースホルダーに置き換えます。
	ErrNoContent = errors.New("no extractable content in response")
	// ErrDueDiligenceFailed は調査全体が失敗した場合に返されます。
	ErrDueDiligenceFailed = errors.New("due diligence failed")
)
