// Package handler はduediligenceフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"duediligence_backend/internal/feature/duediligence/domain/entity"
	"duediligence_backend/internal/feature/duediligence/transport/http/dto"
	"duediligence_backend/internal/feature/duediligence/usecase"
)

const (
	// MsgMissingCompanyName は企業名が無い場合のエラーメッセージです。
	MsgMissingCompanyName = "Falta el nombre de la empresa en el formulario."
	// MsgServerError は予期しない失敗時の汎用エラーメッセージです。
	MsgServerError = "Error en el servidor."
)

// DueDiligenceUsecase はデューデリジェンス調査のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type DueDiligenceUsecase interface {
	Run(ctx context.Context, companyName string) (*entity.Report, error)
}

// DueDiligenceHandler はデューデリジェンスのHTTPリクエストを処理します。
type DueDiligenceHandler struct {
	uc DueDiligenceUsecase
}

// NewDueDiligenceHandler はDueDiligenceHandlerの新しいインスタンスを生成します。
func NewDueDiligenceHandler(uc DueDiligenceUsecase) *DueDiligenceHandler {
	return &DueDiligenceHandler{uc: uc}
}

// Create は企業名を受け取り、3件の調査結果をまとめて返します。
//
// エンドポイント: POST /due-diligence
// Content-Type: application/json または application/x-www-form-urlencoded
func (h *DueDiligenceHandler) Create(c *gin.Context) {
	var req dto.DueDiligenceRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Warn("due diligenceリクエストのバリデーションに失敗", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: MsgMissingCompanyName})
		return
	}

	report, err := h.uc.Run(c.Request.Context(), req.CompanyName)
	if errors.Is(err, usecase.ErrCompanyNameRequired) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: MsgMissingCompanyName})
		return
	}
	if err != nil {
		// 原因はログにのみ出力し、クライアントには返さない
		slog.Error("Error en /due-diligence", "error", err, "company", req.CompanyName)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: MsgServerError})
		return
	}

	c.JSON(http.StatusOK, dto.NewDueDiligenceResponse(report))
}
