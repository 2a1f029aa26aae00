// Package http は外部API呼び出し用のHTTPクライアントを提供します。
package http

import (
	"log/slog"
	"net"
	"net/http"
	"time"
)

// NewHTTPClient は外部API呼び出し用に設定されたHTTPクライアントを作成します。
//
// 設定:
//   - Dialer.Timeout: TCP接続タイムアウト
//   - MaxIdleConnsPerHost: 1リクエストあたり3並列で同一ホストを叩くため既定値(2)より大きくする
//   - Client.Timeout: リクエスト全体のタイムアウト（0以下なら無制限）
//   - Transport: 送信リクエストをslogでトレースするtracingTransportでラップ
//
// 注意:
//   - http.DefaultClientにはタイムアウトがないため、常にこのクライアントを使用すること
func NewHTTPClient(timeout time.Duration, component string) *http.Client {
	base := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 16,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	if timeout < 0 {
		timeout = 0
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: &tracingTransport{next: base, component: component},
	}
}

// tracingTransport は送信リクエストの結果と所要時間をログに出力します。
type tracingTransport struct {
	next      http.RoundTripper
	component string
}

// RoundTrip はhttp.RoundTripperを実装します。
func (t *tracingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	log := slog.With(
		"component", t.component,
		"request_method", req.Method,
		"request_host", req.URL.Host,
		"request_path", req.URL.Path,
	)
	log.Debug("Dispatching outbound request")

	resp, err := t.next.RoundTrip(req)
	elapsed := time.Since(start).Milliseconds()
	if err != nil {
		log.Error("Outbound request failed", "error", err, "duration_ms", elapsed)
		return nil, err
	}

	if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
		log.Warn("Outbound response error", "status_code", resp.StatusCode, "duration_ms", elapsed)
	} else {
		log.Debug("Outbound response", "status_code", resp.StatusCode, "duration_ms", elapsed)
	}
	return resp, nil
}
