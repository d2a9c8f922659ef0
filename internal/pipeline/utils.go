// =============================================================================
// utils.go - ユーティリティ関数
// =============================================================================
//
// このファイルはシステム全体で使用する汎用的なヘルパー関数を提供します。
//
// 【このファイルで提供する機能】
//   - 文字列操作: 空白正規化、ID導出
//   - JSON操作: ファイル読み書き
//   - ログ出力: 警告・情報メッセージの出力
//   - HTTP操作: User-Agent付きGET
//
// =============================================================================
package pipeline

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// -----------------------------------------------------------------------------
// 文字列操作関数
// -----------------------------------------------------------------------------

// CleanText は文字列内の連続する空白を単一スペースに正規化する
//
// 使用例:
//
//	CleanText("  ガシャポン   新商品  ")  // "ガシャポン 新商品"
//
// 【処理の流れ】
//  1. strings.Fields: 空白で分割してスライスに（連続空白は無視される）
//  2. strings.Join: スペースで再結合
func CleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// buildID は値のMD5ハッシュ先頭12桁からIDを導出する
//
// 同じ値からは毎回同じIDが生成される（実行をまたいでも安定）。
// 過去に出力したJSONとのID互換を保つため、ハッシュ方式は変更しないこと。
//
// 使用例:
//
//	buildID("rel", "https://gashapon.jp/products/detail.php?id=1")
//	// => "rel_xxxxxxxxxxxx"
func buildID(prefix, value string) string {
	sum := md5.Sum([]byte(value))
	return prefix + "_" + hex.EncodeToString(sum[:])[:12]
}

// -----------------------------------------------------------------------------
// JSON操作関数
// -----------------------------------------------------------------------------

// writeJSONFile は任意のデータをJSON形式でファイルに保存する
//
// 【ファイル権限】0o644 = 所有者は読み書き可、他は読み取りのみ
func writeJSONFile(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// readJSONFile はJSONファイルを読み込んで指定した型に変換する
//
// 引数:
//
//	path: 読み込むファイルパス
//	out:  変換先の変数（ポインタで渡す必要がある）
func readJSONFile(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

// -----------------------------------------------------------------------------
// ログ出力関数
// -----------------------------------------------------------------------------

// warnf は警告メッセージを標準エラー出力に書き出す
//
// 【なぜ標準エラー出力を使うか】
//
//	標準出力（stdout）は実行結果の件数報告に使用するため、
//	途中経過のログは標準エラー出力（stderr）に出力する
func warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "WARN: "+format+"\n", args...)
}

// infof は情報メッセージを標準エラー出力に書き出す
func infof(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "INFO: "+format+"\n", args...)
}

// -----------------------------------------------------------------------------
// HTTP操作関数
// -----------------------------------------------------------------------------

// httpGet は共有クライアントでUser-Agent付きのGETリクエストを実行する
//
// 呼び出し元で resp.Body.Close() を行う必要がある。
// ステータスコードの判定も呼び出し元の責務（liveness判定では3xxも成功扱い
// になるため、ここでは判定しない）。
func httpGet(rawURL string, cfg SourceConfig) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("request creation failed: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)
	return cfg.Client.Do(req)
}

// fetchHTML はページを取得して本文を文字列で返す
//
// 2xx以外のステータスはエラー扱い。検索結果ページやリアルタイム検索の
// 取得に使用する。失敗は呼び出し元で「その作業単位をスキップ」する。
func fetchHTML(rawURL string, cfg SourceConfig) (string, error) {
	resp, err := httpGet(rawURL, cfg)
	if err != nil {
		return "", fmt.Errorf("fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body failed: %w", err)
	}
	return string(b), nil
}
