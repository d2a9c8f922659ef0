// =============================================================================
// liveness.go - URL到達性チェック
// =============================================================================
//
// 検索インデックスは実サイトより遅れるため、既に消えたページが「新商品」
// として出力されるのを防ぐ。判定結果は実行中キャッシュされ、同じURLへの
// 再プローブは行わない。
//
// =============================================================================
package pipeline

// LivenessChecker はURLの到達性を1回の実行の間メモ化しながら判定する
//
// キャッシュはURL→判定結果の単純なマップで、実行中に無効化されることはない。
// 並行アクセスは想定しない（パイプラインは逐次実行）。
type LivenessChecker struct {
	cfg   SourceConfig
	cache map[string]bool
}

// NewLivenessChecker は空のキャッシュを持つチェッカーを作る
func NewLivenessChecker(cfg SourceConfig) *LivenessChecker {
	return &LivenessChecker{
		cfg:   cfg,
		cache: map[string]bool{},
	}
}

// IsLive はURLが到達可能かを返す
//
// 【判定ルール】
//   - リダイレクト追従ありのGETを1回だけ発行（リトライなし）
//   - ステータスが [200, 400) の範囲なら到達可能
//   - 通信エラー（タイムアウト・DNS・TLS等）や範囲外ステータスは到達不能
//
// 同じURLの2回目以降はキャッシュから即座に返す。
func (lc *LivenessChecker) IsLive(rawURL string) bool {
	if cached, ok := lc.cache[rawURL]; ok {
		return cached
	}

	ok := false
	resp, err := httpGet(rawURL, lc.cfg)
	if err == nil {
		ok = resp.StatusCode >= 200 && resp.StatusCode < 400
		resp.Body.Close()
	}

	lc.cache[rawURL] = ok
	return ok
}
