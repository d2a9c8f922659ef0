// =============================================================================
// prices.go - 価格の抽出
// =============================================================================
package pipeline

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// 価格表現: 通貨記号（任意） + 桁区切りを含む数字列（3文字以上） + 円（任意）
// 例: "¥400" "400円" "1,500円" "￥12,800"
var rePrice = regexp.MustCompile(`[¥￥]?\s*([0-9][0-9,]{2,})\s*(?:円)?`)

// dateMarkers は数字列が日付の一部であることを示す後続文字
//
// "2026年3月15日" の "2026" はカプセルトイ価格帯 [100, 3000] に収まって
// しまうため、日付マーカーが直後に続く数字列は価格として扱わない。
const dateMarkers = "年月日./-"

// ExtractPriceCandidates はテキストから範囲内の価格を出現順に抽出する
//
// 桁区切りカンマを除去して整数に変換し、[minYen, maxYen] の範囲外は捨てる。
// 商品定価には productPriceMin/Max、中古相場には resalePriceMin/Max の
// レンジを使う（転売価格は定価レンジを大きく超えるため別レンジ）。
func ExtractPriceCandidates(text string, minYen, maxYen int) []int {
	var values []int
	for _, m := range rePrice.FindAllStringSubmatchIndex(text, -1) {
		if r, size := utf8.DecodeRuneInString(text[m[1]:]); size > 0 && strings.ContainsRune(dateMarkers, r) {
			continue
		}

		digits := strings.ReplaceAll(text[m[2]:m[3]], ",", "")
		price, err := strconv.Atoi(digits)
		if err != nil {
			// 桁あふれ等の不正な候補は捨てて続行
			continue
		}
		if price >= minYen && price <= maxYen {
			values = append(values, price)
		}
	}
	return values
}

// ExtractPriceYen は商品定価として妥当な最初の価格を返す
func ExtractPriceYen(text string) (int, bool) {
	candidates := ExtractPriceCandidates(text, productPriceMin, productPriceMax)
	if len(candidates) == 0 {
		return 0, false
	}
	return candidates[0], true
}
