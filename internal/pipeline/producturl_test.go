package pipeline

import "testing"

func TestLooksLikeProductURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want bool
	}{
		// 通常の商品ページ
		{"product detail path", "https://gashapon.jp/products/detail.php?jan_code=4570118335968", true},
		{"deep path", "https://takaratomy-arts.co.jp/items/gacha/12345", true},
		{"path with trailing slash", "https://kenelephant.co.jp/item/9999/", true},

		// スキーム
		{"ftp scheme", "ftp://gashapon.jp/products/1", false},
		{"mailto scheme", "mailto:info@gashapon.jp", false},

		// 拒否リスト: クエリ文字列に関係なく拒否される
		{"about page", "https://gashapon.jp/about", false},
		{"about with id query", "https://gashapon.jp/about?id=123", false},
		{"contact page", "https://stasto.co.jp/contact/", false},
		{"recruit page", "https://yell-world.jp/recruit", false},
		{"search page", "https://gashapon.jp/search?q=gacha", false},
		{"feed path", "https://kenelephant.co.jp/feed/", false},
		{"newsed index", "https://stasto.co.jp/newsed/2026", false},
		{"books section", "https://kenelephant.co.jp/books/1", false},
		{"vinyl section", "https://kenelephant.co.jp/vinyl/1", false},
		{"wp-admin", "https://stasto.co.jp/wp-admin/post.php?p=1", false},
		{"wp-content", "https://stasto.co.jp/wp-content/uploads/a.jpg", false},

		// ルートパス: ID系クエリパラメータがある場合のみ許可
		{"root without query", "https://gashapon.jp/", false},
		{"root no path no query", "https://gashapon.jp", false},
		{"root with p param", "https://stasto.co.jp/?p=12345", true},
		{"root with item param", "https://yell-world.jp/?item=777", true},
		{"root with product param", "https://gashapon.jp/?product=abc", true},
		{"root with id param", "https://gashapon.jp/?id=42", true},
		{"root with id at param boundary", "https://gashapon.jp/?page=2&id=42", true},
		{"root with unrelated query", "https://gashapon.jp/?utm_source=x", false},
		{"root with embedded id substring", "https://gashapon.jp/?grid=3", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LooksLikeProductURL(tt.url); got != tt.want {
				t.Errorf("LooksLikeProductURL(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}
