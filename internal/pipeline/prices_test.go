package pipeline

import (
	"reflect"
	"testing"
)

func TestExtractPriceCandidates(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		minYen int
		maxYen int
		want   []int
	}{
		{
			name: "plain yen suffix",
			text: "カプセルトイ 400円",
			minYen: productPriceMin, maxYen: productPriceMax,
			want: []int{400},
		},
		{
			name: "yen sign prefix",
			text: "価格 ¥400",
			minYen: productPriceMin, maxYen: productPriceMax,
			want: []int{400},
		},
		{
			name: "fullwidth yen sign with comma",
			text: "￥1,500円",
			minYen: productPriceMin, maxYen: productPriceMax,
			want: []int{1500},
		},
		{
			name: "lower boundary included",
			text: "100円",
			minYen: productPriceMin, maxYen: productPriceMax,
			want: []int{100},
		},
		{
			name: "upper boundary included",
			text: "3000円",
			minYen: productPriceMin, maxYen: productPriceMax,
			want: []int{3000},
		},
		{
			name: "above range excluded",
			text: "3001円",
			minYen: productPriceMin, maxYen: productPriceMax,
			want: nil,
		},
		{
			name: "two digits never match",
			text: "99円",
			minYen: productPriceMin, maxYen: productPriceMax,
			want: nil,
		},
		{
			name: "appearance order preserved",
			text: "800円と1,200円のセット",
			minYen: productPriceMin, maxYen: productPriceMax,
			want: []int{800, 1200},
		},
		{
			name: "year followed by date marker skipped",
			text: "2026年3月15日発売 ¥400 ガシャポン",
			minYen: productPriceMin, maxYen: productPriceMax,
			want: []int{400},
		},
		{
			name: "dotted date not taken as price",
			text: "2026.3.15 500円",
			minYen: productPriceMin, maxYen: productPriceMax,
			want: []int{500},
		},
		{
			name: "resale range keeps high prices",
			text: "落札相場 45,000円",
			minYen: resalePriceMin, maxYen: resalePriceMax,
			want: []int{45000},
		},
		{
			name: "product range drops resale prices",
			text: "落札相場 45,000円",
			minYen: productPriceMin, maxYen: productPriceMax,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractPriceCandidates(tt.text, tt.minYen, tt.maxYen)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractPriceCandidates(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractPriceYen(t *testing.T) {
	price, ok := ExtractPriceYen("2026年3月15日発売 ¥400 ガシャポン")
	if !ok || price != 400 {
		t.Errorf("ExtractPriceYen() = (%d, %v), want (400, true)", price, ok)
	}

	if _, ok := ExtractPriceYen("発売日は未定です"); ok {
		t.Error("ExtractPriceYen() found a price in text without one")
	}

	// 最初の妥当な価格が勝つ
	price, ok = ExtractPriceYen("通常版500円 DX版1,200円")
	if !ok || price != 500 {
		t.Errorf("ExtractPriceYen() = (%d, %v), want (500, true)", price, ok)
	}
}
