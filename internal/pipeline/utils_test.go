package pipeline

import "testing"

func TestCleanText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  ガシャポン   新商品  ", "ガシャポン 新商品"},
		{"改行\nタブ\tも\t\n正規化", "改行 タブ も 正規化"},
		{"", ""},
		{"   ", ""},
		{"そのまま", "そのまま"},
	}

	for _, tt := range tests {
		if got := CleanText(tt.in); got != tt.want {
			t.Errorf("CleanText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildID(t *testing.T) {
	// ハッシュ方式は過去出力とのID互換契約。この期待値が変わる変更は互換を壊す。
	if got := buildID("rel", "abc"); got != "rel_900150983cd2" {
		t.Errorf("buildID(rel, abc) = %q, want rel_900150983cd2", got)
	}

	a := buildID("x", "https://x.com/u/status/1")
	b := buildID("x", "https://x.com/u/status/1")
	c := buildID("x", "https://x.com/u/status/2")
	if a != b {
		t.Error("same value produced different IDs")
	}
	if a == c {
		t.Error("different values produced the same ID")
	}
}

func TestInferSeries(t *testing.T) {
	tests := []struct {
		text   string
		want   string
		wantOK bool
	}{
		{"サンリオキャラクターズ 新作", "サンリオ", true},
		{"ちいかわ むちゃうまみるくまんじゅう", "ちいかわ", true},
		{"ちいかわとサンリオのコラボ", "サンリオ", true}, // リスト先頭が優先
		{"オリジナルキャラクターのガチャ", "", false},
	}

	for _, tt := range tests {
		got, ok := InferSeries(tt.text)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("InferSeries(%q) = (%q, %v), want (%q, %v)", tt.text, got, ok, tt.want, tt.wantOK)
		}
	}
}
