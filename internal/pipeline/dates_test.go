package pipeline

import (
	"testing"
	"time"
)

// テスト共通の基準時刻（2026-02-27 12:00 JST）
var testNow = time.Date(2026, 2, 27, 12, 0, 0, 0, jst)

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, jst)
}

func TestExtractDateCandidates(t *testing.T) {
	tests := []struct {
		name string
		text string
		now  time.Time
		want []time.Time
	}{
		{
			name: "kanji date with year",
			text: "2026年3月15日発売予定",
			now:  testNow,
			want: []time.Time{date(2026, 3, 15)},
		},
		{
			name: "dotted date",
			text: "発売日: 2026.3.15",
			now:  testNow,
			want: []time.Time{date(2026, 3, 15)},
		},
		{
			name: "hyphenated date",
			text: "2026-3-15 登場",
			now:  testNow,
			want: []time.Time{date(2026, 3, 15)},
		},
		{
			name: "no double counting inside year match",
			text: "2026年3月15日",
			now:  testNow,
			want: []time.Time{date(2026, 3, 15)},
		},
		{
			name: "yearless assumes current year",
			text: "3月15日より順次発売",
			now:  testNow,
			want: []time.Time{date(2026, 3, 15)},
		},
		{
			name: "yearless rolls forward across year boundary",
			text: "1/15 発売",
			now:  time.Date(2026, 12, 20, 12, 0, 0, 0, jst),
			want: []time.Time{date(2027, 1, 15)},
		},
		{
			name: "invalid month discarded",
			text: "2026年13月9日",
			now:  testNow,
			want: nil,
		},
		{
			name: "invalid day discarded",
			text: "2026年2月30日",
			now:  testNow,
			want: nil,
		},
		{
			name: "multiple candidates in order",
			text: "2026年3月15日と2026年4月1日",
			now:  testNow,
			want: []time.Time{date(2026, 3, 15), date(2026, 4, 1)},
		},
		{
			name: "no dates",
			text: "ガシャポン新商品のお知らせ",
			now:  testNow,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractDateCandidates(tt.text, tt.now)
			if len(got) != len(tt.want) {
				t.Fatalf("ExtractDateCandidates(%q) = %v, want %v", tt.text, got, tt.want)
			}
			for i := range got {
				if !got[i].Equal(tt.want[i]) {
					t.Errorf("candidate[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSelectReleaseDate(t *testing.T) {
	tests := []struct {
		name       string
		candidates []time.Time
		want       time.Time
		wantOK     bool
	}{
		{
			name:   "no candidates",
			wantOK: false,
		},
		{
			name:       "single candidate in window",
			candidates: []time.Time{date(2026, 3, 15)},
			want:       date(2026, 3, 15),
			wantOK:     true,
		},
		{
			name:       "nearest to now wins",
			candidates: []time.Time{date(2026, 6, 1), date(2026, 3, 15)},
			want:       date(2026, 3, 15),
			wantOK:     true,
		},
		{
			name:       "recent past beats far future",
			candidates: []time.Time{date(2026, 9, 20), date(2026, 1, 15)},
			want:       date(2026, 1, 15),
			wantOK:     true,
		},
		{
			name:       "far past outside window ignored",
			candidates: []time.Time{date(2024, 1, 1), date(2026, 4, 1)},
			want:       date(2026, 4, 1),
			wantOK:     true,
		},
		{
			name:       "none in window falls back to latest",
			candidates: []time.Time{date(2024, 1, 1), date(2025, 5, 1)},
			want:       date(2025, 5, 1),
			wantOK:     true,
		},
		{
			name:       "only far future falls back to latest",
			candidates: []time.Time{date(2027, 12, 1)},
			want:       date(2027, 12, 1),
			wantOK:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SelectReleaseDate(tt.candidates, testNow)
			if ok != tt.wantOK {
				t.Fatalf("SelectReleaseDate() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("SelectReleaseDate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCivilDate(t *testing.T) {
	if _, ok := civilDate(2026, 2, 29, jst); ok {
		t.Error("civilDate accepted Feb 29 in a non-leap year")
	}
	if _, ok := civilDate(2028, 2, 29, jst); !ok {
		t.Error("civilDate rejected Feb 29 in a leap year")
	}
	if _, ok := civilDate(2026, 0, 10, jst); ok {
		t.Error("civilDate accepted month 0")
	}
}
