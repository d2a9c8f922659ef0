package pipeline

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestSortReleases(t *testing.T) {
	releases := []ReleaseRecord{
		{Title: "い"},
		{Title: "B", ReleaseDate: strPtr("2026-03-15")},
		{Title: "あ"},
		{Title: "A", ReleaseDate: strPtr("2026-04-01")},
		{Title: "C", ReleaseDate: strPtr("2026-03-15")},
	}

	SortReleases(releases)

	var got []string
	for _, r := range releases {
		got = append(got, r.Title)
	}
	// 日付あり（新しい順、同日はタイトル降順）→ 日付なし（タイトル降順）
	want := []string{"A", "C", "B", "い", "あ"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SortReleases() order = %v, want %v", got, want)
	}
}

func TestSortPosts(t *testing.T) {
	posts := []SocialPost{
		{ID: "old", PostedAt: "2026-02-27T01:00:00Z"},
		{ID: "new", PostedAt: "2026-02-27T11:00:00Z"},
		{ID: "mid", PostedAt: "2026-02-27T06:00:00Z"},
	}

	SortPosts(posts)

	if posts[0].ID != "new" || posts[1].ID != "mid" || posts[2].ID != "old" {
		t.Errorf("SortPosts() order = [%s %s %s], want [new mid old]", posts[0].ID, posts[1].ID, posts[2].ID)
	}
}

func TestSavePayloadFanOut(t *testing.T) {
	root := t.TempDir()
	seed := SeedReleases()

	SavePayload(root, ReleasesFileName, seed)

	for _, dir := range DefaultOutputDirs {
		path := filepath.Join(root, dir, ReleasesFileName)
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected output at %s: %v", path, err)
		}
	}

	got := ReadPreviousReleases(root)
	if !reflect.DeepEqual(got, seed) {
		t.Errorf("round trip mismatch: got %+v", got)
	}
}

func TestReadPreviousReleasesMissing(t *testing.T) {
	if got := ReadPreviousReleases(t.TempDir()); got != nil {
		t.Errorf("ReadPreviousReleases() = %v, want nil for missing file", got)
	}
}

func TestFallbackReleases(t *testing.T) {
	current := []ReleaseRecord{{ID: "rel_current"}}
	previous := []ReleaseRecord{{ID: "rel_previous"}}

	if got := FallbackReleases(current, previous); got[0].ID != "rel_current" {
		t.Errorf("non-empty current should win, got %s", got[0].ID)
	}
	if got := FallbackReleases(nil, previous); got[0].ID != "rel_previous" {
		t.Errorf("previous should win over seed, got %s", got[0].ID)
	}
	if got := FallbackReleases(nil, nil); len(got) == 0 || got[0].ID != "rel_seed_bandai" {
		t.Errorf("seed expected as last resort, got %+v", got)
	}
}

func TestFallbackPosts(t *testing.T) {
	if got := FallbackPosts(nil, nil); len(got) == 0 || got[0].ID != "x_seed_1" {
		t.Errorf("seed expected as last resort, got %+v", got)
	}
	previous := []SocialPost{{ID: "x_previous"}}
	if got := FallbackPosts(nil, previous); got[0].ID != "x_previous" {
		t.Errorf("previous should win over seed, got %s", got[0].ID)
	}
}

func TestSeedDataConsistency(t *testing.T) {
	for _, r := range SeedReleases() {
		for _, m := range r.MarketPrices {
			if m.SampleCount < 1 {
				t.Errorf("seed %s: SampleCount = %d, want >= 1", r.ID, m.SampleCount)
			}
			if m.MinPriceYen > m.MedianPriceYen || m.MedianPriceYen > m.MaxPriceYen {
				t.Errorf("seed %s: price ordering violated: %d/%d/%d",
					r.ID, m.MinPriceYen, m.MedianPriceYen, m.MaxPriceYen)
			}
		}
	}
}
