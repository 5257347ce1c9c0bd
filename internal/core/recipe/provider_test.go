package recipe

import (
	"context"
	"errors"
	"strings"
	"testing"

	"restaurant-assistant/internal/core/inventory"
	"restaurant-assistant/internal/pkg/common"
)

// fakeSearcher 固定回傳預設結果的搜尋端
type fakeSearcher struct {
	result string
	err    error
	calls  int
}

func (f *fakeSearcher) Search(ctx context.Context, dish string) (string, error) {
	f.calls++
	return f.result, f.err
}

func TestBasicRecipe(t *testing.T) {
	t.Run("known dish by substring", func(t *testing.T) {
		got := BasicRecipe("margherita pizza")
		if !strings.HasPrefix(got, "Pizza Recipe:") {
			t.Errorf("BasicRecipe = %q, want pizza recipe", got)
		}
	})

	t.Run("multi word dish", func(t *testing.T) {
		got := BasicRecipe("Lemon Juice")
		if !strings.HasPrefix(got, "Lemon Juice Recipe:") {
			t.Errorf("BasicRecipe = %q, want lemon juice recipe", got)
		}
	})

	t.Run("unknown dish gets generic tips", func(t *testing.T) {
		got := BasicRecipe("dragon stew")
		if !strings.HasPrefix(got, "Basic Cooking Tips for dragon stew:") {
			t.Errorf("BasicRecipe = %q, want generic tips", got)
		}
		if !strings.Contains(got, "fresh, quality ingredients") {
			t.Errorf("BasicRecipe = %q, missing tips body", got)
		}
	})
}

func TestProvide(t *testing.T) {
	ctx := context.Background()
	analyzer := inventory.NewAnalyzer(2)
	snap := common.InventorySnapshot{"flour": 5, "salt": 1}

	t.Run("search result used when long enough", func(t *testing.T) {
		searcher := &fakeSearcher{result: "Found a detailed pizza recipe online with steps."}
		p := NewProvider(searcher, analyzer)

		got := p.Provide(ctx, "pizza", snap)
		if !strings.HasPrefix(got, searcher.result) {
			t.Errorf("Provide = %q, want web result first", got)
		}
		if !strings.Contains(got, "\n\n") {
			t.Error("Provide missing separator before inventory report")
		}
		if !strings.Contains(got, "Available: flour (5)") {
			t.Errorf("Provide = %q, missing inventory report", got)
		}
	})

	t.Run("short search result falls back to static recipe", func(t *testing.T) {
		searcher := &fakeSearcher{result: "too short"}
		p := NewProvider(searcher, analyzer)

		got := p.Provide(ctx, "pizza", snap)
		if !strings.HasPrefix(got, "Pizza Recipe:") {
			t.Errorf("Provide = %q, want static recipe", got)
		}
	})

	t.Run("search error falls back to static recipe", func(t *testing.T) {
		searcher := &fakeSearcher{err: errors.New("network down")}
		p := NewProvider(searcher, analyzer)

		got := p.Provide(ctx, "bread", snap)
		if !strings.HasPrefix(got, "Basic Bread Recipe:") {
			t.Errorf("Provide = %q, want static recipe", got)
		}
		if searcher.calls != 1 {
			t.Errorf("search calls = %d, want 1 (no retry)", searcher.calls)
		}
	})

	t.Run("nil searcher goes straight to fallback", func(t *testing.T) {
		p := NewProvider(nil, analyzer)

		got := p.Provide(ctx, "dragon stew", snap)
		if !strings.HasPrefix(got, "Basic Cooking Tips for dragon stew:") {
			t.Errorf("Provide = %q, want generic tips", got)
		}
	})

	t.Run("report appended for empty inventory", func(t *testing.T) {
		p := NewProvider(nil, analyzer)

		got := p.Provide(ctx, "pizza", common.InventorySnapshot{})
		if !strings.HasSuffix(got, "No ingredient data available for pizza.") {
			t.Errorf("Provide = %q, want empty inventory note", got)
		}
	})
}
