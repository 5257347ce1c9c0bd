package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"restaurant-assistant/internal/core/inventory"
	"restaurant-assistant/internal/core/recipe"
	"restaurant-assistant/internal/core/trending"
	"restaurant-assistant/internal/pkg/common"
)

// fakeSource 固定回傳預設快照的庫存來源
type fakeSource struct {
	snap common.InventorySnapshot
	err  error
}

func (f *fakeSource) Fetch(ctx context.Context) (common.InventorySnapshot, error) {
	return f.snap, f.err
}

// panicSource 取快照時直接 panic，驗證入口的兜底行為
type panicSource struct{}

func (panicSource) Fetch(ctx context.Context) (common.InventorySnapshot, error) {
	panic("boom")
}

// fakeLog 收集寫入的查詢紀錄
type fakeLog struct {
	entries []common.QueryLogEntry
	err     error
}

func (f *fakeLog) Append(ctx context.Context, entry common.QueryLogEntry) error {
	f.entries = append(f.entries, entry)
	return f.err
}

// fakeSearcher 固定回傳預設結果的搜尋端
type fakeSearcher struct {
	result string
	err    error
}

func (f *fakeSearcher) Search(ctx context.Context, dish string) (string, error) {
	return f.result, f.err
}

// newTestService 組出測試用助理，searcher 可為 nil
func newTestService(source InventorySource, qlog QueryLogger, searcher recipe.Searcher) *Service {
	analyzer := inventory.NewAnalyzer(2)
	answerer := inventory.NewAnswerer()
	provider := recipe.NewProvider(searcher, analyzer)
	trendingSvc := trending.NewService(nil)
	return NewService(source, qlog, provider, analyzer, answerer, trendingSvc)
}

func TestQueryOutOfDomain(t *testing.T) {
	svc := newTestService(&fakeSource{}, &fakeLog{}, nil)

	got := svc.Query(context.Background(), "tell me a joke", "")
	if got != msgOutOfDomain {
		t.Errorf("Query = %q, want refusal", got)
	}
}

func TestQueryRecipe(t *testing.T) {
	ctx := context.Background()

	t.Run("without dish asks for clarification", func(t *testing.T) {
		qlog := &fakeLog{}
		svc := newTestService(&fakeSource{}, qlog, nil)

		got := svc.Query(ctx, "recipe please", "")
		if got != msgRecipeClarify {
			t.Errorf("Query = %q, want clarification", got)
		}
		if len(qlog.entries) != 0 {
			t.Errorf("log entries = %d, want 0", len(qlog.entries))
		}
	})

	t.Run("with dish logs and returns recipe with report", func(t *testing.T) {
		qlog := &fakeLog{}
		searcher := &fakeSearcher{result: "Found a detailed pizza recipe online with steps."}
		source := &fakeSource{snap: common.InventorySnapshot{"flour": 5}}
		svc := newTestService(source, qlog, searcher)

		got := svc.Query(ctx, "how to make pizza", "")
		if !strings.HasPrefix(got, searcher.result) {
			t.Errorf("Query = %q, want web result first", got)
		}
		if !strings.Contains(got, "Available: flour (5)") {
			t.Errorf("Query = %q, missing inventory report", got)
		}
		if len(qlog.entries) != 1 {
			t.Fatalf("log entries = %d, want 1", len(qlog.entries))
		}
		if qlog.entries[0].Dish != "pizza" {
			t.Errorf("logged dish = %q, want pizza", qlog.entries[0].Dish)
		}
		if qlog.entries[0].Timestamp.IsZero() {
			t.Error("logged timestamp is zero")
		}
	})

	t.Run("log failure does not affect the reply", func(t *testing.T) {
		qlog := &fakeLog{err: errors.New("write refused")}
		svc := newTestService(&fakeSource{}, qlog, nil)

		got := svc.Query(ctx, "recipe for bread", "")
		if !strings.HasPrefix(got, "Basic Bread Recipe:") {
			t.Errorf("Query = %q, want static recipe", got)
		}
	})
}

func TestQueryInventory(t *testing.T) {
	ctx := context.Background()

	t.Run("direct quantity answer", func(t *testing.T) {
		source := &fakeSource{snap: common.InventorySnapshot{"tomato": 12, "onion": 7}}
		svc := newTestService(source, &fakeLog{}, nil)

		got := svc.Query(ctx, "how many tomatoes do we have", "")
		if got != "tomato: 12" {
			t.Errorf("Query = %q, want %q", got, "tomato: 12")
		}
	})

	t.Run("falls back to dish analysis when no item matches", func(t *testing.T) {
		source := &fakeSource{snap: common.InventorySnapshot{"beef": 5, "bun": 0, "cheese": 1}}
		svc := newTestService(source, &fakeLog{}, nil)

		got := svc.Query(ctx, "do we have everything for a burger", "")
		want := "Available: beef (5), cheese (1) | Low stock: cheese | You miss ingredients: bun, lettuce, tomato, onion"
		if got != want {
			t.Errorf("Query = %q, want %q", got, want)
		}
	})

	t.Run("source failure reports unavailable", func(t *testing.T) {
		source := &fakeSource{err: errors.New("connection refused")}
		svc := newTestService(source, &fakeLog{}, nil)

		got := svc.Query(ctx, "how many tomatoes do we have", "")
		if got != msgSourceDown {
			t.Errorf("Query = %q, want source down message", got)
		}
	})

	t.Run("nil source reports unavailable", func(t *testing.T) {
		svc := newTestService(nil, &fakeLog{}, nil)

		got := svc.Query(ctx, "how many tomatoes do we have", "")
		if got != msgSourceDown {
			t.Errorf("Query = %q, want source down message", got)
		}
	})
}

func TestQueryTrending(t *testing.T) {
	svc := newTestService(&fakeSource{}, &fakeLog{}, nil)

	got := svc.Query(context.Background(), "what's trending today", "")
	if got != "Trending data not available." {
		t.Errorf("Query = %q", got)
	}
}

func TestQueryGeneral(t *testing.T) {
	svc := newTestService(&fakeSource{}, &fakeLog{}, nil)

	got := svc.Query(context.Background(), "what is on the menu", "")
	if got != msgGeneralHelp {
		t.Errorf("Query = %q, want general help", got)
	}
}

func TestQueryNeverPanics(t *testing.T) {
	svc := newTestService(panicSource{}, &fakeLog{}, nil)

	got := svc.Query(context.Background(), "how many tomatoes do we have", "")
	want := "I encountered an error while processing your request: boom"
	if got != want {
		t.Errorf("Query = %q, want %q", got, want)
	}
}

func TestQueryStateless(t *testing.T) {
	source := &fakeSource{snap: common.InventorySnapshot{"tomato": 12}}
	svc := newTestService(source, &fakeLog{}, nil)

	first := svc.Query(context.Background(), "how many tomatoes do we have", "")
	second := svc.Query(context.Background(), "how many tomatoes do we have", "")
	if first != second {
		t.Errorf("repeated query differs: %q vs %q", first, second)
	}
}
