package inventory

import "testing"

func TestClosestKey(t *testing.T) {
	keys := []string{"cheese", "flour", "olive oil", "tomato"}

	tests := []struct {
		name   string
		target string
		want   string
	}{
		{"exact match", "flour", "flour"},
		{"close typo", "tomatoe", "tomato"},
		{"extra space", "olive  oil", "olive oil"},
		{"case and padding", "  Cheese ", "cheese"},
		{"no plausible match returns input", "xyz123", "xyz123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClosestKey(tt.target, keys); got != tt.want {
				t.Errorf("ClosestKey(%q) = %q, want %q", tt.target, got, tt.want)
			}
		})
	}
}

func TestBestMatch(t *testing.T) {
	t.Run("stricter threshold rejects borderline match", func(t *testing.T) {
		// onions/onion 相似度約 0.83，只過得了較嚴門檻
		if _, ok := bestMatch("onions", []string{"onion"}, answerThreshold); !ok {
			t.Error("bestMatch(onions) = no match, want onion")
		}
		if _, ok := bestMatch("onio", []string{"onion"}, answerThreshold); ok {
			t.Error("bestMatch(onio) matched, want no match at strict threshold")
		}
	})

	t.Run("tie keeps first key", func(t *testing.T) {
		key, ok := bestMatch("yam", []string{"jam", "ham"}, matchThreshold)
		if !ok || key != "jam" {
			t.Errorf("bestMatch(yam) = %q, %v, want jam, true", key, ok)
		}
	})

	t.Run("empty target", func(t *testing.T) {
		if _, ok := bestMatch("   ", []string{"salt"}, matchThreshold); ok {
			t.Error("bestMatch(blank) matched, want no match")
		}
	})
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"onion", "onion", 1.0},
		{"onions", "onion", 1.0 - 1.0/6.0},
		{"olive  oil", "olive oil", 0.9},
		{"", "", 1.0},
		{"a", "", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			got := similarity(tt.a, tt.b)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("similarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
