package store

import (
	"testing"

	"restaurant-assistant/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateTrending(t *testing.T) {
	entries := []common.QueryLogEntry{
		{Query: "how to make pizza", Dish: "pizza"},
		{Query: "recipe for pasta", Dish: "pasta"},
		{Query: "pizza recipe", Dish: "pizza"},
		{Query: "general question", Dish: ""},
		{Query: "recipe for cake", Dish: "cake"},
		{Query: "pasta recipe", Dish: "pasta"},
		{Query: "how to cook pizza", Dish: "pizza"},
	}

	t.Run("sorted by count descending", func(t *testing.T) {
		got := aggregateTrending(entries, 3)
		require.Len(t, got, 3)
		assert.Equal(t, common.DishCount{Dish: "pizza", Count: 3}, got[0])
		assert.Equal(t, common.DishCount{Dish: "pasta", Count: 2}, got[1])
		assert.Equal(t, common.DishCount{Dish: "cake", Count: 1}, got[2])
	})

	t.Run("entries without dish are skipped", func(t *testing.T) {
		got := aggregateTrending([]common.QueryLogEntry{{Dish: ""}, {Dish: ""}}, 3)
		assert.Empty(t, got)
	})

	t.Run("ties break by dish name", func(t *testing.T) {
		got := aggregateTrending([]common.QueryLogEntry{{Dish: "soup"}, {Dish: "bread"}}, 3)
		require.Len(t, got, 2)
		assert.Equal(t, "bread", got[0].Dish)
		assert.Equal(t, "soup", got[1].Dish)
	})

	t.Run("limit caps the list", func(t *testing.T) {
		got := aggregateTrending(entries, 2)
		assert.Len(t, got, 2)
	})

	t.Run("non positive limit keeps everything", func(t *testing.T) {
		got := aggregateTrending(entries, 0)
		assert.Len(t, got, 3)
	})
}
