package recipe

import (
	"fmt"
	"strings"
)

// fallbackRecipe 搜尋失敗時的靜態食譜
type fallbackRecipe struct {
	dish string
	text string
}

// 靜態食譜表，依表列順序以子字串比對菜名
var fallbackRecipes = []fallbackRecipe{
	{"pizza", `Pizza Recipe:
1. Make dough: Mix 3 cups flour, 1 tsp yeast, 1 cup warm water, 1 tsp salt, 1 tbsp olive oil
2. Knead for 10 minutes, let rise 1 hour
3. Roll out dough, add tomato sauce, cheese, and toppings
4. Bake at 450°F (230°C) for 12-15 minutes until golden`},

	{"lemon juice", `Lemon Juice Recipe:
1. Wash and roll 4-6 fresh lemons on counter to release juice
2. Cut lemons in half and juice using citrus juicer or by hand
3. Strain through fine mesh to remove seeds and pulp
4. Mix with water and sugar to taste (typically 1:1 ratio)
5. Serve over ice`},

	{"pasta", `Basic Pasta Recipe:
1. Boil 1 lb pasta in salted water until al dente (8-10 minutes)
2. Drain, reserving 1 cup pasta water
3. Toss with olive oil, garlic, salt, and pepper
4. Add pasta water if needed for creaminess
5. Top with grated cheese and fresh herbs`},

	{"cake", `Basic Cake Recipe:
1. Mix 2 cups flour, 1 cup sugar, 1 tsp baking powder, 1/2 tsp salt
2. Beat in 2 eggs, 1/2 cup milk, 1/3 cup oil
3. Pour into greased 9x9 pan
4. Bake at 350°F (175°C) for 25-30 minutes
5. Cool before frosting`},

	{"bread", `Basic Bread Recipe:
1. Mix 3 cups flour, 1 tsp yeast, 1 tsp salt, 1 tbsp sugar
2. Add 1 cup warm water, knead for 10 minutes
3. Let rise 1 hour, punch down, shape
4. Rise again 30 minutes, bake at 400°F (200°C) for 30 minutes`},
}

// BasicRecipe 取得菜式的靜態食譜，不在表內時回傳通用烹飪要點
func BasicRecipe(dish string) string {
	lowered := strings.ToLower(dish)
	for _, r := range fallbackRecipes {
		if strings.Contains(lowered, r.dish) {
			return r.text
		}
	}

	// 未知菜式給通用建議
	return fmt.Sprintf(`Basic Cooking Tips for %s:
1. Start with fresh, quality ingredients
2. Follow proper food safety practices
3. Season to taste with salt and pepper
4. Cook at appropriate temperatures
5. Let food rest before serving
6. Taste as you cook and adjust seasoning`, dish)
}
