package models

// FallbackCategory groups order lines whose menu item cannot be
// resolved, or whose item has no category set.
const FallbackCategory = "Outros"

// Item is a menu entry. The board only needs it to resolve a line's
// category; item management lives in the backend admin.
type Item struct {
	ID        int    `json:"id"`
	Nome      string `json:"nome"`
	Categoria string `json:"categoria,omitempty"`
	Ativo     bool   `json:"ativo"`
}

// CategoryLookup resolves a menu item id to its display category.
type CategoryLookup map[int]string

// Category returns the category for itemID, falling back to
// FallbackCategory when the item is unknown or uncategorized.
func (l CategoryLookup) Category(itemID int) string {
	if cat, ok := l[itemID]; ok && cat != "" {
		return cat
	}
	return FallbackCategory
}

// BuildCategoryLookup indexes items by id for category resolution.
func BuildCategoryLookup(items []Item) CategoryLookup {
	lookup := make(CategoryLookup, len(items))
	for _, it := range items {
		lookup[it.ID] = it.Categoria
	}
	return lookup
}
