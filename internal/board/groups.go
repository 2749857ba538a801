package board

import (
	"sort"

	"cozinha/internal/models"
)

// CategoryGroup holds the lines of one order that belong to a single
// menu category, for the card layout on the kanban view.
type CategoryGroup struct {
	Categoria string             `json:"categoria"`
	Itens     []models.OrderItem `json:"itens"`
}

// GroupByCategory splits an order's lines by menu category, resolving
// each line through lookup. Lines whose item cannot be resolved land in
// models.FallbackCategory. Groups come back sorted by category name so
// cards render in a stable order.
func GroupByCategory(order models.Order, lookup models.CategoryLookup) []CategoryGroup {
	byCat := make(map[string][]models.OrderItem)
	for _, it := range order.Itens {
		cat := lookup.Category(it.Item)
		byCat[cat] = append(byCat[cat], it)
	}

	cats := make([]string, 0, len(byCat))
	for cat := range byCat {
		cats = append(cats, cat)
	}
	sort.Strings(cats)

	groups := make([]CategoryGroup, 0, len(cats))
	for _, cat := range cats {
		groups = append(groups, CategoryGroup{Categoria: cat, Itens: byCat[cat]})
	}
	return groups
}
