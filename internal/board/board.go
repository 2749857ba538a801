// Package board derives display state for the kitchen kanban and TV
// views from the mirrored order set. Everything here is pure: output
// is recomputed in full from the inputs on every refresh, and no
// incremental state is kept between calls.
package board

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"cozinha/internal/models"
)

// Card is one order rendered for the kanban view.
type Card struct {
	ID          int             `json:"id"`
	Status      models.Status   `json:"status"`
	ClienteNome string          `json:"cliente_nome"`
	Observacoes string          `json:"observacoes,omitempty"`
	Antecipado  bool            `json:"antecipado"`
	CreatedAt   time.Time       `json:"created_at"`
	Elapsed     Elapsed         `json:"elapsed"`
	Groups      []CategoryGroup `json:"groups"`
}

// Column is one kanban lane.
type Column struct {
	Title  string `json:"title"`
	Orders []Card `json:"orders"`
}

// Board is the assembled kanban view. Orders in terminal state are
// excluded entirely; orders with an unrecognized status match no
// column and are only counted.
type Board struct {
	Columns       [3]Column `json:"columns"`
	UnknownStatus int       `json:"-"`
}

// Options filter which orders appear on the board. The zero value
// hides antecipado orders and applies no text or category filter,
// matching the kitchen screen's default controls.
type Options struct {
	IncludeAntecipados bool
	Query              string
	Categoria          string
}

// Filter applies the kitchen screen controls to the raw order set.
// Both the kanban view and the production summary run over the same
// filtered source.
func Filter(orders []models.Order, lookup models.CategoryLookup, opts Options) []models.Order {
	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if o.Antecipado && !opts.IncludeAntecipados {
			continue
		}
		if !matchQuery(o, opts.Query) || !matchCategoria(o, lookup, opts.Categoria) {
			continue
		}
		out = append(out, o)
	}
	return out
}

// Assemble partitions orders into the three kanban columns: "pago"
// and "a preparar" share the first lane, "em produção" and "pronto"
// get their own. Every column is ordered oldest-first, the kitchen's
// first-in first-served discipline.
func Assemble(orders []models.Order, lookup models.CategoryLookup, now time.Time, opts Options) Board {
	b := Board{Columns: [3]Column{
		{Title: "A preparar"},
		{Title: "Em produção"},
		{Title: "Pronto"},
	}}

	for _, o := range sortByCreated(Filter(orders, lookup, opts)) {
		if !o.Status.Known() {
			b.UnknownStatus++
			continue
		}
		if o.Status == models.StatusFinalizado {
			continue
		}

		var col int
		switch o.Status {
		case models.StatusPago, models.StatusAPreparar:
			col = 0
		case models.StatusEmProducao:
			col = 1
		case models.StatusPronto:
			col = 2
		default:
			continue
		}

		b.Columns[col].Orders = append(b.Columns[col].Orders, Card{
			ID:          o.ID,
			Status:      o.Status,
			ClienteNome: o.ClienteNome,
			Observacoes: o.Observacoes,
			Antecipado:  o.Antecipado,
			CreatedAt:   o.CreatedAt,
			Elapsed:     ElapsedInfo(o.CreatedAt, now),
			Groups:      GroupByCategory(o, lookup),
		})
	}

	return b
}

// SLABreaches counts cards on the board whose wait time crossed the
// SLA threshold.
func (b Board) SLABreaches() int {
	n := 0
	for _, col := range b.Columns {
		for _, c := range col.Orders {
			if c.Elapsed.OverSLA {
				n++
			}
		}
	}
	return n
}

// Categories lists every category present across the given orders,
// sorted, for the kitchen screen's filter dropdown.
func Categories(orders []models.Order, lookup models.CategoryLookup) []string {
	seen := make(map[string]bool)
	for _, o := range orders {
		for _, it := range o.Itens {
			seen[lookup.Category(it.Item)] = true
		}
	}
	cats := make([]string, 0, len(seen))
	for cat := range seen {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	return cats
}

func sortByCreated(orders []models.Order) []models.Order {
	sorted := make([]models.Order, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})
	return sorted
}

// matchQuery checks the free-text filter against the order id and the
// customer name, case-insensitively.
func matchQuery(o models.Order, query string) bool {
	q := strings.TrimSpace(strings.ToLower(query))
	if q == "" {
		return true
	}
	if strings.Contains(strconv.Itoa(o.ID), q) {
		return true
	}
	return strings.Contains(strings.ToLower(o.ClienteNome), q)
}

func matchCategoria(o models.Order, lookup models.CategoryLookup, categoria string) bool {
	if categoria == "" {
		return true
	}
	for _, it := range o.Itens {
		if lookup.Category(it.Item) == categoria {
			return true
		}
	}
	return false
}
