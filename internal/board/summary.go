package board

import (
	"sort"

	"cozinha/internal/models"
)

// ItemSummary aggregates one menu item's quantities across the active
// orders, split by production stage. The kitchen uses it to batch
// identical items ("how many X-Burgers are pending right now").
type ItemSummary struct {
	Nome       string `json:"nome"`
	APreparar  int    `json:"a_preparar"`
	EmProducao int    `json:"em_producao"`
	Pronto     int    `json:"pronto"`
}

// Total is the item's quantity across all three stages.
func (s ItemSummary) Total() int {
	return s.APreparar + s.EmProducao + s.Pronto
}

// ProductionSummary tallies item quantities per stage over the given
// orders. "pago" counts as pending alongside "a preparar", matching
// the board's combined first column. The result is sorted busiest
// item first.
func ProductionSummary(orders []models.Order) []ItemSummary {
	byName := make(map[string]*ItemSummary)
	names := []string{}

	for _, o := range orders {
		for _, it := range o.Itens {
			nome := it.Nome
			if nome == "" {
				nome = "Item"
			}
			rec, ok := byName[nome]
			if !ok {
				rec = &ItemSummary{Nome: nome}
				byName[nome] = rec
				names = append(names, nome)
			}
			qtd := it.Qtd
			if qtd <= 0 {
				qtd = 1
			}
			switch o.Status {
			case models.StatusPago, models.StatusAPreparar:
				rec.APreparar += qtd
			case models.StatusEmProducao:
				rec.EmProducao += qtd
			case models.StatusPronto:
				rec.Pronto += qtd
			}
		}
	}

	out := make([]ItemSummary, 0, len(names))
	for _, nome := range names {
		if byName[nome].Total() > 0 {
			out = append(out, *byName[nome])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total() > out[j].Total()
	})
	return out
}
