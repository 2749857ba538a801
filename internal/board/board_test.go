package board

import (
	"testing"
	"time"

	"cozinha/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)

func order(id int, status models.Status, created time.Time) models.Order {
	return models.Order{ID: id, Status: status, ClienteNome: "Cliente", CreatedAt: created}
}

func TestAssembleColumns(t *testing.T) {
	orders := []models.Order{
		order(1, models.StatusPago, t0),
		order(2, models.StatusEmProducao, t0.Add(time.Second)),
		order(3, models.StatusFinalizado, t0.Add(2*time.Second)),
	}

	b := Assemble(orders, models.CategoryLookup{}, t0.Add(time.Minute), Options{})

	assert.Len(t, b.Columns[0].Orders, 1)
	assert.Equal(t, 1, b.Columns[0].Orders[0].ID)
	assert.Len(t, b.Columns[1].Orders, 1)
	assert.Equal(t, 2, b.Columns[1].Orders[0].ID)
	assert.Empty(t, b.Columns[2].Orders)
}

func TestAssembleExcludesFinalizado(t *testing.T) {
	orders := []models.Order{
		order(1, models.StatusFinalizado, t0),
		order(2, models.StatusFinalizado, t0.Add(time.Minute)),
	}

	b := Assemble(orders, models.CategoryLookup{}, t0.Add(time.Hour), Options{})
	for _, col := range b.Columns {
		assert.Empty(t, col.Orders, "column %q", col.Title)
	}
}

func TestAssembleCombinesPagoAndAPreparar(t *testing.T) {
	orders := []models.Order{
		order(1, models.StatusAPreparar, t0.Add(time.Minute)),
		order(2, models.StatusPago, t0),
	}

	b := Assemble(orders, models.CategoryLookup{}, t0.Add(time.Hour), Options{})
	assert.Len(t, b.Columns[0].Orders, 2)
	// Oldest first regardless of which of the two statuses it holds.
	assert.Equal(t, 2, b.Columns[0].Orders[0].ID)
	assert.Equal(t, 1, b.Columns[0].Orders[1].ID)
}

func TestAssembleSortsColumnsByCreatedAt(t *testing.T) {
	orders := []models.Order{
		order(3, models.StatusEmProducao, t0.Add(9*time.Minute)),
		order(1, models.StatusEmProducao, t0),
		order(2, models.StatusEmProducao, t0.Add(4*time.Minute)),
	}

	b := Assemble(orders, models.CategoryLookup{}, t0.Add(time.Hour), Options{})
	col := b.Columns[1].Orders
	for i := 1; i < len(col); i++ {
		assert.False(t, col[i].CreatedAt.Before(col[i-1].CreatedAt),
			"created_at must be non-decreasing within a column")
	}
	assert.Equal(t, []int{1, 2, 3}, []int{col[0].ID, col[1].ID, col[2].ID})
}

func TestAssembleDropsUnknownStatus(t *testing.T) {
	orders := []models.Order{
		order(1, models.Status("cancelado"), t0),
		order(2, models.StatusPronto, t0),
	}

	b := Assemble(orders, models.CategoryLookup{}, t0, Options{})
	assert.Equal(t, 1, b.UnknownStatus)
	total := 0
	for _, col := range b.Columns {
		total += len(col.Orders)
	}
	assert.Equal(t, 1, total)
}

func TestAssembleAntecipadoFilter(t *testing.T) {
	early := order(1, models.StatusPago, t0)
	early.Antecipado = true
	orders := []models.Order{early, order(2, models.StatusPago, t0)}

	hidden := Assemble(orders, models.CategoryLookup{}, t0, Options{})
	assert.Len(t, hidden.Columns[0].Orders, 1)

	shown := Assemble(orders, models.CategoryLookup{}, t0, Options{IncludeAntecipados: true})
	assert.Len(t, shown.Columns[0].Orders, 2)
}

func TestAssembleQueryFilter(t *testing.T) {
	a := order(10, models.StatusPago, t0)
	a.ClienteNome = "Maria"
	b := order(22, models.StatusPago, t0)
	b.ClienteNome = "João"
	orders := []models.Order{a, b}

	byName := Assemble(orders, models.CategoryLookup{}, t0, Options{Query: "mar"})
	assert.Len(t, byName.Columns[0].Orders, 1)
	assert.Equal(t, 10, byName.Columns[0].Orders[0].ID)

	byID := Assemble(orders, models.CategoryLookup{}, t0, Options{Query: "22"})
	assert.Len(t, byID.Columns[0].Orders, 1)
	assert.Equal(t, 22, byID.Columns[0].Orders[0].ID)
}

func TestAssembleCategoriaFilter(t *testing.T) {
	lookup := models.BuildCategoryLookup([]models.Item{
		{ID: 1, Categoria: "Bebidas"},
		{ID: 2, Categoria: "Lanches"},
	})
	a := order(1, models.StatusPago, t0)
	a.Itens = []models.OrderItem{{Item: 1, Nome: "Suco", Qtd: 1}}
	b := order(2, models.StatusPago, t0)
	b.Itens = []models.OrderItem{{Item: 2, Nome: "X-Burger", Qtd: 1}}

	got := Assemble([]models.Order{a, b}, lookup, t0, Options{Categoria: "Bebidas"})
	assert.Len(t, got.Columns[0].Orders, 1)
	assert.Equal(t, 1, got.Columns[0].Orders[0].ID)
}

func TestFilter(t *testing.T) {
	early := order(1, models.StatusPago, t0)
	early.Antecipado = true
	early.Itens = []models.OrderItem{{Nome: "Pudim", Qtd: 1}}
	normal := order(2, models.StatusEmProducao, t0)
	normal.ClienteNome = "Maria"
	normal.Itens = []models.OrderItem{{Nome: "X-Burger", Qtd: 2}}
	orders := []models.Order{early, normal}

	got := Filter(orders, models.CategoryLookup{}, Options{})
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)

	got = Filter(orders, models.CategoryLookup{}, Options{IncludeAntecipados: true})
	assert.Len(t, got, 2)

	got = Filter(orders, models.CategoryLookup{}, Options{IncludeAntecipados: true, Query: "maria"})
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)
}

func TestProductionSummaryOverFilteredSource(t *testing.T) {
	// The summary describes what the operator sees: orders hidden by
	// the filters contribute nothing to the tallies.
	early := order(1, models.StatusAPreparar, t0)
	early.Antecipado = true
	early.Itens = []models.OrderItem{{Nome: "Pudim", Qtd: 3}}
	normal := order(2, models.StatusEmProducao, t0)
	normal.Itens = []models.OrderItem{{Nome: "X-Burger", Qtd: 1}}
	orders := []models.Order{early, normal}

	summary := ProductionSummary(Filter(orders, models.CategoryLookup{}, Options{}))
	require.Len(t, summary, 1)
	assert.Equal(t, "X-Burger", summary[0].Nome)

	summary = ProductionSummary(Filter(orders, models.CategoryLookup{}, Options{IncludeAntecipados: true}))
	assert.Len(t, summary, 2)
}

func TestSLABreaches(t *testing.T) {
	orders := []models.Order{
		order(1, models.StatusEmProducao, t0),                   // 20m old
		order(2, models.StatusEmProducao, t0.Add(18*time.Minute)), // 2m old
	}

	b := Assemble(orders, models.CategoryLookup{}, t0.Add(20*time.Minute), Options{})
	assert.Equal(t, 1, b.SLABreaches())
}

func TestCategories(t *testing.T) {
	lookup := models.BuildCategoryLookup([]models.Item{
		{ID: 1, Categoria: "Lanches"},
		{ID: 2, Categoria: "Bebidas"},
	})
	o := order(1, models.StatusPago, t0)
	o.Itens = []models.OrderItem{
		{Item: 1, Qtd: 1},
		{Item: 2, Qtd: 1},
		{Item: 3, Qtd: 1},
	}

	cats := Categories([]models.Order{o}, lookup)
	assert.Equal(t, []string{"Bebidas", "Lanches", models.FallbackCategory}, cats)
}
