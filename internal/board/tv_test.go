package board

import (
	"testing"
	"time"

	"cozinha/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestAssembleTV(t *testing.T) {
	orders := []models.Order{
		order(4, models.StatusPronto, t0.Add(3*time.Minute)),
		order(1, models.StatusEmProducao, t0),
		order(2, models.StatusPago, t0.Add(time.Minute)),
		order(3, models.StatusEmProducao, t0.Add(2*time.Minute)),
		order(5, models.StatusFinalizado, t0.Add(4*time.Minute)),
	}

	q := AssembleTV(orders)

	assert.Equal(t, []int{1, 3}, []int{q.Producao[0].ID, q.Producao[1].ID})
	assert.Len(t, q.Prontos, 1)
	assert.Equal(t, 4, q.Prontos[0].ID)
}

func TestAssembleTVEmpty(t *testing.T) {
	q := AssembleTV(nil)
	// Empty slices, not nil: the TV client renders empty sections.
	assert.NotNil(t, q.Producao)
	assert.NotNil(t, q.Prontos)
}
