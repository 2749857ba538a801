package board

import (
	"time"

	"cozinha/internal/models"
)

// TVEntry is one order on the pickup TV: just enough for a customer
// to spot their number and name.
type TVEntry struct {
	ID          int           `json:"id"`
	ClienteNome string        `json:"cliente_nome"`
	Status      models.Status `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}

// TVQueues holds the two queues shown on the pickup TV.
type TVQueues struct {
	Producao []TVEntry `json:"producao"`
	Prontos  []TVEntry `json:"prontos"`
}

// AssembleTV filters orders into the production and ready queues,
// oldest first. Unlike the kanban view the TV applies no antecipado
// or text filters.
func AssembleTV(orders []models.Order) TVQueues {
	q := TVQueues{Producao: []TVEntry{}, Prontos: []TVEntry{}}
	for _, o := range sortByCreated(orders) {
		entry := TVEntry{ID: o.ID, ClienteNome: o.ClienteNome, Status: o.Status, CreatedAt: o.CreatedAt}
		switch o.Status {
		case models.StatusEmProducao:
			q.Producao = append(q.Producao, entry)
		case models.StatusPronto:
			q.Prontos = append(q.Prontos, entry)
		}
	}
	return q
}
