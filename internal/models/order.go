package models

import "time"

// Order mirrors a customer order as served by the ordering backend.
// The backend is the source of truth; this process never mutates an
// order locally.
type Order struct {
	ID          int         `json:"id"`
	Status      Status      `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	ClienteNome string      `json:"cliente_nome"`
	Observacoes string      `json:"observacoes,omitempty"`
	Antecipado  bool        `json:"antecipado"`
	Itens       []OrderItem `json:"itens"`
}

// OrderItem is a single line of an order. Item references the menu
// item id and is used to resolve the display category.
type OrderItem struct {
	Item int    `json:"item"`
	Nome string `json:"nome"`
	Qtd  int    `json:"qtd"`
}

// Status represents the visible lifecycle state of an order on the
// kitchen board.
type Status string

const (
	StatusPago       Status = "pago"
	StatusAPreparar  Status = "a preparar"
	StatusEmProducao Status = "em produção"
	StatusPronto     Status = "pronto"
	StatusFinalizado Status = "finalizado"
)

// Advance returns the status an operator moves an order to with one
// forward action. Both "pago" and "a preparar" jump straight to
// "em produção" so kitchen staff can skip the acknowledgment step with
// a single tap. "finalizado" is terminal.
func (s Status) Advance() Status {
	switch s {
	case StatusPago, StatusAPreparar:
		return StatusEmProducao
	case StatusEmProducao:
		return StatusPronto
	case StatusPronto:
		return StatusFinalizado
	case StatusFinalizado:
		return StatusFinalizado
	}
	return s
}

// Retreat returns the immediate predecessor status. "pago" is the
// first visible state and retreats to itself.
func (s Status) Retreat() Status {
	switch s {
	case StatusFinalizado:
		return StatusPronto
	case StatusPronto:
		return StatusEmProducao
	case StatusEmProducao:
		return StatusAPreparar
	case StatusAPreparar, StatusPago:
		return StatusPago
	}
	return s
}

// Known reports whether s is one of the board lifecycle states. Orders
// carrying anything else are never shown on the board.
func (s Status) Known() bool {
	switch s {
	case StatusPago, StatusAPreparar, StatusEmProducao, StatusPronto, StatusFinalizado:
		return true
	}
	return false
}
