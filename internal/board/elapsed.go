package board

import (
	"fmt"
	"time"
)

// SLAMinutes is how long an order may stay unresolved before it is
// flagged on the board.
const SLAMinutes = 15

// Elapsed describes how long an order has been waiting.
type Elapsed struct {
	Minutes int    `json:"minutes"`
	Seconds int    `json:"seconds"`
	Text    string `json:"text"`
	OverSLA bool   `json:"over_sla"`
}

// ElapsedInfo computes the wait time of an order created at createdAt
// as of now. The result is floored at zero so clock skew between this
// process and the backend never produces a negative duration.
func ElapsedInfo(createdAt, now time.Time) Elapsed {
	d := now.Sub(createdAt)
	if d < 0 {
		d = 0
	}
	m := int(d / time.Minute)
	s := int(d%time.Minute) / int(time.Second)
	return Elapsed{
		Minutes: m,
		Seconds: s,
		Text:    fmt.Sprintf("%dm %ds", m, s),
		OverSLA: m >= SLAMinutes,
	}
}
