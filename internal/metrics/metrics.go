package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RefreshTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cozinha_refresh_total",
		Help: "Total number of completed full refreshes from the backend.",
	})

	RefreshErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cozinha_refresh_errors_total",
		Help: "Total number of failed backend fetches.",
	},
		[]string{"resource"},
	)

	RefreshTrigger = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cozinha_refresh_trigger_total",
		Help: "Refreshes broken down by what triggered them.",
	},
		[]string{"trigger"},
	)

	BoardColumnSize = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "cozinha_board_column_size",
		Help: "Number of orders currently shown in each kanban column.",
	},
		[]string{"column"},
	)

	SLABreaches = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "cozinha_sla_breaches",
		Help: "Orders on the board waiting past the SLA threshold.",
	})

	UnknownStatusOrders = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "cozinha_unknown_status_orders",
		Help: "Mirrored orders whose status is outside the known lifecycle; they are dropped from the board.",
	})

	WSClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "cozinha_ws_clients",
		Help: "Display clients currently connected to the fanout channel.",
	})

	TransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cozinha_transitions_total",
		Help: "Status transition requests forwarded to the backend.",
	},
		[]string{"direction", "outcome"},
	)
)
