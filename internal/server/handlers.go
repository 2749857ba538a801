package server

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"cozinha/internal/board"
	"cozinha/internal/metrics"
	"cozinha/internal/models"

	"github.com/gin-gonic/gin"
)

// handleBoard assembles the kanban view from the current snapshot.
func (s *Server) handleBoard(c *gin.Context) {
	snap := s.mirror.Snapshot()
	b := board.Assemble(snap.Orders, snap.Lookup, time.Now(), boardOptions(c))

	for _, col := range b.Columns {
		metrics.BoardColumnSize.WithLabelValues(col.Title).Set(float64(len(col.Orders)))
	}
	metrics.SLABreaches.Set(float64(b.SLABreaches()))
	metrics.UnknownStatusOrders.Set(float64(b.UnknownStatus))

	c.JSON(http.StatusOK, gin.H{
		"columns":    b.Columns,
		"fetched_at": snap.FetchedAt,
	})
}

// handleTV serves the pickup TV queues.
func (s *Server) handleTV(c *gin.Context) {
	snap := s.mirror.Snapshot()
	c.JSON(http.StatusOK, board.AssembleTV(snap.Orders))
}

// handleSummary serves the per-item production tallies. It accepts
// the same filter params as the board so the tallies always describe
// the orders the operator is actually looking at.
func (s *Server) handleSummary(c *gin.Context) {
	snap := s.mirror.Snapshot()
	fonte := board.Filter(snap.Orders, snap.Lookup, boardOptions(c))
	c.JSON(http.StatusOK, gin.H{"itens": board.ProductionSummary(fonte)})
}

// boardOptions reads the kitchen screen controls from the query
// string: antecipados=1 shows scheduled-ahead orders, q filters by
// order number or customer name, categoria by menu category.
func boardOptions(c *gin.Context) board.Options {
	return board.Options{
		IncludeAntecipados: c.Query("antecipados") == "1",
		Query:              c.Query("q"),
		Categoria:          c.Query("categoria"),
	}
}

// handleCategories serves the filter dropdown contents.
func (s *Server) handleCategories(c *gin.Context) {
	snap := s.mirror.Snapshot()
	c.JSON(http.StatusOK, gin.H{"categorias": board.Categories(snap.Orders, snap.Lookup)})
}

// handleStats serves runtime stats about the mirror itself.
func (s *Server) handleStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.monitor.Snapshot())
}

// handleAdvance forwards a forward transition to the backend. The
// board is not updated optimistically: the new status becomes visible
// only once a refresh brings it back.
func (s *Server) handleAdvance(c *gin.Context) {
	s.transition(c, "advance", models.Status.Advance)
}

// handleRetreat forwards a backward transition to the backend.
func (s *Server) handleRetreat(c *gin.Context) {
	s.transition(c, "retreat", models.Status.Retreat)
}

func (s *Server) transition(c *gin.Context, direction string, step func(models.Status) models.Status) {
	order, ok := s.orderFromParam(c)
	if !ok {
		return
	}

	next := step(order.Status)
	if err := s.backend.UpdateStatus(c.Request.Context(), order.ID, next); err != nil {
		metrics.TransitionsTotal.WithLabelValues(direction, "rejected").Inc()
		s.logger.Warnw("transition rejected", "order", order.ID, "to", next, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	metrics.TransitionsTotal.WithLabelValues(direction, "accepted").Inc()

	// Pick up the accepted status without waiting for the next poll.
	go s.mirror.Refresh(context.Background(), "transition")

	c.JSON(http.StatusOK, gin.H{"ok": true, "de": order.Status, "para": next})
}

// handleAntecipado toggles the scheduled-ahead flag on the backend.
func (s *Server) handleAntecipado(c *gin.Context) {
	order, ok := s.orderFromParam(c)
	if !ok {
		return
	}

	var body struct {
		Antecipado bool `json:"antecipado"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.backend.SetAntecipado(c.Request.Context(), order.ID, body.Antecipado); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	go s.mirror.Refresh(context.Background(), "antecipado")

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (s *Server) orderFromParam(c *gin.Context) (models.Order, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return models.Order{}, false
	}

	for _, o := range s.mirror.Snapshot().Orders {
		if o.ID == id {
			return o, true
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
	return models.Order{}, false
}
