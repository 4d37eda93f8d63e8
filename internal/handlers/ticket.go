package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/helpdesk-platform/ticket-service/internal/middleware"
	"github.com/helpdesk-platform/ticket-service/internal/service"
)

// TicketHandler handles ticket HTTP requests.
type TicketHandler struct {
	ticketService service.TicketService
}

// NewTicketHandler creates a new TicketHandler instance.
func NewTicketHandler(ticketService service.TicketService) *TicketHandler {
	return &TicketHandler{ticketService: ticketService}
}

// ListByAuthor godoc
// @Summary Tickets created by the authenticated user
// @Tags tickets
// @Produce json
// @Success 200 {array} models.Ticket
// @Failure 401 {object} map[string]string
// @Router /tickets [get]
func (h *TicketHandler) ListByAuthor(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	tickets, err := h.ticketService.ListByAuthor(c.Request.Context(), claims)
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to list tickets")
		return
	}

	c.JSON(http.StatusOK, tickets)
}

// ListByInternalSector godoc
// @Summary Tickets visible to the user's internal sector
// @Tags tickets
// @Produce json
// @Success 200 {array} models.Ticket
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /tickets/internalsec [get]
func (h *TicketHandler) ListByInternalSector(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	tickets, err := h.ticketService.ListByInternalSector(c.Request.Context(), claims)
	if err != nil {
		h.respondListError(c, err)
		return
	}

	c.JSON(http.StatusOK, tickets)
}

// ListByDependency godoc
// @Summary Tickets linked to the dependency of the user's sector
// @Tags tickets
// @Produce json
// @Success 200 {array} models.Ticket
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /tickets/dependency [get]
func (h *TicketHandler) ListByDependency(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	tickets, err := h.ticketService.ListByDependency(c.Request.Context(), claims)
	if err != nil {
		h.respondListError(c, err)
		return
	}

	c.JSON(http.StatusOK, tickets)
}

// Create godoc
// @Summary Create a ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Param request body service.CreateTicketRequest true "Ticket data"
// @Success 201 {object} models.Ticket
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /tickets [post]
func (h *TicketHandler) Create(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req service.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	ticket, err := h.ticketService.Create(c.Request.Context(), claims, req)
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to create ticket")
		return
	}

	c.JSON(http.StatusCreated, ticket)
}

// respondListError maps a missing sector claim to 403; a registration-issued
// token has no sector access until the user logs in.
func (h *TicketHandler) respondListError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrNoSectorClaim) {
		RespondError(c, http.StatusForbidden, "no internal sector access")
		return
	}
	LogAndRespondError(c, http.StatusInternalServerError, err, "failed to list tickets")
}
