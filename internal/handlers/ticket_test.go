package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/helpdesk-platform/ticket-service/internal/middleware"
	"github.com/helpdesk-platform/ticket-service/internal/models"
	"github.com/helpdesk-platform/ticket-service/internal/service"
)

// =============================================================================
// Mock TicketService
// =============================================================================

type mockTicketService struct {
	createFunc               func(ctx context.Context, claims *service.SessionClaims, req service.CreateTicketRequest) (*models.Ticket, error)
	listByAuthorFunc         func(ctx context.Context, claims *service.SessionClaims) ([]models.Ticket, error)
	listByInternalSectorFunc func(ctx context.Context, claims *service.SessionClaims) ([]models.Ticket, error)
	listByDependencyFunc     func(ctx context.Context, claims *service.SessionClaims) ([]models.Ticket, error)
}

func (m *mockTicketService) Create(ctx context.Context, claims *service.SessionClaims, req service.CreateTicketRequest) (*models.Ticket, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, claims, req)
	}
	return nil, context.Canceled
}

func (m *mockTicketService) ListByAuthor(ctx context.Context, claims *service.SessionClaims) ([]models.Ticket, error) {
	if m.listByAuthorFunc != nil {
		return m.listByAuthorFunc(ctx, claims)
	}
	return nil, context.Canceled
}

func (m *mockTicketService) ListByInternalSector(ctx context.Context, claims *service.SessionClaims) ([]models.Ticket, error) {
	if m.listByInternalSectorFunc != nil {
		return m.listByInternalSectorFunc(ctx, claims)
	}
	return nil, context.Canceled
}

func (m *mockTicketService) ListByDependency(ctx context.Context, claims *service.SessionClaims) ([]models.Ticket, error) {
	if m.listByDependencyFunc != nil {
		return m.listByDependencyFunc(ctx, claims)
	}
	return nil, context.Canceled
}

func setupTicketRouter(t *testing.T, mockTickets *mockTicketService) (*gin.Engine, service.TokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := newTestTokens(t)
	handler := NewTicketHandler(mockTickets)

	router := gin.New()
	requireSession := middleware.RequireSession(tokens, SessionCookieName)
	tickets := router.Group("/tickets", requireSession)
	tickets.GET("", handler.ListByAuthor)
	tickets.GET("/internalsec", handler.ListByInternalSector)
	tickets.GET("/dependency", handler.ListByDependency)
	tickets.POST("", handler.Create)
	return router, tokens
}

func ticketRequest(t *testing.T, tokens service.TokenService, method, path, body string, userID int64, sectorID *int64) *http.Request {
	t.Helper()

	token, err := tokens.Generate(userID, "ejecutor", sectorID)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	return req
}

// =============================================================================
// Route Protection Tests
// =============================================================================

func TestTicketRoutes_RequireSession(t *testing.T) {
	router, _ := setupTicketRouter(t, &mockTicketService{})

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/tickets"},
		{http.MethodGet, "/tickets/internalsec"},
		{http.MethodGet, "/tickets/dependency"},
		{http.MethodPost, "/tickets"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, nil)
			router.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
			}
		})
	}
}

// =============================================================================
// List Tests
// =============================================================================

func TestListByAuthorHandler(t *testing.T) {
	mockTickets := &mockTicketService{
		listByAuthorFunc: func(ctx context.Context, claims *service.SessionClaims) ([]models.Ticket, error) {
			if claims.UserID != 1 {
				t.Errorf("claims.UserID = %d, want 1", claims.UserID)
			}
			return []models.Ticket{{ID: 10, Title: "broken vpn", AuthorID: 1}}, nil
		},
	}
	router, tokens := setupTicketRouter(t, mockTickets)

	sectorID := int64(7)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, ticketRequest(t, tokens, http.MethodGet, "/tickets", "", 1, &sectorID))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body: %s", w.Code, http.StatusOK, w.Body.String())
	}

	var tickets []models.Ticket
	if err := json.Unmarshal(w.Body.Bytes(), &tickets); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if len(tickets) != 1 || tickets[0].ID != 10 {
		t.Errorf("unexpected tickets: %+v", tickets)
	}
}

func TestListByInternalSectorHandler_NoSectorClaim(t *testing.T) {
	mockTickets := &mockTicketService{
		listByInternalSectorFunc: func(ctx context.Context, claims *service.SessionClaims) ([]models.Ticket, error) {
			return nil, service.ErrNoSectorClaim
		},
	}
	router, tokens := setupTicketRouter(t, mockTickets)

	// Registration-issued token: no sector claim.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, ticketRequest(t, tokens, http.MethodGet, "/tickets/internalsec", "", 1, nil))

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", w.Code, http.StatusForbidden)
	}
}

func TestListByDependencyHandler_NoSectorClaim(t *testing.T) {
	mockTickets := &mockTicketService{
		listByDependencyFunc: func(ctx context.Context, claims *service.SessionClaims) ([]models.Ticket, error) {
			return nil, service.ErrNoSectorClaim
		},
	}
	router, tokens := setupTicketRouter(t, mockTickets)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, ticketRequest(t, tokens, http.MethodGet, "/tickets/dependency", "", 1, nil))

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", w.Code, http.StatusForbidden)
	}
}

// =============================================================================
// Create Tests
// =============================================================================

func TestCreateTicketHandler(t *testing.T) {
	mockTickets := &mockTicketService{
		createFunc: func(ctx context.Context, claims *service.SessionClaims, req service.CreateTicketRequest) (*models.Ticket, error) {
			return &models.Ticket{ID: 10, Title: req.Title, AuthorID: claims.UserID, Status: models.TicketStatusOpen}, nil
		},
	}
	router, tokens := setupTicketRouter(t, mockTickets)

	sectorID := int64(7)
	body := `{"title":"printer on fire","description":"third floor"}`
	w := httptest.NewRecorder()
	router.ServeHTTP(w, ticketRequest(t, tokens, http.MethodPost, "/tickets", body, 1, &sectorID))

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d, body: %s", w.Code, http.StatusCreated, w.Body.String())
	}

	var ticket models.Ticket
	if err := json.Unmarshal(w.Body.Bytes(), &ticket); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if ticket.AuthorID != 1 {
		t.Errorf("AuthorID = %d, want 1", ticket.AuthorID)
	}
}

func TestCreateTicketHandler_MissingTitle(t *testing.T) {
	router, tokens := setupTicketRouter(t, &mockTicketService{})

	sectorID := int64(7)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, ticketRequest(t, tokens, http.MethodPost, "/tickets", `{"description":"no title"}`, 1, &sectorID))

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}
