package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/helpdesk-platform/ticket-service/internal/config"
)

func TestSetSessionCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name         string
		cookieConfig config.CookieConfig
		wantSecure   bool
		wantSameSite http.SameSite
		wantDomain   string // Go http strips leading dot from domain per RFC 6265
	}{
		{
			name: "cross-site production config",
			cookieConfig: config.CookieConfig{
				Domain:   "",
				Secure:   true,
				SameSite: http.SameSiteNoneMode,
				Path:     "/",
			},
			wantSecure:   true,
			wantSameSite: http.SameSiteNoneMode,
			wantDomain:   "",
		},
		{
			name: "scoped domain config",
			cookieConfig: config.CookieConfig{
				Domain:   ".helpdesk.example.com",
				Secure:   true,
				SameSite: http.SameSiteNoneMode,
				Path:     "/",
			},
			wantSecure:   true,
			wantSameSite: http.SameSiteNoneMode,
			wantDomain:   "helpdesk.example.com", // Leading dot stripped by http package
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			helper := NewCookieHelper(tt.cookieConfig)
			helper.SetSessionCookie(c, "token123", 24*time.Hour)

			cookies := w.Result().Cookies()
			if len(cookies) != 1 {
				t.Fatalf("expected 1 cookie, got %d", len(cookies))
			}

			cookie := cookies[0]
			if cookie.Name != SessionCookieName {
				t.Errorf("Name = %q, want %q", cookie.Name, SessionCookieName)
			}
			if cookie.Value != "token123" {
				t.Errorf("Value = %q, want %q", cookie.Value, "token123")
			}
			if !cookie.HttpOnly {
				t.Error("session cookie must be HttpOnly")
			}
			if cookie.Secure != tt.wantSecure {
				t.Errorf("Secure = %v, want %v", cookie.Secure, tt.wantSecure)
			}
			if cookie.SameSite != tt.wantSameSite {
				t.Errorf("SameSite = %v, want %v", cookie.SameSite, tt.wantSameSite)
			}
			if cookie.Domain != tt.wantDomain {
				t.Errorf("Domain = %q, want %q", cookie.Domain, tt.wantDomain)
			}
			if cookie.MaxAge != int((24 * time.Hour).Seconds()) {
				t.Errorf("MaxAge = %d, want %d", cookie.MaxAge, int((24*time.Hour).Seconds()))
			}
		})
	}
}

func TestClearSessionCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	helper := NewCookieHelper(config.CookieConfig{
		Path:     "/",
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
	helper.ClearSessionCookie(c)

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}

	cookie := cookies[0]
	if cookie.Value != "" {
		t.Errorf("Value = %q, want empty", cookie.Value)
	}
	if cookie.MaxAge >= 0 {
		t.Errorf("MaxAge = %d, want negative (epoch expiry)", cookie.MaxAge)
	}
	if !cookie.HttpOnly {
		t.Error("cleared cookie must keep HttpOnly")
	}
}

func TestGetSessionToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	helper := NewCookieHelper(config.CookieConfig{Path: "/"})

	t.Run("cookie present", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "token123"})

		if got := helper.GetSessionToken(c); got != "token123" {
			t.Errorf("GetSessionToken() = %q, want %q", got, "token123")
		}
	})

	t.Run("cookie absent", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		if got := helper.GetSessionToken(c); got != "" {
			t.Errorf("GetSessionToken() = %q, want empty", got)
		}
	})
}
