package service

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func TestResolveOrMintSetsCookie(t *testing.T) {
	provider := NewSessionProvider()

	var minted string
	r := gin.New()
	r.POST("/t", func(c *gin.Context) {
		minted = provider.ResolveOrMint(c)
		c.Status(http.StatusCreated)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/t", nil)
	r.ServeHTTP(w, req)

	if _, err := uuid.Parse(minted); err != nil {
		t.Fatalf("expected minted UUID token, got %q", minted)
	}

	cookies := w.Result().Cookies()
	var found *http.Cookie
	for _, ck := range cookies {
		if ck.Name == SessionCookie {
			found = ck
		}
	}
	if found == nil {
		t.Fatal("session cookie not set")
	}
	if found.Value != minted {
		t.Fatalf("cookie value %q does not match minted token %q", found.Value, minted)
	}
	if found.Path != "/" {
		t.Fatalf("expected cookie path /, got %q", found.Path)
	}
	if found.MaxAge != 7*24*60*60 {
		t.Fatalf("expected 7 day max age, got %d", found.MaxAge)
	}
}

func TestResolveOrMintReusesExistingToken(t *testing.T) {
	provider := NewSessionProvider()

	var resolved string
	r := gin.New()
	r.POST("/t", func(c *gin.Context) {
		resolved = provider.ResolveOrMint(c)
		c.Status(http.StatusCreated)
	})

	token := uuid.NewString()
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/t", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	r.ServeHTTP(w, req)

	if resolved != token {
		t.Fatalf("expected token %q reused, got %q", token, resolved)
	}
	if len(w.Result().Cookies()) != 0 {
		t.Fatal("cookie must not be re-set when one is already present")
	}
}

func TestResolveWithoutCookie(t *testing.T) {
	provider := NewSessionProvider()

	r := gin.New()
	r.GET("/t", func(c *gin.Context) {
		if _, ok := provider.Resolve(c); ok {
			t.Error("expected no session to resolve")
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/t", nil))
}
