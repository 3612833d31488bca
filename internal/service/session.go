package service

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionCookie is the cookie carrying the opaque session token.
const SessionCookie = "sessionId"

// Session cookie lifetime in seconds (7 days).
const sessionMaxAge = 7 * 24 * 60 * 60

// SessionProvider issues and reads the anonymous session token. Tokens
// are never checked against storage: holding the cookie is the entire
// credential, and any syntactically valid token is accepted as-is.
type SessionProvider struct{}

func NewSessionProvider() *SessionProvider {
	return &SessionProvider{}
}

// Resolve reads the session token from the request cookie.
func (p *SessionProvider) Resolve(c *gin.Context) (string, bool) {
	token, err := c.Cookie(SessionCookie)
	if err != nil || token == "" {
		return "", false
	}
	return token, true
}

// ResolveOrMint reuses the existing token, or mints a fresh one and
// attaches it to the response. Create is the only operation that can
// originate a session, so this is only called on that path.
func (p *SessionProvider) ResolveOrMint(c *gin.Context) string {
	if token, ok := p.Resolve(c); ok {
		return token
	}

	token := uuid.NewString()
	c.SetCookie(SessionCookie, token, sessionMaxAge, "/", "", false, false)
	return token
}
