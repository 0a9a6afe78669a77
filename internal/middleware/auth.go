package middleware

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"campuscast/internal/session"
)

// LoginPath is where gated pages send visitors without a usable
// session. The client treats it as the only routing contract.
const LoginPath = "/login/login.html"

// UserKey is the gin context key the gate stores the session record
// under.
const UserKey = "current_user"

var secret = []byte(getJWTSecret())

func getJWTSecret() string {
	if val := os.Getenv("JWT_SECRET"); val != "" {
		return val
	}
	return "supersecret" // fallback
}

// GenerateToken wraps a session key in a signed bearer token. The
// token is only transport for the key; the session store remains the
// source of the user record.
func GenerateToken(sessionKey string) (string, error) {
	claims := jwt.MapClaims{
		"session_key": sessionKey,
		"exp":         time.Now().Add(72 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// SessionKeyFromToken validates a bearer token and extracts the
// session key.
func SessionKeyFromToken(tokenStr string) (string, bool) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil || !token.Valid {
		return "", false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	key, ok := claims["session_key"].(string)
	return key, ok
}

// Gate loads the session record behind a request and enforces a
// required role before the handler runs. Enforcement is advisory in
// the same sense the session itself is: the store row, not this
// check, is what makes an identity real.
type Gate struct {
	sessions *session.Store
}

func NewGate(sessions *session.Store) *Gate {
	return &Gate{sessions: sessions}
}

// RequireRole aborts with a redirect hint to the login page unless
// the request carries a session whose role is one of roles. On
// success the record is stored in the context for handlers.
func (g *Gate) RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"redirect": LoginPath})
			return
		}

		key, ok := SessionKeyFromToken(strings.TrimPrefix(authHeader, "Bearer "))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"redirect": LoginPath})
			return
		}

		user := g.sessions.Load(c.Request.Context(), key)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"redirect": LoginPath})
			return
		}
		if len(allowed) > 0 && !allowed[user.Role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"redirect": LoginPath})
			return
		}

		c.Set(UserKey, *user)
		c.Next()
	}
}

// CurrentUser returns the session record a gate stored on the
// context. The second return is false on ungated routes.
func CurrentUser(c *gin.Context) (session.Record, bool) {
	val, exists := c.Get(UserKey)
	if !exists {
		return session.Record{}, false
	}
	rec, ok := val.(session.Record)
	return rec, ok
}
