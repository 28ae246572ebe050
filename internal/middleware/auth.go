package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"jobinsights/internal/config"
	"jobinsights/internal/models"
)

// Session keys written by the OIDC callback.
const (
	SessionUserSub     = "user_sub"
	SessionUserEmail   = "user_email"
	SessionUserName    = "user_name"
	SessionUserPicture = "user_picture"
	SessionRedirect    = "redirect_after_login"
)

// AuthMiddleware gates the dashboard when OIDC or client certificates are
// configured. Without either, every request passes.
type AuthMiddleware struct {
	cfg *config.Config
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{cfg: cfg}
}

// Enabled reports whether requests must be authenticated.
func (m *AuthMiddleware) Enabled() bool {
	return m.cfg.IsAuthEnabled() || m.cfg.IsMTLSEnabled() || m.cfg.ClientCertHeader != ""
}

// RequireAuth ensures the user is authenticated. Browser requests are sent to
// /login; API requests get a 401.
func (m *AuthMiddleware) RequireAuth(c fiber.Ctx) error {
	if !m.Enabled() {
		return c.Next()
	}

	if user := m.certUser(c); user != nil {
		c.Locals("user", user)
		return c.Next()
	}

	sess := session.FromContext(c)
	if user := sessionUser(sess); user != nil {
		c.Locals("user", user)
		return c.Next()
	}

	if strings.HasPrefix(c.Path(), "/api/") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status": "error",
			"error":  "authentication required",
		})
	}

	if sess != nil && c.Method() == fiber.MethodGet {
		sess.Set(SessionRedirect, c.OriginalURL())
	}
	return c.Redirect().To("/login")
}

// certUser returns the user named by a verified client certificate or by the
// ingress client cert header.
func (m *AuthMiddleware) certUser(c fiber.Ctx) *models.User {
	var cn string
	if m.cfg.ClientCertHeader != "" {
		cn = c.Get(m.cfg.ClientCertHeader)
	}
	if cn == "" && m.cfg.IsMTLSEnabled() {
		if state := c.RequestCtx().TLSConnectionState(); state != nil && len(state.PeerCertificates) > 0 {
			cn = state.PeerCertificates[0].Subject.CommonName
		}
	}
	if cn == "" {
		return nil
	}

	username := extractUsernameFromCN(cn)
	if username == "" {
		username = strings.TrimSpace(cn)
	}
	return &models.User{Sub: "cert:" + username, Username: username, Name: cn}
}

func sessionUser(sess *session.Middleware) *models.User {
	if sess == nil {
		return nil
	}
	sub, _ := sess.Get(SessionUserSub).(string)
	if sub == "" {
		return nil
	}

	user := &models.User{Sub: sub}
	user.Email, _ = sess.Get(SessionUserEmail).(string)
	user.Name, _ = sess.Get(SessionUserName).(string)
	user.Picture, _ = sess.Get(SessionUserPicture).(string)
	return user
}

// extractUsernameFromCN returns the username in trailing parentheses of a
// certificate CN, e.g. "heatht" from "Heath Taylor (heatht)".
func extractUsernameFromCN(cn string) string {
	cn = strings.TrimRight(cn, " \t")
	if !strings.HasSuffix(cn, ")") {
		return ""
	}

	open := strings.LastIndex(cn, "(")
	if open < 0 {
		return ""
	}

	inner := cn[open+1 : len(cn)-1]
	if strings.ContainsAny(inner, "()") {
		return ""
	}
	return strings.TrimSpace(inner)
}

// CurrentUser returns the authenticated user, or nil.
func CurrentUser(c fiber.Ctx) *models.User {
	user, _ := c.Locals("user").(*models.User)
	return user
}
