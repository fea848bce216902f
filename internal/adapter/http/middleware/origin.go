package middleware

import (
	"mime"
	"net/http"
	"net/url"
	"strings"

	"blaze-custody/pkg/apperror"
	"blaze-custody/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

// OriginGuard rejects state-changing requests sent by a browser page from an
// origin outside allowed. The daemon's own origin is always accepted.
// Requests without an Origin header come from non-browser clients and pass,
// unless Sec-Fetch-Site marks them cross-site.
func OriginGuard(allowed []string, log zerolog.Logger) gin.HandlerFunc {
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		if o = normalizeOrigin(o); o != "" {
			set[o] = struct{}{}
		}
	}

	return func(c *gin.Context) {
		if isSafeMethod(c.Request.Method) {
			c.Next()
			return
		}

		origin := c.GetHeader("Origin")
		if origin == "" {
			if c.GetHeader("Sec-Fetch-Site") != "cross-site" {
				c.Next()
				return
			}
		} else {
			norm := normalizeOrigin(origin)
			if _, ok := set[norm]; ok || sameHost(norm, c.Request.Host) {
				c.Next()
				return
			}
		}

		log.Warn().
			Str("origin", origin).
			Str("path", c.Request.URL.Path).
			Str("ip", c.ClientIP()).
			Msg("cross-origin request rejected")
		response.Error(c, apperror.ErrForbiddenOrigin())
		c.Abort()
	}
}

// RequireJSON rejects request bodies that are not declared as JSON, so a
// page cannot reach the API with a form or text/plain post.
func RequireJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength == 0 || isSafeMethod(c.Request.Method) {
			c.Next()
			return
		}
		mediaType, _, err := mime.ParseMediaType(c.GetHeader("Content-Type"))
		if err != nil || mediaType != "application/json" {
			response.Error(c, apperror.ErrUnsupportedMediaType())
			c.Abort()
			return
		}
		c.Next()
	}
}

func normalizeOrigin(origin string) string {
	return strings.TrimRight(strings.ToLower(strings.TrimSpace(origin)), "/")
}

func sameHost(origin, host string) bool {
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return false
	}
	return strings.EqualFold(u.Host, host)
}
