package middleware

import (
	"encoding/json"
	"net/http"

	"blaze-custody/internal/core/domain"
	"blaze-custody/internal/core/ports"

	"github.com/gin-gonic/gin"
)

// AuditLog records successful QR session operations that the services do
// not audit themselves. Wallet and biometric actions are audited by the
// wallet session.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}

		action := mapRouteToAction(c.FullPath(), c.Request.Method)
		if action == "" {
			return
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": c.Writer.Status(),
		})

		entry := domain.NewAuditLog(action, "login_session", c.Param("id"))
		entry.IPAddress = c.ClientIP()
		entry.Details = string(details)
		if id := c.GetString(CtxSessionID); id != "" && entry.ResourceID == "" {
			entry.ResourceID = id
		}
		auditSvc.Log(c.Request.Context(), entry)
	}
}

func mapRouteToAction(route, method string) domain.AuditAction {
	switch {
	case route == "/api/v1/qr/sessions" && method == http.MethodPost:
		return domain.AuditActionQRSessionCreated
	case route == "/api/v1/qr/sessions/:id" && method == http.MethodDelete:
		return domain.AuditActionQRSessionReleased
	case route == "/api/v1/qr/sessions/:id/token" && method == http.MethodPost:
		return domain.AuditActionQRTokenIssued
	}
	return ""
}
