package handlers

import (
	"storefront/internal/models"
)

// logAudit records an admin action. Best effort: a failed insert never
// fails the request that triggered it.
func logAudit(action, resource, resourceID, ipAddress, userAgent string) {
	auditLog := &models.AuditLog{
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
	}
	models.DB.Create(auditLog)
}
