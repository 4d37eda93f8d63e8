// Package audit records authentication events to the action log.
package audit

import (
	"context"
	"encoding/json"
	"log"

	"github.com/helpdesk-platform/ticket-service/internal/models"
	"github.com/helpdesk-platform/ticket-service/internal/repository"
)

// Source identifies this service in action log rows.
const Source = "ticket-service"

// LogAction writes an audit entry. Audit is best-effort: failures are logged
// server-side and never fail the request being audited.
func LogAction(ctx context.Context, repo repository.ActionLogRepository, action string, userID *int64, detail map[string]interface{}) {
	if repo == nil {
		return
	}

	var detailJSON string
	if detail != nil {
		data, err := json.Marshal(detail)
		if err != nil {
			log.Printf("audit: failed to marshal detail for %s: %v", action, err)
		} else {
			detailJSON = string(data)
		}
	}

	entry := &models.ActionLog{
		Action: action,
		UserID: userID,
		Source: Source,
		Detail: detailJSON,
	}
	if err := repo.Log(ctx, entry); err != nil {
		log.Printf("audit: failed to record %s: %v", action, err)
	}
}
