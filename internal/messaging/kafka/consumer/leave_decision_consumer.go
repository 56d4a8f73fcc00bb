package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SalimDiallo/LouraBackend/internal/bootstrap"
	"github.com/SalimDiallo/LouraBackend/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeLeaveDecisions writes an audit trail entry for every decided leave
// request that crosses the decision topic.
func ConsumeLeaveDecisions(
	ctx context.Context,
	reader *kafkago.Reader,
	audit bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.leave_decision")
	log.Info("leave decision consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("leave decision consumer stopped")
				return
			}
			log.Error("fetch leave decision message failed", zap.Error(err))
			continue
		}

		var event events.LeaveDecidedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode leave_decided event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		audit.Log(ctx, bootstrap.AuditLog{
			Action:  "leave." + event.Status,
			Message: fmt.Sprintf("leave request %s is %s", event.LeaveRequestID, event.Status),
			Meta: map[string]any{
				"leave_request_id": event.LeaveRequestID,
				"employee_id":      event.EmployeeID,
				"organization_id":  event.OrganizationID,
				"total_days":       event.TotalDays,
			},
		})

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit leave decision message failed", zap.Error(err))
		}
	}
}
