package consumer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/SalimDiallo/LouraBackend/internal/events"
	"github.com/SalimDiallo/LouraBackend/internal/leave"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeEmployeeLifecycle seeds the leave ledger for employees announced on
// the lifecycle topic. Provisioning is idempotent, so redelivery is safe.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	leaveService leave.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.EmployeeCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode employee_created event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		orgID, err := uuid.Parse(event.OrganizationID)
		if err != nil {
			log.Error("employee_created event carries bad organization_id",
				zap.String("organization_id", event.OrganizationID))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}
		employeeID, err := uuid.Parse(event.EmployeeID)
		if err != nil {
			log.Error("employee_created event carries bad employee_id",
				zap.String("employee_id", event.EmployeeID))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		year := time.Now().UTC().Year()
		if hired, err := time.Parse("2006-01-02", event.HireDate); err == nil {
			year = hired.Year()
		}

		if err := leaveService.ProvisionDefaultBalances(ctx, orgID, employeeID, year); err != nil {
			log.Error("provision default leave balances failed",
				zap.String("employee_id", event.EmployeeID),
				zap.String("organization_id", event.OrganizationID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("leave balances provisioned from employee_created event",
			zap.String("employee_id", event.EmployeeID),
			zap.String("organization_id", event.OrganizationID),
			zap.Int("year", year),
		)
	}
}
