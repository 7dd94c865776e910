package jobs

import (
	"context"
	"time"

	"equiptrack-backend/internal/logger"
	"equiptrack-backend/internal/utils"
)

// AutoCalculatePenalties runs the overdue penalty batch. Safe to run while
// borrows and returns are in flight: the unique transaction/type constraint
// makes concurrent reruns converge on the same penalty set.
func (jr *JobRunner) AutoCalculatePenalties() {
	jr.runWithRecovery("AutoCalculatePenalties", func() {
		ctx := context.Background()

		created, err := jr.services.Penalty.AutoCalculateOverdue(ctx)
		if err != nil {
			logger.Error("Overdue penalty batch failed", "error", err)
			return
		}
		logger.Info("Created overdue penalties", "count", created)
	})
}

// SendOverdueReminders emails a reminder for every Active transaction past
// its expected return date. Best effort per transaction.
func (jr *JobRunner) SendOverdueReminders() {
	jr.runWithRecovery("SendOverdueReminders", func() {
		ctx := context.Background()
		now := time.Now()

		overdue, err := jr.services.Transaction.ListOverdue(ctx)
		if err != nil {
			logger.Error("Failed to list overdue transactions", "error", err)
			return
		}

		sent := 0
		for _, tx := range overdue {
			eqName := ""
			if eq, err := jr.services.Catalog.GetEquipment(ctx, tx.EquipmentID); err == nil {
				eqName = eq.Name
			}
			daysOverdue := utils.DaysOverdue(tx.ExpectedReturnDate, now)
			if err := jr.services.Email.SendOverdueReminder(ctx, tx.BorrowerRFID, eqName, daysOverdue); err != nil {
				logger.Warn("Failed to send overdue reminder",
					"transaction_id", tx.ID, "error", err)
				continue
			}
			sent++
		}
		logger.Info("Sent overdue reminders", "overdue", len(overdue), "sent", sent)
	})
}
