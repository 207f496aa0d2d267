package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/FSDTeam-SAA/loadboard/internal/core/domain"
)

const notificationColumns = `id, user_id, company_id, dispatcher_id, title, message, type, is_read, created_at`

func scanNotification(row pgx.Row) (domain.Notification, error) {
	var (
		n            domain.Notification
		companyID    pgtype.UUID
		dispatcherID pgtype.UUID
	)
	err := row.Scan(&n.ID, &n.UserID, &companyID, &dispatcherID, &n.Title, &n.Message,
		&n.Type, &n.IsRead, &n.CreatedAt)
	if err != nil {
		return domain.Notification{}, err
	}
	n.CompanyID = uuidPtr(companyID)
	n.DispatcherID = uuidPtr(dispatcherID)
	return n, nil
}

const insertNotification = `
INSERT INTO notifications (id, user_id, company_id, dispatcher_id, title, message, type)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

// InsertNotifications writes the fully materialized recipient list in one
// batched round trip. It is not transactional with the load mutation that
// triggered it; callers treat it as a best-effort auxiliary write.
func (q *Queries) InsertNotifications(ctx context.Context, records []domain.Notification) error {
	if len(records) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, n := range records {
		batch.Queue(insertNotification,
			n.ID, n.UserID, uuidParam(n.CompanyID), uuidParam(n.DispatcherID),
			n.Title, n.Message, n.Type,
		)
	}

	results := q.db.SendBatch(ctx, batch)
	defer results.Close()

	for range records {
		if _, err := results.Exec(); err != nil {
			return err
		}
	}
	return nil
}

// listNotifications mirrors the role-scoped OR conditions of the read side:
// the user match always applies, dispatcher and company matches only when the
// caller's directory records resolved to ids.
const listNotifications = `
SELECT ` + notificationColumns + ` FROM notifications
WHERE user_id = $1
	OR ($2::uuid IS NOT NULL AND dispatcher_id = $2)
	OR ($3::uuid IS NOT NULL AND company_id = $3)
ORDER BY created_at DESC`

type ListNotificationsParams struct {
	UserID       uuid.UUID
	DispatcherID *uuid.UUID
	CompanyID    *uuid.UUID
}

func (q *Queries) ListNotifications(ctx context.Context, arg ListNotificationsParams) ([]domain.Notification, error) {
	rows, err := q.db.Query(ctx, listNotifications,
		arg.UserID, uuidParam(arg.DispatcherID), uuidParam(arg.CompanyID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// markNotificationRead is scoped to the recipient so one user cannot flag
// another user's rows.
const markNotificationRead = `
UPDATE notifications SET is_read = true WHERE id = $1 AND user_id = $2`

type MarkNotificationReadParams struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

func (q *Queries) MarkNotificationRead(ctx context.Context, arg MarkNotificationReadParams) (int64, error) {
	tag, err := q.db.Exec(ctx, markNotificationRead, arg.ID, arg.UserID)
	return tag.RowsAffected(), err
}

const markAllNotificationsRead = `
UPDATE notifications SET is_read = true WHERE user_id = $1 AND is_read = false`

func (q *Queries) MarkAllNotificationsRead(ctx context.Context, userID uuid.UUID) error {
	_, err := q.db.Exec(ctx, markAllNotificationsRead, userID)
	return err
}
