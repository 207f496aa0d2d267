package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/FSDTeam-SAA/loadboard/internal/adapter/storage/postgres"
	"github.com/FSDTeam-SAA/loadboard/internal/core/domain"
	"github.com/FSDTeam-SAA/loadboard/internal/core/port"
)

// EventSink consumes lifecycle events emitted by the load service. It has no
// error return: fan-out is a best-effort auxiliary write that must never fail
// the primary mutation.
type EventSink interface {
	Notify(ctx context.Context, event domain.Event)
}

// NotificationService is both the fan-out consumer of lifecycle events and
// the read side for notification rows.
type NotificationService struct {
	store     postgres.Store
	publisher port.Publisher
	logger    *zap.Logger
}

func NewNotificationService(store postgres.Store, publisher port.Publisher, logger *zap.Logger) *NotificationService {
	return &NotificationService{store: store, publisher: publisher, logger: logger}
}

// Notify translates a lifecycle event into persisted notification rows, one
// per interested recipient. The recipient list is fully materialized before
// the batch insert so a failure mid-computation writes nothing.
func (s *NotificationService) Notify(ctx context.Context, event domain.Event) {
	var records []domain.Notification

	switch event.Type {
	case domain.EventLoadCreated:
		records = s.loadCreatedRecipients(ctx, event.Load)
	case domain.EventDriverAssigned:
		records = []domain.Notification{{
			ID:      uuid.New(),
			UserID:  event.DriverUserID,
			Title:   "New load assignment",
			Message: fmt.Sprintf("You have been assigned to load %q from %s to %s.", event.Load.Title, event.Load.PickupLocation, event.Load.DeliveryLocation),
			Type:    domain.NotificationTypeDriverAssigned,
		}}
	default:
		s.logger.Warn("unhandled lifecycle event", zap.String("type", string(event.Type)))
		return
	}

	if len(records) == 0 {
		return
	}
	now := time.Now()
	for i := range records {
		records[i].CreatedAt = now
	}

	if err := s.store.InsertNotifications(ctx, records); err != nil {
		s.logger.Error("notification fan-out insert failed",
			zap.String("event", string(event.Type)),
			zap.String("load_id", event.Load.ID.String()),
			zap.Error(err))
		return
	}

	for _, n := range records {
		s.push(ctx, n)
	}
}

func (s *NotificationService) loadCreatedRecipients(ctx context.Context, load domain.Load) []domain.Notification {
	companyID := load.CompanyID
	message := fmt.Sprintf("Load %q was posted from %s to %s.", load.Title, load.PickupLocation, load.DeliveryLocation)

	// The creator always gets a self-acknowledgement row.
	records := []domain.Notification{{
		ID:      uuid.New(),
		UserID:  load.CreatedBy,
		Title:   "Load created",
		Message: fmt.Sprintf("Your load %q was created and is pending processing.", load.Title),
		Type:    domain.NotificationTypeLoadCreated,
	}}

	company, err := s.store.GetCompany(ctx, companyID)
	if err != nil {
		// Missing directory data degrades the fan-out, never the mutation.
		s.logger.Error("fan-out could not resolve company owner",
			zap.String("company_id", companyID.String()), zap.Error(err))
		return records
	}
	records = append(records, domain.Notification{
		ID:        uuid.New(),
		UserID:    company.OwnerID,
		CompanyID: &companyID,
		Title:     "New load posted",
		Message:   message,
		Type:      domain.NotificationTypeLoadCreated,
	})

	dispatchers, err := s.store.ListDispatchersByCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("fan-out could not list dispatchers",
			zap.String("company_id", companyID.String()), zap.Error(err))
		return records
	}
	for _, d := range dispatchers {
		dispatcherID := d.ID
		records = append(records, domain.Notification{
			ID:           uuid.New(),
			UserID:       d.UserID,
			CompanyID:    &companyID,
			DispatcherID: &dispatcherID,
			Title:        "New load posted",
			Message:      message,
			Type:         domain.NotificationTypeLoadCreated,
		})
	}
	return records
}

func (s *NotificationService) push(ctx context.Context, n domain.Notification) {
	payload := map[string]any{
		"type": "NOTIFICATION",
		"payload": map[string]any{
			"id":         n.ID.String(),
			"title":      n.Title,
			"message":    n.Message,
			"type":       n.Type,
			"created_at": n.CreatedAt,
		},
	}
	if err := s.publisher.Publish(ctx, "notifications:"+n.UserID.String(), payload); err != nil {
		s.logger.Warn("push publish failed",
			zap.String("user_id", n.UserID.String()), zap.Error(err))
	}
}

// List returns the actor's notifications newest first. Dispatcher and company
// actors additionally match rows addressed to their dispatcher record or
// company, mirroring how the fan-out tagged them.
func (s *NotificationService) List(ctx context.Context, actor domain.Actor) ([]domain.Notification, error) {
	params := postgres.ListNotificationsParams{UserID: actor.UserID}

	switch actor.Role {
	case domain.RoleDispatcher:
		if dispatcher, err := s.store.GetDispatcherByUser(ctx, actor.UserID); err == nil {
			params.DispatcherID = &dispatcher.ID
			params.CompanyID = &dispatcher.CompanyID
		}
	case domain.RoleCompany:
		if company, err := s.store.GetCompanyByOwner(ctx, actor.UserID); err == nil {
			params.CompanyID = &company.ID
		}
	}

	return s.store.ListNotifications(ctx, params)
}

func (s *NotificationService) MarkRead(ctx context.Context, userID uuid.UUID, notificationID uuid.UUID) error {
	rows, err := s.store.MarkNotificationRead(ctx, postgres.MarkNotificationReadParams{
		ID:     notificationID,
		UserID: userID,
	})
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return s.store.MarkAllNotificationsRead(ctx, userID)
}
