package service

import (
	"context"

	"equiptrack-backend/internal/domain"
	"equiptrack-backend/internal/repository"
)

type notificationService struct {
	noteRepo repository.NotificationRepository
}

func NewNotificationService(noteRepo repository.NotificationRepository) NotificationService {
	return &notificationService{noteRepo: noteRepo}
}

func (s *notificationService) Record(ctx context.Context, note *domain.Notification) error {
	return s.noteRepo.Create(ctx, note)
}

func (s *notificationService) List(ctx context.Context, page, pageSize int32) ([]domain.Notification, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize
	return s.noteRepo.List(ctx, pageSize, offset)
}

func (s *notificationService) MarkAsRead(ctx context.Context, id int32) error {
	return s.noteRepo.MarkAsRead(ctx, id)
}
