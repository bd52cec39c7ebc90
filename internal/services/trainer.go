package services

import (
	"context"

	"go.uber.org/zap"

	"gym-system/internal/dto"
	"gym-system/internal/entities"
	"gym-system/internal/repositories"
	"gym-system/pkg/filestorage"
)

type TrainerServiceInterface interface {
	GetTrainers(ctx context.Context) ([]entities.Trainer, error)
	FindTrainer(ctx context.Context, id uint64) (*entities.Trainer, error)
	CreateTrainer(ctx context.Context, payload dto.CreateTrainerDTO) (*entities.Trainer, error)
	UpdateTrainer(ctx context.Context, id uint64, payload dto.UpdateTrainerDTO) (*entities.Trainer, error)
	DeleteTrainer(ctx context.Context, id uint64) error
}

type TrainerService struct {
	repo        repositories.TrainerRepositoryInterface
	fileStorage filestorage.FileStorageInterface
	logger      *zap.Logger
}

func NewTrainerService(
	repo repositories.TrainerRepositoryInterface,
	fileStorage filestorage.FileStorageInterface,
	logger *zap.Logger,
) TrainerServiceInterface {
	return &TrainerService{repo: repo, fileStorage: fileStorage, logger: logger}
}

func (s *TrainerService) GetTrainers(ctx context.Context) ([]entities.Trainer, error) {
	return s.repo.GetTrainers(ctx)
}

func (s *TrainerService) FindTrainer(ctx context.Context, id uint64) (*entities.Trainer, error) {
	return s.repo.FindTrainer(ctx, id)
}

func (s *TrainerService) CreateTrainer(ctx context.Context, payload dto.CreateTrainerDTO) (*entities.Trainer, error) {
	return s.repo.CreateTrainer(ctx, payload)
}

func (s *TrainerService) UpdateTrainer(ctx context.Context, id uint64, payload dto.UpdateTrainerDTO) (*entities.Trainer, error) {
	return s.repo.UpdateTrainer(ctx, id, payload)
}

// DeleteTrainer removes the row first and then best-effort deletes the
// trainer's stored files (profile photo, certificates).
func (s *TrainerService) DeleteTrainer(ctx context.Context, id uint64) error {
	item, err := s.repo.DeleteTrainer(ctx, id)
	if err != nil {
		return err
	}

	if item.ProfilePhoto.Valid {
		s.deleteStoredFile(item.ProfilePhoto.String)
	}
	for _, path := range item.CertificateFiles {
		s.deleteStoredFile(path)
	}

	return nil
}

func (s *TrainerService) deleteStoredFile(path string) {
	if path == "" {
		return
	}
	if err := s.fileStorage.Delete(path); err != nil {
		s.logger.Error("failed to delete trainer file",
			zap.String("path", path),
			zap.Error(err),
		)
	}
}
