package services

import (
	"context"

	"go.uber.org/zap"

	"gym-system/internal/dto"
	"gym-system/internal/entities"
	"gym-system/internal/repositories"
	"gym-system/pkg/filestorage"
	"gym-system/pkg/types"
)

type EquipmentServiceInterface interface {
	GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, error)
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO, imagePath string) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO, imagePath string) (*entities.Equipment, error)
	RemoveEquipmentImage(ctx context.Context, id uint64) (*entities.Equipment, error)
	DeleteEquipment(ctx context.Context, id uint64) error
}

// EquipmentService owns the write path around stored image files: a file is
// saved before the database write, so every failed write has to compensate
// by deleting it again. A crash between the two steps leaves an orphan on
// disk; that window is accepted, there is no reconciliation sweep.
type EquipmentService struct {
	repo        repositories.EquipmentRepositoryInterface
	fileStorage filestorage.FileStorageInterface
	logger      *zap.Logger
}

func NewEquipmentService(
	repo repositories.EquipmentRepositoryInterface,
	fileStorage filestorage.FileStorageInterface,
	logger *zap.Logger,
) EquipmentServiceInterface {
	return &EquipmentService{
		repo:        repo,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

// discardFile removes a stored file during compensation. Failures are
// logged and swallowed so the primary error keeps propagating.
func (s *EquipmentService) discardFile(path string) {
	if path == "" {
		return
	}
	if err := s.fileStorage.Delete(path); err != nil {
		s.logger.Error("failed to delete stored file during compensation",
			zap.String("path", path),
			zap.Error(err),
		)
	}
}

func (s *EquipmentService) GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, error) {
	return s.repo.GetEquipments(ctx, filter)
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	return s.repo.FindEquipment(ctx, id)
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO, imagePath string) (*entities.Equipment, error) {
	item, err := s.repo.CreateEquipment(ctx, payload, imagePath)
	if err != nil {
		s.discardFile(imagePath)
		return nil, err
	}
	return item, nil
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO, imagePath string) (*entities.Equipment, error) {
	existing, err := s.repo.FindEquipment(ctx, id)
	if err != nil {
		s.discardFile(imagePath)
		return nil, err
	}

	item, err := s.repo.UpdateEquipment(ctx, id, payload, imagePath)
	if err != nil {
		s.discardFile(imagePath)
		return nil, err
	}

	// the record now points at the new file, the old one is unreferenced
	if imagePath != "" && existing.ImagePath.Valid && existing.ImagePath.String != imagePath {
		s.discardFile(existing.ImagePath.String)
	}

	return item, nil
}

// RemoveEquipmentImage detaches and deletes the record's image. It is
// idempotent: a record without an image comes back unchanged. The column is
// cleared before the file is removed, so a failed write never leaves the
// record pointing at a file that no longer exists.
func (s *EquipmentService) RemoveEquipmentImage(ctx context.Context, id uint64) (*entities.Equipment, error) {
	existing, err := s.repo.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.ClearEquipmentImage(ctx, id)
	if err != nil {
		return nil, err
	}

	if existing.ImagePath.Valid {
		s.discardFile(existing.ImagePath.String)
	}

	return item, nil
}

func (s *EquipmentService) DeleteEquipment(ctx context.Context, id uint64) error {
	item, err := s.repo.DeleteEquipment(ctx, id)
	if err != nil {
		return err
	}

	// best-effort cascade; the row is already gone
	if item.ImagePath.Valid {
		s.discardFile(item.ImagePath.String)
	}

	return nil
}
