package services

import (
	"context"

	"go.uber.org/zap"

	"gym-system/internal/dto"
	"gym-system/internal/entities"
	"gym-system/internal/repositories"
)

type MemberServiceInterface interface {
	GetMembers(ctx context.Context) ([]entities.Member, error)
	FindMember(ctx context.Context, id uint64) (*entities.Member, error)
	CreateMember(ctx context.Context, payload dto.CreateMemberDTO) (*entities.Member, error)
	UpdateMember(ctx context.Context, id uint64, payload dto.UpdateMemberDTO) (*entities.Member, error)
	DeleteMember(ctx context.Context, id uint64) error
}

type MemberService struct {
	repo   repositories.MemberRepositoryInterface
	logger *zap.Logger
}

func NewMemberService(repo repositories.MemberRepositoryInterface, logger *zap.Logger) MemberServiceInterface {
	return &MemberService{repo: repo, logger: logger}
}

func (s *MemberService) GetMembers(ctx context.Context) ([]entities.Member, error) {
	return s.repo.GetMembers(ctx)
}

func (s *MemberService) FindMember(ctx context.Context, id uint64) (*entities.Member, error) {
	return s.repo.FindMember(ctx, id)
}

func (s *MemberService) CreateMember(ctx context.Context, payload dto.CreateMemberDTO) (*entities.Member, error) {
	return s.repo.CreateMember(ctx, payload)
}

func (s *MemberService) UpdateMember(ctx context.Context, id uint64, payload dto.UpdateMemberDTO) (*entities.Member, error) {
	return s.repo.UpdateMember(ctx, id, payload)
}

func (s *MemberService) DeleteMember(ctx context.Context, id uint64) error {
	_, err := s.repo.DeleteMember(ctx, id)
	return err
}
