package services

import (
	"context"

	"testpark/internal/dto"
	"testpark/internal/repositories"

	"go.uber.org/zap"
)

type GroupPurchaseServiceInterface interface {
	GetGroupPurchases(ctx context.Context) ([]dto.GroupPurchaseDTO, error)
	FindGroupPurchase(ctx context.Context, id int) (*dto.GroupPurchaseDTO, error)
}

type GroupPurchaseService struct {
	groupPurchaseRepo repositories.GroupPurchaseRepositoryInterface
	logger            *zap.Logger
}

func NewGroupPurchaseService(groupPurchaseRepo repositories.GroupPurchaseRepositoryInterface, logger *zap.Logger) GroupPurchaseServiceInterface {
	return &GroupPurchaseService{groupPurchaseRepo: groupPurchaseRepo, logger: logger}
}

func (s *GroupPurchaseService) GetGroupPurchases(ctx context.Context) ([]dto.GroupPurchaseDTO, error) {
	groupPurchases, err := s.groupPurchaseRepo.GetGroupPurchases(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.GroupPurchaseDTO, 0, len(groupPurchases))
	for _, gp := range groupPurchases {
		result = append(result, toGroupPurchaseDTO(gp))
	}
	return result, nil
}

func (s *GroupPurchaseService) FindGroupPurchase(ctx context.Context, id int) (*dto.GroupPurchaseDTO, error) {
	gp, err := s.groupPurchaseRepo.FindGroupPurchase(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toGroupPurchaseDTO(*gp)
	return &out, nil
}
