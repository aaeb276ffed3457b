package services

import (
	"context"

	"testpark/internal/dto"
	"testpark/internal/entities"
	"testpark/internal/repositories"
	"testpark/pkg/types"

	"go.uber.org/zap"
)

type CompanyServiceInterface interface {
	GetCompanies(ctx context.Context, filter types.Filter) ([]dto.CompanyDTO, uint64, error)
	FindCompany(ctx context.Context, id int) (*dto.CompanyDTO, error)
}

type CompanyService struct {
	companyRepository repositories.CompanyRepositoryInterface
	logger            *zap.Logger
}

func NewCompanyService(companyRepository repositories.CompanyRepositoryInterface, logger *zap.Logger) CompanyServiceInterface {
	return &CompanyService{companyRepository: companyRepository, logger: logger}
}

func (s *CompanyService) GetCompanies(ctx context.Context, filter types.Filter) ([]dto.CompanyDTO, uint64, error) {
	companies, total, err := s.companyRepository.GetCompanies(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	result := make([]dto.CompanyDTO, 0, len(companies))
	for _, c := range companies {
		result = append(result, toCompanyDTO(c))
	}
	return result, total, nil
}

func (s *CompanyService) FindCompany(ctx context.Context, id int) (*dto.CompanyDTO, error) {
	company, err := s.companyRepository.FindCompany(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toCompanyDTO(*company)
	return &out, nil
}

func toCompanyDTO(c entities.Company) dto.CompanyDTO {
	return dto.CompanyDTO{
		ID:              c.ID,
		Name:            c.Name,
		Region:          c.Region,
		Grade:           c.Grade,
		TwoDayCount:     c.TwoDayCount,
		EvalPeriodCount: c.EvalPeriodCount,
		EvalPeriodMax:   c.EvalPeriodMax,
		LoadPercent:     c.LoadPercent,
		Licenses:        c.Licenses,
		RegionApply:     c.RegionApply,
		Features:        c.Features,
		ServiceAreas:    c.ServiceAreas,
		ServiceTypes:    c.ServiceTypes,
		CurrentCapacity: c.CurrentCapacity,
		MaxCapacity:     c.MaxCapacity,
		Suspended:       c.Suspended,
		CapacityWarning: c.MaxCapacity > 0 && c.CurrentCapacity >= c.MaxCapacity,
	}
}
