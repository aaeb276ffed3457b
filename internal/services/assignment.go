package services

import (
	"context"
	"net/http"
	"time"

	"testpark/internal/dto"
	"testpark/internal/entities"
	"testpark/internal/repositories"
	"testpark/internal/workflow"
	apperrors "testpark/pkg/errors"
	"testpark/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AssignmentServiceInterface interface {
	MatchCandidates(ctx context.Context, orderID int) (*dto.MatchResponseDTO, error)
	AssignCompanies(ctx context.Context, payload dto.AssignCompaniesDTO) (*dto.AssignmentResultDTO, error)
}

type AssignmentService struct {
	orderRepository   repositories.OrderRepositoryInterface
	companyRepository repositories.CompanyRepositoryInterface
	groupPurchaseRepo repositories.GroupPurchaseRepositoryInterface
	historyRepository repositories.HistoryRepositoryInterface
	txManager         repositories.TxManagerInterface
	logger            *zap.Logger
}

func NewAssignmentService(
	orderRepository repositories.OrderRepositoryInterface,
	companyRepository repositories.CompanyRepositoryInterface,
	groupPurchaseRepo repositories.GroupPurchaseRepositoryInterface,
	historyRepository repositories.HistoryRepositoryInterface,
	txManager repositories.TxManagerInterface,
	logger *zap.Logger,
) AssignmentServiceInterface {
	return &AssignmentService{
		orderRepository:   orderRepository,
		companyRepository: companyRepository,
		groupPurchaseRepo: groupPurchaseRepo,
		historyRepository: historyRepository,
		txManager:         txManager,
		logger:            logger,
	}
}

// MatchCandidates scores every active company against the order and reports
// each live group-purchase round's availability. Ranking is advisory: nothing
// here writes to the order.
func (s *AssignmentService) MatchCandidates(ctx context.Context, orderID int) (*dto.MatchResponseDTO, error) {
	order, err := s.orderRepository.FindOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	companies, err := s.companyRepository.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	groupPurchases, err := s.groupPurchaseRepo.GetGroupPurchases(ctx)
	if err != nil {
		return nil, err
	}

	// Companies carry no blackout calendar of their own; their group-purchase
	// rounds do.
	blackouts := make(map[int][]time.Time)
	for _, gp := range groupPurchases {
		blackouts[gp.CompanyID] = append(blackouts[gp.CompanyID], gp.UnavailableDates...)
	}

	profile := orderProfile(order)
	companyByID := make(map[int]entities.Company, len(companies))
	profiles := make([]workflow.CompanyProfile, 0, len(companies))
	for _, c := range companies {
		companyByID[c.ID] = c
		profiles = append(profiles, workflow.CompanyProfile{
			ID:               c.ID,
			Name:             c.Name,
			ServiceAreas:     c.ServiceAreas,
			ServiceTypes:     c.ServiceTypes,
			UnavailableDates: blackouts[c.ID],
			CurrentCapacity:  c.CurrentCapacity,
			MaxCapacity:      c.MaxCapacity,
			Suspended:        c.Suspended,
		})
	}

	results := workflow.RankCandidates(profile, profiles)
	results = workflow.PinDesignated(results, order.Designation)

	candidates := make([]dto.MatchCandidateDTO, 0, len(results))
	for _, r := range results {
		c := companyByID[r.CompanyID]
		candidates = append(candidates, dto.MatchCandidateDTO{
			MatchResult: r,
			Grade:       c.Grade,
			Region:      c.Region,
			TierColor:   workflow.TierColor(r.Tier),
		})
	}

	gpDTOs := make([]dto.GroupPurchaseDTO, 0, len(groupPurchases))
	for _, gp := range groupPurchases {
		areaOK, dateOK, warnings := workflow.GroupPurchaseAvailability(profile, gp.AvailableAreas, gp.UnavailableDates)
		item := toGroupPurchaseDTO(gp)
		item.AreaAvailable = &areaOK
		item.DateAvailable = &dateOK
		item.Warnings = warnings
		gpDTOs = append(gpDTOs, item)
	}

	return &dto.MatchResponseDTO{
		OrderID:        orderID,
		Candidates:     candidates,
		GroupPurchases: gpDTOs,
	}, nil
}

// AssignCompanies allocates the selected companies and group-purchase rounds
// to the order. Selections already assigned among rows sharing the order's
// post link are dropped; the first surviving selection fills the order itself
// when it is still unassigned, every further one spawns a copy. All row
// mutations and history entries commit in one transaction.
func (s *AssignmentService) AssignCompanies(ctx context.Context, payload dto.AssignCompaniesDTO) (*dto.AssignmentResultDTO, error) {
	author := utils.GetUserNameFromCtx(ctx)

	selection, err := s.loadSelection(ctx, payload)
	if err != nil {
		return nil, err
	}
	if len(selection) == 0 {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, workflow.ErrNoSelection.Error(), workflow.ErrNoSelection, nil)
	}

	result := &dto.AssignmentResultDTO{}
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		order, err := s.orderRepository.FindOrderForUpdateInTx(ctx, tx, payload.OrderID)
		if err != nil {
			return err
		}

		existing := make(map[string]struct{})
		if order.AssignedCompany.String != "" {
			existing[order.AssignedCompany.String] = struct{}{}
		}
		if order.PostLink.String != "" {
			siblings, err := s.orderRepository.AssignedCompaniesByPostLink(ctx, order.PostLink.String)
			if err != nil {
				return err
			}
			for _, name := range siblings {
				existing[name] = struct{}{}
			}
		}

		targets, err := workflow.PlanAssignment(order.AssignedCompany.String, selection, existing)
		if err != nil {
			return apperrors.NewHttpError(http.StatusBadRequest, err.Error(), err, nil)
		}

		txID := uuid.New()
		for _, target := range targets {
			if target.IsPrimaryRow {
				if err := workflow.CanTransition(workflow.Status(order.Status), workflow.StatusAssigned, target.CompanyName); err != nil {
					return apperrors.NewHttpError(http.StatusBadRequest, err.Error(), err, nil)
				}
				if err := s.orderRepository.UpdateAssignmentInTx(ctx, tx, order.ID, target.CompanyName, string(workflow.StatusAssigned)); err != nil {
					return err
				}
				if err := s.historyRepository.InsertStatusHistoryInTx(ctx, tx, entities.StatusHistory{
					OrderID:   order.ID,
					TxID:      txID,
					Author:    author,
					OldStatus: order.Status,
					NewStatus: string(workflow.StatusAssigned),
				}); err != nil {
					return err
				}
			} else {
				// Copies keep 대기중: they carry assigned_company but await
				// their own explicit transition.
				newID, err := s.orderRepository.CopyOrderInTx(ctx, tx, *order, target.CompanyName)
				if err != nil {
					return err
				}
				result.NewOrderIDs = append(result.NewOrderIDs, newID)
			}
			result.AssignedCompanies = append(result.AssignedCompanies, target.CompanyName)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.orderRepository.FindOrder(ctx, payload.OrderID)
	if err != nil {
		return nil, err
	}
	result.Order = toOrderDTO(*updated)

	s.logger.Info("업체 할당",
		zap.Int("orderId", payload.OrderID),
		zap.Strings("companies", result.AssignedCompanies),
		zap.Ints("newOrderIds", result.NewOrderIDs),
	)
	return result, nil
}

func (s *AssignmentService) loadSelection(ctx context.Context, payload dto.AssignCompaniesDTO) ([]workflow.SelectionItem, error) {
	selection := make([]workflow.SelectionItem, 0, len(payload.CompanyIDs)+len(payload.ServiceIDs))

	companies, err := s.companyRepository.FindCompaniesByIDs(ctx, payload.CompanyIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[int]entities.Company, len(companies))
	for _, c := range companies {
		byID[c.ID] = c
	}
	for _, id := range payload.CompanyIDs {
		c, ok := byID[id]
		if !ok {
			return nil, apperrors.NewInvalidInputError("존재하지 않는 업체입니다: %d", id)
		}
		selection = append(selection, workflow.SelectionItem{CompanyID: c.ID, CompanyName: c.Name})
	}

	groupPurchases, err := s.groupPurchaseRepo.FindGroupPurchasesByIDs(ctx, payload.ServiceIDs)
	if err != nil {
		return nil, err
	}
	gpByID := make(map[int]entities.GroupPurchase, len(groupPurchases))
	for _, gp := range groupPurchases {
		gpByID[gp.ID] = gp
	}
	for _, id := range payload.ServiceIDs {
		gp, ok := gpByID[id]
		if !ok {
			return nil, apperrors.NewInvalidInputError("존재하지 않는 공동구매입니다: %d", id)
		}
		selection = append(selection, workflow.SelectionItem{
			CompanyID:   gp.CompanyID,
			ServiceID:   gp.ID,
			CompanyName: gp.CompanyName,
		})
	}
	return selection, nil
}

func orderProfile(o *entities.Order) workflow.OrderProfile {
	profile := workflow.OrderProfile{
		Area:             o.Area,
		ConstructionType: o.ConstructionType,
	}
	if o.ScheduledDate.Valid {
		d := o.ScheduledDate.Time
		profile.ScheduledDate = &d
	}
	return profile
}

func toGroupPurchaseDTO(gp entities.GroupPurchase) dto.GroupPurchaseDTO {
	dates := make([]string, 0, len(gp.UnavailableDates))
	for _, d := range gp.UnavailableDates {
		dates = append(dates, d.Format(dateLayout))
	}
	return dto.GroupPurchaseDTO{
		ID:               gp.ID,
		Round:            gp.Round,
		CompanyID:        gp.CompanyID,
		CompanyName:      gp.CompanyName,
		DisplayName:      gp.DisplayName,
		Link:             gp.Link,
		AvailableAreas:   gp.AvailableAreas,
		UnavailableDates: dates,
	}
}
