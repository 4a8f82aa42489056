package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/billigi/lending-api/internal/core/domain"
	"github.com/billigi/lending-api/internal/core/ports"
)

type ReportService struct {
	repo   ports.ReportRepository
	logger zerolog.Logger
}

func NewReportService(repo ports.ReportRepository, logger zerolog.Logger) *ReportService {
	return &ReportService{repo: repo, logger: logger}
}

func (s *ReportService) ListReports(ctx context.Context) ([]*domain.Report, error) {
	reports, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	return reports, nil
}

// CreateReport files a lost or found report dated now. The reporter is
// recorded as the finder of a found report or the loser of a lost one.
func (s *ReportService) CreateReport(ctx context.Context, in ports.CreateReportInput) (*domain.Report, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Description) == "" {
		return nil, fmt.Errorf("%w: title and description are required", domain.ErrValidation)
	}
	if in.ActingName == "" {
		return nil, domain.ErrUnauthenticated
	}
	status, err := domain.ParseReportStatus(in.Status)
	if err != nil {
		return nil, err
	}

	report := domain.NewReport(in.Title, in.Description, status, in.ActingName, time.Now().UTC())
	created, err := s.repo.Create(ctx, report)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create report")
		return nil, err
	}

	s.logger.Info().Str("report_id", created.ID).Str("status", string(created.Status)).Str("by", in.ActingName).Msg("report created")
	return created, nil
}

// DeleteReport removes a report. Only its finder or loser may do so.
func (s *ReportService) DeleteReport(ctx context.Context, id, actingName string) error {
	if actingName == "" {
		return domain.ErrUnauthenticated
	}

	report, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !report.IsParty(actingName) {
		s.logger.Warn().Str("report_id", id).Str("by", actingName).Msg("delete refused: not a party to the report")
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("report_id", id).Str("by", actingName).Msg("report deleted")
	return nil
}
