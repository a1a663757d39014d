// Package reports generates downloadable medication adherence reports.
package reports

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/cardiovital/server/internal/blob"
	"github.com/cardiovital/server/internal/storage"
	"github.com/cardiovital/server/internal/userctx"
	"github.com/google/uuid"
)

var (
	ErrInvalidDate      = errors.New("invalid date format")
	ErrInvalidDateRange = errors.New("from date must be before to date")
	ErrRangeTooLarge    = errors.New("date range too large")
	ErrProfileRequired  = errors.New("profile required")
	ErrReportNotFound   = errors.New("report not found")
)

// Service handles report lifecycle: generation, storage, download.
type Service struct {
	storage    storage.ReportsStorage
	generator  *Generator
	blobStore  blob.Store
	maxDays    int
	presignTTL int
	localMode  bool
}

// NewService creates a new service. A nil blobStore selects local mode,
// where PDF bytes live next to the metadata.
func NewService(st storage.ReportsStorage, generator *Generator, blobStore blob.Store, maxDays, presignTTL int) *Service {
	if maxDays <= 0 {
		maxDays = 90
	}
	if presignTTL <= 0 {
		presignTTL = 900
	}
	return &Service{
		storage:    st,
		generator:  generator,
		blobStore:  blobStore,
		maxDays:    maxDays,
		presignTTL: presignTTL,
		localMode:  blobStore == nil,
	}
}

// CreateReport generates and stores an adherence report.
func (s *Service) CreateReport(ctx context.Context, req CreateReportRequest, baseURL string) (*ReportDTO, error) {
	owner := userIDFromContext(ctx)

	days, err := inclusiveDays(req.From, req.To)
	if err != nil {
		return nil, err
	}
	if days > s.maxDays {
		return nil, ErrRangeTooLarge
	}

	data, err := s.generator.Generate(ctx, owner, req.From, req.To)
	if err != nil {
		return nil, err
	}

	report := storage.ReportMeta{
		ID:          uuid.New(),
		OwnerUserID: owner,
		FromDate:    req.From,
		ToDate:      req.To,
		SizeBytes:   int64(len(data)),
		Status:      StatusReady,
	}

	if s.localMode {
		report.Data = data
	} else {
		objectKey := fmt.Sprintf("reports/%s/%s_%s_%s.pdf", owner, req.From, req.To, report.ID)
		if _, err := s.blobStore.PutObject(ctx, objectKey, data, "application/pdf"); err != nil {
			return nil, fmt.Errorf("failed to upload report: %w", err)
		}
		report.ObjectKey = &objectKey
	}

	if err := s.storage.CreateReport(ctx, &report); err != nil {
		return nil, fmt.Errorf("failed to save report metadata: %w", err)
	}

	dto := s.toDTO(ctx, report, baseURL)
	return &dto, nil
}

// ListReports returns the caller's reports, newest first.
func (s *Service) ListReports(ctx context.Context, limit, offset int, baseURL string) ([]ReportDTO, error) {
	owner := userIDFromContext(ctx)

	if limit <= 0 || limit > 100 {
		limit = 20
	}

	reports, err := s.storage.ListReports(ctx, owner, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	dtos := make([]ReportDTO, 0, len(reports))
	for _, r := range reports {
		dtos = append(dtos, s.toDTO(ctx, r, baseURL))
	}
	return dtos, nil
}

// GetReportData returns the PDF bytes for download.
func (s *Service) GetReportData(ctx context.Context, id uuid.UUID) ([]byte, error) {
	owner := userIDFromContext(ctx)

	meta, ok, err := s.storage.GetReport(ctx, owner, id)
	if err != nil || !ok {
		return nil, ErrReportNotFound
	}

	if s.localMode || meta.ObjectKey == nil {
		if len(meta.Data) == 0 {
			return nil, ErrReportNotFound
		}
		return meta.Data, nil
	}

	data, err := s.blobStore.GetObject(ctx, *meta.ObjectKey)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch report object: %w", err)
	}
	return data, nil
}

// DeleteReport removes a report and its stored file.
func (s *Service) DeleteReport(ctx context.Context, id uuid.UUID) error {
	owner := userIDFromContext(ctx)

	meta, ok, err := s.storage.GetReport(ctx, owner, id)
	if err != nil || !ok {
		return ErrReportNotFound
	}

	if !s.localMode && meta.ObjectKey != nil {
		if err := s.blobStore.DeleteObject(ctx, *meta.ObjectKey); err != nil {
			// Metadata deletion matters more than the orphaned object
			log.Printf("reports: failed to delete object %s: %v", *meta.ObjectKey, err)
		}
	}

	if err := s.storage.DeleteReport(ctx, owner, id); err != nil {
		return fmt.Errorf("failed to delete report metadata: %w", err)
	}
	return nil
}

// toDTO converts storage.ReportMeta to ReportDTO with a download URL.
func (s *Service) toDTO(ctx context.Context, meta storage.ReportMeta, baseURL string) ReportDTO {
	downloadURL := fmt.Sprintf("%s/v1/reports/%s/download", strings.TrimSuffix(baseURL, "/"), meta.ID)
	if !s.localMode && meta.ObjectKey != nil {
		if presigned, err := s.blobStore.PresignGet(ctx, *meta.ObjectKey, s.presignTTL); err == nil {
			downloadURL = presigned
		}
	}

	return ReportDTO{
		ID:          meta.ID,
		From:        meta.FromDate,
		To:          meta.ToDate,
		DownloadURL: downloadURL,
		SizeBytes:   meta.SizeBytes,
		Status:      meta.Status,
		CreatedAt:   meta.CreatedAt,
	}
}

func userIDFromContext(ctx context.Context) string {
	if userID, ok := userctx.GetUserID(ctx); ok && strings.TrimSpace(userID) != "" {
		return userID
	}
	return "default"
}
