package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/televideo"
)

// Ensure LoggingPageService implements televideo.PageService.
var _ televideo.PageService = (*LoggingPageService)(nil)

// LoggingPageService wraps a PageService with operation logging.
type LoggingPageService struct {
	next   televideo.PageService
	logger *slog.Logger
}

// NewLoggingPageService creates a new LoggingPageService.
func NewLoggingPageService(next televideo.PageService, logger *slog.Logger) *LoggingPageService {
	return &LoggingPageService{next: next, logger: logger}
}

// FetchPage delegates to the wrapped service and logs the outcome.
func (s *LoggingPageService) FetchPage(ctx context.Context, page, subPage int) (*televideo.Page, error) {
	begin := time.Now()
	p, err := s.next.FetchPage(ctx, page, subPage)
	if err != nil {
		s.logger.Error("fetch page",
			"page", page,
			"sub_page", subPage,
			"duration", time.Since(begin),
			"err", err,
		)
		return nil, err
	}
	s.logger.Info("fetch page",
		"page", page,
		"sub_page", subPage,
		"lines", len(p.Lines),
		"hash", p.ContentHash,
		"duration", time.Since(begin),
	)
	return p, nil
}

// FetchImage delegates to the wrapped service and logs the outcome.
func (s *LoggingPageService) FetchImage(ctx context.Context, page, subPage int) (*televideo.PageImage, error) {
	begin := time.Now()
	pi, err := s.next.FetchImage(ctx, page, subPage)
	if err != nil {
		s.logger.Error("fetch image",
			"page", page,
			"sub_page", subPage,
			"duration", time.Since(begin),
			"err", err,
		)
		return nil, err
	}
	bounds := pi.Image.Bounds()
	s.logger.Info("fetch image",
		"page", page,
		"sub_page", subPage,
		"width", bounds.Dx(),
		"height", bounds.Dy(),
		"duration", time.Since(begin),
	)
	return pi, nil
}

// ClearCache delegates to the wrapped service and logs that it ran.
func (s *LoggingPageService) ClearCache() {
	s.next.ClearCache()
	s.logger.Info("clear cache")
}
