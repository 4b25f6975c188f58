package mock

import (
	"context"

	"github.com/fwojciec/televideo"
)

var _ televideo.PageService = (*PageService)(nil)

// PageService is a mock implementation of televideo.PageService.
type PageService struct {
	FetchPageFn  func(ctx context.Context, page, subPage int) (*televideo.Page, error)
	FetchImageFn func(ctx context.Context, page, subPage int) (*televideo.PageImage, error)
	ClearCacheFn func()
}

func (s *PageService) FetchPage(ctx context.Context, page, subPage int) (*televideo.Page, error) {
	return s.FetchPageFn(ctx, page, subPage)
}

func (s *PageService) FetchImage(ctx context.Context, page, subPage int) (*televideo.PageImage, error) {
	return s.FetchImageFn(ctx, page, subPage)
}

func (s *PageService) ClearCache() {
	s.ClearCacheFn()
}
