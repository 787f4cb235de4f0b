package mock

import (
	"context"

	"github.com/fwojciec/recipeclip"
)

var _ recipeclip.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of recipeclip.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *recipeclip.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *recipeclip.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
