package recipeclip

import (
	"context"
	"regexp"
)

// URLFilter restricts which discovered URLs are kept.
// A URL is kept if it matches at least one Include pattern.
// A nil filter or empty Include list keeps everything.
type URLFilter struct {
	Include []*regexp.Regexp
}

// Match returns true if the URL passes the filter.
func (f *URLFilter) Match(url string) bool {
	if f == nil || len(f.Include) == 0 {
		return true
	}
	for _, re := range f.Include {
		if re.MatchString(url) {
			return true
		}
	}
	return false
}

// SitemapService discovers page URLs from a website's sitemaps.
// Used by bulk import to enumerate candidate recipe pages.
type SitemapService interface {
	// DiscoverURLs finds all URLs from the site's sitemap, filtered.
	// Returns an empty slice (not nil) if no sitemaps are found.
	DiscoverURLs(ctx context.Context, baseURL string, filter *URLFilter) ([]string, error)
}
