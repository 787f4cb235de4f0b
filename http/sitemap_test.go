package http_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/fwojciec/recipeclip"
	recipehttp "github.com/fwojciec/recipeclip/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func urlset(urls ...string) string {
	out := `<?xml version="1.0" encoding="UTF-8"?><urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`
	for _, u := range urls {
		out += "<url><loc>" + u + "</loc></url>"
	}
	return out + "</urlset>"
}

func TestSitemapService_DiscoverURLs_FromRobotsTxt(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "User-agent: *\nSitemap: %s/recipes-sitemap.xml\n", server.URL)
	})
	mux.HandleFunc("/recipes-sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, urlset(server.URL+"/recipes/soup", server.URL+"/recipes/bread"))
	})

	svc := recipehttp.NewSitemapService(nil)
	urls, err := svc.DiscoverURLs(context.Background(), server.URL, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{server.URL + "/recipes/soup", server.URL + "/recipes/bread"}, urls)
}

func TestSitemapService_DiscoverURLs_FallbackToSitemapXML(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, urlset(server.URL+"/recipes/stew"))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	svc := recipehttp.NewSitemapService(nil)
	urls, err := svc.DiscoverURLs(context.Background(), server.URL, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{server.URL + "/recipes/stew"}, urls)
}

func TestSitemapService_DiscoverURLs_WalksSitemapIndex(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "Sitemap: %s/sitemap-index.xml\n", server.URL)
	})
	mux.HandleFunc("/sitemap-index.xml", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<?xml version="1.0"?><sitemapindex>
<sitemap><loc>%s/sitemap-1.xml</loc></sitemap>
<sitemap><loc>%s/sitemap-2.xml</loc></sitemap>
</sitemapindex>`, server.URL, server.URL)
	})
	mux.HandleFunc("/sitemap-1.xml", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, urlset(server.URL+"/recipes/one"))
	})
	mux.HandleFunc("/sitemap-2.xml", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, urlset(server.URL+"/recipes/two", server.URL+"/recipes/one"))
	})

	svc := recipehttp.NewSitemapService(nil)
	urls, err := svc.DiscoverURLs(context.Background(), server.URL, nil)

	require.NoError(t, err)
	// Deduplicated across sitemaps, first occurrence order.
	assert.Equal(t, []string{server.URL + "/recipes/one", server.URL + "/recipes/two"}, urls)
}

func TestSitemapService_DiscoverURLs_AppliesFilter(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "Sitemap: %s/sitemap.xml\n", server.URL)
	})
	mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, urlset(
			server.URL+"/recipes/soup",
			server.URL+"/about-us",
		))
	})

	filter := &recipeclip.URLFilter{Include: []*regexp.Regexp{regexp.MustCompile(`/recipes/`)}}

	svc := recipehttp.NewSitemapService(nil)
	urls, err := svc.DiscoverURLs(context.Background(), server.URL, filter)

	require.NoError(t, err)
	assert.Equal(t, []string{server.URL + "/recipes/soup"}, urls)
}

func TestSitemapService_DiscoverURLs_NoSitemapFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	svc := recipehttp.NewSitemapService(nil)
	urls, err := svc.DiscoverURLs(context.Background(), server.URL, nil)

	require.NoError(t, err)
	assert.Empty(t, urls)
	assert.NotNil(t, urls)
}

func TestSitemapService_DiscoverURLs_ContextCancellation(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, urlset("https://example.com/r"))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := recipehttp.NewSitemapService(nil)
	_, err := svc.DiscoverURLs(ctx, server.URL, nil)

	require.Error(t, err)
}
