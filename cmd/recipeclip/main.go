package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/recipeclip"
	"github.com/fwojciec/recipeclip/bloom"
	"github.com/fwojciec/recipeclip/clip"
	"github.com/fwojciec/recipeclip/fs"
	"github.com/fwojciec/recipeclip/gemini"
	"github.com/fwojciec/recipeclip/goquery"
	"github.com/fwojciec/recipeclip/htmltomarkdown"
	reciphttp "github.com/fwojciec/recipeclip/http"
	"github.com/fwojciec/recipeclip/jsonld"
	"github.com/fwojciec/recipeclip/readability"
	"github.com/fwojciec/recipeclip/rod"
	recipslog "github.com/fwojciec/recipeclip/slog"
	"github.com/fwojciec/recipeclip/sqlite"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	RecipeService recipeclip.RecipeService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("recipeclip"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'recipeclip --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose)

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set RECIPECLIP_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.RecipeService = sqlite.NewRecipeService(m.DB)
	deps.DB = m.DB
	deps.Recipes = m.RecipeService
	deps.Sitemaps = reciphttp.NewSitemapService(nil)

	// Wire command-specific dependencies based on command
	if cmd == "clip" {
		var fetcher recipeclip.Fetcher
		if cli.Clip.Render {
			f, err := rod.NewFetcher()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --render")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = f
		} else {
			fetcher = reciphttp.NewFetcher()
		}
		defer fetcher.Close()

		deps.Clipper = newClipper(fetcher, deps.Recipes, logger)
		deps.Previewer = readability.NewPreviewer()
	}

	if cmd == "import" {
		fetcher := reciphttp.NewFetcher()
		defer fetcher.Close()

		clipper := newClipper(fetcher, deps.Recipes, logger)
		clipper.Limiter = clip.NewDomainLimiter(cli.Import.Rate)
		clipper.Seen = bloom.NewFilter(100000, 0.01)
		clipper.Concurrency = cli.Import.Concurrency
		deps.Clipper = clipper
	}

	if cmd == "export" {
		deps.Writer = fs.NewExporter(cli.Export.Dir)
	}

	if cmd == "ask" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		deps.Asker = gemini.NewAsker(client, m.RecipeService)
	}

	return kongCtx.Run(deps)
}

// newClipper assembles the clip pipeline around the given fetcher. The
// structured data extractor runs first with the heuristic extractor as
// fallback, both instrumented with debug logging.
func newClipper(fetcher recipeclip.Fetcher, recipes recipeclip.RecipeService, logger *slog.Logger) *clip.Clipper {
	return &clip.Clipper{
		Fetcher: recipslog.NewLoggingFetcher(fetcher, logger),
		Parse:   parseDocument,
		Extractor: recipeclip.Extractors{
			recipslog.NewLoggingExtractor(jsonld.NewExtractor(), "jsonld", logger),
			recipslog.NewLoggingExtractor(goquery.NewHeuristicExtractor(), "heuristic", logger),
		},
		Converter: htmltomarkdown.NewConverter(),
		Recipes:   recipes,
	}
}

func parseDocument(rawHTML string) (recipeclip.Document, error) {
	doc, err := goquery.ParseDocument(rawHTML)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func defaultDBPath() string {
	if path := os.Getenv("RECIPECLIP_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "recipeclip.db"
	}
	dir := filepath.Join(home, ".recipeclip")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "recipeclip.db")
}
