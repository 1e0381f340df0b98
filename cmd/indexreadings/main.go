package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"readings-index/pkg/catalog"
	"readings-index/pkg/config"
	"readings-index/pkg/content"
	"readings-index/pkg/db"
	"readings-index/pkg/domain"
	"readings-index/pkg/indexer"
	"readings-index/pkg/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// options are the command-line settings that are not part of config.Config.
type options struct {
	check    bool
	syllabus string
}

// parseFlags applies command-line overrides to cfg.
func parseFlags(args []string, cfg *config.Config) (options, error) {
	fs := flag.NewFlagSet("indexreadings", flag.ContinueOnError)

	var (
		readingsDir = fs.String("dir", cfg.ReadingsDir, "Directory the catalog's PDF paths are relative to")
		catalogFile = fs.String("catalog", cfg.CatalogFile, "YAML catalog to use instead of the built-in reading list")
		backend     = fs.String("backend", cfg.Backend, "Store backend: supabase, postgres or mongo")
		table       = fs.String("table", cfg.Table, "Table (or collection) to upsert reading content into")
		debug       = fs.Bool("debug", cfg.Debug, "Enable debug logging")

		check    = fs.Bool("check", false, "Check the catalog against the syllabus page and readings dir, then exit")
		syllabus = fs.String("syllabus", "index.html", "Syllabus HTML page used by -check")
	)
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	cfg.ReadingsDir = *readingsDir
	cfg.CatalogFile = *catalogFile
	cfg.Backend = strings.ToLower(*backend)
	cfg.Table = *table
	cfg.Debug = *debug

	return options{check: *check, syllabus: *syllabus}, nil
}

func run(args []string, stdout io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return 1
	}

	opts, err := parseFlags(args, cfg)
	if err != nil {
		return 2
	}

	logger, err := logging.New(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		return 1
	}
	defer logger.Sync()

	entries, err := loadCatalog(cfg.CatalogFile)
	if err != nil {
		logger.Error("Failed to load catalog", zap.String("file", cfg.CatalogFile), zap.Error(err))
		return 1
	}

	if opts.check {
		return runCheck(logger, stdout, entries, opts.syllabus, cfg.ReadingsDir)
	}

	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration error", zap.Error(err))
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	publisher, closeStore, err := newPublisher(ctx, cfg)
	if err != nil {
		logger.Error("Failed to connect to store", zap.String("backend", cfg.Backend), zap.Error(err))
		return 1
	}
	defer closeStore()

	ix, err := indexer.New(indexer.Config{
		ReadingsDir: cfg.ReadingsDir,
		Extractor:   content.NewPDFExtractor(),
		Publisher:   publisher,
		Logger:      logger,
	})
	if err != nil {
		logger.Error("Failed to create indexer", zap.Error(err))
		return 1
	}

	start := time.Now()
	summary, err := ix.Run(ctx, entries)
	summary.Print(stdout)
	logger.Info("Done", zap.Duration("duration", time.Since(start)))

	return exitCode(summary, err)
}

// exitCode is 0 only for a run that finished with every reading indexed.
func exitCode(summary indexer.Summary, runErr error) int {
	if runErr != nil || !summary.OK() {
		return 1
	}
	return 0
}

func loadCatalog(path string) ([]domain.ReadingEntry, error) {
	if path == "" {
		return catalog.Readings(), nil
	}
	return catalog.LoadFile(path)
}

// newPublisher connects to the configured store. The returned func closes it.
func newPublisher(ctx context.Context, cfg *config.Config) (indexer.Publisher, func(), error) {
	switch cfg.Backend {
	case config.BackendSupabase:
		client := db.NewSupabaseClient(db.SupabaseConfig{
			SupabaseURL: cfg.SupabaseURL,
			SupabaseKey: cfg.SupabaseServiceKey,
			Table:       cfg.Table,
		})
		if err := client.Connect(ctx); err != nil {
			return nil, nil, err
		}
		return client, func() { _ = client.Close() }, nil

	case config.BackendPostgres:
		if cfg.DatabaseURL != "" {
			client := db.NewPostgresClient(db.PostgresConfig{DSN: cfg.DatabaseURL, Table: cfg.Table})
			if err := client.Connect(ctx); err != nil {
				return nil, nil, err
			}
			return client, func() { _ = client.Close() }, nil
		}

		client := db.NewSupabaseClient(db.SupabaseConfig{
			SupabaseURL: cfg.SupabaseURL,
			Password:    cfg.SupabaseDBPassword,
			Table:       cfg.Table,
		})
		if err := client.Connect(ctx); err != nil {
			return nil, nil, err
		}
		return client, func() { _ = client.Close() }, nil

	case config.BackendMongo:
		client := db.NewMongoClient(cfg.MongoURI, cfg.MongoDatabase, cfg.Table)
		if err := client.Connect(ctx); err != nil {
			return nil, nil, fmt.Errorf("connect to mongo: %w", err)
		}
		return client, func() { _ = client.Close(context.Background()) }, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}

func runCheck(logger *zap.Logger, stdout io.Writer, entries []domain.ReadingEntry, syllabusPath, readingsDir string) int {
	f, err := os.Open(syllabusPath)
	if err != nil {
		logger.Error("Failed to open syllabus", zap.String("file", syllabusPath), zap.Error(err))
		return 1
	}
	defer f.Close()

	links, err := catalog.ParseSyllabusLinks(f)
	if err != nil {
		logger.Error("Failed to parse syllabus", zap.String("file", syllabusPath), zap.Error(err))
		return 1
	}
	logger.Info("Checking catalog", zap.Int("readings", len(entries)), zap.Int("linked_pdfs", len(links)))

	report := catalog.CheckSyllabus(entries, links, readingsDir)
	report.Print(stdout)

	if !report.OK() {
		return 1
	}
	return 0
}
