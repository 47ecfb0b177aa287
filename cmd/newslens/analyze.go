package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/newslens/newslens/internal/config"
	"github.com/newslens/newslens/internal/extract"
	"github.com/newslens/newslens/internal/history"
	"github.com/newslens/newslens/internal/log"
	"github.com/newslens/newslens/internal/model"
	"github.com/newslens/newslens/internal/naver"
	"github.com/newslens/newslens/internal/pipeline"
	"github.com/newslens/newslens/internal/report"
	"github.com/newslens/newslens/internal/stopword"
	"github.com/newslens/newslens/internal/tokenizer"
)

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <keyword>",
		Short: "Collect news articles for a keyword and rank recurring keywords",
		Long: `Analyze searches Naver news for a keyword, fetches the matching article
pages, extracts keywords from each article body, and ranks the keywords
that recur across articles.

Articles that fail to fetch or parse are skipped and counted; the run
continues with the rest. A failing search request aborts the run.

Examples:
  # Analyze 10 articles for a keyword
  newslens analyze 경제

  # Collect 100 articles with 4 concurrent fetches
  newslens analyze --articles 100 --concurrency 4 경제

  # Export the ranking as CSV
  newslens analyze --csv -o ranking.csv 경제

  # Use a trained word-score model for tokenization
  newslens analyze --model scores.json --variant hybrid 경제

Configuration file (.newslens) example:
  profiles:
    default:
      client_id: "your-client-id"
      client_secret: "your-client-secret"`,
		Args: cobra.ExactArgs(1),
		RunE: runAnalyzeCmd,
	}

	// Collection flags
	cmd.Flags().IntP("articles", "n", config.DefaultArticles,
		"Number of articles to collect (max 1000)")
	cmd.Flags().Int("top-n", config.DefaultTopN,
		"Maximum keywords extracted per article")
	cmd.Flags().Int("page-size", config.DefaultPageSize,
		"Search results requested per API page (max 100)")
	cmd.Flags().Int("concurrency", config.DefaultConcurrency,
		"Number of articles fetched at once")
	cmd.Flags().Duration("article-delay", config.DefaultArticleDelay,
		"Minimum delay between article fetches")
	cmd.Flags().Duration("page-delay", config.DefaultPageDelay,
		"Delay between search API pages")

	// Tokenizer flags
	cmd.Flags().String("model", "",
		"Path to a trained word-score model file (JSON)")
	cmd.Flags().String("variant", "cohesion",
		"Model scoring variant: cohesion or hybrid")

	// Stopword flags
	cmd.Flags().String("stopwords", "",
		"Stopword file path (default: XDG data directory)")

	// Credential flags
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .newslens in current or home directory)")
	cmd.Flags().StringP("profile", "p", "",
		"Credential profile name from the config file")

	// Output flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON result (mutually exclusive with --markdown and --csv)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown result (mutually exclusive with --json and --csv)")
	cmd.Flags().Bool("csv", false,
		"Output CSV ranking (mutually exclusive with --json and --markdown)")
	cmd.Flags().StringP("output", "o", "",
		"Write result to specified file path (creates directories if needed)")
	cmd.Flags().Bool("no-history", false,
		"Do not save the run to the history database")

	return cmd
}

// runAnalyzeCmd executes the analyze command.
func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewSecureLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runAnalyze(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Keyword = args[0]
	cfg.Verbose = getVerboseFlag(cmd)

	var err error

	cfg.Articles, err = cmd.Flags().GetInt("articles")
	if err != nil {
		return nil, err
	}

	cfg.TopN, err = cmd.Flags().GetInt("top-n")
	if err != nil {
		return nil, err
	}

	cfg.PageSize, err = cmd.Flags().GetInt("page-size")
	if err != nil {
		return nil, err
	}

	cfg.Concurrency, err = cmd.Flags().GetInt("concurrency")
	if err != nil {
		return nil, err
	}

	cfg.ArticleDelay, err = cmd.Flags().GetDuration("article-delay")
	if err != nil {
		return nil, err
	}

	cfg.PageDelay, err = cmd.Flags().GetDuration("page-delay")
	if err != nil {
		return nil, err
	}

	cfg.ModelPath, err = cmd.Flags().GetString("model")
	if err != nil {
		return nil, err
	}

	cfg.ModelVariant, err = cmd.Flags().GetString("variant")
	if err != nil {
		return nil, err
	}

	cfg.StopwordPath, err = cmd.Flags().GetString("stopwords")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg.Profile, err = cmd.Flags().GetString("profile")
	if err != nil {
		return nil, err
	}

	cfg.JSONOutput, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownOutput, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.CSVOutput, err = cmd.Flags().GetBool("csv")
	if err != nil {
		return nil, err
	}

	cfg.OutputFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	noHistory, err := cmd.Flags().GetBool("no-history")
	if err != nil {
		return nil, err
	}
	cfg.SaveHistory = !noHistory
	cfg.DBDir = config.XDGDataDir()

	if cfg.StopwordPath == "" {
		cfg.StopwordPath = defaultStopwordPath()
	}

	return cfg, nil
}

// defaultStopwordPath returns the stopword file location in the XDG data dir.
func defaultStopwordPath() string {
	return filepath.Join(config.XDGDataDir(), "stopwords.json")
}

// runAnalyze executes the analysis.
func runAnalyze(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	profile, err := config.ResolveCredentials(cfg.ConfigFilePath, cfg.Profile)
	if err != nil {
		return err
	}

	logger.Info("starting analysis",
		"keyword", cfg.Keyword,
		"articles", cfg.Articles,
		"concurrency", cfg.Concurrency,
	)

	search := naver.NewClient(
		&http.Client{Timeout: cfg.SearchTimeout},
		profile.ClientID,
		profile.ClientSecret,
		naver.WithUserAgent(cfg.UserAgent),
	)

	// One-item probe so bad credentials fail here, before any article
	// is fetched.
	if err := search.Verify(ctx, cfg.Keyword); err != nil {
		return describeRunError(err)
	}
	logger.Debug("credentials verified", "profile", cfg.Profile)

	extractor := extract.NewExtractor(
		&http.Client{Timeout: cfg.ArticleTimeout},
		extract.WithUserAgent(cfg.UserAgent),
		extract.WithMaxBodySize(cfg.MaxBodySize),
	)

	tok, err := buildTokenizer(cfg, logger)
	if err != nil {
		return err
	}

	stops := stopword.NewStore(cfg.StopwordPath).Load()
	logger.Debug("stopwords loaded", "path", cfg.StopwordPath, "count", len(stops))

	progress := func(processed, total int) {
		fmt.Fprintf(os.Stderr, "\rProcessing articles... %d/%d", processed, total)
		if processed == total {
			fmt.Fprintln(os.Stderr)
		}
	}

	p := pipeline.New(search, extractor, tok, stops,
		pipeline.WithPageSize(cfg.PageSize),
		pipeline.WithConcurrency(cfg.Concurrency),
		pipeline.WithArticleDelay(cfg.ArticleDelay),
		pipeline.WithPageDelay(cfg.PageDelay),
		pipeline.WithProgress(progress),
		pipeline.WithLogger(logger),
	)

	result, err := p.Run(ctx, cfg.Keyword, cfg.Articles, cfg.TopN)
	if err != nil {
		return describeRunError(err)
	}

	if err := outputResult(cfg, result); err != nil {
		return err
	}

	if cfg.SaveHistory {
		if err := saveRun(ctx, cfg, result, logger); err != nil {
			logger.Error("failed to save run history", "error", err)
		}
	}

	return nil
}

// buildTokenizer loads the word-score model or falls back to pattern matching.
func buildTokenizer(cfg *config.Config, logger *slog.Logger) (tokenizer.Tokenizer, error) {
	if cfg.ModelPath == "" {
		logger.Debug("no model file; using pattern tokenizer")
		return tokenizer.NewPatternTokenizer(), nil
	}

	lt, err := tokenizer.LoadModel(cfg.ModelPath, tokenizer.Variant(cfg.ModelVariant))
	if err != nil {
		return nil, fmt.Errorf("failed to load model %s: %w", cfg.ModelPath, err)
	}
	logger.Debug("model loaded", "path", cfg.ModelPath, "words", lt.WordCount())
	return lt, nil
}

// describeRunError adds remediation hints for well-known API failures.
func describeRunError(err error) error {
	switch {
	case errors.Is(err, naver.ErrInvalidCredentials):
		return fmt.Errorf("%w\ncheck NEWSLENS_CLIENT_ID / NEWSLENS_CLIENT_SECRET or your profile", err)
	case errors.Is(err, naver.ErrQuotaExceeded):
		return fmt.Errorf("%w\nthe API quota resets daily; retry later or reduce --articles", err)
	default:
		return err
	}
}

// outputResult writes the result in the requested format.
func outputResult(cfg *config.Config, result *model.AnalysisResult) error {
	var output *os.File
	if cfg.OutputFile != "" {
		dir := filepath.Dir(cfg.OutputFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	} else {
		output = os.Stdout
	}

	var writer report.Writer
	switch {
	case cfg.JSONOutput:
		writer = report.NewJSONWriter(output, report.WithPrettyPrint())
	case cfg.MarkdownOutput:
		writer = report.NewMarkdownWriter(output)
	case cfg.CSVOutput:
		writer = report.NewCSVWriter(output)
	default:
		writer = report.NewSimpleWriter(output, report.WithArticleList(cfg.Verbose))
	}

	_, err := writer.Write(result)
	return err
}

// saveRun persists the result to the history database.
func saveRun(ctx context.Context, cfg *config.Config, result *model.AnalysisResult, logger *slog.Logger) error {
	db, err := history.Open(cfg.DBDir, history.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close()

	runID, err := db.SaveRun(ctx, result)
	if err != nil {
		return err
	}

	logger.Info("run saved to history", "runID", runID, "keyword", result.Keyword)
	return nil
}
