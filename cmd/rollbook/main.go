// Package main provides the CLI entry point for rollbook-go.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/ukaji3/rollbook-go/internal/config"
	"github.com/ukaji3/rollbook-go/internal/logging"
	"github.com/ukaji3/rollbook-go/pkg/rollbook"
	"github.com/ukaji3/rollbook-go/pkg/rollbook/comment"
	"github.com/ukaji3/rollbook-go/pkg/rollbook/models"
	"github.com/ukaji3/rollbook-go/pkg/rollbook/output"
	"github.com/ukaji3/rollbook-go/pkg/rollbook/parser"
)

var (
	outputPath  string
	pretty      bool
	role        string
	sheet       string
	asText      bool
	useUUID     bool
	subject     string
	batchSize   int
	concurrency int
	logLevel    string
	envFile     string
)

var mediaTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
	".pdf":  "application/pdf",
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rollbook",
		Short: "Extract student records from grade sheets",
		Long: `rollbook-go reads Vietnamese grade sheets (xlsx, csv or pasted text),
extracts one record per student and can generate report-card comments.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default from LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Environment file to load if present")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().StringVar(&role, "role", "subject", "Teacher role: subject (GVBM) or homeroom (GVCN)")
	rootCmd.PersistentFlags().StringVar(&sheet, "sheet", "", "Worksheet to read (default: first sheet)")
	rootCmd.PersistentFlags().BoolVar(&asText, "text", false, "Treat the input as pasted text")
	rootCmd.PersistentFlags().BoolVar(&useUUID, "uuid", false, "Use UUIDs instead of sequential record ids")

	parseCmd := &cobra.Command{
		Use:   "parse [input|-]",
		Short: "Extract records and print them as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}

	commentCmd := &cobra.Command{
		Use:   "comment [input|-]",
		Short: "Extract records and generate a comment for each",
		Args:  cobra.ExactArgs(1),
		RunE:  runComment,
	}
	commentCmd.Flags().StringVar(&subject, "subject", "", "Subject label (default: detected from the sheet)")
	commentCmd.Flags().IntVar(&batchSize, "batch-size", 0, "Records per request (default from COMMENT_BATCH_SIZE)")
	commentCmd.Flags().IntVar(&concurrency, "concurrency", 0, "Batches in flight (default from COMMENT_CONCURRENCY)")

	pingCmd := &cobra.Command{
		Use:   "ping",
		Short: "Check the API key and backend connectivity",
		Args:  cobra.NoArgs,
		RunE:  runPing,
	}

	rootCmd.AddCommand(parseCmd, commentCmd, pingCmd)
	return rootCmd
}

func setup() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	return cfg, logging.New(os.Stderr, level), nil
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	result, err := load(cmd.Context(), cfg, log, args[0])
	if err != nil {
		return err
	}
	if result.Len() == 0 {
		log.Warn().Msg("no valid rows found")
	}
	return write(result)
}

func runComment(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	result, err := load(ctx, cfg, log, args[0])
	if err != nil {
		return err
	}
	if result.Len() == 0 {
		log.Warn().Msg("no valid rows found")
		return write(result)
	}

	r, _ := models.ParseRole(role)
	subj := subject
	if subj == "" {
		subj = result.Subject
	}

	size := cfg.Comments.BatchSize
	if batchSize > 0 {
		size = batchSize
	}
	workers := cfg.Comments.Concurrency
	if concurrency > 0 {
		workers = concurrency
	}

	svc := comment.NewService(newClient(cfg, log),
		comment.WithBatchSize(size),
		comment.WithConcurrency(workers),
		comment.WithLogger(log),
	)
	svc.OnBatch = func(batch []models.Record) {
		log.Info().Int("records", len(batch)).Msg("comments received")
	}

	records, err := svc.Annotate(ctx, comment.MarkProcessing(result.Records), r, subj)
	result.Records = records
	if err != nil {
		log.Error().Msg(describe(err))
		if werr := write(result); werr != nil {
			return werr
		}
		return err
	}
	return write(result)
}

func runPing(cmd *cobra.Command, _ []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	if err := newClient(cfg, log).Ping(cmd.Context()); err != nil {
		return errors.New(describe(err))
	}
	fmt.Fprintln(cmd.OutOrStdout(), "ok")
	return nil
}

func newClient(cfg *config.Config, log zerolog.Logger) *comment.GeminiClient {
	return comment.NewGeminiClient(comment.ClientConfig{
		APIKey:  cfg.Gemini.APIKey,
		BaseURL: cfg.Gemini.BaseURL,
		Model:   cfg.Gemini.Model,
		Timeout: cfg.Gemini.Timeout,
		Logger:  &log,
	})
}

// load parses the input named by arg ("-" is stdin).
func load(ctx context.Context, cfg *config.Config, log zerolog.Logger, arg string) (*models.ParseResult, error) {
	r, err := models.ParseRole(role)
	if err != nil {
		return nil, err
	}
	opts := rollbook.Options{Role: r, Sheet: sheet, Logger: &log}
	if useUUID {
		opts.IDs = parser.NewUUIDIDs()
	}

	if arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return rollbook.ParseText(string(data), opts), nil
	}

	if asText {
		data, err := os.ReadFile(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
		return rollbook.ParseText(string(data), opts), nil
	}

	if mime, ok := mediaTypes[strings.ToLower(filepath.Ext(arg))]; ok {
		data, err := os.ReadFile(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
		result, err := newClient(cfg, log).ExtractMedia(ctx, data, mime, r, opts.IDs)
		if err != nil {
			return nil, errors.New(describe(err))
		}
		return result, nil
	}

	result, err := rollbook.Extract(arg, opts)
	if err != nil {
		return nil, fmt.Errorf("extraction failed: %w", err)
	}
	return result, nil
}

func write(result *models.ParseResult) error {
	jsonData, err := output.ToJSON(result, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Println(string(jsonData))
	return nil
}

// describe turns backend errors into a user-facing message.
func describe(err error) string {
	switch {
	case errors.Is(err, comment.ErrMissingCredentials):
		return "missing or rejected API key: set GEMINI_API_KEY"
	case errors.Is(err, comment.ErrRateLimited):
		return "quota exhausted, wait a minute and retry"
	case errors.Is(err, comment.ErrConnectivity):
		return fmt.Sprintf("cannot reach the AI backend: %v", err)
	default:
		return err.Error()
	}
}
