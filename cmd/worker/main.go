// The worker imports SMS backup dumps queued as parse-batch jobs and
// persists the parsed transactions.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/dvloznov/sms-ledger/internal/config"
	"github.com/dvloznov/sms-ledger/internal/engine"
	"github.com/dvloznov/sms-ledger/internal/importer"
	"github.com/dvloznov/sms-ledger/internal/infra/bigquery"
	"github.com/dvloznov/sms-ledger/internal/jobs"
	"github.com/dvloznov/sms-ledger/internal/jobs/inmemory"
	"github.com/dvloznov/sms-ledger/internal/logger"
	"github.com/dvloznov/sms-ledger/internal/store/sqlite"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config (defaults apply when empty)")
	workers := flag.Int("workers", 2, "concurrent import workers")
	flag.Parse()

	log := logger.New()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load config")
		}
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		log = log.Level(level)
	}

	store, err := sqlite.Open(cfg.Store.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Store.Path).Msg("Failed to open store")
	}
	defer store.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var sink importer.Sink
	if cfg.BigQuery.Enabled() {
		bqSink, err := bigquery.NewSink(ctx, cfg.BigQuery.ProjectID, cfg.BigQuery.Dataset, cfg.BigQuery.Table)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to open analytics sink")
		}
		defer bqSink.Close()
		sink = bqSink
		log.Info().Str("project", cfg.BigQuery.ProjectID).Msg("Analytics sink enabled")
	}

	imp := importer.New(engine.New(log), store, sink, cfg.MatchWindow.Std(), log)

	jobStore := inmemory.NewStore()
	jobQueue := inmemory.NewQueue(100, *workers, jobStore)

	log.Info().Msg("Starting worker service")

	handler := func(ctx context.Context, job jobs.Job) error {
		batchJob, ok := job.(*jobs.ParseBatchJob)
		if !ok {
			return fmt.Errorf("unexpected job type: %T", job)
		}

		log.Info().
			Str("job_id", batchJob.JobID).
			Str("source", batchJob.Source).
			Msg("Processing batch import")

		res, err := imp.ImportSource(ctx, batchJob.Source)
		if err != nil {
			log.Error().
				Err(err).
				Str("job_id", batchJob.JobID).
				Str("source", batchJob.Source).
				Msg("Batch import failed")
			return err
		}

		batchJob.Parsed = res.Parsed
		batchJob.Skipped = res.Skipped
		batchJob.Malformed = res.Malformed

		log.Info().
			Str("job_id", batchJob.JobID).
			Int("parsed", res.Parsed).
			Int("duplicates", res.Duplicates).
			Int("candidates", res.Candidates).
			Msg("Batch import completed")
		return nil
	}

	if err := jobQueue.Start(ctx, handler); err != nil {
		log.Fatal().Err(err).Msg("Failed to start job consumer")
	}

	// Sources named on the command line become the initial jobs.
	for _, source := range flag.Args() {
		job := &jobs.ParseBatchJob{Source: source}
		if err := jobQueue.PublishParseBatch(ctx, job); err != nil {
			log.Error().Err(err).Str("source", source).Msg("Failed to enqueue batch")
		}
	}

	log.Info().Msg("Worker service started, waiting for jobs...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down worker service...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := jobQueue.Stop(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error during graceful shutdown")
	}
	if err := jobQueue.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close job queue")
	}

	log.Info().Msg("Worker service exited")
}
