// Package importer runs bulk imports: stream an SMS backup dump
// through the engine and persist what parses.
package importer

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/dvloznov/sms-ledger/internal/banks"
	"github.com/dvloznov/sms-ledger/internal/domain"
	"github.com/dvloznov/sms-ledger/internal/engine"
	"github.com/dvloznov/sms-ledger/internal/gcsfetch"
	"github.com/dvloznov/sms-ledger/internal/infra/bigquery"
	"github.com/dvloznov/sms-ledger/internal/recon"
	"github.com/dvloznov/sms-ledger/internal/smsbackup"
	"github.com/dvloznov/sms-ledger/internal/store/sqlite"
)

// sinkBatchSize bounds how many rows accumulate before a streaming
// insert to the analytics sink.
const sinkBatchSize = 500

// Store is the persistence surface the importer needs.
type Store interface {
	Insert(ctx context.Context, sender, bank string, tx *domain.Transaction, receivedAt time.Time) (bool, error)
	FindCandidates(ctx context.Context, tx *domain.Transaction, receivedAt time.Time, window time.Duration) ([]sqlite.Stored, error)
	RecordCandidate(ctx context.Context, hashA, hashB, reason string) error
}

// Sink is the optional analytics surface.
type Sink interface {
	InsertTransactions(ctx context.Context, rows []*bigquery.TransactionRow) error
}

// Result summarizes one import run.
type Result struct {
	// Parsed counts records newly persisted.
	Parsed int

	// Duplicates counts records whose hash was already stored.
	Duplicates int

	// Skipped counts non-transaction messages and unknown senders.
	Skipped int

	// Malformed counts transactional messages no pattern covered.
	Malformed int

	// Candidates counts cross-institution duplicate signals recorded.
	Candidates int
}

// Importer wires the engine to its collaborators. Safe for concurrent
// use; all state lives in the collaborators.
type Importer struct {
	engine *engine.Engine
	store  Store
	sink   Sink // nil disables the analytics sink
	window time.Duration
	log    zerolog.Logger
}

// New builds an Importer. sink may be nil.
func New(e *engine.Engine, store Store, sink Sink, window time.Duration, log zerolog.Logger) *Importer {
	if window <= 0 {
		window = recon.DefaultWindow
	}
	return &Importer{engine: e, store: store, sink: sink, window: window, log: log}
}

// ImportSource imports a dump from a local path or a gs:// URI.
func (i *Importer) ImportSource(ctx context.Context, source string) (Result, error) {
	var (
		r   io.ReadCloser
		err error
	)
	if gcsfetch.IsURI(source) {
		r, err = gcsfetch.Open(ctx, source)
	} else {
		r, err = os.Open(source)
	}
	if err != nil {
		return Result{}, fmt.Errorf("ImportSource: open %s: %w", source, err)
	}
	defer r.Close()

	res, err := i.ImportReader(ctx, r)
	if err != nil {
		return res, fmt.Errorf("ImportSource: %s: %w", source, err)
	}
	return res, nil
}

// ImportReader streams a dump from r. Parse failures of individual
// messages never abort the run; storage errors do.
func (i *Importer) ImportReader(ctx context.Context, r io.Reader) (Result, error) {
	var res Result
	var batch []*bigquery.TransactionRow

	err := smsbackup.ReadFunc(r, func(msg smsbackup.Message) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		tx, outcome := i.engine.ParseMillis(msg.Body, msg.Address, msg.Date)
		switch outcome {
		case engine.OutcomeParsed:
			// handled below
		case engine.OutcomeMalformedMatch:
			res.Malformed++
			return nil
		default:
			res.Skipped++
			return nil
		}

		receivedAt := time.UnixMilli(msg.Date).UTC()
		bank := banks.Resolve(msg.Address).Name()

		inserted, err := i.store.Insert(ctx, msg.Address, bank, tx, receivedAt)
		if err != nil {
			return fmt.Errorf("insert record: %w", err)
		}
		if !inserted {
			res.Duplicates++
			return nil
		}
		res.Parsed++

		if err := i.recordCandidates(ctx, tx, receivedAt, &res); err != nil {
			return err
		}

		if i.sink != nil {
			batch = append(batch, bigquery.NewTransactionRow(msg.Address, bank, tx, receivedAt))
			if len(batch) >= sinkBatchSize {
				if err := i.sink.InsertTransactions(ctx, batch); err != nil {
					return fmt.Errorf("sink insert: %w", err)
				}
				batch = batch[:0]
			}
		}
		return nil
	})
	if err != nil {
		return res, fmt.Errorf("ImportReader: %w", err)
	}

	if i.sink != nil && len(batch) > 0 {
		if err := i.sink.InsertTransactions(ctx, batch); err != nil {
			return res, fmt.Errorf("ImportReader: sink insert: %w", err)
		}
	}

	i.log.Info().
		Int("parsed", res.Parsed).
		Int("duplicates", res.Duplicates).
		Int("skipped", res.Skipped).
		Int("malformed", res.Malformed).
		Int("candidates", res.Candidates).
		Msg("import finished")
	return res, nil
}

func (i *Importer) recordCandidates(ctx context.Context, tx *domain.Transaction, receivedAt time.Time, res *Result) error {
	matches, err := i.store.FindCandidates(ctx, tx, receivedAt, i.window)
	if err != nil {
		return fmt.Errorf("find candidates: %w", err)
	}
	for _, m := range matches {
		reason := "fallback_key"
		if recon.SameReference(tx, &m.Tx) {
			reason = "reference"
		}
		if err := i.store.RecordCandidate(ctx, tx.Hash, m.Tx.Hash, reason); err != nil {
			return fmt.Errorf("record candidate: %w", err)
		}
		res.Candidates++
	}
	return nil
}
