package bigquery

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"
)

const dateFormat = "2006-01-02"

// Sink streams rows into one dataset.table.
type Sink struct {
	client  *bigquery.Client
	dataset string
	table   string
}

// NewSink opens a client for the project and binds it to the table.
func NewSink(ctx context.Context, projectID, dataset, table string) (*Sink, error) {
	client, err := bigquery.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("NewSink: bigquery client: %w", err)
	}
	return NewSinkWithClient(client, dataset, table), nil
}

// NewSinkWithClient binds an existing client to the table. The caller
// retains ownership of the client unless Close is used.
func NewSinkWithClient(client *bigquery.Client, dataset, table string) *Sink {
	return &Sink{client: client, dataset: dataset, table: table}
}

// Close releases the underlying client.
func (s *Sink) Close() error {
	return s.client.Close()
}

// InsertTransactions streams a batch of rows.
func (s *Sink) InsertTransactions(ctx context.Context, rows []*TransactionRow) error {
	if len(rows) == 0 {
		return nil
	}

	inserter := s.client.Dataset(s.dataset).Table(s.table).Inserter()
	if err := inserter.Put(ctx, rows); err != nil {
		return fmt.Errorf("InsertTransactions: inserting rows: %w", err)
	}
	return nil
}

// QueryByDateRange returns rows whose transaction date falls inside
// [startDate, endDate], ordered by date then insert time.
func (s *Sink) QueryByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*TransactionRow, error) {
	q := s.client.Query(fmt.Sprintf(`
		SELECT
			hash, sender, bank, transaction_date, received_ts,
			amount, currency, tx_type, merchant, account_last4,
			balance, reference, credit_limit, is_from_card, created_ts
		FROM %s.%s
		WHERE transaction_date >= @start_date
		  AND transaction_date <= @end_date
		ORDER BY transaction_date, created_ts
	`, s.dataset, s.table))
	q.Parameters = []bigquery.QueryParameter{
		{Name: "start_date", Value: startDate.Format(dateFormat)},
		{Name: "end_date", Value: endDate.Format(dateFormat)},
	}

	it, err := q.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("QueryByDateRange: query read: %w", err)
	}

	var rows []*TransactionRow
	for {
		var r TransactionRow
		err := it.Next(&r)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("QueryByDateRange: iterating rows: %w", err)
		}
		rows = append(rows, &r)
	}
	return rows, nil
}
