package importer

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/dvloznov/sms-ledger/internal/engine"
	"github.com/dvloznov/sms-ledger/internal/infra/bigquery"
	"github.com/dvloznov/sms-ledger/internal/store/sqlite"
)

// Two transactional messages (one delivered twice), one OTP, one
// unknown sender.
const sampleDump = `<?xml version='1.0' encoding='UTF-8' standalone='yes' ?>
<smses count="5">
  <sms address="AX-AXISBK-S" date="1759657407000" body="Spent INR 131&#10;Bank Card no. XX0818&#10;05-10-25 09:43:27 IST&#10;Swiggy Limi&#10;Avl Limit: INR 217162.72" />
  <sms address="AX-AXISBK-S" date="1759657409000" body="Spent INR 131&#10;Bank Card no. XX0818&#10;05-10-25 09:43:27 IST&#10;Swiggy Limi&#10;Avl Limit: INR 217162.72" />
  <sms address="VM-BOBTXN-S" date="1759657500000" body="Rs.29 transferred from A/c ...5494 to:Loan Recovery Fo. Total Bal:Rs.24898.57CR." />
  <sms address="AX-AXISBK-S" date="1759657600000" body="123456 is your OTP for login. Do not share it with anyone." />
  <sms address="XY-RANDOM" date="1759657700000" body="Hello there" />
</smses>`

type fakeSink struct {
	rows []*bigquery.TransactionRow
}

func (f *fakeSink) InsertTransactions(ctx context.Context, rows []*bigquery.TransactionRow) error {
	f.rows = append(f.rows, rows...)
	return nil
}

func newTestImporter(t *testing.T, sink Sink) (*Importer, *sqlite.Store) {
	t.Helper()
	store, err := sqlite.Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	e := engine.New(zerolog.Nop())
	return New(e, store, sink, 0, zerolog.Nop()), store
}

func TestImportReader(t *testing.T) {
	sink := &fakeSink{}
	imp, store := newTestImporter(t, sink)

	res, err := imp.ImportReader(context.Background(), strings.NewReader(sampleDump))
	if err != nil {
		t.Fatalf("ImportReader: %v", err)
	}

	if res.Parsed != 2 {
		t.Errorf("Parsed = %d, want 2", res.Parsed)
	}
	if res.Duplicates != 1 {
		t.Errorf("Duplicates = %d, want 1", res.Duplicates)
	}
	if res.Skipped != 2 {
		t.Errorf("Skipped = %d, want 2 (otp + unknown sender)", res.Skipped)
	}
	if res.Malformed != 0 {
		t.Errorf("Malformed = %d, want 0", res.Malformed)
	}

	stored, err := store.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("stored %d records, want 2", len(stored))
	}

	if len(sink.rows) != 2 {
		t.Fatalf("sink received %d rows, want 2", len(sink.rows))
	}
}

func TestImportReaderWithoutSink(t *testing.T) {
	imp, _ := newTestImporter(t, nil)

	res, err := imp.ImportReader(context.Background(), strings.NewReader(sampleDump))
	if err != nil {
		t.Fatalf("ImportReader: %v", err)
	}
	if res.Parsed != 2 {
		t.Errorf("Parsed = %d, want 2", res.Parsed)
	}
}

func TestImportReaderHonorsCancellation(t *testing.T) {
	imp, _ := newTestImporter(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := imp.ImportReader(ctx, strings.NewReader(sampleDump)); err == nil {
		t.Fatal("ImportReader ignored a cancelled context")
	}
}

func TestImportSourceLocalFile(t *testing.T) {
	imp, _ := newTestImporter(t, nil)

	path := t.TempDir() + "/dump.xml"
	if err := os.WriteFile(path, []byte(sampleDump), 0o600); err != nil {
		t.Fatal(err)
	}
	res, err := imp.ImportSource(context.Background(), path)
	if err != nil {
		t.Fatalf("ImportSource: %v", err)
	}
	if res.Parsed != 2 {
		t.Errorf("Parsed = %d, want 2", res.Parsed)
	}
}

func TestImportSourceMissingFile(t *testing.T) {
	imp, _ := newTestImporter(t, nil)
	if _, err := imp.ImportSource(context.Background(), "/nonexistent/dump.xml"); err == nil {
		t.Fatal("ImportSource accepted a missing file")
	}
}
