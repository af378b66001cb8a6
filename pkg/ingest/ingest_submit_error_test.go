package ingest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/japaniel/wakachi/pkg/db"
	"github.com/japaniel/wakachi/pkg/model"
	_ "github.com/mattn/go-sqlite3"
)

// failingPool always returns an error on Submit to simulate producer error.
type failingPool struct{}

func (f *failingPool) Start(ctx context.Context) {}
func (f *failingPool) Submit(job Job) error      { return errors.New("submit failed") }
func (f *failingPool) Close()                    {}

func TestIngestReturnsSubmitError(t *testing.T) {
	conn := setupDB(t)
	defer conn.Close()

	sourceID, err := db.CreateOrGetSource(conn, "test", "SubmitError", "", "", "http://submit", "")
	if err != nil {
		t.Fatal(err)
	}

	sentences := make([]string, 10)
	for i := range sentences {
		sentences[i] = "テスト"
	}

	ingester := NewIngester(conn, stubTokenize(map[string][]model.Token{
		"テスト": {entryToken("テスト", "1")},
	}))
	ingester.PoolFactory = func(workers, queue int) WorkerPoolInterface { return &failingPool{} }

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err = ingester.Ingest(ctx, sourceID, sentences)
	if err == nil {
		t.Fatalf("expected submit error, got nil")
	}
}
