package ingest

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/japaniel/wakachi/pkg/db"
	"github.com/japaniel/wakachi/pkg/model"
)

// Ingester tokenizes sentences and records entry occurrences into the
// database using concurrent workers and batched writes.
type Ingester struct {
	DB   *sql.DB
	// Tokenize is the function used to segment a sentence into tokens; tests
	// inject a stub, production code wires in tokenizer.Tokenize bound to a
	// dictionary.
	Tokenize func(text string) []model.Token

	BatchSize int
	Logger    *log.Logger
	// OnProgress is called periodically with the number of processed sentences and total sentences.
	OnProgress func(current, total int)
	Workers    int

	// PoolFactory builds the worker pool used for one Ingest call. Defaults
	// to NewWorkerPool; tests override it to inject a pool that fails
	// deterministically.
	PoolFactory func(workers, queue int) WorkerPoolInterface
}

// NewIngester creates a new Ingester.
func NewIngester(conn *sql.DB, tokenize func(text string) []model.Token) *Ingester {
	return &Ingester{
		DB:        conn,
		Tokenize:  tokenize,
		BatchSize: 50,
		Workers:   4,
	}
}

// tokenOccurrence holds one dictionary-matched token ready for persistence.
type tokenOccurrence struct {
	EntryID  string
	Surface  string
	Reasons  string
	Sentence string
}

type processedSentence struct {
	Index      int
	Sentence   string
	Occurrences []tokenOccurrence
	Error      error
}

// Ingest processes sentences and saves them to the database using concurrent
// workers and batched writes. It resumes from the last checkpoint recorded
// for sourceID.
func (ig *Ingester) Ingest(ctx context.Context, sourceID int64, sentences []string) (int, error) {
	lastProcessed, err := db.GetSourceProgress(ig.DB, sourceID)
	if err != nil {
		if ig.Logger != nil {
			ig.Logger.Printf("Warning: Failed to retrieve progress: %v", err)
		}
		lastProcessed = -1
	}

	if lastProcessed >= 0 && ig.Logger != nil {
		ig.Logger.Printf("Resuming from sentence index %d (skipping %d sentences)\n", lastProcessed+1, lastProcessed+1)
	}

	totalSentences := len(sentences)
	startIdx := lastProcessed + 1
	if startIdx >= totalSentences {
		return 0, nil
	}

	poolFactory := ig.PoolFactory
	if poolFactory == nil {
		poolFactory = func(workers, queue int) WorkerPoolInterface { return NewWorkerPool(workers, queue) }
	}
	wp := poolFactory(ig.Workers, ig.Workers*2)
	resultCh := make(chan processedSentence, ig.Workers*2)

	var totalOccurrences int64

	bw := NewBatchWriter(ig.DB, ig.BatchSize, 100*time.Millisecond)
	var batchErr error
	var batchErrMu sync.Mutex
	bw.OnError = func(e error) {
		batchErrMu.Lock()
		if batchErr == nil {
			batchErr = e
		}
		batchErrMu.Unlock()
	}

	defer bw.Close()
	defer wp.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	wp.Start(ctx)

	doneCh := make(chan error, 1)

	go func() {
		defer close(doneCh)
		buffer := make(map[int]processedSentence)
		nextIdx := startIdx

		for i := 0; i < totalSentences-startIdx; i++ {
			select {
			case <-ctx.Done():
				doneCh <- ctx.Err()
				return
			case res := <-resultCh:
				if res.Error != nil {
					doneCh <- res.Error
					return
				}
				buffer[res.Index] = res

				for {
					item, ok := buffer[nextIdx]
					if !ok {
						break
					}
					delete(buffer, nextIdx)

					currentItem := item
					err := bw.Submit(func(ctx context.Context, tx *sql.Tx) error {
						for _, occ := range currentItem.Occurrences {
							if err := db.RecordTokenOccurrence(tx, occ.EntryID, sourceID, occ.Surface, occ.Reasons, occ.Sentence); err != nil {
								return fmt.Errorf("failed to record occurrence for entry %s: %w", occ.EntryID, err)
							}
							atomic.AddInt64(&totalOccurrences, 1)
						}
						if err := db.UpdateSourceProgress(tx, sourceID, currentItem.Index); err != nil {
							return fmt.Errorf("failed to save progress: %w", err)
						}
						return nil
					})

					if err != nil {
						doneCh <- err
						return
					}

					if ig.OnProgress != nil && (nextIdx+1)%ig.BatchSize == 0 {
						ig.OnProgress(nextIdx+1, totalSentences)
					}
					nextIdx++
				}
			}
		}
		if ig.OnProgress != nil {
			ig.OnProgress(totalSentences, totalSentences)
		}
		doneCh <- nil
	}()

Loop:
	for i := startIdx; i < totalSentences; i++ {
		select {
		case <-ctx.Done():
			break Loop
		default:
		}

		idx := i
		sent := sentences[i]

		err := wp.Submit(func(ctx context.Context) error {
			res := ig.processSentence(idx, sent)
			select {
			case resultCh <- res:
			case <-ctx.Done():
			}
			return nil
		})

		if err != nil {
			return 0, err
		}
	}

	consumerErr := <-doneCh

	if err := bw.Close(); err != nil {
		if consumerErr == nil {
			consumerErr = err
		}
	}

	batchErrMu.Lock()
	if batchErr != nil && consumerErr == nil {
		consumerErr = batchErr
	}
	batchErrMu.Unlock()

	return int(atomic.LoadInt64(&totalOccurrences)), consumerErr
}

// processSentence tokenizes one sentence and collects every dictionary-matched
// token as an occurrence to persist. Tokens with no dictionary entry (gaps
// left by the tokenizer's per-character fallback) are skipped.
func (ig *Ingester) processSentence(index int, sentence string) processedSentence {
	var occurrences []tokenOccurrence

	for _, tok := range ig.Tokenize(sentence) {
		if tok.DictionaryEntry == nil {
			continue
		}
		occurrences = append(occurrences, tokenOccurrence{
			EntryID:  tok.DictionaryEntry.EntryID,
			Surface:  tok.Text,
			Reasons:  formatReasonChains(tok.DeinflectionReasons),
			Sentence: sentence,
		})
	}

	return processedSentence{
		Index:       index,
		Sentence:    sentence,
		Occurrences: occurrences,
	}
}

// formatReasonChains renders a token's reason chains as a compact,
// human-readable string for storage, e.g. "[PolitePast]" or
// "[CausativePassive,PoliteNegativePast]; [Causative]" for multiple chains.
func formatReasonChains(chains model.ReasonChains) string {
	if len(chains) == 0 {
		return ""
	}
	parts := make([]string, len(chains))
	for i, chain := range chains {
		names := make([]string, len(chain))
		for j, r := range chain {
			names[j] = r.String()
		}
		parts[i] = "[" + strings.Join(names, ",") + "]"
	}
	return strings.Join(parts, "; ")
}
