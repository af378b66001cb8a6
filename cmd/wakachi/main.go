// Command wakachi fetches or reads Japanese text, segments it with the
// dictionary-driven tokenizer, and optionally records word occurrences in a
// SQLite database for later study.
package main

import (
	"bytes"
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-shiori/go-readability"
	"github.com/japaniel/wakachi/pkg/db"
	"github.com/japaniel/wakachi/pkg/dictionary"
	"github.com/japaniel/wakachi/pkg/ingest"
	"github.com/japaniel/wakachi/pkg/model"
	"github.com/japaniel/wakachi/pkg/readerer"
	"github.com/japaniel/wakachi/pkg/tokenizer"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	urlFlag := flag.String("url", "", "URL to fetch, segment, and ingest")
	fileFlag := flag.String("file", "", "Local HTML or text file to segment and ingest")
	textFlag := flag.String("text", "", "Raw text to segment and print, without ingesting")
	dbFlag := flag.String("db", "wakachi.db", "Path to SQLite database")
	dictFlag := flag.String("dict", "jmdict-eng.json", "Path to JMdict-Simplified JSON export")
	importDictFlag := flag.String("import-dict", "", "Path to a JMdict-Simplified JSON file to import into -db and exit")
	maxResultsFlag := flag.Int("max-results", tokenizer.DefaultMaxResults, "Maximum dictionary candidates considered per position")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	conn, err := sql.Open("sqlite3", *dbFlag)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer conn.Close()

	if err := db.InitDB(conn); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	fmt.Printf("Database initialized at %s\n", *dbFlag)

	if *importDictFlag != "" {
		runImport(conn, *importDictFlag)
		return
	}

	if *textFlag == "" && *urlFlag == "" && *fileFlag == "" {
		log.Fatal("Please provide -text, -url, -file, or -import-dict")
	}

	dict := loadDictionary(ctx, conn, *dictFlag)
	analyzer, err := readerer.NewAnalyzer(dict, *maxResultsFlag)
	if err != nil {
		log.Fatalf("Failed to create analyzer: %v", err)
	}

	if *textFlag != "" {
		printTokens(analyzer, *textFlag)
		return
	}

	title, author, siteName, sourceURL, text := extractContent(ctx, *urlFlag, *fileFlag)

	fmt.Printf("Title: %s\n", title)
	fmt.Printf("Extracted text length: %d chars\n", len(text))

	sourceID, err := db.CreateOrGetSource(conn, "website_article", title, author, siteName, sourceURL, "")
	if err != nil {
		log.Fatalf("Failed to persist source: %v", err)
	}
	fmt.Printf("Source saved with ID: %d\n", sourceID)

	ingester := ingest.NewIngester(conn, func(s string) []model.Token {
		return tokenizer.Tokenize(s, dict, *maxResultsFlag)
	})
	sentences := readerer.SplitSentences(text)
	occurrences, err := ingester.Ingest(ctx, sourceID, sentences)
	if err != nil {
		log.Fatalf("Ingestion failed: %v", err)
	}

	fmt.Printf("Processing complete. Linked %d word occurrences.\n", occurrences)
}

func runImport(conn *sql.DB, path string) {
	fmt.Printf("Loading dictionary from %s...\n", path)
	entries, err := dictionary.LoadWordEntries(path)
	if err != nil {
		log.Fatalf("Failed to load dictionary: %v", err)
	}
	fmt.Printf("Loaded %d entries. Importing...\n", len(entries))

	store := dictionary.NewSQLiteDictionary(conn)
	if err := store.ImportEntries(entries); err != nil {
		log.Fatalf("Failed to import dictionary: %v", err)
	}
	fmt.Printf("Successfully imported %d entries.\n", len(entries))
}

// loadDictionary ensures the JMdict export exists locally, imports it into
// the database if the database does not already hold any entries, and
// returns a bounded-cache-wrapped dictionary backed by the database.
func loadDictionary(ctx context.Context, conn *sql.DB, dictPath string) dictionary.Dictionary {
	store := dictionary.NewSQLiteDictionary(conn)

	var count int
	_ = conn.QueryRow("SELECT COUNT(*) FROM dictionary_entries").Scan(&count)
	if count > 0 {
		fmt.Printf("Using %d dictionary entries already present in the database.\n", count)
		return dictionary.NewBoundedCache(store)
	}

	if err := dictionary.EnsureDictionary(ctx, dictPath); err != nil {
		log.Printf("Warning: failed to ensure dictionary at %s: %v. Continuing with an empty dictionary.", dictPath, err)
		return dictionary.NewBoundedCache(store)
	}

	entries, err := dictionary.LoadWordEntries(dictPath)
	if err != nil {
		log.Printf("Warning: failed to load dictionary: %v. Continuing with an empty dictionary.", err)
		return dictionary.NewBoundedCache(store)
	}

	fmt.Printf("Importing %d dictionary entries into %s...\n", len(entries), "database")
	start := time.Now()
	if err := store.ImportEntries(entries); err != nil {
		log.Printf("Warning: failed to import dictionary: %v", err)
	} else {
		fmt.Printf("Dictionary ready in %v\n", time.Since(start))
	}

	return dictionary.NewBoundedCache(store)
}

func printTokens(analyzer *readerer.Analyzer, text string) {
	tokens, err := analyzer.Analyze(text)
	if err != nil {
		log.Fatalf("Analyze failed: %v", err)
	}
	for _, tok := range tokens {
		if tok.PrimaryPOS == "" {
			fmt.Printf("%s\n", tok.Surface)
			continue
		}
		fmt.Printf("%s\t%s\t%s\n", tok.Surface, tok.BaseForm, tok.PrimaryPOS)
	}
}

// extractContent fetches urlStr (if set) or reads filePath, sanitizes ruby
// markup, and runs readability extraction, returning the article's title,
// byline, site name, canonical source URL, and plain text content.
func extractContent(ctx context.Context, urlStr, filePath string) (title, author, siteName, sourceURL, text string) {
	var body []byte
	var err error

	if urlStr != "" {
		sourceURL = urlStr
		body = fetchURL(ctx, urlStr)
	} else {
		sourceURL = filePath
		body, err = os.ReadFile(filePath)
		if err != nil {
			log.Fatalf("Failed to read file: %v", err)
		}
	}

	body = readerer.SanitizeRuby(body)

	parsedURL, _ := url.Parse(sourceURL)
	article, err := readability.FromReader(bytes.NewReader(body), parsedURL)
	if err != nil {
		log.Fatalf("Failed to extract article: %v", err)
	}

	return article.Title, article.Byline, article.SiteName, sourceURL, article.TextContent
}

func fetchURL(ctx context.Context, urlStr string) []byte {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		log.Fatalf("Failed to create request: %v", err)
	}
	req.Header.Set("User-Agent", "wakachi-cli/0.2")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		log.Fatalf("Failed to fetch URL: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Fatalf("Error: got status code %d fetching %s", resp.StatusCode, urlStr)
	}

	const maxBodySize = 10 * 1024 * 1024
	if resp.ContentLength > int64(maxBodySize) {
		log.Fatalf("Content-Length %d exceeds limit of %d bytes", resp.ContentLength, maxBodySize)
	}

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		log.Fatalf("Failed to read response body: %v", err)
	}
	if int64(len(bodyBytes)) >= int64(maxBodySize) {
		log.Fatalf("Response body exceeded maximum size limit of %d bytes", maxBodySize)
	}

	return bodyBytes
}
