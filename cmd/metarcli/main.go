// Command metarcli decodes METAR/TAF bulletins from stdin or the command
// line, prints a colorized summary of each, and optionally persists and
// publishes the decoded reports.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/skybound-wx/metar"
	"github.com/skybound-wx/metar/publish"
	"github.com/skybound-wx/metar/store"
)

var (
	labelColor = color.New(color.FgCyan)
	valueColor = color.New(color.FgWhite)
	errorColor = color.New(color.FgRed)
)

func main() {
	_ = godotenv.Load()

	noColor := flag.Bool("no-color", false, "disable color output")
	workers := flag.Int("workers", 4, "number of concurrent decode workers for batch stdin input")
	dbPath := flag.String("db", os.Getenv("METAR_DB_PATH"), "optional sqlite database path to persist decoded reports")
	natsURL := flag.String("nats", os.Getenv("NATS_URL"), "optional NATS server URL to publish decoded reports")
	verbose := flag.Bool("v", false, "verbose logging")
	query := flag.String("query", "", "skip decoding and list stored reports for this station (requires -db)")
	kind := flag.String("kind", "", "restrict -query to \"metar\" or \"taf\"")
	limit := flag.Int("limit", 0, "max rows returned by -query (defaults to 100)")
	stats := flag.Bool("stats", false, "skip decoding and print stored report counts by station (requires -db)")
	flag.Parse()

	if *noColor {
		color.NoColor = true
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	var db *store.DB
	if *dbPath != "" {
		var err error
		db, err = store.Open(*dbPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *dbPath).Msg("failed to open database")
		}
		defer func() { _ = db.Close() }()
	}

	if *stats {
		if db == nil {
			log.Fatal().Msg("-stats requires -db")
		}
		printStats(db)
		return
	}

	if *query != "" || *kind != "" {
		if db == nil {
			log.Fatal().Msg("-query requires -db")
		}
		printQuery(db, store.QueryParams{Station: *query, Kind: *kind, Limit: *limit})
		return
	}

	var pub *publish.Publisher
	if *natsURL != "" {
		var err error
		pub, err = publish.Connect(*natsURL, "metar")
		if err != nil {
			log.Fatal().Err(err).Str("url", *natsURL).Msg("failed to connect to nats")
		}
		defer pub.Close()
	}

	args := flag.Args()
	if len(args) > 0 {
		for _, bulletin := range args {
			decodeOne(bulletin, db, pub)
		}
		return
	}

	decodeBatch(os.Stdin, *workers, db, pub)
}

// decodeBatch fans a line-per-bulletin stdin stream out across a worker
// pool; each worker decodes independently and results print as they
// complete, concurrency layered outside the (purely synchronous) parser.
func decodeBatch(r *os.File, workers int, db *store.DB, pub *publish.Publisher) {
	lines := make(chan string)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for line := range lines {
				decodeOne(line, db, pub)
			}
		}()
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines <- line
	}
	close(lines)
	wg.Wait()

	if err := scanner.Err(); err != nil {
		log.Error().Err(err).Msg("error reading stdin")
	}
}

func decodeOne(bulletin string, db *store.DB, pub *publish.Publisher) {
	kind := "metar"
	if strings.Contains(strings.ToUpper(bulletin), "TAF") {
		kind = "taf"
	}

	var decoded any
	var station string
	var err error

	if kind == "taf" {
		var taf *metar.TAF
		taf, err = metar.ParseTAF(bulletin)
		if err == nil {
			decoded = taf
			station = taf.Identifier
		}
	} else {
		var report *metar.Report
		report, err = metar.ParseMETAR(bulletin)
		if err == nil {
			decoded = report
			station = report.Identifier
		}
	}

	if err != nil {
		errorColor.Fprintf(os.Stderr, "failed to decode: %s\n", bulletin)
		log.Error().Err(err).Str("bulletin", bulletin).Msg("decode failed")
		return
	}

	printDecoded(kind, station, decoded)

	if db != nil {
		body, marshalErr := json.Marshal(decoded)
		if marshalErr != nil {
			log.Error().Err(marshalErr).Msg("failed to marshal decoded report")
		} else if _, insertErr := db.Insert(store.Record{
			Station:     station,
			Kind:        kind,
			ReceivedAt:  time.Now(),
			RawText:     bulletin,
			DecodedJSON: string(body),
		}); insertErr != nil {
			log.Error().Err(insertErr).Str("station", station).Msg("failed to persist report")
		}
	}

	if pub != nil {
		var publishErr error
		if kind == "taf" {
			publishErr = pub.PublishTAF(station, bulletin, decoded)
		} else {
			publishErr = pub.PublishMETAR(station, bulletin, decoded)
		}
		if publishErr != nil {
			log.Error().Err(publishErr).Str("station", station).Msg("failed to publish report")
		}
	}
}

func printQuery(db *store.DB, params store.QueryParams) {
	records, err := db.Query(params)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to query stored reports")
	}
	for _, r := range records {
		labelColor.Print("id:      ")
		valueColor.Println(r.ID)
		labelColor.Print("station: ")
		valueColor.Println(r.Station)
		labelColor.Print("kind:    ")
		valueColor.Println(r.Kind)
		labelColor.Print("time:    ")
		valueColor.Println(r.ReceivedAt.Format(time.RFC3339))
		fmt.Println(r.DecodedJSON)
		fmt.Println()
	}
}

func printStats(db *store.DB) {
	counts, err := db.CountByStation()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to count stored reports")
	}
	for station, count := range counts {
		labelColor.Print("station: ")
		valueColor.Printf("%-8s", station)
		labelColor.Print("count: ")
		valueColor.Println(count)
	}
}

func printDecoded(kind, station string, decoded any) {
	labelColor.Print("station: ")
	valueColor.Println(station)
	labelColor.Print("kind:    ")
	valueColor.Println(kind)

	body, err := json.MarshalIndent(decoded, "", "  ")
	if err == nil {
		fmt.Println(string(body))
	}
	fmt.Println()
}
