// contribtext renders a short string as pixel text on a git
// contribution graph by creating one empty commit per lit cell of the
// rasterized bitmap.
//
// Usage:
//
//	contribtext [flags] <text> <year>
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"contribtext/internal/calendar"
	"contribtext/internal/commit"
	"contribtext/internal/config"
	"contribtext/internal/glyph"
	"contribtext/internal/journal"
	"contribtext/internal/raster"
	"contribtext/internal/render"
)

func main() {
	// A .env next to the binary can set CONTRIBTEXT_CONFIG and
	// CONTRIBTEXT_DB without flags. Absence is fine.
	_ = godotenv.Load()

	previewFlag := flag.Bool("preview", false, "preview the bitmap in the terminal instead of creating commits")
	pngFlag := flag.String("png", "", "write the rendered graph to a PNG file instead of creating commits")
	cellSize := flag.Int("cell-size", 12, "pixels per cell in PNG output")
	configFlag := flag.String("config", "", "path to a TOML config file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <text> <year>\n\n", os.Args[0])
		fmt.Fprintf(flag.CommandLine.Output(), "Writes <text> (a-z, 0-9) into the contribution graph for <year>.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	text := flag.Arg(0)
	year, err := strconv.Atoi(flag.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: year must be a number, got %q\n", flag.Arg(1))
		os.Exit(2)
	}

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: couldn't load config:", err)
		os.Exit(1)
	}

	// Report offenders from the whole input, not just the part that
	// survives the rasterizer's length cap.
	if bad := glyph.UnsupportedIn(text); len(bad) > 0 {
		slog.Warn("Unsupported characters will be skipped",
			"chars", string(bad),
		)
	}

	bitmap := raster.Rasterize(text, cfg.Options())
	if bitmap.Empty() {
		fmt.Fprintln(os.Stderr, "Error: No valid characters to render.")
		os.Exit(1)
	}

	switch {
	case *previewFlag:
		render.Preview(os.Stdout, bitmap)
	case *pngFlag != "":
		if err := writePNG(*pngFlag, bitmap, *cellSize); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s (%d×%d cells)\n", *pngFlag, bitmap.Width(), bitmap.Height())
	default:
		if err := emit(cfg, bitmap, text, year); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = os.Getenv("CONTRIBTEXT_CONFIG")
	}

	cfg := config.DefaultConfig()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	if db := os.Getenv("CONTRIBTEXT_DB"); db != "" {
		cfg.Journal.DBPath = db
	}
	return cfg, nil
}

func writePNG(path string, b *raster.Bitmap, cellSize int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return render.WritePNG(f, b, cellSize)
}

// emit turns every lit cell into a dated empty commit. Structural
// problems (bad year, no repository) abort before the first commit;
// individual commit failures are tallied and reported at the end.
func emit(cfg *config.Config, bitmap *raster.Bitmap, text string, year int) error {
	if err := calendar.ValidateYear(year); err != nil {
		return err
	}

	writer := &commit.GitWriter{MessagePrefix: cfg.Commit.MessagePrefix}
	if err := writer.CheckRepository(); err != nil {
		return err
	}

	anchor := calendar.FirstSunday(year)
	dates := calendar.Cells(bitmap, anchor)

	emitter := &commit.Emitter{
		Writer:    writer,
		TimeOfDay: cfg.Commit.TimeOfDay,
		Progress: func(done, total int) {
			fmt.Printf("Progress: %d/%d commits\r", done, total)
		},
	}

	if cfg.Journal.DBPath != "" {
		ledger, err := journal.Open(cfg.Journal.DBPath)
		if err != nil {
			// Journalling is best-effort; emission still runs.
			slog.Warn("Couldn't open journal, continuing without it",
				"path", cfg.Journal.DBPath,
				"err", err,
			)
		} else {
			defer ledger.Close()
			run, err := ledger.BeginRun(text, year)
			if err != nil {
				slog.Warn("Couldn't record run in journal", "err", err)
			} else {
				slog.Info("Journalling run", "uuid", run.Uuid)
				emitter.Record = func(timestamp string, ok bool) {
					if err := ledger.RecordOutcome(run, timestamp, ok); err != nil {
						slog.Warn("Couldn't journal commit outcome", "err", err)
					}
				}
			}
		}
	}

	fmt.Printf("Generating %d commits for %q in %d...\n", len(dates), text, year)
	res := emitter.Emit(dates)

	fmt.Printf("\nCompleted: %d commits generated", res.Succeeded)
	if res.Failed > 0 {
		fmt.Printf(" (%d failed)", res.Failed)
	}
	fmt.Println()

	return nil
}
