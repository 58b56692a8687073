// Package main provides the shenfen command line tool: batch identity
// generation into the eight output formats, and simulated card rendering.
// Every value it produces is fabricated; checksums validate but nothing
// maps to a real person.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"shenfen/internal/avatar"
	"shenfen/internal/avatar/aimodel"
	"shenfen/internal/avatar/normalize"
	"shenfen/internal/avatar/procedural"
	"shenfen/internal/avatar/silhouette"
	"shenfen/internal/card"
	"shenfen/internal/format"
	"shenfen/internal/identity"
	"shenfen/internal/identity/models"
	"shenfen/internal/platform/config"
	"shenfen/internal/platform/health"
	"shenfen/internal/refdata"
	"shenfen/pkg/circuit"
)

func main() {
	config.LoadDotEnv()

	// Subcommands
	generateCmd := flag.NewFlagSet("generate", flag.ExitOnError)
	cardCmd := flag.NewFlagSet("card", flag.ExitOnError)
	fieldsCmd := flag.NewFlagSet("fields", flag.ExitOnError)
	versionCmd := flag.NewFlagSet("version", flag.ExitOnError)

	// Generate flags
	genCount := generateCmd.Int("count", 1, "Number of identities to generate")
	genSeed := generateCmd.Int64("seed", 0, "Seed for reproducible output. Derived from the clock if 0.")
	genFormat := generateCmd.String("format", "", "Output format: "+strings.Join(format.Names(), ", ")+". Detected from -output extension when empty, csv otherwise.")
	genOutput := generateCmd.String("output", "", "Output file path. Auto-generated when empty.")
	genStdout := generateCmd.Bool("stdout", false, "Write to stdout instead of a file")
	genFields := generateCmd.String("fields", "", "Comma-separated fields to include (default: all)")
	genExclude := generateCmd.String("exclude", "", "Comma-separated fields to drop from the selection")
	genGender := generateCmd.String("gender", "", "Fix the gender: male or female")
	genMinAge := generateCmd.Int("min-age", 0, "Minimum age")
	genMaxAge := generateCmd.Int("max-age", 0, "Maximum age")
	genRegion := generateCmd.String("region", "", "Administrative division prefix (2, 4 or 6 digits)")

	// Card flags
	cardCount := cardCmd.Int("count", 1, "Number of cards to render")
	cardSeed := cardCmd.Int64("seed", 0, "Seed for reproducible output. Derived from the clock if 0.")
	cardGender := cardCmd.String("gender", "", "Fix the gender: male or female")
	cardMinAge := cardCmd.Int("min-age", 0, "Minimum age")
	cardMaxAge := cardCmd.Int("max-age", 0, "Maximum age")
	cardRegion := cardCmd.String("region", "", "Administrative division prefix (2, 4 or 6 digits)")
	cardOutput := cardCmd.String("output", "", "Directory for the rendered PNGs (default: SHENFEN_OUTPUT_DIR or ./output)")
	cardAssets := cardCmd.String("assets", "", "Fonts and template directory (default: SHENFEN_ASSETS_DIR or ./assets)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "generate":
		generateCmd.Parse(os.Args[2:])
		runGenerate(generateOptions{
			count:   *genCount,
			seed:    *genSeed,
			format:  *genFormat,
			output:  *genOutput,
			stdout:  *genStdout,
			fields:  *genFields,
			exclude: *genExclude,
			gender:  *genGender,
			minAge:  *genMinAge,
			maxAge:  *genMaxAge,
			region:  *genRegion,
		})
	case "card":
		cardCmd.Parse(os.Args[2:])
		runCard(cardOptions{
			count:  *cardCount,
			seed:   *cardSeed,
			gender: *cardGender,
			minAge: *cardMinAge,
			maxAge: *cardMaxAge,
			region: *cardRegion,
			output: *cardOutput,
			assets: *cardAssets,
		})
	case "fields":
		fieldsCmd.Parse(os.Args[2:])
		runFields()
	case "version":
		versionCmd.Parse(os.Args[2:])
		fmt.Printf("shenfen %s\n", health.Version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`shenfen - synthetic Chinese identity data and card image generator

All output is fabricated. National IDs carry valid checksums but come from
synthetic sequences; nothing maps to a real person.

Usage:
  shenfen <command> [flags]

Commands:
  generate  Generate identities into json/csv/table/raw/sql/markdown/yaml/vcard
  card      Render simulated identity card images
  fields    List the available identity fields
  version   Print the build version

Examples:
  # 10 identities to a timestamped csv
  shenfen generate -count 10

  # reproducible json to a named file
  shenfen generate -count 5 -seed 42 -output people.json

  # only contact fields, to stdout
  shenfen generate -fields name,phone,email -stdout

  # three female identities from Beijing (division 11)
  shenfen generate -count 3 -gender female -region 11

  # render two cards into ./output
  shenfen card -count 2

Use "shenfen <command> -h" for more information about a command.`)
}

type generateOptions struct {
	count   int
	seed    int64
	format  string
	output  string
	stdout  bool
	fields  string
	exclude string
	gender  string
	minAge  int
	maxAge  int
	region  string
}

func runGenerate(opts generateOptions) {
	fields, err := format.Fields(splitList(opts.fields))
	if err != nil {
		fail(err)
	}
	if excluded := splitList(opts.exclude); len(excluded) > 0 {
		fields = dropFields(fields, excluded)
		if len(fields) == 0 {
			fail(errors.New("every field was excluded"))
		}
	}

	formatter, err := pickFormat(opts.format, opts.output)
	if err != nil {
		fail(err)
	}

	svc := identity.New(refdata.Default())
	res, err := svc.Generate(context.Background(), identity.GenerateParams{
		Count:      opts.count,
		Seed:       opts.seed,
		Gender:     models.Gender(opts.gender),
		MinAge:     opts.minAge,
		MaxAge:     opts.maxAge,
		RegionCode: opts.region,
	})
	if err != nil {
		fail(err)
	}

	out, err := formatter.Format(res.Records, fields)
	if err != nil {
		fail(err)
	}

	if opts.stdout {
		os.Stdout.Write(out)
		return
	}

	path := opts.output
	if path == "" {
		path = format.DefaultFileName(formatter, time.Now())
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		fail(err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	fmt.Printf("Saved %d identities to %s (%s, %s)\n", len(res.Records), abs, formatter.Name(), humanSize(len(out)))
	fmt.Printf("Seed: %d\n", res.Seed)
}

type cardOptions struct {
	count  int
	seed   int64
	gender string
	minAge int
	maxAge int
	region string
	output string
	assets string
}

func runCard(opts cardOptions) {
	cfg := config.FromEnv()
	assets := opts.assets
	if assets == "" {
		assets = cfg.AssetsDir
	}
	dir := opts.output
	if dir == "" {
		dir = cfg.OutputDir
	}

	avatarOpts := []avatar.Option{avatar.WithNormalizer(normalize.New())}
	if cfg.AvatarBaseURL != "" {
		clientOpts := []aimodel.Option{
			aimodel.WithBaseURL(cfg.AvatarBaseURL),
			aimodel.WithAPIKey(cfg.AvatarAPIKey),
			aimodel.WithTimeout(cfg.AvatarTimeout),
		}
		if cfg.AvatarModelID != "" {
			clientOpts = append(clientOpts, aimodel.WithModelID(cfg.AvatarModelID))
		}
		avatarOpts = append(avatarOpts,
			avatar.WithAIBackend(aimodel.New(clientOpts...)),
			avatar.WithBreaker(circuit.New("avatar-ai")),
		)
	}
	avatars := avatar.NewChain(procedural.New(), silhouette.New(), avatarOpts...)

	renderer := card.New(
		card.WithAssetsDir(assets),
		card.WithAvatarSource(avatars),
	)

	svc := identity.New(refdata.Default())
	res, err := svc.Generate(context.Background(), identity.GenerateParams{
		Count:      opts.count,
		Seed:       opts.seed,
		Gender:     models.Gender(opts.gender),
		MinAge:     opts.minAge,
		MaxAge:     opts.maxAge,
		RegionCode: opts.region,
	})
	if err != nil {
		fail(err)
	}

	cards, err := renderer.RenderBatch(context.Background(), res.Records, dir)
	if err != nil {
		fail(err)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	fmt.Printf("Rendered %d cards to %s\n", len(cards), abs)
	for _, c := range cards {
		fmt.Printf("  %s (%s)\n", filepath.Base(c.Path), c.Backend)
	}
	fmt.Printf("Seed: %d\n", res.Seed)
}

func runFields() {
	fmt.Println("Available identity fields:")
	for _, f := range identity.Fields() {
		fmt.Printf("  %-20s %s\n", f.Name, f.Label)
	}
}

func pickFormat(name, output string) (format.Formatter, error) {
	if name != "" {
		return format.ByName(name)
	}
	if output != "" {
		if f, ok := format.FromPath(output); ok {
			return f, nil
		}
	}
	return format.ByName("csv")
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func dropFields(fields, excluded []string) []string {
	drop := make(map[string]struct{}, len(excluded))
	for _, name := range excluded {
		drop[strings.ToLower(strings.TrimSpace(name))] = struct{}{}
	}
	kept := make([]string, 0, len(fields))
	for _, name := range fields {
		if _, ok := drop[name]; !ok {
			kept = append(kept, name)
		}
	}
	return kept
}

func humanSize(n int) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%d bytes", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
