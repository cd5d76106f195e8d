package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gnames/gn"
	"github.com/gnames/gnameparser/internal/ioconfig"
	"github.com/gnames/gnameparser/internal/iologger"
	"github.com/gnames/gnameparser/pkg/config"
	"github.com/gnames/gnameparser/pkg/gnameparser"
	"github.com/gnames/gnameparser/pkg/nomcode"
	"github.com/gnames/gnameparser/pkg/rank"
	"github.com/spf13/cobra"
)

var cfg *config.Config

// getRootCmd assembles the root command with its flags and subcommands.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s",
			gnameparser.Version, gnameparser.Build),
		Use:   "gnameparse [flags] name ...",
		Short: "Parses scientific names into structured records",
		Long: `gnameparse decomposes Linnaean-style scientific names into their
elements: genus, epithets, rank, hybrid signs, authorships with years,
nomenclatural notes and references.

Names are given as arguments, or line by line with --file ('-' reads from
STDIN). Unparsable strings are classified (virus, hybrid formula, OTU,
placeholder) and reported as such.`,
		Example: `  gnameparse "Abies alba Mill."
  gnameparse -f names.txt --format csv
  echo "Picea abies (L.) H.Karst." | gnameparse -f -`,
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringP("config", "c", "", "path of a configuration file")
	pf.Int("timeout", 0, "wall-clock budget of one parse in milliseconds")
	pf.IntP("jobs", "j", 0, "number of concurrent parsing jobs in batch mode")
	pf.StringP("format", "F", "", "output format: json, compact or csv")
	pf.String("overrides", "", "path of a curator overrides YAML file")

	f := rootCmd.Flags()
	f.StringP("file", "f", "", "parse names from a file, one per line ('-' for STDIN)")
	f.StringP("rank", "r", "", "rank hint, e.g. species, genus, variety")
	f.String("code", "", "nomenclatural code hint: bacterial, botanical, cultivars, virus, zoological")

	rootCmd.AddCommand(getAuthorshipCmd())
	return rootCmd
}

// bootstrap loads configuration (flags > env > file > defaults) and
// initializes logging.
func bootstrap(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")

	var err error
	cfg, err = ioconfig.Load(configPath)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var opts []config.Option
	if i, _ := cmd.Flags().GetInt("timeout"); i > 0 {
		opts = append(opts, config.OptTimeoutMillis(i))
	}
	if i, _ := cmd.Flags().GetInt("jobs"); i > 0 {
		opts = append(opts, config.OptJobsNumber(i))
	}
	if s, _ := cmd.Flags().GetString("format"); s != "" {
		opts = append(opts, config.OptFormat(s))
	}
	if s, _ := cmd.Flags().GetString("overrides"); s != "" {
		opts = append(opts, config.OptOverridesFile(s))
	}
	cfg.Update(opts)

	iologger.Init(cfg.Log)
	slog.Debug("Configuration loaded")
	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")
	if file == "" && len(args) == 0 {
		return cmd.Help()
	}

	rankHint := rank.Unranked
	if s, _ := cmd.Flags().GetString("rank"); s != "" {
		rankHint = rank.New(s)
	}
	codeHint := nomcode.Unknown
	if s, _ := cmd.Flags().GetString("code"); s != "" {
		codeHint = nomcode.New(s)
	}

	parser := gnameparser.New(cfg)
	defer parser.Close()

	if err := loadOverrides(parser); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if file != "" {
		return parseBatch(parser, file, rankHint, codeHint)
	}
	return parseArgs(parser, args, rankHint, codeHint)
}

// loadOverrides installs the curator overrides file, when configured.
func loadOverrides(parser gnameparser.GNameParser) error {
	if cfg.OverridesFile == "" {
		return nil
	}
	count, err := ioconfig.LoadOverrides(cfg.OverridesFile, parser.Configs())
	if err != nil {
		return err
	}
	slog.Info("Loaded parser overrides",
		"file", cfg.OverridesFile, "count", count)
	return nil
}

// parseArgs parses names given as command-line arguments.
func parseArgs(parser gnameparser.GNameParser, names []string,
	rankHint rank.Rank, codeHint nomcode.Code) error {
	enc := newEncoder(cfg.Format)
	for _, name := range names {
		rec := parseOne(parser, name, rankHint, codeHint)
		if err := enc.write(os.Stdout, rec); err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
	}
	return nil
}
