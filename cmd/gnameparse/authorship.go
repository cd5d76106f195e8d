package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/gnames/gn"
	"github.com/gnames/gnameparser/pkg/errcode"
	"github.com/gnames/gnameparser/pkg/gnameparser"
	"github.com/gnames/gnameparser/pkg/parsed"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnuuid"
	"github.com/spf13/cobra"
)

// authorshipRecord is one CLI output row of the authorship subcommand.
type authorshipRecord struct {
	VerbatimID string                    `json:"id"`
	Verbatim   string                    `json:"verbatim"`
	Parsed     bool                      `json:"parsed"`
	Authorship *parsed.ParsedAuthorship  `json:"authorship,omitempty"`
}

func getAuthorshipCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "authorship text ...",
		Short: "Parses bare authorship strings",
		Long: `Parses authorship strings alone, without any name epithets:
basionym and combination author teams, ex-authors, sanctioning authors and
years.`,
		Example: `  gnameparse authorship "(Cleve, 1899) Jørgensen, 1905"`,
		Args:    cobra.MinimumNArgs(1),
		RunE:    runAuthorship,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
}

func runAuthorship(cmd *cobra.Command, args []string) error {
	parser := gnameparser.New(cfg)
	defer parser.Close()

	enc := gnfmt.GNjson{Pretty: cfg.Format == "json"}
	for _, text := range args {
		rec := authorshipRecord{
			VerbatimID: gnuuid.New(text).String(),
			Verbatim:   text,
		}
		pa, err := parser.ParseAuthorship(text)
		if err != nil {
			var unp *parsed.UnparsableAuthorshipError
			if !errors.As(err, &unp) {
				gn.PrintErrorMessage(err)
				return err
			}
		} else {
			rec.Parsed = true
			rec.Authorship = &pa
		}

		bs, err := enc.Encode(rec)
		if err != nil {
			err = &gn.Error{
				Code: errcode.OutputEncodeError,
				Msg:  "Cannot encode authorship record for <em>%s</em>",
				Vars: []any{text},
				Err:  fmt.Errorf("failed to encode record: %w", err),
			}
			gn.PrintErrorMessage(err)
			return err
		}
		fmt.Fprintln(os.Stdout, string(bs))
	}
	return nil
}
