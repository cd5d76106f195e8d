package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/gnames/gn"
	"github.com/gnames/gnameparser/pkg/errcode"
	"github.com/gnames/gnameparser/pkg/gnameparser"
	"github.com/gnames/gnameparser/pkg/nomcode"
	"github.com/gnames/gnameparser/pkg/parsed"
	"github.com/gnames/gnameparser/pkg/rank"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnuuid"
)

// record is one CLI output row: the verbatim input with its deterministic
// gnuuid identifier and, when parsing succeeded, the structured name.
type record struct {
	VerbatimID string             `json:"id"`
	Verbatim   string             `json:"verbatim"`
	Parsed     bool               `json:"parsed"`
	NameType   string             `json:"nameType"`
	Name       *parsed.ParsedName `json:"name,omitempty"`
}

// parseOne runs one name through the parser and wraps the outcome; errors
// of the unparsable kinds become records, they are results here, not
// failures.
func parseOne(parser gnameparser.GNameParser, name string,
	rankHint rank.Rank, codeHint nomcode.Code) record {
	rec := record{
		VerbatimID: gnuuid.New(name).String(),
		Verbatim:   name,
	}

	pn, err := parser.Parse(name, rankHint, codeHint)
	if err != nil {
		var unp *parsed.UnparsableNameError
		if errors.As(err, &unp) {
			rec.NameType = unp.Type.String()
		}
		return rec
	}
	rec.Parsed = true
	rec.NameType = pn.Type.String()
	rec.Name = &pn
	return rec
}

// encoder writes records in the configured output format.
type encoder struct {
	format     string
	json       gnfmt.GNjson
	csvStarted bool
}

func newEncoder(format string) *encoder {
	return &encoder{
		format: format,
		json:   gnfmt.GNjson{Pretty: format == "json"},
	}
}

func (e *encoder) write(w io.Writer, rec record) error {
	if e.format == "csv" {
		return e.writeCSV(w, rec)
	}
	bs, err := e.json.Encode(rec)
	if err != nil {
		return &gn.Error{
			Code: errcode.OutputEncodeError,
			Msg:  "Cannot encode parsed record for <em>%s</em>",
			Vars: []any{rec.Verbatim},
			Err:  fmt.Errorf("failed to encode record: %w", err),
		}
	}
	_, err = fmt.Fprintln(w, string(bs))
	return err
}

var csvHeader = []string{
	"Id", "Verbatim", "Parsed", "NameType", "Canonical", "CanonicalFull",
	"Rank", "Authorship", "Year", "Quality",
}

func (e *encoder) writeCSV(w io.Writer, rec record) error {
	cw := csv.NewWriter(w)
	if !e.csvStarted {
		e.csvStarted = true
		if err := cw.Write(csvHeader); err != nil {
			return err
		}
	}
	row := []string{
		rec.VerbatimID, rec.Verbatim, strconv.FormatBool(rec.Parsed),
		rec.NameType, "", "", "", "", "", rec.stateString(),
	}
	if rec.Name != nil {
		row[4] = rec.Name.Canonical(false)
		row[5] = rec.Name.Canonical(true)
		row[6] = rec.Name.Rank.String()
		if a := rec.Name.CombinationAuthorship; a != nil {
			row[7] = a.String()
			row[8] = a.Year
		}
	}
	if err := cw.Write(row); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func (r record) stateString() string {
	if r.Name == nil {
		return parsed.None.String()
	}
	return r.Name.State.String()
}
