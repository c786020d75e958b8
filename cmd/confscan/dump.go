package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/confkit/confscan/confscan"
)

var (
	kindStyle    = lipgloss.NewStyle().Foreground(accentColor).Bold(true).Width(12)
	payloadStyle = lipgloss.NewStyle().Foreground(successColor)
	posStyle     = lipgloss.NewStyle().Foreground(mutedColor)
	diagStyle    = lipgloss.NewStyle().Foreground(errorColor)
)

func dumpCommand(args []string) error {
	fs := flag.NewFlagSet("dump", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	asJSON := fs.Bool("json", false, "emit tokens as a JSON array")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(fs.Args()) != 1 {
		return errors.New("confscan dump: config file required")
	}

	s, err := confscan.Open(fs.Args()[0])
	if err != nil {
		return err
	}
	defer s.Close()

	if *asJSON {
		return dumpJSON(s)
	}

	for {
		tok := s.Next()
		if tok.Kind == confscan.KindEOF {
			return nil
		}
		line := fmt.Sprintf("%s %s  %s",
			kindStyle.Render(string(tok.Kind)),
			payloadStyle.Render(tokenPayload(tok)),
			posStyle.Render(fmt.Sprintf("%s:%d", tok.Path, tok.Line)),
		)
		if tok.Kind == confscan.KindError {
			line += "  " + diagStyle.Render(s.Err().Text)
		}
		fmt.Println(line)
	}
}

type tokenRecord struct {
	Kind  string `json:"kind"`
	Value any    `json:"value,omitempty"`
	Line  int    `json:"line"`
	Path  string `json:"path"`
	Error string `json:"error,omitempty"`
}

func dumpJSON(s *confscan.Scanner) error {
	records := make([]tokenRecord, 0)
	for {
		tok := s.Next()
		if tok.Kind == confscan.KindEOF {
			break
		}
		rec := tokenRecord{Kind: string(tok.Kind), Value: tokenValue(tok), Line: tok.Line, Path: tok.Path}
		if tok.Kind == confscan.KindError {
			rec.Error = s.Err().Text
		}
		records = append(records, rec)
	}
	out, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tokens: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// tokenValue picks the payload field matching the kind, as a JSON-friendly
// value. Kinds without payloads return nil.
func tokenValue(tok confscan.Token) any {
	switch tok.Kind {
	case confscan.KindBoolean:
		return tok.Bool
	case confscan.KindName, confscan.KindString:
		return string(tok.Bytes)
	case confscan.KindInteger, confscan.KindHex:
		return tok.Int
	case confscan.KindInteger64:
		return tok.Int64
	case confscan.KindHex64:
		return tok.Uint64
	case confscan.KindFloat:
		return tok.Float
	case confscan.KindGarbage:
		return string(tok.Byte)
	default:
		return nil
	}
}

func tokenPayload(tok confscan.Token) string {
	switch tok.Kind {
	case confscan.KindBoolean:
		return strconv.FormatBool(tok.Bool)
	case confscan.KindName:
		return string(tok.Bytes)
	case confscan.KindString:
		return strconv.Quote(string(tok.Bytes))
	case confscan.KindInteger, confscan.KindHex:
		return strconv.FormatInt(int64(tok.Int), 10)
	case confscan.KindInteger64:
		return strconv.FormatInt(tok.Int64, 10)
	case confscan.KindHex64:
		return fmt.Sprintf("0x%X", tok.Uint64)
	case confscan.KindFloat:
		return strconv.FormatFloat(tok.Float, 'g', -1, 64)
	case confscan.KindGarbage:
		return strconv.QuoteRune(rune(tok.Byte))
	default:
		return ""
	}
}
