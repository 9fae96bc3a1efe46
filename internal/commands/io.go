package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/tappio/internal/model"
	"github.com/cleared-dev/tappio/internal/tappio"
)

// stdio is the path that selects standard input or output.
const stdio = "-"

// argAt returns args[i], or "-" when the argument was omitted.
func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return stdio
}

// load reads a ledger from path, or from the command's input for "-".
func (g *globals) load(cmd *cobra.Command, path string) (*model.Document, error) {
	cs, err := g.cfg.Format.Encoding()
	if err != nil {
		return nil, err
	}

	var doc *model.Document
	if path == "" || path == stdio {
		r, err := tappio.NewDecodingReader(cmd.InOrStdin(), cs)
		if err != nil {
			return nil, err
		}
		doc, err = tappio.Parse(r)
		if err != nil {
			return nil, fmt.Errorf("reading standard input: %w", err)
		}
	} else {
		doc, err = tappio.LoadFile(path, cs)
		if err != nil {
			return nil, err
		}
	}

	g.log.Debug("ledger loaded",
		"path", path,
		"fiscal_year", doc.Name,
		"accounts", len(doc.Accounts),
		"events", len(doc.Events))
	return doc, nil
}

// save writes doc to path, or to the command's output for "-".
func (g *globals) save(cmd *cobra.Command, path string, doc *model.Document) error {
	return g.saveWith(cmd, path, doc, g.cfg.Format.Pretty)
}

func (g *globals) saveWith(cmd *cobra.Command, path string, doc *model.Document, pretty bool) error {
	cs, err := g.cfg.Format.Encoding()
	if err != nil {
		return err
	}
	opts, err := g.cfg.Format.Options()
	if err != nil {
		return err
	}
	opts.Pretty = pretty

	if path != "" && path != stdio {
		if err := tappio.SaveFile(path, doc, opts, cs); err != nil {
			return err
		}
		g.log.Debug("ledger written", "path", path, "events", len(doc.Events))
		return nil
	}

	w, err := tappio.NewEncodingWriter(cmd.OutOrStdout(), cs)
	if err != nil {
		return err
	}
	if err := tappio.Write(w, doc, opts); err != nil {
		return fmt.Errorf("writing standard output: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("writing standard output: %w", err)
	}
	return nil
}

// openOutput opens a report destination. The returned close function
// must be called once writing is done.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" || path == stdio {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output: %w", err)
	}
	return f, f.Close, nil
}
