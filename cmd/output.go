package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tidwall/pretty"
	"golang.org/x/term"

	"github.com/pokeql/pokeql/internal/graph"
)

// newResolver returns a resolver bound to the loaded store. Every data command
// goes through it so the CLI and the server share one code path.
func newResolver() *graph.Resolver {
	return &graph.Resolver{Core: core, IDLength: cfg.IDs.Length}
}

// printJSON writes v as indented JSON, colorized when stdout is a terminal.
func printJSON(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	writeJSON(w, data)
	return nil
}

func writeJSON(w io.Writer, data []byte) {
	out := pretty.Pretty(data)
	if isTerminal(w) {
		out = pretty.Color(out, nil)
	}
	fmt.Fprint(w, string(out))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
