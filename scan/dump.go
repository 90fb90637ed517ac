package scan

import (
	"fmt"
	"io"

	"github.com/Drolfothesgnir/transducer/lexer"
)

// dumpEngine writes every token the wrapped Engine produces to w.
type dumpEngine struct {
	Engine
	w io.Writer
}

// Dump wraps engine so that each non-empty token is also written to w as one
// `RULE<TAB>"text"` line. The engine's own output is not affected.
func Dump(engine Engine, w io.Writer) Engine {
	return &dumpEngine{Engine: engine, w: w}
}

func (d *dumpEngine) Next() (lexer.Token, error) {
	tok, err := d.Engine.Next()
	if tok.Len() == 0 {
		return tok, err
	}

	if _, werr := fmt.Fprintf(d.w, "%s\t%q\n", tok.Rule, tok.Text); werr != nil && err == nil {
		err = fmt.Errorf("dump token at offset %d: %w", tok.Pos, werr)
	}

	return tok, err
}
