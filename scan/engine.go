package scan

import "github.com/Drolfothesgnir/transducer/lexer"

//go:generate mockgen -package mockscan -destination mock/engine.go github.com/Drolfothesgnir/transducer/scan Engine

// Engine is the source of tokens driven by the [Loop].
// Each call to Next identifies one token, runs its action and advances the input.
// It returns [io.EOF] when the input is exhausted.
type Engine interface {
	Next() (lexer.Token, error)
}
