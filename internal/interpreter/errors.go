package interpreter

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// SyntaxError is a single problem found while parsing a script.
type SyntaxError struct {
	Pos lexer.Position
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// SyntaxErrors is every problem found in one script, in input order.
type SyntaxErrors []*SyntaxError

func (es SyntaxErrors) Error() string {
	msgs := make([]string, len(es))
	for i, e := range es {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "\n")
}

func (es *SyntaxErrors) add(pos lexer.Position, format string, args ...any) {
	*es = append(*es, &SyntaxError{Pos: pos, Msg: fmt.Sprintf(format, args...)})
}
