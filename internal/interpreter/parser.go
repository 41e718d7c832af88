package interpreter

import (
	"errors"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("marsrover.interpreter")

// A script is line oriented:
//
//	4 8
//	(2, 3, E) LFRFF
//	(0, 2, N) FFLFRFF
//
// The first non-blank line is the grid size, every following non-blank line
// is one rover and its commands.

type header struct {
	M *number `parser:"@@"`
	N *number `parser:"@@"`
}

type entry struct {
	X        *number `parser:"'(' @@ ','"`
	Y        *number `parser:"@@ ','"`
	Heading  *word   `parser:"@@ ')'"`
	Commands *word   `parser:"@@?"`
}

type number struct {
	Pos   lexer.Position
	Value string `parser:"@Int"`
}

type word struct {
	Pos   lexer.Position
	Value string `parser:"@Ident"`
}

var scriptLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
	{Name: "Int", Pattern: `[-+]?\d+`},
	{Name: "Ident", Pattern: `[A-Za-z]+`},
	{Name: "Punct", Pattern: `[(),]`},
})

var (
	headerParser = participle.MustBuild[header](participle.Lexer(scriptLexer), participle.Elide("Whitespace"))
	entryParser  = participle.MustBuild[entry](participle.Lexer(scriptLexer), participle.Elide("Whitespace"))
)

// Parse turns a script into a Program. Every line is checked even after a
// problem has been found; on failure the returned error is a SyntaxErrors
// holding all of them and no Program is returned.
func Parse(filename, data string) (*Program, error) {
	p := &scriptParser{filename: filename}
	prog := &Program{}
	haveGrid := false

	for i, line := range strings.Split(data, "\n") {
		p.line, p.offset = i+1, p.next
		p.next += len(line) + 1
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !haveGrid {
			haveGrid = true
			if g, ok := p.header(line); ok {
				prog.Grid = g
			}
			continue
		}
		if e, ok := p.entry(line); ok {
			prog.Entries = append(prog.Entries, e)
		}
	}
	if !haveGrid {
		p.errs.add(lexer.Position{Filename: filename, Line: 1, Column: 1}, "missing grid size")
	}

	if len(p.errs) > 0 {
		log.Debugf("%s: %d syntax errors", filename, len(p.errs))
		return nil, p.errs
	}
	log.Debugf("%s: grid %s, %d rovers", filename, prog.Grid, len(prog.Entries))
	return prog, nil
}

// scriptParser tracks where the current line starts so positions reported
// by participle, which only ever sees one line, can be made absolute.
type scriptParser struct {
	filename string
	line     int
	offset   int
	next     int
	errs     SyntaxErrors
}

func (p *scriptParser) header(line string) (Grid, bool) {
	h, err := headerParser.ParseString(p.filename, line)
	if err != nil {
		p.syntax(err)
		return Grid{}, false
	}
	m, okM := p.coord(h.M)
	n, okN := p.coord(h.N)
	return Grid{M: m, N: n}, okM && okN
}

func (p *scriptParser) entry(line string) (Entry, bool) {
	e, err := entryParser.ParseString(p.filename, line)
	if err != nil {
		p.syntax(err)
		return Entry{}, false
	}

	x, okX := p.coord(e.X)
	y, okY := p.coord(e.Y)
	o, okO := ParseOrientation(e.Heading.Value)
	if !okO {
		p.errs.add(p.pos(e.Heading.Pos), "unknown orientation %q (expected N, E, S or W)", e.Heading.Value)
	}

	cmds := []Command{}
	okC := true
	if e.Commands != nil {
		for i, r := range e.Commands.Value {
			c, ok := ParseCommand(r)
			if !ok {
				pos := p.pos(e.Commands.Pos)
				pos.Column += i
				pos.Offset += i
				p.errs.add(pos, "unknown command %q (expected L, R or F)", r)
				okC = false
				continue
			}
			cmds = append(cmds, c)
		}
	}

	if !(okX && okY && okO && okC) {
		return Entry{}, false
	}
	return Entry{Rover: NewRover(NewVector(x, y), o), Commands: cmds}, true
}

// coord converts a lexed integer, which must fit in 32 bits.
func (p *scriptParser) coord(n *number) (int, bool) {
	v, err := strconv.ParseInt(n.Value, 10, 32)
	if err != nil {
		msg := err.Error()
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			msg = numErr.Err.Error()
		}
		p.errs.add(p.pos(n.Pos), "integer %s: %s", n.Value, msg)
		return 0, false
	}
	return int(v), true
}

type positionedError interface {
	error
	Message() string
	Position() lexer.Position
}

func (p *scriptParser) syntax(err error) {
	var pe positionedError
	if errors.As(err, &pe) {
		p.errs.add(p.pos(pe.Position()), "%s", pe.Message())
		return
	}
	p.errs.add(lexer.Position{Filename: p.filename, Line: p.line, Column: 1, Offset: p.offset}, "%s", err.Error())
}

func (p *scriptParser) pos(pos lexer.Position) lexer.Position {
	pos.Filename = p.filename
	pos.Line = p.line
	pos.Offset += p.offset
	return pos
}
