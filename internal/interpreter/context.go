package interpreter

import (
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

// Context carries what every rover of one run shares.

type Context struct {
	Log commonlog.Logger
	// Observer, when set, is called after each processed command.
	Observer func(Step)
}

func NewContext() *Context {
	return &Context{Log: log}
}

// Step is one processed command: the Entry index, the index of the command
// within that entry and the rover state right after it.
type Step struct {
	Entry   int
	Index   int
	Command Command
	Rover   Rover
}
