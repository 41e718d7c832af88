package interpreter

// Program is a parsed script. Entries keep input order, which is also the
// order results are reported in.
type Program struct {
	Grid    Grid
	Entries []Entry
}

// Entry is one rover in its initial state and the commands it will follow.
type Entry struct {
	Rover    Rover
	Commands []Command
}

// Exec runs every entry in order and returns the final rovers. The Program
// itself is left untouched, so it can be executed again with the same result.
func (p *Program) Exec(ctx *Context) []Rover {
	if ctx == nil {
		ctx = NewContext()
	}
	results := make([]Rover, 0, len(p.Entries))
	for i, e := range p.Entries {
		r := e.Rover
		for j, c := range e.Commands {
			if r.Lost() {
				break
			}
			r.FollowCommand(c, p.Grid)
			if ctx.Log != nil {
				ctx.Log.Debugf("rover %d: %s -> %s", i+1, c, r)
			}
			if ctx.Observer != nil {
				ctx.Observer(Step{Entry: i, Index: j, Command: c, Rover: r})
			}
		}
		if ctx.Log != nil {
			if r.Lost() {
				ctx.Log.Infof("rover %d lost at %s", i+1, r.Position())
			} else {
				ctx.Log.Infof("rover %d: %s", i+1, r)
			}
		}
		results = append(results, r)
	}
	return results
}

// Trace returns the states r passes through while following cmds, starting
// with r itself. It stops at the command that loses the rover.
func Trace(r Rover, cmds []Command, g Grid) []Rover {
	states := []Rover{r}
	for _, c := range cmds {
		if r.Lost() {
			break
		}
		r.FollowCommand(c, g)
		states = append(states, r)
	}
	return states
}
