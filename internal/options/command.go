package options

// Command is the unit handed to the analysis engine. It is one of Top,
// Dominators or Paths and is switched on by type.
type Command interface {
	// Name returns the subcommand name of the mode
	Name() string

	command()
}

func (Top) Name() string        { return "top" }
func (Dominators) Name() string { return "dominators" }
func (Paths) Name() string      { return "paths" }

func (Top) command()        {}
func (Dominators) command() {}
func (Paths) command()      {}

// TopCommand wraps a copy of t
func TopCommand(t *Top) Command {
	return *t
}

// DominatorsCommand wraps a copy of d
func DominatorsCommand(d *Dominators) Command {
	return *d
}

// PathsCommand wraps a copy of p. The function list is copied so that later
// AddFunction calls on p do not reach the command.
func PathsCommand(p *Paths) Command {
	c := *p
	c.functions = p.Functions()
	return c
}
