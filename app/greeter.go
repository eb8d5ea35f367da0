package app

// Greeter is the demo root service. It receives everything it needs through
// its constructor and performs no lookups of its own.
type Greeter struct {
	out     Writer
	op      *Operation
	subject string
	rounds  int
}

// NewGreeter returns a Greeter writing to out on behalf of op.
func NewGreeter(out Writer, op *Operation, subject string, rounds int) *Greeter {
	return &Greeter{out: out, op: op, subject: subject, rounds: rounds}
}

// Greet writes the greeting followed by the operation identifier.
func (g *Greeter) Greet() {
	g.out.WriteLine("hello, " + g.subject)
	g.out.WriteLine("operation " + g.op.ID())
}

// Run greets once per configured round. The operation identifier repeats
// unchanged across rounds because the Operation behind it is a singleton.
func (g *Greeter) Run() {
	for i := 0; i < g.rounds; i++ {
		g.Greet()
	}
}

// Operation exposes the injected Operation for identity checks in the demo.
func (g *Greeter) Operation() *Operation {
	return g.op
}
