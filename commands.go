package polycalc

import (
	"fmt"
	"strings"

	"github.com/jonathanmweiss/go-polycalc/poly"
	"go.uber.org/zap"
)

type command struct {
	// polynomials the command needs on the stack.
	needs int
	run   func(c *Calculator)
}

// paramCommand takes one numeric argument after a single space.
type paramCommand struct {
	// errParam is reported for a missing or malformed argument.
	errParam error
	run      func(c *Calculator, arg string) error
}

var commands = map[string]command{
	"ZERO": {0, func(c *Calculator) { c.stack.Push(poly.Zero()) }},

	"IS_COEFF": {1, func(c *Calculator) { c.printBool(c.stack.Top().IsCoeff()) }},
	"IS_ZERO":  {1, func(c *Calculator) { c.printBool(c.stack.Top().IsZero()) }},
	"IS_EQ":    {2, func(c *Calculator) { c.printBool(c.stack.Top().Equals(c.stack.Second())) }},
	"DEG":      {1, func(c *Calculator) { c.println(c.stack.Top().Degree()) }},
	"PRINT":    {1, func(c *Calculator) { c.println(poly.FormatCanonical(c.stack.Top())) }},

	"FINGERPRINT": {1, func(c *Calculator) { c.println(c.eval.Fingerprint(c.stack.Top())) }},

	"CLONE": {1, func(c *Calculator) { c.stack.Push(c.stack.Top().Clone()) }},
	"POP":   {1, func(c *Calculator) { c.stack.Pop() }},
	"NEG":   {1, func(c *Calculator) { c.stack.Push(poly.Neg(c.stack.Pop())) }},

	"ADD": {2, binary(poly.Add)},
	"MUL": {2, binary(poly.Mul)},
	"SUB": {2, binary(poly.Sub)},
}

var paramCommands = map[string]paramCommand{
	"DEG_BY":  {ErrDegByWrongVariable, (*Calculator).degBy},
	"AT":      {ErrAtWrongValue, (*Calculator).at},
	"COMPOSE": {ErrComposeWrongParameter, (*Calculator).compose},
}

// binary pops p, then q, and pushes op(p, q).
func binary(op func(p, q poly.Poly) poly.Poly) func(c *Calculator) {
	return func(c *Calculator) {
		p := c.stack.Pop()
		q := c.stack.Pop()
		c.stack.Push(op(p, q))
	}
}

func (c *Calculator) execCommand(line string) error {
	if cmd, ok := commands[line]; ok {
		c.log.Debug("command", zap.Int("line", c.line), zap.String("name", line))

		if err := c.need(cmd.needs); err != nil {
			return err
		}

		cmd.run(c)

		return nil
	}

	// matched by prefix: "ATX" is a malformed AT, not an unknown command.
	for name, cmd := range paramCommands {
		rest, ok := strings.CutPrefix(line, name)
		if !ok {
			continue
		}

		c.log.Debug("command", zap.Int("line", c.line), zap.String("name", name))

		// exactly one space, then the argument up to the end of the line.
		arg, ok := strings.CutPrefix(rest, " ")
		if !ok || arg == "" {
			return cmd.errParam
		}

		return cmd.run(c, arg)
	}

	return ErrWrongCommand
}

func (c *Calculator) need(n int) error {
	if c.stack.Len() < n {
		return ErrStackUnderflow
	}

	return nil
}

func (c *Calculator) degBy(arg string) error {
	idx, end, ok := poly.ParseDeg(arg)
	if !ok || end != len(arg) {
		return ErrDegByWrongVariable
	}

	if err := c.need(1); err != nil {
		return err
	}

	c.println(c.stack.Top().DegreeBy(idx))

	return nil
}

func (c *Calculator) at(arg string) error {
	x, end, ok := poly.ParseCoeff(arg)
	if !ok || end != len(arg) {
		return ErrAtWrongValue
	}

	if err := c.need(1); err != nil {
		return err
	}

	c.stack.Push(poly.At(c.stack.Pop(), x))

	return nil
}

// compose pops p, then q[k-1], ..., q[0], and pushes p(q[0], ..., q[k-1]).
func (c *Calculator) compose(arg string) error {
	k, end, ok := poly.ParseDeg(arg)
	if !ok || end != len(arg) {
		return ErrComposeWrongParameter
	}

	// k+1 may overflow.
	if k >= uint64(c.stack.Len()) {
		return ErrStackUnderflow
	}

	p := c.stack.Pop()
	qs := make([]poly.Poly, k)
	for i := len(qs) - 1; i >= 0; i-- {
		qs[i] = c.stack.Pop()
	}

	c.stack.Push(poly.Compose(p, qs))

	return nil
}

func (c *Calculator) printBool(b bool) {
	if b {
		c.println(1)
	} else {
		c.println(0)
	}
}

func (c *Calculator) println(v any) {
	fmt.Fprintln(c.out, v)
}
