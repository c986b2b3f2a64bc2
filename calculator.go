package polycalc

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jonathanmweiss/go-polycalc/field"
	"github.com/jonathanmweiss/go-polycalc/poly"
	"go.uber.org/zap"
)

const DefaultMaxLineBytes = 64 << 20

type Options struct {
	// Logger receives debug traces. Defaults to a no-op logger.
	Logger *zap.Logger

	// FingerprintPrime is the field order used by FINGERPRINT.
	// Defaults to field.DefaultPrime.
	FingerprintPrime uint64

	// TraceStack logs the whole stack after every line.
	TraceStack bool

	// MaxLineBytes bounds the length of one input line in Run.
	// Defaults to DefaultMaxLineBytes.
	MaxLineBytes int
}

// Calculator evaluates a line-oriented postfix language over a stack of
// polynomials. Every input line is either a comment ('#'), empty, a command
// (starting with an ASCII letter) or a polynomial literal to push.
type Calculator struct {
	stack *Stack
	out   io.Writer
	log   *zap.Logger
	eval  *field.Evaluator

	traceStack   bool
	maxLineBytes int

	line int
}

var ErrLineTooLong = errors.New("input line too long")

func NewCalculator(out io.Writer, opts Options) (*Calculator, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	prime := opts.FingerprintPrime
	if prime == 0 {
		prime = field.DefaultPrime
	}

	fld, err := field.NewPrimeField(prime)
	if err != nil {
		return nil, fmt.Errorf("fingerprint field: %w", err)
	}

	maxLine := opts.MaxLineBytes
	if maxLine <= 0 {
		maxLine = DefaultMaxLineBytes
	}

	return &Calculator{
		stack:        NewStack(),
		out:          out,
		log:          logger,
		eval:         field.NewEvaluator(fld),
		traceStack:   opts.TraceStack,
		maxLineBytes: maxLine,
	}, nil
}

func (c *Calculator) Stack() *Stack {
	return c.stack
}

// Exec processes the next input line, without its line terminator.
// A rejected line is reported as a *LineError and leaves the stack unchanged.
func (c *Calculator) Exec(line string) error {
	c.line++

	if line == "" || line[0] == '#' {
		return nil
	}

	var err error
	if isLetter(line[0]) {
		err = c.execCommand(line)
	} else {
		err = c.pushPoly(line)
	}

	if c.traceStack {
		c.log.Debug("stack",
			zap.Int("line", c.line),
			zap.Strings("polys", formatAll(c.stack.Items())),
		)
	}

	if err != nil {
		c.log.Debug("line rejected", zap.Int("line", c.line), zap.Error(err))

		return &LineError{Line: c.line, Err: err}
	}

	return nil
}

func (c *Calculator) pushPoly(line string) error {
	p, err := poly.Parse(line)
	if err != nil {
		c.log.Debug("parse failed", zap.Int("line", c.line), zap.Error(err))

		return ErrWrongPoly
	}

	c.log.Debug("push", zap.Int("line", c.line), zap.Bool("coeff", p.IsCoeff()))
	c.stack.Push(p)

	return nil
}

// Run feeds every line of r to Exec. Line errors go to errOut and do not stop
// the loop; only read errors and cancellation do.
func (c *Calculator) Run(ctx context.Context, r io.Reader, errOut io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(4096, c.maxLineBytes)), c.maxLineBytes)
	scanner.Split(scanLines)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := c.Exec(scanner.Text())

		var lineErr *LineError
		if errors.As(err, &lineErr) {
			fmt.Fprintln(errOut, lineErr)
		} else if err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return fmt.Errorf("%w: line %d", ErrLineTooLong, c.line+1)
		}

		return err
	}

	c.log.Debug("input finished", zap.Int("lines", c.line), zap.Int("stack", c.stack.Len()))

	return nil
}

// scanLines splits on '\n' only. Unlike bufio.ScanLines a '\r' stays part of
// the line.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[:i], nil
	}

	if atEOF {
		return len(data), data, nil
	}

	return 0, nil, nil
}

func isLetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

func formatAll(ps []poly.Poly) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = poly.FormatCanonical(p)
	}

	return out
}
