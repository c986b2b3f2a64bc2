package polycalc

import (
	"bytes"
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jonathanmweiss/go-polycalc/poly"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func runScript(t *testing.T, opts Options, lines ...string) (stdout, stderr []string) {
	t.Helper()

	var out, errOut bytes.Buffer

	c, err := NewCalculator(&out, opts)
	if err != nil {
		t.Fatal(err)
	}

	if err := c.Run(context.Background(), strings.NewReader(strings.Join(lines, "\n")+"\n"), &errOut); err != nil {
		t.Fatal(err)
	}

	return splitLines(out.String()), splitLines(errOut.String())
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}

	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func TestBasicScript(t *testing.T) {
	stdout, stderr := runScript(t, Options{},
		"# comment",
		"",
		"(1,2)+(3,0)",
		"PRINT",
		"DEG",
		"(2,1)",
		"ADD",
		"PRINT",
		"AT 10",
		"PRINT",
		"IS_COEFF",
		"IS_ZERO",
		"ZERO",
		"IS_ZERO",
		"IS_EQ",
		"POP",
		"CLONE",
		"IS_EQ",
		"SUB",
		"IS_ZERO",
		"FOO",
		"(1,2",
		"DEG_BY",
		"AT x",
		"COMPOSE -1",
		"POP",
		"POP",
		"DEG_BY 0",
		"AT 5",
		"is_zero",
	)

	wantOut := []string{
		"(1,2)+(3,0)",
		"2",
		"(1,2)+(2,1)+(3,0)",
		"123",
		"1",
		"0",
		"1",
		"0",
		"1",
		"1",
	}

	wantErr := []string{
		"ERROR 21 WRONG COMMAND",
		"ERROR 22 WRONG POLY",
		"ERROR 23 DEG BY WRONG VARIABLE",
		"ERROR 24 AT WRONG VALUE",
		"ERROR 25 COMPOSE WRONG PARAMETER",
		"ERROR 27 STACK UNDERFLOW",
		"ERROR 28 STACK UNDERFLOW",
		"ERROR 29 STACK UNDERFLOW",
		"ERROR 30 WRONG COMMAND",
	}

	if diff := cmp.Diff(wantOut, stdout); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(wantErr, stderr); diff != "" {
		t.Errorf("stderr mismatch (-want +got):\n%s", diff)
	}
}

func TestComposeAndParams(t *testing.T) {
	stdout, stderr := runScript(t, Options{},
		"(1,1)+(1,0)",
		"(1,2)",
		"COMPOSE 1",
		"PRINT",
		"((1,3),1)",
		"DEG_BY 1",
		"DEG_BY 0",
		"DEG_BY 18446744073709551615",
		"DEG",
		"MUL",
		"PRINT",
		"NEG",
		"PRINT",
		"COMPOSE 0",
		"PRINT",
		"COMPOSE 1",
		"COMPOSE 18446744073709551615",
		"COMPOSE 18446744073709551616",
		"AT 9223372036854775808",
		"AT -0",
		"DEG",
		"DEG_BY  1",
		"DEG_BYX 1",
		"DEG 1",
		"PRINT ",
		"AT\t1",
		"DEG_BY 01",
	)

	wantOut := []string{
		"(1,2)+(2,1)+(1,0)",
		"3",
		"1",
		"0",
		"4",
		"((1,3),3)+((2,3),2)+((1,3),1)",
		"((-1,3),3)+((-2,3),2)+((-1,3),1)",
		"0",
		"-1",
	}

	wantErr := []string{
		"ERROR 16 STACK UNDERFLOW",
		"ERROR 17 STACK UNDERFLOW",
		"ERROR 18 COMPOSE WRONG PARAMETER",
		"ERROR 19 AT WRONG VALUE",
		"ERROR 22 DEG BY WRONG VARIABLE",
		"ERROR 23 DEG BY WRONG VARIABLE",
		"ERROR 24 WRONG COMMAND",
		"ERROR 25 WRONG COMMAND",
		"ERROR 26 AT WRONG VALUE",
		"ERROR 27 DEG BY WRONG VARIABLE",
	}

	if diff := cmp.Diff(wantOut, stdout); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(wantErr, stderr); diff != "" {
		t.Errorf("stderr mismatch (-want +got):\n%s", diff)
	}
}

func TestParamCommandPrefix(t *testing.T) {
	stdout, stderr := runScript(t, Options{},
		"DEG_BYX 1",
		"ATX",
		"AT1",
		"COMPOSED 1",
		"ATTACK 2",
		"DEGREE",
		"(1,1)",
		"ATX",
		"PRINT",
	)

	wantErr := []string{
		"ERROR 1 DEG BY WRONG VARIABLE",
		"ERROR 2 AT WRONG VALUE",
		"ERROR 3 AT WRONG VALUE",
		"ERROR 4 COMPOSE WRONG PARAMETER",
		"ERROR 5 AT WRONG VALUE",
		"ERROR 6 WRONG COMMAND",
		"ERROR 8 AT WRONG VALUE",
	}

	if diff := cmp.Diff(wantErr, stderr); diff != "" {
		t.Errorf("stderr mismatch (-want +got):\n%s", diff)
	}

	// the malformed AT left the stack alone.
	if diff := cmp.Diff([]string{"(1,1)"}, stdout); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}
}

func TestComposeOrder(t *testing.T) {
	a := assert.New(t)

	// q[0] is the deepest of the popped polynomials.
	stdout, stderr := runScript(t, Options{},
		"(1,1)",
		"(2,0)",
		"(3,0)",
		"((1,1),1)",
		"COMPOSE 2",
		"PRINT",
		"POP",
		"PRINT",
	)

	a.Empty(stderr)
	a.Equal([]string{"6", "(1,1)"}, stdout)
}

func TestExec(t *testing.T) {
	a := assert.New(t)

	var out bytes.Buffer

	c, err := NewCalculator(&out, Options{})
	a.NoError(err)

	a.NoError(c.Exec("(1,1)"))
	a.NoError(c.Exec("CLONE"))
	a.Equal(2, c.Stack().Len())

	err = c.Exec("5\r")
	var lineErr *LineError
	a.True(errors.As(err, &lineErr))
	a.Equal(3, lineErr.Line)
	a.ErrorIs(err, ErrWrongPoly)
	a.Equal("ERROR 3 WRONG POLY", err.Error())

	// rejected lines leave the stack alone.
	a.ErrorIs(c.Exec("COMPOSE 5"), ErrStackUnderflow)
	a.Equal(2, c.Stack().Len())
}

func TestRunLastLineWithoutNewline(t *testing.T) {
	a := assert.New(t)

	var out, errOut bytes.Buffer

	c, err := NewCalculator(&out, Options{})
	a.NoError(err)

	a.NoError(c.Run(context.Background(), strings.NewReader("3\r\n4\n5\nADD\nPRINT"), &errOut))
	a.Equal("9\n", out.String())
	a.Equal("ERROR 1 WRONG POLY\n", errOut.String())
}

func TestRunLineTooLong(t *testing.T) {
	a := assert.New(t)

	var out, errOut bytes.Buffer

	c, err := NewCalculator(&out, Options{MaxLineBytes: 16})
	a.NoError(err)

	err = c.Run(context.Background(), strings.NewReader("1\n"+strings.Repeat("9", 64)+"\n"), &errOut)
	a.ErrorIs(err, ErrLineTooLong)
	a.Equal(1, c.Stack().Len())
}

func TestRunCancelled(t *testing.T) {
	a := assert.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out, errOut bytes.Buffer

	c, err := NewCalculator(&out, Options{})
	a.NoError(err)

	a.ErrorIs(c.Run(ctx, strings.NewReader("1\n2\n"), &errOut), context.Canceled)
	a.Equal(0, c.Stack().Len())
}

func TestFingerprintCommand(t *testing.T) {
	a := assert.New(t)

	var out bytes.Buffer

	c, err := NewCalculator(&out, Options{FingerprintPrime: 65537})
	a.NoError(err)

	g := c.eval.Field().Generator()

	a.NoError(c.Exec("(1,1)"))
	a.NoError(c.Exec("FINGERPRINT"))
	a.NoError(c.Exec("-1"))
	a.NoError(c.Exec("FINGERPRINT"))

	a.Equal(strconv.FormatUint(g, 10)+"\n65536\n", out.String())

	_, err = NewCalculator(&out, Options{FingerprintPrime: 65536})
	a.Error(err)
}

func TestTraceStack(t *testing.T) {
	a := assert.New(t)

	core, logs := observer.New(zapcore.DebugLevel)

	var out bytes.Buffer

	c, err := NewCalculator(&out, Options{Logger: zap.New(core), TraceStack: true})
	a.NoError(err)

	a.NoError(c.Exec("(1,1)"))
	a.NoError(c.Exec("2"))

	traces := logs.FilterMessage("stack").All()
	a.Len(traces, 2)
	a.Equal([]interface{}{"2", "(1,1)"}, traces[1].ContextMap()["polys"])

	a.Error(c.Exec("ADD x"))
	a.Equal(1, logs.FilterMessage("line rejected").Len())
}

func TestStack(t *testing.T) {
	a := assert.New(t)

	s := NewStack()
	a.Equal(0, s.Len())
	a.Panics(func() { s.Pop() })
	a.Panics(func() { s.Top() })

	s.Push(poly.NewCoeff(1))
	a.Panics(func() { s.Second() })

	s.Push(poly.NewCoeff(2))
	s.Push(poly.NewCoeff(3))

	a.Equal(3, s.Len())
	a.Equal(poly.NewCoeff(3), s.Top())
	a.Equal(poly.NewCoeff(2), s.Second())
	a.Equal([]poly.Poly{poly.NewCoeff(3), poly.NewCoeff(2), poly.NewCoeff(1)}, s.Items())

	a.Equal(poly.NewCoeff(3), s.Pop())
	a.Equal(poly.NewCoeff(2), s.Pop())
	a.Equal(1, s.Len())
}
