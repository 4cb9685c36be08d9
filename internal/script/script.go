// Package script parses and replays ladder operation scripts, one
// operation per line:
//
//	# comment
//	inject 150,50
//	toggle 42
//	fund
//	horizon 100
//	show
package script

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/theirongolddev/ladder/internal/challenge"
)

// Op is a script operation name.
type Op string

const (
	OpInject  Op = "inject"
	OpToggle  Op = "toggle"
	OpFund    Op = "fund"
	OpHorizon Op = "horizon"
	OpShow    Op = "show"
)

// Step is one parsed script line.
type Step struct {
	Line int
	Op   Op
	Arg  string // raw amount for inject
	N    int    // unit for toggle, size for horizon
}

// ParseError reports a malformed script line.
type ParseError struct {
	Line int
	Text string
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Msg, e.Text)
}

// Parse reads a script. Blank lines and lines starting with # are skipped.
func Parse(r io.Reader) ([]Step, error) {
	var steps []Step
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		step, err := parseLine(line, text)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return steps, nil
}

func parseLine(line int, text string) (Step, error) {
	fields := strings.Fields(text)
	op := Op(strings.ToLower(fields[0]))
	args := fields[1:]
	step := Step{Line: line, Op: op}

	fail := func(msg string) (Step, error) {
		return Step{}, &ParseError{Line: line, Text: text, Msg: msg}
	}

	switch op {
	case OpFund, OpShow:
		if len(args) != 0 {
			return fail(string(op) + " takes no argument")
		}
	case OpInject:
		if len(args) != 1 {
			return fail("inject needs one amount")
		}
		// Amounts are validated when applied, like typed input.
		step.Arg = args[0]
	case OpToggle, OpHorizon:
		if len(args) != 1 {
			return fail(string(op) + " needs one number")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fail(string(op) + " needs a whole number")
		}
		step.N = n
	default:
		return fail("unknown operation")
	}
	return step, nil
}

// Result is the outcome of applying one step.
type Result struct {
	Status   challenge.Status // zero when the step set no status
	Declined bool             // horizon change declined at the prompt
	Err      error            // domain rejection, already reflected in Status
}

// Apply runs a mutating step against the controller. OpShow is a no-op.
func Apply(ctrl *challenge.Controller, step Step, confirm challenge.Confirmer) Result {
	before := ctrl.Status().Generation()

	var res Result
	switch step.Op {
	case OpInject:
		res.Err = ctrl.InjectLiquidity(step.Arg)
	case OpToggle:
		res.Err = ctrl.ToggleAllocation(step.N)
	case OpFund:
		_, res.Err = ctrl.FundRecommended()
	case OpHorizon:
		var hc challenge.HorizonChange
		hc, res.Err = ctrl.SetHorizon(step.N, confirm)
		res.Declined = res.Err == nil && !hc.Applied
	case OpShow:
		return res
	}

	if ctrl.Status().Generation() != before {
		res.Status = ctrl.Status().Current()
	}
	return res
}
