// Package scanscript drives a scanbuf scanner from a list of steps, which is
// how an embedding layer (or the scanbuf CLI) talks to the core without
// linking against either variant directly.
package scanscript

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/smasher164/xid"
	"gopkg.in/yaml.v3"

	"github.com/vippsas/scanbuf"
)

type Op string

const (
	OpMark     Op = "mark"
	OpRollback Op = "rollback"
	OpAdvance  Op = "advance"
	OpMatches  Op = "matches"
	OpPeek     Op = "peek"
	OpRead     Op = "read"
	OpRegex    Op = "regex"
	OpOffset   Op = "offset"
	OpTake     Op = "take"
	OpBackup   Op = "backup"
	OpIdent    Op = "ident"
)

var knownOps = map[Op]bool{
	OpMark: true, OpRollback: true, OpAdvance: true, OpMatches: true, OpPeek: true,
	OpRead: true, OpRegex: true, OpOffset: true, OpTake: true, OpBackup: true, OpIdent: true,
}

// Step is one scanner call. Only the fields relevant to Op are used.
type Step struct {
	Op      Op     `yaml:"op"`
	N       int    `yaml:"n,omitempty"`
	Literal string `yaml:"literal,omitempty"`
	Pattern string `yaml:"pattern,omitempty"`
	From    int    `yaml:"from,omitempty"`
	To      int    `yaml:"to,omitempty"`
}

type Result struct {
	Index int
	Op    Op
	Value string
	N     int
	OK    bool
}

func (r Result) String() string {
	return fmt.Sprintf("%d: %s ok=%t n=%d %q", r.Index, r.Op, r.OK, r.N, r.Value)
}

var ErrUnknownOp = errors.New("unknown op")

// UnsupportedOpError is returned when a step uses an op the scanner variant
// does not provide, e.g. take on a byte scanner.
type UnsupportedOpError struct {
	Index   int
	Op      Op
	Scanner string
}

func (e UnsupportedOpError) Error() string {
	return fmt.Sprintf("step %d: op %s is not supported by the %s scanner", e.Index, e.Op, e.Scanner)
}

func ParseScript(data []byte) ([]Step, error) {
	var steps []Step
	if err := yaml.Unmarshal(data, &steps); err != nil {
		return nil, err
	}
	if err := Validate(steps); err != nil {
		return nil, err
	}
	return steps, nil
}

func Validate(steps []Step) error {
	for i, step := range steps {
		if !knownOps[step.Op] {
			return fmt.Errorf("step %d: %w: %q", i, ErrUnknownOp, step.Op)
		}
	}
	return nil
}

// Run executes steps in order against s. Out-of-range failures and failed
// matches are recorded as OK=false and the run continues; an invalid regexp
// or an op the variant lacks stops the run and returns the results so far.
func Run(logger logrus.FieldLogger, s scanbuf.Scanner, steps []Step) ([]Result, error) {
	results := make([]Result, 0, len(steps))
	for i, step := range steps {
		result, err := runStep(s, step)
		if err != nil {
			var unsupported UnsupportedOpError
			if errors.As(err, &unsupported) {
				unsupported.Index = i
				err = unsupported
			}
			logger.WithError(err).WithField("step", i).Error("script aborted")
			return results, err
		}
		result.Index = i
		logger.WithFields(logrus.Fields{
			"step":  i,
			"op":    step.Op,
			"ok":    result.OK,
			"n":     result.N,
			"value": result.Value,
		}).Debug("step done")
		results = append(results, result)
	}
	return results, nil
}

func runStep(s scanbuf.Scanner, step Step) (Result, error) {
	result := Result{Op: step.Op, OK: true}
	switch step.Op {
	case OpMark:
		s.Mark()
		return result, nil
	case OpRollback:
		s.Rollback()
		return result, nil
	case OpAdvance:
		s.Advance(step.N)
		return result, nil
	case OpMatches:
		result.OK = s.Matches(step.Literal)
		return result, nil
	}

	switch s := s.(type) {
	case *scanbuf.CharScanner:
		return runCharStep(s, step, result)
	case *scanbuf.ByteScanner:
		return runByteStep(s, step, result)
	}
	return result, UnsupportedOpError{Op: step.Op, Scanner: fmt.Sprintf("%T", s)}
}

func runCharStep(s *scanbuf.CharScanner, step Step, result Result) (Result, error) {
	var err error
	switch step.Op {
	case OpRead:
		result.Value, result.N, err = s.Read(step.N)
	case OpPeek:
		result.Value, result.OK = s.Peek(step.N)
		if result.OK {
			result.N = step.N
		}
	case OpRegex:
		result.Value, err = s.MatchesRegex(step.Pattern)
		if err != nil {
			return result, err
		}
		result.OK = result.Value != ""
	case OpOffset:
		result.N = s.Offset()
	case OpBackup:
		result.N = s.Backup()
	case OpTake:
		result.Value, err = s.Take(step.From, step.To)
		result.N = len([]rune(result.Value))
	case OpIdent:
		n := s.Span(identifier)
		result.Value, result.N, err = s.Read(n)
		result.OK = n > 0
	default:
		return result, UnsupportedOpError{Op: step.Op, Scanner: "char"}
	}
	if errors.Is(err, scanbuf.ErrOutOfRange) {
		result.OK = false
		return result, nil
	}
	return result, err
}

func runByteStep(s *scanbuf.ByteScanner, step Step, result Result) (Result, error) {
	switch step.Op {
	case OpPeek:
		result.Value, result.N, result.OK = s.Peek(step.N)
		return result, nil
	default:
		return result, UnsupportedOpError{Op: step.Op, Scanner: "byte"}
	}
}

func identifier(r rune, i int) bool {
	if i == 0 {
		return xid.Start(r) || r == '_'
	}
	return xid.Continue(r)
}
