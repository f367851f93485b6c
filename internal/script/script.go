// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package script evaluates vector arithmetic described
// in YAML documents.
package script

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/gviegas/vecmath/linear"
)

// Script is a sequence of steps over named
// vectors and matrices.
type Script struct {
	// Vectors maps names to four components each.
	Vectors map[string][]float32 `yaml:"vectors"`
	// Matrices maps names to four columns of
	// four components each.
	Matrices map[string][][]float32 `yaml:"matrices"`
	Steps    []Step                 `yaml:"steps"`
}

// Step is a single operation.
type Step struct {
	Op   string   `yaml:"op"`
	Args []string `yaml:"args"`
	// Scalar is the operand of scale and div.
	Scalar float32 `yaml:"scalar,omitempty"`
	// Index is the operand of at.
	Index int `yaml:"index,omitempty"`
	// As binds a vector result to a name.
	As string `yaml:"as,omitempty"`
}

// Load reads and validates the script at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("script validation failed: %w", err)
	}
	return &s, nil
}

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid script")

func invalid(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, a...))
}

// Validate checks that s can be evaluated.
// Index ranges and divisors are not checked here;
// they fail during evaluation.
func (s *Script) Validate() error {
	kinds := make(map[string]byte, len(s.Vectors)+len(s.Matrices))
	for _, name := range sortedKeys(s.Vectors) {
		if n := len(s.Vectors[name]); n != 4 {
			return invalid("vector %q has %d components, want 4", name, n)
		}
		kinds[name] = 'v'
	}
	for _, name := range sortedKeys(s.Matrices) {
		if _, dup := kinds[name]; dup {
			return invalid("matrix %q shadows a vector", name)
		}
		cols := s.Matrices[name]
		if len(cols) != 4 {
			return invalid("matrix %q has %d columns, want 4", name, len(cols))
		}
		for i, c := range cols {
			if len(c) != 4 {
				return invalid("matrix %q column %d has %d components, want 4", name, i, len(c))
			}
		}
		kinds[name] = 'm'
	}
	if len(s.Steps) == 0 {
		return invalid("no steps")
	}
	for i := range s.Steps {
		st := &s.Steps[i]
		o, ok := ops[st.Op]
		if !ok {
			return invalid("step %d: unknown op %q", i, st.Op)
		}
		if len(st.Args) != len(o.sig) {
			return invalid("step %d: %s takes %d operands, have %d", i, st.Op, len(o.sig), len(st.Args))
		}
		for j, a := range st.Args {
			k, ok := kinds[a]
			if !ok {
				return invalid("step %d: undefined operand %q", i, a)
			}
			if k != o.sig[j] {
				return invalid("step %d: operand %q is not a %s", i, a, kindName(o.sig[j]))
			}
		}
		if st.As != "" {
			if !o.vec {
				return invalid("step %d: %s does not produce a vector", i, st.Op)
			}
			if kinds[st.As] == 'm' {
				return invalid("step %d: %q shadows a matrix", i, st.As)
			}
			kinds[st.As] = 'v'
		}
	}
	return nil
}

func kindName(k byte) string {
	if k == 'm' {
		return "matrix"
	}
	return "vector"
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// StepError is returned by Eval when a step fails.
// It unwraps to linear.ErrIndexOutOfRange,
// linear.ErrDivisionByZero or linear.ErrNotFinite.
type StepError struct {
	Step int
	Op   string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Step, e.Op, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Result is the outcome of a step.
// Value is a float32, a bool or a linear.V4.
type Result struct {
	Step  int
	Op    string
	Value any
}

// String formats r as "<step> <op> = <value>".
func (r Result) String() string {
	return fmt.Sprintf("%d %s = %v", r.Step, r.Op, r.Value)
}

// Eval evaluates the steps of s in order, writing one line
// per result to w. It stops at the first failing step.
// s is validated first. logger may be nil.
func (s *Script) Eval(w io.Writer, logger *slog.Logger) ([]Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	env := newEnv(s)
	res := make([]Result, 0, len(s.Steps))
	for i := range s.Steps {
		st := &s.Steps[i]
		logger.Debug("evaluating step", "step", i, "op", st.Op, "args", st.Args)
		v, err := env.eval(st)
		if err != nil {
			logger.Error("step failed", "step", i, "op", st.Op, "error", err)
			return res, &StepError{Step: i, Op: st.Op, Err: err}
		}
		if st.As != "" {
			env.vecs[st.As] = v.(linear.V4)
		}
		r := Result{Step: i, Op: st.Op, Value: v}
		res = append(res, r)
		if _, err := fmt.Fprintln(w, r); err != nil {
			return res, fmt.Errorf("failed to write result: %w", err)
		}
	}
	logger.Debug("script evaluated", "steps", len(res))
	return res, nil
}
