package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/san-kum/eulerplot/internal/dynamo"
)

// Prompt labels, right-aligned on the '='.
const (
	PromptX0    = "Initial values, x = "
	PromptY0    = "                y = "
	PromptStep  = "      step length = "
	PromptCount = "  number of steps = "
)

// Known marks the parameters that are already set and must not be asked for.
type Known struct {
	X0, Y0, StepLength, StepCount bool
}

// All reports whether nothing is left to prompt for.
func (k Known) All() bool {
	return k.X0 && k.Y0 && k.StepLength && k.StepCount
}

// Prompter asks for values one line at a time. Every read blocks until a
// full line is available. There is no retry: the first bad line ends it.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Complete prompts, in order, for every parameter not marked in known.
func (p *Prompter) Complete(params *dynamo.Params, known Known) error {
	var err error
	if !known.X0 {
		if params.X0, err = p.Float(PromptX0, "x"); err != nil {
			return err
		}
	}
	if !known.Y0 {
		if params.Y0, err = p.Float(PromptY0, "y"); err != nil {
			return err
		}
	}
	if !known.StepLength {
		if params.StepLength, err = p.Float(PromptStep, "step length"); err != nil {
			return err
		}
	}
	if !known.StepCount {
		if params.StepCount, err = p.Int(PromptCount, "number of steps"); err != nil {
			return err
		}
	}
	return nil
}

func (p *Prompter) Float(prompt, field string) (float64, error) {
	line, err := p.line(prompt, field)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return 0, &dynamo.InputError{Field: field, Input: line, Wrapped: err}
	}
	return v, nil
}

func (p *Prompter) Int(prompt, field string) (int, error) {
	line, err := p.line(prompt, field)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(line, 10, 32)
	if err != nil {
		return 0, &dynamo.InputError{Field: field, Input: line, Wrapped: err}
	}
	return int(v), nil
}

func (p *Prompter) line(prompt, field string) (string, error) {
	fmt.Fprint(p.out, prompt)

	s, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || s == "") {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return "", &dynamo.InputError{Field: field, Input: s, Wrapped: err}
	}
	return strings.TrimSpace(s), nil
}
