package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter reads validated values from a line-oriented input. Invalid input
// is reported and the prompt repeats; only end of input or a read error is
// returned to the caller.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	styles styles
}

// NewPrompter returns a Prompter reading from in and writing prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:     bufio.NewReader(in),
		out:    out,
		styles: newStyles(out),
	}
}

// Line prints prompt and returns the next input line without its line
// ending. It returns io.EOF once the input is exhausted.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// String prompts until a non-blank line is entered and returns it as typed.
func (p *Prompter) String(prompt string) (string, error) {
	for {
		line, err := p.Line(prompt)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(line) != "" {
			return line, nil
		}
		p.warn("Input cannot be empty. Please try again.")
	}
}

// IntOption bounds the values accepted by Prompter.Int.
type IntOption func(*intBounds)

type intBounds struct {
	min, max *int
}

// Min rejects values below n.
func Min(n int) IntOption {
	return func(b *intBounds) { b.min = &n }
}

// Max rejects values above n.
func Max(n int) IntOption {
	return func(b *intBounds) { b.max = &n }
}

// Int prompts until an integer within the optional bounds is entered.
func (p *Prompter) Int(prompt string, opts ...IntOption) (int, error) {
	var b intBounds
	for _, opt := range opts {
		opt(&b)
	}

	for {
		line, err := p.Line(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			p.warn("Invalid input! Please enter an integer.")
			continue
		}
		if (b.min != nil && n < *b.min) || (b.max != nil && n > *b.max) {
			p.warn(b.rangeMessage())
			continue
		}
		return n, nil
	}
}

func (b intBounds) rangeMessage() string {
	switch {
	case b.min != nil && b.max != nil:
		return fmt.Sprintf("Please enter a value between %d and %d.", *b.min, *b.max)
	case b.min != nil:
		return fmt.Sprintf("Please enter a value of at least %d.", *b.min)
	default:
		return fmt.Sprintf("Please enter a value of at most %d.", *b.max)
	}
}

// Seasonal prompts until exactly "1" (seasonal) or "0" (not seasonal) is
// entered.
func (p *Prompter) Seasonal(prompt string) (bool, error) {
	for {
		line, err := p.Line(prompt)
		if err != nil {
			return false, err
		}
		if ok, valid := parseSeasonal(line); valid {
			return ok, nil
		}
		p.warn("Invalid input! Please enter 1 for seasonal or 0 for non-seasonal.")
	}
}

// parseSeasonal accepts only "0" and "1".
func parseSeasonal(s string) (seasonal, valid bool) {
	switch s {
	case "1":
		return true, true
	case "0":
		return false, true
	}
	return false, false
}

func (p *Prompter) warn(msg string) {
	fmt.Fprintln(p.out, p.styles.warn.Render(msg))
}
