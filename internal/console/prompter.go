// Package console implements the interactive question and answer loop.
//
// Every answer is trimmed and title-cased before it is compared, so
// " new york CITY " selects "New York City". Anything outside the offered
// choices is rejected and the question is asked again.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrInputClosed is returned once the input stream has no more lines
var ErrInputClosed = fmt.Errorf("console input closed: %w", io.EOF)

// Answers to yes/no questions
const (
	Yes = "Yes"
	No  = "No"
)

// Prompter asks questions on out and reads one answer per line from in
type Prompter struct {
	in    *bufio.Scanner
	out   io.Writer
	caser cases.Caser
}

// NewPrompter creates a new prompter
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:    bufio.NewScanner(in),
		out:   out,
		caser: cases.Title(language.English),
	}
}

// Normalize trims surrounding whitespace and title-cases s
func (p *Prompter) Normalize(s string) string {
	return p.caser.String(strings.TrimSpace(s))
}

// Ask prints the question and returns the normalized answer
func (p *Prompter) Ask(question string) (string, error) {
	fmt.Fprintf(p.out, "\n%s\n", question)

	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read answer: %w", err)
		}
		return "", ErrInputClosed
	}

	return p.Normalize(p.in.Text()), nil
}

// Choose asks the question until the answer is one of choices
func (p *Prompter) Choose(question string, choices []string) (string, error) {
	for {
		answer, err := p.Ask(question)
		if err != nil {
			return "", err
		}

		for _, choice := range choices {
			if answer == choice {
				return answer, nil
			}
		}

		fmt.Fprintf(p.out, "Invalid input! Please, choose between(%s).\n", strings.Join(choices, ", "))
	}
}

// Confirm asks a yes/no question until it gets one of the two answers
func (p *Prompter) Confirm(question string) (bool, error) {
	answer, err := p.Choose(question, []string{Yes, No})
	if err != nil {
		return false, err
	}
	return answer == Yes, nil
}

// Println writes a line of free text to the console
func (p *Prompter) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}
