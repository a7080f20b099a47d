package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"server-launcher/core/utils"
)

// ErrInputClosed is returned when the operator's input ends while a prompt is waiting.
var ErrInputClosed = errors.New("input closed")

// Prompter asks the operator questions over line-based input.
// Invalid answers are rejected and the question is asked again.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	styles Styles
}

// NewPrompter creates a prompter reading answers from in and writing to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:     bufio.NewReader(in),
		out:    out,
		styles: NewStyles(),
	}
}

// Out returns the writer prompts are written to.
func (p *Prompter) Out() io.Writer {
	return p.out
}

// Styles returns the styles used for output.
func (p *Prompter) Styles() Styles {
	return p.styles
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Printf writes a formatted line.
func (p *Prompter) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// Error writes an error line.
func (p *Prompter) Error(msg string) {
	fmt.Fprintln(p.out, p.styles.Error.Render(msg))
}

// Success writes a success line.
func (p *Prompter) Success(msg string) {
	fmt.Fprintln(p.out, p.styles.Success.Render(msg))
}

// Select shows numbered options and returns the index of the chosen one.
func (p *Prompter) Select(title string, options []string) (int, error) {
	if len(options) == 0 {
		return -1, errors.New("nothing to select")
	}
	for {
		fmt.Fprintln(p.out, p.styles.Title.Render(title))
		for i, opt := range options {
			fmt.Fprintf(p.out, "  [%d] %s\n", i+1, opt)
		}
		fmt.Fprint(p.out, "> ")

		line, err := p.readLine()
		if err != nil {
			return -1, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || n < 1 || n > len(options) {
			p.Error(fmt.Sprintf("Please enter a number between 1 and %d.", len(options)))
			continue
		}
		return n - 1, nil
	}
}

// MultiSelect shows numbered options and returns the chosen indexes in the order
// the options are listed. Numbers may be separated by spaces or commas, "all"
// selects everything and an empty answer selects nothing.
func (p *Prompter) MultiSelect(title string, options []string) ([]int, error) {
	for {
		fmt.Fprintln(p.out, p.styles.Title.Render(title))
		for i, opt := range options {
			fmt.Fprintf(p.out, "  [%d] %s\n", i+1, opt)
		}
		fmt.Fprint(p.out, p.styles.Muted.Render("(numbers separated by spaces, 'all', or empty for none)")+"\n> ")

		line, err := p.readLine()
		if err != nil {
			return nil, err
		}
		picked, err := parseSelection(line, len(options))
		if err != nil {
			p.Error(err.Error())
			continue
		}
		return picked, nil
	}
}

func parseSelection(line string, n int) ([]int, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}
	chosen := make([]bool, n)
	if strings.EqualFold(line, "all") {
		for i := range chosen {
			chosen[i] = true
		}
	} else {
		fields := strings.FieldsFunc(line, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
		for _, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil || v < 1 || v > n {
				return nil, fmt.Errorf("%q is not a number between 1 and %d", f, n)
			}
			chosen[v-1] = true
		}
	}

	var out []int
	for i, ok := range chosen {
		if ok {
			out = append(out, i)
		}
	}
	return out, nil
}

// Ask reads a free-form answer. Unless allowEmpty is set, blank answers are refused.
func (p *Prompter) Ask(question string, allowEmpty bool) (string, error) {
	for {
		fmt.Fprintf(p.out, "%s ", p.styles.Title.Render(question))
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		if !allowEmpty && strings.TrimSpace(line) == "" {
			p.Error("A value is required.")
			continue
		}
		return line, nil
	}
}

// AskPort reads a port number; an empty answer returns def.
func (p *Prompter) AskPort(question string, def uint16) (uint16, error) {
	for {
		fmt.Fprintf(p.out, "%s %s ", p.styles.Title.Render(question), p.styles.Muted.Render(fmt.Sprintf("(%d)", def)))
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		if strings.TrimSpace(line) == "" {
			return def, nil
		}
		port, err := utils.ParsePort(line)
		if err != nil {
			p.Error(err.Error())
			continue
		}
		return port, nil
	}
}

// Confirm asks a yes/no question; an empty answer returns def.
func (p *Prompter) Confirm(question string, def bool) (bool, error) {
	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}
	for {
		fmt.Fprintf(p.out, "%s %s ", p.styles.Title.Render(question), hint)
		line, err := p.readLine()
		if err != nil {
			return false, err
		}
		if strings.TrimSpace(line) == "" {
			return def, nil
		}
		answer, ok := utils.ParseYesNo(line)
		if !ok {
			p.Error("Please answer y or n.")
			continue
		}
		return answer, nil
	}
}
