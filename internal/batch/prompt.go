package batch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/nguyentantai21042004/video-transcriber/internal/config"
)

// Prompter answers the per-video yes/no questions.
type Prompter interface {
	Ask(question string, def bool) (bool, error)
}

// NewPrompter picks a prompter for mode. In auto mode stdin decides: a
// terminal gets asked, anything else gets the configured defaults.
func NewPrompter(mode string, in *os.File, out io.Writer) Prompter {
	switch mode {
	case config.PromptModeInteractive:
		return NewInteractive(in, out)
	case config.PromptModeNever:
		return Defaults{}
	}

	fd := in.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return NewInteractive(in, out)
	}
	return Defaults{}
}

// Defaults answers every question with its default.
type Defaults struct{}

func (Defaults) Ask(_ string, def bool) (bool, error) {
	return def, nil
}

type interactive struct {
	in  *bufio.Reader
	out io.Writer
}

// NewInteractive reads answers line by line from in. Unrecognized answers
// are asked again; end of input means the default.
func NewInteractive(in io.Reader, out io.Writer) Prompter {
	return &interactive{in: bufio.NewReader(in), out: out}
}

func (p *interactive) Ask(question string, def bool) (bool, error) {
	for {
		fmt.Fprintf(p.out, "%s ", question)

		line, err := p.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, fmt.Errorf("read answer: %w", err)
		}

		answer, ok := parseAnswer(line)
		if ok {
			return answer, nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(p.out)
			return def, nil
		}
		if strings.TrimSpace(line) == "" {
			return def, nil
		}
		fmt.Fprintln(p.out, "Please answer y or n.")
	}
}

func parseAnswer(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	}
	return false, false
}
