// Package console is the terminal front end for both games. It renders
// snapshots as text and asks humans for decisions with small bubbletea
// programs: single-key choices and a line editor for names.
package console

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/parlour/internal/config"
	"github.com/lox/parlour/internal/rps"
	"github.com/lox/parlour/internal/tournament"
	"github.com/lox/parlour/internal/twentyone"
)

// ErrAborted is returned when the user presses ctrl+c or esc at a prompt.
var ErrAborted = errors.New("aborted by user")

// Options configures a Console.
type Options struct {
	In      io.Reader
	Out     io.Writer
	NoColor bool
	Logger  *log.Logger
}

// Console implements rps.Port and twentyone.Port on a terminal.
type Console struct {
	in     io.Reader
	out    io.Writer
	styles Styles
	logger *log.Logger
}

var (
	_ rps.Port       = (*Console)(nil)
	_ twentyone.Port = (*Console)(nil)
)

// New returns a console on the given streams, stdin and stdout by default.
func New(opts Options) *Console {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	r := lipgloss.NewRenderer(opts.Out)
	if opts.NoColor {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Console{
		in:     opts.In,
		out:    opts.Out,
		styles: NewStyles(r),
		logger: opts.Logger.WithPrefix("console"),
	}
}

// Render prints a snapshot. Snapshots with nothing worth showing print nothing.
func (c *Console) Render(s tournament.Snapshot) {
	text := Format(c.styles, s)
	if text == "" {
		return
	}
	if _, err := fmt.Fprintln(c.out, text); err != nil {
		c.logger.Warn("Render failed", "error", err)
	}
}

// PromptYesNo asks a y/n question.
func (c *Console) PromptYesNo(prompt string) (bool, error) {
	i, err := c.choose(prompt, []option{{'y', "yes"}, {'n', "no"}})
	if err != nil {
		return false, err
	}
	return i == 0, nil
}

// PromptWinThreshold asks for 1-9 wins or unlimited.
func (c *Console) PromptWinThreshold() (config.Threshold, error) {
	opts := make([]option, 0, 10)
	for n := 1; n <= 9; n++ {
		opts = append(opts, option{rune('0' + n), strconv.Itoa(n)})
	}
	opts = append(opts, option{'u', "unlimited"})

	i, err := c.choose("How many wins would you like to play to?", opts)
	if err != nil {
		return 0, err
	}
	if opts[i].key == 'u' {
		return config.Unlimited, nil
	}
	return config.NewThreshold(i + 1)
}

// PromptMove asks player for one of choices.
func (c *Console) PromptMove(player string, choices []rps.Choice) (rps.Move, error) {
	opts := make([]option, len(choices))
	for i, ch := range choices {
		opts[i] = option{ch.Key, ch.Move.String()}
	}
	i, err := c.choose(player+", pick your move:", opts)
	if err != nil {
		return "", err
	}
	return choices[i].Move, nil
}

// PromptHitOrStay returns true when player hits.
func (c *Console) PromptHitOrStay(player string) (bool, error) {
	i, err := c.choose(player+", hit or stay?", []option{{'h', "hit"}, {'s', "stay"}})
	if err != nil {
		return false, err
	}
	return i == 0, nil
}

// PromptPlayers asks for the kind and name of each of count players.
func (c *Console) PromptPlayers(count int) ([]config.Player, error) {
	var (
		players []config.Player
		taken   []string
	)
	for n := 1; n <= count; n++ {
		kindIdx, err := c.choose(fmt.Sprintf("What kind of player is player %d?", n),
			[]option{{'h', "human"}, {'c', "cpu"}})
		if err != nil {
			return nil, err
		}
		kind := config.Human
		if kindIdx == 1 {
			kind = config.Automated
		}

		name, err := c.name("What is their name?", fmt.Sprintf("Player %d", n), taken)
		if err != nil {
			return nil, err
		}
		taken = append(taken, name)
		players = append(players, config.Player{Name: name, Kind: kind})
	}
	return players, nil
}

func (c *Console) choose(prompt string, opts []option) (int, error) {
	final, err := c.run(newChoiceModel(prompt, opts, c.styles))
	if err != nil {
		return 0, err
	}
	m, ok := final.(choiceModel)
	if !ok || m.aborted {
		return 0, ErrAborted
	}
	i, ok := m.Chosen()
	if !ok {
		return 0, ErrAborted
	}
	c.logger.Debug("Choice", "prompt", prompt, "answer", opts[i].label)
	return i, nil
}

func (c *Console) name(prompt, placeholder string, taken []string) (string, error) {
	final, err := c.run(newNameModel(prompt, placeholder, taken, c.styles))
	if err != nil {
		return "", err
	}
	m, ok := final.(nameModel)
	if !ok || m.aborted || !m.done {
		return "", ErrAborted
	}
	return m.Value(), nil
}

func (c *Console) run(model tea.Model) (tea.Model, error) {
	p := tea.NewProgram(model, tea.WithInput(c.in), tea.WithOutput(c.out))
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("prompt: %w", err)
	}
	return final, nil
}
