// Package cli provides the menu-driven console interface of Notescape.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"notescape/local-app/internal/config"
	"notescape/local-app/internal/data"
	"notescape/local-app/internal/log"
	"notescape/local-app/internal/ui"
)

// errCancelled aborts the current command after Ctrl-C at one of its prompts.
var errCancelled = errors.New("command cancelled")

// errExit ends the menu loop.
var errExit = errors.New("exit requested")

// Menu choices. The first five keep their historical numbering.
const (
	ChoiceCreate = iota + 1
	ChoiceEdit
	ChoiceDelete
	ChoiceDisplay
	ChoiceExit
	ChoiceCreateSub
	ChoiceShow
	ChoiceReminders
	ChoiceExport
)

var menuItems = []string{
	"Create Note",
	"Edit Note",
	"Delete Note",
	"Display Notes",
	"Exit",
	"Create Sub-note",
	"Show Note",
	"Upcoming Reminders",
	"Export Notes",
}

// CLI is the application context of one console session: the note tree, the
// input source and the output surface, passed explicitly to every command.
type CLI struct {
	Notes  *data.NoteManager
	Input  LineReader
	UI     *ui.UI
	Logger *log.Logger
	Config *config.Config

	now func() time.Time
}

// NewCLI wires a console session together. A nil logger or config falls back
// to a discarding logger and the default configuration.
func NewCLI(notes *data.NoteManager, input LineReader, u *ui.UI, logger *log.Logger, cfg *config.Config) *CLI {
	if logger == nil {
		logger = log.Nop()
	}
	if cfg == nil {
		cfg = config.Default()
	}
	return &CLI{
		Notes:  notes,
		Input:  input,
		UI:     u,
		Logger: logger,
		Config: cfg,
		now:    time.Now,
	}
}

// Run shows the menu and executes commands until Exit is chosen or input ends.
func (c *CLI) Run() error {
	for {
		c.UI.Menu(menuItems)

		choice, err := c.readChoice()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		err = c.ExecuteChoice(choice)
		switch {
		case err == nil:
		case errors.Is(err, errExit), errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, errCancelled):
			c.UI.Info("Command cancelled.")
		default:
			c.UI.Error(errorMessage(err))
			c.Logger.LogError(err, log.Fields{"choice": choice})
		}
	}
}

// readChoice prompts until a number is entered. Only the prompt is repeated.
func (c *CLI) readChoice() (int, error) {
	for {
		line, err := c.ask("Enter your choice:")
		if errors.Is(err, errCancelled) {
			c.UI.Info(fmt.Sprintf("Use option %d to exit.", ChoiceExit))
			continue
		}
		if err != nil {
			return 0, err
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			c.Logger.LogError(fmt.Errorf("%w: %q", data.ErrInvalidMenuChoice, line), nil)
			c.UI.Error("Invalid input. Please enter a valid number.")
			continue
		}
		return choice, nil
	}
}

// ExecuteChoice runs the command bound to a menu number.
func (c *CLI) ExecuteChoice(choice int) error {
	if choice >= 1 && choice <= len(menuItems) {
		c.Logger.LogCommand(menuItems[choice-1], log.Fields{"choice": choice})
	}

	switch choice {
	case ChoiceCreate:
		return c.NoteCreate("")
	case ChoiceEdit:
		return c.NoteEdit()
	case ChoiceDelete:
		return c.NoteDelete()
	case ChoiceDisplay:
		return c.NoteDisplay()
	case ChoiceExit:
		c.UI.Println("Exiting the program.")
		return errExit
	case ChoiceCreateSub:
		return c.NoteCreateSub()
	case ChoiceShow:
		return c.NoteShow()
	case ChoiceReminders:
		return c.NoteReminders()
	case ChoiceExport:
		return c.NoteExport()
	default:
		c.Logger.LogError(fmt.Errorf("%w: %d", data.ErrInvalidMenuChoice, choice), nil)
		c.UI.Error("Invalid choice. Please try again.")
		return nil
	}
}

// ask prints prompt and returns the entered line. Ctrl-C maps to errCancelled.
func (c *CLI) ask(prompt string) (string, error) {
	c.Input.SetPrompt(c.UI.Prompt(prompt))
	line, err := c.Input.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", errCancelled
	}
	return line, err
}

// errorMessage turns a recoverable error into the sentence shown to the user.
func errorMessage(err error) string {
	if errors.Is(err, data.ErrCannotDeleteRoot) {
		return "Cannot delete the root note."
	}
	msg := err.Error()
	if msg == "" {
		return "Unknown error."
	}
	return strings.ToUpper(msg[:1]) + msg[1:] + "."
}
