// Package cli implements the interactive shell of the application. It
// validates user input, drives the store, and persists the library at every
// navigation boundary. All presentation lives here; the store only sees
// already-validated primitive values.
package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/aprildenise/photos/internal/data"
	"github.com/aprildenise/photos/internal/log"
	"github.com/aprildenise/photos/internal/models"
	"github.com/aprildenise/photos/internal/ui"
)

type CLI struct {
	DB     *data.Database
	RL     *readline.Instance
	UI     *ui.UI
	Logger *log.Logger

	CurrentUser  *models.User
	CurrentAlbum *models.Album
	Prompt       string
}

func NewCLI(db *data.Database, rl *readline.Instance, u *ui.UI, logger *log.Logger) *CLI {
	c := &CLI{
		DB:     db,
		RL:     rl,
		UI:     u,
		Logger: logger,
	}
	c.UpdatePrompt()
	return c
}

// Run reads one line from the shell and executes it.
func (c *CLI) Run() error {
	line, err := c.RL.Readline()
	if err != nil {
		return err
	}

	line = strings.TrimSpace(line)
	if len(line) == 0 {
		return nil
	}

	if c.Logger != nil {
		_ = c.Logger.LogCommand(line)
	}

	args := c.ParseArgs(line)
	return c.ExecuteCommand(args)
}

// ParseArgs splits input into arguments, keeping quoted strings together.
func (c *CLI) ParseArgs(input string) []string {
	var args []string
	var currentArg strings.Builder
	inQuotes := false

	for _, char := range input {
		switch char {
		case '"':
			inQuotes = !inQuotes
		case ' ':
			if !inQuotes {
				if currentArg.Len() > 0 {
					args = append(args, currentArg.String())
					currentArg.Reset()
				}
			} else {
				currentArg.WriteRune(char)
			}
		default:
			currentArg.WriteRune(char)
		}
	}

	if currentArg.Len() > 0 {
		args = append(args, currentArg.String())
	}

	return args
}

func (c *CLI) ExecuteCommand(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no command provided")
	}

	switch args[0] {
	case "login":
		return c.handleLogin(args[1:])
	case "logout":
		return c.handleLogout(args[1:])
	case "user":
		return c.handleUser(args[1:])
	case "album":
		return c.handleAlbum(args[1:])
	case "photo":
		return c.handlePhoto(args[1:])
	case "tag":
		return c.handleTag(args[1:])
	case "search":
		return c.handleSearch(args[1:])
	case "save":
		c.save()
		c.UI.Success("Library saved")
		return nil
	case "help":
		command := ""
		if len(args) > 1 {
			command = args[1]
		}
		c.printHelp(command)
		return nil
	case "exit", "quit":
		fmt.Println("Exiting...")
		if err := c.RL.Close(); err != nil {
			fmt.Printf("Error closing readline: %v\n", err)
		}
		return fmt.Errorf("exit requested: %w", io.EOF)
	default:
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

// UpdatePrompt reflects the current user and open album in the shell prompt.
func (c *CLI) UpdatePrompt() {
	switch {
	case c.CurrentUser == nil:
		c.Prompt = "photos> "
	case c.CurrentAlbum == nil:
		c.Prompt = fmt.Sprintf("%s> ", c.CurrentUser.Username)
	default:
		c.Prompt = fmt.Sprintf("%s:%s> ", c.CurrentUser.Username, c.CurrentAlbum.Name)
	}
	c.RL.SetPrompt(c.Prompt)
}

// save writes the library to the snapshot file, reporting failures without
// touching the in-memory state.
func (c *CLI) save() {
	if err := c.DB.Save(); err != nil {
		c.UI.Error(fmt.Sprintf("Failed to save library: %v", err))
		if c.Logger != nil {
			_ = c.Logger.LogError(err)
		}
	}
}

func (c *CLI) requireLogin() error {
	if c.CurrentUser == nil {
		return fmt.Errorf("log in first with 'login <username>'")
	}
	return nil
}

func (c *CLI) requireAdmin() error {
	if c.CurrentUser == nil || c.CurrentUser.Username != data.AdminUsername {
		return fmt.Errorf("admin access required")
	}
	return nil
}

func (c *CLI) requireAlbum() error {
	if err := c.requireLogin(); err != nil {
		return err
	}
	if c.CurrentAlbum == nil {
		return fmt.Errorf("open an album first with 'album open <name>'")
	}
	return nil
}

// photoAt resolves a 1-based photo position in the open album.
func (c *CLI) photoAt(arg string) (*models.Photo, error) {
	i, err := strconv.Atoi(arg)
	if err != nil || i < 1 || i > c.CurrentAlbum.NumPhotos() {
		return nil, fmt.Errorf("no photo at position '%s'", arg)
	}
	return c.CurrentAlbum.Photos[i-1], nil
}

func (c *CLI) promptForInput(prompt string) (string, error) {
	fmt.Print(prompt)
	input, err := c.RL.Readline()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

func (c *CLI) promptForPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	passwordBytes, err := terminal.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", err
	}
	fmt.Println()
	return string(passwordBytes), nil
}
