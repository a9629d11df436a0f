package cli

import (
	"errors"
	"fmt"

	"github.com/aprildenise/photos/internal/data"
	"github.com/aprildenise/photos/internal/models"
)

// handleUser dispatches the admin-only user management commands.
func (c *CLI) handleUser(args []string) error {
	if err := c.requireAdmin(); err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("usage: user <list|add|del> ...")
	}

	switch args[0] {
	case "list":
		return c.handleUserList(args[1:])
	case "add":
		return c.handleUserAdd(args[1:])
	case "del":
		return c.handleUserDelete(args[1:])
	default:
		return fmt.Errorf("unknown user command: %s", args[0])
	}
}

func (c *CLI) handleUserList(args []string) error {
	users := c.DB.Users()
	if len(users) == 0 {
		c.UI.Info("No users.")
		return nil
	}
	for _, u := range users {
		c.UI.Printf("%-20s %d album(s)\n", u.Username, u.NumAlbums())
	}
	return nil
}

func (c *CLI) handleUserAdd(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: user add <username> [password]")
	}

	username := args[0]
	var password string
	var err error

	if len(args) > 1 {
		password = args[1]
	} else {
		password, err = c.promptForPassword("Enter password for new user: ")
		if err != nil {
			return err
		}
	}

	if !c.DB.UserAdd(models.NewUser(username, password)) {
		return fmt.Errorf("user '%s' already exists", username)
	}

	c.save()
	c.UI.Success(fmt.Sprintf("User '%s' created successfully", username))
	return nil
}

func (c *CLI) handleUserDelete(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: user del <username>")
	}

	username := args[0]
	if err := c.DB.UserDelete(models.NewUser(username, "")); err != nil {
		if errors.Is(err, data.ErrProtectedAccount) {
			return fmt.Errorf("the '%s' account cannot be deleted", data.AdminUsername)
		}
		return err
	}

	c.save()
	c.UI.Success(fmt.Sprintf("User '%s' and all their albums deleted", username))
	return nil
}
