package cli

import (
	"errors"
	"fmt"

	"github.com/aprildenise/photos/internal/data"
)

func (c *CLI) handleLogin(args []string) error {
	if c.CurrentUser != nil {
		return fmt.Errorf("already logged in as '%s'", c.CurrentUser.Username)
	}

	var username, password string
	var err error

	if len(args) > 0 {
		username = args[0]
	} else {
		username, err = c.promptForInput("Enter username: ")
		if err != nil {
			return err
		}
	}

	if len(args) > 1 {
		password = args[1]
	} else {
		password, err = c.promptForPassword("Enter password: ")
		if err != nil {
			return err
		}
	}

	if !c.DB.Authorize(username, password) {
		return fmt.Errorf("invalid username or password")
	}
	c.CurrentUser = c.DB.UserGet(username)

	// Self-healing pass: photos whose backing files disappeared since the
	// last session are dropped from their albums.
	if err := c.DB.VerifyPhotoFiles(username); err != nil {
		if errors.Is(err, data.ErrPhotosDropped) {
			c.UI.Warn(fmt.Sprintf("Some photo files could not be found: %v", err))
		}
	}

	c.save()
	c.UpdatePrompt()
	c.UI.Success(fmt.Sprintf("Logged in as '%s'", username))
	if username == data.AdminUsername {
		c.UI.Info("Admin commands available: 'user list', 'user add', 'user del'")
	}
	return nil
}

func (c *CLI) handleLogout(args []string) error {
	if err := c.requireLogin(); err != nil {
		return err
	}

	c.save()
	c.UI.Info(fmt.Sprintf("Logged out '%s'", c.CurrentUser.Username))
	c.CurrentUser = nil
	c.CurrentAlbum = nil
	c.UpdatePrompt()
	return nil
}
