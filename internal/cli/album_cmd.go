package cli

import (
	"fmt"

	"github.com/aprildenise/photos/internal/models"
)

func (c *CLI) handleAlbum(args []string) error {
	if err := c.requireLogin(); err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("usage: album <list|add|del|rename|open|close> ...")
	}

	switch args[0] {
	case "list":
		return c.handleAlbumList(args[1:])
	case "add":
		return c.handleAlbumAdd(args[1:])
	case "del":
		return c.handleAlbumDelete(args[1:])
	case "rename":
		return c.handleAlbumRename(args[1:])
	case "open":
		return c.handleAlbumOpen(args[1:])
	case "close":
		return c.handleAlbumClose(args[1:])
	default:
		return fmt.Errorf("unknown album command: %s", args[0])
	}
}

func (c *CLI) handleAlbumList(args []string) error {
	if c.CurrentUser.NumAlbums() == 0 {
		c.UI.Info("No albums yet. Create one with 'album add <name>'.")
		return nil
	}
	for _, a := range c.CurrentUser.Albums {
		c.UI.Printf("%-24s %3d photo(s)   %s\n", a.Name, a.NumPhotos(), a.DateRange)
	}
	return nil
}

func (c *CLI) handleAlbumAdd(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: album add <name>")
	}

	name := args[0]
	if name == "" {
		return fmt.Errorf("album name cannot be empty")
	}
	if err := c.DB.AlbumAdd(c.CurrentUser.Username, models.NewAlbum(name)); err != nil {
		return err
	}

	c.save()
	c.UI.Success(fmt.Sprintf("Album '%s' created", name))
	return nil
}

func (c *CLI) handleAlbumDelete(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: album del <name>")
	}

	name := args[0]
	if err := c.DB.AlbumDelete(c.CurrentUser.Username, name); err != nil {
		return err
	}
	if c.CurrentAlbum != nil && c.CurrentAlbum.Name == name {
		c.CurrentAlbum = nil
		c.UpdatePrompt()
	}

	c.save()
	c.UI.Success(fmt.Sprintf("Album '%s' deleted", name))
	return nil
}

func (c *CLI) handleAlbumRename(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: album rename <name> <new name>")
	}

	oldName, newName := args[0], args[1]
	if newName == "" {
		return fmt.Errorf("album name cannot be empty")
	}
	if err := c.DB.AlbumRename(c.CurrentUser.Username, oldName, newName); err != nil {
		return err
	}

	c.save()
	c.UI.Success(fmt.Sprintf("Album '%s' renamed to '%s'", oldName, newName))
	return nil
}

func (c *CLI) handleAlbumOpen(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: album open <name>")
	}

	album, err := c.DB.AlbumGet(c.CurrentUser.Username, args[0])
	if err != nil {
		return err
	}
	c.CurrentAlbum = album
	c.UpdatePrompt()
	c.save()
	c.UI.Info(fmt.Sprintf("Album '%s': %d photo(s), %s", album.Name, album.NumPhotos(), album.DateRange))
	return nil
}

func (c *CLI) handleAlbumClose(args []string) error {
	if c.CurrentAlbum == nil {
		return fmt.Errorf("no album is open")
	}
	c.CurrentAlbum = nil
	c.UpdatePrompt()
	c.save()
	return nil
}
