package cli

import (
	"fmt"
	"strings"

	"github.com/aprildenise/photos/internal/models"
)

func (c *CLI) handlePhoto(args []string) error {
	if err := c.requireAlbum(); err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("usage: photo <list|add|del|caption|copy|move> ...")
	}

	switch args[0] {
	case "list":
		return c.handlePhotoList(args[1:])
	case "add":
		return c.handlePhotoAdd(args[1:])
	case "del":
		return c.handlePhotoDelete(args[1:])
	case "caption":
		return c.handlePhotoCaption(args[1:])
	case "copy":
		return c.handlePhotoCopy(args[1:], false)
	case "move":
		return c.handlePhotoCopy(args[1:], true)
	default:
		return fmt.Errorf("unknown photo command: %s", args[0])
	}
}

func (c *CLI) handlePhotoList(args []string) error {
	if c.CurrentAlbum.NumPhotos() == 0 {
		c.UI.Info("No photos in this album. Add one with 'photo add <path>'.")
		return nil
	}
	for i, p := range c.CurrentAlbum.Photos {
		caption := p.Caption
		if caption == "" {
			caption = "(no caption)"
		}
		c.UI.Printf("%3d  %-28s %s  %s\n", i+1, caption, p.DateModified(), p.Path)
		if len(p.Tags) > 0 {
			tags := make([]string, len(p.Tags))
			for j, t := range p.Tags {
				tags[j] = t.String()
			}
			c.UI.Printf("     tags: %s\n", strings.Join(tags, ", "))
		}
	}
	return nil
}

func (c *CLI) handlePhotoAdd(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: photo add <path> [caption]")
	}

	photo, err := models.NewPhoto(args[0])
	if err != nil {
		return err
	}
	if len(args) > 1 {
		photo.Caption = strings.Join(args[1:], " ")
	}
	if err := c.DB.PhotoAdd(c.CurrentUser.Username, c.CurrentAlbum.Name, photo); err != nil {
		return err
	}

	c.save()
	c.UI.Success(fmt.Sprintf("Photo added (modified %s)", photo.DateModified()))
	return nil
}

func (c *CLI) handlePhotoDelete(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: photo del <position>")
	}

	photo, err := c.photoAt(args[0])
	if err != nil {
		return err
	}
	if err := c.DB.PhotoDelete(c.CurrentUser.Username, c.CurrentAlbum.Name, photo.ID); err != nil {
		return err
	}

	c.save()
	c.UI.Success("Photo removed")
	return nil
}

func (c *CLI) handlePhotoCaption(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: photo caption <position> <caption>")
	}

	photo, err := c.photoAt(args[0])
	if err != nil {
		return err
	}
	photo.Caption = strings.Join(args[1:], " ")

	c.save()
	c.UI.Success("Caption saved")
	return nil
}

// handlePhotoCopy copies the photo into another album; with move set, the
// original is removed from the open album afterwards.
func (c *CLI) handlePhotoCopy(args []string, move bool) error {
	verb, done := "copy", "copied"
	if move {
		verb, done = "move", "moved"
	}
	if len(args) < 2 {
		return fmt.Errorf("usage: photo %s <position> <destination album>", verb)
	}

	photo, err := c.photoAt(args[0])
	if err != nil {
		return err
	}
	dest := args[1]
	if dest == c.CurrentAlbum.Name {
		return fmt.Errorf("destination album must differ from the open album")
	}

	if move {
		err = c.DB.PhotoMove(c.CurrentUser.Username, c.CurrentAlbum.Name, photo.ID, dest)
	} else {
		err = c.DB.PhotoCopy(c.CurrentUser.Username, c.CurrentAlbum.Name, photo.ID, dest)
	}
	if err != nil {
		return err
	}

	c.save()
	c.UI.Success(fmt.Sprintf("Photo %s to '%s'", done, dest))
	return nil
}
