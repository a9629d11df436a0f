package cli

import (
	"fmt"

	"github.com/aprildenise/photos/internal/models"
)

func (c *CLI) handleSearch(args []string) error {
	if err := c.requireLogin(); err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("usage: search <date|tag> ...")
	}

	rest, saveAs, err := splitSaveAs(args[1:])
	if err != nil {
		return err
	}

	var found []*models.Photo
	switch args[0] {
	case "date":
		found, err = c.searchByDate(rest)
	case "tag":
		found, err = c.searchByTag(rest)
	default:
		return fmt.Errorf("unknown search command: %s", args[0])
	}
	if err != nil {
		return err
	}

	c.printResults(found)
	if saveAs != "" && len(found) > 0 {
		return c.saveResults(saveAs, found)
	}
	return nil
}

func (c *CLI) searchByDate(args []string) ([]*models.Photo, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("usage: search date <start> <end> [--save-as <album>]")
	}

	start, err := models.ParseDate(args[0])
	if err != nil {
		return nil, err
	}
	end, err := models.ParseDate(args[1])
	if err != nil {
		return nil, err
	}
	return c.DB.SearchByDate(c.CurrentUser.Username, start, end), nil
}

func (c *CLI) searchByTag(args []string) ([]*models.Photo, error) {
	if len(args) < 1 {
		return nil, fmt.Errorf("usage: search tag <name=value> [and|or <name=value>] [--save-as <album>]")
	}

	tag1, err := c.parseTag(args[0])
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		return c.DB.SearchByTag(c.CurrentUser.Username, tag1), nil
	}
	if len(args) < 3 {
		return nil, fmt.Errorf("usage: search tag <name=value> [and|or <name=value>]")
	}

	tag2, err := c.parseTag(args[2])
	if err != nil {
		return nil, err
	}
	switch args[1] {
	case "and":
		return c.DB.SearchByTagAnd(c.CurrentUser.Username, tag1, tag2), nil
	case "or":
		return c.DB.SearchByTagOr(c.CurrentUser.Username, tag1, tag2), nil
	default:
		return nil, fmt.Errorf("expected 'and' or 'or', got '%s'", args[1])
	}
}

func (c *CLI) printResults(found []*models.Photo) {
	if len(found) == 0 {
		c.UI.Info("No photos found.")
		return
	}
	for i, p := range found {
		caption := p.Caption
		if caption == "" {
			caption = "(no caption)"
		}
		c.UI.Printf("%3d  %-28s %s  %s\n", i+1, caption, p.DateModified(), p.Path)
	}
}

// saveResults creates a new album holding clones of the found photos, so the
// originals stay owned by their own albums.
func (c *CLI) saveResults(name string, found []*models.Photo) error {
	album := models.NewAlbum(name)
	for _, p := range found {
		album.AddPhoto(p.Clone())
	}
	if err := c.DB.AlbumAdd(c.CurrentUser.Username, album); err != nil {
		return err
	}

	c.save()
	c.UI.Success(fmt.Sprintf("Results saved to album '%s'", name))
	return nil
}

// splitSaveAs strips a trailing "--save-as <album>" pair from args.
func splitSaveAs(args []string) ([]string, string, error) {
	for i, a := range args {
		if a == "--save-as" {
			if i != len(args)-2 {
				return nil, "", fmt.Errorf("usage: --save-as <album>")
			}
			return args[:i], args[i+1], nil
		}
	}
	return args, "", nil
}
