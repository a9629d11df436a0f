package cli

import (
	"fmt"
	"strings"

	"github.com/aprildenise/photos/internal/models"
)

func (c *CLI) handleTag(args []string) error {
	if len(args) > 0 && args[0] == "presets" {
		if err := c.requireLogin(); err != nil {
			return err
		}
		return c.handleTagPresets(args[1:])
	}

	if err := c.requireAlbum(); err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("usage: tag <list|add|del|presets> ...")
	}

	switch args[0] {
	case "list":
		return c.handleTagList(args[1:])
	case "add":
		return c.handleTagAdd(args[1:])
	case "del":
		return c.handleTagDelete(args[1:])
	default:
		return fmt.Errorf("unknown tag command: %s", args[0])
	}
}

func (c *CLI) handleTagList(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: tag list <position>")
	}

	photo, err := c.photoAt(args[0])
	if err != nil {
		return err
	}
	if len(photo.Tags) == 0 {
		c.UI.Info("No tags on this photo.")
		return nil
	}
	for _, t := range photo.Tags {
		c.UI.Printf("%s\n", t)
	}
	return nil
}

func (c *CLI) handleTagAdd(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: tag add <position> <name=value> [--multi]")
	}

	photo, err := c.photoAt(args[0])
	if err != nil {
		return err
	}
	tag, err := c.parseTag(args[1])
	if err != nil {
		return err
	}

	// The preset catalog decides multiplicity for known names; --multi only
	// applies to names the user has not saved yet.
	multi := len(args) > 2 && args[2] == "--multi"
	preset, known := c.CurrentUser.PresetByName(tag.Name)
	if known {
		multi = preset.AllowMultiple
	}
	tag.AllowMultiple = multi

	if err := c.DB.TagAdd(photo, tag); err != nil {
		return err
	}
	if !known {
		c.CurrentUser.AddPreset(models.NewTag(tag.Name, "", multi))
	}

	c.save()
	c.UI.Success(fmt.Sprintf("Tagged photo with %s", tag))
	return nil
}

func (c *CLI) handleTagDelete(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: tag del <position> <name=value>")
	}

	photo, err := c.photoAt(args[0])
	if err != nil {
		return err
	}
	tag, err := c.parseTag(args[1])
	if err != nil {
		return err
	}
	if !c.DB.TagDelete(photo, tag) {
		return fmt.Errorf("photo has no tag %s", tag)
	}

	c.save()
	c.UI.Success(fmt.Sprintf("Removed tag %s", tag))
	return nil
}

func (c *CLI) handleTagPresets(args []string) error {
	for _, t := range c.CurrentUser.Presets {
		kind := "single value"
		if t.AllowMultiple {
			kind = "multiple values"
		}
		c.UI.Printf("%-16s %s\n", t.Name, kind)
	}
	return nil
}

// parseTag validates a name=value argument. The '=' separator may appear
// neither in the name nor in the value.
func (c *CLI) parseTag(arg string) (models.Tag, error) {
	tag, ok := models.TagFromString(arg)
	if !ok {
		return models.Tag{}, fmt.Errorf("tags must be given as name=value")
	}
	if tag.Name == "" || tag.Value == "" {
		return models.Tag{}, fmt.Errorf("tag name and value cannot be empty")
	}
	if strings.Contains(tag.Value, "=") {
		return models.Tag{}, fmt.Errorf("tag names and values cannot contain '='")
	}
	return tag, nil
}
