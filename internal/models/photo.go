package models

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// Photo is a single photo in an album: a caption, the source file path, the
// file's last-modified time captured once at creation, and an ordered set of
// tags. The ID is the photo's stable handle; list membership and removal go
// through it rather than through value equality, so two photos with identical
// captions stay distinguishable.
type Photo struct {
	ID         string    `json:"id"`
	Caption    string    `json:"caption"`
	ModifiedAt time.Time `json:"modified_at"`
	Path       string    `json:"path"`
	Tags       []Tag     `json:"tags"`
}

// NewPhoto creates a photo from the file at path, capturing the file's
// last-modified time. The time is never recomputed afterwards.
func NewPhoto(path string) (*Photo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read photo file: %w", err)
	}
	return &Photo{
		ID:         uuid.NewString(),
		ModifiedAt: info.ModTime(),
		Path:       path,
	}, nil
}

// AddTag attaches a tag to the photo. This is the single validation gate for
// tag insertion: an equal (name, value) tag fails with ErrDuplicateTag; a tag
// whose name is already present with a different value is accepted only when
// the existing tag allows multiple values, in which case the new tag's flag
// is forced to match, otherwise ErrNotMultiple.
func (p *Photo) AddTag(tag Tag) error {
	if p.HasTag(tag) {
		return ErrDuplicateTag
	}
	for _, t := range p.Tags {
		if t.MatchesName(tag) {
			if !t.AllowMultiple {
				return ErrNotMultiple
			}
			tag.AllowMultiple = true
			break
		}
	}
	p.Tags = append(p.Tags, tag)
	return nil
}

// HasTag reports whether the photo holds a tag equal in both name and value.
func (p *Photo) HasTag(tag Tag) bool {
	for _, t := range p.Tags {
		if t.EqualsValue(tag) {
			return true
		}
	}
	return false
}

// TagByName returns the first tag with the given name.
func (p *Photo) TagByName(name string) (Tag, bool) {
	for _, t := range p.Tags {
		if t.Name == name {
			return t, true
		}
	}
	return Tag{}, false
}

// RemoveTag removes the tag equal in name and value, reporting whether one
// was removed.
func (p *Photo) RemoveTag(tag Tag) bool {
	for i, t := range p.Tags {
		if t.EqualsValue(tag) {
			p.Tags = append(p.Tags[:i], p.Tags[i+1:]...)
			return true
		}
	}
	return false
}

// WithinRange reports whether the photo was modified strictly after start
// and strictly before end. Photos exactly on either bound are excluded.
func (p *Photo) WithinRange(start, end time.Time) bool {
	return p.ModifiedAt.After(start) && p.ModifiedAt.Before(end)
}

// DateModified renders the modification time in the MM/DD/YYYY layout.
func (p *Photo) DateModified() string {
	return FormatDate(p.ModifiedAt)
}

// Clone returns a copy with its own tag set and a fresh ID. The timestamp
// and path carry over; the source file is not re-read.
func (p *Photo) Clone() *Photo {
	tags := make([]Tag, len(p.Tags))
	copy(tags, p.Tags)
	return &Photo{
		ID:         uuid.NewString(),
		Caption:    p.Caption,
		ModifiedAt: p.ModifiedAt,
		Path:       p.Path,
		Tags:       tags,
	}
}
