package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the textual date format exchanged with callers, both for
// rendering album and photo dates and for parsing search bounds.
const DateLayout = "01/02/2006"

// Album is an ordered sequence of photos with a derived display date range.
// The range is stored rather than recomputed on read, so it serializes with
// the rest of the album.
type Album struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	DateRange string    `json:"date_range"`
	Photos    []*Photo  `json:"photos"`
}

func NewAlbum(name string) *Album {
	a := &Album{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now(),
	}
	a.UpdateDateRange()
	return a
}

// AddPhoto appends photo and recomputes the date range.
func (a *Album) AddPhoto(photo *Photo) {
	a.Photos = append(a.Photos, photo)
	a.UpdateDateRange()
}

// SetPhotos replaces the photo sequence wholesale and recomputes the range.
func (a *Album) SetPhotos(photos []*Photo) {
	a.Photos = photos
	a.UpdateDateRange()
}

// RemovePhoto removes the photo with the given ID and recomputes the range,
// reporting whether a photo was removed.
func (a *Album) RemovePhoto(id string) bool {
	for i, p := range a.Photos {
		if p.ID == id {
			a.Photos = append(a.Photos[:i], a.Photos[i+1:]...)
			a.UpdateDateRange()
			return true
		}
	}
	return false
}

// PhotoByID returns the photo with the given ID, or nil.
func (a *Album) PhotoByID(id string) *Photo {
	for _, p := range a.Photos {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Rename sets the album name. Name uniqueness is the owning user's concern,
// enforced when the album is attached or renamed through the store.
func (a *Album) Rename(name string) {
	a.Name = name
}

// NumPhotos returns the number of photos in the album.
func (a *Album) NumPhotos() int {
	return len(a.Photos)
}

// UpdateDateRange recomputes the display range from the photos' modification
// times: the creation date when the album is empty, a single date when
// earliest and latest coincide, otherwise "earliest - latest".
func (a *Album) UpdateDateRange() {
	if len(a.Photos) == 0 {
		a.DateRange = FormatDate(a.CreatedAt)
		return
	}
	earliest := a.Photos[0].ModifiedAt
	latest := a.Photos[0].ModifiedAt
	for _, p := range a.Photos {
		if p.ModifiedAt.Before(earliest) {
			earliest = p.ModifiedAt
		}
		if p.ModifiedAt.After(latest) {
			latest = p.ModifiedAt
		}
	}
	if earliest.Equal(latest) {
		a.DateRange = FormatDate(earliest)
		return
	}
	a.DateRange = FormatDate(earliest) + " - " + FormatDate(latest)
}

// FormatDate renders t in the MM/DD/YYYY layout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a MM/DD/YYYY date string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date '%s', expected MM/DD/YYYY: %w", s, err)
	}
	return t, nil
}
