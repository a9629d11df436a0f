package models

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestPhoto writes a real file with the given modification time and
// builds a photo from it.
func newTestPhoto(t *testing.T, modified time.Time) *Photo {
	t.Helper()
	path := filepath.Join(t.TempDir(), "photo.jpg")
	require.NoError(t, os.WriteFile(path, []byte("not really a jpeg"), 0644))
	require.NoError(t, os.Chtimes(path, modified, modified))

	photo, err := NewPhoto(path)
	require.NoError(t, err)
	return photo
}

// photoDated builds a photo in memory without a backing file.
func photoDated(caption string, modified time.Time) *Photo {
	return &Photo{ID: uuid.NewString(), Caption: caption, ModifiedAt: modified}
}

func TestNewPhoto(t *testing.T) {
	modified := time.Date(2023, 6, 15, 10, 30, 0, 0, time.UTC)
	photo := newTestPhoto(t, modified)

	assert.NotEmpty(t, photo.ID)
	assert.Empty(t, photo.Caption)
	assert.True(t, photo.ModifiedAt.Equal(modified))
	assert.Empty(t, photo.Tags)
}

func TestNewPhotoMissingFile(t *testing.T) {
	_, err := NewPhoto(filepath.Join(t.TempDir(), "nope.jpg"))
	assert.Error(t, err)
}

func TestAddTagSingleValue(t *testing.T) {
	photo := photoDated("", time.Now())
	require.NoError(t, photo.AddTag(NewTag("location", "paris", false)))

	// A second value under a single-value name is rejected.
	err := photo.AddTag(NewTag("location", "london", false))
	assert.ErrorIs(t, err, ErrNotMultiple)

	// An identical retry is a duplicate, not a multiplicity problem.
	err = photo.AddTag(NewTag("location", "paris", false))
	assert.ErrorIs(t, err, ErrDuplicateTag)

	assert.Len(t, photo.Tags, 1)
}

func TestAddTagMultiValue(t *testing.T) {
	photo := photoDated("", time.Now())
	require.NoError(t, photo.AddTag(NewTag("people", "sam", true)))

	// The incoming tag's flag is forced to match the existing one.
	require.NoError(t, photo.AddTag(NewTag("people", "alex", false)))
	assert.Len(t, photo.Tags, 2)
	assert.True(t, photo.Tags[1].AllowMultiple)

	err := photo.AddTag(NewTag("people", "sam", true))
	assert.ErrorIs(t, err, ErrDuplicateTag)
}

func TestHasTag(t *testing.T) {
	photo := photoDated("", time.Now())
	require.NoError(t, photo.AddTag(NewTag("mood", "happy", true)))

	assert.True(t, photo.HasTag(NewTag("mood", "happy", false)))
	assert.False(t, photo.HasTag(NewTag("mood", "sad", false)), "name-only matches do not count")
}

func TestTagByName(t *testing.T) {
	photo := photoDated("", time.Now())
	require.NoError(t, photo.AddTag(NewTag("location", "paris", false)))

	tag, ok := photo.TagByName("location")
	require.True(t, ok)
	assert.Equal(t, "paris", tag.Value)

	_, ok = photo.TagByName("people")
	assert.False(t, ok)
}

func TestRemoveTag(t *testing.T) {
	photo := photoDated("", time.Now())
	require.NoError(t, photo.AddTag(NewTag("people", "sam", true)))
	require.NoError(t, photo.AddTag(NewTag("people", "alex", true)))

	assert.True(t, photo.RemoveTag(NewTag("people", "sam", false)))
	assert.False(t, photo.RemoveTag(NewTag("people", "sam", false)))
	require.Len(t, photo.Tags, 1)
	assert.Equal(t, "alex", photo.Tags[0].Value)
}

func TestWithinRange(t *testing.T) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		modified time.Time
		want     bool
	}{
		{name: "interior", modified: time.Date(2020, 6, 15, 0, 0, 0, 0, time.UTC), want: true},
		{name: "exactly on start bound", modified: start, want: false},
		{name: "exactly on end bound", modified: end, want: false},
		{name: "before range", modified: time.Date(2019, 12, 31, 0, 0, 0, 0, time.UTC), want: false},
		{name: "after range", modified: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			photo := photoDated("", tt.modified)
			assert.Equal(t, tt.want, photo.WithinRange(start, end))
		})
	}
}

func TestPhotoClone(t *testing.T) {
	photo := photoDated("beach", time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC))
	photo.Path = "/pics/beach.jpg"
	require.NoError(t, photo.AddTag(NewTag("location", "bali", false)))

	clone := photo.Clone()

	assert.NotEqual(t, photo.ID, clone.ID, "a copy is a distinct photo")
	assert.Equal(t, photo.Caption, clone.Caption)
	assert.Equal(t, photo.Path, clone.Path)
	assert.True(t, photo.ModifiedAt.Equal(clone.ModifiedAt))
	assert.Equal(t, photo.Tags, clone.Tags)

	// The tag set is an independent copy.
	require.NoError(t, clone.AddTag(NewTag("mood", "calm", true)))
	assert.Len(t, photo.Tags, 1)
	assert.Len(t, clone.Tags, 2)
}

func TestDateModified(t *testing.T) {
	photo := photoDated("", time.Date(2023, 6, 5, 14, 0, 0, 0, time.UTC))
	assert.Equal(t, "06/05/2023", photo.DateModified())
}
