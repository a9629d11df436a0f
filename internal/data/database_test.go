package data

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aprildenise/photos/internal/models"
)

// newTestDB returns an empty store backed by throwaway paths.
func newTestDB(t *testing.T) *Database {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "photos.json"), t.TempDir())
}

func photoDated(caption string, modified time.Time) *models.Photo {
	return &models.Photo{ID: uuid.NewString(), Caption: caption, ModifiedAt: modified}
}

func TestUserAdd(t *testing.T) {
	db := newTestDB(t)

	assert.True(t, db.UserAdd(models.NewUser("alice", "pw")))
	assert.False(t, db.UserAdd(models.NewUser("alice", "different")), "usernames are unique")
	assert.Len(t, db.Users(), 1)
}

func TestUserDelete(t *testing.T) {
	db := newTestDB(t)
	db.UserAdd(models.NewUser("alice", "pw"))

	assert.NoError(t, db.UserDelete(models.NewUser("alice", "pw")))
	assert.Nil(t, db.UserGet("alice"))
	assert.ErrorIs(t, db.UserDelete(models.NewUser("alice", "pw")), ErrUserNotFound)
}

func TestUserDeleteAdminProtected(t *testing.T) {
	db := newTestDB(t)
	db.seed()

	err := db.UserDelete(models.NewUser(AdminUsername, AdminPassword))
	assert.ErrorIs(t, err, ErrProtectedAccount)

	// A mismatched password still resolves to the real admin by username
	// and stays protected.
	err = db.UserDelete(models.NewUser(AdminUsername, "wrong"))
	assert.ErrorIs(t, err, ErrProtectedAccount)

	assert.NotNil(t, db.UserGet(AdminUsername))
}

func TestAuthorize(t *testing.T) {
	db := newTestDB(t)
	db.seed()
	db.UserAdd(models.NewUser("alice", "pw"))

	assert.True(t, db.Authorize("alice", "pw"))
	assert.False(t, db.Authorize("alice", "wrong"))
	assert.False(t, db.Authorize("nobody", "pw"))
	assert.True(t, db.Authorize(AdminUsername, AdminPassword))
	assert.True(t, db.Authorize(StockUsername, ""), "stock logs in with a blank password")
}

func TestAlbumAdd(t *testing.T) {
	db := newTestDB(t)
	db.UserAdd(models.NewUser("alice", "pw"))

	require.NoError(t, db.AlbumAdd("alice", models.NewAlbum("vacation")))
	assert.ErrorIs(t, db.AlbumAdd("alice", models.NewAlbum("vacation")), models.ErrDuplicateAlbum)
	assert.ErrorIs(t, db.AlbumAdd("nobody", models.NewAlbum("vacation")), ErrUserNotFound)
}

func TestAlbumDelete(t *testing.T) {
	db := newTestDB(t)
	db.UserAdd(models.NewUser("alice", "pw"))
	require.NoError(t, db.AlbumAdd("alice", models.NewAlbum("vacation")))

	assert.NoError(t, db.AlbumDelete("alice", "vacation"))
	assert.ErrorIs(t, db.AlbumDelete("alice", "vacation"), models.ErrAlbumNotFound)
	assert.ErrorIs(t, db.AlbumDelete("nobody", "vacation"), ErrUserNotFound)
}

func TestAlbumRename(t *testing.T) {
	db := newTestDB(t)
	db.UserAdd(models.NewUser("alice", "pw"))
	require.NoError(t, db.AlbumAdd("alice", models.NewAlbum("vacation")))
	require.NoError(t, db.AlbumAdd("alice", models.NewAlbum("work")))

	assert.NoError(t, db.AlbumRename("alice", "vacation", "holiday"))
	album, err := db.AlbumGet("alice", "holiday")
	require.NoError(t, err)
	assert.Equal(t, "holiday", album.Name)

	assert.ErrorIs(t, db.AlbumRename("alice", "holiday", "work"), models.ErrDuplicateAlbum)
	assert.NoError(t, db.AlbumRename("alice", "work", "work"), "renaming to the same name is a no-op")
	assert.ErrorIs(t, db.AlbumRename("alice", "missing", "x"), models.ErrAlbumNotFound)
}

func TestPhotoAddUpdatesDateRange(t *testing.T) {
	db := newTestDB(t)
	db.UserAdd(models.NewUser("alice", "pw"))
	require.NoError(t, db.AlbumAdd("alice", models.NewAlbum("vacation")))

	photo := photoDated("beach", time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, db.PhotoAdd("alice", "vacation", photo))

	album, err := db.AlbumGet("alice", "vacation")
	require.NoError(t, err)
	assert.Equal(t, 1, album.NumPhotos())
	assert.Equal(t, "06/01/2021", album.DateRange)

	assert.ErrorIs(t, db.PhotoAdd("alice", "missing", photo), models.ErrAlbumNotFound)
	assert.ErrorIs(t, db.PhotoAdd("nobody", "vacation", photo), ErrUserNotFound)
}

func TestPhotoDelete(t *testing.T) {
	db := newTestDB(t)
	db.UserAdd(models.NewUser("alice", "pw"))
	require.NoError(t, db.AlbumAdd("alice", models.NewAlbum("vacation")))
	photo := photoDated("beach", time.Now())
	require.NoError(t, db.PhotoAdd("alice", "vacation", photo))

	assert.NoError(t, db.PhotoDelete("alice", "vacation", photo.ID))
	assert.ErrorIs(t, db.PhotoDelete("alice", "vacation", photo.ID), ErrPhotoNotFound)
}

func TestPhotoCopy(t *testing.T) {
	db := newTestDB(t)
	db.UserAdd(models.NewUser("alice", "pw"))
	require.NoError(t, db.AlbumAdd("alice", models.NewAlbum("src")))
	require.NoError(t, db.AlbumAdd("alice", models.NewAlbum("dst")))

	photo := photoDated("beach", time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, photo.AddTag(models.NewTag("mood", "calm", true)))
	require.NoError(t, db.PhotoAdd("alice", "src", photo))

	require.NoError(t, db.PhotoCopy("alice", "src", photo.ID, "dst"))

	src, _ := db.AlbumGet("alice", "src")
	dst, _ := db.AlbumGet("alice", "dst")
	require.Equal(t, 1, src.NumPhotos())
	require.Equal(t, 1, dst.NumPhotos())

	clone := dst.Photos[0]
	assert.NotEqual(t, photo.ID, clone.ID, "the copy has its own identity")
	assert.Equal(t, photo.Caption, clone.Caption)
	assert.Equal(t, photo.Tags, clone.Tags)
	assert.Equal(t, "06/01/2021", dst.DateRange)

	assert.ErrorIs(t, db.PhotoCopy("alice", "src", "missing", "dst"), ErrPhotoNotFound)
	assert.ErrorIs(t, db.PhotoCopy("alice", "src", photo.ID, "missing"), models.ErrAlbumNotFound)
}

func TestPhotoMove(t *testing.T) {
	db := newTestDB(t)
	db.UserAdd(models.NewUser("alice", "pw"))
	require.NoError(t, db.AlbumAdd("alice", models.NewAlbum("src")))
	require.NoError(t, db.AlbumAdd("alice", models.NewAlbum("dst")))
	photo := photoDated("beach", time.Now())
	require.NoError(t, db.PhotoAdd("alice", "src", photo))

	require.NoError(t, db.PhotoMove("alice", "src", photo.ID, "dst"))

	src, _ := db.AlbumGet("alice", "src")
	dst, _ := db.AlbumGet("alice", "dst")
	assert.Equal(t, 0, src.NumPhotos())
	assert.Equal(t, 1, dst.NumPhotos())
}

func TestTagAddPassesThroughPhotoErrors(t *testing.T) {
	db := newTestDB(t)
	photo := photoDated("beach", time.Now())

	require.NoError(t, db.TagAdd(photo, models.NewTag("location", "bali", false)))
	assert.ErrorIs(t, db.TagAdd(photo, models.NewTag("location", "bali", false)), models.ErrDuplicateTag)
	assert.ErrorIs(t, db.TagAdd(photo, models.NewTag("location", "rome", false)), models.ErrNotMultiple)
}

func TestTagDelete(t *testing.T) {
	db := newTestDB(t)
	photo := photoDated("beach", time.Now())
	require.NoError(t, db.TagAdd(photo, models.NewTag("location", "bali", false)))

	assert.True(t, db.TagDelete(photo, models.NewTag("location", "bali", false)))
	assert.False(t, db.TagDelete(photo, models.NewTag("location", "bali", false)))
}

func TestVerifyPhotoFiles(t *testing.T) {
	db := newTestDB(t)
	db.UserAdd(models.NewUser("alice", "pw"))
	require.NoError(t, db.AlbumAdd("alice", models.NewAlbum("vacation")))

	dir := t.TempDir()
	keepPath := filepath.Join(dir, "keep.jpg")
	losePath := filepath.Join(dir, "lose.jpg")
	require.NoError(t, os.WriteFile(keepPath, []byte("x"), 0644))
	require.NoError(t, os.WriteFile(losePath, []byte("x"), 0644))

	keep := photoDated("keep", time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC))
	keep.Path = keepPath
	lose := photoDated("lose", time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC))
	lose.Path = losePath
	require.NoError(t, db.PhotoAdd("alice", "vacation", keep))
	require.NoError(t, db.PhotoAdd("alice", "vacation", lose))

	// All files present: nothing to heal.
	require.NoError(t, db.VerifyPhotoFiles("alice"))

	require.NoError(t, os.Remove(losePath))
	err := db.VerifyPhotoFiles("alice")
	assert.ErrorIs(t, err, ErrPhotosDropped)

	album, _ := db.AlbumGet("alice", "vacation")
	require.Equal(t, 1, album.NumPhotos())
	assert.Equal(t, keep.ID, album.Photos[0].ID)
	assert.Equal(t, "01/01/2021", album.DateRange, "dropping a photo refreshes the range")

	assert.ErrorIs(t, db.VerifyPhotoFiles("nobody"), ErrUserNotFound)
}
