package data

import (
	"fmt"
	"os"

	"github.com/aprildenise/photos/internal/models"
)

// PhotoAdd appends photo to the named album, refreshing the album's display
// date range.
func (db *Database) PhotoAdd(username, albumName string, photo *models.Photo) error {
	album, err := db.AlbumGet(username, albumName)
	if err != nil {
		return err
	}
	album.AddPhoto(photo)
	return nil
}

// PhotoDelete removes the photo with the given ID from the named album.
func (db *Database) PhotoDelete(username, albumName, photoID string) error {
	album, err := db.AlbumGet(username, albumName)
	if err != nil {
		return err
	}
	if !album.RemovePhoto(photoID) {
		return ErrPhotoNotFound
	}
	return nil
}

// PhotoCopy clones the photo into another of the user's albums. The copy is
// an independent photo with its own identity; captions, timestamps, paths
// and tags carry over.
func (db *Database) PhotoCopy(username, fromAlbum, photoID, toAlbum string) error {
	src, err := db.AlbumGet(username, fromAlbum)
	if err != nil {
		return err
	}
	dst, err := db.AlbumGet(username, toAlbum)
	if err != nil {
		return err
	}
	photo := src.PhotoByID(photoID)
	if photo == nil {
		return ErrPhotoNotFound
	}
	dst.AddPhoto(photo.Clone())
	return nil
}

// PhotoMove copies the photo into the destination album and removes the
// original from the source.
func (db *Database) PhotoMove(username, fromAlbum, photoID, toAlbum string) error {
	if err := db.PhotoCopy(username, fromAlbum, photoID, toAlbum); err != nil {
		return err
	}
	src, err := db.AlbumGet(username, fromAlbum)
	if err != nil {
		return err
	}
	src.RemovePhoto(photoID)
	return nil
}

// TagAdd attaches tag to photo. The photo performs the duplicate and
// multiplicity checks; the store only exposes them here because the UI layer
// has no other path back to the owning photo.
func (db *Database) TagAdd(photo *models.Photo, tag models.Tag) error {
	return photo.AddTag(tag)
}

// TagDelete removes the tag equal in name and value from photo, reporting
// whether one was removed.
func (db *Database) TagDelete(photo *models.Photo, tag models.Tag) bool {
	return photo.RemoveTag(tag)
}

// VerifyPhotoFiles checks that every photo of the user still has its backing
// file on disk, removing any photo whose file cannot be resolved. It returns
// ErrPhotosDropped wrapping the count when photos were removed. Meant to run
// once at login.
func (db *Database) VerifyPhotoFiles(username string) error {
	user := db.UserGet(username)
	if user == nil {
		return ErrUserNotFound
	}

	dropped := 0
	for _, album := range user.Albums {
		kept := make([]*models.Photo, 0, len(album.Photos))
		for _, p := range album.Photos {
			if _, err := os.Stat(p.Path); err != nil {
				dropped++
				continue
			}
			kept = append(kept, p)
		}
		if len(kept) != len(album.Photos) {
			album.SetPhotos(kept)
		}
	}

	if dropped > 0 {
		return fmt.Errorf("%w: %d dropped", ErrPhotosDropped, dropped)
	}
	return nil
}
