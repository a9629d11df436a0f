package data

import "github.com/aprildenise/photos/internal/models"

// AlbumAdd attaches album to the named user's collection, enforcing album
// name uniqueness within that user.
func (db *Database) AlbumAdd(username string, album *models.Album) error {
	user := db.UserGet(username)
	if user == nil {
		return ErrUserNotFound
	}
	return user.AddAlbum(album)
}

// AlbumDelete removes the named album from the user's collection.
func (db *Database) AlbumDelete(username, albumName string) error {
	user := db.UserGet(username)
	if user == nil {
		return ErrUserNotFound
	}
	return user.RemoveAlbum(albumName)
}

// AlbumRename renames one of the user's albums. Uniqueness of the new name
// is checked here; the album itself performs no check. Renaming an album to
// its current name is a no-op.
func (db *Database) AlbumRename(username, oldName, newName string) error {
	user := db.UserGet(username)
	if user == nil {
		return ErrUserNotFound
	}
	album := user.AlbumByName(oldName)
	if album == nil {
		return models.ErrAlbumNotFound
	}
	if oldName == newName {
		return nil
	}
	if user.AlbumByName(newName) != nil {
		return models.ErrDuplicateAlbum
	}
	album.Rename(newName)
	return nil
}

// AlbumGet resolves one of the user's albums by name.
func (db *Database) AlbumGet(username, albumName string) (*models.Album, error) {
	user := db.UserGet(username)
	if user == nil {
		return nil, ErrUserNotFound
	}
	album := user.AlbumByName(albumName)
	if album == nil {
		return nil, models.ErrAlbumNotFound
	}
	return album, nil
}
