package data

import (
	"fmt"

	"github.com/aprildenise/photos/internal/models"
	"github.com/aprildenise/photos/internal/storage"
)

// Built-in accounts. The admin credentials are fixed and the account can
// never be deleted; the stock account has a blank password and is reseeded
// with the bundled demo album whenever it has none.
const (
	AdminUsername = "admin"
	AdminPassword = "admin"
	StockUsername = "stock"

	stockImageBase = "stock"
	stockImageExt  = ".jpg"
	numStockImages = 6
)

// Database owns every user in the library; users own albums, albums own
// photos, photos own tags. All operations key users by username. Mutation is
// in-place and becomes durable at the next Save.
type Database struct {
	users        []*models.User
	snapshotPath string
	assetRoot    string
}

// New returns an empty, unseeded store. Regular startup goes through Open.
func New(snapshotPath, assetRoot string) *Database {
	return &Database{snapshotPath: snapshotPath, assetRoot: assetRoot}
}

// Open loads the snapshot at snapshotPath, falling back to a fresh store on
// any load failure, then seeds the built-in accounts. A fresh store is saved
// immediately so a merely missing file is not reseeded on every start. The
// returned error reports only that initial save; the store itself is always
// usable.
func Open(snapshotPath, assetRoot string) (*Database, error) {
	db := New(snapshotPath, assetRoot)
	snap, err := storage.SnapshotLoad(snapshotPath)
	if err != nil {
		db.seed()
		return db, db.Save()
	}
	db.users = snap.Users
	db.seed()
	return db, nil
}

// seed ensures the built-in accounts exist: the fixed admin, and the stock
// account with its demo album of bundled images when it has none. Safe to
// run on every startup.
func (db *Database) seed() {
	if db.UserGet(AdminUsername) == nil {
		db.users = append(db.users, models.NewUser(AdminUsername, AdminPassword))
	}
	stock := db.UserGet(StockUsername)
	if stock == nil {
		stock = models.NewUser(StockUsername, "")
		db.users = append(db.users, stock)
	}
	if stock.AlbumByName(stockImageBase) != nil {
		return
	}

	album := models.NewAlbum(stockImageBase)
	for i := 1; i <= numStockImages; i++ {
		name := fmt.Sprintf("%s%d%s", stockImageBase, i, stockImageExt)
		path, ok := storage.FindAsset(db.assetRoot, name)
		if !ok {
			continue
		}
		photo, err := models.NewPhoto(path)
		if err != nil {
			continue
		}
		album.AddPhoto(photo)
	}
	_ = stock.AddAlbum(album)
}

// Save writes the whole store to the snapshot file. A failed save leaves the
// in-memory state untouched; the next save point retries the write.
func (db *Database) Save() error {
	if err := storage.SnapshotSave(db.snapshotPath, db.users); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

// Users returns the stored users in insertion order.
func (db *Database) Users() []*models.User {
	return db.users
}
