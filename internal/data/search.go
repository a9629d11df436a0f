package data

import (
	"time"

	"github.com/aprildenise/photos/internal/models"
)

// Searches are total: they return an empty result, never an error, when
// nothing matches or the user does not exist.

// SearchByTag returns every photo of the user carrying a tag equal in both
// name and value, in album order then photo order within each album. A photo
// cannot hold the same tag twice, so no deduplication is needed.
func (db *Database) SearchByTag(username string, tag models.Tag) []*models.Photo {
	var found []*models.Photo
	user := db.UserGet(username)
	if user == nil {
		return found
	}
	for _, album := range user.Albums {
		for _, p := range album.Photos {
			if p.HasTag(tag) {
				found = append(found, p)
			}
		}
	}
	return found
}

// SearchByTagAnd returns photos carrying both tags: the intersection of the
// two single-tag results. The larger result is iterated and membership-tested
// against the smaller, so the returned order follows the larger side.
func (db *Database) SearchByTagAnd(username string, tag1, tag2 models.Tag) []*models.Photo {
	found1 := db.SearchByTag(username, tag1)
	found2 := db.SearchByTag(username, tag2)
	if len(found1) == 0 || len(found2) == 0 {
		return nil
	}

	larger, smaller := found1, found2
	if len(found2) > len(found1) {
		larger, smaller = found2, found1
	}
	ids := make(map[string]struct{}, len(smaller))
	for _, p := range smaller {
		ids[p.ID] = struct{}{}
	}

	var found []*models.Photo
	for _, p := range larger {
		if _, ok := ids[p.ID]; ok {
			found = append(found, p)
		}
	}
	return found
}

// SearchByTagOr returns photos carrying either tag: the first tag's results
// followed by the second's. This is a plain concatenation, not a set union;
// existing callers rely on the list semantics, and a photo can only appear on
// both sides when the two searched tags are themselves identical.
func (db *Database) SearchByTagOr(username string, tag1, tag2 models.Tag) []*models.Photo {
	found1 := db.SearchByTag(username, tag1)
	found2 := db.SearchByTag(username, tag2)
	return append(found1, found2...)
}

// SearchByDate returns every photo of the user modified strictly between
// start and end. Photos exactly on either bound are excluded.
func (db *Database) SearchByDate(username string, start, end time.Time) []*models.Photo {
	var found []*models.Photo
	user := db.UserGet(username)
	if user == nil {
		return found
	}
	for _, album := range user.Albums {
		for _, p := range album.Photos {
			if p.WithinRange(start, end) {
				found = append(found, p)
			}
		}
	}
	return found
}
