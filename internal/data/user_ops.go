package data

import "github.com/aprildenise/photos/internal/models"

// UserGet returns the user with the given username, or nil.
func (db *Database) UserGet(username string) *models.User {
	for _, u := range db.users {
		if u.Username == username {
			return u
		}
	}
	return nil
}

// UserExists reports whether a user with the given username is stored.
func (db *Database) UserExists(username string) bool {
	return db.UserGet(username) != nil
}

// UserAdd inserts user unless the username is already taken, reporting
// whether the user was added.
func (db *Database) UserAdd(user *models.User) bool {
	if db.UserExists(user.Username) {
		return false
	}
	db.users = append(db.users, user)
	return true
}

// UserDelete removes the stored user with user's username, along with every
// album they own. The target is resolved by username, so presenting the
// admin name with any password still hits the real admin account and fails
// with ErrProtectedAccount.
func (db *Database) UserDelete(user *models.User) error {
	target := db.UserGet(user.Username)
	if target == nil {
		return ErrUserNotFound
	}
	if db.isAdmin(target) {
		return ErrProtectedAccount
	}
	for i, u := range db.users {
		if u == target {
			db.users = append(db.users[:i], db.users[i+1:]...)
			break
		}
	}
	return nil
}

// Authorize reports whether some stored user matches both username and
// password, with two empty passwords counting as a match.
func (db *Database) Authorize(username, password string) bool {
	for _, u := range db.users {
		if u.Username == username && u.SamePassword(password) {
			return true
		}
	}
	return false
}

func (db *Database) isAdmin(user *models.User) bool {
	return user.Username == AdminUsername && user.SamePassword(AdminPassword)
}
