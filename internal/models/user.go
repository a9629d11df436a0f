package models

// defaultPresets are the tag presets every new user starts with. The custom
// sentinel comes first so the UI can offer it as the default choice.
var defaultPresets = []Tag{
	{Name: TagCustom},
	{Name: "location"},
	{Name: "people", AllowMultiple: true},
	{Name: "mood", AllowMultiple: true},
}

// User owns a set of albums, unique by name, and a catalog of tag presets
// saved for reuse. Identity is the username alone; the password only matters
// for authentication and the admin check.
type User struct {
	Username string   `json:"username"`
	Password string   `json:"password"`
	Albums   []*Album `json:"albums"`
	Presets  []Tag    `json:"presets"`
}

// NewUser creates a user seeded with the default tag presets.
func NewUser(username, password string) *User {
	presets := make([]Tag, len(defaultPresets))
	copy(presets, defaultPresets)
	return &User{
		Username: username,
		Password: password,
		Presets:  presets,
	}
}

// AddAlbum attaches album, failing with ErrDuplicateAlbum when the user
// already has an album of that exact name.
func (u *User) AddAlbum(album *Album) error {
	if u.AlbumByName(album.Name) != nil {
		return ErrDuplicateAlbum
	}
	u.Albums = append(u.Albums, album)
	return nil
}

// AlbumByName returns the album with the given name, or nil.
func (u *User) AlbumByName(name string) *Album {
	for _, a := range u.Albums {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// RemoveAlbum detaches the album with the given name.
func (u *User) RemoveAlbum(name string) error {
	for i, a := range u.Albums {
		if a.Name == name {
			u.Albums = append(u.Albums[:i], u.Albums[i+1:]...)
			return nil
		}
	}
	return ErrAlbumNotFound
}

// AddPreset saves a tag preset for later reuse.
func (u *User) AddPreset(tag Tag) {
	u.Presets = append(u.Presets, tag)
}

// PresetByName returns the preset with the given name.
func (u *User) PresetByName(name string) (Tag, bool) {
	for _, t := range u.Presets {
		if t.Name == name {
			return t, true
		}
	}
	return Tag{}, false
}

// NumAlbums returns the number of albums the user owns.
func (u *User) NumAlbums() int {
	return len(u.Albums)
}

// SamePassword reports whether password matches the user's, with two empty
// passwords counting as equal. This is how the built-in stock account with a
// blank password authenticates.
func (u *User) SamePassword(password string) bool {
	if u.Password == "" && password == "" {
		return true
	}
	return u.Password == password
}

// SameUser reports whether other has the same username and password.
func (u *User) SameUser(other *User) bool {
	return u.Username == other.Username && u.SamePassword(other.Password)
}
