package user

import "encoding/json"

// Entry pairs a stored User with its assigned id.
type Entry struct {
	ID   int
	User User
}

// Data is the in-memory registry: users keyed by a non-negative integer id,
// plus the cached next free id. Ids are assigned only by AddUser and are
// reused after removal, always taking the smallest integer not currently in
// use.
type Data struct {
	nextID int
	users  map[int]User
}

// NewData returns an empty registry with the next id at zero.
func NewData() *Data {
	return &Data{users: make(map[int]User)}
}

// calculateNextID rescans for the smallest unused id, so an id freed by a
// removal becomes assignable again. Linear in the number of stored users,
// which is fine at personal-registry scale.
func (d *Data) calculateNextID() {
	next := 0
	for {
		if _, ok := d.users[next]; !ok {
			break
		}
		next++
	}
	d.nextID = next
}

// AddUser stores u under the next free id and returns that id.
func (d *Data) AddUser(u User) int {
	id := d.nextID
	d.users[id] = u
	d.calculateNextID()
	return id
}

// User returns the user stored under id.
func (d *Data) User(id int) (User, bool) {
	u, ok := d.users[id]
	return u, ok
}

// RemoveUser deletes the user stored under id and returns it. The second
// return is false when no user had that id, in which case the registry is
// left untouched.
func (d *Data) RemoveUser(id int) (User, bool) {
	u, ok := d.users[id]
	if !ok {
		return User{}, false
	}
	delete(d.users, id)
	d.calculateNextID()
	return u, true
}

// Reset drops every user and returns the next id to zero. It reports
// whether anything was actually removed; resetting an empty registry is a
// no-op, not an error.
func (d *Data) Reset() bool {
	if len(d.users) == 0 {
		return false
	}
	d.users = make(map[int]User)
	d.nextID = 0
	return true
}

// Users returns all entries in unspecified order. Callers that present the
// registry to a person sort by id first.
func (d *Data) Users() []Entry {
	entries := make([]Entry, 0, len(d.users))
	for id, u := range d.users {
		entries = append(entries, Entry{ID: id, User: u})
	}
	return entries
}

// Len returns the number of stored users.
func (d *Data) Len() int {
	return len(d.users)
}

// NextID returns the id the next AddUser call will assign.
func (d *Data) NextID() int {
	return d.nextID
}

// persisted is the on-disk shape: "i" is the next id and "u" maps each id,
// in decimal string form, to its user. encoding/json writes integer map
// keys as decimal strings, which is exactly the wire format.
type persisted struct {
	NextID int          `json:"i"`
	Users  map[int]User `json:"u"`
}

// MarshalJSON encodes the registry as a single {"i":...,"u":{...}} document.
func (d *Data) MarshalJSON() ([]byte, error) {
	return json.Marshal(persisted{NextID: d.nextID, Users: d.users})
}

// UnmarshalJSON decodes a persisted registry document. The stored next id
// is taken as written; every mutation recomputes it anyway.
func (d *Data) UnmarshalJSON(b []byte) error {
	var p persisted
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	d.nextID = p.NextID
	d.users = p.Users
	if d.users == nil {
		d.users = make(map[int]User)
	}
	return nil
}
