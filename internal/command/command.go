// Package command implements the one-shot registry operations shared by the
// CLI and the GUI API. Each operation loads the data file once and, when it
// mutates the registry, saves it once before returning; nothing is kept in
// memory across invocations.
package command

import (
	"errors"
	"fmt"
	"sort"

	"github.com/akarin/userbook/internal/model/user"
	"github.com/akarin/userbook/internal/storage"
)

// ErrUserNotFound reports an id with no stored user behind it.
var ErrUserNotFound = errors.New("user not found")

// Add stores u in the registry at path and returns the assigned id.
func Add(path string, u user.User) (int, error) {
	data, err := storage.Load(path)
	if err != nil {
		return 0, err
	}
	id := data.AddUser(u)
	if err := storage.Save(path, data); err != nil {
		return 0, err
	}
	return id, nil
}

// Get returns the user stored under id in the registry at path.
func Get(path string, id int) (user.User, error) {
	data, err := storage.Load(path)
	if err != nil {
		return user.User{}, err
	}
	u, ok := data.User(id)
	if !ok {
		return user.User{}, fmt.Errorf("user %d: %w", id, ErrUserNotFound)
	}
	return u, nil
}

// Remove deletes the user stored under id and returns it. The data file is
// rewritten only when a user was actually removed.
func Remove(path string, id int) (user.User, error) {
	data, err := storage.Load(path)
	if err != nil {
		return user.User{}, err
	}
	u, ok := data.RemoveUser(id)
	if !ok {
		return user.User{}, fmt.Errorf("user %d: %w", id, ErrUserNotFound)
	}
	if err := storage.Save(path, data); err != nil {
		return user.User{}, err
	}
	return u, nil
}

// Reset clears the registry at path and reports whether any users were
// removed. Resetting an already-empty registry succeeds and reports false.
func Reset(path string) (bool, error) {
	data, err := storage.Load(path)
	if err != nil {
		return false, err
	}
	cleared := data.Reset()
	if err := storage.Save(path, data); err != nil {
		return false, err
	}
	return cleared, nil
}

// List returns every entry in the registry at path, sorted by id. Display
// order is a user-facing contract even though the store keeps none.
func List(path string) ([]user.Entry, error) {
	data, err := storage.Load(path)
	if err != nil {
		return nil, err
	}
	entries := data.Users()
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries, nil
}
