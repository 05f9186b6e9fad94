package command

import (
	"fmt"
	"io"

	"github.com/akarin/userbook/internal/model/user"
)

// WriteUser renders one user with its id in the fixed text layout shared by
// the get and show commands.
func WriteUser(w io.Writer, id int, u user.User) error {
	_, err := fmt.Fprintf(w,
		"User %d:\n    First name: %s\n    Last name: %s\n    Email: %s\n    Phone number: %s\n",
		id, u.FirstName, u.LastName, u.Email, u.Phone)
	return err
}

// Show writes every user in the registry at path to w, sorted by id, with a
// blank line between users.
func Show(path string, w io.Writer) error {
	entries, err := List(path)
	if err != nil {
		return err
	}

	for i, entry := range entries {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := WriteUser(w, entry.ID, entry.User); err != nil {
			return err
		}
	}
	return nil
}
