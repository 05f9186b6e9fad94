package user

// User holds one person's contact details. The phone number is kept as text
// even though the CLI accepts it as a number, so formatting such as leading
// zeros survives the round trip to disk.
//
// The json tags are the compact field tags of the persisted registry
// document. The validate tags are checked by the boundaries (CLI arguments,
// HTTP request bodies) with go-playground/validator; the store itself never
// validates.
type User struct {
	FirstName string `json:"n" validate:"required"`
	LastName  string `json:"s" validate:"required"`
	Email     string `json:"e" validate:"required,email"`
	Phone     string `json:"p" validate:"required,number"`
}
