package models

// DefaultRole is assigned to a user whose role is blank at registration or update.
const DefaultRole = "users"

// User represents a registered identity of the application.
// It is a plain data structure: persistence and validation live in the store
// and validators packages respectively.
type User struct {
	// ID is the store-assigned unique identifier of the user.
	// Zero means "not persisted yet".
	ID int64 `json:"id"`

	// Name is the given name of the user. Free text, optional.
	Name string `json:"name"`

	// FirstLastname is the first (paternal) surname. Free text, optional.
	FirstLastname string `json:"firstLastname"`

	// SecondLastname is the second (maternal) surname. Free text, optional.
	SecondLastname string `json:"secondLastname"`

	// Email is a unique key of the user. Compared case-sensitively.
	Email string `json:"email"`

	// Username is a unique key of the user used for login.
	// Compared case-sensitively.
	Username string `json:"username"`

	// Password carries the plaintext password on input and the bcrypt digest
	// once persisted. It is never written back to API responses.
	Password string `json:"password,omitempty"`

	// Role is a free-text role label. Defaults to [DefaultRole].
	Role string `json:"role"`

	// RUT is the national identifier, e.g. "12345678-5".
	RUT string `json:"rut"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns a copy of the user without the password digest,
// suitable for serialization to clients.
func (u User) Public() User {
	u.Password = ""
	return u
}

// PublicUsers maps [User.Public] over users.
func PublicUsers(users []User) []User {
	public := make([]User, 0, len(users))
	for _, u := range users {
		public = append(public, u.Public())
	}
	return public
}

// Credentials is the login request payload.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
