package models

// User is an application account. The users collection is a JSON object
// keyed by username, so Username is not serialized inside the record.
type User struct {
	Username string `json:"-"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// Principal is an authenticated user as derived from the auth cookie.
type Principal struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
}
