package models

// AuthResponse is the JSON body returned by successful registration and
// login. User is serialized without its password hash (see [User]).
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ErrorResponse is the uniform JSON error body. It carries only the
// boundary-level message; internal error detail never reaches it.
type ErrorResponse struct {
	Message string `json:"message"`
}
