package models

// RegisterRequest is the JSON body of POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the JSON body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TaskRequest carries the mutable task fields for both task creation
// (POST /api/tasks) and full-field update (PUT /api/tasks/{id}).
// The owner is never part of the request; it is always taken from the
// authenticated principal.
type TaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	Priority    Priority   `json:"priority"`
	DueDate     *Date      `json:"dueDate,omitempty"`
}
