package domain

// Role distinguishes admin accounts from everything else. The public
// site never logs in, so in practice every stored user is an admin.
type Role string

const (
	RoleAdmin Role = "admin"
)

// User is an admin account allowed to mutate content.
type User struct {
	Timestamps
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
}

// Strip returns a copy safe to hand back over the API.
func (u User) Strip() User {
	u.PasswordHash = ""
	return u
}
