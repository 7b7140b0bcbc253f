package domain

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleCustomer
}

// User carries the plaintext password the caller registered with. It never
// leaves the process: responses go through DTOs that drop it.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

type CreateUserInput struct {
	Username string
	Password string
	Role     Role
}
