package entity

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleStaff Role = "STAFF"
)

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
}

// DemoUsers is the fixed credential table used when no external identity
// provider is configured. Passwords live here only because demo mode has no
// other place for them.
var DemoUsers = map[string]struct {
	User
	Password string
}{
	"admin": {User: User{ID: "u1", Username: "admin", Name: "Super Admin", Role: RoleAdmin}, Password: "123"},
	"staff": {User: User{ID: "u2", Username: "staff", Name: "Sales Executive", Role: RoleStaff}, Password: "123"},
}

// Authenticate checks the demo credential table. Returns nil on mismatch.
func Authenticate(username, password string) *User {
	rec, ok := DemoUsers[username]
	if !ok || rec.Password != password {
		return nil
	}
	u := rec.User
	return &u
}
