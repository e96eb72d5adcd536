package model

// User is the public profile shape; the password hash never leaves the
// repository layer except through UserRecord.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
}

// UserRecord mirrors the users table row.
type UserRecord struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
	Fullname string `json:"fullname"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Fullname string `json:"fullname"`
}
