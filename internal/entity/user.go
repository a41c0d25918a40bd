package entity

// UserLoginData carries the identity claims verified from the caller's token.
type UserLoginData struct {
	ID       string
	Username string
	Email    string
}
