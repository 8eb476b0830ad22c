package domain

import "strings"

type User struct {
	ID         string
	Name       string
	Email      string
	Role       string
	Status     string
	LastActive string
}

func (u User) Active() bool {
	return strings.EqualFold(strings.TrimSpace(u.Status), "active")
}
