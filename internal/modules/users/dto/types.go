package dto

type UserOutput struct {
	ID         string
	Name       string
	Email      string
	Role       string
	Status     string
	LastActive string
	Active     bool
}

type ListOutput struct {
	Users    []UserOutput
	Active   int
	Inactive int
}
