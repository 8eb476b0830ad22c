package service

import (
	"statdeck/internal/modules/users/domain"
	"statdeck/internal/modules/users/dto"
	"statdeck/internal/platform/sanitize"
)

type UsersService struct{}

func NewUsersService() *UsersService {
	return &UsersService{}
}

// Summarize cleans every server-provided string for terminal display and
// counts active accounts. Order is preserved.
func (s *UsersService) Summarize(users []domain.User) dto.ListOutput {
	out := dto.ListOutput{Users: make([]dto.UserOutput, 0, len(users))}
	for _, u := range users {
		item := dto.UserOutput{
			ID:         sanitize.Text(u.ID),
			Name:       sanitize.Text(u.Name),
			Email:      sanitize.Text(u.Email),
			Role:       sanitize.Text(u.Role),
			Status:     sanitize.Text(u.Status),
			LastActive: sanitize.Text(u.LastActive),
			Active:     u.Active(),
		}
		if item.Name == "" {
			item.Name = "-"
		}
		if item.Active {
			out.Active++
		} else {
			out.Inactive++
		}
		out.Users = append(out.Users, item)
	}
	return out
}
