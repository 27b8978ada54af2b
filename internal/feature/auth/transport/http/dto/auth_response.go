package dto

import "jobboard_backend/internal/feature/auth/domain/entity"

// UserView is the serializable subset of a user. The password hash never
// appears here.
type UserView struct {
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	Email    string `json:"email"`
	Location string `json:"location"`
}

// AuthResponse pairs a user view with a signed token. It is returned by
// register, login and profile update.
type AuthResponse struct {
	User  UserView `json:"user"`
	Token string   `json:"token"`
}

// NewAuthResponse builds an AuthResponse from a user entity and token.
func NewAuthResponse(u *entity.User, token string) AuthResponse {
	return AuthResponse{
		User: UserView{
			Name:     u.Name,
			LastName: u.LastName,
			Email:    u.Email,
			Location: u.Location,
		},
		Token: token,
	}
}
