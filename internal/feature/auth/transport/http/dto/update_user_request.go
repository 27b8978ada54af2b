package dto

// UpdateUserReq represents the request body for the /user/update-user
// endpoint. All profile fields are required on update.
type UpdateUserReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	LastName string `json:"lastName" binding:"required"`
	Location string `json:"location" binding:"required"`
}
