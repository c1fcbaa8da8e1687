package dto

type TechnicianCreateRequest struct {
	Name        Text   `json:"name" validate:"required"`
	PhoneNumber Text   `json:"phoneNumber" validate:"required"`
	Team        Text   `json:"team" validate:"required"`
	LoginID     Text   `json:"id" validate:"required"`
	Password    string `json:"password" validate:"required"`
}

// TechnicianUpdateRequest keeps the stored password when Password is empty.
type TechnicianUpdateRequest struct {
	ID          string `json:"_id"`
	Name        Text   `json:"name" validate:"required"`
	PhoneNumber Text   `json:"phoneNumber" validate:"required"`
	Team        Text   `json:"team" validate:"required"`
	LoginID     Text   `json:"id" validate:"required"`
	Password    string `json:"password"`
}

type LoginRequest struct {
	ID       string `json:"id"`
	Password string `json:"password"`
}

type LoginResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Team        string `json:"team"`
	AccessToken string `json:"accessToken"`
}
