package dto

type SessionRequestDTO struct {
	Token string `json:"token" example:"discord-oauth-token"`
}

type SessionResponseDTO struct {
	SessionToken string `json:"session_token"`
	User         string `json:"user" example:"raven#1337"`
	FullAccess   bool   `json:"full_access" example:"true"`
}
