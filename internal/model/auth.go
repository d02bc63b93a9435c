package model

// AuthData - tokens handed out after register, login or refresh
type AuthData struct {
	AccessToken  string
	RefreshToken string
	SessionID    string
}
