package domain

// GoogleUserInfo is the verified identity extracted from a Google ID token.
type GoogleUserInfo struct {
	GoogleID   string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	PictureURL string `json:"picture"`
}
