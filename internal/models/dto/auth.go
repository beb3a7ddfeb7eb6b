package dto

// SignupRequest is the JSON body accepted by POST /signup.
type SignupRequest struct {
	Email    string  `json:"email"`
	Username *string `json:"username"`
	Phone    *string `json:"phone"`
	Password string  `json:"password"`
}

// Token is the OAuth2-shaped response returned by POST /token.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
