package responses

type LoginUser struct {
	ID    string `json:"id,omitempty"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

type LoginData struct {
	AccessToken  string     `json:"accessToken"`
	ExpiresIn    int        `json:"expires_in,omitempty"`
	TokenType    string     `json:"token_type,omitempty"`
	RefreshToken string     `json:"refresh_token,omitempty"`
	User         *LoginUser `json:"user,omitempty"`
}

type Login = APIResponse[LoginData]
