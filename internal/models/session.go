package models

// LoginCredentials are posted to /auth/login
type LoginCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterData is posted to /auth/register
type RegisterData struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Bio      string `json:"bio,omitempty"`
	Avatar   *Media `json:"avatar,omitempty"`
	Banner   *Media `json:"banner,omitempty"`
}

// AuthUser is the data block of a login or register response
type AuthUser struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Bio         string `json:"bio,omitempty"`
	Avatar      *Media `json:"avatar,omitempty"`
	Banner      *Media `json:"banner,omitempty"`
	AccessToken string `json:"accessToken,omitempty"`
}

// User is the cached user snapshot kept alongside the session token.
// Credits is zero until a profile refresh or a degraded default fills it in.
type User struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Bio     string `json:"bio,omitempty"`
	Avatar  *Media `json:"avatar,omitempty"`
	Banner  *Media `json:"banner,omitempty"`
	Credits int    `json:"credits,omitempty"`
}

// UserFromAuth builds the cached snapshot from an auth response
func UserFromAuth(a AuthUser) User {
	return User{
		Name:   a.Name,
		Email:  a.Email,
		Bio:    a.Bio,
		Avatar: a.Avatar,
		Banner: a.Banner,
	}
}

// APIKey is the data block of /auth/create-api-key
type APIKey struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Key    string `json:"key"`
}

// Session is the persisted client session. All three fields are written and
// cleared as a unit.
type Session struct {
	AccessToken string
	APIKey      string
	User        *User
}

// Empty reports whether no field of the session is set
func (s Session) Empty() bool {
	return s.AccessToken == "" && s.APIKey == "" && s.User == nil
}
