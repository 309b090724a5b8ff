package session

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Fixed keys under which the backend credential is stored. The token is
// written only by a successful login or register; a failed attempt leaves
// whatever was stored before untouched.
const (
	accessToken = "ACCESS_TOKEN"
	loginUser   = "LOGIN_USER"
)

// SetToken stores the bearer token and the username it was issued for.
func SetToken(c *gin.Context, token string, username string) error {
	s := sessions.Default(c)
	s.Set(accessToken, token)
	s.Set(loginUser, username)
	return s.Save()
}

// SetMaxAge bounds the session cookie lifetime. Zero keeps the cookie for
// the browser session only.
func SetMaxAge(c *gin.Context, maxAge int) error {
	s := sessions.Default(c)
	s.Options(sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
	})
	return s.Save()
}

// GetToken returns the stored bearer token, or "" when not logged in.
// An empty token is not an error; the backend decides authorization.
func GetToken(c *gin.Context) string {
	s := sessions.Default(c)
	if obj := s.Get(accessToken); obj != nil {
		if token, ok := obj.(string); ok {
			return token
		}
	}
	return ""
}

// GetUsername returns the username the stored token was issued for.
func GetUsername(c *gin.Context) string {
	s := sessions.Default(c)
	if obj := s.Get(loginUser); obj != nil {
		if username, ok := obj.(string); ok {
			return username
		}
	}
	return ""
}

func IsLogin(c *gin.Context) bool {
	return GetToken(c) != ""
}

// ClearSession drops the stored token. This is the logout path; nothing
// else ever removes the credential.
func ClearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: -1,
	})
	return s.Save()
}
