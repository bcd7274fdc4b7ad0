package auth

// Config holds authentication settings. The signing secret is mandatory:
// config loading fails without it and the process must not start.
type Config struct {
	// SigningSecret signs every session token.
	SigningSecret string `env:"JWT_SECRET,required"`
	// TokenHeader is the request header carrying the token.
	TokenHeader string `env:"AUTH_TOKEN_HEADER" envDefault:"X-Auth-Token"`
}
