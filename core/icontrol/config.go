package icontrol

const (
	// AuthToken logs in once and sends X-F5-Auth-Token on every request.
	AuthToken = "token"
	// AuthBasic sends HTTP basic credentials on every request.
	AuthBasic = "basic"
)

// Config holds configuration for the management API gateway.
type Config struct {
	// Host is the management address used when no inventory is configured.
	Host string `mapstructure:"host" default:""`
	// Username is the API user.
	Username string `mapstructure:"username" default:""`
	// Password is the API user's password.
	Password string `mapstructure:"password" default:""`
	// Auth selects the authentication scheme (token, basic).
	Auth string `mapstructure:"auth" default:"token"`
	// LoginProvider is sent as loginProviderName when requesting a token.
	LoginProvider string `mapstructure:"login_provider" default:"tmos"`
	// VerifySSL enables certificate verification.
	VerifySSL bool `mapstructure:"verify_ssl" default:"false"`
	// TimeoutSeconds bounds every single request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// Inventory is the path of the device inventory file.
	Inventory string `mapstructure:"inventory" default:"inventory.json"`
}

// IsValidAuth checks if the configured auth scheme is supported.
func (c Config) IsValidAuth() bool {
	switch c.Auth {
	case AuthToken, AuthBasic:
		return true
	default:
		return false
	}
}
