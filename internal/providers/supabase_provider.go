package providers

import (
	"errors"
	"github.com/golang-jwt/jwt/v5"
	"net/url"
	"scoreboard/internal/structures"
	"strings"
	"time"
)

var ErrMissingSupabaseConfig = errors.New("missing Supabase environment variables: SUPABASE_URL and SUPABASE_ANON_KEY are required")

// NewSupabaseCredentials resolves the REST endpoint and key. It fails before
// anything can talk to Supabase when either value is missing.
func NewSupabaseCredentials(conf *structures.Config, logger Logger) (*structures.SupabaseCredentials, error) {
	base := strings.TrimSpace(conf.Supabase.Url)
	key := strings.TrimSpace(conf.Supabase.AnonKey)
	if base == "" || key == "" {
		return nil, ErrMissingSupabaseConfig
	}

	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errors.New("invalid Supabase URL: " + base)
	}

	inspectApiKey(key, logger)

	return &structures.SupabaseCredentials{
		RestUrl: strings.TrimRight(base, "/") + "/rest/v1",
		ApiKey:  key,
		Schema:  conf.Supabase.Schema,
	}, nil
}

// inspectApiKey warns about keys that Supabase will reject. The signature
// cannot be checked client side.
func inspectApiKey(key string, logger Logger) {
	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(key, claims)
	if err != nil {
		logger.Warnf(TypeApp, "Supabase key is not a JWT: %s", err)
		return
	}
	if role, _ := claims["role"].(string); role != "" {
		logger.Debugf(TypeApp, "Supabase key role: %s", role)
	}
	exp, err := claims.GetExpirationTime()
	if err == nil && exp != nil && exp.Before(time.Now()) {
		logger.Warnf(TypeApp, "Supabase key expired at %s", exp.Format(time.RFC3339))
	}
}
