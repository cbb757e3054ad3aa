package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON configuration file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey       string   `json:"token_sign_key"`
		TokenIssuer        string   `json:"token_issuer"`
		SessionDuration    Duration `json:"session_duration"`
		ResetTokenDuration Duration `json:"reset_token_duration"`
		LogLevel           string   `json:"log_level"`
		Version            string   `json:"version"`
	} `json:"app,omitempty"`

	Auth struct {
		MaxFailedAttempts int      `json:"max_failed_attempts"`
		LockoutDuration   Duration `json:"lockout_duration"`
		ClaimCacheTTL     Duration `json:"claim_cache_ttl"`
		AdminUserName     string   `json:"admin_user_name"`
		AdminRoleName     string   `json:"admin_role_name"`
		PasswordPolicy    struct {
			Enabled                bool `json:"enabled"`
			RequiredLength         int  `json:"required_length"`
			RequireDigit           bool `json:"require_digit"`
			RequireLowercase       bool `json:"require_lowercase"`
			RequireUppercase       bool `json:"require_uppercase"`
			RequireNonAlphanumeric bool `json:"require_non_alphanumeric"`
		} `json:"password_policy"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Redis struct {
			Addr     string `json:"addr"`
			Password string `json:"password"`
			DB       int    `json:"db"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		BaseRoute      string   `json:"base_route"`
		CookieName     string   `json:"cookie_name"`
		SecureCookie   bool     `json:"secure_cookie"`
		TrustProxy     bool     `json:"trust_proxy_headers"`
		RateLimit      struct {
			PerSecond float64 `json:"per_second"`
			Burst     int     `json:"burst"`
		} `json:"rate_limit"`
	} `json:"server,omitempty"`

	Delivery struct {
		Plugins []string `json:"plugins"`
		AMQP    struct {
			URL   string `json:"url"`
			Queue string `json:"queue"`
		} `json:"amqp"`
	} `json:"delivery,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	policy := jsonCfg.Auth.PasswordPolicy

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:       jsonCfg.App.TokenSignKey,
			TokenIssuer:        jsonCfg.App.TokenIssuer,
			SessionDuration:    time.Duration(jsonCfg.App.SessionDuration),
			ResetTokenDuration: time.Duration(jsonCfg.App.ResetTokenDuration),
			LogLevel:           jsonCfg.App.LogLevel,
			Version:            jsonCfg.App.Version,
		},
		Auth: Auth{
			MaxFailedAttempts: jsonCfg.Auth.MaxFailedAttempts,
			LockoutDuration:   time.Duration(jsonCfg.Auth.LockoutDuration),
			ClaimCacheTTL:     time.Duration(jsonCfg.Auth.ClaimCacheTTL),
			AdminUserName:     jsonCfg.Auth.AdminUserName,
			AdminRoleName:     jsonCfg.Auth.AdminRoleName,
			PasswordPolicy: PasswordPolicy{
				Enabled:                policy.Enabled,
				RequiredLength:         policy.RequiredLength,
				RequireDigit:           policy.RequireDigit,
				RequireLowercase:       policy.RequireLowercase,
				RequireUppercase:       policy.RequireUppercase,
				RequireNonAlphanumeric: policy.RequireNonAlphanumeric,
			},
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Redis: Redis{
				Addr:     jsonCfg.Storage.Redis.Addr,
				Password: jsonCfg.Storage.Redis.Password,
				DB:       jsonCfg.Storage.Redis.DB,
			},
		},
		Server: Server{
			HTTPAddress:       jsonCfg.Server.HTTPAddress,
			RequestTimeout:    time.Duration(jsonCfg.Server.RequestTimeout),
			BaseRoute:         jsonCfg.Server.BaseRoute,
			CookieName:        jsonCfg.Server.CookieName,
			SecureCookie:      jsonCfg.Server.SecureCookie,
			TrustProxyHeaders: jsonCfg.Server.TrustProxy,
			RateLimit: RateLimit{
				PerSecond: jsonCfg.Server.RateLimit.PerSecond,
				Burst:     jsonCfg.Server.RateLimit.Burst,
			},
		},
		Delivery: Delivery{
			Plugins: jsonCfg.Delivery.Plugins,
			AMQP: AMQP{
				URL:   jsonCfg.Delivery.AMQP.URL,
				Queue: jsonCfg.Delivery.AMQP.Queue,
			},
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
