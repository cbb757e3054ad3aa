package config

import (
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the server command-line flags from args (without the
// program name).
//
// Flags:
//
//	-a, --address            HTTP server address in format [host]:[port]
//	-d, --database-dsn       database DSN
//	-c, --config             JSON config file path
//	    --token-sign-key     token signing key
//	    --token-issuer       token issuer name
//	    --session-duration   session token lifetime (e.g. "24h")
//	    --reset-token-duration password reset token lifetime (e.g. "24h")
//	    --request-timeout    request timeout (e.g. "30s")
//	    --base-route         path prefix of the authentication API
//	    --redis-addr         Redis address; empty keeps caches in memory
//	    --amqp-url           RabbitMQ URL of the "amqp" delivery plugin
//	    --delivery           enabled delivery plugins (comma separated)
//	    --log-level          minimal log level
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := pflag.NewFlagSet("forms-auth-server", pflag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN, jsonConfigPath string
	var tokenSignKey, tokenIssuer string
	var sessionDuration, resetTokenDuration, requestTimeout time.Duration
	var baseRoute, redisAddr, amqpURL, logLevel string
	var plugins []string

	fs.VarP(&serverAddress, "address", "a", "Net address host:port")
	fs.StringVarP(&databaseDSN, "database-dsn", "d", "", "Database DSN")
	fs.StringVarP(&jsonConfigPath, "config", "c", "", "JSON config file path")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&sessionDuration, "session-duration", 0, "Session token lifetime (e.g. 24h)")
	fs.DurationVar(&resetTokenDuration, "reset-token-duration", 0, "Password reset token lifetime (e.g. 24h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g. 30s)")
	fs.StringVar(&baseRoute, "base-route", "", "Path prefix of the authentication API")
	fs.StringVar(&redisAddr, "redis-addr", "", "Redis address host:port")
	fs.StringVar(&amqpURL, "amqp-url", "", "RabbitMQ URL for the amqp delivery plugin")
	fs.StringSliceVar(&plugins, "delivery", nil, "Enabled delivery plugins (amqp, log)")
	fs.StringVar(&logLevel, "log-level", "", "Minimal log level")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:       tokenSignKey,
			TokenIssuer:        tokenIssuer,
			SessionDuration:    sessionDuration,
			ResetTokenDuration: resetTokenDuration,
			LogLevel:           logLevel,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Redis: Redis{Addr: redisAddr},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			BaseRoute:      baseRoute,
		},
		Delivery: Delivery{
			Plugins: plugins,
			AMQP:    AMQP{URL: amqpURL},
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty (all interfaces).
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
