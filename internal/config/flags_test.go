package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NetAddress
		wantErr bool
	}{
		{name: "localhost", input: "localhost:8080", want: NetAddress{Host: "localhost", Port: 8080}},
		{name: "ipv4", input: "127.0.0.1:9000", want: NetAddress{Host: "127.0.0.1", Port: 9000}},
		{name: "all interfaces", input: ":8080", want: NetAddress{Port: 8080}},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "non-numeric port", input: "localhost:http", wantErr: true},
		{name: "zero port", input: "localhost:0", wantErr: true},
		{name: "port out of range", input: "localhost:70000", wantErr: true},
		{name: "bad host", input: "not-an-ip:8080", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestNetAddress_String(t *testing.T) {
	assert.Equal(t, "", (&NetAddress{}).String())
	assert.Equal(t, "localhost:8080", (&NetAddress{Host: "localhost", Port: 8080}).String())
	assert.Equal(t, ":8080", (&NetAddress{Port: 8080}).String())
}

func TestParseFlags(t *testing.T) {
	// Arrange
	args := []string{
		"-a", "localhost:8081",
		"-d", "postgres://localhost/auth",
		"--config", "/tmp/cfg.json",
		"--token-sign-key", "k",
		"--session-duration", "1h",
		"--request-timeout", "5s",
		"--redis-addr", "localhost:6379",
		"--delivery", "log",
	}

	// Act
	cfg, err := ParseFlags(args)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://localhost/auth", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/cfg.json", cfg.JSONFilePath)
	assert.Equal(t, "k", cfg.App.TokenSignKey)
	assert.Equal(t, time.Hour, cfg.App.SessionDuration)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "localhost:6379", cfg.Storage.Redis.Addr)
	assert.Equal(t, []string{"log"}, cfg.Delivery.Plugins)
}

func TestParseFlags_Invalid(t *testing.T) {
	tests := [][]string{
		{"-a", "nonsense"},
		{"--session-duration", "forever"},
		{"--unknown-flag"},
	}

	for _, args := range tests {
		_, err := ParseFlags(args)
		assert.Error(t, err, args)
	}
}
