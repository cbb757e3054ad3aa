package service

import (
	"context"

	"github.com/MKhiriev/go-forms-auth/internal/logger"
)

const logPluginName = "log"

type logDeliveryPlugin struct {
	logger *logger.Logger
}

// NewLogDeliveryPlugin writes reset tokens to the server log. Meant for
// development environments without a message broker.
func NewLogDeliveryPlugin(logger *logger.Logger) DeliveryPlugin {
	return &logDeliveryPlugin{logger: logger}
}

func (p *logDeliveryPlugin) Name() string {
	return logPluginName
}

func (p *logDeliveryPlugin) SendPasswordResetToken(_ context.Context, userName string, additionalClientInfo map[string]string, token string) error {
	event := p.logger.Info().
		Str("func", "*logDeliveryPlugin.SendPasswordResetToken").
		Str("user_name", userName).
		Str("token", token)

	if len(additionalClientInfo) > 0 {
		event = event.Interface("client_info", additionalClientInfo)
	}

	event.Msg("password reset token issued")
	return nil
}
