package service

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-forms-auth/internal/config"
	"github.com/MKhiriev/go-forms-auth/internal/logger"
	"github.com/MKhiriev/go-forms-auth/internal/utils"
)

// NewDeliveryPlugins builds the delivery plugins enabled in cfg, in the
// configured order. Unknown names are rejected by config validation.
func NewDeliveryPlugins(cfg config.Delivery, clock utils.Clock, logger *logger.Logger) []DeliveryPlugin {
	plugins := make([]DeliveryPlugin, 0, len(cfg.Plugins))
	for _, name := range cfg.Plugins {
		switch name {
		case amqpPluginName:
			plugins = append(plugins, NewAMQPDeliveryPlugin(cfg.AMQP, clock, logger))
		case logPluginName:
			plugins = append(plugins, NewLogDeliveryPlugin(logger))
		}
	}
	return plugins
}

// resolveDeliveryPlugin returns the only registered plugin. Zero or several
// plugins is a deployment error.
func resolveDeliveryPlugin(plugins []DeliveryPlugin) (DeliveryPlugin, error) {
	switch len(plugins) {
	case 0:
		return nil, &FrameworkError{Message: msgDeliveryNotEnabled, Err: ErrDeliveryNotEnabled}
	case 1:
		return plugins[0], nil
	}

	names := make([]string, 0, len(plugins))
	for _, plugin := range plugins {
		names = append(names, plugin.Name())
	}

	return nil, &FrameworkError{
		Message: fmt.Sprintf(msgDeliveryAmbiguous, strings.Join(names, ", ")),
		Err:     ErrDeliveryAmbiguous,
	}
}
