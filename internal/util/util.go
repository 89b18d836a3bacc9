package util

import (
	"github.com/berfenger/tec2mqtt/internal/config"

	"go.uber.org/zap"
)

func LoadTestConfig() config.Config {
	return config.Config{
		LogLevel: zap.DebugLevel,
		MQTT: config.MQTTConfig{
			Host:             "localhost",
			Port:             1883,
			BaseTopic:        "tec2mqtt",
			HADiscoveryTopic: "homeassistant",
		},
		ThermoElectric: config.ThermoElectricConfig{
			Device:               "ot15xx05",
			Stages:               30,
			InitialTc:            295,
			InitialTh:            295,
			TargetQc:             1.5,
			ConstantQc:           true,
			StatusIntervalMillis: 0,
		},
		Fields: config.FieldsConfig{
			Voltage:         "v",
			Current:         "i",
			ColdTemperature: "tc",
			HotTemperature:  "th",
		},
		Port: 8080,
	}
}
