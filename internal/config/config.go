package config

import (
	"errors"
	"regexp"
	"strings"

	"go.uber.org/zap/zapcore"
)

type Config struct {
	LogLevel       zapcore.Level        `yaml:"log_level"`
	MQTT           MQTTConfig           `mapstructure:"mqtt" yaml:"mqtt"`
	ThermoElectric ThermoElectricConfig `mapstructure:"thermoelectric" yaml:"thermoelectric"`
	Fields         FieldsConfig         `mapstructure:"fields" yaml:"fields"`
	Port           uint                 `mapstructure:"port" yaml:"port"`
	HttpLog        bool                 `mapstructure:"http_log" yaml:"http_log"`
}

type ThermoElectricConfig struct {
	Device               string  `mapstructure:"device" yaml:"device"`
	Stages               int     `mapstructure:"stages" yaml:"stages"`
	InitialTc            float64 `mapstructure:"initial_tc" yaml:"initial_tc"`
	InitialTh            float64 `mapstructure:"initial_th" yaml:"initial_th"`
	TargetQc             float64 `mapstructure:"target_qc" yaml:"target_qc"`
	ConstantQc           bool    `mapstructure:"constant_qc" yaml:"constant_qc"`
	StatusIntervalMillis uint32  `mapstructure:"status_interval_millis" yaml:"status_interval_millis"`
}

// FieldsConfig names the payload fields carrying each value in inbound updates.
type FieldsConfig struct {
	Voltage         string `mapstructure:"voltage" yaml:"voltage"`
	Current         string `mapstructure:"current" yaml:"current"`
	ColdTemperature string `mapstructure:"cold_temperature" yaml:"cold_temperature"`
	HotTemperature  string `mapstructure:"hot_temperature" yaml:"hot_temperature"`
}

type MQTTConfig struct {
	Host              string `yaml:"host"`
	Port              int    `yaml:"port"`
	Username          string `yaml:"username"`
	Password          string `yaml:"password"`
	BaseTopic         string `mapstructure:"base_topic" yaml:"base_topic"`
	HADiscoveryEnable bool   `mapstructure:"ha_discovery_enable" yaml:"ha_discovery_enable"`
	HADiscoveryTopic  string `mapstructure:"ha_discovery_topic" yaml:"ha_discovery_topic"`
}

func CheckMQTTTopic(baseTopic string) (string, error) {
	// check and fix base topic
	lowerBaseTopic := strings.ToLower(baseTopic)
	baseTopicRegexp := regexp.MustCompile("^[a-z0-9_]+$")
	matches := baseTopicRegexp.FindAllStringSubmatch(lowerBaseTopic, 1)
	if len(matches) <= 0 {
		return "", errors.New("invalid topic. can only contain letters, numbers and underscores")
	}
	return lowerBaseTopic, nil
}
