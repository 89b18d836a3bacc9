package domain

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"

	"github.com/carlmjohnson/versioninfo"
)

const (
	SENSOR_ID_BRIDGE_STATE        = "bridge"
	SENSOR_ID_TEC_STATUS          = "status"
	SENSOR_ID_TEC_OPERATING_POINT = "operating_point"
	SENSOR_ID_TEC_COLD_TEMP       = "tec_cold_temperature"
	SENSOR_ID_TEC_HOT_TEMP        = "tec_hot_temperature"
	SENSOR_ID_TEC_AVG_TEMP        = "tec_average_temperature"
	SENSOR_ID_TEC_DELTA_TEMP      = "tec_delta_temperature"
	SENSOR_ID_TEC_APPLIED_CURRENT = "tec_applied_current"
	SENSOR_ID_TEC_APPLIED_VOLTAGE = "tec_applied_voltage"
	SENSOR_ID_TEC_QC              = "tec_qc"
	SENSOR_ID_TEC_POWER           = "tec_power"
	SENSOR_ID_TEC_IMAX            = "tec_imax"
	SENSOR_ID_TEC_IOPT            = "tec_iopt"
	SENSOR_ID_TEC_DESIRED_QC      = "tec_desired_qc"
	SENSOR_ID_TEC_CALCULATED_I    = "tec_calculated_current"
	SENSOR_ID_TEC_CALCULATED_V    = "tec_calculated_voltage"
	SENSOR_ID_TEC_RHO             = "tec_rho"
	SENSOR_ID_TEC_ALPHA           = "tec_alpha"
	SENSOR_ID_TEC_KAPPA           = "tec_kappa"
	SENSOR_ID_TEC_ZETA            = "tec_zeta"
	INPUT_NUMBER_ID_TARGET_QC     = "target_qc"
	SELECT_ID_DEVICE              = "device"
	STATE_CLASS_MEASUREMENT       = "measurement"
	DEVICE_CLASS_CURRENT          = "current"
	DEVICE_CLASS_POWER            = "power"
	DEVICE_CLASS_TEMPERATURE      = "temperature"
	DEVICE_CLASS_VOLTAGE          = "voltage"
	DEVICE_CLASS_CONNECTIVITY     = "connectivity"
	ENTITY_CLASS_DIAGNOSTIC       = "diagnostic"
	ENTITY_CLASS_CONFIG           = "config"
	SENSOR_TYPE_SENSOR            = "sensor"
	SENSOR_TYPE_BINARY            = "binary_sensor"
	INPUT_NUMBER_MODE_BOX         = "box"
)

func BridgeDevice(baseTopic string) DiscoveryDevice {
	return DiscoveryDevice{
		Id:           fmt.Sprintf("tec_bridge_%s", md5HashShort(baseTopic)),
		Manufacturer: "ACasal",
		Model:        "tec2mqtt",
		Version:      versioninfo.Short(),
		Name:         fmt.Sprintf("tec2mqtt %s", md5HashShort(baseTopic)),
	}
}

func ThermoElectricDevice(baseTopic string, device Device) DiscoveryDevice {
	return DiscoveryDevice{
		Id:           fmt.Sprintf("tec_%s", md5HashShort(baseTopic)),
		Manufacturer: "Laird",
		Model:        fmt.Sprintf("OptoTEC %s", device),
		Name:         fmt.Sprintf("TEC %s", md5HashShort(baseTopic)),
	}
}

func IdDevice(device DiscoveryDevice) DiscoveryDevice {
	return DiscoveryDevice{
		Id:   device.Id,
		Name: device.Name,
	}
}

func BridgeSensors(bridgeDevice DiscoveryDevice) []GenericSensor {
	return []GenericSensor{{
		Device:         bridgeDevice,
		Id:             SENSOR_ID_BRIDGE_STATE,
		SensorType:     SENSOR_TYPE_BINARY,
		Name:           "Connection state",
		DeviceClass:    DEVICE_CLASS_CONNECTIVITY,
		EntityCategory: ENTITY_CLASS_DIAGNOSTIC,
		UniqueId:       uniqueId(bridgeDevice.Id, SENSOR_ID_BRIDGE_STATE),
	}}
}

type sensorDef struct {
	id          string
	name        string
	unit        string
	deviceClass string
	icon        string
	diagnostic  bool
}

var thermoElectricSensorDefs = []sensorDef{
	{id: SENSOR_ID_TEC_COLD_TEMP, name: "Cold side temperature", unit: "K", deviceClass: DEVICE_CLASS_TEMPERATURE},
	{id: SENSOR_ID_TEC_HOT_TEMP, name: "Hot side temperature", unit: "K", deviceClass: DEVICE_CLASS_TEMPERATURE},
	{id: SENSOR_ID_TEC_AVG_TEMP, name: "Average temperature", unit: "K", deviceClass: DEVICE_CLASS_TEMPERATURE},
	{id: SENSOR_ID_TEC_DELTA_TEMP, name: "Temperature difference", unit: "K", icon: "mdi:thermometer-lines"},
	{id: SENSOR_ID_TEC_APPLIED_CURRENT, name: "Applied current", unit: "A", deviceClass: DEVICE_CLASS_CURRENT},
	{id: SENSOR_ID_TEC_APPLIED_VOLTAGE, name: "Applied voltage", unit: "V", deviceClass: DEVICE_CLASS_VOLTAGE},
	{id: SENSOR_ID_TEC_QC, name: "Pumped heat", unit: "W", deviceClass: DEVICE_CLASS_POWER},
	{id: SENSOR_ID_TEC_POWER, name: "Hot side heat", unit: "W", deviceClass: DEVICE_CLASS_POWER},
	{id: SENSOR_ID_TEC_IMAX, name: "Maximum current", unit: "A", deviceClass: DEVICE_CLASS_CURRENT},
	{id: SENSOR_ID_TEC_IOPT, name: "Optimum current", unit: "A", deviceClass: DEVICE_CLASS_CURRENT},
	{id: SENSOR_ID_TEC_DESIRED_QC, name: "Desired pumped heat", unit: "W", deviceClass: DEVICE_CLASS_POWER},
	{id: SENSOR_ID_TEC_CALCULATED_I, name: "Calculated current", unit: "A", deviceClass: DEVICE_CLASS_CURRENT},
	{id: SENSOR_ID_TEC_CALCULATED_V, name: "Calculated voltage", unit: "V", deviceClass: DEVICE_CLASS_VOLTAGE},
	{id: SENSOR_ID_TEC_RHO, name: "Resistivity", icon: "mdi:omega", diagnostic: true},
	{id: SENSOR_ID_TEC_ALPHA, name: "Seebeck coefficient", icon: "mdi:alpha", diagnostic: true},
	{id: SENSOR_ID_TEC_KAPPA, name: "Thermal conductance", icon: "mdi:kappa", diagnostic: true},
	{id: SENSOR_ID_TEC_ZETA, name: "Figure of merit", icon: "mdi:alpha-z", diagnostic: true},
}

func ThermoElectricSensors(tecDevice DiscoveryDevice) []GenericSensor {
	sensors := make([]GenericSensor, 0, len(thermoElectricSensorDefs))
	for _, def := range thermoElectricSensorDefs {
		sensor := GenericSensor{
			Device:            tecDevice,
			Id:                def.id,
			SensorType:        SENSOR_TYPE_SENSOR,
			Name:              def.name,
			StateClass:        STATE_CLASS_MEASUREMENT,
			DeviceClass:       def.deviceClass,
			UnitOfMeasurement: def.unit,
			Icon:              def.icon,
			UniqueId:          uniqueId(tecDevice.Id, def.id),
		}
		if def.diagnostic {
			sensor.EntityCategory = ENTITY_CLASS_DIAGNOSTIC
			sensor.EnabledByDefault = optionalBool(false)
		}
		sensors = append(sensors, sensor)
	}
	return sensors
}

func ThermoElectricInputNumbers(tecDevice DiscoveryDevice, targetQc float64) []GenericInputNumber {
	return []GenericInputNumber{{
		Device:            tecDevice,
		Id:                INPUT_NUMBER_ID_TARGET_QC,
		Name:              "Target pumped heat",
		UniqueId:          uniqueId(tecDevice.Id, INPUT_NUMBER_ID_TARGET_QC),
		Icon:              "mdi:snowflake-thermometer",
		UnitOfMeasurement: "W",
		Max:               100,
		Min:               -100,
		Step:              0.1,
		Mode:              INPUT_NUMBER_MODE_BOX,
		InitialValue:      targetQc,
	}}
}

func ThermoElectricSelects(tecDevice DiscoveryDevice) []GenericSelect {
	var options []string
	for _, d := range Devices() {
		options = append(options, d.String())
	}
	return []GenericSelect{{
		Device:   tecDevice,
		Id:       SELECT_ID_DEVICE,
		Name:     "Module model",
		UniqueId: uniqueId(tecDevice.Id, SELECT_ID_DEVICE),
		Icon:     "mdi:chip",
		Options:  options,
	}}
}

func uniqueId(baseId, id string) string {
	return fmt.Sprintf("uid_%s_%s", baseId, id)
}

func md5Hash(text string) string {
	hash := md5.Sum([]byte(text))
	return hex.EncodeToString(hash[:])
}

func md5HashShort(text string) string {
	hash := md5Hash(text)
	return hash[0:8]
}

func optionalBool(value bool) *bool {
	return &value
}
