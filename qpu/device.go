package qpu

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/common"
	"go.uber.org/zap"
)

const (
	LOCAL_DEVICE_NAME  = "local_statevector"
	DEFAULT_MAX_QUBITS = 20
	DEFAULT_MAX_SHOTS  = 1000000
)

// DeviceSetting configures the local simulator.
type DeviceSetting struct {
	DeviceName string `toml:"device_name"`
	MaxQubits  int    `toml:"max_qubits"`
	MaxShots   int    `toml:"max_shots"`
	Seed       int64  `toml:"seed"`
}

func LoadDeviceSetting(path string) (*DeviceSetting, error) {
	blob, assetErr := common.ReadFile(path)
	ds := NewDeviceSetting()
	if assetErr != nil {
		zap.L().Info(fmt.Sprintf("Failed to read file:%s Reason:%s", path, assetErr))
		return ds, nil
	}
	if _, err := toml.Decode(blob, ds); err != nil {
		zap.L().Error(fmt.Sprintf("failed to decode blob:%s", blob))
		return &DeviceSetting{}, err
	}
	if ds.MaxQubits <= 0 || ds.MaxShots <= 0 {
		return &DeviceSetting{}, fmt.Errorf("max_qubits and max_shots must be positive/max_qubits:%d/max_shots:%d",
			ds.MaxQubits, ds.MaxShots)
	}
	return ds, nil
}

func NewDeviceSetting() *DeviceSetting {
	return &DeviceSetting{
		DeviceName: LOCAL_DEVICE_NAME,
		MaxQubits:  DEFAULT_MAX_QUBITS,
		MaxShots:   DEFAULT_MAX_SHOTS,
	}
}
