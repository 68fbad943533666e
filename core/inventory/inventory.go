package inventory

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// ErrNotFound is returned by Find for an unknown device.
var ErrNotFound = errors.New("device not found in inventory")

// Device is one load balancer of the inventory.
type Device struct {
	Name       string `json:"device"`
	MgmtIP     string `json:"mgmt_ip"`
	DataCenter string `json:"dc"`
	Tier       string `json:"tier"`
}

// Host returns the address used to reach the device.
func (d Device) Host() string {
	if d.MgmtIP != "" {
		return d.MgmtIP
	}
	return d.Name
}

// Label returns the name shown in reports.
func (d Device) Label() string {
	if d.Name != "" {
		return d.Name
	}
	return d.MgmtIP
}

// Inventory is an ordered list of devices.
type Inventory []Device

// Load reads a JSON array of devices from path. Entries without any address
// are skipped with a warning.
func Load(path string, logger *zap.Logger) (Inventory, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory: %w", err)
	}

	var raw []Device
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse inventory %s: %w", path, err)
	}

	inv := make(Inventory, 0, len(raw))
	for i, d := range raw {
		d.Name = strings.TrimSpace(d.Name)
		d.MgmtIP = strings.TrimSpace(d.MgmtIP)
		if d.Host() == "" {
			logger.Warn("Skipping inventory entry without device or mgmt_ip", zap.Int("index", i))
			continue
		}
		inv = append(inv, d)
	}
	return inv, nil
}

// Resolve loads the inventory at path, or falls back to a single device for
// host when path is empty or does not exist.
func Resolve(path, host string, logger *zap.Logger) (Inventory, error) {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return Load(path, logger)
		}
	}
	host = strings.TrimSpace(host)
	if host == "" {
		return nil, fmt.Errorf("no inventory at %q and no gateway host configured", path)
	}
	return Inventory{{Name: host, MgmtIP: host}}, nil
}

// Find returns the device whose name or management address equals name.
func (inv Inventory) Find(name string) (Device, error) {
	for _, d := range inv {
		if d.Name == name || d.MgmtIP == name {
			return d, nil
		}
	}
	return Device{}, fmt.Errorf("%w: %s", ErrNotFound, name)
}
