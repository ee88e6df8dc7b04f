package mappings

// Timing bounds in milliseconds.
const (
	MinDebounceTime = 10
	MaxDebounceTime = 500

	MinComboWindow = 100
	MaxComboWindow = 5000
)

// DefaultFileName is the name the device firmware looks for on the boot volume.
const DefaultFileName = "mappings.toml"

// DeviceName identifies the peripheral in snapshots and CLI output.
const DeviceName = "DK-BASIC"
