package devnode

// DeviceEvent is one hotplug notification as supplied by the caller: a
// device name, the kernel major/minor pair, and environment-style
// attributes. Matching consults only this value; the real process
// environment never participates.
type DeviceEvent struct {
	Name  string            `json:"name"`
	Major uint8             `json:"major"`
	Minor uint8             `json:"minor"`
	Env   map[string]string `json:"env,omitempty"`
}
