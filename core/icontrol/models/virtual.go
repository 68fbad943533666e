package models

// VirtualList is the top level json returned by the /mgmt/tm/ltm/virtual endpoint.
type VirtualList struct {
	Items []Virtual `json:"items"`
}

// Virtual holds the properties of a single virtual server definition.
type Virtual struct {
	Name        string `json:"name"`
	FullPath    string `json:"fullPath"`
	Partition   string `json:"partition"`
	Description string `json:"description,omitempty"`
	// Destination is the raw "/Partition/addr%rd:port" string.
	Destination string `json:"destination"`
	// Pool is the pool reference, usually a full path. Empty when no pool is attached.
	Pool     string `json:"pool,omitempty"`
	SelfLink string `json:"selfLink,omitempty"`
}
