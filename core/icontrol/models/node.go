package models

// NodeList is the top level json returned by the /mgmt/tm/ltm/node endpoint.
type NodeList struct {
	Items []Node `json:"items"`
}

// Node holds the properties of a single node definition.
type Node struct {
	Name      string `json:"name"`
	FullPath  string `json:"fullPath"`
	Partition string `json:"partition"`
	Address   string `json:"address"`
}
