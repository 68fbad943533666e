package models

// PoolList is the top level json returned by the /mgmt/tm/ltm/pool endpoint.
type PoolList struct {
	Items []Pool `json:"items"`
}

// Pool holds the properties of a single pool definition.
type Pool struct {
	Name      string `json:"name"`
	FullPath  string `json:"fullPath"`
	Partition string `json:"partition"`
	Monitor   string `json:"monitor,omitempty"`
	// MembersReference links to the live member listing of the pool.
	MembersReference Reference `json:"membersReference,omitempty"`
}

// Reference is an iControl REST sub-collection link.
type Reference struct {
	Link            string `json:"link,omitempty"`
	IsSubcollection bool   `json:"isSubcollection,omitempty"`
}

// MemberList is the top level json returned by a pool's members endpoint.
type MemberList struct {
	Items []Member `json:"items"`
}

// Member holds the properties of a single pool member.
type Member struct {
	// Name is usually "address:port".
	Name    string `json:"name"`
	Address string `json:"address"`
	// Port is a number on most versions, a string on some.
	Port    any    `json:"port,omitempty"`
	State   string `json:"state,omitempty"`
	Session string `json:"session,omitempty"`
}
