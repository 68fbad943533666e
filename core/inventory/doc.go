// Package inventory loads the list of load balancers a report covers.
//
// The inventory is a JSON array:
//
//	[
//	  {"device": "lb01", "mgmt_ip": "10.0.0.10", "dc": "DC1", "tier": "web"},
//	  {"device": "lb02", "mgmt_ip": "10.0.0.11", "dc": "DC2", "tier": "app"}
//	]
//
// When no inventory file exists the configured gateway host is used as the
// only device.
package inventory
