package reconcile

import "strings"

// ParseDestination splits a virtual server destination such as
// "/Common/10.0.0.5%2:443" into its address and port. The partition prefix
// and route domain are dropped. IPv6 destinations use "addr.port".
func ParseDestination(destination string) (address, port string) {
	s := strings.TrimSpace(destination)
	if i := strings.LastIndex(s, "/"); i >= 0 {
		s = s[i+1:]
	}

	switch strings.Count(s, ":") {
	case 0:
		address = s
	case 1:
		i := strings.LastIndex(s, ":")
		address, port = s[:i], s[i+1:]
	default:
		address = s
		if i := strings.LastIndex(s, "."); i > strings.LastIndex(s, ":") {
			address, port = s[:i], s[i+1:]
		}
	}

	return StripRouteDomain(address), port
}

// StripRouteDomain removes a "%id" route domain suffix from an address.
func StripRouteDomain(address string) string {
	if i := strings.Index(address, "%"); i >= 0 {
		return address[:i]
	}
	return address
}
