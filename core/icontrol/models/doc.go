// Package models contains the JSON shapes returned by the load balancer's
// iControl REST management API: object listings ({"items": [...]}) and
// statistics ({"entries": {...}}).
package models
