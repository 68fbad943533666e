// Package config loads lb-status settings from the environment.
//
// A .env file in the given directory is loaded first and overrides the
// process environment. Every key has a default declared on its struct tag;
// nested keys map to upper-case variables joined by underscores, so
// gateway.verify_ssl is read from GATEWAY_VERIFY_SSL. API_USERNAME and
// API_PASSWORD are accepted for the gateway credentials.
//
// # Sections
//
//   - Server: HTTP port, API key, report timeout
//   - Gateway: management host, credentials, auth scheme, TLS, inventory path
//   - Report: output directory, format, CSV delimiter, archive and history switches
//   - Storage: S3/MinIO archive bucket
//   - Database: history database
//   - Log: level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Gateway.Host)
package config
