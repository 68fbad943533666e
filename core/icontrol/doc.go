// Package icontrol is a minimal client for the iControl REST management API
// of a load balancer.
//
// It fetches the virtual server, pool and node listings together with their
// statistics, and the member listing of each pool. Every call is a single
// attempt bounded by the configured timeout; non-2xx answers are returned as
// *StatusError.
//
// # Authentication
//
// With token auth (the default) Login posts the credentials to
// /mgmt/shared/authn/login and the returned token is sent in the
// X-F5-Auth-Token header. With basic auth every request carries the
// credentials and Login does nothing.
//
// # Usage
//
//	client, err := icontrol.NewClient(cfg.Gateway, "10.0.0.10")
//	if err != nil {
//	    return err
//	}
//	if err := client.Login(ctx); err != nil {
//	    return err
//	}
//	result, err := reconcile.ReconcileAll(ctx, &reconcile.Spec{Source: client})
package icontrol
