// Package auth carries the bridge's bearer credential.
//
// The bridge authenticates with a static personal access token. The token is wrapped
// as an oauth2.TokenSource so the remote client can attach it with an oauth2 transport;
// when the token happens to be a JWT its expiry can be inspected to warn early.
package auth
