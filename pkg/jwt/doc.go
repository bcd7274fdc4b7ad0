// Package jwt implements HMAC-SHA256 signed bearer tokens (RFC 7519) for
// stateless claim transport.
//
// The codec is deliberately minimal: it signs and verifies arbitrary
// JSON-serializable claims with a process-wide secret and performs no
// temporal validation of its own. Session revocation in this application is
// handled entirely by the token index, not by expiry claims; claim types may
// still opt into validation by implementing `Valid() error`.
//
// # Usage
//
//	svc, err := jwt.NewFromString(cfg.SigningSecret)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	token, err := svc.Generate(myClaims)
//
//	var claims MyClaims
//	if err := svc.Parse(token, &claims); err != nil {
//	    // signature mismatch, malformed token, or rejected claims
//	}
//
// Signing is synchronous, pure, and side-effect free.
package jwt
