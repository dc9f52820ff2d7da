// Package token generates and compares the secrets handed out by the emulator.
//
// Access keys returned by listKeys and regenerateKey are produced with
// crypto/rand and encoded the way Azure encodes shared keys (standard
// base64 of 32 random bytes):
//
//	key, err := token.Generate()
//	if err != nil {
//	    return fmt.Errorf("failed to generate key: %w", err)
//	}
//
// Bearer tokens are compared with Equal, which runs in constant time and
// does not leak the length of the expected value:
//
//	if !token.Equal(provided, configured) {
//	    // reject
//	}
//
// Keys are never logged. Use Fingerprint when a log line needs to tell two
// keys apart.
package token
