// Package password generates and validates plaintext passwords.
//
// [Secure] produces cryptographically unpredictable passwords from an
// alphanumeric-plus-symbol character set. Symbols that break shell quoting
// or collide with the crypt(3) "$" field delimiter are excluded by contract,
// so a generated password can be passed through provisioning pipelines
// without escaping:
//
//	! @ # $ % ^ & * ( ) _ = +
//
// [Validate] applies a minimal strength [Policy]; callers wanting entropy or
// character-class rules should layer their own checks on top.
package password
