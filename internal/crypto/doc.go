// Package crypto exposes the digest used to fingerprint stack arrangements.
//
// Contents
//
//   - Short fingerprints of arbitrary bytes for display (Fingerprint)
//   - A canonical byte encoding of a stack set (Arrangement)
//   - A domain.Fingerprinter over that encoding (Stacks)
//
// # Notes
//
// Fingerprints identify runs at a glance; they are not integrity checks.
package crypto
