/*
Package querystring protects URLs against tampering.

A [Signer] appends an HMAC-SHA256 digest of the path and querystring as an extra
query parameter. Verifying a URL recomputes the digest, so any edit to the
querystring after signing is detectable.

Time-limited URLs fold an expiry instant into the signed querystring with
[Signer.SignWithExpiry]; the stamp sits inside the signature, so it can be neither
stripped nor extended.
*/
package querystring
