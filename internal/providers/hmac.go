package providers

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"strings"
)

// SignHex returns the lowercase hex HMAC-SHA256 of body keyed by secret.
func SignHex(secret string, body []byte) string {
	return hex.EncodeToString(computeHMAC(secret, body))
}

// VerifyHex reports whether signature is the lowercase hex HMAC-SHA256 of body.
func VerifyHex(secret string, body []byte, signature string) bool {
	if secret == "" || signature == "" {
		return false
	}
	return equalSignature(SignHex(secret, body), signature)
}

// SignBase64 returns prefix followed by the standard base64 HMAC-SHA256 of body.
func SignBase64(secret string, body []byte, prefix string) string {
	return prefix + base64.StdEncoding.EncodeToString(computeHMAC(secret, body))
}

// VerifyBase64 reports whether signature is exactly prefix followed by the
// standard base64 HMAC-SHA256 of body.
func VerifyBase64(secret string, body []byte, signature, prefix string) bool {
	if secret == "" || signature == "" {
		return false
	}
	if !strings.HasPrefix(signature, prefix) {
		return false
	}
	return equalSignature(SignBase64(secret, body, prefix), signature)
}

func computeHMAC(secret string, body []byte) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return mac.Sum(nil)
}

// equalSignature fails fast on length and compares content in constant time.
func equalSignature(expected, supplied string) bool {
	if len(expected) != len(supplied) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(supplied)) == 1
}
