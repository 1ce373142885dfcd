package providers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"testing"
)

func TestSignHexMatchesReferenceHMAC(t *testing.T) {
	body := []byte(`{"customerName":"John Doe"}`)
	mac := hmac.New(sha256.New, []byte("api-key"))
	mac.Write(body)
	want := hex.EncodeToString(mac.Sum(nil))

	if got := SignHex("api-key", body); got != want {
		t.Fatalf("SignHex() = %q, want %q", got, want)
	}
}

func TestSignBase64MatchesReferenceHMAC(t *testing.T) {
	body := []byte(`{"type":"booking.completed"}`)
	mac := hmac.New(sha256.New, []byte("signing-key"))
	mac.Write(body)
	want := "v1=" + base64.StdEncoding.EncodeToString(mac.Sum(nil))

	if got := SignBase64("signing-key", body, "v1="); got != want {
		t.Fatalf("SignBase64() = %q, want %q", got, want)
	}
}

func TestVerifyHex(t *testing.T) {
	secret := "test-secret-key"
	body := []byte(`{"customerEmail":"x@y.com"}`)
	signature := SignHex(secret, body)

	tests := []struct {
		name      string
		secret    string
		body      []byte
		signature string
		want      bool
	}{
		{name: "valid", secret: secret, body: body, signature: signature, want: true},
		{name: "deadbeef", secret: secret, body: body, signature: "deadbeef", want: false},
		{name: "uppercase hex", secret: secret, body: body, signature: hexUpper(signature), want: false},
		{name: "tampered body", secret: secret, body: []byte(`{"customerEmail":"z@y.com"}`), signature: signature, want: false},
		{name: "wrong secret", secret: "other", body: body, signature: signature, want: false},
		{name: "empty signature", secret: secret, body: body, signature: "", want: false},
		{name: "empty secret", secret: "", body: body, signature: SignHex("", body), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VerifyHex(tt.secret, tt.body, tt.signature); got != tt.want {
				t.Fatalf("VerifyHex() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVerifyBase64Prefix(t *testing.T) {
	secret := "signing-key"
	body := []byte(`{"event":"invitee.created"}`)
	bare := SignBase64(secret, body, "")

	if !VerifyBase64(secret, body, "v1="+bare, "v1=") {
		t.Fatal("expected v1 prefixed signature to verify")
	}
	if VerifyBase64(secret, body, bare, "v1=") {
		t.Fatal("expected bare signature to fail when a prefix is required")
	}
	if VerifyBase64(secret, body, "v2="+bare, "v1=") {
		t.Fatal("expected mismatched version tag to fail")
	}
	if VerifyBase64(secret, body, "v1="+bare, "") {
		t.Fatal("expected prefixed signature to fail for bare scheme")
	}
	if !VerifyBase64(secret, body, bare, "") {
		t.Fatal("expected bare signature to verify for bare scheme")
	}
}

func TestVerifyRejectsAnySingleByteFlip(t *testing.T) {
	secret := "flip-secret"
	body := []byte(`{"customerName":"John Doe","customerEmail":"x@y.com","appointmentDate":"2025-03-10T10:00:00Z"}`)

	for _, name := range DefaultRegistry().Names() {
		provider, _ := DefaultRegistry().Lookup(name)
		t.Run(name, func(t *testing.T) {
			signature := provider.Sign(secret, body)
			if !provider.Verify(secret, body, signature) {
				t.Fatal("expected signed body to verify")
			}

			for i := range body {
				flipped := append([]byte(nil), body...)
				flipped[i] ^= 0x01
				if provider.Verify(secret, flipped, signature) {
					t.Fatalf("body byte %d flip still verified", i)
				}
			}
			for i := range signature {
				flipped := []byte(signature)
				flipped[i] ^= 0x01
				if provider.Verify(secret, body, string(flipped)) {
					t.Fatalf("signature byte %d flip still verified", i)
				}
			}
		})
	}
}

func hexUpper(value string) string {
	out := []byte(value)
	for i, c := range out {
		if c >= 'a' && c <= 'f' {
			out[i] = c - 'a' + 'A'
		}
	}
	return string(out)
}
