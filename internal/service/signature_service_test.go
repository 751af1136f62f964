package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHMACSignatureService_Sign(t *testing.T) {
	svc := NewHMACSignatureService()

	payload := []byte(`{"event":"payment.completed","data":{"amount":1000}}`)
	sig := svc.Sign("my-secret", payload)

	// Independently computed HMAC over the same bytes must match.
	mac := hmac.New(sha256.New, []byte("my-secret"))
	mac.Write(payload)
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), sig)
}

func TestHMACSignatureService_SignDeterministic(t *testing.T) {
	svc := NewHMACSignatureService()

	payload := []byte("payload")
	assert.Equal(t, svc.Sign("key", payload), svc.Sign("key", payload))
	assert.NotEqual(t, svc.Sign("key", payload), svc.Sign("other-key", payload))
	assert.NotEqual(t, svc.Sign("key", payload), svc.Sign("key", []byte("payload ")))
}

func TestHMACSignatureService_Verify(t *testing.T) {
	svc := NewHMACSignatureService()

	payload := []byte("some payload")
	sig := svc.Sign("key", payload)

	assert.True(t, svc.Verify("key", payload, sig))
	assert.False(t, svc.Verify("wrong-key", payload, sig))
	assert.False(t, svc.Verify("key", []byte("tampered"), sig))
	assert.False(t, svc.Verify("key", payload, "deadbeef"))
}
