package service

import (
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyNotificationSignature(t *testing.T) {
	orderID := "FEE-abc123"
	statusCode := "200"
	grossAmount := "39700.00"
	serverKey := "SB-Mid-server-test"

	h := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	valid := hex.EncodeToString(h[:])

	assert.True(t, VerifyNotificationSignature(orderID, statusCode, grossAmount, serverKey, valid))
	assert.False(t, VerifyNotificationSignature(orderID, statusCode, grossAmount, serverKey, "tampered"))
	assert.False(t, VerifyNotificationSignature(orderID, statusCode, "1.00", serverKey, valid))
}
