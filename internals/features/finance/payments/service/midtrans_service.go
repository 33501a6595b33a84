package service

import (
	"crypto/sha512"
	"encoding/hex"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"campushub_backend/internals/features/finance/payments/model"
)

var SnapClient snap.Client

// InitMidtrans initializes the Snap client with the server key.
func InitMidtrans(serverKey string) {
	SnapClient.New(serverKey, midtrans.Sandbox)
}

// GenerateSnapToken creates a Snap transaction for an online fee payment.
func GenerateSnapToken(p model.FeePaymentModel, studentName, studentEmail string) (string, error) {
	orderID := ""
	if p.FeePaymentOrderID != nil {
		orderID = *p.FeePaymentOrderID
	}
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: int64(p.FeePaymentAmount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: studentName,
			Email: studentEmail,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

// VerifyNotificationSignature checks the sha512 signature Midtrans sends with
// every HTTP notification.
func VerifyNotificationSignature(orderID, statusCode, grossAmount, serverKey, signature string) bool {
	h := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(h[:]) == signature
}
