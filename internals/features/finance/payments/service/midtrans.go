package service

import (
	"github.com/shopspring/decimal"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

var (
	snapClient snap.Client
	enabled    bool
)

// InitGateway se llama en el bootstrap; sin server key el enlace de pago
// con tarjeta queda deshabilitado y los pagos se registran igual.
func InitGateway(serverKey string, production bool) {
	if serverKey == "" {
		return
	}
	env := midtrans.Sandbox
	if production {
		env = midtrans.Production
	}
	snapClient.New(serverKey, env)
	enabled = true
}

func Enabled() bool { return enabled }

// GenerateChargeLink pide un token Snap + redirect_url para cobrar con
// tarjeta. Es best-effort: el caller nunca debe fallar el registro del pago
// si esto falla (no hay conciliación con la pasarela).
func GenerateChargeLink(orderID string, amount decimal.Decimal, name, email string) (string, string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: amount.Round(0).IntPart(),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: name,
			Email: email,
		},
	}

	resp, err := snapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}
