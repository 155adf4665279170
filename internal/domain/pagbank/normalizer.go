package pagbank

import (
	"encoding/json"
	"strings"
)

// Normalized, method-specific summaries of a successful provider response.
// Informational sub-fields (links, barcodes) may be empty when the provider
// omits them; that is not an error.

type PixResult struct {
	OrderID        string `json:"order_id"`
	ReferenceID    string `json:"reference_id"`
	QRCodeText     string `json:"qr_code_text"`
	QRCodeImage    string `json:"qr_code_image,omitempty"`
	ExpirationDate string `json:"expiration_date"`
}

type BoletoResult struct {
	OrderID          string `json:"order_id"`
	ChargeID         string `json:"charge_id"`
	ReferenceID      string `json:"reference_id"`
	Barcode          string `json:"barcode"`
	FormattedBarcode string `json:"formatted_barcode"`
	BoletoURL        string `json:"boleto_url,omitempty"`
	DueDate          string `json:"due_date"`
	Status           string `json:"status"`
}

type CardResult struct {
	OrderID         string `json:"order_id"`
	ChargeID        string `json:"charge_id"`
	ReferenceID     string `json:"reference_id"`
	Status          string `json:"status"`
	Amount          Amount `json:"amount"`
	PaymentResponse PaymentResponse `json:"payment_response"`
}

// NormalizePix extracts the text-encoded payment code and the first link
// whose media type indicates an image. The expiration instant was computed
// at build time and is echoed back to the caller.
func NormalizePix(raw json.RawMessage, expirationDate string) (PixResult, error) {
	var resp OrderResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return PixResult{}, err
	}

	result := PixResult{
		OrderID:        resp.ID,
		ReferenceID:    resp.ReferenceID,
		ExpirationDate: expirationDate,
	}
	if len(resp.QRCodes) > 0 {
		qr := resp.QRCodes[0]
		result.QRCodeText = qr.Text
		result.QRCodeImage = firstLinkByMedia(qr.Links, "image/")
	}
	return result, nil
}

// NormalizeBoleto extracts the barcode pair, due date and the first link
// whose media type indicates a PDF document.
func NormalizeBoleto(raw json.RawMessage) (BoletoResult, error) {
	var resp OrderResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return BoletoResult{}, err
	}

	result := BoletoResult{
		OrderID:     resp.ID,
		ReferenceID: resp.ReferenceID,
	}
	if len(resp.Charges) > 0 {
		charge := resp.Charges[0]
		result.ChargeID = charge.ID
		result.Status = charge.Status
		result.Barcode = charge.PaymentMethod.Boleto.Barcode
		result.FormattedBarcode = charge.PaymentMethod.Boleto.FormattedBarcode
		result.DueDate = charge.PaymentMethod.Boleto.DueDate
		result.BoletoURL = firstLinkByMedia(charge.Links, "application/pdf")
	}
	return result, nil
}

// NormalizeCard passes the charge status and the provider's authorization
// response through verbatim.
func NormalizeCard(raw json.RawMessage) (CardResult, error) {
	var resp OrderResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return CardResult{}, err
	}

	result := CardResult{
		OrderID:     resp.ID,
		ReferenceID: resp.ReferenceID,
	}
	if len(resp.Charges) > 0 {
		charge := resp.Charges[0]
		result.ChargeID = charge.ID
		result.Status = charge.Status
		result.Amount = charge.Amount
		result.PaymentResponse = charge.PaymentResponse
	}
	return result, nil
}

func firstLinkByMedia(links []Link, mediaPrefix string) string {
	for _, link := range links {
		if strings.HasPrefix(link.Media, mediaPrefix) {
			return link.Href
		}
	}
	return ""
}
