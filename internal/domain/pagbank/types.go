package pagbank

// Wire shapes for the PagBank orders API (POST /orders). Field names follow
// the provider documentation; amounts are integer centavos.

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	TaxID string `json:"tax_id"`
}

type Item struct {
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	UnitAmount int64  `json:"unit_amount"`
}

type Amount struct {
	Value    int64  `json:"value"`
	Currency string `json:"currency,omitempty"`
}

type QRCode struct {
	Amount         Amount `json:"amount"`
	ExpirationDate string `json:"expiration_date"`
}

// PixPayload creates an order carrying exactly one QR descriptor.

type PixPayload struct {
	ReferenceID      string   `json:"reference_id"`
	Customer         Customer `json:"customer"`
	Items            []Item   `json:"items"`
	QRCodes          []QRCode `json:"qr_codes"`
	NotificationURLs []string `json:"notification_urls,omitempty"`
}

type InstructionLines struct {
	Line1 string `json:"line_1"`
	Line2 string `json:"line_2"`
}

type BoletoHolderAddress struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	PostalCode string `json:"postal_code"`
	Locality   string `json:"locality"`
	City       string `json:"city"`
	RegionCode string `json:"region_code"`
	Country    string `json:"country"`
}

type BoletoHolder struct {
	Name    string              `json:"name"`
	TaxID   string              `json:"tax_id"`
	Email   string              `json:"email"`
	Address BoletoHolderAddress `json:"address"`
}

type Boleto struct {
	DueDate          string           `json:"due_date"`
	InstructionLines InstructionLines `json:"instruction_lines"`
	Holder           BoletoHolder     `json:"holder"`
}

type BoletoPaymentMethod struct {
	Type   string `json:"type"`
	Boleto Boleto `json:"boleto"`
}

type BoletoCharge struct {
	Amount        Amount              `json:"amount"`
	PaymentMethod BoletoPaymentMethod `json:"payment_method"`
}

type BoletoPayload struct {
	ReferenceID      string         `json:"reference_id"`
	Customer         Customer       `json:"customer"`
	Items            []Item         `json:"items"`
	Charges          []BoletoCharge `json:"charges"`
	NotificationURLs []string       `json:"notification_urls,omitempty"`
}

type CardHolder struct {
	Name  string `json:"name"`
	TaxID string `json:"tax_id"`
}

type Card struct {
	Encrypted    string     `json:"encrypted"`
	SecurityCode string     `json:"security_code"`
	Holder       CardHolder `json:"holder"`
}

type CardPaymentMethod struct {
	Type           string `json:"type"`
	Card           Card   `json:"card"`
	Installments   int    `json:"installments"`
	Capture        bool   `json:"capture"`
	SoftDescriptor string `json:"soft_descriptor,omitempty"`
}

type SubMerchant struct {
	TaxID       string `json:"tax_id"`
	Name        string `json:"name"`
	ReferenceID string `json:"reference_id"`
	MCC         string `json:"mcc"`
}

type CardCharge struct {
	ReferenceID   string            `json:"reference_id"`
	Description   string            `json:"description"`
	Amount        Amount            `json:"amount"`
	PaymentMethod CardPaymentMethod `json:"payment_method"`

	// Attached only in facilitator mode with a known sub-merchant tax id.
	SubMerchant *SubMerchant `json:"sub_merchant,omitempty"`
}

type CardPayload struct {
	ReferenceID      string       `json:"reference_id"`
	Customer         Customer     `json:"customer"`
	Items            []Item       `json:"items"`
	Charges          []CardCharge `json:"charges"`
	NotificationURLs []string     `json:"notification_urls,omitempty"`
}

// Response shapes. The provider returns one order object for all three
// variants; the variant determines whether qr_codes or charges is filled.

type Link struct {
	Rel   string `json:"rel"`
	Href  string `json:"href"`
	Media string `json:"media"`
	Type  string `json:"type"`
}

type QRCodeResponse struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Links []Link `json:"links"`
}

type BoletoResponse struct {
	Barcode          string `json:"barcode"`
	FormattedBarcode string `json:"formatted_barcode"`
	DueDate          string `json:"due_date"`
}

type ChargePaymentMethodResponse struct {
	Type   string         `json:"type"`
	Boleto BoletoResponse `json:"boleto"`
}

type PaymentResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ChargeResponse struct {
	ID              string                      `json:"id"`
	ReferenceID     string                      `json:"reference_id"`
	Status          string                      `json:"status"`
	Amount          Amount                      `json:"amount"`
	PaymentMethod   ChargePaymentMethodResponse `json:"payment_method"`
	PaymentResponse PaymentResponse             `json:"payment_response"`
	Links           []Link                      `json:"links"`
}

type OrderResponse struct {
	ID          string           `json:"id"`
	ReferenceID string           `json:"reference_id"`
	QRCodes     []QRCodeResponse `json:"qr_codes"`
	Charges     []ChargeResponse `json:"charges"`
}
