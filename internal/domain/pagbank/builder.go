package pagbank

import (
	"fmt"
	"time"

	"agreste_marketplace/internal/domain/entities"

	"github.com/zoobzio/clockz"
)

const (
	pixExpiration        = 24 * time.Hour
	DefaultBoletoDueDays = 3

	boletoInstructionLine1 = "Pagamento referente a compra na plataforma"
	boletoInstructionLine2 = "Não receber após o vencimento"
)

// Builder constructs provider order payloads. Amounts arrive already
// converted to centavos; reference ids are regenerated on every call and
// never reused across retries.
//
// The clock is injected so expiration instants and due dates are
// deterministic under test.

type Builder struct {
	clock clockz.Clock
}

func NewBuilder() *Builder {
	return &Builder{clock: clockz.RealClock}
}

func NewBuilderWithClock(clock clockz.Clock) *Builder {
	return &Builder{clock: clock}
}

// CardData is the caller-supplied card block. Encryption happens on the
// client; this code never sees raw card numbers.

type CardData struct {
	EncryptedCard string
	SecurityCode  string
	HolderName    string
	Installments  int
}

// PixOrder builds an instant-transfer order with a single QR descriptor
// expiring exactly 24 hours from construction time.
func (b *Builder) PixOrder(cfg entities.GatewayConfig, amountCentavos int64, descricao string, customer entities.Customer) PixPayload {
	now := b.clock.Now().UTC()
	payload := PixPayload{
		ReferenceID: fmt.Sprintf("PIX-%d", now.UnixMilli()),
		Customer:    FillCustomerDefaults(customer),
		Items:       orderItems(descricao, amountCentavos),
		QRCodes: []QRCode{
			{
				Amount:         Amount{Value: amountCentavos},
				ExpirationDate: now.Add(pixExpiration).Format(time.RFC3339),
			},
		},
	}
	payload.NotificationURLs = notificationURLs(cfg)
	return payload
}

// BoletoOrder builds a bank-slip order due dueDays from today (default 3),
// date-only. Missing holder address sub-fields are filled with placeholders.
func (b *Builder) BoletoOrder(cfg entities.GatewayConfig, amountCentavos int64, descricao string, customer entities.Customer, dueDays int) BoletoPayload {
	if dueDays <= 0 {
		dueDays = DefaultBoletoDueDays
	}
	now := b.clock.Now().UTC()
	filled := FillCustomerDefaults(customer)
	payload := BoletoPayload{
		ReferenceID: fmt.Sprintf("BOL-%d", now.UnixMilli()),
		Customer:    filled,
		Items:       orderItems(descricao, amountCentavos),
		Charges: []BoletoCharge{
			{
				Amount: Amount{Value: amountCentavos, Currency: "BRL"},
				PaymentMethod: BoletoPaymentMethod{
					Type: "BOLETO",
					Boleto: Boleto{
						DueDate: now.AddDate(0, 0, dueDays).Format("2006-01-02"),
						InstructionLines: InstructionLines{
							Line1: boletoInstructionLine1,
							Line2: boletoInstructionLine2,
						},
						Holder: BoletoHolder{
							Name:    filled.Name,
							TaxID:   filled.TaxID,
							Email:   filled.Email,
							Address: FillAddressDefaults(customer.Address),
						},
					},
				},
			},
		},
	}
	payload.NotificationURLs = notificationURLs(cfg)
	return payload
}

// CardOrder builds a credit-card order. Capture is always true: there is no
// separate authorize-then-capture step.
//
// When facilitator mode is on but the sub-merchant tax id is empty the
// sub_merchant block is silently omitted, matching production behavior.
// TODO: confirm with product whether that case should be a config error
// instead.
func (b *Builder) CardOrder(cfg entities.GatewayConfig, amountCentavos int64, descricao string, customer entities.Customer, card CardData) CardPayload {
	now := b.clock.Now().UTC()
	filled := FillCustomerDefaults(customer)

	if descricao == "" {
		descricao = DefaultDescription
	}
	installments := card.Installments
	if installments <= 0 {
		installments = 1
	}
	holderName := card.HolderName
	if holderName == "" {
		holderName = filled.Name
	}
	softDescriptor := cfg.SoftDescriptor
	if softDescriptor == "" {
		softDescriptor = DefaultSoftDescriptor
	}

	charge := CardCharge{
		ReferenceID: fmt.Sprintf("CHARGE-%d", now.UnixMilli()),
		Description: descricao,
		Amount:      Amount{Value: amountCentavos, Currency: "BRL"},
		PaymentMethod: CardPaymentMethod{
			Type: "CREDIT_CARD",
			Card: Card{
				Encrypted:    card.EncryptedCard,
				SecurityCode: card.SecurityCode,
				Holder: CardHolder{
					Name:  holderName,
					TaxID: filled.TaxID,
				},
			},
			Installments:   installments,
			Capture:        true,
			SoftDescriptor: softDescriptor,
		},
	}

	if cfg.IsFacilitador && cfg.SubMerchant.TaxID != "" {
		mcc := cfg.SubMerchant.MCC
		if mcc == "" {
			mcc = DefaultSubMerchantMCC
		}
		charge.SubMerchant = &SubMerchant{
			TaxID:       cfg.SubMerchant.TaxID,
			Name:        cfg.SubMerchant.Name,
			ReferenceID: cfg.SubMerchant.ReferenceID,
			MCC:         mcc,
		}
	}

	payload := CardPayload{
		ReferenceID: fmt.Sprintf("CARD-%d", now.UnixMilli()),
		Customer:    filled,
		Items:       orderItems(descricao, amountCentavos),
		Charges:     []CardCharge{charge},
	}
	payload.NotificationURLs = notificationURLs(cfg)
	return payload
}

func orderItems(descricao string, amountCentavos int64) []Item {
	if descricao == "" {
		descricao = DefaultDescription
	}
	return []Item{{Name: descricao, Quantity: 1, UnitAmount: amountCentavos}}
}

// notificationURLs attaches the webhook address only when configured; an
// empty list is never sent.
func notificationURLs(cfg entities.GatewayConfig) []string {
	if cfg.WebhookURL == "" {
		return nil
	}
	return []string{cfg.WebhookURL}
}
