package pagbank

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"agreste_marketplace/internal/domain/entities"

	"github.com/zoobzio/clockz"
)

func testConfig() entities.GatewayConfig {
	return entities.GatewayConfig{
		StoreID:     "store-1",
		APIKey:      "key",
		Environment: entities.EnvironmentSandbox,
	}
}

func TestBuilder_PixOrder(t *testing.T) {
	clock := clockz.NewFakeClock()
	b := NewBuilderWithClock(clock)
	now := clock.Now().UTC()

	payload := b.PixOrder(testConfig(), 14990, "Vestido longo", entities.Customer{
		Name:  "Maria",
		Email: "maria@example.com",
		TaxID: "11122233344",
	})

	if want := fmt.Sprintf("PIX-%d", now.UnixMilli()); payload.ReferenceID != want {
		t.Fatalf("reference id = %s, want %s", payload.ReferenceID, want)
	}
	if len(payload.QRCodes) != 1 {
		t.Fatalf("expected exactly one qr code, got %d", len(payload.QRCodes))
	}
	qr := payload.QRCodes[0]
	if qr.Amount.Value != 14990 {
		t.Fatalf("qr amount = %d, want 14990", qr.Amount.Value)
	}
	if want := now.Add(24 * time.Hour).Format(time.RFC3339); qr.ExpirationDate != want {
		t.Fatalf("expiration = %s, want %s", qr.ExpirationDate, want)
	}
	if payload.Customer.Name != "Maria" || payload.Customer.TaxID != "11122233344" {
		t.Fatalf("customer not carried through: %+v", payload.Customer)
	}
	if len(payload.Items) != 1 || payload.Items[0].Name != "Vestido longo" || payload.Items[0].UnitAmount != 14990 {
		t.Fatalf("unexpected items: %+v", payload.Items)
	}
	if payload.NotificationURLs != nil {
		t.Fatalf("expected no notification urls without webhook, got %v", payload.NotificationURLs)
	}
}

func TestBuilder_PixOrder_CustomerDefaults(t *testing.T) {
	b := NewBuilderWithClock(clockz.NewFakeClock())

	payload := b.PixOrder(testConfig(), 1000, "", entities.Customer{})

	if payload.Customer.Name != DefaultCustomerName {
		t.Fatalf("name = %s, want %s", payload.Customer.Name, DefaultCustomerName)
	}
	if payload.Customer.Email != DefaultCustomerEmail {
		t.Fatalf("email = %s, want %s", payload.Customer.Email, DefaultCustomerEmail)
	}
	if payload.Customer.TaxID != DefaultCustomerTaxID {
		t.Fatalf("tax id = %s, want %s", payload.Customer.TaxID, DefaultCustomerTaxID)
	}
	if payload.Items[0].Name != DefaultDescription {
		t.Fatalf("item name = %s, want %s", payload.Items[0].Name, DefaultDescription)
	}
}

func TestBuilder_BoletoOrder(t *testing.T) {
	clock := clockz.NewFakeClock()
	b := NewBuilderWithClock(clock)
	now := clock.Now().UTC()

	cfg := testConfig()
	cfg.WebhookURL = "https://example.com/webhooks/pagbank"

	t.Run("explicit due days", func(t *testing.T) {
		payload := b.BoletoOrder(cfg, 5000, "Pedido 42", entities.Customer{Name: "João"}, 7)

		if !strings.HasPrefix(payload.ReferenceID, "BOL-") {
			t.Fatalf("reference id = %s, want BOL- prefix", payload.ReferenceID)
		}
		if len(payload.Charges) != 1 {
			t.Fatalf("expected one charge, got %d", len(payload.Charges))
		}
		boleto := payload.Charges[0].PaymentMethod.Boleto
		if want := now.AddDate(0, 0, 7).Format("2006-01-02"); boleto.DueDate != want {
			t.Fatalf("due date = %s, want %s", boleto.DueDate, want)
		}
		if boleto.InstructionLines.Line1 != boletoInstructionLine1 || boleto.InstructionLines.Line2 != boletoInstructionLine2 {
			t.Fatalf("unexpected instruction lines: %+v", boleto.InstructionLines)
		}
		if boleto.Holder.Name != "João" {
			t.Fatalf("holder name = %s, want João", boleto.Holder.Name)
		}
		if payload.Charges[0].Amount.Currency != "BRL" {
			t.Fatalf("currency = %s, want BRL", payload.Charges[0].Amount.Currency)
		}
		if len(payload.NotificationURLs) != 1 || payload.NotificationURLs[0] != cfg.WebhookURL {
			t.Fatalf("notification urls = %v", payload.NotificationURLs)
		}
	})

	t.Run("default due days", func(t *testing.T) {
		payload := b.BoletoOrder(cfg, 5000, "", entities.Customer{}, 0)

		boleto := payload.Charges[0].PaymentMethod.Boleto
		if want := now.AddDate(0, 0, DefaultBoletoDueDays).Format("2006-01-02"); boleto.DueDate != want {
			t.Fatalf("due date = %s, want %s", boleto.DueDate, want)
		}
	})

	t.Run("holder address placeholders", func(t *testing.T) {
		payload := b.BoletoOrder(cfg, 5000, "", entities.Customer{}, 0)

		addr := payload.Charges[0].PaymentMethod.Boleto.Holder.Address
		if addr.Street != DefaultStreet || addr.Number != DefaultNumber || addr.PostalCode != DefaultPostalCode {
			t.Fatalf("unexpected address defaults: %+v", addr)
		}
		if addr.City != DefaultCity || addr.RegionCode != DefaultRegionCode || addr.Locality != DefaultLocality {
			t.Fatalf("unexpected address defaults: %+v", addr)
		}
		if addr.Country != AddressCountry {
			t.Fatalf("country = %s, want %s", addr.Country, AddressCountry)
		}
	})

	t.Run("partial address keeps provided fields", func(t *testing.T) {
		payload := b.BoletoOrder(cfg, 5000, "", entities.Customer{
			Address: entities.Address{Street: "Av. Central", City: "Caruaru"},
		}, 0)

		addr := payload.Charges[0].PaymentMethod.Boleto.Holder.Address
		if addr.Street != "Av. Central" || addr.City != "Caruaru" {
			t.Fatalf("provided fields overwritten: %+v", addr)
		}
		if addr.Number != DefaultNumber {
			t.Fatalf("missing field not defaulted: %+v", addr)
		}
	})
}

func TestBuilder_CardOrder(t *testing.T) {
	b := NewBuilderWithClock(clockz.NewFakeClock())

	card := CardData{EncryptedCard: "enc-blob", SecurityCode: "123"}

	t.Run("defaults", func(t *testing.T) {
		payload := b.CardOrder(testConfig(), 25000, "", entities.Customer{}, card)

		if !strings.HasPrefix(payload.ReferenceID, "CARD-") {
			t.Fatalf("reference id = %s, want CARD- prefix", payload.ReferenceID)
		}
		if len(payload.Charges) != 1 {
			t.Fatalf("expected one charge, got %d", len(payload.Charges))
		}
		charge := payload.Charges[0]
		if !strings.HasPrefix(charge.ReferenceID, "CHARGE-") {
			t.Fatalf("charge reference id = %s, want CHARGE- prefix", charge.ReferenceID)
		}
		pm := charge.PaymentMethod
		if pm.Type != "CREDIT_CARD" || !pm.Capture {
			t.Fatalf("unexpected payment method: %+v", pm)
		}
		if pm.Installments != 1 {
			t.Fatalf("installments = %d, want 1", pm.Installments)
		}
		if pm.SoftDescriptor != DefaultSoftDescriptor {
			t.Fatalf("soft descriptor = %s, want %s", pm.SoftDescriptor, DefaultSoftDescriptor)
		}
		if pm.Card.Holder.Name != DefaultCustomerName {
			t.Fatalf("holder name = %s, want customer default", pm.Card.Holder.Name)
		}
		if charge.Description != DefaultDescription {
			t.Fatalf("description = %s, want %s", charge.Description, DefaultDescription)
		}
		if charge.SubMerchant != nil {
			t.Fatalf("sub_merchant must be absent outside facilitator mode")
		}
	})

	t.Run("explicit values", func(t *testing.T) {
		cfg := testConfig()
		cfg.SoftDescriptor = "LOJA MARIA"

		payload := b.CardOrder(cfg, 25000, "Pedido 7", entities.Customer{Name: "Maria"}, CardData{
			EncryptedCard: "enc-blob",
			SecurityCode:  "123",
			HolderName:    "MARIA S SILVA",
			Installments:  3,
		})

		pm := payload.Charges[0].PaymentMethod
		if pm.Installments != 3 {
			t.Fatalf("installments = %d, want 3", pm.Installments)
		}
		if pm.SoftDescriptor != "LOJA MARIA" {
			t.Fatalf("soft descriptor = %s", pm.SoftDescriptor)
		}
		if pm.Card.Holder.Name != "MARIA S SILVA" {
			t.Fatalf("holder name = %s", pm.Card.Holder.Name)
		}
	})

	t.Run("facilitator with sub-merchant", func(t *testing.T) {
		cfg := testConfig()
		cfg.IsFacilitador = true
		cfg.SubMerchant = entities.SubMerchant{TaxID: "12345678000199", Name: "Loja da Maria", ReferenceID: "store-1"}

		payload := b.CardOrder(cfg, 25000, "", entities.Customer{}, card)

		sub := payload.Charges[0].SubMerchant
		if sub == nil {
			t.Fatalf("expected sub_merchant block")
		}
		if sub.TaxID != "12345678000199" || sub.Name != "Loja da Maria" {
			t.Fatalf("unexpected sub_merchant: %+v", sub)
		}
		if sub.MCC != DefaultSubMerchantMCC {
			t.Fatalf("mcc = %s, want default %s", sub.MCC, DefaultSubMerchantMCC)
		}
	})

	t.Run("facilitator without tax id omits block", func(t *testing.T) {
		cfg := testConfig()
		cfg.IsFacilitador = true
		cfg.SubMerchant = entities.SubMerchant{Name: "Loja sem CNPJ"}

		payload := b.CardOrder(cfg, 25000, "", entities.Customer{}, card)

		if payload.Charges[0].SubMerchant != nil {
			t.Fatalf("sub_merchant must be omitted without a tax id")
		}
	})

	t.Run("facilitator custom mcc kept", func(t *testing.T) {
		cfg := testConfig()
		cfg.IsFacilitador = true
		cfg.SubMerchant = entities.SubMerchant{TaxID: "12345678000199", MCC: "5651"}

		payload := b.CardOrder(cfg, 25000, "", entities.Customer{}, card)

		if got := payload.Charges[0].SubMerchant.MCC; got != "5651" {
			t.Fatalf("mcc = %s, want 5651", got)
		}
	})
}
