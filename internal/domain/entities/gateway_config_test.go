package entities

import "testing"

func TestEnabledMethods_Intersect(t *testing.T) {
	platform := EnabledMethods{Pix: true, Boleto: false, Cartao: true}
	merchant := EnabledMethods{Pix: true, Boleto: true, Cartao: false}

	got := platform.Intersect(merchant)
	want := EnabledMethods{Pix: true, Boleto: false, Cartao: false}
	if got != want {
		t.Fatalf("Intersect = %+v, want %+v", got, want)
	}

	// Absent records are zero values: intersecting with one disables all.
	if got := platform.Intersect(EnabledMethods{}); got.Any() {
		t.Fatalf("intersect with zero value must enable nothing, got %+v", got)
	}
	if got := (EnabledMethods{}).Intersect(merchant); got.Any() {
		t.Fatalf("zero platform must enable nothing, got %+v", got)
	}
}

func TestEnabledMethods_Allows(t *testing.T) {
	m := EnabledMethods{Pix: true}
	if !m.Allows(PaymentMethodPix) {
		t.Fatalf("pix should be allowed")
	}
	if m.Allows(PaymentMethodBoleto) || m.Allows(PaymentMethodCartao) {
		t.Fatalf("only pix should be allowed")
	}
	if m.Allows(PaymentMethod("other")) {
		t.Fatalf("unknown method should never be allowed")
	}
}

func TestGatewayConfig_IsConfigured(t *testing.T) {
	if (GatewayConfig{}).IsConfigured() {
		t.Fatalf("zero config must not be configured")
	}
	if (GatewayConfig{APIKey: "k"}).IsConfigured() {
		t.Fatalf("missing environment must not be configured")
	}
	if (GatewayConfig{Environment: EnvironmentSandbox}).IsConfigured() {
		t.Fatalf("missing api key must not be configured")
	}
	if !(GatewayConfig{APIKey: "k", Environment: EnvironmentSandbox}).IsConfigured() {
		t.Fatalf("api key + environment must be configured")
	}
}

func TestStore_IsPaused(t *testing.T) {
	if (Store{Status: StoreStatusAtivo}).IsPaused() {
		t.Fatalf("active store is not paused")
	}
	if !(Store{Status: StoreStatusPausada}).IsPaused() {
		t.Fatalf("paused store must report paused")
	}
}
