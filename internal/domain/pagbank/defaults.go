package pagbank

import "agreste_marketplace/internal/domain/entities"

// Placeholder values substituted when the storefront sends incomplete
// contact or address data. This is a permissive default policy applied at
// payload construction, not a validation step: upstream surfaces remain
// responsible for collecting real data.

const (
	DefaultCustomerName  = "Cliente"
	DefaultCustomerEmail = "cliente@example.com"
	DefaultCustomerTaxID = "12345678909"

	DefaultStreet     = "Rua Exemplo"
	DefaultNumber     = "123"
	DefaultPostalCode = "55000000"
	DefaultLocality   = "Centro"
	DefaultCity       = "Santa Cruz do Capibaribe"
	DefaultRegionCode = "PE"

	// Country is a fixed literal on every boleto holder address.
	AddressCountry = "Brasil"

	DefaultSoftDescriptor = "AGRESTE"
	DefaultSubMerchantMCC = "5691"
	DefaultDescription    = "Pagamento"
)

// FillCustomerDefaults returns the provider-facing customer with blanks
// replaced by placeholders. Never sends empty contact fields to PagBank.
func FillCustomerDefaults(c entities.Customer) Customer {
	out := Customer{Name: c.Name, Email: c.Email, TaxID: c.TaxID}
	if out.Name == "" {
		out.Name = DefaultCustomerName
	}
	if out.Email == "" {
		out.Email = DefaultCustomerEmail
	}
	if out.TaxID == "" {
		out.TaxID = DefaultCustomerTaxID
	}
	return out
}

// FillAddressDefaults completes a boleto holder address field by field.
func FillAddressDefaults(a entities.Address) BoletoHolderAddress {
	out := BoletoHolderAddress{
		Street:     a.Street,
		Number:     a.Number,
		PostalCode: a.PostalCode,
		Locality:   a.Locality,
		City:       a.City,
		RegionCode: a.RegionCode,
		Country:    AddressCountry,
	}
	if out.Street == "" {
		out.Street = DefaultStreet
	}
	if out.Number == "" {
		out.Number = DefaultNumber
	}
	if out.PostalCode == "" {
		out.PostalCode = DefaultPostalCode
	}
	if out.Locality == "" {
		out.Locality = DefaultLocality
	}
	if out.City == "" {
		out.City = DefaultCity
	}
	if out.RegionCode == "" {
		out.RegionCode = DefaultRegionCode
	}
	return out
}
