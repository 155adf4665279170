package entities

// Customer identifies the shopper on a provider order. Contact fields may
// arrive empty from the storefront; the payload builder substitutes
// placeholder defaults so the provider never receives blanks.

type Customer struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	TaxID   string  `json:"tax_id"`
	Address Address `json:"address,omitempty"`
}

// Address is the postal address required by boleto charges. Country is not
// carried here: the provider payload always fixes it to Brasil.

type Address struct {
	Street     string `json:"street,omitempty"`
	Number     string `json:"number,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Locality   string `json:"locality,omitempty"`
	City       string `json:"city,omitempty"`
	RegionCode string `json:"region_code,omitempty"`
}
