package valueobject

import "strings"

// Address is a value object representing a physical address used on
// document headers (shipping and billing). A zero Address means the
// document carries no address.
type Address struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	Region     string `json:"region,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"`
}

// NewAddress creates an Address with whitespace-trimmed fields
func NewAddress(line1, line2, city, region, postalCode, country string) Address {
	return Address{
		Line1:      strings.TrimSpace(line1),
		Line2:      strings.TrimSpace(line2),
		City:       strings.TrimSpace(city),
		Region:     strings.TrimSpace(region),
		PostalCode: strings.TrimSpace(postalCode),
		Country:    strings.TrimSpace(country),
	}
}

// IsZero returns true when no field is set
func (a Address) IsZero() bool {
	return a == Address{}
}

// String returns the address as a single comma-joined line
func (a Address) String() string {
	parts := make([]string, 0, 6)
	for _, p := range []string{a.Line1, a.Line2, a.City, a.Region, a.PostalCode, a.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
