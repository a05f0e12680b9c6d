package entity

// Buyer holds the contact fields collected by the checkout form.
type Buyer struct {
	Name    string
	Surname string
	Email   string
	Phone   string
	Country string
	City    string
}

// Complete reports whether every contact field was filled in. Fulfillment
// requires a complete buyer; preference creation only requires name and email.
func (b Buyer) Complete() bool {
	return b.Name != "" && b.Surname != "" && b.Email != "" &&
		b.Phone != "" && b.Country != "" && b.City != ""
}

// Preference is a checkout attempt issued either by the payment provider or
// synthesized locally for demo mode. Never persisted.
type Preference struct {
	ID        string
	InitPoint string
	IsDemo    bool
	Fallback  bool
}
