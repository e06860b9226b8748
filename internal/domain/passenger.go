package domain

import "strings"

// PassengerRecord is the mutable form state for one passenger, keyed by provider passenger id.
type PassengerRecord struct {
	ID         string        `json:"id"`
	Type       PassengerType `json:"type"`
	Title      string        `json:"title"`
	GivenName  string        `json:"givenName"`
	FamilyName string        `json:"familyName"`
	Gender     string        `json:"gender"`
	BornOn     string        `json:"bornOn"`

	// Email and Phone are required for the primary passenger only
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`

	Identity         IdentityDocument  `json:"identity"`
	Loyalty          LoyaltyAccount    `json:"loyalty"`
	EmergencyContact *EmergencyContact `json:"emergencyContact,omitempty"`

	// Notes are kept locally and never sent to the provider
	Notes string `json:"notes,omitempty"`
}

// IdentityDocument is a passport. Fields are all-or-nothing.
type IdentityDocument struct {
	Number         string `json:"number"`
	IssuingCountry string `json:"issuingCountry"`
	ExpiresOn      string `json:"expiresOn"`
}

// IsEmpty reports whether no field is filled.
func (d IdentityDocument) IsEmpty() bool {
	return strings.TrimSpace(d.Number) == "" &&
		strings.TrimSpace(d.IssuingCountry) == "" &&
		strings.TrimSpace(d.ExpiresOn) == ""
}

// LoyaltyAccount is a frequent-flyer membership. Both fields or neither.
type LoyaltyAccount struct {
	AirlineCode   string `json:"airlineCode"`
	AccountNumber string `json:"accountNumber"`
}

// IsEmpty reports whether neither field is filled.
func (l LoyaltyAccount) IsEmpty() bool {
	return strings.TrimSpace(l.AirlineCode) == "" && strings.TrimSpace(l.AccountNumber) == ""
}

// EmergencyContact is optional local-only contact data.
type EmergencyContact struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship,omitempty"`
}

// SubmissionPassenger is a passenger in provider format.
type SubmissionPassenger struct {
	ID                string                    `json:"id"`
	Type              PassengerType             `json:"type"`
	Title             string                    `json:"title"`
	GivenName         string                    `json:"given_name"`
	FamilyName        string                    `json:"family_name"`
	Gender            string                    `json:"gender"`
	BornOn            string                    `json:"born_on"`
	Email             string                    `json:"email,omitempty"`
	PhoneNumber       string                    `json:"phone_number,omitempty"`
	IdentityDocuments []SubmissionIdentity      `json:"identity_documents,omitempty"`
	LoyaltyAccounts   []SubmissionLoyaltyRecord `json:"loyalty_programme_accounts,omitempty"`
}

// SubmissionIdentity is a passport in provider format.
type SubmissionIdentity struct {
	Type             string `json:"type"`
	UniqueIdentifier string `json:"unique_identifier"`
	IssuingCountry   string `json:"issuing_country_code"`
	ExpiresOn        string `json:"expires_on"`
}

// SubmissionLoyaltyRecord is a loyalty account in provider format.
type SubmissionLoyaltyRecord struct {
	AirlineIATACode string `json:"airline_iata_code"`
	AccountNumber   string `json:"account_number"`
}

// NormalizePhone drops the separators people type into phone numbers.
func NormalizePhone(phone string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' || r == '(' || r == ')' {
			return -1
		}
		return r
	}, strings.TrimSpace(phone))
}

// ToSubmission normalizes a validated record into provider format.
// Local-only fields (notes, emergency contact) are dropped.
func (p PassengerRecord) ToSubmission() SubmissionPassenger {
	out := SubmissionPassenger{
		ID:          p.ID,
		Type:        p.Type,
		Title:       strings.ToLower(strings.TrimSpace(p.Title)),
		GivenName:   strings.TrimSpace(p.GivenName),
		FamilyName:  strings.TrimSpace(p.FamilyName),
		Gender:      strings.ToLower(strings.TrimSpace(p.Gender)),
		BornOn:      strings.TrimSpace(p.BornOn),
		Email:       strings.TrimSpace(p.Email),
		PhoneNumber: NormalizePhone(p.Phone),
	}

	if !p.Identity.IsEmpty() {
		out.IdentityDocuments = []SubmissionIdentity{{
			Type:             "passport",
			UniqueIdentifier: strings.TrimSpace(p.Identity.Number),
			IssuingCountry:   strings.ToUpper(strings.TrimSpace(p.Identity.IssuingCountry)),
			ExpiresOn:        strings.TrimSpace(p.Identity.ExpiresOn),
		}}
	}

	if !p.Loyalty.IsEmpty() {
		out.LoyaltyAccounts = []SubmissionLoyaltyRecord{{
			AirlineIATACode: strings.ToUpper(strings.TrimSpace(p.Loyalty.AirlineCode)),
			AccountNumber:   strings.TrimSpace(p.Loyalty.AccountNumber),
		}}
	}

	return out
}
