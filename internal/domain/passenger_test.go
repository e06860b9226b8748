package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassengerRecord_ToSubmission(t *testing.T) {
	record := PassengerRecord{
		ID:         "pas_1",
		Type:       PassengerAdult,
		Title:      " MR ",
		GivenName:  " Amelia ",
		FamilyName: "Earhart",
		Gender:     "F",
		BornOn:     "1987-07-24",
		Email:      "amelia@example.com",
		Phone:      "+1 (424) 555-0100",
		Identity:   IdentityDocument{Number: "X123", IssuingCountry: "us", ExpiresOn: "2030-01-01"},
		Loyalty:    LoyaltyAccount{AirlineCode: "ba", AccountNumber: "99"},
		EmergencyContact: &EmergencyContact{
			Name:  "George",
			Phone: "+14245550101",
		},
		Notes: "window please",
	}

	got := record.ToSubmission()

	assert.Equal(t, "mr", got.Title)
	assert.Equal(t, "Amelia", got.GivenName)
	assert.Equal(t, "f", got.Gender)
	assert.Equal(t, "+14245550100", got.PhoneNumber)
	require.Len(t, got.IdentityDocuments, 1)
	assert.Equal(t, "passport", got.IdentityDocuments[0].Type)
	assert.Equal(t, "US", got.IdentityDocuments[0].IssuingCountry)
	require.Len(t, got.LoyaltyAccounts, 1)
	assert.Equal(t, "BA", got.LoyaltyAccounts[0].AirlineIATACode)

	data, err := json.Marshal(got)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "window please")
	assert.NotContains(t, string(data), "George")
	assert.Contains(t, string(data), `"given_name":"Amelia"`)
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"+1 (424) 555-0100", "+14245550100"},
		{"\t+44 20 7946 0958\n", "+442079460958"},
		{"+14155552671", "+14155552671"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.in))
		})
	}
}

func TestPassengerRecord_ToSubmissionMatchesValidatedPhone(t *testing.T) {
	record := PassengerRecord{ID: "pas_1", Phone: " +1 415-555-2671 \n"}

	assert.Equal(t, NormalizePhone(record.Phone), record.ToSubmission().PhoneNumber)
	assert.Equal(t, "+14155552671", record.ToSubmission().PhoneNumber)
}

func TestPassengerRecord_ToSubmissionOmitsEmptyGroups(t *testing.T) {
	got := PassengerRecord{ID: "pas_2", Type: PassengerChild}.ToSubmission()

	assert.Empty(t, got.IdentityDocuments)
	assert.Empty(t, got.LoyaltyAccounts)

	data, err := json.Marshal(got)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "identity_documents")
	assert.NotContains(t, string(data), "loyalty_programme_accounts")
}

func TestIdentityDocument_IsEmpty(t *testing.T) {
	assert.True(t, IdentityDocument{}.IsEmpty())
	assert.True(t, IdentityDocument{Number: "  "}.IsEmpty())
	assert.False(t, IdentityDocument{ExpiresOn: "2030-01-01"}.IsEmpty())
}

func TestLoyaltyAccount_IsEmpty(t *testing.T) {
	assert.True(t, LoyaltyAccount{}.IsEmpty())
	assert.False(t, LoyaltyAccount{AccountNumber: "1"}.IsEmpty())
}
