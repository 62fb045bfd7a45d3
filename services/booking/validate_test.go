package booking

import (
	"testing"

	"equibook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateContactDetails(t *testing.T) {
	valid := models.ContactDetails{
		FirstName:   "Emma",
		LastName:    "Wilson",
		Email:       "emma@example.com",
		Phone:       "0400123456",
		HasOwnHorse: "no",
	}
	assert.Nil(t, validateContactDetails(valid))

	t.Run("missing required fields", func(t *testing.T) {
		verr := validateContactDetails(models.ContactDetails{HasOwnHorse: "no"})
		require.NotNil(t, verr)
		assert.Contains(t, verr.Fields, "firstName")
		assert.Contains(t, verr.Fields, "lastName")
		assert.Contains(t, verr.Fields, "email")
		assert.Contains(t, verr.Fields, "phone")
	})

	t.Run("whitespace is not a value", func(t *testing.T) {
		det := valid
		det.FirstName = "   "
		verr := validateContactDetails(det)
		require.NotNil(t, verr)
		assert.Contains(t, verr.Fields, "firstName")
	})

	t.Run("email format", func(t *testing.T) {
		for _, bad := range []string{"plain", "no@tld", "spaces in@example.com", "@example.com"} {
			det := valid
			det.Email = bad
			verr := validateContactDetails(det)
			require.NotNil(t, verr, "email %q should be rejected", bad)
			assert.Contains(t, verr.Fields, "email")
		}
	})

	t.Run("horse name required with own horse", func(t *testing.T) {
		det := valid
		det.HasOwnHorse = "yes"
		verr := validateContactDetails(det)
		require.NotNil(t, verr)
		assert.Contains(t, verr.Fields, "horseName")

		det.HorseName = "Thunder"
		assert.Nil(t, validateContactDetails(det))
	})
}

func TestValidateServiceSelection(t *testing.T) {
	assert.Nil(t, validateServiceSelection(models.ServiceSelection{
		ServiceType: models.ServiceDressage, Duration: "60", RiderLevel: "advanced",
	}))

	verr := validateServiceSelection(models.ServiceSelection{
		ServiceType: "vaulting", Duration: "90", RiderLevel: "expert",
	})
	require.NotNil(t, verr)
	assert.Len(t, verr.Fields, 3)
}

func TestDateSelectable(t *testing.T) {
	// fixedNow is Monday 2025-03-03.
	_, ok := dateSelectable("2025-03-03", fixedNow)
	assert.True(t, ok, "today is selectable")

	_, ok = dateSelectable("2025-03-04", fixedNow)
	assert.True(t, ok)

	reason, ok := dateSelectable("2025-03-02", fixedNow)
	assert.False(t, ok)
	assert.Equal(t, "Date is in the past", reason)

	reason, ok = dateSelectable("2025-03-16", fixedNow) // a Sunday
	assert.False(t, ok)
	assert.Equal(t, "We are closed on Sundays", reason)

	_, ok = dateSelectable("03/16/2025", fixedNow)
	assert.False(t, ok)
}
