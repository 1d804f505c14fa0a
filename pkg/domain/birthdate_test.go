package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "numerology/pkg/domain-errors"
)

// TestParseBirthDate_Invariants validates the boundary invariant:
// "a BirthDate is a YYYY-MM-DD triple with field ranges checked, calendar unchecked".
func TestParseBirthDate_Invariants(t *testing.T) {
	t.Run("accepts canonical date", func(t *testing.T) {
		d, err := ParseBirthDate("1990-07-16")
		require.NoError(t, err)
		assert.Equal(t, BirthDate{Year: 1990, Month: 7, Day: 16}, d)
	})

	t.Run("accepts dates that do not exist on a calendar", func(t *testing.T) {
		d, err := ParseBirthDate("2001-02-30")
		require.NoError(t, err)
		assert.Equal(t, 30, d.Day)
	})

	rejected := map[string]string{
		"empty":              "",
		"slashes":            "1990/07/16",
		"us order":           "07-16-1990",
		"short year":         "90-07-16",
		"single digit month": "1990-7-16",
		"trailing junk":      "1990-07-16T00:00",
		"letters":            "19x0-07-16",
		"signed field":       "1990-+7-16",
		"non ascii digits":   "１９９０-07-16",
		"year zero":          "0000-07-16",
		"month zero":         "1990-00-16",
		"month thirteen":     "1990-13-16",
		"day zero":           "1990-07-00",
		"day thirty two":     "1990-07-32",
	}
	for name, input := range rejected {
		t.Run("rejects "+name, func(t *testing.T) {
			_, err := ParseBirthDate(input)
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
		})
	}
}

func TestBirthDateString(t *testing.T) {
	assert.Equal(t, "0987-01-05", BirthDate{Year: 987, Month: 1, Day: 5}.String())
	assert.True(t, BirthDate{}.IsZero())
	assert.False(t, BirthDate{Year: 1}.IsZero())
}

func TestBirthDateJSON(t *testing.T) {
	var payload struct {
		Date BirthDate `json:"date"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"date":"1984-11-29"}`), &payload))
	assert.Equal(t, BirthDate{Year: 1984, Month: 11, Day: 29}, payload.Date)

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"1984-11-29"}`, string(out))

	err = json.Unmarshal([]byte(`{"date":"1984-11-99"}`), &payload)
	require.Error(t, err)
}

func TestParseCategory(t *testing.T) {
	for _, c := range AllCategories() {
		parsed, err := ParseCategory(string(c))
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
		assert.NotEmpty(t, parsed.Title())
	}

	_, err := ParseCategory("LifePath")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	assert.Equal(t, "Soul Urge", CategorySoulUrge.Title())
}
