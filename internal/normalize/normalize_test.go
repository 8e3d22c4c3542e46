package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chesron92/PitchPro-webapp-sub001/internal/record"
	"github.com/Chesron92/PitchPro-webapp-sub001/internal/types"
)

func TestAccount_LegacyDutchRecord(t *testing.T) {
	rec := record.FromMap(map[string]any{
		"id":           "user-1",
		"emailadres":   "anna@example.nl",
		"naam":         "Anna de Vries",
		"straat":       "Kerkstraat",
		"huisnummer":   "12b",
		"postcode":     "3511 AB",
		"woonplaats":   "Utrecht",
		"vaardigheden": []any{"Go", "SQL"},
		"werkervaring": []any{
			map[string]any{"bedrijf": "Acme", "functie": "Developer", "van": "2020-01"},
		},
		"opleidingen": []any{
			map[string]any{"school": "HU", "diploma": "BSc"},
		},
	})

	acct, err := Account(rec, types.RoleJobSeeker)
	require.NoError(t, err)

	assert.Equal(t, "user-1", acct.ID)
	assert.Equal(t, "anna@example.nl", acct.Email)
	assert.Equal(t, "Anna de Vries", acct.DisplayName)
	assert.Equal(t, types.RoleJobSeeker, acct.Role)

	// Flat legacy address fields are lifted into the nested structure.
	assert.Equal(t, "Kerkstraat", acct.Address.Street)
	assert.Equal(t, "12b", acct.Address.HouseNumber)
	assert.Equal(t, "3511 AB", acct.Address.PostalCode)
	assert.Equal(t, "Utrecht", acct.Address.City)

	require.NotNil(t, acct.JobSeeker)
	assert.Nil(t, acct.Recruiter)
	assert.Equal(t, []string{"Go", "SQL"}, acct.JobSeeker.Skills)
	require.Len(t, acct.JobSeeker.Experience, 1)
	assert.Equal(t, "Acme", acct.JobSeeker.Experience[0].Company)
	assert.Equal(t, "Developer", acct.JobSeeker.Experience[0].Title)
	assert.Equal(t, "2020-01", acct.JobSeeker.Experience[0].StartDate)
	require.Len(t, acct.JobSeeker.Education, 1)
	assert.Equal(t, "HU", acct.JobSeeker.Education[0].School)
}

func TestAccount_NestedAddressWinsOverFlat(t *testing.T) {
	rec := record.FromMap(map[string]any{
		"id":     "user-2",
		"straat": "Oude Straat",
		"adres": map[string]any{
			"straat":     "Nieuwe Straat",
			"woonplaats": "Amsterdam",
		},
	})

	acct, err := Account(rec, types.RoleJobSeeker)
	require.NoError(t, err)
	assert.Equal(t, "Nieuwe Straat", acct.Address.Street)
	assert.Equal(t, "Amsterdam", acct.Address.City)
}

func TestAccount_RecruiterProfile(t *testing.T) {
	rec := record.FromMap(map[string]any{
		"id":           "rec-1",
		"bedrijfsnaam": "Acme BV",
		"website":      "https://acme.nl",
		"functie":      "HR Manager",
		"kvkNummer":    "12345678",
	})

	acct, err := Account(rec, types.RoleRecruiter)
	require.NoError(t, err)
	require.NotNil(t, acct.Recruiter)
	assert.Nil(t, acct.JobSeeker)
	assert.Equal(t, "Acme BV", acct.Recruiter.CompanyName)
	assert.Equal(t, "https://acme.nl", acct.Recruiter.CompanyWebsite)
	assert.Equal(t, "HR Manager", acct.Recruiter.Position)
	assert.Equal(t, "12345678", acct.Recruiter.KvkNumber)
}

func TestAccount_ProfileVariantMatchesRole(t *testing.T) {
	// The same raw record normalized under each role populates exactly the
	// matching profile variant.
	rec := record.FromMap(map[string]any{"id": "u"})

	seeker, err := Account(rec, types.RoleJobSeeker)
	require.NoError(t, err)
	assert.NotNil(t, seeker.JobSeeker)
	assert.Nil(t, seeker.Recruiter)

	recruiter, err := Account(rec, types.RoleRecruiter)
	require.NoError(t, err)
	assert.NotNil(t, recruiter.Recruiter)
	assert.Nil(t, recruiter.JobSeeker)
}

func TestAccount_UnknownKeysLandInExtra(t *testing.T) {
	rec := record.FromMap(map[string]any{
		"id":            "user-3",
		"mysteryField":  "kept",
		"legacyCounter": 7.0,
	})

	acct, err := Account(rec, types.RoleJobSeeker)
	require.NoError(t, err)
	assert.Equal(t, "kept", acct.Extra["mysteryField"])
	assert.Equal(t, 7.0, acct.Extra["legacyCounter"])
	assert.NotContains(t, acct.Extra, "id")
}

func TestAccount_MissingID(t *testing.T) {
	_, err := Account(record.FromMap(map[string]any{"naam": "X"}), types.RoleJobSeeker)
	var malformed *MalformedRecordError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, KindAccount, malformed.Kind)
}

func TestJob_AliasesAndCompanySync(t *testing.T) {
	rec := record.FromMap(map[string]any{
		"id":            "job-1",
		"functietitel":  "Go Developer",
		"bedrijfsnaam":  "Acme BV",
		"locatie":       "Rotterdam",
		"omschrijving":  "Backend werk",
		"salaris":       "4200",
		"dienstverband": "fulltime",
		"werkgeverId":   "rec-1",
		"aanmaakDatum":  "2024-03-01T10:00:00Z",
	})

	job, err := Job(rec)
	require.NoError(t, err)
	assert.Equal(t, "Go Developer", job.Title)
	// Only companyName-family keys present: Company is synchronized from it.
	assert.Equal(t, "Acme BV", job.Company)
	assert.Equal(t, "Rotterdam", job.Location)
	assert.Equal(t, "Backend werk", job.Description)
	assert.Equal(t, "4200", job.Salary)
	assert.Equal(t, "fulltime", job.EmploymentType)
	assert.Equal(t, "rec-1", job.RecruiterID)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), job.CreatedAt)
}

func TestJob_NumericSalaryCoerced(t *testing.T) {
	job, err := Job(record.FromMap(map[string]any{"id": "job-2", "salaris": 4200.0}))
	require.NoError(t, err)
	assert.Equal(t, "4200", job.Salary)
}

func TestNormalize_CanonicalRecordIsNoOp(t *testing.T) {
	// A record already using only canonical keys round-trips unchanged:
	// every canonical field carries the record's value and Extra stays empty.
	rec := record.FromMap(map[string]any{
		"id":          "job-3",
		"title":       "Data Engineer",
		"company":     "Beta NV",
		"location":    "Eindhoven",
		"description": "ETL",
		"status":      "open",
		"recruiterId": "rec-9",
	})

	first, err := Job(rec)
	require.NoError(t, err)

	second, err := Job(record.FromMap(map[string]any{
		"id":          first.ID,
		"title":       first.Title,
		"company":     first.Company,
		"location":    first.Location,
		"description": first.Description,
		"status":      first.Status,
		"recruiterId": first.RecruiterID,
	}))
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Empty(t, first.Extra)
}

func TestApplication_Aliases(t *testing.T) {
	rec := record.FromMap(map[string]any{
		"id":                "app-1",
		"vacatureId":        "job-1",
		"sollicitantId":     "user-1",
		"motivatie":         "Graag!",
		"status":            "pending",
		"sollicitatieDatum": "2024-04-02",
	})

	app, err := Application(rec)
	require.NoError(t, err)
	assert.Equal(t, "job-1", app.JobID)
	assert.Equal(t, "user-1", app.ApplicantID)
	assert.Equal(t, "Graag!", app.Motivation)
	assert.Equal(t, 2024, app.AppliedAt.Year())
}

func TestMeeting_Aliases(t *testing.T) {
	rec := record.FromMap(map[string]any{
		"id":          "meet-1",
		"onderwerp":   "Kennismaking",
		"kandidaatId": "user-1",
		"datum":       "2024-05-06T09:30:00Z",
		"locatie":     "Utrecht",
		"notities":    "meenemen: cv",
	})

	m, err := Meeting(rec)
	require.NoError(t, err)
	assert.Equal(t, "Kennismaking", m.Title)
	assert.Equal(t, "user-1", m.ParticipantID)
	assert.Equal(t, "Utrecht", m.Location)
	assert.Equal(t, "meenemen: cv", m.Notes)
	assert.Equal(t, 9, m.ScheduledAt.Hour())
}

func TestFavorite_KindInference(t *testing.T) {
	tests := []struct {
		name     string
		fields   map[string]any
		expected types.FavoriteKind
	}{
		{
			name:     "explicit kind",
			fields:   map[string]any{"id": "f1", "targetId": "x", "kind": "job"},
			expected: types.FavoriteJob,
		},
		{
			name:     "explicit dutch kind",
			fields:   map[string]any{"id": "f2", "targetId": "x", "soort": "Kandidaat"},
			expected: types.FavoriteCandidate,
		},
		{
			name:     "inferred from vacatureId alias",
			fields:   map[string]any{"id": "f3", "vacatureId": "job-1"},
			expected: types.FavoriteJob,
		},
		{
			name:     "inferred from kandidaatId alias",
			fields:   map[string]any{"id": "f4", "kandidaatId": "user-1"},
			expected: types.FavoriteCandidate,
		},
		{
			name:     "no signal defaults to candidate",
			fields:   map[string]any{"id": "f5", "targetId": "x"},
			expected: types.FavoriteCandidate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fav, err := Favorite(record.FromMap(tt.fields))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, fav.Kind)
		})
	}
}

func TestFavorite_TargetIDFromAlias(t *testing.T) {
	fav, err := Favorite(record.FromMap(map[string]any{
		"id":          "f6",
		"kandidaatId": "user-1",
		"userId":      "owner-1",
	}))
	require.NoError(t, err)
	assert.Equal(t, "user-1", fav.TargetID)
	assert.Equal(t, "owner-1", fav.OwnerID)
}
