package role

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chesron92/PitchPro-webapp-sub001/internal/record"
	"github.com/Chesron92/PitchPro-webapp-sub001/internal/types"
)

func rec(fields map[string]any) record.RawRecord {
	return record.FromMap(fields)
}

func TestResolve_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		fields   map[string]any
		hint     string
		expected types.CanonicalRole
		rule     string
	}{
		{
			name:     "role field jobseeker",
			fields:   map[string]any{"role": "jobseeker"},
			expected: types.RoleJobSeeker,
			rule:     "role",
		},
		{
			name:     "userType Recruiter case variant",
			fields:   map[string]any{"userType": "Recruiter"},
			expected: types.RoleRecruiter,
			rule:     "userType",
		},
		{
			name:     "dutch synonym werkzoekende",
			fields:   map[string]any{"userType": "Werkzoekende"},
			expected: types.RoleJobSeeker,
			rule:     "userType",
		},
		{
			name:     "nested profile userType",
			fields:   map[string]any{"profile": map[string]any{"userType": "recruiter"}},
			expected: types.RoleRecruiter,
			rule:     "profile.userType",
		},
		{
			name:     "session hint only",
			fields:   map[string]any{},
			hint:     "recruiter",
			expected: types.RoleRecruiter,
			rule:     "sessionHint",
		},
		{
			name:     "structural marker werkervaring",
			fields:   map[string]any{"werkervaring": []any{map[string]any{"bedrijf": "Acme"}}},
			expected: types.RoleJobSeeker,
			rule:     "jobSeekerMarkers",
		},
		{
			name:     "structural marker cv",
			fields:   map[string]any{"cv": map[string]any{"url": "cv.pdf"}},
			expected: types.RoleJobSeeker,
			rule:     "jobSeekerMarkers",
		},
		{
			name:     "structural marker empty array does not count",
			fields:   map[string]any{"vaardigheden": []any{}},
			expected: types.RoleJobSeeker,
			rule:     "default",
		},
		{
			name:     "recruiter marker bedrijfsnaam",
			fields:   map[string]any{"bedrijfsnaam": "Acme BV"},
			expected: types.RoleRecruiter,
			rule:     "recruiterMarkers",
		},
		{
			name:     "recruiter marker nested kvk",
			fields:   map[string]any{"profile": map[string]any{"company": map[string]any{"kvkNummer": "12345678"}}},
			expected: types.RoleRecruiter,
			rule:     "recruiterMarkers",
		},
		{
			name:     "fully empty record defaults to job seeker",
			fields:   map[string]any{},
			expected: types.RoleJobSeeker,
			rule:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, rule := ResolveWithRule(rec(tt.fields), tt.hint)
			assert.Equal(t, tt.expected, resolved)
			assert.Equal(t, tt.rule, rule)
		})
	}
}

// The chain order is contractual; these cases pin which signal wins when
// several are present.
func TestResolve_Precedence(t *testing.T) {
	t.Run("userType beats role", func(t *testing.T) {
		r := Resolve(rec(map[string]any{
			"userType": "recruiter",
			"role":     "jobseeker",
		}), "")
		assert.Equal(t, types.RoleRecruiter, r)
	})

	t.Run("role beats nested profile", func(t *testing.T) {
		r := Resolve(rec(map[string]any{
			"role":    "jobseeker",
			"profile": map[string]any{"userType": "recruiter"},
		}), "")
		assert.Equal(t, types.RoleJobSeeker, r)
	})

	t.Run("explicit fields beat session hint", func(t *testing.T) {
		r := Resolve(rec(map[string]any{"role": "recruiter"}), "jobseeker")
		assert.Equal(t, types.RoleRecruiter, r)
	})

	t.Run("session hint beats structural markers", func(t *testing.T) {
		r := Resolve(rec(map[string]any{
			"werkervaring": []any{map[string]any{"bedrijf": "Acme"}},
		}), "recruiter")
		assert.Equal(t, types.RoleRecruiter, r)
	})

	t.Run("job seeker markers beat recruiter markers", func(t *testing.T) {
		r := Resolve(rec(map[string]any{
			"cv":           "cv.pdf",
			"bedrijfsnaam": "Acme BV",
		}), "")
		assert.Equal(t, types.RoleJobSeeker, r)
	})

	t.Run("unrecognized role word falls through", func(t *testing.T) {
		r := Resolve(rec(map[string]any{
			"userType":     "administrator",
			"bedrijfsnaam": "Acme BV",
		}), "")
		assert.Equal(t, types.RoleRecruiter, r)
	})
}

func TestResolve_Totality(t *testing.T) {
	// A zero record and empty hint must still resolve, never panic.
	var zero record.RawRecord
	assert.Equal(t, DefaultRole, Resolve(zero, ""))
}

func TestResolve_Deterministic(t *testing.T) {
	fields := map[string]any{
		"vaardigheden": []any{"Go", "SQL"},
		"profile":      map[string]any{"bio": "hello"},
	}
	first := Resolve(rec(fields), "")
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, Resolve(rec(fields), ""))
	}
}

func TestNormalize_Synonyms(t *testing.T) {
	for word, expected := range map[string]types.CanonicalRole{
		"werkzoekende": types.RoleJobSeeker,
		"Werkzoekende": types.RoleJobSeeker,
		"jobseeker":    types.RoleJobSeeker,
		"recruiter":    types.RoleRecruiter,
		"Recruiter":    types.RoleRecruiter,
		"  recruiter ": types.RoleRecruiter,
	} {
		r, ok := Normalize(word)
		require.True(t, ok, word)
		assert.Equal(t, expected, r, word)
	}

	_, ok := Normalize("moderator")
	assert.False(t, ok)
}

func TestChain_Shape(t *testing.T) {
	// The last rule must be the total default; everything before it must be
	// able to pass.
	require.NotEmpty(t, Chain)
	last := Chain[len(Chain)-1]
	assert.Equal(t, "default", last.Name)

	r, ok := last.Match(record.RawRecord{}, "")
	require.True(t, ok)
	assert.Equal(t, DefaultRole, r)
}
