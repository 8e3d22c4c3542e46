package normalize

import (
	"strconv"
	"strings"
	"time"

	"github.com/Chesron92/PitchPro-webapp-sub001/internal/record"
	"github.com/Chesron92/PitchPro-webapp-sub001/internal/types"
)

// Kind names the entity kinds the normalizer understands.
type Kind string

const (
	// KindAccount normalizes user/account documents.
	KindAccount Kind = "account"
	// KindJob normalizes job posting documents.
	KindJob Kind = "job"
	// KindApplication normalizes application documents.
	KindApplication Kind = "application"
	// KindMeeting normalizes scheduled-meeting documents.
	KindMeeting Kind = "meeting"
	// KindFavorite normalizes favorite documents.
	KindFavorite Kind = "favorite"
)

func resolveString(rec record.RawRecord, f record.Field) string {
	v, ok := record.ResolveField(rec, f)
	if !ok {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case float64:
		// Legacy writers stored a few identifiers and numbers as JSON
		// numbers; keep them as their shortest decimal form.
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return ""
	}
}

func resolveTime(rec record.RawRecord, f record.Field) time.Time {
	v, ok := record.ResolveField(rec, f)
	if !ok {
		return time.Time{}
	}
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{time.RFC3339, "2006-01-02", "02-01-2006"} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	case float64:
		// Unix seconds; a handful of records store timestamps numerically.
		return time.Unix(int64(t), 0).UTC()
	}
	return time.Time{}
}

func resolveStrings(rec record.RawRecord, f record.Field) []string {
	v, ok := record.ResolveField(rec, f)
	if !ok {
		return []string{}
	}
	raw, ok := v.([]any)
	if !ok {
		if s, ok := v.(string); ok && s != "" {
			return []string{s}
		}
		return []string{}
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// extraBag returns every top-level key the normalizer did not consume,
// verbatim. Nothing is silently dropped.
func extraBag(rec record.RawRecord, consumed map[string]struct{}) map[string]any {
	var extra map[string]any
	for _, key := range rec.Keys() {
		if _, ok := consumed[key]; ok {
			continue
		}
		if extra == nil {
			extra = make(map[string]any)
		}
		extra[key], _ = rec.Get(key)
	}
	return extra
}

func requireID(rec record.RawRecord, kind Kind) (string, error) {
	id := resolveString(rec, fieldID)
	if id == "" {
		return "", &MalformedRecordError{Kind: kind, Message: "no extractable id"}
	}
	return id, nil
}

// -----------------------------------------------------------------------------
// Account
// -----------------------------------------------------------------------------

var accountConsumed = consumedKeys(
	fieldID, fieldEmail, fieldDisplayName,
	fieldStreet, fieldHouseNumber, fieldPostalCode, fieldCity, fieldCountry,
	fieldSkills, fieldAvailability, fieldCV, fieldExperience, fieldEducation,
	fieldCompanyName, fieldCompanyWebsite, fieldPosition, fieldKvkNumber,
	record.Field{Canonical: "address", Aliases: []string{"adres"}},
	record.Field{Canonical: "role", Aliases: []string{"userType", "profile"}},
)

// Account builds the canonical account entity from a raw user document. The
// populated profile variant always matches the supplied role; role resolution
// happens upstream so this stays a pure structural transform.
func Account(rec record.RawRecord, role types.CanonicalRole) (*types.Account, error) {
	id, err := requireID(rec, KindAccount)
	if err != nil {
		return nil, err
	}
	acct := &types.Account{
		ID:          id,
		Email:       resolveString(rec, fieldEmail),
		Role:        role,
		DisplayName: resolveString(rec, fieldDisplayName),
		Address:     address(rec),
		Extra:       extraBag(rec, accountConsumed),
	}
	switch role {
	case types.RoleRecruiter:
		acct.Recruiter = recruiterProfile(rec)
	default:
		acct.JobSeeker = jobSeekerProfile(rec)
	}
	return acct, nil
}

// address lifts flat legacy address fields into the nested sub-structure. A
// nested address/adres map wins over flat fields when both are present.
func address(rec record.RawRecord) types.Address {
	if nested, ok := rec.Map("address"); ok {
		return addressFrom(nested)
	}
	if nested, ok := rec.Map("adres"); ok {
		return addressFrom(nested)
	}
	return addressFrom(rec)
}

func addressFrom(rec record.RawRecord) types.Address {
	return types.Address{
		Street:      resolveString(rec, fieldStreet),
		HouseNumber: resolveString(rec, fieldHouseNumber),
		PostalCode:  resolveString(rec, fieldPostalCode),
		City:        resolveString(rec, fieldCity),
		Country:     resolveString(rec, fieldCountry),
	}
}

func jobSeekerProfile(rec record.RawRecord) *types.JobSeekerProfile {
	profile := &types.JobSeekerProfile{
		Skills:       resolveStrings(rec, fieldSkills),
		Availability: resolveString(rec, fieldAvailability),
		CV:           resolveString(rec, fieldCV),
		Experience:   []types.ExperienceEntry{},
		Education:    []types.EducationEntry{},
	}
	if raw, ok := record.ResolveField(rec, fieldExperience); ok {
		if items, ok := raw.([]any); ok {
			for _, item := range items {
				if m, ok := item.(map[string]any); ok {
					entry := record.FromMap(m)
					profile.Experience = append(profile.Experience, types.ExperienceEntry{
						Company:     resolveString(entry, fieldCompany),
						Title:       resolveString(entry, fieldPosition),
						Description: resolveString(entry, fieldDescription),
						StartDate:   resolveString(entry, record.Field{Canonical: "startDate", Aliases: []string{"startDatum", "van"}}),
						EndDate:     resolveString(entry, record.Field{Canonical: "endDate", Aliases: []string{"eindDatum", "tot"}}),
					})
				}
			}
		}
	}
	if raw, ok := record.ResolveField(rec, fieldEducation); ok {
		if items, ok := raw.([]any); ok {
			for _, item := range items {
				if m, ok := item.(map[string]any); ok {
					entry := record.FromMap(m)
					profile.Education = append(profile.Education, types.EducationEntry{
						School:    resolveString(entry, record.Field{Canonical: "school", Aliases: []string{"instituut", "institution"}}),
						Degree:    resolveString(entry, record.Field{Canonical: "degree", Aliases: []string{"diploma", "niveau"}}),
						Field:     resolveString(entry, record.Field{Canonical: "field", Aliases: []string{"richting", "studie"}}),
						StartDate: resolveString(entry, record.Field{Canonical: "startDate", Aliases: []string{"startDatum", "van"}}),
						EndDate:   resolveString(entry, record.Field{Canonical: "endDate", Aliases: []string{"eindDatum", "tot"}}),
					})
				}
			}
		}
	}
	return profile
}

func recruiterProfile(rec record.RawRecord) *types.RecruiterProfile {
	profile := &types.RecruiterProfile{
		CompanyName:    resolveString(rec, fieldCompanyName),
		CompanyWebsite: resolveString(rec, fieldCompanyWebsite),
		Position:       resolveString(rec, fieldPosition),
		KvkNumber:      resolveString(rec, fieldKvkNumber),
	}
	return profile
}

// -----------------------------------------------------------------------------
// Job posting
// -----------------------------------------------------------------------------

var jobConsumed = consumedKeys(
	fieldID, fieldTitle, fieldCompanyName, fieldCompany, fieldLocation,
	fieldDescription, fieldStatus, fieldSalary, fieldEmploymentType,
	fieldRecruiterID, fieldCreatedAt,
)

// Job builds the canonical job posting from a raw document of any of the
// legacy job collections. Company and companyName are kept synchronized:
// whichever one the record carries fills the canonical Company field.
func Job(rec record.RawRecord) (types.JobPosting, error) {
	id, err := requireID(rec, KindJob)
	if err != nil {
		return types.JobPosting{}, err
	}
	company := resolveString(rec, fieldCompany)
	if company == "" {
		company = resolveString(rec, fieldCompanyName)
	}
	return types.JobPosting{
		ID:             id,
		Title:          resolveString(rec, fieldTitle),
		Company:        company,
		Location:       resolveString(rec, fieldLocation),
		Description:    resolveString(rec, fieldDescription),
		Status:         resolveString(rec, fieldStatus),
		Salary:         resolveString(rec, fieldSalary),
		EmploymentType: resolveString(rec, fieldEmploymentType),
		RecruiterID:    resolveString(rec, fieldRecruiterID),
		CreatedAt:      resolveTime(rec, fieldCreatedAt),
		Extra:          extraBag(rec, jobConsumed),
	}, nil
}

// -----------------------------------------------------------------------------
// Application
// -----------------------------------------------------------------------------

var applicationConsumed = consumedKeys(
	fieldID, fieldJobID, fieldJobTitle, fieldApplicantID, fieldCompany,
	fieldStatus, fieldMotivation, fieldAppliedAt,
)

// Application builds the canonical application entity.
func Application(rec record.RawRecord) (types.Application, error) {
	id, err := requireID(rec, KindApplication)
	if err != nil {
		return types.Application{}, err
	}
	return types.Application{
		ID:          id,
		JobID:       resolveString(rec, fieldJobID),
		JobTitle:    resolveString(rec, fieldJobTitle),
		ApplicantID: resolveString(rec, fieldApplicantID),
		Company:     resolveString(rec, fieldCompany),
		Status:      resolveString(rec, fieldStatus),
		Motivation:  resolveString(rec, fieldMotivation),
		AppliedAt:   resolveTime(rec, fieldAppliedAt),
		Extra:       extraBag(rec, applicationConsumed),
	}, nil
}

// -----------------------------------------------------------------------------
// Meeting
// -----------------------------------------------------------------------------

var meetingConsumed = consumedKeys(
	fieldID, fieldMeetingTitle, fieldJobID, fieldParticipantID,
	fieldLocation, fieldNotes, fieldStatus, fieldScheduledAt,
)

// Meeting builds the canonical scheduled-meeting entity.
func Meeting(rec record.RawRecord) (types.Meeting, error) {
	id, err := requireID(rec, KindMeeting)
	if err != nil {
		return types.Meeting{}, err
	}
	return types.Meeting{
		ID:            id,
		Title:         resolveString(rec, fieldMeetingTitle),
		JobID:         resolveString(rec, fieldJobID),
		ParticipantID: resolveString(rec, fieldParticipantID),
		Location:      resolveString(rec, fieldLocation),
		Notes:         resolveString(rec, fieldNotes),
		Status:        resolveString(rec, fieldStatus),
		ScheduledAt:   resolveTime(rec, fieldScheduledAt),
		Extra:         extraBag(rec, meetingConsumed),
	}, nil
}

// -----------------------------------------------------------------------------
// Favorite
// -----------------------------------------------------------------------------

var favoriteConsumed = consumedKeys(
	fieldID, fieldOwnerID, fieldTargetID, fieldTargetKind, fieldAddedAt,
)

// favoriteKindWords maps explicit kind markers to the canonical discriminator.
var favoriteKindWords = map[string]types.FavoriteKind{
	"job":       types.FavoriteJob,
	"vacature":  types.FavoriteJob,
	"posting":   types.FavoriteJob,
	"candidate": types.FavoriteCandidate,
	"kandidaat": types.FavoriteCandidate,
	"seeker":    types.FavoriteCandidate,
}

// Favorite builds the canonical favorite entity. When the record carries no
// explicit kind, the alias that supplied the target id decides: kandidaatId
// and candidateId mark candidate favorites, vacatureId and jobId mark job
// favorites. Records with neither signal default to candidate, which the
// enrichment filter then verifies against the referenced account.
func Favorite(rec record.RawRecord) (types.FavoriteEntry, error) {
	id, err := requireID(rec, KindFavorite)
	if err != nil {
		return types.FavoriteEntry{}, err
	}
	fav := types.FavoriteEntry{
		ID:       id,
		OwnerID:  resolveString(rec, fieldOwnerID),
		TargetID: resolveString(rec, fieldTargetID),
		Kind:     favoriteKind(rec),
		AddedAt:  resolveTime(rec, fieldAddedAt),
		Extra:    extraBag(rec, favoriteConsumed),
	}
	return fav, nil
}

func favoriteKind(rec record.RawRecord) types.FavoriteKind {
	if word := resolveString(rec, fieldTargetKind); word != "" {
		if kind, ok := favoriteKindWords[strings.ToLower(strings.TrimSpace(word))]; ok {
			return kind
		}
	}
	switch record.SourceKey(rec, fieldTargetID) {
	case "vacatureId", "jobId":
		return types.FavoriteJob
	case "kandidaatId", "candidateId":
		return types.FavoriteCandidate
	}
	return types.FavoriteCandidate
}
