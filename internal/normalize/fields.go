// Package normalize converts raw, inconsistently named store documents into
// the canonical entities of the dashboard. Field alias tables are declared
// here once, per entity kind; the record package does the actual lookups.
package normalize

import "github.com/Chesron92/PitchPro-webapp-sub001/internal/record"

// Alias tables. Order matters: when a record carries several legacy
// spellings of the same field, the earlier name wins.
var (
	fieldID          = record.Field{Canonical: "id", Aliases: []string{"uid", "docId", "documentId"}}
	fieldEmail       = record.Field{Canonical: "email", Aliases: []string{"emailadres", "mail"}}
	fieldDisplayName = record.Field{Canonical: "displayName", Aliases: []string{"naam", "name", "fullName", "volledigeNaam"}}

	fieldStreet      = record.Field{Canonical: "street", Aliases: []string{"straat", "straatnaam"}}
	fieldHouseNumber = record.Field{Canonical: "houseNumber", Aliases: []string{"huisnummer"}}
	fieldPostalCode  = record.Field{Canonical: "postalCode", Aliases: []string{"postcode"}}
	fieldCity        = record.Field{Canonical: "city", Aliases: []string{"woonplaats", "plaats", "stad"}}
	fieldCountry     = record.Field{Canonical: "country", Aliases: []string{"land"}}

	fieldSkills       = record.Field{Canonical: "skills", Aliases: []string{"vaardigheden"}}
	fieldAvailability = record.Field{Canonical: "availability", Aliases: []string{"beschikbaarheid"}}
	fieldCV           = record.Field{Canonical: "cv", Aliases: []string{"curriculumVitae", "resume"}}
	fieldExperience   = record.Field{Canonical: "experience", Aliases: []string{"werkervaring", "workHistory"}}
	fieldEducation    = record.Field{Canonical: "education", Aliases: []string{"opleidingen", "opleiding"}}

	fieldCompanyName    = record.Field{Canonical: "companyName", Aliases: []string{"bedrijfsnaam", "company", "bedrijf"}}
	fieldCompany        = record.Field{Canonical: "company", Aliases: []string{"bedrijf", "companyName", "bedrijfsnaam"}}
	fieldCompanyWebsite = record.Field{Canonical: "companyWebsite", Aliases: []string{"website", "bedrijfswebsite"}}
	fieldPosition       = record.Field{Canonical: "position", Aliases: []string{"functie", "positie"}}
	fieldKvkNumber      = record.Field{Canonical: "kvkNumber", Aliases: []string{"kvkNummer", "kvk"}}

	fieldTitle          = record.Field{Canonical: "title", Aliases: []string{"titel", "functietitel", "jobTitle"}}
	fieldLocation       = record.Field{Canonical: "location", Aliases: []string{"locatie", "plaats"}}
	fieldDescription    = record.Field{Canonical: "description", Aliases: []string{"beschrijving", "omschrijving"}}
	fieldStatus         = record.Field{Canonical: "status", Aliases: []string{"staat"}}
	fieldSalary         = record.Field{Canonical: "salary", Aliases: []string{"salaris", "loon"}}
	fieldEmploymentType = record.Field{Canonical: "employmentType", Aliases: []string{"dienstverband", "contractType"}}
	fieldRecruiterID    = record.Field{Canonical: "recruiterId", Aliases: []string{"werkgeverId", "employerId", "ownerId"}}
	fieldCreatedAt      = record.Field{Canonical: "createdAt", Aliases: []string{"aanmaakDatum", "created", "datum"}}

	fieldJobID       = record.Field{Canonical: "jobId", Aliases: []string{"vacatureId", "postingId"}}
	fieldJobTitle    = record.Field{Canonical: "jobTitle", Aliases: []string{"vacatureTitel", "functietitel"}}
	fieldApplicantID = record.Field{Canonical: "applicantId", Aliases: []string{"sollicitantId", "werkzoekendeId", "userId"}}
	fieldMotivation  = record.Field{Canonical: "motivation", Aliases: []string{"motivatie", "motivationLetter"}}
	fieldAppliedAt   = record.Field{Canonical: "appliedAt", Aliases: []string{"sollicitatieDatum", "createdAt", "aanmaakDatum"}}

	fieldMeetingTitle  = record.Field{Canonical: "title", Aliases: []string{"titel", "onderwerp", "subject"}}
	fieldParticipantID = record.Field{Canonical: "participantId", Aliases: []string{"deelnemerId", "withUserId", "kandidaatId"}}
	fieldNotes         = record.Field{Canonical: "notes", Aliases: []string{"notities", "opmerkingen"}}
	fieldScheduledAt   = record.Field{Canonical: "scheduledAt", Aliases: []string{"datum", "startTijd", "startTime", "date"}}

	fieldOwnerID    = record.Field{Canonical: "ownerId", Aliases: []string{"userId", "eigenaarId", "recruiterId"}}
	fieldTargetID   = record.Field{Canonical: "targetId", Aliases: []string{"kandidaatId", "candidateId", "vacatureId", "jobId", "favorietId"}}
	fieldTargetKind = record.Field{Canonical: "kind", Aliases: []string{"type", "soort"}}
	fieldAddedAt    = record.Field{Canonical: "addedAt", Aliases: []string{"toegevoegdOp", "createdAt", "aanmaakDatum"}}
)

// consumedKeys collects every key a set of field declarations can read, so
// that everything else can be carried through verbatim into Extra.
func consumedKeys(fields ...record.Field) map[string]struct{} {
	keys := make(map[string]struct{})
	for _, f := range fields {
		keys[f.Canonical] = struct{}{}
		for _, a := range f.Aliases {
			keys[a] = struct{}{}
		}
	}
	return keys
}
