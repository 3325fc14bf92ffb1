package model

// Well-known column names in surveillance tables.
// The analysis stage tallies these three categorical fields; any other
// columns in the input are carried in the record but ignored.
const (
	// FieldDisease is the column holding the reported disease name.
	FieldDisease = "disease"

	// FieldOutcome is the column holding the case outcome
	// (e.g. "Recovered", "Hospitalized", "Death").
	FieldOutcome = "outcome"

	// FieldVaccinationStatus is the column holding the vaccination status.
	FieldVaccinationStatus = "vaccination_status"
)

// Outcome values matched exactly (case-sensitive) by the analysis stage.
const (
	// OutcomeHospitalized marks a case that required hospitalization.
	OutcomeHospitalized = "Hospitalized"

	// OutcomeDeath marks a fatal case.
	OutcomeDeath = "Death"
)

// Record is a single data row of a surveillance table, keyed by header
// column name. Columns missing from a short row are simply absent from
// the map; Get turns absence into the empty string so that malformed
// rows degrade to empty-string tally buckets rather than errors.
type Record map[string]string

// Get returns the value of the named field, or "" if the field is absent.
func (r Record) Get(field string) string {
	return r[field]
}
