package model

// AnalysisReport holds the counts and tallies computed by the analysis
// stage over a preprocessed surveillance table.
//
// Design decision: We keep the three scalar counts alongside the tallies
// (rather than deriving hospitalized/deaths from ByOutcome on demand)
// because the downstream summarize stage consumes exactly these three
// integers, and the report file format lists them as top-level lines.
type AnalysisReport struct {
	// TotalCases is the number of data rows in the input table.
	TotalCases int `json:"total_cases"`

	// Hospitalized is the number of rows whose outcome is exactly "Hospitalized".
	Hospitalized int `json:"hospitalized"`

	// Deaths is the number of rows whose outcome is exactly "Death".
	Deaths int `json:"deaths"`

	// ByDisease tallies rows per disease value.
	ByDisease Tally `json:"by_disease"`

	// ByOutcome tallies rows per outcome value.
	ByOutcome Tally `json:"by_outcome"`

	// ByVaccination tallies rows per vaccination status value.
	ByVaccination Tally `json:"by_vaccination"`
}

// NewAnalysisReport returns an AnalysisReport with initialized tallies.
func NewAnalysisReport() *AnalysisReport {
	return &AnalysisReport{
		ByDisease:     NewTally(),
		ByOutcome:     NewTally(),
		ByVaccination: NewTally(),
	}
}

// CountCase records one surveillance record into all counts and tallies.
func (r *AnalysisReport) CountCase(rec Record) {
	r.TotalCases++
	r.ByDisease.Add(rec.Get(FieldDisease))
	r.ByOutcome.Add(rec.Get(FieldOutcome))
	r.ByVaccination.Add(rec.Get(FieldVaccinationStatus))

	switch rec.Get(FieldOutcome) {
	case OutcomeHospitalized:
		r.Hospitalized++
	case OutcomeDeath:
		r.Deaths++
	}
}
