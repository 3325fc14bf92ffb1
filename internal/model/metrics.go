package model

// Metric names as they appear in the summary report's first column.
// These are fixed, well-known literals shared by the summarize stage
// (which writes them) and the visualize/report stages (which read them).
const (
	// MetricTotalCases is the total number of cases.
	MetricTotalCases = "Total Cases"

	// MetricHospitalized is the number of hospitalized cases.
	MetricHospitalized = "Hospitalized"

	// MetricDeaths is the number of deaths.
	MetricDeaths = "Deaths"

	// MetricHospitalizationRate is the hospitalization rate in percent.
	MetricHospitalizationRate = "Hospitalization Rate (%)"

	// MetricCaseFatalityRate is the case fatality rate in percent.
	MetricCaseFatalityRate = "Case Fatality Rate (%)"
)

// Metrics is the bundle of five named numeric values handed from the
// summarize stage to the visualize and report stages. Missing metrics
// default to zero; counts are stored as float64 because the report file
// carries them as free-form numeric text.
type Metrics struct {
	// TotalCases is the total number of cases.
	TotalCases float64 `json:"total_cases"`

	// Hospitalized is the number of hospitalized cases.
	Hospitalized float64 `json:"hospitalized"`

	// Deaths is the number of deaths.
	Deaths float64 `json:"deaths"`

	// HospitalizationRate is hospitalized/total in percent.
	HospitalizationRate float64 `json:"hospitalization_rate"`

	// CaseFatalityRate is deaths/total in percent.
	CaseFatalityRate float64 `json:"case_fatality_rate"`
}

// Recovered derives the recovered-case count shown in the dashboard's
// outcome panel. It is computed, never read from the report file.
func (m *Metrics) Recovered() float64 {
	return m.TotalCases - m.Hospitalized - m.Deaths
}

// Set assigns the metric with the given report name. Unknown names are
// ignored and reported via the return value so callers can record them
// as issues without failing.
func (m *Metrics) Set(name string, value float64) bool {
	switch name {
	case MetricTotalCases:
		m.TotalCases = value
	case MetricHospitalized:
		m.Hospitalized = value
	case MetricDeaths:
		m.Deaths = value
	case MetricHospitalizationRate:
		m.HospitalizationRate = value
	case MetricCaseFatalityRate:
		m.CaseFatalityRate = value
	default:
		return false
	}
	return true
}
