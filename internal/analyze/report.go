package analyze

import (
	"bufio"
	"fmt"
	"io"

	"github.com/episurv/episurv/internal/model"
)

// Keys of the three scalar lines at the top of the analysis report.
// The summarize stage accepts exactly these when re-parsing the report.
const (
	// KeyTotalCases labels the total record count line.
	KeyTotalCases = "total_cases"

	// KeyHospitalized labels the hospitalized count line.
	KeyHospitalized = "hospitalized"

	// KeyDeaths labels the death count line.
	KeyDeaths = "deaths"
)

// Section headers of the three tally sections, in output order.
const (
	// SectionByDisease labels the per-disease tally.
	SectionByDisease = "by_disease"

	// SectionByOutcome labels the per-outcome tally.
	SectionByOutcome = "by_outcome"

	// SectionByVaccination labels the per-vaccination-status tally.
	SectionByVaccination = "by_vaccination"
)

// WriteReport emits the analysis report in its fixed text layout:
// three tab-separated scalar lines, then three blank-line-separated
// sections whose entries are indented two spaces and sorted by
// descending count (ties by ascending category string).
func WriteReport(w io.Writer, report *model.AnalysisReport) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%s\t%d\n", KeyTotalCases, report.TotalCases)
	fmt.Fprintf(bw, "%s\t%d\n", KeyHospitalized, report.Hospitalized)
	fmt.Fprintf(bw, "%s\t%d\n", KeyDeaths, report.Deaths)

	writeSection(bw, SectionByDisease, report.ByDisease)
	writeSection(bw, SectionByOutcome, report.ByOutcome)
	writeSection(bw, SectionByVaccination, report.ByVaccination)

	return bw.Flush()
}

// writeSection emits one blank-line-separated tally section.
func writeSection(w io.Writer, name string, tally model.Tally) {
	fmt.Fprintf(w, "\n%s\n", name)
	for _, entry := range tally.Entries() {
		fmt.Fprintf(w, "  %s\t%d\n", entry.Value, entry.Count)
	}
}
