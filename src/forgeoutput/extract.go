package forgeoutput

import (
	"strings"
)

// CsvHeader is the header line the staking contract's forge script prints
// before its data rows.
const CsvHeader = "tokens,lockup_days,multiplier"

// ExtractCsv scans free-form forge script output and reassembles the CSV
// rows embedded in it. A line is kept when it is the literal header, or
// when it contains a comma and consists solely of digits once commas and
// spaces are stripped. Lines with decimal points are dropped, a known
// limitation. Returns an empty string when nothing matches.
func ExtractCsv(forgeOutput string) string {
	lines := strings.Split(strings.TrimSpace(forgeOutput), "\n")

	var csvLines []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == CsvHeader {
			csvLines = append(csvLines, trimmed)
			continue
		}

		if strings.Contains(line, ",") && isAllDigits(stripSeparators(line)) {
			csvLines = append(csvLines, trimmed)
		}
	}

	return strings.Join(csvLines, "\n")
}

// CountDataRows returns the number of non-header lines in a CSV blob.
func CountDataRows(csvContent string) int {
	if csvContent == "" {
		return 0
	}

	count := 0
	for _, line := range strings.Split(csvContent, "\n") {
		if strings.TrimSpace(line) != CsvHeader {
			count++
		}
	}

	return count
}

func stripSeparators(line string) string {
	line = strings.ReplaceAll(line, ",", "")
	return strings.ReplaceAll(line, " ", "")
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}

	return true
}
