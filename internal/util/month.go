package util

import "time"

// MesReferenciaLayout is the wire format for month reference query params
const MesReferenciaLayout = "2006-01"

// MonthBounds returns the first and last day of the month containing ref,
// truncated to dates in UTC
func MonthBounds(ref time.Time) (time.Time, time.Time) {
	inicio := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	// Day 0 of the next month is the last day of this one
	fim := time.Date(ref.Year(), ref.Month()+1, 0, 0, 0, 0, 0, time.UTC)
	return inicio, fim
}

// ParseMesReferencia parses a yyyy-MM month reference
func ParseMesReferencia(s string) (time.Time, error) {
	return time.Parse(MesReferenciaLayout, s)
}
