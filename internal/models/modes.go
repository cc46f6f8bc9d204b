package models

// CarryForwardMode decides what a failed invoice fetch does during carry-forward
type CarryForwardMode string

const (
	// CarryForwardLenient records the failure as a warning and keeps going
	CarryForwardLenient CarryForwardMode = "lenient"
	// CarryForwardStrict aborts on the first failure
	CarryForwardStrict CarryForwardMode = "strict"
)

// Categorization modes
const (
	CategoryModeKeyword  = "keyword"
	CategoryModeExternal = "external"
)

// Data sources
const (
	DataSourceOrganizze = "organizze"
	DataSourceSample    = "sample"
)
