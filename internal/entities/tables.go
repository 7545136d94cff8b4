package entities

// sensitivePlaceholders maps replaceable entity types to their placeholder
// prefixes. Types absent from this table are detected but never replaced.
// Static configuration: adjust the table, not the pipeline.
var sensitivePlaceholders = map[string]string{
	"PERSON":         "PERSON_",
	"ORGANIZATION":   "ORG_",
	"LOCATION":       "LOC_",
	"ADDRESS":        "ADDR_",
	"PHONE_NUMBER":   "PHONE_",
	"EMAIL":          "EMAIL_",
	"DATE":           "DATE_",
	"MONEY":          "AMT_",
	"PERCENT":        "PCT_",
	"NUMBER":         "NUM_",
	"CONTRACT_ID":    "CONTRACT_",
	"CASE_NUMBER":    "CASE_",
	"LICENSE_NUMBER": "LICENSE_",
	"PAN_NUMBER":     "PAN_",
	"AADHAR_NUMBER":  "AADHAR_",
	"GST_NUMBER":     "GST_",
}
