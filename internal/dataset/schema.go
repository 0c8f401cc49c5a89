package dataset

// FieldType is the declared type of a dataset column.
type FieldType uint8

const (
	// FieldText stores the raw cell text without validation.
	FieldText FieldType = iota
	// FieldInteger parses the cell as a base-10 integer.
	FieldInteger
	// FieldFloat parses the cell as a floating point number.
	FieldFloat
	// FieldBinary accepts only the literal text "0" or "1".
	FieldBinary
	// FieldCategory stores the cell text and checks it against an allowed set.
	FieldCategory
)

// String returns the string representation of the FieldType.
func (t FieldType) String() string {
	switch t {
	case FieldText:
		return "text"
	case FieldInteger:
		return "integer"
	case FieldFloat:
		return "float"
	case FieldBinary:
		return "binary"
	case FieldCategory:
		return "category"
	default:
		return "unknown"
	}
}

// Field describes one column of the schema.
type Field struct {
	Name string
	Type FieldType
	// Allowed lists accepted values for FieldCategory columns.
	Allowed []string
}

// Allows reports whether s is in the field's allowed set. Fields without an
// allowed set accept everything.
func (f Field) Allows(s string) bool {
	if len(f.Allowed) == 0 {
		return true
	}
	for _, a := range f.Allowed {
		if a == s {
			return true
		}
	}
	return false
}

// Schema maps column names to their declared field.
type Schema map[string]Field

// Well-known column names.
const (
	ColID               = "ID"
	ColAge              = "Age"
	ColGender           = "Gender"
	ColHypertension     = "Hypertension"
	ColHeartDisease     = "Heart Disease"
	ColSmokingStatus    = "Smoking Status"
	ColResidenceType    = "Residence Type"
	ColDietaryHabits    = "Dietary Habits"
	ColGlucose          = "Average Glucose Level"
	ColSleepHours       = "Sleep Hours"
	ColStrokeOccurrence = "Stroke Occurrence"
)

// DefaultSchema returns the stroke dataset schema.
func DefaultSchema() Schema {
	s := Schema{}
	s.add(FieldInteger, ColAge)
	s.add(FieldFloat, ColGlucose, "BMI", ColSleepHours, "Stroke Risk Score")
	s.add(FieldBinary,
		ColHypertension, ColHeartDisease, "Ever Married", "Alcohol Consumption",
		"Chronic Stress", "Family History of Stroke", ColStrokeOccurrence,
	)
	s[ColGender] = Field{Name: ColGender, Type: FieldCategory, Allowed: []string{"Male", "Female", "Other"}}
	s.add(FieldText, ColID, ColSmokingStatus, ColResidenceType, ColDietaryHabits)
	return s
}

func (s Schema) add(t FieldType, names ...string) {
	for _, n := range names {
		s[n] = Field{Name: n, Type: t}
	}
}

// Lookup returns the declared field for name. Columns the schema does not
// name are treated as text.
func (s Schema) Lookup(name string) Field {
	if f, ok := s[name]; ok {
		return f
	}
	return Field{Name: name, Type: FieldText}
}
