package types

// Custom Field Types in Mailtrain-Go
//
// Every custom field of a Mailtrain list has one of the types below.
// The type decides how the value is rendered on the subscription
// and profile pages, and how it is merged into campaigns.
//
// Available Types:
// - text          Text
// - website       Website
// - longtext      Multi-line text
// - gpg           GPG Public Key
// - number        Number
// - radio         Radio Buttons (option group)
// - checkbox      Checkboxes (option group)
// - dropdown      Drop Down (option group)
// - date-us       Date (MM/DD/YYYY)
// - date-eur      Date (DD/MM/YYYY)
// - birthday-us   Birthday (MM/DD)
// - birthday-eur  Birthday (DD/MM)
// - json          JSON value for custom rendering
// - option        Option, a member of a radio/checkbox/dropdown group
//
// Usage:
//
//	// Parse type from string name
//	fieldType := types.FieldTypes.Parse("date-eur")
//
//	// Check if type is known
//	isKnown := types.FieldTypes.IsKnown(fieldType)
//
// Important Notes:
// - An "option" field must reference its parent group field (Group)
// - Values of option fields are sent as "yes"/"no" when subscribing

type FieldType string

const (
	fieldTypeUnknown FieldType = ""
)

type fieldTypes struct {
	Text        FieldType
	Website     FieldType
	LongText    FieldType
	Gpg         FieldType
	Number      FieldType
	Radio       FieldType
	Checkbox    FieldType
	Dropdown    FieldType
	DateUs      FieldType
	DateEur     FieldType
	BirthdayUs  FieldType
	BirthdayEur FieldType
	Json        FieldType
	Option      FieldType
	Unknown     FieldType
}

var (
	FieldTypes = fieldTypes{
		Text:        "text",
		Website:     "website",
		LongText:    "longtext",
		Gpg:         "gpg",
		Number:      "number",
		Radio:       "radio",
		Checkbox:    "checkbox",
		Dropdown:    "dropdown",
		DateUs:      "date-us",
		DateEur:     "date-eur",
		BirthdayUs:  "birthday-us",
		BirthdayEur: "birthday-eur",
		Json:        "json",
		Option:      "option",
		Unknown:     fieldTypeUnknown,
	}
)

// All returns the known field types in the order Mailtrain lists them.
func (f fieldTypes) All() []FieldType {
	return []FieldType{
		f.Text,
		f.Website,
		f.LongText,
		f.Gpg,
		f.Number,
		f.Radio,
		f.Checkbox,
		f.Dropdown,
		f.DateUs,
		f.DateEur,
		f.BirthdayUs,
		f.BirthdayEur,
		f.Json,
		f.Option,
	}
}

func (f fieldTypes) Parse(name string) FieldType {
	for _, t := range f.All() {
		if string(t) == name {
			return t
		}
	}
	return f.Unknown
}

func (f fieldTypes) IsKnown(t FieldType) bool {
	return f.Parse(string(t)) != f.Unknown
}

// IsGroup reports whether fields of type t hold a set of options.
func (f fieldTypes) IsGroup(t FieldType) bool {
	switch t {
	case f.Radio, f.Checkbox, f.Dropdown:
		return true
	}
	return false
}

func (t FieldType) String() string {
	return string(t)
}
