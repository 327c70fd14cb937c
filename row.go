package gridview

// Row is one record as handed over by the consumer's data layer, a mapping
// from field name to scalar value.
type Row map[string]any

// KeyOf extracts the primary key of a row. When keyField names an existing
// field its value is the key; otherwise fallback is returned as-is, so
// records that expose their key as their own identity rather than a field
// keep working.
func KeyOf(row Row, keyField string, fallback any) any {
	if v, ok := row[keyField]; ok {
		return v
	}

	return fallback
}
