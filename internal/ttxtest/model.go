package ttxtest

// ExpectedName is a normalized model of a 'name' table as derived from TTX.
// It intentionally only covers the subset of fields needed for tests.
type ExpectedName struct {
	Records []ExpectedNameRecord
}

// ExpectedNameRecord represents a single <namerecord> of a TTX dump.
type ExpectedNameRecord struct {
	NameID     uint16
	PlatformID uint16
	EncodingID uint16
	LanguageID uint16
	Value      string // whitespace around the text is trimmed
}

// Find returns the first record with the given identifiers.
func (n *ExpectedName) Find(platform, encoding, language, nameID uint16) (ExpectedNameRecord, bool) {
	for _, r := range n.Records {
		if r.PlatformID == platform && r.EncodingID == encoding &&
			r.LanguageID == language && r.NameID == nameID {
			return r, true
		}
	}
	return ExpectedNameRecord{}, false
}
