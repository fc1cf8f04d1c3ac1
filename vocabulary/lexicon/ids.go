package lexicon

import "strings"

// IDPrefix is prepended to dump ids in the xml:id of target entries.
const IDPrefix = "tla"

// StripID removes everything up to and including the first IDPrefix.
// Ids without the prefix are returned unchanged.
func StripID(xmlID string) string {
	if _, after, found := strings.Cut(xmlID, IDPrefix); found {
		return after
	}
	return xmlID
}

// PrefixID returns the target form of a dump id.
func PrefixID(id string) string {
	return IDPrefix + id
}
