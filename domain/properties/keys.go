package properties

import (
	"regexp"
	"strings"

	apperrors "unicorn-properties/pkg/errors"
)

// PropertyIDPattern is the accepted shape of a property identifier:
// <country>/<city>/<street>/<number>, lower-cased, hyphenated.
const PropertyIDPattern = `[a-z-]+/[a-z-]+/[a-z][a-z0-9-]*/[0-9-]+`

var propertyIDRegexp = regexp.MustCompile(`^` + PropertyIDPattern + `$`)

// ValidPropertyID reports whether id conforms to PropertyIDPattern.
func ValidPropertyID(id string) bool {
	return propertyIDRegexp.MatchString(id)
}

// ParsePropertyID splits a property identifier into its address parts.
func ParsePropertyID(id string) (country, city, street, number string, err error) {
	if !ValidPropertyID(id) {
		return "", "", "", "", apperrors.NewValidation(
			"property id must conform to regular expression: " + PropertyIDPattern)
	}
	parts := strings.Split(id, "/")
	return parts[0], parts[1], parts[2], parts[3], nil
}

// normalizeSegment lower-cases a key segment and replaces spaces with
// hyphens. The result must stay bit-for-bit compatible with existing
// table keys.
func normalizeSegment(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, " ", "-"))
}

// PartitionKey derives the properties table partition key:
// property#<country>#<city>.
func PartitionKey(country, city string) string {
	return "property#" + normalizeSegment(country+"#"+city)
}

// SortKey derives the properties table sort key: <street>#<number>.
func SortKey(street, number string) string {
	return normalizeSegment(street + "#" + number)
}

// StreetPrefix derives the sort-key prefix for a street-only search.
func StreetPrefix(street string) string {
	return normalizeSegment(street)
}
