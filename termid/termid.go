// Package termid converts ontology term identifiers between their internal
// underscore form ("UBERON_0002048") and their writable colon form
// ("UBERON:0002048"), and classifies instance-qualifier variants such as
// "UBERON_0002048 (organoid)".
package termid

import (
	"fmt"
	"strings"
)

// Qualifier suffixes for instance-like terms. These denote in-vitro analogs
// of a stem term and are never expanded during traversal.
const (
	OrganoidSuffix    = " (organoid)"
	CellCultureSuffix = " (cell culture)"
)

// FormatError indicates a term identifier does not contain exactly one
// occurrence of the expected separator.
type FormatError struct {
	ID        string
	Separator string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s is an invalid ontology term id, it must contain exactly one %q", e.ID, e.Separator)
}

// ToWritable converts an internal term ID to its writable colon form.
// Returns a *FormatError if the input does not contain exactly one "_".
func ToWritable(id string) (string, error) {
	if strings.Count(id, "_") != 1 {
		return "", &FormatError{ID: id, Separator: "_"}
	}
	return strings.Replace(id, "_", ":", 1), nil
}

// ToInternal converts a writable term ID to its internal underscore form.
// Returns a *FormatError if the input does not contain exactly one ":".
func ToInternal(id string) (string, error) {
	if strings.Count(id, ":") != 1 {
		return "", &FormatError{ID: id, Separator: ":"}
	}
	return strings.Replace(id, ":", "_", 1), nil
}

// IsOrganoid reports whether the term name carries the organoid qualifier.
func IsOrganoid(name string) bool {
	return strings.Contains(name, OrganoidSuffix)
}

// IsCellCulture reports whether the term name carries the cell culture
// qualifier.
func IsCellCulture(name string) bool {
	return strings.Contains(name, CellCultureSuffix)
}

// IsInstanceVariant reports whether the term name is an organoid or cell
// culture variant. Variants are terminal: traversal never expands past them.
func IsInstanceVariant(name string) bool {
	return IsOrganoid(name) || IsCellCulture(name)
}

// OrganoidStem returns the term ID with the organoid qualifier stripped.
// Names without the qualifier are returned unchanged.
func OrganoidStem(name string) string {
	return strings.ReplaceAll(name, OrganoidSuffix, "")
}
