/*
Package country holds the record type shared by every query component,
the read-only Store those components borrow, and the error and result
types they report with.

Records are validated once when they are loaded. Nothing past the load
boundary re-checks field presence; a Country in a Store always has a name,
a continent, a non-negative population and a positive area.
*/
package country

import (
	"fmt"
	"strings"
)

// Country is a single immutable dataset row.
type Country struct {
	Name       string `msgpack:"n"`
	Population int64  `msgpack:"p"`
	Area       int64  `msgpack:"a"`
	Continent  string `msgpack:"c"`
}

// Validate checks the load-boundary invariants for a record.
func Validate(c Country) error {
	switch {
	case strings.TrimSpace(c.Name) == "":
		return fmt.Errorf("record has empty name")
	case strings.TrimSpace(c.Continent) == "":
		return fmt.Errorf("record %q has empty continent", c.Name)
	case c.Population < 0:
		return fmt.Errorf("record %q has negative population %d", c.Name, c.Population)
	case c.Area <= 0:
		return fmt.Errorf("record %q has non-positive area %d", c.Name, c.Area)
	}
	return nil
}

// SameContinent reports whether label matches the record's continent, ignoring case.
func (c Country) SameContinent(label string) bool {
	return strings.EqualFold(c.Continent, label)
}
