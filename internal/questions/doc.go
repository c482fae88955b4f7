// Package questions loads the YAML mapping file that describes event
// types, survey question rules, and note categories. The mapping is
// loaded once at startup, validated, and treated as immutable.
package questions
