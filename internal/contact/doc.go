// Package contact holds the two shapes a person takes in the
// pipeline: the Record read from one event export, and the Identity
// accumulated across events in the directory.
package contact
