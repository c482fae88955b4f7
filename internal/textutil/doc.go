// Package textutil provides text sanitization helpers for identity keys and
// filesystem names.
//
// Slug converts free-form text (usually a contact name) into a lowercase
// token used in synthetic identity keys. SanitizeFileName makes
// configuration-supplied labels safe to embed in snapshot and archive
// filenames.
package textutil
