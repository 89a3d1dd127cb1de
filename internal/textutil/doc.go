// Package textutil provides the text transforms shared by the catalog
// pipeline: slug derivation for URLs and tokenization for the search index.
//
// Slugs lowercase their input and collapse every run of non-alphanumeric
// characters into a single hyphen. Tokenization splits on Unicode whitespace,
// lowercases, and strips punctuation from token edges while leaving interior
// punctuation (apostrophes, hyphens) alone.
package textutil
