// Package alphabetfile reads and writes weighted alphabets as YAML, so the
// command-line tool can build a Table from a file.
package alphabetfile
