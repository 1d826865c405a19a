// Package pair parses two-field strings such as "1000x750" or "-1.20,0.35".
//
// A field string has the form <left><sep><right>. The whole input is trimmed
// of surrounding white space before the separator is located; the fields
// themselves are not trimmed again. Parsing is all-or-nothing: either both
// fields convert or no pair is produced.
package pair
