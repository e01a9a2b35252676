// Package shadow reads and rewrites /etc/shadow-style password databases.
//
// [ParseEntry] and [Entry.String] round-trip the nine colon-separated
// fields faithfully — empty ageing fields stay empty rather than becoming
// zeroes. [File] keeps entries in file order so a rewrite only changes the
// lines it touched.
//
// The package never opens /etc/shadow itself; callers hand it a reader and
// decide where the output goes, which keeps it testable and usable against
// mounted images as well as the live system.
package shadow
