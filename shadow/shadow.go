package shadow

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// fieldCount is the number of colon-separated fields in a shadow entry.
const fieldCount = 9

// lockPrefix marks a locked hash field; see Lock.
const lockPrefix = "!"

// Unset marks an ageing field that is empty in the file.
const Unset = -1

// Entry is a single shadow database record.
//
// The six ageing fields count days since the Unix epoch (LastChange) or
// day spans (the rest); [Unset] means the field is empty in the file.
type Entry struct {
	// Name is the login name.
	Name string
	// Hash is the crypt(3) password field, verbatim — including lock
	// prefixes and the "*"/"!" no-login markers.
	Hash string

	LastChange int
	MinDays    int
	MaxDays    int
	WarnDays   int
	Inactive   int
	Expire     int

	// Flag is the reserved ninth field, kept verbatim.
	Flag string
}

// ParseEntry parses one shadow line. A trailing newline is tolerated.
func ParseEntry(line string) (*Entry, error) {
	fields := strings.Split(strings.TrimSuffix(line, "\n"), ":")
	if len(fields) != fieldCount {
		return nil, fmt.Errorf("%w: expected %d fields, got %d",
			ErrMalformedEntry, fieldCount, len(fields))
	}
	if fields[0] == "" {
		return nil, fmt.Errorf("%w: empty login name", ErrMalformedEntry)
	}
	e := &Entry{Name: fields[0], Hash: fields[1], Flag: fields[8]}
	for i, dst := range []*int{
		&e.LastChange, &e.MinDays, &e.MaxDays, &e.WarnDays, &e.Inactive, &e.Expire,
	} {
		v, err := parseDays(fields[i+2])
		if err != nil {
			return nil, fmt.Errorf("%w: field %d: %v", ErrMalformedEntry, i+3, err)
		}
		*dst = v
	}
	return e, nil
}

// String renders the entry in shadow format, without a trailing newline.
// It round-trips [ParseEntry] byte for byte.
func (e *Entry) String() string {
	return strings.Join([]string{
		e.Name,
		e.Hash,
		formatDays(e.LastChange),
		formatDays(e.MinDays),
		formatDays(e.MaxDays),
		formatDays(e.WarnDays),
		formatDays(e.Inactive),
		formatDays(e.Expire),
		e.Flag,
	}, ":")
}

// Locked reports whether the password field carries the lock prefix.
func (e *Entry) Locked() bool {
	return strings.HasPrefix(e.Hash, lockPrefix)
}

func parseDays(s string) (int, error) {
	if s == "" {
		return Unset, nil
	}
	return strconv.Atoi(s)
}

func formatDays(d int) string {
	if d == Unset {
		return ""
	}
	return strconv.Itoa(d)
}

// File is an ordered shadow database.
type File struct {
	entries []*Entry
}

// Parse reads a shadow database. Blank lines are skipped; any malformed
// entry aborts with its line number.
func Parse(r io.Reader) (*File, error) {
	f := &File{}
	sc := bufio.NewScanner(r)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		e, err := ParseEntry(line)
		if err != nil {
			return nil, fmt.Errorf("shadow: line %d: %w", lineno, err)
		}
		f.entries = append(f.entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("shadow: read failed: %w", err)
	}
	return f, nil
}

// Get returns the entry for the given login name.
func (f *File) Get(name string) (*Entry, bool) {
	for _, e := range f.entries {
		if e.Name == name {
			return e, true
		}
	}
	return nil, false
}

// Entries returns the entries in file order. The slice is shared with the
// File; mutations show up in [File.WriteTo].
func (f *File) Entries() []*Entry {
	return f.entries
}

// SetHash replaces the password field of the named user.
func (f *File) SetHash(name, hash string) error {
	e, ok := f.Get(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUserNotFound, name)
	}
	e.Hash = hash
	return nil
}

// Lock disables password login for the named user by prefixing the hash
// with "!", the convention usermod -L follows. Locking an already locked
// entry is a no-op, so unlocking restores the original hash exactly.
func (f *File) Lock(name string) error {
	e, ok := f.Get(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUserNotFound, name)
	}
	if !e.Locked() {
		e.Hash = lockPrefix + e.Hash
	}
	return nil
}

// Unlock removes the lock prefix added by [File.Lock].
func (f *File) Unlock(name string) error {
	e, ok := f.Get(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUserNotFound, name)
	}
	e.Hash = strings.TrimPrefix(e.Hash, lockPrefix)
	return nil
}

// WriteTo renders the database in file order, one entry per line.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, e := range f.entries {
		n, err := io.WriteString(w, e.String()+"\n")
		total += int64(n)
		if err != nil {
			return total, fmt.Errorf("shadow: write failed: %w", err)
		}
	}
	return total, nil
}
