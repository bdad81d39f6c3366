package Accounts

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// NumFields is the number of fields in every account record.
const NumFields = 5

// ErrMalformedRecord is wrapped by every MalformedRecordError.
var ErrMalformedRecord = errors.New("malformed input detected - ensure each line contains 5 fields delimited by a ','")

// MalformedRecordError reports a record that can't be turned into an Account.
// Fields is the number of fields found on the line, Err the underlying cause.
type MalformedRecordError struct {
	Line   int
	Fields int
	Err    error
}

func (e *MalformedRecordError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("line %d: %d fields, want %d: %v", e.Line, e.Fields, NumFields, ErrMalformedRecord)
	}
	return fmt.Sprintf("line %d: %v: %v", e.Line, ErrMalformedRecord, e.Err)
}

func (e *MalformedRecordError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMalformedRecord}
	}
	return []error{ErrMalformedRecord, e.Err}
}

// Decoder reads account records, one per line:
//
//	username,discriminator,nitro,badge,status
//
// Lines are split on the delimiter as they are; there's no quoting, and an
// empty line is a one field record. nitro accepts the strconv.ParseBool
// forms, so both 0/1 and true/false work.
type Decoder struct {
	sc    *bufio.Scanner
	sep   string
	lines int
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{sc: bufio.NewScanner(r), sep: ","}
}

// SetDelimiter changes the field separator, ',' by default.
func (d *Decoder) SetDelimiter(c rune) {
	d.sep = string(c)
}

// Decode the next record. Returns io.EOF once the input is exhausted.
// A failed record never yields a partial Account.
func (d *Decoder) Decode() (Account, error) {
	if !d.sc.Scan() {
		if err := d.sc.Err(); err != nil {
			return Account{}, fmt.Errorf("reading line %d: %w", d.lines+1, err)
		}
		return Account{}, io.EOF
	}
	d.lines++
	fields := strings.Split(d.sc.Text(), d.sep)
	if len(fields) != NumFields {
		return Account{}, &MalformedRecordError{Line: d.lines, Fields: len(fields)}
	}

	disc, err := strconv.Atoi(fields[1])
	if err != nil {
		return Account{}, &MalformedRecordError{Line: d.lines, Fields: len(fields), Err: err}
	}
	nitro, err := strconv.ParseBool(fields[2])
	if err != nil {
		return Account{}, &MalformedRecordError{Line: d.lines, Fields: len(fields), Err: err}
	}
	a, err := New(fields[0], disc, nitro, fields[3], fields[4])
	if err != nil {
		return Account{}, &MalformedRecordError{Line: d.lines, Fields: len(fields), Err: err}
	}
	return a, nil
}
