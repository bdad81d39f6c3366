package Trees

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/g-m-twostay/go-directory/Accounts"
)

// LoadStats counts the records of a load.
type LoadStats struct {
	Inserted   int
	Duplicates int
}

// Load every record of r into dst, stopping at the first malformed record.
// Records before it stay inserted. Duplicate accounts are counted and
// skipped.
func Load(dst Inserter, r io.Reader) (LoadStats, error) {
	return load(dst, r, slog.Default())
}

func load(dst Inserter, r io.Reader, logger *slog.Logger) (LoadStats, error) {
	var st LoadStats
	dec := Accounts.NewDecoder(r)
	for {
		a, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			return st, nil
		} else if err != nil {
			return st, err
		}
		if dst.Insert(a) {
			st.Inserted++
		} else {
			st.Duplicates++
			logger.Warn("skipping duplicate account", "account", a.Tag())
		}
	}
}

// LoadData inserts the records of r. Without appendMode the tree is cleared
// first. A malformed record stops the load with an error wrapping
// Accounts.ErrMalformedRecord; the records before it stay loaded.
func (u *UTree) LoadData(r io.Reader, appendMode bool) (LoadStats, error) {
	if !appendMode {
		u.Clear()
	}
	st, err := load(u, r, u.log())
	if err != nil {
		u.log().Error("load stopped", "inserted", st.Inserted, "err", err)
		return st, err
	}
	u.log().Debug("load done", "inserted", st.Inserted, "duplicates", st.Duplicates, "usernames", u.size)
	return st, nil
}

// LoadFile is LoadData reading the file at path.
func (u *UTree) LoadFile(path string, appendMode bool) (LoadStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return LoadStats{}, fmt.Errorf("opening account file: %w", err)
	}
	defer f.Close()
	st, err := u.LoadData(f, appendMode)
	if err != nil {
		return st, fmt.Errorf("loading %s: %w", path, err)
	}
	return st, nil
}
