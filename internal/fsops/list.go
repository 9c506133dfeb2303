package fsops

import (
	"fmt"
	"io"
	"io/fs"
	"iter"
	"os"
	"time"

	apperrors "github.com/naoray/dir-remover/internal/errors"
)

const listBatchSize = 64

// Entry is a snapshot of one immediate child of a directory.
type Entry struct {
	Name    string
	IsDir   bool
	Size    int64
	ModTime time.Time
}

// Lister produces the immediate children of a directory.
type Lister func(path string) iter.Seq2[Entry, error]

// List lazily reads the immediate children of path in filesystem order.
// Each range over the returned sequence reads the directory again. A read
// failure is yielded once, wrapped in ErrListFailed, and ends the sequence.
func List(path string) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		dir, err := os.Open(path)
		if err != nil {
			yield(Entry{}, fmt.Errorf("%w: %w", apperrors.ErrListFailed, err))
			return
		}
		defer dir.Close()

		for {
			batch, err := dir.ReadDir(listBatchSize)
			for _, de := range batch {
				if !yield(newEntry(de), nil) {
					return
				}
			}
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(Entry{}, fmt.Errorf("%w: %w", apperrors.ErrListFailed, err))
				return
			}
		}
	}
}

func newEntry(de fs.DirEntry) Entry {
	entry := Entry{
		Name:  de.Name(),
		IsDir: de.IsDir(),
	}

	// The entry may vanish between ReadDir and Info; keep the name regardless.
	if info, err := de.Info(); err == nil {
		entry.Size = info.Size()
		entry.ModTime = info.ModTime()
	}

	return entry
}
