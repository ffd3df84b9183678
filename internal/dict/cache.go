package dict

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"

	"github.com/vmihailenco/msgpack/v5"
)

// group is one headword with all of its senses, the unit the cache stores.
// The cache file is the msgpack encoding of []group.
type group struct {
	Simplified string  `msgpack:"simplified"`
	Entries    []Entry `msgpack:"entries"`
}

// cachePath returns <dir>/cedict.<hex type hash>.bin. The hash is structural
// over the cache value type, so any change to the entry schema moves the file
// name and orphans the old cache.
func cachePath(dir string) string {
	return filepath.Join(dir, fmt.Sprintf("cedict.%s.bin", typeHash(reflect.TypeOf([]group{}))))
}

// typeHash computes a hex digest of the structural shape of t: kinds, field
// names, tags and order, recursively. Field renames, reorders and type changes
// all produce a different digest.
func typeHash(t reflect.Type) string {
	h := sha256.New()
	seen := make(map[reflect.Type]bool)
	hashType(h, t, seen)
	return hex.EncodeToString(h.Sum(nil)[:8])
}

func hashType(h io.Writer, t reflect.Type, seen map[reflect.Type]bool) {
	if seen[t] {
		fmt.Fprintf(h, "cycle:%s;", t.String())
		return
	}
	seen[t] = true
	fmt.Fprintf(h, "%s:", t.Kind())
	switch t.Kind() {
	case reflect.Slice, reflect.Array, reflect.Ptr:
		hashType(h, t.Elem(), seen)
	case reflect.Map:
		hashType(h, t.Key(), seen)
		hashType(h, t.Elem(), seen)
	case reflect.Struct:
		fmt.Fprintf(h, "%d{", t.NumField())
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			fmt.Fprintf(h, "%s(%s):", f.Name, f.Tag.Get("msgpack"))
			hashType(h, f.Type, seen)
		}
		fmt.Fprint(h, "}")
	default:
		fmt.Fprintf(h, "%s;", t.String())
	}
	delete(seen, t)
}

// readCache decodes the cache file. Decode failure is surfaced to the caller;
// the dictionary is a required resource, so a corrupt cache is fatal rather
// than silently rebuilt.
func readCache(path string) ([]group, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dictionary cache: %w", err)
	}
	var groups []group
	if err := msgpack.Unmarshal(data, &groups); err != nil {
		return nil, fmt.Errorf("decoding dictionary cache: %w", err)
	}
	return groups, nil
}

// writeCache encodes groups and writes the cache file, creating dir as needed.
func writeCache(path string, groups []group) error {
	data, err := msgpack.Marshal(groups)
	if err != nil {
		return fmt.Errorf("encoding dictionary cache: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating cache dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing dictionary cache: %w", err)
	}
	return nil
}
