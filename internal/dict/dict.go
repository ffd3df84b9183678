package dict

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"unicode/utf8"
)

// Dictionary is an immutable prefix trie of entries keyed by simplified
// headword. Build it once with Load and share it freely; Matches is safe for
// concurrent use.
type Dictionary struct {
	root *trie
}

// Load builds a Dictionary from the JSON source at path, going through the
// binary cache under cacheDir. A cache file whose name carries the current
// schema hash is trusted outright; when it is absent the whole cache
// directory is deleted, the source is parsed and a fresh cache is written.
func Load(path, cacheDir string) (*Dictionary, error) {
	cache := cachePath(cacheDir)

	var groups []group
	if _, err := os.Stat(cache); err == nil {
		slog.Info("loading dictionary from cache", "path", cache)
		groups, err = readCache(cache)
		if err != nil {
			return nil, err
		}
	} else {
		// Anything still in the cache dir is from an older schema.
		if err := os.RemoveAll(cacheDir); err != nil {
			return nil, fmt.Errorf("clearing stale cache dir: %w", err)
		}

		slog.Info("parsing dictionary source", "path", path)
		entries, err := parseSource(path)
		if err != nil {
			return nil, err
		}
		groups = groupEntries(entries)

		if err := writeCache(cache, groups); err != nil {
			return nil, err
		}
		slog.Info("dictionary cache written", "path", cache, "headwords", len(groups))
	}

	root := newTrie()
	for _, g := range groups {
		root.insert(g.Simplified, g.Entries)
	}
	return &Dictionary{root: root}, nil
}

// parseSource decodes the source file: a JSON array of entry records.
func parseSource(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dictionary source: %w", err)
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing dictionary source: %w", err)
	}
	return entries, nil
}

// groupEntries sorts by headword and chunks consecutive equal headwords into
// one group each, preserving source order within a headword.
func groupEntries(entries []Entry) []group {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Simplified < entries[j].Simplified
	})
	var groups []group
	for _, e := range entries {
		if n := len(groups); n > 0 && groups[n-1].Simplified == e.Simplified {
			groups[n-1].Entries = append(groups[n-1].Entries, e)
			continue
		}
		groups = append(groups, group{Simplified: e.Simplified, Entries: []Entry{e}})
	}
	return groups
}

// Matches returns the entries of every headword that is a prefix of query,
// longest headwords first. Hovering 中 in 中国人 with 中, 中国 and 中国人 all
// present returns all three, 中国人 leading.
func (d *Dictionary) Matches(query string) []Entry {
	matches := d.root.commonPrefixSearch(query)
	sort.SliceStable(matches, func(i, j int) bool {
		return utf8.RuneCountInString(matches[i].Simplified) > utf8.RuneCountInString(matches[j].Simplified)
	})
	return matches
}
