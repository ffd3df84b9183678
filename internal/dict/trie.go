package dict

// trie is a prefix trie over the UTF-8 bytes of simplified headwords. Leaves
// carry the full entry list for their headword. It only supports the two
// operations the dictionary needs: insert and common-prefix search.
type trie struct {
	children map[byte]*trie
	entries  []Entry // non-nil only where a headword ends
}

func newTrie() *trie {
	return &trie{children: make(map[byte]*trie)}
}

func (t *trie) insert(key string, entries []Entry) {
	node := t
	for i := 0; i < len(key); i++ {
		b := key[i]
		next, ok := node.children[b]
		if !ok {
			next = newTrie()
			node.children[b] = next
		}
		node = next
	}
	node.entries = entries
}

// commonPrefixSearch walks query byte by byte and collects the entries of
// every stored headword that is a prefix of query, including query itself.
func (t *trie) commonPrefixSearch(query string) []Entry {
	var out []Entry
	node := t
	for i := 0; i < len(query); i++ {
		next, ok := node.children[query[i]]
		if !ok {
			return out
		}
		node = next
		if node.entries != nil {
			out = append(out, node.entries...)
		}
	}
	return out
}
