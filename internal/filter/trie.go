package filter

import (
	"slices"

	"git.sr.ht/~jakintosh/tally/internal/core"
)

type trieNode struct {
	children map[rune]*trieNode
	account  string // set on nodes that terminate an inserted account
	terminal bool
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[rune]*trieNode)}
}

// Trie is a prefix tree of account names.
type Trie struct {
	root *trieNode
	size int
}

// NewTrie creates an empty Trie.
func NewTrie() *Trie {
	return &Trie{root: newTrieNode()}
}

// AccountTrie indexes every account that appears in a posting of l.
func AccountTrie(l *core.Ledger) *Trie {
	t := NewTrie()
	for tx := range l.Transactions() {
		for _, p := range tx.Postings {
			t.Insert(p.Account)
		}
	}
	return t
}

// Insert adds an account. Inserting the same account twice is a no-op.
func (t *Trie) Insert(account string) {
	node := t.root
	for _, r := range account {
		next, ok := node.children[r]
		if !ok {
			next = newTrieNode()
			node.children[r] = next
		}
		node = next
	}
	if !node.terminal {
		node.terminal = true
		node.account = account
		t.size++
	}
}

// Len returns the number of distinct accounts.
func (t *Trie) Len() int {
	return t.size
}

// Find returns every account starting with prefix, sorted.
func (t *Trie) Find(prefix string) []string {
	node := t.root
	for _, r := range prefix {
		next, ok := node.children[r]
		if !ok {
			return []string{}
		}
		node = next
	}

	results := []string{}
	collect(node, &results)
	slices.Sort(results)
	return results
}

func collect(node *trieNode, results *[]string) {
	if node.terminal {
		*results = append(*results, node.account)
	}
	for _, child := range node.children {
		collect(child, results)
	}
}
