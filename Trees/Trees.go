// Package Trees holds the two trees of the account directory.
//
// UTree is an AVL tree keyed by username. Every UNode owns a DTree, a
// weight balanced binary search tree keyed by discriminator that holds all
// accounts sharing that username. DTree never unlinks nodes on removal;
// removed nodes become vacant and are reused by a later insert of the same
// discriminator or dropped when a subtree gets rebuilt.
//
// Nothing in this package is safe for concurrent use.
package Trees

import (
	"io"

	"github.com/g-m-twostay/go-directory/Accounts"
)

// Inserter is anything accounts can be loaded into.
// Insert returns false when the account is already present, in which case the
// Inserter must be left unchanged.
type Inserter interface {
	Insert(a Accounts.Account) bool
}

// Directory is implemented by both DTree and UTree.
// Receivers that return a bool as the last value use it to tell whether the
// other return values are defined. Methods implemented recursively are noted,
// otherwise they are implemented iteratively.
type Directory interface {
	Inserter
	//Clear the tree, leaving it empty.
	Clear()
	//Size is the number of nodes, vacant ones included for DTree.
	Size() int
	//Dump writes the parenthesized form of the tree to w.
	Dump(w io.Writer) error
}

var (
	_ Directory = (*DTree)(nil)
	_ Directory = (*UTree)(nil)
)
