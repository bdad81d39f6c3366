package Trees

import (
	"log/slog"

	"github.com/g-m-twostay/go-directory/Accounts"
	"github.com/g-m-twostay/go-directory/Queues"
)

// UTree is an AVL tree keyed by username. Every node owns the DTree of the
// accounts with its username, so accounts sharing a username always end up
// in the same node. Usernames compare byte-wise.
// Nodes are never removed individually, not even when their DTree has no
// users left. The zero value is an empty tree.
type UTree struct {
	root   *UNode
	size   int
	logger *slog.Logger
}

func NewUTree() *UTree {
	return &UTree{}
}

// SetLogger used by LoadData. nil restores the default.
func (u *UTree) SetLogger(l *slog.Logger) {
	u.logger = l
}

func (u *UTree) log() *slog.Logger {
	if u.logger == nil {
		u.logger = slog.Default().With("system", "utree")
	}
	return u.logger
}

// Retrieve the node of username, nil if there is none.
// Time: O(D); Space: O(1)
func (u *UTree) Retrieve(username string) *UNode {
	for cur := u.root; cur != nil; {
		if username < cur.username {
			cur = cur.l
		} else if username > cur.username {
			cur = cur.r
		} else {
			return cur
		}
	}
	return nil
}

// Insert v into the DTree of its username, creating the node first if it's a
// new username. Fails when the account is already present. Recursive.
// Time: O(log n) plus the DTree insert.
func (u *UTree) Insert(v Accounts.Account) bool {
	if n := u.Retrieve(v.Username()); n != nil {
		return n.dt.Insert(v)
	}
	u.insert(&u.root, v)
	u.size++
	return true
}

// insert v under the subtree at *curPtr, which mustn't contain v's username.
// curPtr is passed by reference so rotations can replace the subtree root.
func (u *UTree) insert(curPtr **UNode, v Accounts.Account) {
	cur := *curPtr
	if cur == nil {
		n := newUNode(v.Username())
		n.dt.Insert(v)
		*curPtr = n
		return
	}
	if v.Username() < cur.username {
		u.insert(&cur.l, v)
	} else {
		u.insert(&cur.r, v)
	}
	cur.updateHeight()
	rebalance(curPtr)
}

// rebalance the subtree at *curPtr if its children's heights differ by more
// than 1 and puts the new subtree root in *curPtr. curPtr is either &u.root
// or the child slot of the parent, so the root needs no special case.
// The children must already be balanced.
// Time: O(1)
func rebalance(curPtr **UNode) {
	cur := *curPtr
	if bf := balance(cur); bf > 1 {
		if balance(cur.l) < 0 { // left-right
			cur.l = rotateLeft(cur.l)
		}
		*curPtr = rotateRight(cur)
	} else if bf < -1 {
		if balance(cur.r) > 0 { // right-left
			cur.r = rotateRight(cur.r)
		}
		*curPtr = rotateLeft(cur)
	}
}

// rotateRight lifts the left child of n and returns it as the new subtree
// root. Heights of both rotated nodes are updated.
// Time: O(1); Space: O(1)
func rotateRight(n *UNode) *UNode {
	lc := n.l
	n.l = lc.r
	lc.r = n
	n.updateHeight()
	lc.updateHeight()
	return lc
}

// rotateLeft lifts the right child of n and returns it as the new subtree
// root. Heights of both rotated nodes are updated.
// Time: O(1); Space: O(1)
func rotateLeft(n *UNode) *UNode {
	rc := n.r
	n.r = rc.l
	rc.l = n
	n.updateHeight()
	rc.updateHeight()
	return rc
}

// RemoveUser vacates (username, disc) in the DTree of username and returns
// the snapshot of the vacated node. Fails when either is absent.
func (u *UTree) RemoveUser(username string, disc int) (DNode, bool) {
	if n := u.Retrieve(username); n != nil {
		return n.dt.Remove(disc)
	}
	return DNode{}, false
}

// RetrieveUser returns the node of (username, disc). The node may be vacant.
func (u *UTree) RetrieveUser(username string, disc int) (DNode, bool) {
	if n := u.Retrieve(username); n != nil {
		return n.dt.Retrieve(disc)
	}
	return DNode{}, false
}

// NumUsers with username, 0 if the username is unknown.
func (u *UTree) NumUsers(username string) int {
	if n := u.Retrieve(username); n != nil {
		return n.dt.NumUsers()
	}
	return 0
}

// Size is the number of usernames.
func (u *UTree) Size() int {
	return u.size
}

// Height of the tree, -1 when empty.
func (u *UTree) Height() int {
	return height(u.root)
}

// Clear the tree. Every DTree owned by the tree is cleared as well, so
// DTrees obtained from it earlier are empty afterwards.
// Time: O(n)
func (u *UTree) Clear() {
	if u.root != nil {
		q := Queues.MakeArrayQueue[*UNode](uint(u.size))
		for q.Push(u.root); !q.Empty(); {
			cur, _ := q.Pop()
			if cur.l != nil {
				q.Push(cur.l)
			}
			if cur.r != nil {
				q.Push(cur.r)
			}
			cur.dt.Clear()
			cur.l, cur.r = nil, nil
		}
	}
	u.root, u.size = nil, 0
}

// InOrder calls f on every node in ascending order of username until f
// returns false. The tree mustn't be modified by f.
// Time: O(n); Space: O(D)
func (u *UTree) InOrder(f func(*UNode) bool) {
	var st []*UNode
	for cur := u.root; cur != nil; cur = cur.l {
		st = append(st, cur)
	}
	for len(st) > 0 {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		if !f(cur) {
			return
		}
		for cur = cur.r; cur != nil; cur = cur.l {
			st = append(st, cur)
		}
	}
}
