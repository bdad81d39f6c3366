package Trees

import "github.com/g-m-twostay/go-directory/Accounts"

// Occupancy of a DTree slot.
type Occupancy uint8

const (
	Occupied Occupancy = iota
	// Vacant slots keep their place in the tree and their last account, but
	// don't count as users.
	Vacant
)

func (o Occupancy) String() string {
	switch o {
	case Occupied:
		return "occupied"
	case Vacant:
		return "vacant"
	}
	return "unknown"
}

// DNode is a snapshot of a DTree node. It doesn't change when the tree does.
type DNode struct {
	Account Accounts.Account
	// Size is the number of nodes in the subtree, vacant ones included.
	Size int
	// NumVacant is the number of vacant nodes in the subtree.
	NumVacant int
	State     Occupancy
}

func (n DNode) IsVacant() bool {
	return n.State == Vacant
}

func (n DNode) Discriminator() int {
	return n.Account.Discriminator()
}

// UNode is a node in the UTree. The zero value is meaningless.
type UNode struct {
	username string
	dt       *DTree
	h        int // 0 for a leaf
	l, r     *UNode
}

func newUNode(username string) *UNode {
	return &UNode{username: username, dt: NewDTree()}
}

func (n *UNode) Username() string {
	return n.username
}

// DTree of the accounts that share Username. Never nil.
func (n *UNode) DTree() *DTree {
	return n.dt
}

func (n *UNode) Height() int {
	return n.h
}

// height of n; -1 for nil.
func height(n *UNode) int {
	if n == nil {
		return -1
	}
	return n.h
}

// balance factor of n, positive when the left subtree is taller.
func balance(n *UNode) int {
	return height(n.l) - height(n.r)
}

func (n *UNode) updateHeight() {
	n.h = max(height(n.l), height(n.r)) + 1
}
