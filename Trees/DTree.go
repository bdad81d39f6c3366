package Trees

import (
	"github.com/g-m-twostay/go-directory/Accounts"
	"github.com/g-m-twostay/go-directory/Queues"
)

// DTree is a binary search tree of accounts keyed by discriminator. It keeps
// every subtree weight balanced: neither child may weigh more than twice the
// other, where an absent child weighs 1. The first insert that breaks this
// at a node rebuilds that node's subtree from its sorted accounts.
//
// Removal only marks nodes vacant. Vacant nodes keep their account, still
// count towards Size, and are dropped the next time a rebuild covers them.
// Rebuilds only happen where inserts unbalance the tree, so after heavy
// remove/insert churn many tombstones can remain; call Compact to drop them.
//
// Nodes live in an arena indexed by uint16: discriminators range over
// [Accounts.MinDisc, Accounts.MaxDisc], so a DTree never has more nodes
// than that. The zero value is an empty tree.
type DTree struct {
	base[uint16]
	q Queues.ArrayQueue[uint16] // flatten's queue, kept between rebuilds
}

func NewDTree() *DTree {
	return &DTree{}
}

// node returns the snapshot of index a.
func (u *DTree) node(a uint16) DNode {
	n := u.ifs[a]
	return DNode{Account: u.vs[a-1], Size: int(n.sz), NumVacant: int(n.nv), State: n.st}
}

// find the index of the node with disc, or 0.
func (u *DTree) find(disc int) uint16 {
	for curI := u.root; curI != 0; {
		if cd := u.vs[curI-1].Discriminator(); disc < cd {
			curI = u.ifs[curI].l
		} else if disc > cd {
			curI = u.ifs[curI].r
		} else {
			return curI
		}
	}
	return 0
}

// Retrieve the node with discriminator disc. The node may be vacant.
// Time: O(D); Space: O(1)
func (u *DTree) Retrieve(disc int) (DNode, bool) {
	if a := u.find(disc); a != 0 {
		return u.node(a), true
	}
	return DNode{}, false
}

// Has an occupied node with discriminator disc.
func (u *DTree) Has(disc int) bool {
	a := u.find(disc)
	return a != 0 && u.ifs[a].st == Occupied
}

// Insert v. Fails when an occupied node already has v's discriminator; a
// vacant one is refilled in place. Recursive.
// Time: O(D) without rebuild, O(n log n) for the rebuilt subtree otherwise.
func (u *DTree) Insert(v Accounts.Account) bool {
	if a := u.find(v.Discriminator()); a != 0 && u.ifs[a].st == Occupied {
		return false
	}
	u.root = u.insert(u.root, v)
	return true
}

// insert v into the subtree at curI and returns the new root of the subtree.
// Children are assigned through temporaries since alloc may move u.ifs.
func (u *DTree) insert(curI uint16, v Accounts.Account) uint16 {
	if curI == 0 {
		return u.alloc(v)
	}
	if d, cd := v.Discriminator(), u.vs[curI-1].Discriminator(); d < cd {
		l := u.insert(u.ifs[curI].l, v)
		u.ifs[curI].l = l
	} else if d > cd {
		r := u.insert(u.ifs[curI].r, v)
		u.ifs[curI].r = r
	} else {
		u.vs[curI-1] = v
		u.ifs[curI].st = Occupied
	}
	u.update(curI)
	if u.imbalanced(curI) {
		return u.rebalance(curI)
	}
	return curI
}

// imbalanced reports whether one child of a weighs more than twice the other.
// Absent children weigh 1.
func (u *DTree) imbalanced(a uint16) bool {
	n := u.ifs[a]
	l, r := max(u.ifs[n.l].sz, 1), max(u.ifs[n.r].sz, 1)
	return max(l, r) > 2*min(l, r)
}

// rebalance rebuilds the subtree at a from its occupied nodes and returns the
// new subtree root, 0 if every node was vacant. The caller puts the result in
// the slot a came from.
func (u *DTree) rebalance(a uint16) uint16 {
	live := u.flatten(a)
	quickSort(live, Accounts.Account.Discriminator)
	return u.build(live)
}

// flatten the subtree at a into the accounts of its occupied nodes, releasing
// every node. Nodes are visited breadth first: self, right, left.
func (u *DTree) flatten(a uint16) []Accounts.Account {
	live := make([]Accounts.Account, 0, u.ifs[a].sz-u.ifs[a].nv)
	if u.q == nil {
		u.q = Queues.MakeArrayQueue[uint16](uint(u.ifs[a].sz))
	}
	q := u.q
	defer q.Clear()
	for q.Push(a); !q.Empty(); {
		curI, _ := q.Pop()
		n := u.ifs[curI]
		if n.st == Occupied {
			live = append(live, u.vs[curI-1])
		}
		if n.r != 0 {
			q.Push(n.r)
		}
		if n.l != 0 {
			q.Push(n.l)
		}
		u.addFree(curI)
	}
	return live
}

// build a perfectly balanced subtree from sorted accounts, median first.
// Recursive.
func (u *DTree) build(s []Accounts.Account) uint16 {
	if len(s) == 0 {
		return 0
	}
	mid := len(s) >> 1
	a := u.alloc(s[mid])
	l, r := u.build(s[:mid]), u.build(s[mid+1:])
	u.ifs[a].l, u.ifs[a].r = l, r
	u.update(a)
	return a
}

// Remove marks the node with disc vacant and returns its snapshot taken after
// the change. Fails when there's no such node or it's already vacant. Never
// changes the shape of the tree. Recursive.
// Time: O(D)
func (u *DTree) Remove(disc int) (DNode, bool) {
	a := u.find(disc)
	if a == 0 || u.ifs[a].st == Vacant {
		return DNode{}, false
	}
	u.remove(u.root, disc)
	return u.node(a), true
}

func (u *DTree) remove(curI uint16, disc int) {
	if cd := u.vs[curI-1].Discriminator(); disc < cd {
		u.remove(u.ifs[curI].l, disc)
	} else if disc > cd {
		u.remove(u.ifs[curI].r, disc)
	} else {
		u.ifs[curI].st = Vacant
	}
	u.update(curI)
}

// Compact rebuilds the whole tree without its vacant nodes.
// Time: O(n log n)
func (u *DTree) Compact() {
	if u.root != 0 {
		u.root = u.rebalance(u.root)
	}
}

// Size is the number of nodes, vacant ones included.
// Time: O(1)
func (u *DTree) Size() int {
	return int(u.sizeOf(u.root))
}

// NumVacant is the number of vacant nodes.
// Time: O(1)
func (u *DTree) NumVacant() int {
	return int(u.vacantOf(u.root))
}

// NumUsers is the number of occupied nodes, 0 for an empty tree.
// Time: O(1)
func (u *DTree) NumUsers() int {
	return u.Size() - u.NumVacant()
}

func (u *DTree) Empty() bool {
	return u.root == 0
}

// Clear the tree. Memory of the arena is kept for reuse; the rebuild queue
// is shrunk.
func (u *DTree) Clear() {
	u.reset()
	if u.q != nil {
		u.q.Shrink()
	}
}

// Clone returns a deep copy of the tree: same shape, sizes and vacancies,
// sharing nothing with u.
// Time: O(n)
func (u *DTree) Clone() *DTree {
	return &DTree{base: u.clone()}
}

// InOrder calls f on every node, vacant ones included, in ascending order of
// discriminator until f returns false. The tree mustn't be modified by f.
// Time: O(n); Space: O(D)
func (u *DTree) InOrder(f func(DNode) bool) {
	st := make([]uint16, 0, 16)
	for curI := u.root; curI != 0; curI = u.ifs[curI].l {
		st = append(st, curI)
	}
	for len(st) > 0 {
		curI := st[len(st)-1]
		st = st[:len(st)-1]
		if !f(u.node(curI)) {
			return
		}
		for curI = u.ifs[curI].r; curI != 0; curI = u.ifs[curI].l {
			st = append(st, curI)
		}
	}
}

// Accounts returns the occupied accounts in ascending order of discriminator.
func (u *DTree) Accounts() []Accounts.Account {
	out := make([]Accounts.Account, 0, u.NumUsers())
	u.InOrder(func(n DNode) bool {
		if !n.IsVacant() {
			out = append(out, n.Account)
		}
		return true
	})
	return out
}

// Height of the tree, -1 when empty. Recursive.
func (u *DTree) Height() int {
	return u.height(u.root)
}

func (u *DTree) height(a uint16) int {
	if a == 0 {
		return -1
	}
	return max(u.height(u.ifs[a].l), u.height(u.ifs[a].r)) + 1
}
