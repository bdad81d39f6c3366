package Trees

import (
	"github.com/g-m-twostay/go-directory/Accounts"
	"golang.org/x/exp/constraints"
)

// info of a node in the arena.
// ifs[0] is the zero value, which is a 0 size, 0 vacant loopback standing in
// for every absent child.
type info[S constraints.Unsigned] struct {
	l, r, sz, nv S
	st           Occupancy
}

// base is an arena of nodes addressed by index. vs[i-1] is the account of
// ifs[i]. free is the beginning of the linked list of released indexes;
// info[S]::l represents next. The zero value is an empty arena.
type base[S constraints.Unsigned] struct {
	root, free S
	ifs        []info[S]
	vs         []Accounts.Account
}

// addFree index once.
func (u *base[S]) addFree(a S) {
	u.ifs[a] = info[S]{l: u.free}
	u.vs[a-1] = Accounts.Account{}
	u.free = a
}

// popFree index once. Returns 0 when there's no free index(when u.free==0).
func (u *base[S]) popFree() S {
	b := u.free
	u.free = u.ifs[u.free].l
	return b
}

// alloc a leaf holding v. Released indexes are used before growing the arena.
func (u *base[S]) alloc(v Accounts.Account) S {
	if len(u.ifs) == 0 {
		u.ifs = append(u.ifs, info[S]{})
	}
	a := u.popFree()
	if a == 0 {
		a = S(len(u.ifs))
		u.ifs = append(u.ifs, info[S]{})
		u.vs = append(u.vs, v)
	} else {
		u.vs[a-1] = v
	}
	u.ifs[a] = info[S]{sz: 1}
	return a
}

// update the size and vacant count of a from its children.
func (u *base[S]) update(a S) {
	n := &u.ifs[a]
	n.sz = u.ifs[n.l].sz + u.ifs[n.r].sz + 1
	n.nv = u.ifs[n.l].nv + u.ifs[n.r].nv
	if n.st == Vacant {
		n.nv++
	}
}

// reset the arena to empty, keeping the allocated memory.
func (u *base[S]) reset() {
	clear(u.vs)
	u.vs = u.vs[:0]
	if len(u.ifs) > 0 {
		u.ifs = u.ifs[:1]
	}
	u.root, u.free = 0, 0
}

// clone returns an arena with the same content that shares no memory with u.
func (u *base[S]) clone() base[S] {
	return base[S]{
		root: u.root,
		free: u.free,
		ifs:  append([]info[S](nil), u.ifs...),
		vs:   append([]Accounts.Account(nil), u.vs...),
	}
}

func (u *base[S]) sizeOf(a S) S {
	if a == 0 {
		return 0
	}
	return u.ifs[a].sz
}

func (u *base[S]) vacantOf(a S) S {
	if a == 0 {
		return 0
	}
	return u.ifs[a].nv
}
