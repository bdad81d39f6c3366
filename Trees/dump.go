package Trees

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xlab/treeprint"
)

// Dump writes the tree as (<left>disc:size:vacant<right>). Empty subtrees
// write nothing. Recursive.
func (u *DTree) Dump(w io.Writer) error {
	_, err := io.WriteString(w, u.String())
	return err
}

// String is the Dump form of the tree.
func (u *DTree) String() string {
	var b strings.Builder
	u.dump(&b, u.root)
	return b.String()
}

func (u *DTree) dump(b *strings.Builder, a uint16) {
	if a == 0 {
		return
	}
	n := u.ifs[a]
	b.WriteByte('(')
	u.dump(b, n.l)
	b.WriteString(strconv.Itoa(u.vs[a-1].Discriminator()))
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(int(n.sz)))
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(int(n.nv)))
	u.dump(b, n.r)
	b.WriteByte(')')
}

// PrintAccounts writes every node in order with its depth. Vacant nodes are
// written as "Vacant Node".
func (u *DTree) PrintAccounts(w io.Writer) error {
	var b strings.Builder
	u.printAccounts(&b, u.root, 0)
	_, err := io.WriteString(w, b.String())
	return err
}

func (u *DTree) printAccounts(b *strings.Builder, a uint16, depth int) {
	if a == 0 {
		return
	}
	u.printAccounts(b, u.ifs[a].l, depth+1)
	if u.ifs[a].st == Vacant {
		b.WriteString("\nVacant Node\n\n")
	} else {
		fmt.Fprintf(b, "(HEIGHT: %d )\n%s\n", depth, u.vs[a-1])
	}
	u.printAccounts(b, u.ifs[a].r, depth+1)
}

// addTo adds the nodes of the subtree at a to t, left child first.
func (u *DTree) addTo(t treeprint.Tree, a uint16) {
	if a == 0 {
		return
	}
	n := u.ifs[a]
	label := u.vs[a-1].Tag()
	if n.st == Vacant {
		label = fmt.Sprintf("#%04d (vacant)", u.vs[a-1].Discriminator())
	}
	meta := fmt.Sprintf("%d/%d", n.sz, n.nv)
	if n.l == 0 && n.r == 0 {
		t.AddMetaNode(meta, label)
		return
	}
	br := t.AddMetaBranch(meta, label)
	u.addTo(br, n.l)
	u.addTo(br, n.r)
}

// TreePrint renders the tree for humans; each node shows size/vacant as meta.
func (u *DTree) TreePrint() treeprint.Tree {
	t := treeprint.NewWithRoot(fmt.Sprintf("DTree users=%d", u.NumUsers()))
	u.addTo(t, u.root)
	return t
}

// Dump writes the tree as (<left>username:height:users<right>). Empty
// subtrees write nothing. Recursive.
func (u *UTree) Dump(w io.Writer) error {
	_, err := io.WriteString(w, u.String())
	return err
}

// String is the Dump form of the tree.
func (u *UTree) String() string {
	var b strings.Builder
	dumpU(&b, u.root)
	return b.String()
}

func dumpU(b *strings.Builder, n *UNode) {
	if n == nil {
		return
	}
	b.WriteByte('(')
	dumpU(b, n.l)
	b.WriteString(n.username)
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(n.h))
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(n.dt.NumUsers()))
	dumpU(b, n.r)
	b.WriteByte(')')
}

// PrintUsers writes every username in order followed by its accounts.
func (u *UTree) PrintUsers(w io.Writer) error {
	var err error
	u.InOrder(func(n *UNode) bool {
		if _, err = fmt.Fprintf(w, "%s : \n", n.username); err != nil {
			return false
		}
		err = n.dt.PrintAccounts(w)
		return err == nil
	})
	return err
}

func addUTo(t treeprint.Tree, n *UNode, inner bool) {
	if n == nil {
		return
	}
	br := t.AddMetaBranch(fmt.Sprintf("h=%d users=%d", n.h, n.dt.NumUsers()), n.username)
	if inner {
		n.dt.addTo(br, n.dt.root)
	}
	addUTo(br, n.l, inner)
	addUTo(br, n.r, inner)
}

// TreePrint renders the tree for humans. With inner, every username also
// shows its DTree.
func (u *UTree) TreePrint(inner bool) treeprint.Tree {
	t := treeprint.NewWithRoot(fmt.Sprintf("UTree usernames=%d", u.size))
	addUTo(t, u.root, inner)
	return t
}
