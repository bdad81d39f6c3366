package main

import (
	"fmt"

	"github.com/g-m-twostay/go-directory/Trees"
	"github.com/urfave/cli/v2"
)

var cmdDump = &cli.Command{
	Name:  "dump",
	Usage: "print the username tree in parenthesized form",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "inner",
			Usage: "also dump the discriminator tree of every username",
		},
	},
	Action: runDump,
}

var cmdPrint = &cli.Command{
	Name:   "print",
	Usage:  "list every account, grouped by username",
	Action: runPrint,
}

var cmdTree = &cli.Command{
	Name:  "tree",
	Usage: "draw the username tree",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "inner",
			Usage: "draw discriminator trees under their usernames",
		},
	},
	Action: runTree,
}

var cmdLookup = &cli.Command{
	Name:      "lookup",
	Usage:     "show a username, or one account when a discriminator is given",
	ArgsUsage: `<username> [<disc>]`,
	Action:    runLookup,
}

var cmdRemove = &cli.Command{
	Name:      "remove",
	Usage:     "mark an account vacant and dump its discriminator tree",
	ArgsUsage: `<username> <disc>`,
	Action:    runRemove,
}

func runDump(cctx *cli.Context) error {
	tree, err := loadTree(cctx)
	if err != nil {
		return err
	}
	w := cctx.App.Writer
	if err := tree.Dump(w); err != nil {
		return err
	}
	fmt.Fprintln(w)
	if !cctx.Bool("inner") {
		return nil
	}
	tree.InOrder(func(n *Trees.UNode) bool {
		fmt.Fprintf(w, "%s: ", n.Username())
		if err = n.DTree().Dump(w); err != nil {
			return false
		}
		fmt.Fprintln(w)
		return true
	})
	return err
}

func runPrint(cctx *cli.Context) error {
	tree, err := loadTree(cctx)
	if err != nil {
		return err
	}
	return tree.PrintUsers(cctx.App.Writer)
}

func runTree(cctx *cli.Context) error {
	tree, err := loadTree(cctx)
	if err != nil {
		return err
	}
	fmt.Fprint(cctx.App.Writer, tree.TreePrint(cctx.Bool("inner")).String())
	return nil
}

func runLookup(cctx *cli.Context) error {
	username := cctx.Args().First()
	if username == "" {
		return fmt.Errorf("need to provide username as an argument")
	}
	tree, err := loadTree(cctx)
	if err != nil {
		return err
	}
	w := cctx.App.Writer
	if cctx.Args().Len() < 2 {
		n := tree.Retrieve(username)
		if n == nil {
			return fmt.Errorf("username not found: %s", username)
		}
		fmt.Fprintf(w, "%s: %d users, %d nodes, height %d\n", username, n.DTree().NumUsers(), n.DTree().Size(), n.Height())
		return nil
	}
	disc, err := parseDisc(cctx.Args().Get(1))
	if err != nil {
		return err
	}
	dn, ok := tree.RetrieveUser(username, disc)
	if !ok {
		return fmt.Errorf("account not found: %s#%04d", username, disc)
	}
	if dn.IsVacant() {
		fmt.Fprintf(w, "%s#%04d is vacant\n", username, disc)
		return nil
	}
	fmt.Fprintln(w, dn.Account.String())
	return nil
}

func runRemove(cctx *cli.Context) error {
	if cctx.Args().Len() < 2 {
		return fmt.Errorf("need to provide username and discriminator as arguments")
	}
	username := cctx.Args().First()
	disc, err := parseDisc(cctx.Args().Get(1))
	if err != nil {
		return err
	}
	tree, err := loadTree(cctx)
	if err != nil {
		return err
	}
	if _, ok := tree.RemoveUser(username, disc); !ok {
		return fmt.Errorf("account not found: %s#%04d", username, disc)
	}
	w := cctx.App.Writer
	fmt.Fprintf(w, "%s: ", username)
	if err := tree.Retrieve(username).DTree().Dump(w); err != nil {
		return err
	}
	fmt.Fprintln(w)
	return nil
}
