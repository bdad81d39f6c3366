package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/g-m-twostay/go-directory/Trees"
	"github.com/urfave/cli/v2"
)

func configLogger(cctx *cli.Context, writer io.Writer) (*slog.Logger, error) {
	var level slog.Level
	switch strings.ToLower(cctx.String("log-level")) {
	case "error":
		level = slog.LevelError
	case "warn", "":
		level = slog.LevelWarn
	case "info":
		level = slog.LevelInfo
	case "debug":
		level = slog.LevelDebug
	default:
		return nil, fmt.Errorf("unknown log level %q (want error, warn, info or debug)", cctx.String("log-level"))
	}
	return slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: level,
	})), nil
}

// loadTree reads every --data file, in order, into one tree.
func loadTree(cctx *cli.Context) (*Trees.UTree, error) {
	var paths []string
	for _, p := range cctx.StringSlice("data") {
		if p != "" {
			paths = append(paths, p)
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no account files given (use --data or ACCTREE_DATA)")
	}
	logger, err := configLogger(cctx, cctx.App.ErrWriter)
	if err != nil {
		return nil, err
	}
	tree := Trees.NewUTree()
	tree.SetLogger(logger.With("system", "utree"))
	for _, p := range paths {
		st, err := tree.LoadFile(p, true)
		if err != nil {
			return nil, err
		}
		logger.Info("loaded account file", "path", p, "inserted", st.Inserted, "duplicates", st.Duplicates)
	}
	return tree, nil
}

func parseDisc(s string) (int, error) {
	d, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid discriminator %q: %w", s, err)
	}
	return d, nil
}
