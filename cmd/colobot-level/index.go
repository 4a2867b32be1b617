package main

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"colobot.info/gold/internal/level"
	"colobot.info/gold/internal/logging"
	"colobot.info/gold/internal/persistence/indexdb"
)

func newIndexCmd(a *app) *cobra.Command {
	var (
		dbPath string
		jobs   int
		ext    string
	)
	cmd := &cobra.Command{
		Use:   "index <dir>",
		Short: "Decode every level under dir into the SQLite index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("db") {
				dbPath = a.cfg.Index.Path
			}
			if !cmd.Flags().Changed("jobs") {
				jobs = a.cfg.Index.Jobs
			}
			if jobs < 1 {
				return errors.Newf("--jobs must be positive, got %d", jobs)
			}

			files, err := levelFiles(args[0], ext)
			if err != nil {
				return err
			}

			idx, err := indexdb.OpenSQLite(dbPath)
			if err != nil {
				return err
			}
			if err := idx.UpsertCatalogs(a.cats); err != nil {
				_ = idx.Close()
				return err
			}

			log := logging.Component("index")
			var indexed, dropped atomic.Int64
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(jobs)
			for _, path := range files {
				path := path
				g.Go(func() error {
					if ctx.Err() != nil {
						return ctx.Err()
					}
					row, err := a.indexRow(path)
					if err != nil {
						return err
					}
					if !idx.RecordLevel(row) {
						dropped.Add(1)
						log.Warnw("index queue full, level dropped", "path", path)
						return nil
					}
					indexed.Add(1)
					log.Debugw("indexed", "path", path, "objects", len(row.Objects))
					return nil
				})
			}
			werr := g.Wait()
			if err := idx.Close(); err != nil && werr == nil {
				werr = err
			}
			if werr != nil {
				return werr
			}
			return indexResult(cmd.OutOrStdout(), dbPath, indexed.Load(), dropped.Load(), idx.Stats())
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "index database (default from config)")
	cmd.Flags().IntVar(&jobs, "jobs", 0, "files decoded in parallel (default from config)")
	cmd.Flags().StringVar(&ext, "ext", ".txt", "level file extension")
	return cmd
}

// indexResult reports a finished index run. A level that never reached the
// database fails the run.
func indexResult(w io.Writer, dbPath string, indexed, dropped int64, st indexdb.Stats) error {
	if dropped > 0 || st.FailTotal > 0 {
		return errors.WithHint(
			errors.Newf("index: %d of %d level(s) dropped, %d write failure(s)", dropped, indexed+dropped, st.FailTotal),
			"run index again, or lower --jobs")
	}
	fmt.Fprintf(w, "indexed %d level(s) into %s\n", indexed, dbPath)
	return nil
}

func (a *app) indexRow(path string) (indexdb.LevelRow, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return indexdb.LevelRow{}, errors.Wrap(err, "index")
	}
	dirs, err := level.Read(bytes.NewReader(raw))
	if err != nil {
		return indexdb.LevelRow{}, errors.Wrapf(err, "%s", path)
	}
	scene, diags := level.Decode(dirs, a.dec)
	sum := sha256.Sum256(raw)
	return indexdb.RowFromScene(path, hex.EncodeToString(sum[:]), scene, diags, a.cats), nil
}

// levelFiles lists the files under root with the given extension, in walk
// order.
func levelFiles(root, ext string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ext) {
			return nil
		}
		out = append(out, path)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "index: walk %s", root)
	}
	return out, nil
}
