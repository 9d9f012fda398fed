package migrate

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/thoreinstein/ocmigrate/internal/errors"
	"github.com/thoreinstein/ocmigrate/internal/paths"
	"github.com/thoreinstein/ocmigrate/internal/report"
	"github.com/thoreinstein/ocmigrate/pkg/fileutil"
	"github.com/thoreinstein/ocmigrate/pkg/frontmatter"
)

// markdownExt selects files routed through the header rewrite.
const markdownExt = ".md"

// Walker mirrors a source directory into a target directory. Markdown files
// get their headers rewritten; every other file is copied byte-for-byte.
type Walker struct {
	Logger  *slog.Logger
	Palette frontmatter.Palette

	// Report receives one item per file. It may be nil.
	Report *report.Report

	// Kind labels report items.
	Kind report.Kind

	// DryRun computes everything but writes nothing.
	DryRun bool

	// Verify decodes every rewritten header as YAML and flags failures.
	Verify bool
}

// CopyTree mirrors src into dst. When agent is true, rewritten headers
// without a mode get "mode: subagent".
//
// A missing src is not an error: it is logged and reported as skipped.
// Entries are visited in lexical order.
func (w *Walker) CopyTree(src, dst string, agent bool) error {
	info, err := os.Stat(src)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			w.logger().Info("Skipped directory: directory does not exist", "path", src)
			w.Report.Add(report.Item{
				Kind:   w.Kind,
				Name:   filepath.Base(src),
				Source: src,
				Action: report.ActionSkipped,
				Reason: "directory does not exist",
			})
			return nil
		}
		return errors.Wrapf(err, "checking %s", src)
	}
	if !info.IsDir() {
		return errors.Newf("%s is not a directory", src)
	}

	if fileutil.SameFile(src, dst) {
		w.skipSame(src, dst)
		return nil
	}

	return w.copyDir(src, dst, agent)
}

// skipSame records an entry whose source and target are the same file or
// directory. Copying it would truncate or rewrite the source.
func (w *Walker) skipSame(src, dst string) {
	w.logger().Warn("Skipped: source and target are the same", "source", src, "target", dst)
	w.Report.Add(report.Item{
		Kind:   w.Kind,
		Name:   filepath.Base(src),
		Source: src,
		Target: dst,
		Action: report.ActionSkipped,
		Reason: "source and target are the same",
	})
}

func (w *Walker) copyDir(src, dst string, agent bool) error {
	if err := w.mkdir(dst); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return errors.Wrapf(err, "reading directory %s", src)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		kind, err := w.classify(srcPath, entry)
		if err != nil {
			return err
		}

		if kind != entrySkip && fileutil.SameFile(srcPath, dstPath) {
			w.skipSame(srcPath, dstPath)
			continue
		}

		switch kind {
		case entrySkip:
		case entryDir:
			if err := w.copyDir(srcPath, dstPath, agent); err != nil {
				return err
			}
		case entryDocument:
			if err := w.migrateDocument(srcPath, dstPath, agent); err != nil {
				return err
			}
		default:
			if err := w.copyFile(srcPath, dstPath); err != nil {
				return err
			}
		}
	}

	return nil
}

type entryKind int

const (
	entryFile entryKind = iota
	entryDocument
	entryDir
	entrySkip
)

// classify decides how an entry is mirrored. Symlinked directories are not
// followed.
func (w *Walker) classify(path string, entry fs.DirEntry) (entryKind, error) {
	if entry.Type()&fs.ModeSymlink != 0 {
		info, err := os.Stat(path)
		if err != nil {
			return entrySkip, errors.Wrapf(err, "resolving symlink %s", path)
		}
		if info.IsDir() {
			w.logger().Warn("Skipped symlinked directory", "path", path)
			w.Report.Add(report.Item{
				Kind:   w.Kind,
				Name:   entry.Name(),
				Source: path,
				Action: report.ActionSkipped,
				Reason: "symlinked directory not followed",
			})
			return entrySkip, nil
		}
	} else if entry.IsDir() {
		return entryDir, nil
	}

	if filepath.Ext(entry.Name()) == markdownExt {
		return entryDocument, nil
	}
	return entryFile, nil
}

func (w *Walker) migrateDocument(src, dst string, agent bool) error {
	data, err := fileutil.ReadFileWithLimit(src)
	if err != nil {
		if errors.Is(err, fileutil.ErrFileTooLarge) {
			w.logger().Warn("Document too large to rewrite, copying verbatim", "path", src)
			return w.copyFile(src, dst)
		}
		return errors.Wrapf(err, "reading %s", src)
	}

	out, ok := frontmatter.Transform(string(data), frontmatter.Options{
		Agent:   agent,
		Palette: w.Palette,
	})
	if !ok {
		w.logger().Debug("No frontmatter, copying verbatim", "path", src)
		return w.copyFile(src, dst)
	}

	if !w.DryRun {
		perm := os.FileMode(0o644)
		if info, err := os.Stat(src); err == nil {
			perm = info.Mode().Perm()
		}
		if err := fileutil.AtomicWriteFile(dst, []byte(out), perm); err != nil {
			return errors.Wrapf(err, "writing %s", dst)
		}
	}

	w.logger().Info("Converted", "kind", w.Kind, "name", nameOf(src), "target", dst)
	w.Report.Add(report.Item{
		Kind:   w.Kind,
		Name:   nameOf(src),
		Source: src,
		Target: dst,
		Action: report.ActionConverted,
	})

	if w.Verify {
		w.verify(dst, out)
	}

	return nil
}

func (w *Walker) verify(target, content string) {
	verifyHeader(w.logger(), w.Report, target, content)
}

// verifyHeader flags written documents whose header does not decode as YAML.
func verifyHeader(logger *slog.Logger, rep *report.Report, target, content string) {
	var header map[string]any
	_, err := frontmatter.Parse(strings.NewReader(content), &header)
	if err == nil {
		return
	}
	logger.Warn("Rewritten header is not valid YAML", "target", target, "error", err)
	rep.Warn(target, "header is not valid YAML")
}

func (w *Walker) copyFile(src, dst string) error {
	if !w.DryRun {
		if err := fileutil.CopyFile(src, dst); err != nil {
			return err
		}
	}

	w.logger().Debug("Copied", "kind", w.Kind, "source", src, "target", dst)
	w.Report.Add(report.Item{
		Kind:   w.Kind,
		Name:   filepath.Base(src),
		Source: src,
		Target: dst,
		Action: report.ActionCopied,
	})
	return nil
}

func (w *Walker) mkdir(dir string) error {
	if w.DryRun {
		return nil
	}
	return paths.EnsureDir(dir, paths.DefaultDirPerm)
}

func (w *Walker) logger() *slog.Logger {
	if w.Logger == nil {
		return slog.Default()
	}
	return w.Logger
}

// nameOf returns the file name without its extension.
func nameOf(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
