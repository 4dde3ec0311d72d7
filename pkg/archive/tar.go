package archive

import (
	"archive/tar"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
)

// Result describes a written archive.
type Result struct {
	Path    string
	Codec   string
	Entries int
	Size    int64
}

// Create packs the contents of dir into out, compressed according to out's
// extension. Entry names are relative to dir and slash-separated.
func Create(dir, out string, logger hclog.Logger) (Result, error) {
	result := Result{Path: out}

	codec, err := ForPath(out)
	if err != nil {
		return result, err
	}
	result.Codec = codec.Name()

	absOut, err := filepath.Abs(out)
	if err != nil {
		return result, err
	}

	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return result, fmt.Errorf("creating archive folder: %w", err)
	}
	f, err := os.Create(out)
	if err != nil {
		return result, fmt.Errorf("creating archive: %w", err)
	}
	defer f.Close()

	cw, err := codec.NewWriter(f)
	if err != nil {
		return result, err
	}

	logger.Debug("📦 writing archive", "path", out, "codec", codec.Name())
	entries, err := writeTar(dir, absOut, cw, logger)
	if err != nil {
		cw.Close()
		return result, err
	}
	if err := cw.Close(); err != nil {
		return result, fmt.Errorf("finishing %s stream: %w", codec.Name(), err)
	}
	if err := f.Close(); err != nil {
		return result, fmt.Errorf("closing archive: %w", err)
	}

	info, err := os.Stat(out)
	if err != nil {
		return result, err
	}
	result.Entries = entries
	result.Size = info.Size()
	return result, nil
}

// writeTar streams dir as a tar archive into w, skipping the file at skip.
func writeTar(dir, skip string, w io.Writer, logger hclog.Logger) (int, error) {
	tw := tar.NewWriter(w)
	entries := 0

	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == dir {
			return nil
		}
		if abs, err := filepath.Abs(p); err == nil && abs == skip {
			return nil
		}

		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}

		link := ""
		if info.Mode()&os.ModeSymlink != 0 {
			if link, err = os.Readlink(p); err != nil {
				return err
			}
		}

		header, err := tar.FileInfoHeader(info, link)
		if err != nil {
			return fmt.Errorf("writing tar header for %s: %w", rel, err)
		}
		header.Name = filepath.ToSlash(rel)
		if d.IsDir() {
			header.Name += "/"
		}

		if err := tw.WriteHeader(header); err != nil {
			return fmt.Errorf("writing tar header for %s: %w", rel, err)
		}
		entries++
		logger.Trace("📦 archived", "entry", header.Name)

		if !info.Mode().IsRegular() {
			return nil
		}
		src, err := os.Open(p)
		if err != nil {
			return err
		}
		defer src.Close()
		if _, err := io.Copy(tw, src); err != nil {
			return fmt.Errorf("writing tar data for %s: %w", rel, err)
		}
		return nil
	})
	if err != nil {
		return entries, err
	}

	if err := tw.Close(); err != nil {
		return entries, fmt.Errorf("closing tar writer: %w", err)
	}
	return entries, nil
}
