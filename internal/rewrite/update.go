package rewrite

import (
	"fmt"
	"os"
)

// FileOptions controls how RewriteFile commits its result.
type FileOptions struct {
	DryRun bool // compute the result but leave the file untouched
}

// RewriteFile applies rw to the file at path and writes the result back in place.
// The file keeps its permission bits. Nothing is written when the content is
// unchanged or opts.DryRun is set.
func RewriteFile(path string, rw PatternRewriter, opts FileOptions) (Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return Result{}, fmt.Errorf("failed to read %s: is a directory", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	res := rw.Rewrite(string(content))
	if opts.DryRun || !res.Changed() {
		return res, nil
	}

	if err := os.WriteFile(path, []byte(res.Content), info.Mode().Perm()); err != nil {
		return res, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return res, nil
}
