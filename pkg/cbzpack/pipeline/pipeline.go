// Package pipeline orchestrates the per-directory packaging run:
// scan, optional verification, rename, package, optional source deletion.
//
// Directories are processed sequentially and in input order. Each
// directory is isolated: a failure produces a Result carrying the error
// and the run moves on to the next directory.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jamesainslie/cbzpack/pkg/cbzpack/archive"
	"github.com/jamesainslie/cbzpack/pkg/cbzpack/history"
	"github.com/jamesainslie/cbzpack/pkg/cbzpack/logging"
	"github.com/jamesainslie/cbzpack/pkg/cbzpack/naming"
	"github.com/jamesainslie/cbzpack/pkg/cbzpack/scanner"
	"github.com/jamesainslie/cbzpack/pkg/cbzpack/trash"
	"github.com/jamesainslie/cbzpack/pkg/cbzpack/types"
	"github.com/jamesainslie/cbzpack/pkg/cbzpack/verify"
)

// Options controls a packaging run.
type Options struct {
	// NoRename keeps the original image file names inside the archive.
	NoRename bool

	// Delete removes the source directory after successful packaging.
	Delete bool

	// Verify fully decodes every image before packaging.
	Verify bool

	// Overwrite replaces an existing archive without asking.
	Overwrite bool

	// Recursive packages images from the whole directory tree.
	Recursive bool

	// Strict aborts a directory that contains any non-image file.
	Strict bool

	// DryRun plans the archive but writes nothing and deletes nothing.
	DryRun bool

	// OutputDir, when set, receives the archives instead of each
	// directory's parent.
	OutputDir string

	// Exclude holds glob patterns for files to leave out of the archive.
	Exclude []string

	// ConfirmOverwrite is consulted when the target archive exists and
	// Overwrite is false. A nil func or a false return skips the directory.
	ConfirmOverwrite func(path string) bool

	// History receives a record of each packaging operation. Nil disables
	// history. Recording is best effort and never fails the run.
	History *history.Journal

	// OnVerifyProgress reports verification progress. May be nil.
	OnVerifyProgress verify.ProgressFunc
}

// Result is the outcome of one directory's run.
type Result struct {
	// Dir is the input directory as given.
	Dir string

	// ArchivePath is the resolved target archive path. Empty when the
	// directory failed before path resolution.
	ArchivePath string

	// Manifest is the scanned classification. Nil when scanning failed.
	Manifest *types.Manifest

	// Packed reports that the archive was written.
	Packed bool

	// DryRun reports that packaging was planned but not performed.
	DryRun bool

	// Skipped reports that the directory was passed over without error.
	Skipped bool

	// SkipReason explains a skip.
	SkipReason string

	// Deleted reports that the source directory was removed.
	Deleted bool

	// Warnings lists issues that did not abort the directory.
	Warnings []string

	// Err is the error that aborted the directory, if any.
	Err error
}

// Run processes each directory and returns one Result per directory, in
// input order. Cancelling the context stops the run before the next
// directory; directories already packaged keep their archives.
func Run(ctx context.Context, dirs []string, opts Options) []Result {
	logger := logging.Get("pipeline")

	results := make([]Result, 0, len(dirs))
	for _, dir := range dirs {
		if err := ctx.Err(); err != nil {
			results = append(results, Result{Dir: dir, Err: err})
			continue
		}

		res := processDir(dir, opts)
		if res.Err != nil {
			logger.Error("directory failed", "dir", dir, "error", res.Err)
		}
		results = append(results, res)
	}

	return results
}

// processDir runs the scan → verify → rename → package sequence for one
// directory.
func processDir(dir string, opts Options) Result {
	logger := logging.Get("pipeline")
	res := Result{Dir: dir}

	m, err := scanner.Scan(dir, scanner.Options{
		Exclude:   opts.Exclude,
		Recursive: opts.Recursive,
	})
	if err != nil {
		res.Err = err
		return res
	}
	res.Manifest = m

	archivePath, err := resolveArchivePath(m.Dir, opts.OutputDir)
	if err != nil {
		res.Err = err
		return res
	}
	res.ArchivePath = archivePath

	nonImages := m.NonImages()
	if opts.Strict && len(nonImages) > 0 {
		res.Err = fmt.Errorf("%s is not an image file", nonImages[0].Path)
		return res
	}
	for _, e := range nonImages {
		res.Warnings = append(res.Warnings, fmt.Sprintf("skipping non-image file: %s", e.Name))
	}

	images := m.Images()
	if len(images) == 0 {
		res.Skipped = true
		res.SkipReason = "no images found"
		return res
	}

	// Overwrite decision belongs to the caller, via flag or prompt.
	overwrite := opts.Overwrite
	if !overwrite {
		if _, err := os.Stat(archivePath); err == nil {
			if opts.ConfirmOverwrite == nil || !opts.ConfirmOverwrite(archivePath) {
				res.Skipped = true
				res.SkipReason = "archive already exists"
				return res
			}
			overwrite = true
		}
	}

	if opts.Verify {
		if err := verify.Manifest(m, opts.OnVerifyProgress); err != nil {
			res.Err = err
			return res
		}
	}

	naming.Apply(m, opts.NoRename)

	if opts.DryRun {
		res.DryRun = true
		return res
	}

	spec := types.ArchiveSpec{
		OutputPath: archivePath,
		Overwrite:  overwrite,
	}
	for _, img := range m.Images() {
		spec.Entries = append(spec.Entries, types.ArchiveEntry{
			Source: img.Path,
			Name:   img.ArchiveName,
		})
	}

	if err := archive.Write(spec); err != nil {
		res.Err = err
		return res
	}
	res.Packed = true
	logger.Info("archive written", "dir", m.Dir, "archive", archivePath, "images", len(spec.Entries))

	if opts.Delete {
		if err := trash.Remove(m.Dir); err != nil {
			delErr := &types.DeleteError{Dir: m.Dir, Err: err}
			res.Warnings = append(res.Warnings, delErr.Error())
		} else {
			res.Deleted = true
		}
	}

	recordHistory(opts.History, &res)

	return res
}

// resolveArchivePath computes the target archive path for a directory:
// a sibling <dir>.cbz, or <base>.cbz under outputDir when set.
func resolveArchivePath(absDir, outputDir string) (string, error) {
	base := filepath.Base(absDir) + ".cbz"

	if outputDir == "" {
		return filepath.Join(filepath.Dir(absDir), base), nil
	}

	absOut, err := filepath.Abs(outputDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve output directory %s: %w", outputDir, err)
	}
	return filepath.Join(absOut, base), nil
}

// recordHistory logs a packed directory to the journal. Failures are
// reported as warnings; a lost history entry never invalidates an archive.
func recordHistory(journal *history.Journal, res *Result) {
	if journal == nil || !res.Packed {
		return
	}

	var files []history.FileRecord
	for _, img := range res.Manifest.Images() {
		files = append(files, history.FileRecord{
			Source:      img.Path,
			ArchiveName: img.ArchiveName,
			Size:        img.Size,
		})
	}

	if _, err := journal.LogPack(res.Manifest.Dir, res.ArchivePath, res.Deleted, files); err != nil {
		logging.Get("history").Warn("failed to record operation", "error", err)
		res.Warnings = append(res.Warnings, fmt.Sprintf("history not recorded: %v", err))
	}
}
