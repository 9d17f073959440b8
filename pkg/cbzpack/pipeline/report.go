package pipeline

import (
	"time"

	"github.com/dustin/go-humanize"

	"github.com/jamesainslie/cbzpack/pkg/cbzpack/output"
	"github.com/jamesainslie/cbzpack/pkg/cbzpack/types"
)

// Report converts run results into the structure the output formatters
// consume.
func Report(results []Result, elapsed time.Duration) *output.Result {
	out := &output.Result{
		Stats: output.RunStats{
			Dirs:    len(results),
			Elapsed: elapsed,
		},
	}

	for i := range results {
		rep := reportFor(&results[i])
		switch rep.Status {
		case output.StatusPacked, output.StatusDryRun:
			out.Stats.Packed++
		case output.StatusSkipped:
			out.Stats.Skipped++
		case output.StatusFailed:
			out.Stats.Failed++
		}
		out.Reports = append(out.Reports, rep)
	}

	return out
}

// reportFor builds the formatted report for one directory result.
func reportFor(res *Result) output.DirReport {
	rep := output.DirReport{
		Dir:      res.Dir,
		Archive:  res.ArchivePath,
		Deleted:  res.Deleted,
		Warnings: res.Warnings,
	}

	switch {
	case res.Err != nil:
		rep.Status = output.StatusFailed
		rep.Reason = res.Err.Error()
	case res.Skipped:
		rep.Status = output.StatusSkipped
		rep.Reason = res.SkipReason
	case res.DryRun:
		rep.Status = output.StatusDryRun
	default:
		rep.Status = output.StatusPacked
	}

	if res.Manifest == nil {
		return rep
	}

	images := res.Manifest.Images()
	rep.Images = len(images)
	rep.NonImages = len(res.Manifest.NonImages())
	rep.Excluded = len(res.Manifest.Excluded())

	for _, img := range images {
		rep.TotalBytes += img.Size
		rep.Entries = append(rep.Entries, entryInfo(&img))
	}
	rep.SizeHuman = humanize.IBytes(uint64(rep.TotalBytes))

	return rep
}

func entryInfo(e *types.ManifestEntry) output.EntryInfo {
	return output.EntryInfo{
		ArchiveName: e.ArchiveName,
		Source:      e.Path,
		Size:        e.Size,
		SizeHuman:   e.HumanSize(),
	}
}
