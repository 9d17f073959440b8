package scanner

// Options configures a directory scan.
type Options struct {
	// Exclude contains file name patterns (filepath.Match syntax,
	// applied to base names) classified as Excluded.
	Exclude []string

	// Recursive descends into subdirectories. When false only the
	// directory's immediate entries are scanned and subdirectories
	// classify as non-image.
	Recursive bool
}
