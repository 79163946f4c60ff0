package model

// PackageLabel names the shared package a duplicate is proposed to move to.
type PackageLabel string

const (
	// PackageSharedPython receives Python duplicates.
	PackageSharedPython PackageLabel = "shared-python"
	// PackageSharedUI receives script duplicates found under component paths.
	PackageSharedUI PackageLabel = "shared-ui"
	// PackageSharedUtils receives all other script duplicates.
	PackageSharedUtils PackageLabel = "shared-utils"
	// PackageFallback receives duplicates with an unrecognised extension.
	PackageFallback = PackageSharedUtils
)

// ConsolidationEntry is the proposal for one duplicate group.
type ConsolidationEntry struct {
	Function    string
	Canonical   Occurrence
	Occurrences []Occurrence
	Package     PackageLabel
}

// PackagePlan lists the entries targeting a single package.
type PackagePlan struct {
	Package PackageLabel
	Entries []ConsolidationEntry
}

// Plan groups consolidation entries by package, in order of first appearance.
type Plan struct {
	Packages []PackagePlan
}

// Total returns the number of entries across all packages.
func (p Plan) Total() int {
	total := 0
	for _, pkg := range p.Packages {
		total += len(pkg.Entries)
	}

	return total
}
