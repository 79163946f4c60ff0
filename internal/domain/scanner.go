package domain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sort"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/mrdannyclark82/MillaCore-Fusion/internal/adapter"
	m "github.com/mrdannyclark82/MillaCore-Fusion/internal/model"
)

var (
	errBinaryContent   = errors.New("binary content")
	errInvalidEncoding = errors.New("content is not valid UTF-8")
)

// ScanArgs configures one scan pass.
type ScanArgs struct {
	Root    m.Path
	Exclude []string
	Threads int
}

// Scanner runs Walker -> Extractor -> Hasher over a tree.
type Scanner interface {
	// Scan walks the tree and groups blocks by name and digest. A cancelled
	// scan returns ctx.Err() and no result.
	Scan(ctx context.Context, args ScanArgs) (m.ScanResult, error)
}

type scanner struct {
	adapter.SourceFSAdapter
	Extractor
}

// NewScanner constructs a Scanner backed by the filesystem adapter and extractor.
func NewScanner(fsAdapter adapter.SourceFSAdapter, extractor Extractor) Scanner {
	return &scanner{
		SourceFSAdapter: fsAdapter,
		Extractor:       extractor,
	}
}

// fileBlocks holds the blocks found in one file, tagged with its walk index.
type fileBlocks struct {
	index  int
	blocks []m.Block
}

// workerResult is the partial result of one pool worker.
type workerResult struct {
	files   []fileBlocks
	scanned int
	skipped int
}

func (s *scanner) Scan(ctx context.Context, args ScanArgs) (m.ScanResult, error) {
	threads := normalizeThreads(args.Threads)

	root, err := s.AbsPath(args.Root)
	if err != nil {
		return m.ScanResult{}, fmt.Errorf("resolve root %s: %w", args.Root, err)
	}

	walker, err := NewWalker(s.SourceFSAdapter, args.Exclude...)
	if err != nil {
		return m.ScanResult{}, err
	}

	slog.Debug("Starting scan", "root", root, "threads", threads)

	group, groupCtx := errgroup.WithContext(ctx)
	files, walkErrs := walker.Walk(groupCtx, root)

	partials := make([]workerResult, threads)

	for worker := 0; worker < threads; worker++ {
		worker := worker
		group.Go(func() error {
			return s.work(groupCtx, files, &partials[worker])
		})
	}

	if err := group.Wait(); err != nil {
		// Unblock the walker before returning.
		for range files {
		}

		return m.ScanResult{}, err
	}

	if err := <-walkErrs; err != nil {
		slog.Error("Failed to walk tree", "root", root, "error", err)
		return m.ScanResult{}, fmt.Errorf("walk %s: %w", root, err)
	}

	if err := ctx.Err(); err != nil {
		return m.ScanResult{}, err
	}

	return mergeResults(partials), nil
}

// work is one pool worker: it drains files until the walker closes the channel.
func (s *scanner) work(ctx context.Context, files <-chan WalkedFile, out *workerResult) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case file, ok := <-files:
			if !ok {
				return nil
			}

			source, err := s.loadSourceFile(ctx, file)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}

				slog.Warn("Skipping file", "path", file.ShortPath, "error", err)

				out.skipped++

				continue
			}

			out.scanned++
			out.files = append(out.files, fileBlocks{index: file.Index, blocks: s.Extract(source)})
		}
	}
}

func (s *scanner) loadSourceFile(ctx context.Context, file WalkedFile) (m.SourceFile, error) {
	content, err := s.ReadFile(ctx, file.FullPath)
	if err != nil {
		return m.SourceFile{}, err
	}

	if bytes.IndexByte(content, 0) >= 0 {
		return m.SourceFile{}, errBinaryContent
	}

	if !utf8.Valid(content) {
		return m.SourceFile{}, errInvalidEncoding
	}

	return m.SourceFile{
		FullPath:  file.FullPath,
		ShortPath: file.ShortPath,
		Language:  file.Language,
		Lines:     SplitLines(string(content)),
	}, nil
}

// mergeResults is the single writer into the grouping table. Files are
// merged in walk order so occurrence order does not depend on scheduling.
func mergeResults(partials []workerResult) m.ScanResult {
	var (
		all    []fileBlocks
		result m.ScanResult
	)

	for _, partial := range partials {
		all = append(all, partial.files...)
		result.FilesScanned += partial.scanned
		result.FilesSkipped += partial.skipped
	}

	sort.Slice(all, func(i, j int) bool { return all[i].index < all[j].index })

	table := NewGroupTable()

	for _, file := range all {
		for _, block := range file.blocks {
			table.AddBlock(block)
			result.Blocks++
		}
	}

	result.Duplicates = table.Duplicates()

	slog.Debug("Scan complete",
		"files", result.FilesScanned,
		"skipped", result.FilesSkipped,
		"blocks", result.Blocks,
		"duplicates", len(result.Duplicates))

	return result
}

func normalizeThreads(threads int) int {
	if threads <= 0 {
		return runtime.NumCPU()
	}

	return threads
}
