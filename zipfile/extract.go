package zipfile

import (
	"fmt"
	"hash/crc32"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

// ExtractEntries extracts the named entries into outputDir, creating it
// if needed. An empty names slice extracts the whole archive. Entries
// are decompressed concurrently by a bounded worker pool.
func (z *ZipFile) ExtractEntries(outputDir string, names []string, opts ExtractOptions) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %v", err)
	}

	var selected []*Entry
	if len(names) == 0 {
		selected = z.entries
	} else {
		selected = make([]*Entry, 0, len(names))
		for _, name := range names {
			entry, err := z.Entry(name)
			if err != nil {
				return err
			}
			selected = append(selected, entry)
		}
	}

	dirs := make([]*Entry, 0)
	files := make([]*Entry, 0, len(selected))
	for _, entry := range selected {
		if !filepath.IsLocal(filepath.FromSlash(entry.Name)) {
			return fmt.Errorf("entry name escapes output directory: %s", entry.Name)
		}
		if entry.IsDir() {
			dirs = append(dirs, entry)
		} else {
			files = append(files, entry)
		}
	}

	for _, dir := range dirs {
		path := filepath.Join(outputDir, filepath.FromSlash(dir.Name))
		if err := os.MkdirAll(path, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %v", dir.Name, err)
		}
	}

	if len(files) == 0 {
		return nil
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workerCount := min(workers, len(files))

	workChan := make(chan *Entry, workerCount*2)
	resultChan := make(chan error, len(files))

	var wg sync.WaitGroup
	wg.Add(workerCount)

	totalEntries := len(files)
	var completed int
	var progressMu sync.Mutex

	for i := 0; i < workerCount; i++ {
		go func() {
			defer wg.Done()
			for entry := range workChan {
				err := z.extractEntry(outputDir, entry, opts.Verify)
				resultChan <- err

				if opts.Progress != nil {
					progressMu.Lock()
					completed++
					current := completed
					progressMu.Unlock()

					opts.Progress(ProgressInfo{
						EntryName:        entry.Name,
						TotalEntries:     totalEntries,
						CompletedEntries: current,
						ProgressPercent:  float64(current) / float64(totalEntries) * 100,
						SizeReadable:     formatSize(entry.UncompressedSize),
					})
				}
			}
		}()
	}

	go func() {
		defer close(workChan)
		for _, entry := range files {
			workChan <- entry
		}
	}()

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	var firstErr error
	for err := range resultChan {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

func (z *ZipFile) extractEntry(outputDir string, entry *Entry, verify bool) error {
	data, err := z.expand(entry)
	if err != nil {
		return err
	}

	if verify {
		if sum := crc32.ChecksumIEEE(data); sum != entry.CRC32 {
			return fmt.Errorf("entry %s: crc32 mismatch: got %08x, want %08x", entry.Name, sum, entry.CRC32)
		}
	}

	path := filepath.Join(outputDir, filepath.FromSlash(entry.Name))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("entry %s: %v", entry.Name, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("entry %s: %v", entry.Name, err)
	}

	return nil
}
