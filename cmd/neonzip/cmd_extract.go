package main

import (
	"fmt"
	"log"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/neonimp/neonzip-go/common/i18n"
	"github.com/neonimp/neonzip-go/zipfile"
)

var (
	extractOut     string
	extractEntries string
	extractWorkers int
	extractVerify  bool
)

func initExtractCmd() {
	extractCmd := &cobra.Command{
		Use:   i18n.I18nMsg.Extract.Use,
		Short: i18n.I18nMsg.Extract.Short,
		Long:  i18n.I18nMsg.Extract.Long,
		Args:  cobra.ExactArgs(1),
		Run:   runExtract,
	}

	extractCmd.Flags().StringVarP(&extractOut, "out", "o", "output", i18n.I18nMsg.Common.FlagOut)
	extractCmd.Flags().StringVarP(&extractEntries, "entries", "e", "", i18n.I18nMsg.Common.FlagEntries)
	extractCmd.Flags().IntVarP(&extractWorkers, "workers", "w", runtime.NumCPU(), i18n.I18nMsg.Extract.FlagWorkers)
	extractCmd.Flags().BoolVar(&extractVerify, "verify", false, i18n.I18nMsg.Extract.FlagVerify)

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) {
	start := time.Now()
	defer func() {
		fmt.Printf(i18n.I18nMsg.Common.ElapsedTime+"\n", time.Since(start))
	}()

	archive := args[0]

	var entryNames []string
	if extractEntries != "" {
		entryNames = splitEntryNames(extractEntries)
	} else {
		var err error
		entryNames, err = selectEntriesInteractively(archive)
		if err != nil {
			log.Fatalf(i18n.I18nMsg.Extract.FailedToSelectEntries, err)
		}
	}

	z, err := openZip(archive)
	if err != nil {
		log.Fatalf(i18n.I18nMsg.Common.ErrorFailedToOpenArchive, err)
	}
	defer z.Close()

	// Render progress in the cmd layer; the library only reports counts.
	progress := mpb.New(mpb.WithWidth(60))
	var bar *mpb.Bar
	var barMu sync.Mutex

	progressCallback := func(pi zipfile.ProgressInfo) {
		barMu.Lock()
		defer barMu.Unlock()
		if bar == nil {
			bar = progress.AddBar(int64(pi.TotalEntries),
				mpb.PrependDecorators(
					decor.Name(archive, decor.WCSyncSpaceR),
				),
				mpb.AppendDecorators(
					decor.Percentage(decor.WC{W: 5}),
					decor.Counters(0, " | %d/%d"),
					decor.AverageETA(decor.ET_STYLE_GO, decor.WC{W: 6}, decor.WCSyncSpace),
				),
			)
		}
		if delta := int64(pi.CompletedEntries) - bar.Current(); delta > 0 {
			bar.IncrBy(int(delta))
		}
	}

	opts := zipfile.ExtractOptions{
		Workers:  extractWorkers,
		Verify:   extractVerify,
		Progress: progressCallback,
	}

	if err := z.ExtractEntries(extractOut, entryNames, opts); err != nil {
		log.Fatalf(i18n.I18nMsg.Extract.ErrorFailedToExtract, err)
	}

	progress.Wait()

	fmt.Println(i18n.I18nMsg.Extract.ExtractionCompleted)
}

// selectEntriesInteractively shows an interactive entry selector using survey
func selectEntriesInteractively(archive string) ([]string, error) {
	z, err := openZip(archive)
	if err != nil {
		log.Fatalf(i18n.I18nMsg.Common.ErrorFailedToOpenArchive, err)
	}
	defer z.Close()

	entries := z.ListEntries()
	if len(entries) == 0 {
		return nil, fmt.Errorf(i18n.I18nMsg.Extract.NoEntriesFound)
	}

	var options []string
	for _, info := range entries {
		if info.IsDir {
			continue
		}
		options = append(options, fmt.Sprintf("%s (%s)", info.Name, info.SizeReadable))
	}

	prompt := &survey.MultiSelect{
		Message:  i18n.I18nMsg.Extract.InteractiveSelection,
		Options:  options,
		PageSize: 15,
	}

	var result []string
	if err := survey.AskOne(prompt, &result); err != nil {
		return nil, fmt.Errorf(i18n.I18nMsg.Extract.SelectionCancelled, err)
	}

	var selected []string
	for _, selection := range result {
		if idx := strings.LastIndex(selection, " ("); idx > 0 {
			selected = append(selected, selection[:idx])
		}
	}

	if len(selected) == 0 {
		return nil, fmt.Errorf(i18n.I18nMsg.Extract.NoEntriesSelected)
	}

	return selected, nil
}
