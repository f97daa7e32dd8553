package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/neonimp/neonzip-go/common/i18n"
)

var dumpOut string

func initDumpCmd() {
	dumpCmd := &cobra.Command{
		Use:   i18n.I18nMsg.Dump.Use,
		Short: i18n.I18nMsg.Dump.Short,
		Long:  i18n.I18nMsg.Dump.Long,
		Args:  cobra.ExactArgs(2),
		Run:   runDump,
	}

	dumpCmd.Flags().StringVarP(&dumpOut, "out", "o", "", i18n.I18nMsg.Common.FlagOut)

	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) {
	archive, entry := args[0], args[1]

	z, err := openZip(archive)
	if err != nil {
		log.Fatalf(i18n.I18nMsg.Common.ErrorFailedToOpenArchive, err)
	}
	defer z.Close()

	data, err := z.DumpEntry(entry)
	if err != nil {
		log.Fatalf(i18n.I18nMsg.Dump.ErrorFailedToDump, err)
	}

	outPath := dumpOut
	if outPath == "" {
		outPath = filepath.Base(entry) + ".raw"
	}

	if err := os.WriteFile(outPath, data, 0644); err != nil {
		log.Fatalf(i18n.I18nMsg.Common.ErrorFailedToWriteFile, err)
	}

	fmt.Printf(i18n.I18nMsg.Dump.DumpedEntry+"\n", entry, len(data), outPath)
}
