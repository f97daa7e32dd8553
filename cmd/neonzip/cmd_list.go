package main

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/neonimp/neonzip-go/common/i18n"
	"github.com/neonimp/neonzip-go/zipfile"
)

var (
	listEntries string
	listJson    bool
	listLong    bool
)

func initListCmd() {
	listCmd := &cobra.Command{
		Use:   i18n.I18nMsg.List.Use,
		Short: i18n.I18nMsg.List.Short,
		Long:  i18n.I18nMsg.List.Long,
		Args:  cobra.ExactArgs(1),
		Run:   runList,
	}

	listCmd.Flags().StringVarP(&listEntries, "entries", "e", "", i18n.I18nMsg.Common.FlagEntries)
	listCmd.Flags().BoolVarP(&listJson, "json", "j", false, i18n.I18nMsg.Common.FlagJSON)
	listCmd.Flags().BoolVarP(&listLong, "long", "l", false, i18n.I18nMsg.List.FlagLong)

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) {
	start := time.Now()
	defer func() {
		if !listJson {
			fmt.Printf(i18n.I18nMsg.Common.ElapsedTime+"\n", time.Since(start))
		}
	}()

	z, err := openZip(args[0])
	if err != nil {
		log.Fatalf(i18n.I18nMsg.Common.ErrorFailedToOpenArchive, err)
	}
	defer z.Close()

	entries := z.ListEntries()

	if listEntries != "" {
		requested := splitEntryNames(listEntries)
		filtered := make([]zipfile.EntryInfo, 0, len(requested))
		for _, info := range entries {
			for _, name := range requested {
				if info.Name == name {
					filtered = append(filtered, info)
					break
				}
			}
		}
		entries = filtered
	}

	if listJson {
		data, err := json.MarshalIndent(entries, "", "    ")
		if err != nil {
			log.Fatalf(i18n.I18nMsg.Common.ErrorFailedToMarshalJSON, err)
		}
		fmt.Println(string(data))
		return
	}

	fmt.Printf(i18n.I18nMsg.List.TotalEntries+"\n", len(entries))
	for _, info := range entries {
		if listLong {
			fmt.Printf("%-8s %10d %s %s (%s)\n", info.Method, info.CompressedSize, info.CRC32, info.Name, info.SizeReadable)
		} else {
			fmt.Printf("%s (%s)\n", info.Name, info.SizeReadable)
		}
	}
}

func splitEntryNames(s string) []string {
	parts := strings.Split(s, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}
