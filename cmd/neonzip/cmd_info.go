package main

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/neonimp/neonzip-go/common/i18n"
	"github.com/neonimp/neonzip-go/zipfile"
)

var infoJson bool

func initInfoCmd() {
	infoCmd := &cobra.Command{
		Use:   i18n.I18nMsg.Info.Use,
		Short: i18n.I18nMsg.Info.Short,
		Long:  i18n.I18nMsg.Info.Long,
		Args:  cobra.ExactArgs(1),
		Run:   runInfo,
	}

	infoCmd.Flags().BoolVarP(&infoJson, "json", "j", false, i18n.I18nMsg.Common.FlagJSON)

	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	z, err := openZip(args[0])
	if err != nil {
		log.Fatalf(i18n.I18nMsg.Common.ErrorFailedToOpenArchive, err)
	}
	defer z.Close()

	eocd, eocd64, entries := z.Structures()

	if infoJson {
		out := struct {
			EOCD    *zipfile.EOCD    `json:"eocd"`
			EOCD64  *zipfile.EOCD64  `json:"eocd64,omitempty"`
			Entries []*zipfile.Entry `json:"entries"`
		}{eocd, eocd64, entries}

		data, err := json.MarshalIndent(out, "", "    ")
		if err != nil {
			log.Fatalf(i18n.I18nMsg.Common.ErrorFailedToMarshalJSON, err)
		}
		fmt.Println(string(data))
		return
	}

	fmt.Println(i18n.I18nMsg.Info.EOCDTitle)
	fmt.Printf("  offset=%d records=%d cd_size=%d cd_offset=%d\n",
		eocd.Offset, eocd.CDRecords, eocd.CDSize, eocd.CDOffset)
	if eocd.Comment != "" {
		fmt.Printf("  comment=%q\n", eocd.Comment)
	}

	if eocd64 != nil {
		fmt.Println(i18n.I18nMsg.Info.EOCD64Title)
		fmt.Printf("  offset=%d records=%d cd_size=%d cd_offset=%d\n",
			eocd64.Offset, eocd64.CDRecords, eocd64.CDSize, eocd64.CDOffset)
	}

	fmt.Println(i18n.I18nMsg.Info.RecordsTitle)
	for _, entry := range entries {
		fmt.Printf("  %s\n", entry.Name)
		fmt.Printf("    method=%s flags=%#04x crc32=%08x\n", entry.Method, entry.Flags, entry.CRC32)
		fmt.Printf("    compressed=%d uncompressed=%d lfh_offset=%d\n",
			entry.CompressedSize, entry.UncompressedSize, entry.LocalHeaderOffset)
	}
}
