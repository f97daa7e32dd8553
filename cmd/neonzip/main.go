package main

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/neonimp/neonzip-go/common/file"
	"github.com/neonimp/neonzip-go/common/i18n"
	"github.com/neonimp/neonzip-go/zipfile"
)

var (
	rootCmd   *cobra.Command
	userAgent string
	language  string
)

func init() {
	i18n.InitLanguage()

	rootCmd = &cobra.Command{
		Use:   "neonzip",
		Short: i18n.I18nMsg.App.AppDescription,
		Long:  i18n.I18nMsg.App.AppLongDescription,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if language != "" {
				i18n.SetLanguage(i18n.Language(language))
			}
			if userAgent != "" {
				file.SetUserAgent(userAgent)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&userAgent, "user-agent", "", i18n.I18nMsg.Common.FlagUserAgent)
	rootCmd.PersistentFlags().StringVar(&language, "lang", "", i18n.I18nMsg.Common.FlagLanguage)

	initListCmd()
	initExtractCmd()
	initDumpCmd()
	initInfoCmd()
	initVersionCmd()
}

func openZip(p string) (*zipfile.ZipFile, error) {
	var (
		reader file.Reader
		err    error
	)
	if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		reader, err = file.NewHTTPFile(p)
	} else {
		reader, err = file.NewLocalFile(p)
	}

	if err != nil {
		log.Fatalf(i18n.I18nMsg.Common.ErrorFailedToOpen, err)
	}

	return zipfile.New(reader)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
