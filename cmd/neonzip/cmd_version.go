package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/neonimp/neonzip-go/common/i18n"
	"github.com/neonimp/neonzip-go/compression"
	"github.com/neonimp/neonzip-go/constant"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: i18n.I18nMsg.App.VersionCmdShort,
	Long:  i18n.I18nMsg.App.VersionCmdLong,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s\n", i18n.I18nMsg.App.VersionTitle)
		fmt.Printf("%s: %s(%s)\n", i18n.I18nMsg.App.VersionLabel, constant.Version, constant.BuildTime)
		fmt.Printf("%s: %s\n", i18n.I18nMsg.App.GoVersionLabel, runtime.Version())
		fmt.Printf("%s: %s/%s\n", i18n.I18nMsg.App.PlatformLabel, runtime.GOOS, runtime.GOARCH)

		manager := compression.NewManager()
		implementations := manager.Implementations()

		fmt.Printf("\n%s\n", i18n.I18nMsg.App.CodecsTitle)
		hasCGO := false
		for _, name := range manager.MethodNames() {
			impl := implementations[name]
			if strings.HasPrefix(impl, "CGO") {
				hasCGO = true
			}
			fmt.Printf("  %-8s: %s\n", name, impl)
		}

		fmt.Printf("\n")
		if hasCGO {
			fmt.Println(i18n.I18nMsg.App.CGOImplsMessage)
		} else {
			fmt.Println(i18n.I18nMsg.App.PureImplsNotice)
			fmt.Println(i18n.I18nMsg.App.PureImplsAdvice)
		}
	},
}

func initVersionCmd() {
	rootCmd.AddCommand(versionCmd)
}
