package i18n

// InfoMessages holds strings for the info command
type InfoMessages struct {
	Use   string
	Short string
	Long  string

	EOCDTitle    string
	EOCD64Title  string
	RecordsTitle string
}

var EnglishInfoMessages = InfoMessages{
	Use:   "info <archive>",
	Short: "Print the structures of a zip archive",
	Long:  "Print the end of central directory record and every central directory entry.",

	EOCDTitle:    "End of central directory:",
	EOCD64Title:  "Zip64 end of central directory:",
	RecordsTitle: "Central directory records:",
}

var PortugueseInfoMessages = InfoMessages{
	Use:   "info <arquivo>",
	Short: "Imprime as estruturas de um arquivo zip",
	Long:  "Imprime o registro de fim do diretório central e cada entrada do diretório central.",

	EOCDTitle:    "Fim do diretório central:",
	EOCD64Title:  "Fim do diretório central zip64:",
	RecordsTitle: "Registros do diretório central:",
}
