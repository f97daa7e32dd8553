package i18n

// ListMessages holds strings for the list command
type ListMessages struct {
	Use   string
	Short string
	Long  string

	FlagLong string

	TotalEntries      string
	ErrorFailedToList string
}

var EnglishListMessages = ListMessages{
	Use:   "list <archive>",
	Short: "List entries in a zip archive",
	Long:  "List the entries of a zip archive with their sizes and compression methods.",

	FlagLong: "show method, CRC and compressed size",

	TotalEntries:      "Total entries: %d",
	ErrorFailedToList: "failed to list entries: %v",
}

var PortugueseListMessages = ListMessages{
	Use:   "list <arquivo>",
	Short: "Lista as entradas de um arquivo zip",
	Long:  "Lista as entradas de um arquivo zip com seus tamanhos e métodos de compressão.",

	FlagLong: "mostra método, CRC e tamanho comprimido",

	TotalEntries:      "Total de entradas: %d",
	ErrorFailedToList: "falha ao listar entradas: %v",
}
