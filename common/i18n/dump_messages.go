package i18n

// DumpMessages holds strings for the dump command
type DumpMessages struct {
	Use   string
	Short string
	Long  string

	ErrorFailedToDump string
	DumpedEntry       string
}

var EnglishDumpMessages = DumpMessages{
	Use:   "dump <archive> <entry>",
	Short: "Dump the raw stored bytes of an entry",
	Long:  "Dump the bytes of an entry exactly as stored in the archive, without decompressing them.",

	ErrorFailedToDump: "failed to dump entry: %v",
	DumpedEntry:       "Dumped %s (%d bytes) to %s",
}

var PortugueseDumpMessages = DumpMessages{
	Use:   "dump <arquivo> <entrada>",
	Short: "Despeja os bytes brutos de uma entrada",
	Long:  "Despeja os bytes de uma entrada exatamente como armazenados no arquivo, sem descomprimir.",

	ErrorFailedToDump: "falha ao despejar a entrada: %v",
	DumpedEntry:       "Despejado %s (%d bytes) em %s",
}
