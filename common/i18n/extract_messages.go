package i18n

// ExtractMessages holds strings for the extract command
type ExtractMessages struct {
	Use   string
	Short string
	Long  string

	FlagWorkers string
	FlagVerify  string

	InteractiveSelection  string
	FailedToSelectEntries string
	FailedToListEntries   string
	NoEntriesFound        string
	NoEntriesSelected     string
	SelectionCancelled    string
	ErrorFailedToExtract  string
	ExtractionCompleted   string
}

var EnglishExtractMessages = ExtractMessages{
	Use:   "extract <archive>",
	Short: "Extract entries from a zip archive",
	Long:  "Extract entries from a zip archive to a directory, decompressing them.",

	FlagWorkers: "number of concurrent extraction workers",
	FlagVerify:  "verify the CRC32 of extracted entries",

	InteractiveSelection:  "Select entries to extract:",
	FailedToSelectEntries: "failed to select entries: %v",
	FailedToListEntries:   "failed to list entries: %w",
	NoEntriesFound:        "no entries found in archive",
	NoEntriesSelected:     "no entries selected",
	SelectionCancelled:    "selection cancelled: %w",
	ErrorFailedToExtract:  "failed to extract entries: %v",
	ExtractionCompleted:   "Extraction completed",
}

var PortugueseExtractMessages = ExtractMessages{
	Use:   "extract <arquivo>",
	Short: "Extrai entradas de um arquivo zip",
	Long:  "Extrai entradas de um arquivo zip para um diretório, descomprimindo-as.",

	FlagWorkers: "número de workers de extração concorrentes",
	FlagVerify:  "verifica o CRC32 das entradas extraídas",

	InteractiveSelection:  "Selecione as entradas para extrair:",
	FailedToSelectEntries: "falha ao selecionar entradas: %v",
	FailedToListEntries:   "falha ao listar entradas: %w",
	NoEntriesFound:        "nenhuma entrada encontrada no arquivo",
	NoEntriesSelected:     "nenhuma entrada selecionada",
	SelectionCancelled:    "seleção cancelada: %w",
	ErrorFailedToExtract:  "falha ao extrair entradas: %v",
	ExtractionCompleted:   "Extração concluída",
}
