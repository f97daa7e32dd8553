package i18n

// CommonMessages holds strings shared by several commands
type CommonMessages struct {
	FlagOut       string
	FlagJSON      string
	FlagEntries   string
	FlagUserAgent string
	FlagLanguage  string

	ElapsedTime string

	ErrorFailedToOpen        string
	ErrorFailedToOpenArchive string
	ErrorFailedToCreateDir   string
	ErrorFailedToWriteFile   string
	ErrorFailedToMarshalJSON string
}

var EnglishCommonMessages = CommonMessages{
	FlagOut:       "output directory or file",
	FlagJSON:      "output as JSON",
	FlagEntries:   "comma-separated entry names",
	FlagUserAgent: "User-Agent header for HTTP archives",
	FlagLanguage:  "message language (en, pt)",

	ElapsedTime: "Elapsed: %v",

	ErrorFailedToOpen:        "failed to open file: %v",
	ErrorFailedToOpenArchive: "failed to open archive: %v",
	ErrorFailedToCreateDir:   "failed to create directory: %v",
	ErrorFailedToWriteFile:   "failed to write file: %v",
	ErrorFailedToMarshalJSON: "failed to marshal JSON: %v",
}

var PortugueseCommonMessages = CommonMessages{
	FlagOut:       "diretório ou arquivo de saída",
	FlagJSON:      "saída em JSON",
	FlagEntries:   "nomes de entradas separados por vírgula",
	FlagUserAgent: "cabeçalho User-Agent para arquivos via HTTP",
	FlagLanguage:  "idioma das mensagens (en, pt)",

	ElapsedTime: "Tempo decorrido: %v",

	ErrorFailedToOpen:        "falha ao abrir o arquivo: %v",
	ErrorFailedToOpenArchive: "falha ao abrir o arquivo zip: %v",
	ErrorFailedToCreateDir:   "falha ao criar o diretório: %v",
	ErrorFailedToWriteFile:   "falha ao gravar o arquivo: %v",
	ErrorFailedToMarshalJSON: "falha ao serializar JSON: %v",
}
