package i18n

// AppMessages holds application-level translatable strings
type AppMessages struct {
	AppDescription     string
	AppLongDescription string

	VersionTitle    string
	VersionLabel    string
	GoVersionLabel  string
	PlatformLabel   string
	CodecsTitle     string
	CGOImplsMessage string
	PureImplsNotice string
	PureImplsAdvice string
	VersionCmdShort string
	VersionCmdLong  string
}

var EnglishAppMessages = AppMessages{
	AppDescription: "zip archive reader and extractor",
	AppLongDescription: `A tool for inspecting and extracting zip archives.

It can list entries, dump their raw stored bytes, print the archive
structures, and extract entries to disk, from local files or over HTTP.`,

	VersionTitle:    "neonzip",
	VersionLabel:    "Version",
	GoVersionLabel:  "Go Version",
	PlatformLabel:   "Platform",
	CodecsTitle:     "Compression codecs:",
	CGOImplsMessage: "Some codecs use CGO implementations",
	PureImplsNotice: "All codecs use pure Go implementations",
	PureImplsAdvice: "Rebuild with CGO enabled for faster xz and zstd decompression",
	VersionCmdShort: "Show version information",
	VersionCmdLong:  "Display version information including codec implementation details",
}

var PortugueseAppMessages = AppMessages{
	AppDescription: "leitor e extrator de arquivos zip",
	AppLongDescription: `Uma ferramenta para inspecionar e extrair arquivos zip.

Pode listar entradas, despejar seus bytes brutos, imprimir as
estruturas do arquivo e extrair entradas para o disco, a partir de
arquivos locais ou via HTTP.`,

	VersionTitle:    "neonzip",
	VersionLabel:    "Versão",
	GoVersionLabel:  "Versão do Go",
	PlatformLabel:   "Plataforma",
	CodecsTitle:     "Codecs de compressão:",
	CGOImplsMessage: "Alguns codecs usam implementações CGO",
	PureImplsNotice: "Todos os codecs usam implementações em Go puro",
	PureImplsAdvice: "Recompile com CGO habilitado para descompressão xz e zstd mais rápida",
	VersionCmdShort: "Mostra informações de versão",
	VersionCmdLong:  "Exibe informações de versão, incluindo detalhes das implementações dos codecs",
}
