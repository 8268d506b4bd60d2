package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile      string
	APIBaseURL      string
	RequestTimeout  int
	View            string
	Interactive     bool
	ServeAddr       string
	PaletteMode     string
	RefreshSchedule string
	ReportName      string
	ReportType      []string
	Dir             string
	S3Bucket        string
	S3Prefix        string
	AWSProfile      string
	AWSRegion       string
	LogFile         string
	Verbose         bool

	// CategoryDetails e CategoryPlaceholder vêm apenas do arquivo de configuração.
	CategoryDetails map[string]CategoryDetailConfig
	// CategoryPlaceholder nil mantém o texto padrão; vazio deixa passar a descrição da seleção.
	CategoryPlaceholder *string
}
