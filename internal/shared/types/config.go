package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	APIBaseURL      string                          `json:"api_base_url" yaml:"api_base_url" toml:"api_base_url"`
	RequestTimeout  int                             `json:"request_timeout_seconds" yaml:"request_timeout_seconds" toml:"request_timeout_seconds"`
	View            string                          `json:"view" yaml:"view" toml:"view"`
	PaletteMode     string                          `json:"palette_mode" yaml:"palette_mode" toml:"palette_mode"`
	RefreshSchedule string                          `json:"refresh_schedule" yaml:"refresh_schedule" toml:"refresh_schedule"`
	ReportName      string                          `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType      []string                        `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir             string                          `json:"dir" yaml:"dir" toml:"dir"`
	S3Bucket        string                          `json:"s3_bucket" yaml:"s3_bucket" toml:"s3_bucket"`
	S3Prefix        string                          `json:"s3_prefix" yaml:"s3_prefix" toml:"s3_prefix"`
	AWSProfile      string                          `json:"aws_profile" yaml:"aws_profile" toml:"aws_profile"`
	AWSRegion       string                          `json:"aws_region" yaml:"aws_region" toml:"aws_region"`
	ServeAddr       string                          `json:"serve_addr" yaml:"serve_addr" toml:"serve_addr"`
	LogFile         string                          `json:"log_file" yaml:"log_file" toml:"log_file"`
	CategoryDetails map[string]CategoryDetailConfig `json:"category_details" yaml:"category_details" toml:"category_details"`

	CategoryPlaceholder *string `json:"category_placeholder,omitempty" yaml:"category_placeholder,omitempty" toml:"category_placeholder,omitempty"`
}

// CategoryDetailConfig overrides or extends the detail modal text for one category.
type CategoryDetailConfig struct {
	Title string `json:"title" yaml:"title" toml:"title"`
	Info  string `json:"info" yaml:"info" toml:"info"`
}

// DefaultAPIBaseURL is the backend origin used when nothing else is configured.
const DefaultAPIBaseURL = "http://localhost:5000"

// APIBaseURLEnv overrides the backend origin from the configuration file.
const APIBaseURLEnv = "CARBONSCOPE_API_URL"
