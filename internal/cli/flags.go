package cli

// Flags holds all command-line flag values
type Flags struct {
	CfgFile  string
	DictPath string
	Format   string
	Variants bool
}

// NewFlags creates a new Flags instance. Empty dictionary settings fall back
// to the loaded configuration.
func NewFlags() *Flags {
	return &Flags{}
}
