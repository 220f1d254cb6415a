package option

// App holds the CLI defaults that can come from a configuration file;
// command-line flags override them.
type App struct {
	Revision string `json:"revision" yaml:"revision" mapstructure:"revision"`
	Output   string `json:"output" yaml:"output" mapstructure:"output"`
}

func DefaultApp() App {
	return App{
		Revision: "simplified",
		Output:   "table",
	}
}
