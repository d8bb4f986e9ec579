package config

// Flags holds the values of command-line flags. The *Set fields record
// whether a flag was given explicitly, so unset flags do not clobber the
// file or environment.
type Flags struct {
	ResultsDir   string
	SectionsFile string
	Locale       string
	Theme        string
	ChromePath   string

	Aggregate    bool
	AggregateSet bool
	Preview      bool
	PreviewSet   bool
	Debug        bool
	DebugSet     bool
}

// Resolved is the final configuration plus, per overridable key, the source
// that set it: "cli", "env", "file" or "default".
type Resolved struct {
	*Config
	File    string
	Sources map[string]string
}

// Resolve loads configuration from all sources with explicit priority order:
// flags, then environment, then file, then defaults.
func Resolve(flags Flags) (*Resolved, error) {
	cfg, path, err := Load()
	if err != nil {
		return nil, err
	}
	r := &Resolved{Config: cfg, File: path, Sources: map[string]string{}}

	base := "default"
	if path != "" {
		base = "file"
	}
	for _, key := range []string{"results_dir", "sections_file", "locale", "theme", "chrome_path", "aggregate", "preview", "debug"} {
		r.Sources[key] = base
	}

	before := *cfg
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if cfg.ResultsDir != before.ResultsDir {
		r.Sources["results_dir"] = "env"
	}
	if cfg.Locale != before.Locale {
		r.Sources["locale"] = "env"
	}
	if cfg.Debug != before.Debug {
		r.Sources["debug"] = "env"
	}

	r.applyFlags(flags)
	return r, nil
}

func (r *Resolved) applyFlags(f Flags) {
	set := func(key string, dst *string, v string) {
		if v != "" {
			*dst = v
			r.Sources[key] = "cli"
		}
	}
	set("results_dir", &r.ResultsDir, f.ResultsDir)
	set("sections_file", &r.SectionsFile, f.SectionsFile)
	set("locale", &r.Locale, f.Locale)
	set("theme", &r.Theme, f.Theme)
	set("chrome_path", &r.ChromePath, f.ChromePath)

	if f.AggregateSet {
		r.Aggregate = f.Aggregate
		r.Sources["aggregate"] = "cli"
	}
	if f.PreviewSet {
		r.Preview = f.Preview
		r.Sources["preview"] = "cli"
	}
	if f.DebugSet {
		r.Debug = f.Debug
		r.Sources["debug"] = "cli"
	}
}
