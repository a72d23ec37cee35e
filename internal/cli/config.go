package cli

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/degreerank/pkg/errors"
	"github.com/matzehuels/degreerank/pkg/pipeline"
)

// loadConfig reads pipeline options from a TOML file. An empty path means
// ./degreerank.toml, which may be absent; an explicit path must exist.
//
// Example file:
//
//	input = "twitter_combined.txt.gz"
//	output_dir = "charts"
//	bins = 15
//	no_clip = false
func loadConfig(path string) (pipeline.Options, error) {
	var opts pipeline.Options

	explicit := path != ""
	if !explicit {
		path = configFileName
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return opts, nil
		}
	}

	md, err := toml.DecodeFile(path, &opts)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return opts, errs.Wrap(errs.ErrCodeFileNotFound, err, "config %s", path)
		}
		return opts, errs.Wrap(errs.ErrCodeInvalidConfig, err, "config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return opts, errs.New(errs.ErrCodeInvalidConfig, "config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return opts, nil
}
