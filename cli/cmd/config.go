package cmd

import (
	"os"
	"path"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/vippsas/scanbuf/scanscript"
)

const configFilename = "scanbuf.yaml"

type Config struct {
	Mode    string                       `yaml:"mode"`
	Scripts map[string][]scanscript.Step `yaml:"scripts"`
}

// LoadConfig reads scanbuf.yaml from the --directory. A missing file gives
// the zero Config.
func LoadConfig() (Config, error) {
	return loadConfig(directory)
}

func loadConfig(dir string) (Config, error) {
	var result Config

	filename := path.Join(dir, configFilename)
	yamlFile, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, err
	}
	err = yaml.Unmarshal(yamlFile, &result)
	if err != nil {
		return Config{}, errors.Wrap(err, "could not parse "+filename)
	}

	for name, steps := range result.Scripts {
		if err := scanscript.Validate(steps); err != nil {
			return Config{}, errors.Wrapf(err, "script %s in %s", name, filename)
		}
	}
	if _, err := scanscript.ParseMode(result.Mode); err != nil {
		return Config{}, errors.Wrap(err, filename)
	}
	return result, nil
}

// Script resolves nameOrFile to the named script in the config, or else
// parses it as a script file.
func (c Config) Script(nameOrFile string) ([]scanscript.Step, error) {
	if steps, ok := c.Scripts[nameOrFile]; ok {
		return steps, nil
	}
	data, err := os.ReadFile(nameOrFile)
	if err != nil {
		return nil, errors.Wrap(err, "script is neither configured nor a readable file")
	}
	steps, err := scanscript.ParseScript(data)
	if err != nil {
		return nil, errors.Wrap(err, nameOrFile)
	}
	return steps, nil
}
