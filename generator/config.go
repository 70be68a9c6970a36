package generator

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/modelbuilder/scriptgen/serializer"
)

// Config holds script composition options
type Config struct {
	// Binding is the local name the generated script binds the rebuilt
	// instance to
	Binding string `yaml:"binding"`
	// OutputDirEnv is the environment variable the generated script reads
	// its output directory from at its own run time
	OutputDirEnv string `yaml:"output_dir_env"`
	// BasePackage is the package the base collaborator is imported from
	BasePackage string `yaml:"base_package"`
}

func DefaultConfig() *Config {
	return &Config{
		Binding:      "my_model",
		OutputDirEnv: "AIP_MODEL_DIR",
		BasePackage:  serializer.VertexModelPackage,
	}
}

// LoadConfig loads composition options from an optional YAML file, then
// overrides from the environment (a .env file is honored when present)
func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read config %s", path)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "failed to parse config %s", path)
		}
	}

	if binding := os.Getenv("SCRIPTGEN_BINDING"); binding != "" {
		cfg.Binding = binding
	}
	if outputEnv := os.Getenv("SCRIPTGEN_OUTPUT_ENV"); outputEnv != "" {
		cfg.OutputDirEnv = outputEnv
	}
	if basePackage := os.Getenv("SCRIPTGEN_BASE_PACKAGE"); basePackage != "" {
		cfg.BasePackage = basePackage
	}

	return cfg, nil
}
