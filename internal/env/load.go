package env

import (
	"errors"
	"os"

	"github.com/subosito/gotenv"
)

// DefaultPath is the dotenv file read at startup.
const DefaultPath = ".env"

// Load reads KEY=VALUE lines from path (e.g. METABALLS_SEED=7) into the process
// environment. Variables already set win over the file. A missing file is not an error.
func Load(path string) error {
	vars, err := gotenv.Read(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	for key, value := range vars {
		if _, set := os.LookupEnv(key); set {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return err
		}
	}
	return nil
}
