package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads a TOML file over the built-in defaults. A missing file is
// not an error; a file that parses but fails validation returns both
// the untouched defaults and the error so the caller can report and
// keep running.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}

	if undec := md.Undecoded(); len(undec) > 0 {
		keys := make([]string, len(undec))
		for i, k := range undec {
			keys[i] = k.String()
		}
		return Default(), fmt.Errorf("parse %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("validate %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first set of out-of-range fields. Difficulty
// names listed in DifficultyOrder must all carry a profile so the
// picker never offers a tier that cannot start.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, len(verrs))
			for i, fe := range verrs {
				fields[i] = fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag())
			}
			return fmt.Errorf("invalid fields: %s", strings.Join(fields, ", "))
		}
		return err
	}
	for _, name := range DifficultyOrder {
		if _, ok := c.Game.Profiles[name]; !ok {
			return fmt.Errorf("missing profile for difficulty %q", name)
		}
	}
	return nil
}

// Profile returns the physics bundle for a difficulty name, falling
// back to the default tier for unknown names so persisted state from
// an edited config cannot strand the game.
func (c Config) Profile(name string) Profile {
	if p, ok := c.Game.Profiles[name]; ok {
		return p
	}
	return c.Game.Profiles[DefaultDifficulty]
}
