package input

import (
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"
)

// Rune aliases for keys that are awkward as bare YAML keys
var runeAliases = map[string]rune{
	"space": ' ',
}

// keyConfigFile is the YAML keymap layout
//
//	runes:
//	  h: move_left
//	  space: pause
//	keys:
//	  Enter: start
//	  Ctrl-C: quit
type keyConfigFile struct {
	Runes map[string]string `yaml:"runes"`
	Keys  map[string]string `yaml:"keys"`
}

// LoadKeyConfig parses YAML keymap data into a sparse override KeyTable
// Only sections/keys present in the document are populated
// Returns error on unknown action names, invalid key names, or parse failure
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var raw keyConfigFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	kt := &KeyTable{}

	if raw.Runes != nil {
		kt.Runes = make(map[rune]Intent, len(raw.Runes))
		for keyStr, action := range raw.Runes {
			r, err := resolveRune(keyStr)
			if err != nil {
				return nil, fmt.Errorf("[runes] key %q: %w", keyStr, err)
			}
			in, err := resolveAction(action)
			if err != nil {
				return nil, fmt.Errorf("[runes] key %q: %w", keyStr, err)
			}
			kt.Runes[r] = in
		}
	}

	if raw.Keys != nil {
		kt.SpecialKeys = make(map[tcell.Key]Intent, len(raw.Keys))
		for keyStr, action := range raw.Keys {
			k, ok := KeyByName(keyStr)
			if !ok {
				return nil, fmt.Errorf("[keys] unknown key name: %q", keyStr)
			}
			in, err := resolveAction(action)
			if err != nil {
				return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
			}
			kt.SpecialKeys[k] = in
		}
	}

	return kt, nil
}

// LoadKeyFile reads a YAML keymap and merges it over the defaults
// An empty path returns the defaults
func LoadKeyFile(path string) (*KeyTable, error) {
	if path == "" {
		return DefaultKeyTable(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keymap %s: %w", path, err)
	}
	override, err := LoadKeyConfig(data)
	if err != nil {
		return nil, fmt.Errorf("keymap %s: %w", path, err)
	}
	return MergeKeyTable(DefaultKeyTable(), override), nil
}

// resolveRune converts a YAML key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

// resolveAction converts an action name string to an Intent
func resolveAction(name string) (Intent, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	in, ok := ActionEntry(name)
	if !ok {
		return Intent{}, fmt.Errorf("unknown action: %q", name)
	}
	return in, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden by non-nil override maps
// Override entries bound to "none" delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	mergeMap(result.Runes, override.Runes)
	mergeMap(result.SpecialKeys, override.SpecialKeys)
	return result
}

func mergeMap[K comparable](base, override map[K]Intent) {
	for k, v := range override {
		if v.Type == IntentNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
