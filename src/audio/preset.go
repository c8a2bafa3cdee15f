package audio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ----- Presets ----- //

type presetMetaJSON struct {
	Name string `json:"name"`
}
type presetMetaListJSON struct {
	Items []presetMetaJSON `json:"items"`
}

// presetManager reads patches from a directory holding _list.json and <name>.json files.
type presetManager struct {
	dir  string
	list []string
}

func newPresetManager(dir string) *presetManager {
	return &presetManager{
		dir: dir,
	}
}

func (pm *presetManager) getList() ([]string, error) {
	if pm.list == nil {
		if err := pm.loadList(); err != nil {
			return nil, err
		}
	}
	return append([]string(nil), pm.list...), nil
}

func (pm *presetManager) applyToParams(name string, target *params) error {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		return fmt.Errorf("invalid preset name %q", name)
	}
	bytes, err := os.ReadFile(filepath.Join(pm.dir, name+".json"))
	if err != nil {
		return fmt.Errorf("failed to read preset %q: %w", name, err)
	}
	if err := target.applyJSON(bytes); err != nil {
		return fmt.Errorf("preset %q: %w", name, err)
	}
	return nil
}

func (pm *presetManager) loadList() error {
	bytes, err := os.ReadFile(filepath.Join(pm.dir, "_list.json"))
	if err != nil {
		return err
	}
	var metaListJSON presetMetaListJSON
	if err := json.Unmarshal(bytes, &metaListJSON); err != nil {
		return err
	}
	list := make([]string, len(metaListJSON.Items))
	for i, item := range metaListJSON.Items {
		list[i] = item.Name
	}
	pm.list = list
	return nil
}

// PresetNames lists the presets of dir in the order of its _list.json.
func PresetNames(dir string) ([]string, error) {
	return newPresetManager(dir).getList()
}
