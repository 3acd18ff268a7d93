package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	glua "github.com/yuin/gopher-lua"
)

// Load returns the defaults overridden by the Lua script at path. The script
// sees a global `pickers` table pre-filled with the defaults and edits it in
// place:
//
//	pickers.language.count = 45
//	pickers.country.banners = { "a", "b" }
//	pickers.log.level = "DEBUG"
//
// A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	path = expandTilde(path)

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	} else if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}

	return run(path, cfg, func(L *glua.LState) error {
		return doFile(L, path)
	})
}

// LoadString is Load for an in-memory script.
func LoadString(name, code string) (Config, error) {
	return run(name, Default(), func(L *glua.LState) error {
		fn, err := L.Load(strings.NewReader(code), name)
		if err != nil {
			return err
		}
		L.Push(fn)
		return L.PCall(0, 0, nil)
	})
}

func run(name string, cfg Config, exec func(*glua.LState) error) (Config, error) {
	L := glua.NewState()
	defer L.Close()

	L.SetGlobal("pickers", toTable(L, cfg))

	if err := exec(L); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", name, err)
	}

	// The script may have replaced the table wholesale.
	root, ok := L.GetGlobal("pickers").(*glua.LTable)
	if !ok {
		return cfg, fmt.Errorf("load config %s: pickers must be a table", name)
	}
	cfg = fromTable(L, root, cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", name, err)
	}
	return cfg, nil
}

// doFile executes a Lua file from the filesystem.
// It temporarily adjusts package.path to allow local requires.
func doFile(L *glua.LState, path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(absPath)

	pkg := L.GetGlobal("package").(*glua.LTable)
	oldPath := L.GetField(pkg, "path").String()
	L.SetField(pkg, "path", glua.LString(dir+"/?.lua;"+oldPath))

	err = L.DoFile(absPath)

	L.SetField(pkg, "path", glua.LString(oldPath))
	return err
}

// expandTilde expands ~ to home directory.
func expandTilde(path string) string {
	if len(path) > 0 && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// --- Go <-> Lua conversion ---

func toTable(L *glua.LState, cfg Config) *glua.LTable {
	root := L.NewTable()
	L.SetField(root, "config_dir", glua.LString(Dir()))

	country := L.NewTable()
	L.SetField(country, "banners", stringList(L, cfg.Country.Banners))
	L.SetField(country, "shuffle_at", glua.LNumber(cfg.Country.ShuffleAt))
	L.SetField(root, "country", country)

	lang := L.NewTable()
	L.SetField(lang, "count", glua.LNumber(cfg.Language.Count))
	L.SetField(lang, "group_size", glua.LNumber(cfg.Language.GroupSize))
	L.SetField(lang, "banners", stringList(L, cfg.Language.Banners))
	L.SetField(lang, "icon_even", glua.LString(cfg.Language.IconEven))
	L.SetField(lang, "icon_odd", glua.LString(cfg.Language.IconOdd))
	L.SetField(root, "language", lang)

	log := L.NewTable()
	L.SetField(log, "level", glua.LString(cfg.Log.Level))
	L.SetField(log, "file", glua.LString(cfg.Log.File))
	L.SetField(log, "max_size_mb", glua.LNumber(cfg.Log.MaxSizeMB))
	L.SetField(log, "max_backups", glua.LNumber(cfg.Log.MaxBackups))
	L.SetField(log, "max_age_days", glua.LNumber(cfg.Log.MaxAgeDays))
	L.SetField(log, "compress", glua.LBool(cfg.Log.Compress))
	L.SetField(root, "log", log)

	return root
}

// fromTable reads settings back, keeping def for anything missing or of the
// wrong type.
func fromTable(L *glua.LState, root *glua.LTable, def Config) Config {
	cfg := def

	if t := subTable(L, root, "country"); t != nil {
		cfg.Country.Banners = getStrings(L, t, "banners", def.Country.Banners)
		cfg.Country.ShuffleAt = getInt(L, t, "shuffle_at", def.Country.ShuffleAt)
	}

	if t := subTable(L, root, "language"); t != nil {
		cfg.Language.Count = getInt(L, t, "count", def.Language.Count)
		cfg.Language.GroupSize = getInt(L, t, "group_size", def.Language.GroupSize)
		cfg.Language.Banners = getStrings(L, t, "banners", def.Language.Banners)
		cfg.Language.IconEven = getString(L, t, "icon_even", def.Language.IconEven)
		cfg.Language.IconOdd = getString(L, t, "icon_odd", def.Language.IconOdd)
	}

	if t := subTable(L, root, "log"); t != nil {
		cfg.Log.Level = getString(L, t, "level", def.Log.Level)
		cfg.Log.File = expandTilde(getString(L, t, "file", def.Log.File))
		cfg.Log.MaxSizeMB = getInt(L, t, "max_size_mb", def.Log.MaxSizeMB)
		cfg.Log.MaxBackups = getInt(L, t, "max_backups", def.Log.MaxBackups)
		cfg.Log.MaxAgeDays = getInt(L, t, "max_age_days", def.Log.MaxAgeDays)
		if v, ok := L.GetField(t, "compress").(glua.LBool); ok {
			cfg.Log.Compress = bool(v)
		}
	}

	return cfg
}

func stringList(L *glua.LState, values []string) *glua.LTable {
	t := L.NewTable()
	for _, v := range values {
		t.Append(glua.LString(v))
	}
	return t
}

func subTable(L *glua.LState, t *glua.LTable, key string) *glua.LTable {
	sub, _ := L.GetField(t, key).(*glua.LTable)
	return sub
}

func getInt(L *glua.LState, t *glua.LTable, key string, def int) int {
	if v, ok := L.GetField(t, key).(glua.LNumber); ok {
		return int(v)
	}
	return def
}

func getString(L *glua.LState, t *glua.LTable, key, def string) string {
	if v, ok := L.GetField(t, key).(glua.LString); ok {
		return string(v)
	}
	return def
}

// getStrings reads the array part of a table, skipping non-string entries.
func getStrings(L *glua.LState, t *glua.LTable, key string, def []string) []string {
	sub, ok := L.GetField(t, key).(*glua.LTable)
	if !ok {
		return def
	}
	out := make([]string, 0, sub.Len())
	for i := 1; i <= sub.Len(); i++ {
		if s, ok := sub.RawGetInt(i).(glua.LString); ok {
			out = append(out, string(s))
		}
	}
	return out
}
