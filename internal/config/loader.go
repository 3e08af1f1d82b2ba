package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/fog.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  DefaultScreenWidth,
			Height: DefaultScreenHeight,
			Title:  "Fog of War",
			TPS:    60,
		},
		Fog: FogConfig{
			VisionRadius: DefaultVisionRadius,
			FadeWidth:    DefaultFadeWidth,
			RadiusStep:   20,
			MaxRadius:    2000,
		},
		Player: PlayerConfig{
			Speed:  240,
			Radius: 12,
		},
		Camera: CameraConfig{
			FollowLerp: 0.1,
			PixelSnap:  true,
		},
		World: WorldConfig{
			TileSize:   64,
			Cols:       32,
			Rows:       18,
			RockChance: 0.04,
			TreeChance: 0.08,
		},
		Mask: MaskConfig{
			TileSize: 64,
		},
		Perf: PerfConfig{
			Window:      60,
			ReportEvery: 1,
		},
		Storage: StorageConfig{
			DBPath: "~/.fogofwar/sessions.db",
		},
	}
}

// Load reads the configuration and validates it.
// Search order: customPath -> ~/.fogofwar/config.yaml -> ./configs/fog.yaml -> embedded default.
// Files are decoded over Default(), so they only need the keys they change.
func Load(customPath string) (Config, error) {
	cfg, source, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", source, err)
	}
	return cfg, nil
}

func load(customPath string) (Config, string, error) {
	// Явно указанный файл обязан читаться
	if customPath != "" {
		cfg, err := decodeFile(customPath)
		return cfg, customPath, err
	}

	if userPath := userConfigPath("config.yaml"); userPath != "" {
		if cfg, err := decodeFile(userPath); err == nil {
			return cfg, userPath, nil
		}
	}

	const localPath = "configs/fog.yaml"
	if cfg, err := decodeFile(localPath); err == nil {
		return cfg, localPath, nil
	}

	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), "built-in", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "embedded", nil
}

func decodeFile(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fogofwar", filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand %s: %w", path, err)
	}
	return filepath.Join(home, path[1:]), nil
}
