package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/patrickprogramme/lyricruby/internal/assets"
	"github.com/patrickprogramme/lyricruby/internal/fsutil"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const CurrentConfigVersion = 1

// DefaultFileName : nom du fichier de configuration à côté du binaire.
const DefaultFileName = "lyricruby.yaml"

// struct pour les paramètres de configuration
type Config struct {
	// Sortie
	OutputDir       string `yaml:"output_dir" toml:"output_dir"`
	OutputFormat    string `yaml:"output_format" toml:"output_format"`
	SaveOutput      bool   `yaml:"save_output" toml:"save_output"`
	CopyToClipboard bool   `yaml:"copy_to_clipboard" toml:"copy_to_clipboard"`

	// Parsing
	Strict  bool `yaml:"strict" toml:"strict"`
	Workers int  `yaml:"workers" toml:"workers"`

	// Romanisation
	Romaji struct {
		Enabled   bool   `yaml:"enabled" toml:"enabled"`
		SyllabicN string `yaml:"syllabic_n" toml:"syllabic_n"`
	} `yaml:"romaji" toml:"romaji"`

	// Logs
	Log struct {
		Level  string `yaml:"level" toml:"level"`
		Format string `yaml:"format" toml:"format"`
	} `yaml:"log" toml:"log"`

	ConfigVersion int `yaml:"config_version" toml:"config_version"`

	configFilePath string
}

// Configuration par défaut (fallback si l'asset embarqué est manquant)
func Default() *Config {
	c := &Config{}

	// Sortie
	c.OutputDir = "."
	c.OutputFormat = "json"
	c.SaveOutput = false
	c.CopyToClipboard = false

	// Parsing
	c.Strict = false
	c.Workers = 4

	// Romanisation
	c.Romaji.Enabled = true
	c.Romaji.SyllabicN = "n"

	// Logs
	c.Log.Level = "info"
	c.Log.Format = "console"

	c.ConfigVersion = CurrentConfigVersion

	return c
}

// Path retourne le chemin du fichier chargé (vide pour une config par défaut).
func (c *Config) Path() string {
	return c.configFilePath
}

// Load lit la config; si le fichier n'existe pas, on copie l'exemple embarqué depuis internal/assets
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultFileName
	}

	// si le fichier n'existe pas -> essayer de créer à partir de l'asset embarqué
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := createDefaultConfigFromEmbedded(path); err != nil {
			return nil, fmt.Errorf("échec de création du fichier de configuration par défaut : %w", err)
		}
	}

	cfg := Default()
	// un fichier sans config_version est antérieur au versionnage
	cfg.ConfigVersion = 0

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lecture du fichier de configuration %s impossible : %w", path, err)
	}

	// corriger les chemins Windows avec des backslashes
	data = bytes.ReplaceAll(data, []byte(`\`), []byte(`/`))

	// On déserialise dans cfg initialisé : les champs absents conservent les valeurs par défaut.
	if err := unmarshal(path, data, cfg); err != nil {
		return nil, fmt.Errorf("analyse du fichier de configuration %s impossible : %w", path, err)
	}
	cfg.configFilePath = path

	cfg.normalizeConfig()

	// gestion de version : si le fichier est plus ancien -> orchestrer la mise à jour
	if cfg.ConfigVersion < CurrentConfigVersion {
		if err := orchestrateConfigUpgrade(cfg, cfg.ConfigVersion); err != nil {
			return nil, fmt.Errorf("échec de mise à niveau de la configuration : %w", err)
		}
		cfg.normalizeConfig()
	}

	return cfg, nil
}

// isTOML : le codec est choisi d'après l'extension, YAML par défaut.
func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

func unmarshal(path string, data []byte, cfg *Config) error {
	if isTOML(path) {
		return toml.Unmarshal(data, cfg)
	}
	return yaml.Unmarshal(data, cfg)
}

func marshal(path string, cfg *Config) ([]byte, error) {
	if isTOML(path) {
		return toml.Marshal(cfg)
	}
	return yaml.Marshal(cfg)
}

func createDefaultConfigFromEmbedded(dstPath string) error {
	asset, ok := assets.DefaultConfigAssetByExt[strings.ToLower(filepath.Ext(dstPath))]
	if !ok {
		asset = assets.DefaultConfigAsset
	}
	b, err := assets.Embedded.ReadFile(asset)
	if err != nil {
		return fmt.Errorf("lecture du modèle de configuration embarqué impossible : %w", err)
	}

	// écrire atomiquement sur disque (évite les fichiers partiels)
	if err := fsutil.WriteFileAtomic(dstPath, b, 0o644); err != nil {
		return fmt.Errorf("échec d'écriture du fichier de configuration %s : %w", dstPath, err)
	}

	fmt.Fprintf(os.Stderr, "info : fichier de configuration par défaut créé : %s\n", dstPath)
	return nil
}

func (c *Config) normalizeConfig() {
	// Nettoyage des chemins
	c.OutputDir = strings.TrimSpace(c.OutputDir)
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	c.OutputDir = filepath.Clean(c.OutputDir)

	// Trim and normalize strings
	c.OutputFormat = strings.TrimSpace(strings.ToLower(c.OutputFormat))
	if c.OutputFormat == "" {
		c.OutputFormat = "json"
	}

	c.Romaji.SyllabicN = strings.TrimSpace(strings.ToLower(c.Romaji.SyllabicN))
	if c.Romaji.SyllabicN == "" {
		c.Romaji.SyllabicN = "n"
	}

	c.Log.Level = strings.TrimSpace(strings.ToLower(c.Log.Level))
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	c.Log.Format = strings.TrimSpace(strings.ToLower(c.Log.Format))
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}

	if c.Workers <= 0 {
		c.Workers = 1
	}
}
