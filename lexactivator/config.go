package lexactivator

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// EnvPrefix prefixes every environment variable read by LoadConfig.
const EnvPrefix = "LEXACTIVATOR"

// Config is the declarative bootstrap of a Client: which library to load
// and the setter calls every program start has to make.
type Config struct {
	LibraryPath       string `yaml:"library_path" envconfig:"LIBRARY_PATH"`
	MinBufferCapacity uint32 `yaml:"min_buffer_capacity" envconfig:"MIN_BUFFER_CAPACITY" validate:"omitempty,max=1048576"`

	ProductData     string         `yaml:"product_data" envconfig:"PRODUCT_DATA" validate:"required_without=ProductDataFile"`
	ProductDataFile string         `yaml:"product_data_file" envconfig:"PRODUCT_DATA_FILE" validate:"omitempty,file"`
	ProductID       string         `yaml:"product_id" envconfig:"PRODUCT_ID" validate:"required"`
	Permission      PermissionFlag `yaml:"permission" envconfig:"PERMISSION" validate:"omitempty,oneof=1 2 3 4"`
	DataDirectory   string         `yaml:"data_directory" envconfig:"DATA_DIRECTORY" validate:"omitempty,dir"`

	CryptlexHost string `yaml:"cryptlex_host" envconfig:"CRYPTLEX_HOST" validate:"omitempty,url"`
	NetworkProxy string `yaml:"network_proxy" envconfig:"NETWORK_PROXY"`

	// CustomFingerprint is passed to SetCustomDeviceFingerprint. With
	// GenerateFingerprint set and no CustomFingerprint, the value of
	// GenerateFingerprint() is used instead.
	CustomFingerprint   string `yaml:"custom_fingerprint" envconfig:"CUSTOM_FINGERPRINT" validate:"omitempty,min=64,max=256"`
	GenerateFingerprint bool   `yaml:"generate_fingerprint" envconfig:"GENERATE_FINGERPRINT"`

	Release ReleaseConfig `yaml:"release" envconfig:"RELEASE"`

	DisableCache  bool          `yaml:"disable_cache" envconfig:"DISABLE_CACHE"`
	LeaseDuration time.Duration `yaml:"lease_duration" envconfig:"LEASE_DURATION" validate:"gte=0"`
	LicenseKey    string        `yaml:"license_key" envconfig:"LICENSE_KEY"`
}

// ReleaseConfig describes the running release for update checks.
type ReleaseConfig struct {
	Version  string `yaml:"version" envconfig:"VERSION" validate:"omitempty,max=256"`
	Platform string `yaml:"platform" envconfig:"PLATFORM" validate:"omitempty,max=256"`
	Channel  string `yaml:"channel" envconfig:"CHANNEL" validate:"omitempty,max=256"`
}

var validate = validator.New()

// LoadConfig reads the configuration from LEXACTIVATOR_* environment
// variables and validates it.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfigFile reads a YAML configuration file. Environment variables
// that are set take precedence over the file.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *Config) setDefaults() {
	if cfg.Permission == 0 {
		cfg.Permission = PermissionUser
	}
}

// Validate checks field constraints.
func (cfg *Config) Validate() error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// Options returns the Client options the configuration implies.
func (cfg *Config) Options() []Option {
	var opts []Option
	if cfg.LibraryPath != "" {
		opts = append(opts, WithLibraryPath(cfg.LibraryPath))
	}
	if cfg.MinBufferCapacity > 0 {
		opts = append(opts, WithMinBufferCapacity(cfg.MinBufferCapacity))
	}
	return opts
}

// Apply makes the setter calls cfg describes, in the order the engine
// expects them. It stops at the first failure; the returned error wraps the
// engine's ErrorCode.
func (c *Client) Apply(cfg *Config) error {
	productData := cfg.ProductData
	if productData == "" && cfg.ProductDataFile != "" {
		b, err := os.ReadFile(cfg.ProductDataFile)
		if err != nil {
			return fmt.Errorf("read product data: %w", err)
		}
		productData = string(b)
	}
	if err := c.SetProductData(productData); err != nil {
		return fmt.Errorf("set product data: %w", err)
	}

	permission := cfg.Permission
	if permission == 0 {
		permission = PermissionUser
	}
	if err := c.SetProductID(cfg.ProductID, permission); err != nil {
		return fmt.Errorf("set product id: %w", err)
	}

	if cfg.DataDirectory != "" {
		if err := c.SetDataDirectory(cfg.DataDirectory); err != nil {
			return fmt.Errorf("set data directory: %w", err)
		}
	}
	if cfg.CryptlexHost != "" {
		if err := c.SetCryptlexHost(cfg.CryptlexHost); err != nil {
			return fmt.Errorf("set cryptlex host: %w", err)
		}
	}
	if cfg.NetworkProxy != "" {
		if err := c.SetNetworkProxy(cfg.NetworkProxy); err != nil {
			return fmt.Errorf("set network proxy: %w", err)
		}
	}

	fingerprint := cfg.CustomFingerprint
	if fingerprint == "" && cfg.GenerateFingerprint {
		fp, err := GenerateFingerprint()
		if err != nil {
			return fmt.Errorf("generate fingerprint: %w", err)
		}
		fingerprint = fp
	}
	if fingerprint != "" {
		if err := c.SetCustomDeviceFingerprint(fingerprint); err != nil {
			return fmt.Errorf("set custom device fingerprint: %w", err)
		}
	}

	if err := c.applyRelease(cfg.Release); err != nil {
		return err
	}

	if cfg.DisableCache {
		if err := c.SetCacheMode(false); err != nil {
			return fmt.Errorf("set cache mode: %w", err)
		}
	}
	if cfg.LeaseDuration > 0 {
		if err := c.SetActivationLeaseDuration(cfg.LeaseDuration); err != nil {
			return fmt.Errorf("set activation lease duration: %w", err)
		}
	}
	if cfg.LicenseKey != "" {
		if err := c.SetLicenseKey(cfg.LicenseKey); err != nil {
			return fmt.Errorf("set license key: %w", err)
		}
	}
	return nil
}

func (c *Client) applyRelease(r ReleaseConfig) error {
	if r.Version != "" {
		if err := c.SetReleaseVersion(r.Version); err != nil {
			return fmt.Errorf("set release version: %w", err)
		}
	}
	if r.Platform != "" {
		if err := c.SetReleasePlatform(r.Platform); err != nil {
			return fmt.Errorf("set release platform: %w", err)
		}
	}
	if r.Channel != "" {
		if err := c.SetReleaseChannel(r.Channel); err != nil {
			return fmt.Errorf("set release channel: %w", err)
		}
	}
	return nil
}
