package nexus

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"sort"
	"strings"
	"time"

	"dario.cat/mergo"
	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// ConfigError represents domain-specific configuration errors
type ConfigError struct {
	Code    string
	Message string
	Field   string
	Cause   error
}

func (e ConfigError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Field != "" {
		msg = fmt.Sprintf("%s (field: %s)", msg, e.Field)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e ConfigError) Unwrap() error {
	return e.Cause
}

const (
	ErrCodeInvalidType   = "CONFIG_INVALID_TYPE"
	ErrCodeFileNotFound  = "CONFIG_FILE_NOT_FOUND"
	ErrCodeValidation    = "CONFIG_VALIDATION_FAILED"
	ErrCodeEnvironment   = "CONFIG_ENV_READ_FAILED"
	ErrCodeMerge         = "CONFIG_MERGE_FAILED"
	ErrCodeSourceFailed  = "CONFIG_SOURCE_FAILED"
	ErrCodeSecurityCheck = "CONFIG_SECURITY_CHECK_FAILED"
)

// Source represents an extra configuration source applied after env and file.
type Source interface {
	Load(ctx context.Context, target interface{}) error
	Name() string
	Priority() int
}

// Validator handles configuration validation
type Validator interface {
	Validate(ctx context.Context, cfg interface{}) error
}

// SecurityChecker performs security validation on configuration
type SecurityChecker interface {
	CheckSecurity(ctx context.Context, cfg interface{}) error
}

// LoaderOptions contains configuration for the loader
type LoaderOptions struct {
	DefaultFileName string
	FileName        string
	OnlyEnvironment bool
	Validator       Validator
	SecurityChecker SecurityChecker
	Sources         []Source
	Timeout         time.Duration
}

// Loader reads environment, an optional file and custom sources into a struct.
type Loader struct {
	options LoaderOptions
}

type LoaderOption func(*LoaderOptions)

// WithDefaultFileName sets the file read when present and no explicit file is given.
func WithDefaultFileName(fileName string) LoaderOption {
	return func(o *LoaderOptions) {
		o.DefaultFileName = fileName
	}
}

// WithFileName sets a configuration file that must exist.
func WithFileName(fileName string) LoaderOption {
	return func(o *LoaderOptions) {
		o.FileName = fileName
	}
}

// WithOnlyEnvironment configures loader to only read from environment
func WithOnlyEnvironment() LoaderOption {
	return func(o *LoaderOptions) {
		o.OnlyEnvironment = true
		o.FileName = ""
	}
}

func WithValidator(v Validator) LoaderOption {
	return func(o *LoaderOptions) {
		o.Validator = v
	}
}

func WithSecurityChecker(sc SecurityChecker) LoaderOption {
	return func(o *LoaderOptions) {
		o.SecurityChecker = sc
	}
}

func WithSources(sources ...Source) LoaderOption {
	return func(o *LoaderOptions) {
		o.Sources = append(o.Sources, sources...)
	}
}

func WithTimeout(timeout time.Duration) LoaderOption {
	return func(o *LoaderOptions) {
		o.Timeout = timeout
	}
}

func NewLoader(opts ...LoaderOption) *Loader {
	options := LoaderOptions{
		DefaultFileName: ".env",
		Validator:       &DefaultValidator{},
		SecurityChecker: &DefaultSecurityChecker{},
		Timeout:         30 * time.Second,
	}

	for _, opt := range opts {
		opt(&options)
	}

	return &Loader{options: options}
}

// Load loads configuration from all configured sources
func (l *Loader) Load(cfg interface{}) error {
	return l.LoadWithContext(context.Background(), cfg)
}

func (l *Loader) LoadWithContext(ctx context.Context, cfg interface{}) error {
	if l.options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.options.Timeout)
		defer cancel()
	}

	if err := l.validateInputType(cfg); err != nil {
		return err
	}

	if err := l.loadFromBuiltinSources(cfg); err != nil {
		return err
	}

	if err := l.loadFromCustomSources(ctx, cfg); err != nil {
		return err
	}

	if err := l.options.SecurityChecker.CheckSecurity(ctx, cfg); err != nil {
		return &ConfigError{
			Code:    ErrCodeSecurityCheck,
			Message: "security validation failed",
			Cause:   err,
		}
	}

	if err := l.options.Validator.Validate(ctx, cfg); err != nil {
		ce := &ConfigError{
			Code:    ErrCodeValidation,
			Message: "configuration validation failed",
			Cause:   err,
		}
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			ce.Field = verrs[0].Namespace()
		}
		return ce
	}

	return nil
}

func (l *Loader) validateInputType(cfg interface{}) error {
	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return &ConfigError{
			Code:    ErrCodeInvalidType,
			Message: fmt.Sprintf("configuration must be a pointer to struct, got %T", cfg),
		}
	}
	return nil
}

func (l *Loader) loadFromBuiltinSources(cfg interface{}) error {
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return &ConfigError{
			Code:    ErrCodeEnvironment,
			Message: "failed to read environment variables",
			Cause:   err,
		}
	}

	if l.options.OnlyEnvironment {
		return nil
	}

	if fileName := l.resolveFileName(); fileName != "" {
		return l.loadFromFile(cfg, fileName)
	}
	return nil
}

// loadFromFile reads the file into a fresh copy and merges it over cfg.
func (l *Loader) loadFromFile(cfg interface{}, fileName string) error {
	fileCfg := reflect.New(reflect.ValueOf(cfg).Elem().Type()).Interface()

	if err := cleanenv.ReadConfig(fileName, fileCfg); err != nil {
		return &ConfigError{
			Code:    ErrCodeFileNotFound,
			Message: fmt.Sprintf("failed to read configuration file: %s", fileName),
			Cause:   err,
		}
	}

	if err := mergo.MergeWithOverwrite(cfg, fileCfg); err != nil {
		return &ConfigError{
			Code:    ErrCodeMerge,
			Message: "failed to merge configuration sources",
			Cause:   err,
		}
	}

	return nil
}

// loadFromCustomSources applies sources from highest to lowest priority.
func (l *Loader) loadFromCustomSources(ctx context.Context, cfg interface{}) error {
	sources := make([]Source, len(l.options.Sources))
	copy(sources, l.options.Sources)
	sort.SliceStable(sources, func(i, j int) bool {
		return sources[i].Priority() > sources[j].Priority()
	})

	for _, source := range sources {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := source.Load(ctx, cfg); err != nil {
			return &ConfigError{
				Code:    ErrCodeSourceFailed,
				Message: fmt.Sprintf("failed to load from source: %s", source.Name()),
				Cause:   err,
			}
		}
	}

	return nil
}

func (l *Loader) resolveFileName() string {
	if l.options.FileName != "" {
		return l.options.FileName
	}
	if l.options.DefaultFileName == "" {
		return ""
	}
	if _, err := os.Stat(l.options.DefaultFileName); err == nil {
		return l.options.DefaultFileName
	}
	return ""
}

// DefaultValidator validates `validate` struct tags with go-playground/validator.
type DefaultValidator struct {
	validator *validator.Validate
}

func (v *DefaultValidator) Validate(_ context.Context, cfg interface{}) error {
	if v.validator == nil {
		v.validator = validator.New()
	}
	return v.validator.Struct(cfg)
}

// DefaultSecurityChecker rejects obviously weak values in secret-looking fields,
// including those of nested structs.
type DefaultSecurityChecker struct{}

func (sc *DefaultSecurityChecker) CheckSecurity(_ context.Context, cfg interface{}) error {
	return sc.checkStruct(reflect.ValueOf(cfg).Elem(), "")
}

func (sc *DefaultSecurityChecker) checkStruct(val reflect.Value, prefix string) error {
	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)
		if !fieldType.IsExported() {
			continue
		}
		name := prefix + fieldType.Name

		switch field.Kind() {
		case reflect.Struct:
			if err := sc.checkStruct(field, name+"."); err != nil {
				return err
			}
		case reflect.String:
			if sc.isSensitiveField(fieldType.Name) && sc.isValueExposed(field.String()) {
				return fmt.Errorf("sensitive field %s appears to contain exposed credentials", name)
			}
		}
	}
	return nil
}

func (sc *DefaultSecurityChecker) isSensitiveField(fieldName string) bool {
	sensitiveFields := []string{"password", "secret", "token", "credential"}
	fieldLower := strings.ToLower(fieldName)

	for _, sensitive := range sensitiveFields {
		if strings.Contains(fieldLower, sensitive) {
			return true
		}
	}
	return false
}

func (sc *DefaultSecurityChecker) isValueExposed(value string) bool {
	exposedPatterns := []string{"password", "123456", "admin", "changeme"}
	valueLower := strings.ToLower(value)

	for _, pattern := range exposedPatterns {
		if strings.Contains(valueLower, pattern) {
			return true
		}
	}
	return false
}

// FileSource implements Source for a file that must exist.
type FileSource struct {
	FilePath string
	priority int
}

func NewFileSource(filePath string, priority int) *FileSource {
	return &FileSource{
		FilePath: filePath,
		priority: priority,
	}
}

func (fs *FileSource) Load(_ context.Context, target interface{}) error {
	return cleanenv.ReadConfig(fs.FilePath, target)
}

func (fs *FileSource) Name() string {
	return fmt.Sprintf("file:%s", fs.FilePath)
}

func (fs *FileSource) Priority() int {
	return fs.priority
}
