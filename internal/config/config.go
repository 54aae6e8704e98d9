package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/ms-henglu/xmlmap/internal/tree"
	"github.com/zclconf/go-cty/cty"
)

const (
	ModeDedup = "dedup"
	ModeAll   = "all"
)

// Config represents the structure of xmlmap.hcl
type Config struct {
	Mode     string  `hcl:"mode,optional"`
	CacheDir string  `hcl:"cache_dir,optional"`
	Indent   *Indent `hcl:"indent,block"`
}

// Indent represents the indent block in xmlmap.hcl
type Indent struct {
	Base   *int    `hcl:"base,optional"`
	Step   *int    `hcl:"step,optional"`
	Marker *string `hcl:"marker,optional"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	base, step, marker := tree.DefaultStyle.Base, tree.DefaultStyle.Step, tree.DefaultStyle.Marker
	return &Config{
		Mode: ModeDedup,
		Indent: &Indent{
			Base:   &base,
			Step:   &step,
			Marker: &marker,
		},
	}
}

// Load parses the config file at path. A missing file yields Default().
// Expressions may reference environment variables as env.NAME.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	f, diags := hclsyntax.ParseConfig(data, path, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config: %s", diags.Error())
	}

	cfg := &Config{}
	if diags := gohcl.DecodeBody(f.Body, evalContext(), cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %s", diags.Error())
	}

	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) fillDefaults() {
	def := Default()
	if c.Mode == "" {
		c.Mode = def.Mode
	}
	if c.Indent == nil {
		c.Indent = def.Indent
		return
	}
	if c.Indent.Base == nil {
		c.Indent.Base = def.Indent.Base
	}
	if c.Indent.Step == nil {
		c.Indent.Step = def.Indent.Step
	}
	if c.Indent.Marker == nil {
		c.Indent.Marker = def.Indent.Marker
	}
}

// Validate checks the values Load cannot check while decoding.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeDedup, ModeAll:
	default:
		return fmt.Errorf("invalid mode %q: must be %q or %q", c.Mode, ModeDedup, ModeAll)
	}
	if c.Indent == nil {
		return nil
	}
	if c.Indent.Base != nil && *c.Indent.Base < 0 {
		return fmt.Errorf("invalid indent base %d: must not be negative", *c.Indent.Base)
	}
	if c.Indent.Step != nil && *c.Indent.Step < 0 {
		return fmt.Errorf("invalid indent step %d: must not be negative", *c.Indent.Step)
	}
	if c.Indent.Marker != nil && *c.Indent.Marker == "" {
		return fmt.Errorf("invalid indent marker: must not be empty")
	}
	return nil
}

// Style returns the outline style described by the indent block.
func (c *Config) Style() tree.Style {
	s := tree.DefaultStyle
	if c.Indent == nil {
		return s
	}
	if c.Indent.Base != nil {
		s.Base = *c.Indent.Base
	}
	if c.Indent.Step != nil {
		s.Step = *c.Indent.Step
	}
	if c.Indent.Marker != nil {
		s.Marker = *c.Indent.Marker
	}
	return s
}

// Lossless reports whether duplicate siblings should be kept.
func (c *Config) Lossless() bool {
	return c.Mode == ModeAll
}

// Render returns cfg as a formatted HCL file.
func Render(cfg *Config) []byte {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	body.AppendUnstructuredTokens(hclwrite.Tokens{
		{Type: hclsyntax.TokenComment, Bytes: []byte("# xmlmap configuration\n")},
		{Type: hclsyntax.TokenComment, Bytes: []byte("# mode \"dedup\" prints each child tag once per parent, \"all\" keeps duplicates.\n")},
	})
	body.SetAttributeValue("mode", cty.StringVal(cfg.Mode))
	if cfg.CacheDir != "" {
		body.SetAttributeValue("cache_dir", cty.StringVal(cfg.CacheDir))
	}
	body.AppendNewline()

	style := cfg.Style()
	indent := body.AppendNewBlock("indent", nil).Body()
	indent.SetAttributeValue("base", cty.NumberIntVal(int64(style.Base)))
	indent.SetAttributeValue("step", cty.NumberIntVal(int64(style.Step)))
	indent.SetAttributeValue("marker", cty.StringVal(style.Marker))

	return hclwrite.Format(f.Bytes())
}

func evalContext() *hcl.EvalContext {
	env := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		env[name] = cty.StringVal(value)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(env),
		},
	}
}
