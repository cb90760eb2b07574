package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// fileConfig is the on-disk shape shared by the HCL and TOML formats:
//
//	rps {
//	  win_threshold = "3"
//	  lizard_spock  = "on"
//	  player "Ada" { kind = "human" }
//	  player "HAL" { kind = "cpu" }
//	}
//	twentyone {
//	  win_threshold = "2"
//	  humans        = 1
//	  cpus          = 3
//	}
//	pacing {
//	  enabled = false
//	}
type fileConfig struct {
	RPS       *rpsBlock       `hcl:"rps,block" toml:"rps"`
	TwentyOne *twentyOneBlock `hcl:"twentyone,block" toml:"twentyone"`
	Pacing    *pacingBlock    `hcl:"pacing,block" toml:"pacing"`
}

type rpsBlock struct {
	WinThreshold string        `hcl:"win_threshold,optional" toml:"win_threshold"`
	LizardSpock  string        `hcl:"lizard_spock,optional" toml:"lizard_spock"`
	Players      []playerBlock `hcl:"player,block" toml:"player"`
}

type playerBlock struct {
	Name string `hcl:"name,label" toml:"name"`
	Kind string `hcl:"kind" toml:"kind"`
}

type twentyOneBlock struct {
	WinThreshold  string `hcl:"win_threshold,optional" toml:"win_threshold"`
	HandLimit     *int   `hcl:"hand_limit,optional" toml:"hand_limit"`
	CPUStayTarget *int   `hcl:"cpu_stay_target,optional" toml:"cpu_stay_target"`
	Humans        *int   `hcl:"humans,optional" toml:"humans"`
	CPUs          *int   `hcl:"cpus,optional" toml:"cpus"`
	HumanPrefix   string `hcl:"human_prefix,optional" toml:"human_prefix"`
	CPUPrefix     string `hcl:"cpu_prefix,optional" toml:"cpu_prefix"`
}

type pacingBlock struct {
	Enabled  *bool  `hcl:"enabled,optional" toml:"enabled"`
	CPUThink string `hcl:"cpu_think,optional" toml:"cpu_think"`
	Reveal   string `hcl:"reveal,optional" toml:"reveal"`
	Shuffle  string `hcl:"shuffle,optional" toml:"shuffle"`
	Deal     string `hcl:"deal,optional" toml:"deal"`
	Hit      string `hcl:"hit,optional" toml:"hit"`
	Stay     string `hcl:"stay,optional" toml:"stay"`
	Bust     string `hcl:"bust,optional" toml:"bust"`
}

// Load reads an .hcl or .toml file over the defaults. The result is validated.
func Load(filename string) (Config, error) {
	var fc fileConfig

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".hcl":
		parser := hclparse.NewParser()
		file, diags := parser.ParseHCLFile(filename)
		if diags.HasErrors() {
			return Config{}, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
		}
		diags = gohcl.DecodeBody(file.Body, nil, &fc)
		if diags.HasErrors() {
			return Config{}, fmt.Errorf("failed to decode HCL: %s", diags.Error())
		}
	case ".toml":
		data, err := os.ReadFile(filename)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
		if _, err := toml.Decode(string(data), &fc); err != nil {
			return Config{}, fmt.Errorf("failed to decode TOML: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("unsupported config format %q (want .hcl or .toml)", ext)
	}

	cfg, err := fc.apply(Default())
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (fc fileConfig) apply(cfg Config) (Config, error) {
	if b := fc.RPS; b != nil {
		if b.WinThreshold != "" {
			t, err := ParseThreshold(b.WinThreshold)
			if err != nil {
				return cfg, err
			}
			cfg.RPS.Threshold = t
			cfg.RPS.AskThreshold = false
		}
		mode, err := ParseLizardSpock(b.LizardSpock)
		if err != nil {
			return cfg, err
		}
		cfg.RPS.LizardSpock = mode
		for _, p := range b.Players {
			kind, err := ParseKind(p.Kind)
			if err != nil {
				return cfg, err
			}
			cfg.RPS.Players = append(cfg.RPS.Players, Player{Name: p.Name, Kind: kind})
		}
	}

	if b := fc.TwentyOne; b != nil {
		t := &cfg.TwentyOne
		if b.WinThreshold != "" {
			threshold, err := ParseThreshold(b.WinThreshold)
			if err != nil {
				return cfg, err
			}
			t.Threshold = threshold
		}
		if b.HandLimit != nil {
			t.HandLimit = *b.HandLimit
			t.CPUStayTarget = t.HandLimit - 4
		}
		if b.CPUStayTarget != nil {
			t.CPUStayTarget = *b.CPUStayTarget
		}
		if b.Humans != nil {
			t.Humans = *b.Humans
		}
		if b.CPUs != nil {
			t.CPUs = *b.CPUs
		}
		if b.HumanPrefix != "" {
			t.HumanPrefix = b.HumanPrefix
		}
		if b.CPUPrefix != "" {
			t.CPUPrefix = b.CPUPrefix
		}
	}

	if b := fc.Pacing; b != nil {
		p := &cfg.Pacing
		if b.Enabled != nil {
			p.Enabled = *b.Enabled
		}
		for _, d := range []struct {
			name   string
			raw    string
			target *time.Duration
		}{
			{"cpu_think", b.CPUThink, &p.CPUThink},
			{"reveal", b.Reveal, &p.Reveal},
			{"shuffle", b.Shuffle, &p.Shuffle},
			{"deal", b.Deal, &p.Deal},
			{"hit", b.Hit, &p.Hit},
			{"stay", b.Stay, &p.Stay},
			{"bust", b.Bust, &p.Bust},
		} {
			if d.raw == "" {
				continue
			}
			parsed, err := time.ParseDuration(d.raw)
			if err != nil {
				return cfg, invalid("pacing "+d.name, d.raw, "not a duration")
			}
			*d.target = parsed
		}
	}

	return cfg, nil
}
