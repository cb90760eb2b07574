package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseThreshold(t *testing.T) {
	tests := []struct {
		input   string
		want    Threshold
		wantErr bool
	}{
		{input: "1", want: 1},
		{input: " 9 ", want: 9},
		{input: "u", want: Unlimited},
		{input: "Unlimited", want: Unlimited},
		{input: "endless", want: Unlimited},
		{input: "0", wantErr: true},
		{input: "-1", wantErr: true},
		{input: "-3", wantErr: true},
		{input: "many", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseThreshold(tt.input)
			if tt.wantErr {
				var cfgErr *ConfigurationError
				require.ErrorAs(t, err, &cfgErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestThresholdReached(t *testing.T) {
	two := Threshold(2)
	assert.False(t, two.Reached(1))
	assert.True(t, two.Reached(2))
	assert.True(t, two.Reached(3))

	assert.False(t, Unlimited.Reached(1_000_000))
	assert.Equal(t, "Endless", Unlimited.String())
	assert.Equal(t, "2", two.String())
}

func TestNewThresholdRejectsNonPositive(t *testing.T) {
	for _, n := range []int{0, -1, -2, -100} {
		got, err := NewThreshold(n)
		var cfgErr *ConfigurationError
		assert.ErrorAs(t, err, &cfgErr, "threshold %d", n)
		assert.False(t, got.IsUnlimited(), "threshold %d", n)
		assert.Error(t, Threshold(n).Validate(), "threshold %d", n)
	}
	assert.NoError(t, Unlimited.Validate())
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 2, cfg.TwentyOne.InitialDraw())
	assert.Equal(t, 17, cfg.TwentyOne.CPUStayTarget)
	assert.Equal(t, []Player{
		{Name: "Human 1", Kind: Human},
		{Name: "Human 2", Kind: Human},
		{Name: "Robot 1", Kind: Automated},
		{Name: "Robot 2", Kind: Automated},
	}, cfg.TwentyOne.Seats())
}

func TestSeatsDropSuffixForSinglePlayer(t *testing.T) {
	t21 := Default().TwentyOne
	t21.Humans = 1
	t21.CPUs = 1
	assert.Equal(t, []Player{
		{Name: "Human", Kind: Human},
		{Name: "Robot", Kind: Automated},
	}, t21.Seats())
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"zero rps threshold", func(c *Config) { c.RPS.Threshold = 0 }, "win threshold"},
		{"negative twentyone threshold", func(c *Config) { c.TwentyOne.Threshold = -5 }, "win threshold"},
		{"minus one rps threshold", func(c *Config) { c.RPS.Threshold = -1 }, "win threshold"},
		{"three rps players", func(c *Config) {
			c.RPS.Players = []Player{{Name: "a"}, {Name: "b"}, {Name: "c"}}
		}, "rps players"},
		{"duplicate rps names", func(c *Config) {
			c.RPS.Players = []Player{{Name: "a"}, {Name: "a", Kind: Automated}}
		}, "rps player"},
		{"rps names differing only in case", func(c *Config) {
			c.RPS.Players = []Player{{Name: "Ann"}, {Name: "ann ", Kind: Automated}}
		}, "rps player"},
		{"seat prefixes differing only in case", func(c *Config) {
			c.TwentyOne.Humans, c.TwentyOne.CPUs = 1, 1
			c.TwentyOne.HumanPrefix, c.TwentyOne.CPUPrefix = "Robot", "robot"
		}, "twentyone seat"},
		{"blank rps name", func(c *Config) {
			c.RPS.Players = []Player{{Name: "  "}, {Name: "b"}}
		}, "rps player"},
		{"tiny hand limit", func(c *Config) { c.TwentyOne.HandLimit = 9 }, "hand_limit"},
		{"stay target above limit", func(c *Config) { c.TwentyOne.CPUStayTarget = 22 }, "cpu_stay_target"},
		{"empty table", func(c *Config) { c.TwentyOne.Humans, c.TwentyOne.CPUs = 0, 0 }, "seats"},
		{"negative pause", func(c *Config) { c.Pacing.Deal = -time.Second }, "pacing deal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			var cfgErr *ConfigurationError
			require.True(t, errors.As(err, &cfgErr), "got %v", err)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestPacingValidateReportsFirstNegativePause(t *testing.T) {
	p := Default().Pacing
	p.Bust = -time.Second
	p.Deal = -time.Second
	p.CPUThink = -time.Second

	for i := 0; i < 20; i++ {
		var cfgErr *ConfigurationError
		require.ErrorAs(t, p.Validate(), &cfgErr)
		assert.Equal(t, "pacing cpu_think", cfgErr.Field)
	}
}

const hclFixture = `
rps {
  win_threshold = "3"
  lizard_spock  = "on"

  player "Ada" {
    kind = "human"
  }
  player "HAL" {
    kind = "cpu"
  }
}

twentyone {
  win_threshold = "5"
  hand_limit    = 31
  humans        = 1
  cpus          = 3
  cpu_prefix    = "Bot"
}

pacing {
  enabled = false
  deal    = "10ms"
}
`

const tomlFixture = `
[rps]
win_threshold = "3"
lizard_spock = "on"

[[rps.player]]
name = "Ada"
kind = "human"

[[rps.player]]
name = "HAL"
kind = "cpu"

[twentyone]
win_threshold = "5"
hand_limit = 31
humans = 1
cpus = 3
cpu_prefix = "Bot"

[pacing]
enabled = false
deal = "10ms"
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadHCLAndTOMLAgree(t *testing.T) {
	fromHCL, err := Load(writeFile(t, "parlour.hcl", hclFixture))
	require.NoError(t, err)
	fromTOML, err := Load(writeFile(t, "parlour.toml", tomlFixture))
	require.NoError(t, err)

	assert.Equal(t, fromHCL, fromTOML)

	assert.Equal(t, Threshold(3), fromHCL.RPS.Threshold)
	assert.False(t, fromHCL.RPS.AskThreshold)
	assert.Equal(t, LizardSpockOn, fromHCL.RPS.LizardSpock)
	assert.Equal(t, []Player{{Name: "Ada", Kind: Human}, {Name: "HAL", Kind: Automated}}, fromHCL.RPS.Players)

	assert.Equal(t, Threshold(5), fromHCL.TwentyOne.Threshold)
	assert.Equal(t, 31, fromHCL.TwentyOne.HandLimit)
	assert.Equal(t, 27, fromHCL.TwentyOne.CPUStayTarget)
	assert.Equal(t, 3, fromHCL.TwentyOne.InitialDraw())
	assert.Equal(t, "Bot 1", fromHCL.TwentyOne.Seats()[1].Name)

	assert.False(t, fromHCL.Pacing.Enabled)
	assert.Equal(t, 10*time.Millisecond, fromHCL.Pacing.Deal)
	assert.Equal(t, Default().Pacing.Hit, fromHCL.Pacing.Hit)
}

func TestLoadRejectsInvalidThreshold(t *testing.T) {
	files := map[string]string{
		"zero.hcl":       `twentyone { win_threshold = "0" }`,
		"minus-one.hcl":  `rps { win_threshold = "-1" }`,
		"minus-one.toml": "[twentyone]\nwin_threshold = \"-1\"\n",
	}
	for name, content := range files {
		_, err := Load(writeFile(t, name, content))
		var cfgErr *ConfigurationError
		assert.ErrorAs(t, err, &cfgErr, name)
	}
}

func TestLoadUnlimitedThreshold(t *testing.T) {
	cfg, err := Load(writeFile(t, "endless.toml", "[rps]\nwin_threshold = \"unlimited\"\n"))
	require.NoError(t, err)
	assert.True(t, cfg.RPS.Threshold.IsUnlimited())
}

func TestLoadUnsupportedExtension(t *testing.T) {
	_, err := Load(writeFile(t, "parlour.yaml", "rps: {}"))
	assert.ErrorContains(t, err, "unsupported config format")
}

func TestParseKindAndLizardSpock(t *testing.T) {
	k, err := ParseKind("C")
	require.NoError(t, err)
	assert.Equal(t, Automated, k)

	_, err = ParseKind("alien")
	assert.Error(t, err)

	mode, err := ParseLizardSpock("")
	require.NoError(t, err)
	assert.Equal(t, LizardSpockAsk, mode)

	_, err = ParseLizardSpock("sometimes")
	assert.Error(t, err)
}
