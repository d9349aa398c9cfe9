package durationstring

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type config struct {
	Timeout  Duration  `json:"timeout" yaml:"timeout"`
	Interval *Duration `json:"interval,omitempty" yaml:"interval,omitempty"`
}

func TestJSON(t *testing.T) {
	data, err := json.Marshal(config{Timeout: MustParse("1m")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"timeout":"1m"}`, string(data))

	var c config
	require.NoError(t, json.Unmarshal([]byte(`{"timeout":"2m","interval":"1h30m"}`), &c))
	assert.Equal(t, New(2*time.Minute), c.Timeout)
	require.NotNil(t, c.Interval)
	assert.Equal(t, "90m", c.Interval.String())

	c = config{Timeout: MustParse("1s")}
	require.NoError(t, json.Unmarshal([]byte(`{"timeout":null}`), &c))
	assert.Equal(t, "1s", c.Timeout.String())
}

func TestJSONErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"invalid unit", `{"timeout":"1000x"}`, ErrFormat},
		{"overflow", `{"timeout":"293y"}`, ErrOverflow},
		{"number", `{"timeout":60}`, nil},
		{"object", `{"timeout":{}}`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c config
			err := json.Unmarshal([]byte(tt.input), &c)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.ErrorContains(t, err, "expected a duration string")
			}
		})
	}
}

func TestYAML(t *testing.T) {
	data, err := yaml.Marshal(config{Timeout: New(61 * time.Second)})
	require.NoError(t, err)
	assert.Equal(t, "timeout: 61s\n", string(data))

	var c config
	require.NoError(t, yaml.Unmarshal([]byte("timeout: 1h 30m\ninterval: \"100ms\"\n"), &c))
	assert.Equal(t, New(90*time.Minute), c.Timeout)
	require.NotNil(t, c.Interval)
	assert.Equal(t, New(100*time.Millisecond), *c.Interval)
}

func TestYAMLErrors(t *testing.T) {
	var c config

	err := yaml.Unmarshal([]byte("timeout: 5x\n"), &c)
	assert.ErrorIs(t, err, ErrFormat)
	assert.ErrorContains(t, err, "line 1")

	err = yaml.Unmarshal([]byte("timeout:\n  - 1s\n"), &c)
	assert.ErrorContains(t, err, "expected a duration string")
}

func TestText(t *testing.T) {
	text, err := New(Week).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1w", string(text))

	var d Duration
	require.NoError(t, d.UnmarshalText([]byte("1w")))
	assert.Equal(t, New(Week), d)

	assert.ErrorIs(t, d.UnmarshalText([]byte("1W")), ErrFormat)
}

func TestFlagValue(t *testing.T) {
	var d Duration
	require.NoError(t, d.Set("5m 30s"))
	assert.Equal(t, "330s", d.String())
	assert.Equal(t, "duration", d.Type())
	assert.Error(t, d.Set("5"))
}

func TestEnv(t *testing.T) {
	type settings struct {
		TTL      Duration `env:"TTL" envDefault:"1d"`
		Deadline Duration `env:"DEADLINE"`
	}

	t.Setenv("TEST_DEADLINE", "1h30m")

	s, err := env.ParseAsWithOptions[settings](env.Options{Prefix: "TEST_"})
	require.NoError(t, err)
	assert.Equal(t, New(Day), s.TTL)
	assert.Equal(t, New(90*time.Minute), s.Deadline)

	t.Setenv("TEST_DEADLINE", "soon")
	_, err = env.ParseAsWithOptions[settings](env.Options{Prefix: "TEST_"})
	assert.ErrorContains(t, err, ErrFormat.Error())
}
