package xmain

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"oss.terrastruct.com/cmdlog"
	"oss.terrastruct.com/xos"
)

// Opts declares flags whose defaults can be overridden by environment variables.
type Opts struct {
	Args  []string
	Flags *pflag.FlagSet
	env   *xos.Env
	log   *cmdlog.Logger

	envFlags []envFlag
}

// envFlag is an environment variable backing a flag.
type envFlag struct {
	key  string
	flag string
}

func NewOpts(env *xos.Env, log *cmdlog.Logger, args []string) *Opts {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.SortFlags = false
	flags.Usage = func() {}
	flags.SetOutput(io.Discard)
	return &Opts{
		Args:  args,
		Flags: flags,
		env:   env,
		log:   log,
	}
}

// Help lists the flag defaults followed by the environment variables read.
func (o *Opts) Help() string {
	b := &strings.Builder{}
	o.Flags.SetOutput(b)
	o.Flags.PrintDefaults()
	o.Flags.SetOutput(io.Discard)

	if len(o.envFlags) == 0 {
		return b.String()
	}
	b.WriteString("\nYou may persistently set the following as environment variables (flags take precedent):\n")
	lines := make([]string, 0, len(o.envFlags))
	for _, ef := range o.envFlags {
		lines = append(lines, fmt.Sprintf("- $%s (--%s)", ef.key, ef.flag))
	}
	b.WriteString(strings.Join(lines, "\n"))
	return b.String()
}

// envDefault returns the value of envKey parsed by parse, or def when it is unset.
func envDefault[T any](o *Opts, envKey, flag, kind string, def T, parse func(string) (T, error)) (T, error) {
	if envKey == "" {
		return def, nil
	}
	o.envFlags = append(o.envFlags, envFlag{key: envKey, flag: flag})
	raw := o.env.Getenv(envKey)
	if raw == "" {
		return def, nil
	}
	v, err := parse(raw)
	if err != nil {
		return def, fmt.Errorf(`invalid environment variable %s. Expected %s. Found "%s".`, envKey, kind, raw)
	}
	return v, nil
}

func (o *Opts) Int64(envKey, flag, shortFlag string, defaultVal int64, usage string) (*int64, error) {
	v, err := envDefault(o, envKey, flag, "int64", defaultVal, func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 64)
	})
	if err != nil {
		return nil, err
	}
	return o.Flags.Int64P(flag, shortFlag, v, usage), nil
}

func (o *Opts) Float64(envKey, flag, shortFlag string, defaultVal float64, usage string) (*float64, error) {
	v, err := envDefault(o, envKey, flag, "float64", defaultVal, func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
	if err != nil {
		return nil, err
	}
	return o.Flags.Float64P(flag, shortFlag, v, usage), nil
}

// String never fails as any value is a valid string.
func (o *Opts) String(envKey, flag, shortFlag string, defaultVal, usage string) *string {
	v, _ := envDefault(o, envKey, flag, "string", defaultVal, func(s string) (string, error) {
		return s, nil
	})
	return o.Flags.StringP(flag, shortFlag, v, usage)
}

// Bool accepts 1, true, 0 and false.
func (o *Opts) Bool(envKey, flag, shortFlag string, defaultVal bool, usage string) (*bool, error) {
	v, err := envDefault(o, envKey, flag, "bool", defaultVal, parseEnvBool)
	if err != nil {
		return nil, err
	}
	return o.Flags.BoolP(flag, shortFlag, v, usage), nil
}

func parseEnvBool(s string) (bool, error) {
	switch s {
	case "1", "true":
		return true, nil
	case "0", "false":
		return false, nil
	}
	return false, fmt.Errorf("not a bool: %q", s)
}
