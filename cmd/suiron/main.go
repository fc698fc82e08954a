package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"golang.org/x/crypto/ssh/terminal"
	"gopkg.in/yaml.v3"

	"suiron"
	"suiron/engine"
	"suiron/nondet"
	"suiron/term"
)

// Version is a version of this build.
var Version = "suiron/0.1"

// config holds the optional REPL settings read from --config or
// ~/.suiron.yaml.
type config struct {
	Prompt  string `yaml:"prompt"`
	Unknown string `yaml:"unknown"` // fail | warn | error
}

func defaultConfig() config {
	return config{Prompt: "?- ", Unknown: "fail"}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, ".suiron.yaml")
		if _, err := os.Stat(path); err != nil {
			return cfg, nil
		}
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func main() {
	var (
		verbose    bool
		configPath string
	)
	pflag.BoolVarP(&verbose, "verbose", "v", false, `verbose`)
	pflag.StringVarP(&configPath, "config", "c", "", `path to a yaml config file`)
	pflag.Parse()

	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	oldState, err := terminal.MakeRaw(0)
	if err != nil {
		log.Panicf("failed to enter raw mode: %v", err)
	}
	restore := func() {
		_ = terminal.Restore(0, oldState)
	}
	defer restore()

	t := terminal.NewTerminal(os.Stdin, cfg.Prompt)
	defer fmt.Printf("\r\n")

	log.SetOutput(t)
	logrus.SetOutput(t)

	i := suiron.New(t)
	switch cfg.Unknown {
	case "warn":
		i.Unknown = engine.UnknownWarn
	case "error":
		i.Unknown = engine.UnknownError
	}

	i.Register("halt", func(vm *engine.VM, args []term.Term, env *term.Env, k engine.Cont) *nondet.Promise {
		restore()
		fmt.Printf("\r\n")
		os.Exit(0)
		return nil
	})
	i.Register("version", func(vm *engine.VM, args []term.Term, env *term.Env, k engine.Cont) *nondet.Promise {
		fmt.Fprintln(t, Version)
		return k(env)
	})

	for _, a := range pflag.Args() {
		if err := consultFile(i, a); err != nil {
			log.Panicf("failed to load %s: %v", a, err)
		}
	}

	keys := bufio.NewReader(os.Stdin)
	for {
		if err := handleLine(i, t, keys, cfg.Prompt); err != nil {
			if err == io.EOF {
				return
			}
			log.Panic(err)
		}
	}
}

func consultFile(i *suiron.Interpreter, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return i.Consult(f)
}

func handleLine(i *suiron.Interpreter, t *terminal.Terminal, keys *bufio.Reader, prompt string) error {
	t.SetPrompt(prompt)

	line, err := t.ReadLine()
	if err != nil {
		return err
	}
	if strings.TrimSpace(line) == "" {
		return nil
	}

	sols, err := i.Query(line)
	if err != nil {
		log.Printf("failed to parse: %v", err)
		return nil
	}
	defer sols.Close()

	stopped := false
	for sols.Next() {
		m := map[string]term.Term{}
		sols.Scan(m)

		ls := make([]string, 0, len(m))
		for _, n := range sols.Vars() {
			v := m[n]
			if _, unbound := v.(term.Variable); unbound {
				continue
			}
			ls = append(ls, fmt.Sprintf("$%s = %s", n, v))
		}
		if len(ls) == 0 {
			if _, err := fmt.Fprintf(t, "true.\n"); err != nil {
				return err
			}
			stopped = true
			break
		}

		if _, err := fmt.Fprintf(t, "%s ", strings.Join(ls, ",\n")); err != nil {
			return err
		}

		// One more solution per keystroke; anything but ";" stops.
		r, _, err := keys.ReadRune()
		if err != nil {
			return err
		}
		if r != ';' {
			if _, err := fmt.Fprintf(t, ".\n"); err != nil {
				return err
			}
			stopped = true
			break
		}
		if _, err := fmt.Fprintf(t, ";\n"); err != nil {
			return err
		}
	}

	if err := sols.Err(); err != nil {
		log.Printf("failed: %v", err)
		return nil
	}
	if !stopped {
		if _, err := fmt.Fprintf(t, "No more.\n"); err != nil {
			return err
		}
	}
	return nil
}
