package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPrintCommand is used when no command is configured.
const DefaultPrintCommand = "lp"

// PrinterConfig describes a print command.
type PrinterConfig struct {
	Name        string            `yaml:"name" json:"name"`
	Command     string            `yaml:"command" json:"command"`
	Args        []string          `yaml:"args" json:"args"`
	Environment map[string]string `yaml:"env" json:"env"`
}

type printersFile struct {
	Printers []PrinterConfig `yaml:"printers" json:"printers"`
}

// LoadPrinters reads printer definitions from a YAML or JSON file.
// A missing file yields an empty map.
func LoadPrinters(path string) (map[string]PrinterConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]PrinterConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read printers config: %w", err)
	}

	var cfg printersFile
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		err = json.Unmarshal(data, &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse printers config %s: %w", path, err)
	}

	out := make(map[string]PrinterConfig, len(cfg.Printers))
	for _, p := range cfg.Printers {
		if p.Name == "" || p.Command == "" {
			continue
		}
		out[p.Name] = p
	}
	return out, nil
}

// CommandPrinter pipes the PDF to an external command on stdin.
// The job title and key are passed as FOLIO_JOB_TITLE and FOLIO_JOB_KEY, never as flags.
// With no Command it runs `lp -`.
type CommandPrinter struct {
	Config PrinterConfig
	Dir    string
}

// NewCommandPrinter creates a printer for cfg.
func NewCommandPrinter(cfg PrinterConfig) *CommandPrinter {
	return &CommandPrinter{Config: cfg}
}

func (p *CommandPrinter) Print(ctx context.Context, job Job) error {
	name, args := p.Config.Command, p.Config.Args
	if name == "" {
		name, args = DefaultPrintCommand, []string{"-"}
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = p.Dir
	cmd.Stdin = job.PDF
	cmd.Env = append(cmd.Environ(),
		"FOLIO_JOB_TITLE="+job.Title,
		"FOLIO_JOB_KEY="+job.Key,
	)
	for k, v := range p.Config.Environment {
		cmd.Env = append(cmd.Env, k+"="+v)
	}

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("print command %s failed: %w: %s", name, err, strings.TrimSpace(stderr.String()))
	}
	return nil
}
