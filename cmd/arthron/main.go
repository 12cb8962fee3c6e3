// Command arthron builds the Arthron digital-edition document model.
// It runs one extraction over the TEI source pair and emits the model as
// JSON for a downstream renderer.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"github.com/Tamarae/Arthron/core/edition"
	"github.com/Tamarae/Arthron/internal/config"
	"github.com/Tamarae/Arthron/internal/logging"
	"github.com/Tamarae/Arthron/internal/tei"
)

const version = "1.0.0"

// CLI defines the command-line interface for arthron.
var CLI struct {
	Config string `name:"config" short:"c" help:"Build configuration YAML" type:"path"`

	Extract ExtractCmd `cmd:"" help:"Extract the document model and emit JSON"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// ExtractCmd runs one full extraction.
type ExtractCmd struct {
	TEIDir    string `name:"tei-dir" help:"Directory containing treatise.xml and lexicon.xml" type:"path"`
	Out       string `help:"Write model JSON to file instead of stdout" type:"path"`
	Pretty    bool   `help:"Indent the JSON output"`
	LogLevel  string `name:"log-level" help:"Log level (debug, info, warn, error)" default:"info"`
	LogFormat string `name:"log-format" help:"Log format (text, json)" default:"text"`
}

func (c *ExtractCmd) Run() error {
	var cfg *config.Config
	if CLI.Config != "" {
		loaded, err := config.Load(CLI.Config)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	level, format := c.LogLevel, c.LogFormat
	if cfg != nil {
		if cfg.Log.Level != "" {
			level = cfg.Log.Level
		}
		if cfg.Log.Format != "" {
			format = cfg.Log.Format
		}
	}
	logging.InitLogger(logging.ParseLevel(level), logging.ParseFormat(format))

	ctx := logging.WithRunID(context.Background(), uuid.NewString())
	log := logging.LoggerFromContext(ctx)

	parser, err := c.newParser(cfg)
	if err != nil {
		return err
	}

	ed, err := parser.Extract()
	if err != nil {
		log.Error("extraction failed", "error", err)
		return err
	}
	if cfg != nil && cfg.Site.GitHubURL != "" {
		ed.Metadata.GitHubURL = cfg.Site.GitHubURL
	}

	data, err := c.marshal(ed)
	if err != nil {
		return fmt.Errorf("failed to encode model: %w", err)
	}

	if c.Out == "" {
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	}
	if err := os.WriteFile(c.Out, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.Out, err)
	}
	log.Info("model written", "path", c.Out, "bytes", len(data))
	return nil
}

// newParser resolves the source locations, flag over config.
func (c *ExtractCmd) newParser(cfg *config.Config) (*tei.Parser, error) {
	if c.TEIDir != "" {
		return tei.New(c.TEIDir), nil
	}
	if cfg != nil {
		return tei.NewWithPaths(cfg.Sources.TreatisePath(), cfg.Sources.LexiconPath()), nil
	}
	return nil, fmt.Errorf("no sources: pass --tei-dir or a config file")
}

func (c *ExtractCmd) marshal(ed *edition.Edition) ([]byte, error) {
	if c.Pretty {
		return json.MarshalIndent(ed, "", "  ")
	}
	return json.Marshal(ed)
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("arthron %s\n", version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("arthron"),
		kong.Description("TEI extraction for the Arthron digital edition"),
		kong.UsageOnError(),
	)
	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "arthron: %v\n", err)
		os.Exit(1)
	}
}
