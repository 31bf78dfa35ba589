package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
)

// CLI defines the command-line interface structure
type CLI struct {
	Show    ShowCmd    `cmd:"" default:"withargs" help:"Print this month's calendar (default)"`
	Signs   SignsCmd   `cmd:"" help:"List accepted sign names"`
	Config  ConfigCmd  `cmd:"" help:"Read or write ~/.config/hcal/config.yml"`
	Version VersionCmd `cmd:"" help:"Print version"`
}

// ShowCmd prints the current month with each day colored by its mood
type ShowCmd struct {
	Sign string `short:"s" env:"HCAL_SIGN" help:"Astrological sign (aries, taurus, ... pisces)"`
}

func (c *ShowCmd) Run() error {
	return c.run(os.Stdout)
}

func (c *ShowCmd) run(w io.Writer) error {
	sign, err := ResolveSign(c.Sign)
	if err != nil {
		return err
	}

	now, err := UnixNow()
	if err != nil {
		return err
	}

	return NewYear(now, sign).Render(w)
}

// SignsCmd lists every accepted sign with its glyph
type SignsCmd struct{}

func (c *SignsCmd) Run() error {
	fmt.Fprintln(os.Stdout, SignTable())
	return nil
}

// SignTable lays out the glyphs and names of all signs in two columns.
func SignTable() string {
	glyphs := make([]string, len(Signs))
	names := make([]string, len(Signs))
	for i, s := range Signs {
		glyphs[i] = s.Glyph()
		names[i] = s.String()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		strings.Join(glyphs, "\n"),
		" ",
		strings.Join(names, "\n"),
	)
}

// ConfigCmd groups config subcommands
type ConfigCmd struct {
	Get  ConfigGetCmd  `cmd:"" help:"Print a config value"`
	Set  ConfigSetCmd  `cmd:"" help:"Set a config value"`
	Path ConfigPathCmd `cmd:"" help:"Print the config file path"`
}

// ConfigGetCmd prints a single config value
type ConfigGetCmd struct {
	Key string `arg:"" help:"Config key (sign)"`
}

func (c *ConfigGetCmd) Run() error {
	value, err := GetConfigValue(c.Key)
	if err != nil {
		return err
	}
	fmt.Println(value)
	return nil
}

// ConfigSetCmd validates and stores a config value
type ConfigSetCmd struct {
	Key   string `arg:"" help:"Config key (sign)"`
	Value string `arg:"" optional:"" help:"New value (empty clears it)"`
}

func (c *ConfigSetCmd) Run() error {
	return SetConfigValue(c.Key, c.Value)
}

// ConfigPathCmd prints where the config file lives
type ConfigPathCmd struct{}

func (c *ConfigPathCmd) Run() error {
	path, err := RuntimeConfigPath()
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}

// VersionCmd prints the build version
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version)
	return nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("hcal"),
		kong.Description("Horoscope calendar - this month, colored by how each day will go"),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
