package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Scale int
	TPS   int
	Save  string
	Fill  float64
	Seed  int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 16, TPS: 60, Save: "lifepad.sav", Fill: 0, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frame ticks per second")
	fs.StringVar(&c.Save, "save", c.Save, "path of the save file")
	fs.Float64Var(&c.Fill, "fill", c.Fill, "random live density for a fresh board (0 disables)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random fill")
}
