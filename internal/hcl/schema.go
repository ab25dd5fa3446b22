package hcl

// fileRoot is the decoding target for a whole configuration file.
type fileRoot struct {
	Input  string       `hcl:"input,optional"`
	Log    *logBlock    `hcl:"log,block"`
	Render *renderBlock `hcl:"render,block"`
}

// logBlock maps the `log` block.
type logBlock struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
}

// renderBlock maps the `render` block.
type renderBlock struct {
	Color   string `hcl:"color,optional"`
	Planted string `hcl:"planted,optional"`
	Mowed   string `hcl:"mowed,optional"`
}
