package commands

// SetWorkingDir makes the CLI resolve settings as if it was started in dir.
func (c *CLI) SetWorkingDir(dir string) {
	c.getwd = func() (string, error) { return dir, nil }
}
