package config

// NewLoaderWithEnv creates a Loader reading variables from env instead of the process.
func NewLoaderWithEnv(env map[string]string) *Loader {
	return &Loader{getenv: func(k string) string { return env[k] }}
}
