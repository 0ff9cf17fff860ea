package structures

type CliFlags struct {
	AppName    string
	ConfigPath string
	EnvFile    string
	DebugMode  bool
}
