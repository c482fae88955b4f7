package config

const (
	defaultInputDir      = "~/.local/share/rollcall/inbox"
	defaultSnapshotDir   = "~/.local/share/rollcall/snapshots"
	defaultArchiveDir    = "~/.local/share/rollcall/archive"
	defaultLogDir        = "~/.local/share/rollcall/logs"
	defaultLockFile      = "~/.local/share/rollcall/rollcall.lock"
	defaultMappingFile   = "~/.config/rollcall/questions.yaml"
	defaultDirectoryName = "master_contacts.vcf"
	defaultHistoryName   = "contact_history.json"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
	defaultNameThreshold = 85
	defaultRelaxedMargin = 15
	defaultRelaxedFloor  = 50
	defaultPhoneRegion   = "US"
)

func defaultLinkDomains() []string {
	return []string{"linkedin.com", "linked.in"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			InputDir:    defaultInputDir,
			SnapshotDir: defaultSnapshotDir,
			ArchiveDir:  defaultArchiveDir,
			LogDir:      defaultLogDir,
			LockFile:    defaultLockFile,
			MappingFile: defaultMappingFile,
		},
		Matching: Matching{
			NameThreshold: defaultNameThreshold,
			RelaxedMargin: defaultRelaxedMargin,
			RelaxedFloor:  defaultRelaxedFloor,
			PhoneRegion:   defaultPhoneRegion,
			LinkDomains:   defaultLinkDomains(),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
