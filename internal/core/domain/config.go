package domain

// Fields names the raw record keys the dataset reader looks up.
type Fields struct {
	GroupID   string
	ParentID  string
	ItemGroup string
	ItemName  string
}

// Config is the resolved configuration of a classification run.
type Config struct {
	DatasetDir    string
	CacheDir      string
	GroupsFile    string
	ItemsFile     string
	OverridesFile string
	RootGroupID   ID
	Locale        string
	Fields        Fields
}

// DefaultFields returns the record keys used by the EVE static data export.
func DefaultFields() Fields {
	return Fields{
		GroupID:   "marketGroupID",
		ParentID:  "parentGroupID",
		ItemGroup: "marketGroupID",
		ItemName:  "name",
	}
}

// DefaultConfig returns a configuration that classifies ships in ./sde.
func DefaultConfig() *Config {
	return &Config{
		DatasetDir:  "sde",
		CacheDir:    DefaultCachePath(),
		GroupsFile:  "bsd/invMarketGroups.yaml",
		ItemsFile:   "fsd/typeIDs.yaml",
		RootGroupID: 4,
		Locale:      DefaultLocale,
		Fields:      DefaultFields(),
	}
}
