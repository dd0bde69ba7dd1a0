package config

// Sdefile represents the structure of the sde.yaml configuration file.
type Sdefile struct {
	Version  string      `yaml:"version"`
	Dataset  DatasetDTO  `yaml:"dataset"`
	Cache    CacheDTO    `yaml:"cache"`
	Classify ClassifyDTO `yaml:"classify"`
}

// DatasetDTO locates the reference dataset and names its record fields.
type DatasetDTO struct {
	Dir    string    `yaml:"dir"`
	Groups string    `yaml:"groups"`
	Items  string    `yaml:"items"`
	Fields FieldsDTO `yaml:"fields"`
}

// FieldsDTO names the raw record keys.
type FieldsDTO struct {
	GroupID   string `yaml:"groupID"`
	ParentID  string `yaml:"parentID"`
	ItemGroup string `yaml:"itemGroup"`
	ItemName  string `yaml:"itemName"`
}

// CacheDTO configures the memoization cache.
type CacheDTO struct {
	Dir string `yaml:"dir"`
}

// ClassifyDTO configures the classification query.
type ClassifyDTO struct {
	Root      *int64 `yaml:"root"`
	Locale    string `yaml:"locale"`
	Overrides string `yaml:"overrides"`
}
