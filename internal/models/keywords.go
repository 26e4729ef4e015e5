package models

// CategoryKeywords is one category entry of the keywords YAML file
type CategoryKeywords struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// KeywordsConfig represents the structure of the keywords YAML file
type KeywordsConfig struct {
	Categories []CategoryKeywords `yaml:"categories"`
}
