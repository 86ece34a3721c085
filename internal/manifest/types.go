package manifest

// File is one placeholder file inside a manifest directory.
type File struct {
	Name    string `yaml:"name" json:"name"`
	Content string `yaml:"content" json:"content"`
}

// Entry is one directory of the manifest and the files it should contain.
// Dir is a slash-separated path relative to the scaffold root.
type Entry struct {
	Dir   string `yaml:"dir" json:"dir"`
	Files []File `yaml:"files,omitempty" json:"files,omitempty"`
}

// Manifest is an ordered list of entries. Processing and log order follow
// the order of Entries.
type Manifest struct {
	Version string  `yaml:"version" json:"version"`
	Entries []Entry `yaml:"entries" json:"entries"`
}

// FileCount returns the total number of files declared across all entries.
func (m *Manifest) FileCount() int {
	n := 0
	for _, e := range m.Entries {
		n += len(e.Files)
	}
	return n
}
