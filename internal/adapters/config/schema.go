package config

// Rigfile represents the structure of the rig.yaml configuration file.
type Rigfile struct {
	Version      string              `yaml:"version"`
	Paths        PathsDTO            `yaml:"paths"`
	Defaults     *ModelDTO           `yaml:"defaults"`
	Models       map[string]ModelDTO `yaml:"models"`
	Animations   []SlotDTO           `yaml:"animations"`
	ForceRebuild bool                `yaml:"force_rebuild"`
	Assembler    AssemblerDTO        `yaml:"assembler"`
}

// PathsDTO holds the working-tree layout, relative to the config file.
type PathsDTO struct {
	SourceDir string `yaml:"source_dir"`
	AnimDir   string `yaml:"anim_dir"`
	OutputDir string `yaml:"output_dir"`
	Manifest  string `yaml:"manifest"`
}

// ModelDTO is one per-model configuration record.
type ModelDTO struct {
	Gender        string  `yaml:"gender"`
	ExtraArmAngle float64 `yaml:"extra_arm_angle"`
}

// SlotDTO is one ordered animation slot table entry.
type SlotDTO struct {
	Slot string `yaml:"slot"`
	File string `yaml:"file"`
}

// AssemblerDTO configures the external transform engine invocation.
type AssemblerDTO struct {
	Command   []string `yaml:"command"`
	ExportExt string   `yaml:"export_ext"`
}
